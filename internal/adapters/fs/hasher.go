package fs

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/cbuild/internal/core/domain"
	"go.trai.ch/cbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher hashes files and compile inputs with xxhash. It is not a
// cryptographic hash; collisions are tolerable because a false "up to date"
// only survives until the next content change.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFileHash returns the xxhash digest of the file contents at path.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from resolved build inputs
	if err != nil {
		return 0, zerr.With(zerr.Wrap(domain.ErrFileOpenFailed, err.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	digest := xxhash.New()
	if _, err := io.Copy(digest, f); err != nil {
		return 0, zerr.With(zerr.Wrap(domain.ErrFileHashFailed, err.Error()), "path", path)
	}

	return digest.Sum64(), nil
}

// ComputeInputHash digests everything that determines a compile step's
// output: the command line, the source file contents and the contents of
// every resolved header dependency. Field boundaries are delimited so that
// e.g. ["-I", "a"] and ["-Ia"] digest differently.
func (h *Hasher) ComputeInputHash(command []string, source string, deps []string) (string, error) {
	digest := xxhash.New()

	for _, arg := range command {
		writeField(digest, []byte(arg))
	}

	if err := h.writeFileField(digest, source); err != nil {
		return "", err
	}
	for _, dep := range deps {
		if err := h.writeFileField(digest, dep); err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("%016x", digest.Sum64()), nil
}

func (h *Hasher) writeFileField(digest *xxhash.Digest, path string) error {
	contentHash, err := h.ComputeFileHash(path)
	if err != nil {
		return err
	}
	writeField(digest, []byte(fmt.Sprintf("%s=%016x", path, contentHash)))
	return nil
}

func writeField(digest *xxhash.Digest, field []byte) {
	_, _ = digest.Write(field)
	_, _ = digest.Write([]byte{0})
}

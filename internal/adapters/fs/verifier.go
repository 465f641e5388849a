package fs

import (
	"os"

	"go.trai.ch/cbuild/internal/core/ports"
)

var _ ports.ArtifactVerifier = (*Verifier)(nil)

// Verifier answers whether build artifacts are present on disk. A recorded
// input hash alone is not enough to skip work; the artifact it produced must
// still exist.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// ArtifactExists reports whether path names an existing regular file.
func (v *Verifier) ArtifactExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

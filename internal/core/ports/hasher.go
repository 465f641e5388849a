package ports

// Hasher defines the interface for computing content hashes.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeFileHash computes the content hash of a single file.
	ComputeFileHash(path string) (uint64, error)

	// ComputeInputHash computes a single hash covering the compile command,
	// the source file content, and every resolved dependency's content.
	// Dependency paths are hashed in the given order, which the caller must
	// keep deterministic.
	ComputeInputHash(command []string, source string, deps []string) (string, error)
}

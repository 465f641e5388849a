package ports

// ArtifactVerifier defines the interface for checking build artifacts on
// disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=verifier.go -destination=mocks/mock_verifier.go -package=mocks
type ArtifactVerifier interface {
	// ArtifactExists reports whether path names an existing regular file.
	ArtifactExists(path string) bool
}

package ports

import "go.trai.ch/cbuild/internal/core/domain"

// DepsStore defines the interface for persisting per-source dependency
// snapshots between build invocations.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type DepsStore interface {
	// Get retrieves the snapshot for a source file of a target.
	// Returns nil, nil if not found.
	Get(target, source string) (*domain.SourceDepsInfo, error)

	// Put stores the snapshot.
	Put(target string, info domain.SourceDepsInfo) error
}

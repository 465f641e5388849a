package store

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cbuild/internal/core/domain"
	"go.trai.ch/cbuild/internal/core/ports"
)

const NodeID graft.ID = "adapter.deps_store_factory"

// Factory opens the dependency snapshot store for a project root. The path
// depends on the loaded project, so the store itself cannot be a cacheable
// node; the factory is.
type Factory func(root string) (ports.DepsStore, error)

func init() {
	graft.Register(graft.Node[Factory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (Factory, error) {
			return func(root string) (ports.DepsStore, error) {
				return NewStore(domain.DepsPath(root))
			}, nil
		},
	})
}

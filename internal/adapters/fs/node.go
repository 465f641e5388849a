package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cbuild/internal/core/ports"
)

const (
	WalkerNodeID         graft.ID = "adapter.fs.walker"
	SourceResolverNodeID graft.ID = "adapter.fs.sources"
	HasherNodeID         graft.ID = "adapter.fs.hasher"
	VerifierNodeID       graft.ID = "adapter.fs.verifier"
)

func init() {
	// Walker Node (Concrete implementation needed by SourceResolver)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	// SourceResolver Node
	graft.Register(graft.Node[ports.SourceResolver]{
		ID:        SourceResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.SourceResolver, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewSourceResolver(walker), nil
		},
	})

	// Hasher Node
	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})

	// Verifier Node
	graft.Register(graft.Node[ports.ArtifactVerifier]{
		ID:        VerifierNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ArtifactVerifier, error) {
			return NewVerifier(), nil
		},
	})
}

package parser

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cbuild/internal/core/ports"
)

const NodeID graft.ID = "adapter.source_parser"

func init() {
	graft.Register(graft.Node[ports.SourceParser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.SourceParser, error) {
			return NewParser(), nil
		},
	})
}

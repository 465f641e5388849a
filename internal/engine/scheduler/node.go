package scheduler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cbuild/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cbuild/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cbuild/internal/adapters/parser"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cbuild/internal/adapters/shell"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cbuild/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cbuild/internal/core/ports"
)

// NodeID is the unique identifier for the scheduler Graft node.
const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[*Scheduler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			fs.HasherNodeID,
			fs.SourceResolverNodeID,
			fs.VerifierNodeID,
			parser.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Scheduler, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			srcParser, err := graft.Dep[ports.SourceParser](ctx)
			if err != nil {
				return nil, err
			}

			sources, err := graft.Dep[ports.SourceResolver](ctx)
			if err != nil {
				return nil, err
			}

			verifier, err := graft.Dep[ports.ArtifactVerifier](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewScheduler(
				executor,
				hasher,
				srcParser,
				sources,
				verifier,
				telemetry,
				log,
			), nil
		},
	})
}

package dispatch

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/taskforge/taskforge/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"github.com/taskforge/taskforge/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"github.com/taskforge/taskforge/internal/adapters/memo"      //nolint:depguard // Wired in engine wiring
	"github.com/taskforge/taskforge/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"github.com/taskforge/taskforge/internal/core/ports"
)

// NodeID is the unique identifier for the dispatch engine Graft node.
const NodeID graft.ID = "engine.dispatch"

func init() {
	graft.Register(graft.Node[ports.ExecutionContext]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			memo.NodeID,
			fs.HasherNodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (ports.ExecutionContext, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.MemoStore](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.InvocationHasher](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return NewEngine(log, store, hasher, tracer, 0), nil
		},
	})
}

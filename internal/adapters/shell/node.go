package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/taskforge/taskforge/internal/adapters/logger"
	"github.com/taskforge/taskforge/internal/core/ports"
)

const NodeID graft.ID = "adapter.wrapper.shell"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Runner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(log), nil
		},
	})
}

package config

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/taskforge/taskforge/internal/adapters/logger"
	"github.com/taskforge/taskforge/internal/core/ports"
)

const NodeID graft.ID = "adapter.taskfile_loader"

func init() {
	graft.Register(graft.Node[ports.TaskfileLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.TaskfileLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}

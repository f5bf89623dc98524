package source

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/taskforge/taskforge/internal/core/ports"
)

const NodeID graft.ID = "adapter.source"

func init() {
	graft.Register(graft.Node[ports.SourceProvider]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.SourceProvider, error) {
			return NewProvider(), nil
		},
	})
}

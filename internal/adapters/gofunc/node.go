package gofunc

import (
	"context"

	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.wrapper.gofunc"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Runner, error) {
			return NewRunner(), nil
		},
	})
}

package memo

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/taskforge/taskforge/internal/core/ports"
)

const NodeID graft.ID = "adapter.memo_store"

func init() {
	graft.Register(graft.Node[ports.MemoStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.MemoStore, error) {
			store, err := NewStore(DefaultPath)
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}

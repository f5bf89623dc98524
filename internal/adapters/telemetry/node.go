package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"github.com/taskforge/taskforge/internal/adapters/telemetry/progrock"
	"github.com/taskforge/taskforge/internal/core/ports"
)

// TracerNodeID is the unique identifier for the tracer adapter Graft node.
const TracerNodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Tracer, error) {
			if os.Getenv("TASKFORGE_PROGRESS") == "1" {
				return progrock.New(), nil
			}
			return NewNoOpTracer(), nil
		},
	})
}

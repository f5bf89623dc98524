package ports

import (
	"context"

	"github.com/taskforge/taskforge/internal/core/domain"
)

// RunFunc is the unit of work a wrapper hands to an execution context.
type RunFunc func(ctx context.Context) (any, error)

// ExecutionContext schedules and runs task invocations on behalf of wrappers.
// Walltime enforcement, memoization and parallelism limits live behind this
// interface, not in the wrappers or factories.
//
//go:generate mockgen -source=execution.go -destination=mocks/mock_execution.go -package=mocks
type ExecutionContext interface {
	// Submit schedules run for execution under the given spec. The invocation
	// arguments are provided for memoization only; the wrapper has already
	// bound them into run. Submission never blocks on execution: failures
	// surface through the returned future.
	Submit(ctx context.Context, spec domain.TaskSpec, args []any, kwargs map[string]any, run RunFunc) Future
}

// Future is a result handle for one task invocation.
type Future interface {
	// Done returns a channel that is closed when the result is available.
	Done() <-chan struct{}
	// Result blocks until the result is available or ctx is done.
	Result(ctx context.Context) (any, error)
}

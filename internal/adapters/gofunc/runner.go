// Package gofunc provides the wrapper adapter for in-process function tasks.
package gofunc

import (
	"context"

	"github.com/taskforge/taskforge/internal/core/domain"
	"github.com/taskforge/taskforge/internal/core/ports"
	"github.com/taskforge/taskforge/internal/engine/future"
)

// Runner builds wrappers for function tasks. Unlike bash tasks the callable
// is the work itself, so it runs on the execution context rather than at
// invocation time.
type Runner struct{}

// NewRunner creates a new Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Wrap satisfies ports.WrapperConstructor.
func (r *Runner) Wrap(spec domain.TaskSpec, exec ports.ExecutionContext) (ports.Wrapper, error) {
	return &wrapper{spec: spec, exec: exec}, nil
}

type wrapper struct {
	spec domain.TaskSpec
	exec ports.ExecutionContext
}

// Invoke schedules the callable on the execution context and returns
// immediately. Argument validation happens inside the run, so a signature
// mismatch surfaces through the result future, not from Invoke. A trailing
// error return of the callable fails the invocation; the remaining returns
// become the future's value.
func (w *wrapper) Invoke(ctx context.Context, args []any, kwargs map[string]any) (*ports.Invocation, error) {
	run := func(context.Context) (any, error) {
		results, err := w.spec.Callable.Call(args, kwargs)
		if err != nil {
			return nil, err
		}
		return w.spec.Callable.ResultAndError(results)
	}

	var result ports.Future
	if w.exec != nil {
		result = w.exec.Submit(ctx, w.spec, args, kwargs, run)
	} else if value, err := run(ctx); err != nil {
		result = future.Failed(err)
	} else {
		result = future.Resolved(value)
	}

	return &ports.Invocation{
		Result:  result,
		Outputs: future.FilesAfter(result, w.spec.AuxiliaryFiles),
	}, nil
}

// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/taskforge/taskforge/internal/core/domain"
)

// Wrapper binds a callable to its execution parameters and produces result
// handles when invoked. One wrapper instance is allocated per invocation;
// wrappers validate invocation arguments, the factory that produced them
// does not.
//
//go:generate mockgen -source=wrapper.go -destination=mocks/mock_wrapper.go -package=mocks
type Wrapper interface {
	// Invoke runs the wrapped callable with positional and keyword arguments
	// and returns the invocation handles.
	Invoke(ctx context.Context, args []any, kwargs map[string]any) (*Invocation, error)
}

// WrapperConstructor builds a Wrapper of one task kind from an immutable task
// spec. The execution context may be nil, in which case the wrapper runs the
// task inline on Invoke.
type WrapperConstructor func(spec domain.TaskSpec, exec ExecutionContext) (Wrapper, error)

// Invocation pairs the future-like result handle of one invocation with the
// data handles for its auxiliary files.
type Invocation struct {
	// Result resolves to the invocation's return value.
	Result Future
	// Outputs resolve to the auxiliary file paths once the invocation
	// completes, or fail if a file is missing.
	Outputs []Future
}

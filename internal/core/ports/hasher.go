package ports

import "github.com/taskforge/taskforge/internal/core/domain"

// InvocationHasher defines the interface for computing invocation hashes:
// the memoization key combining a task's content identity with its arguments
// and auxiliary file contents.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type InvocationHasher interface {
	// ComputeInvocationHash computes the memoization key for one invocation.
	ComputeInvocationHash(spec domain.TaskSpec, args []any, kwargs map[string]any) (string, error)
}

package domain

import "time"

const (
	// DefaultExecutorSelector targets every available executor.
	DefaultExecutorSelector = "all"
	// DefaultWalltime bounds task execution when no walltime is given.
	DefaultWalltime = 60 * time.Second
)

// TaskSpec is the immutable parameter bundle a factory forwards verbatim to
// every wrapper instance it produces. It is assembled once, at factory
// construction time, including the precomputed content identity.
type TaskSpec struct {
	// Callable is the user-supplied function bound to the task.
	Callable *Callable
	// Kind classifies the task.
	Kind TaskKind
	// Identity is the content identity used by an external cache to recognize
	// repeated invocations of the same task. When caching is enabled it is a
	// hex-encoded 128-bit digest of the callable's source text; otherwise it
	// is the callable's display name.
	Identity string
	// CachingEnabled reports whether invocation results may be memoized.
	CachingEnabled bool
	// ExecutorSelector names the executors the task may run on.
	ExecutorSelector string
	// Walltime bounds a single execution of the task.
	Walltime time.Duration
	// AuxiliaryFiles lists file paths forwarded to the wrapper. They become
	// data handles on invocation results and contribute to invocation hashes.
	AuxiliaryFiles []string
	// Env holds extra environment variables for shell-command tasks.
	Env map[string]string
}

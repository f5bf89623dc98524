package domain

// TaskKind classifies a runnable unit of work and determines which wrapper
// constructor applies to it.
type TaskKind string

const (
	// KindBash is a shell-command task: the callable produces a command line
	// that is executed through a shell.
	KindBash TaskKind = "bash"
	// KindFunc is an in-process task: the callable is invoked directly.
	KindFunc TaskKind = "func"
)

// String returns the kind identifier.
func (k TaskKind) String() string {
	return string(k)
}

// FactoryStatus represents the lifecycle state of a task descriptor factory.
// Factories are write-once: they never leave the created state. Execution
// state transitions belong to the wrappers they produce.
type FactoryStatus string

const (
	// FactoryStatusCreated indicates the factory has been constructed.
	FactoryStatusCreated FactoryStatus = "created"
)

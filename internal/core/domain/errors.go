package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidTaskKind is returned when a requested task kind is not registered.
	ErrInvalidTaskKind = zerr.New("invalid task kind requested")

	// ErrNilCallable is returned when a factory is constructed without a callable.
	ErrNilCallable = zerr.New("callable must not be nil")

	// ErrNilConstructor is returned when a factory is constructed without a wrapper constructor.
	ErrNilConstructor = zerr.New("wrapper constructor must not be nil")

	// ErrNotAFunction is returned when a callable wraps a value that is not a function.
	ErrNotAFunction = zerr.New("callable is not a function")

	// ErrArgumentCountMismatch is returned when an invocation does not match the callable's arity.
	ErrArgumentCountMismatch = zerr.New("argument count does not match callable signature")

	// ErrArgumentTypeMismatch is returned when an invocation argument is not assignable to its parameter.
	ErrArgumentTypeMismatch = zerr.New("argument type does not match callable signature")

	// ErrUnexpectedKeywordArgs is returned when keyword arguments are passed to a callable without a keyword parameter.
	ErrUnexpectedKeywordArgs = zerr.New("callable does not accept keyword arguments")

	// ErrCommandNotString is returned when a shell-task callable does not produce a command string.
	ErrCommandNotString = zerr.New("shell callable must return a single command string")

	// ErrCommandFailed is returned when a shell command exits with a non-zero status.
	ErrCommandFailed = zerr.New("command failed")

	// ErrWalltimeExceeded is returned when a task runs past its walltime.
	ErrWalltimeExceeded = zerr.New("task exceeded its walltime")

	// ErrAuxiliaryFileMissing is returned when a declared auxiliary file does not exist after execution.
	ErrAuxiliaryFileMissing = zerr.New("auxiliary file not found")

	// ErrStoreCreateFailed is returned when the memo store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create memo store directory")

	// ErrStoreReadFailed is returned when the memo store cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read memo store")

	// ErrStoreUnmarshalFailed is returned when the memo store cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal memo store")

	// ErrStoreMarshalFailed is returned when the memo store cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal memo store")

	// ErrStoreWriteFailed is returned when the memo store cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write memo store")

	// ErrConfigReadFailed is returned when the taskfile cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read taskfile")

	// ErrConfigParseFailed is returned when the taskfile cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse taskfile")

	// ErrMissingCommand is returned when a taskfile entry has no command.
	ErrMissingCommand = zerr.New("task definition is missing a command")

	// ErrTaskNotFound is returned when a requested target is not defined in the taskfile.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrNoTargetsSpecified is returned when no targets are specified for the run command.
	ErrNoTargetsSpecified = zerr.New("no targets specified")

	// ErrTaskExecutionFailed is returned when one or more invoked tasks fail.
	ErrTaskExecutionFailed = zerr.New("task execution failed")

	// ErrAuxiliaryInputMissing is returned when an auxiliary file referenced by an
	// invocation hash cannot be resolved.
	ErrAuxiliaryInputMissing = zerr.New("auxiliary input not found")
)

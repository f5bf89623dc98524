package domain

import "time"

// Taskfile is the parsed form of a taskforge.yaml file: a set of named
// shell-command task declarations.
type Taskfile struct {
	Version string
	Tasks   map[string]TaskDecl
}

// TaskDecl declares one shell-command task.
type TaskDecl struct {
	// Command is the shell command line to execute.
	Command string
	// Env holds extra environment variables for the command.
	Env map[string]string
	// Cache enables memoization of the task's result.
	Cache bool
	// Walltime bounds a single execution; zero means DefaultWalltime.
	Walltime time.Duration
	// Executor selects the executor pool; empty means DefaultExecutorSelector.
	Executor string
	// AuxiliaryFiles lists files the task reads or produces.
	AuxiliaryFiles []string
}

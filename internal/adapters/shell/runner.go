// Package shell provides the wrapper adapter for bash-command tasks.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/taskforge/taskforge/internal/core/domain"
	"github.com/taskforge/taskforge/internal/core/ports"
	"github.com/taskforge/taskforge/internal/engine/future"
	"go.trai.ch/zerr"
)

// Runner builds wrappers for bash-command tasks. The callable of such a task
// does not execute anything itself: it renders the command line, which the
// wrapper then runs under `bash -c`.
type Runner struct {
	log ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(log ports.Logger) *Runner {
	return &Runner{log: log}
}

// Wrap satisfies ports.WrapperConstructor.
func (r *Runner) Wrap(spec domain.TaskSpec, exec ports.ExecutionContext) (ports.Wrapper, error) {
	return &wrapper{spec: spec, exec: exec, log: r.log}, nil
}

type wrapper struct {
	spec domain.TaskSpec
	exec ports.ExecutionContext
	log  ports.Logger
}

// Invoke renders the command by calling the task's callable with the supplied
// arguments, then schedules it on the execution context. Without an execution
// context the command runs inline before Invoke returns. The result future
// resolves to the command's stdout with the trailing newline stripped; one
// output future per declared auxiliary file resolves once the file exists.
func (w *wrapper) Invoke(ctx context.Context, args []any, kwargs map[string]any) (*ports.Invocation, error) {
	results, err := w.spec.Callable.Call(args, kwargs)
	if err != nil {
		return nil, err
	}
	rendered, err := w.spec.Callable.ResultAndError(results)
	if err != nil {
		return nil, err
	}
	command, ok := rendered.(string)
	if !ok || strings.TrimSpace(command) == "" {
		return nil, zerr.With(domain.ErrCommandNotString, "task", w.spec.Callable.Name())
	}

	run := func(runCtx context.Context) (any, error) {
		return w.run(runCtx, command)
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

func (w *wrapper) run(ctx context.Context, command string) (any, error) {
	cmd := exec.CommandContext(ctx, "bash", "-c", command) //nolint:gosec // user provided command
	cmd.Env = resolveEnvironment(os.Environ(), w.spec.Env)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &logWriter{log: w.log, task: w.spec.Callable.Name()}

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		failed := zerr.With(errors.Join(domain.ErrCommandFailed, err), "task", w.spec.Callable.Name())
		return nil, zerr.With(failed, "exit_code", exitCode)
	}

	return strings.TrimSuffix(stdout.String(), "\n"), nil
}

// logWriter forwards the command's stderr to the logger line by line.
type logWriter struct {
	log  ports.Logger
	task string
}

func (lw *logWriter) Write(p []byte) (n int, err error) {
	msg := strings.TrimSuffix(string(p), "\n")
	if msg == "" {
		return len(p), nil
	}
	for _, line := range strings.Split(msg, "\n") {
		lw.log.Info(lw.task + ": " + line)
	}
	return len(p), nil
}

// resolveEnvironment merges the task's environment over the system one. The
// task's PATH entries are prepended to the system PATH instead of replacing
// it.
func resolveEnvironment(sysEnv []string, taskEnv map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(taskEnv))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}

	for k, v := range taskEnv {
		if k == "PATH" {
			if sysPath, exists := envMap[k]; exists && sysPath != "" {
				v = v + string(os.PathListSeparator) + sysPath
			}
		}
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}

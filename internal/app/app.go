// Package app implements the application layer for taskforge.
package app

import (
	"context"
	"errors"
	"runtime"

	"github.com/taskforge/taskforge/internal/core/domain"
	"github.com/taskforge/taskforge/internal/core/ports"
	"github.com/taskforge/taskforge/internal/engine/factory"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic: it turns taskfile declarations
// into factories and invokes them for the requested targets.
type App struct {
	loader   ports.TaskfileLoader
	registry *factory.Registry
	log      ports.Logger
}

// New creates a new App instance.
func New(loader ports.TaskfileLoader, registry *factory.Registry, log ports.Logger) *App {
	return &App{
		loader:   loader,
		registry: registry,
		log:      log,
	}
}

// Run invokes the named targets from the taskfile. All targets are resolved
// into factories before any of them runs, so a typo in the second target name
// does not leave the first one half executed. Targets then run concurrently,
// bounded by the number of CPUs.
func (a *App) Run(ctx context.Context, taskfilePath string, targets []string) error {
	if len(targets) == 0 {
		return domain.ErrNoTargetsSpecified
	}

	taskfile, err := a.loader.Load(taskfilePath)
	if err != nil {
		return zerr.Wrap(err, "failed to load taskfile")
	}

	factories := make([]*factory.Factory, len(targets))
	for i, target := range targets {
		decl, ok := taskfile.Tasks[target]
		if !ok {
			return zerr.With(domain.ErrTaskNotFound, "task", target)
		}
		f, err := a.factoryFor(target, decl)
		if err != nil {
			return err
		}
		factories[i] = f
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, f := range factories {
		target := targets[i]
		g.Go(func() error {
			if err := a.invoke(gctx, f); err != nil {
				return zerr.With(err, "task", target)
			}
			a.log.Info("task " + target + " completed")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return errors.Join(domain.ErrTaskExecutionFailed, err)
	}
	return nil
}

// factoryFor builds a bash task factory from a declaration. The command text
// itself serves as the callable's source, so the cache identity of a
// taskfile-defined task changes exactly when its command line does.
func (a *App) factoryFor(name string, decl domain.TaskDecl) (*factory.Factory, error) {
	command := decl.Command
	callable, err := domain.NewNamedCallable(name, func() string { return command })
	if err != nil {
		return nil, err
	}
	callable = callable.WithSource(command)

	opts := []factory.Option{
		factory.WithCaching(decl.Cache),
		factory.WithEnv(decl.Env),
		factory.WithAuxiliaryFiles(decl.AuxiliaryFiles...),
	}
	if decl.Walltime > 0 {
		opts = append(opts, factory.WithWalltime(decl.Walltime))
	}
	if decl.Executor != "" {
		opts = append(opts, factory.WithExecutorSelector(decl.Executor))
	}

	return a.registry.Create(domain.KindBash, callable, opts...)
}

func (a *App) invoke(ctx context.Context, f *factory.Factory) error {
	inv, err := f.Invoke(ctx, nil, nil)
	if err != nil {
		return err
	}
	if _, err := inv.Result.Result(ctx); err != nil {
		return err
	}
	for _, out := range inv.Outputs {
		if _, err := out.Result(ctx); err != nil {
			return err
		}
	}
	return nil
}

package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/taskforge/taskforge/internal/adapters/config" //nolint:depguard // Wired in app layer
	"github.com/taskforge/taskforge/internal/adapters/gofunc" //nolint:depguard // Wired in app layer
	"github.com/taskforge/taskforge/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"github.com/taskforge/taskforge/internal/adapters/shell"  //nolint:depguard // Wired in app layer
	"github.com/taskforge/taskforge/internal/adapters/source" //nolint:depguard // Wired in app layer
	"github.com/taskforge/taskforge/internal/core/domain"
	"github.com/taskforge/taskforge/internal/core/ports"
	"github.com/taskforge/taskforge/internal/engine/dispatch"
	"github.com/taskforge/taskforge/internal/engine/factory"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// RegistryNodeID is the unique identifier for the task kind registry Graft node.
	RegistryNodeID graft.ID = "app.registry"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// Registry Node: binds the fixed kind table to the wrapper adapters.
	graft.Register(graft.Node[*factory.Registry]{
		ID:        RegistryNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			gofunc.NodeID,
			dispatch.NodeID,
			source.NodeID,
			logger.NodeID,
		},
		Run: runRegistryNode,
	})

	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			RegistryNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.TaskfileLoader](ctx)
			if err != nil {
				return nil, err
			}

			registry, err := graft.Dep[*factory.Registry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, registry, log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
			RegistryNodeID,
		},
		Run: runComponentsNode,
	})
}

func runRegistryNode(ctx context.Context) (*factory.Registry, error) {
	shellRunner, err := graft.Dep[*shell.Runner](ctx)
	if err != nil {
		return nil, err
	}

	funcRunner, err := graft.Dep[*gofunc.Runner](ctx)
	if err != nil {
		return nil, err
	}

	exec, err := graft.Dep[ports.ExecutionContext](ctx)
	if err != nil {
		return nil, err
	}

	sources, err := graft.Dep[ports.SourceProvider](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	kinds := map[domain.TaskKind]ports.WrapperConstructor{
		domain.KindBash: shellRunner.Wrap,
		domain.KindFunc: funcRunner.Wrap,
	}
	return factory.NewRegistry("taskforge", kinds, exec, sources, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.TaskfileLoader](ctx)
	if err != nil {
		return nil, err
	}

	registry, err := graft.Dep[*factory.Registry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:      app,
		Logger:   log,
		Loader:   loader,
		Registry: registry,
	}, nil
}

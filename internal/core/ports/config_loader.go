package ports

import "github.com/taskforge/taskforge/internal/core/domain"

// TaskfileLoader defines the interface for loading task declarations.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type TaskfileLoader interface {
	// Load reads the taskfile at the given path.
	Load(path string) (*domain.Taskfile, error)
}

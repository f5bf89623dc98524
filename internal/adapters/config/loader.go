// Package config provides the taskfile loader.
package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/taskforge/taskforge/internal/core/domain"
	"github.com/taskforge/taskforge/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.TaskfileLoader = (*Loader)(nil)

// Loader implements ports.TaskfileLoader using a YAML file.
type Loader struct {
	log ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{log: log}
}

// Load reads the taskfile at the given path. Every declared task must carry a
// non-empty command; walltime strings follow time.ParseDuration.
func (l *Loader) Load(path string) (*domain.Taskfile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
	}

	var file Taskfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", path)
	}

	tasks := make(map[string]domain.TaskDecl, len(file.Tasks))
	for name, dto := range file.Tasks {
		decl, err := toDecl(dto)
		if err != nil {
			return nil, zerr.With(err, "task", name)
		}
		tasks[name] = decl
	}

	l.log.Debug("loaded taskfile " + path)

	return &domain.Taskfile{
		Version: file.Version,
		Tasks:   tasks,
	}, nil
}

func toDecl(dto TaskDTO) (domain.TaskDecl, error) {
	if strings.TrimSpace(dto.Cmd) == "" {
		return domain.TaskDecl{}, domain.ErrMissingCommand
	}

	var walltime time.Duration
	if dto.Walltime != "" {
		d, err := time.ParseDuration(dto.Walltime)
		if err != nil {
			return domain.TaskDecl{}, zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "walltime", dto.Walltime)
		}
		walltime = d
	}

	return domain.TaskDecl{
		Command:        dto.Cmd,
		Env:            dto.Environment,
		Cache:          dto.Cache,
		Walltime:       walltime,
		Executor:       dto.Executor,
		AuxiliaryFiles: dto.Files,
	}, nil
}

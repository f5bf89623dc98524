package factory

import (
	"slices"

	"github.com/taskforge/taskforge/internal/core/domain"
	"github.com/taskforge/taskforge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Registry maps the fixed set of task kinds to their wrapper constructors and
// creates factories bound to them. The kind table is populated once at
// construction and is read-only afterwards, so concurrent lookups need no
// synchronization.
type Registry struct {
	name    string
	kinds   map[domain.TaskKind]ports.WrapperConstructor
	exec    ports.ExecutionContext
	sources ports.SourceProvider
	log     ports.Logger
}

// NewRegistry creates a Registry with the given diagnostic name and kind
// table. The table is copied; later mutation of the argument has no effect.
func NewRegistry(
	name string,
	kinds map[domain.TaskKind]ports.WrapperConstructor,
	exec ports.ExecutionContext,
	sources ports.SourceProvider,
	log ports.Logger,
) *Registry {
	table := make(map[domain.TaskKind]ports.WrapperConstructor, len(kinds))
	for kind, construct := range kinds {
		table[kind] = construct
	}
	return &Registry{
		name:    name,
		kinds:   table,
		exec:    exec,
		sources: sources,
		log:     log,
	}
}

// Create returns a new Factory bound to the constructor registered for kind,
// with the callable and all optional parameters forwarded unchanged. An
// unregistered kind is a non-retryable configuration error: it is logged at
// error level and returned as ErrInvalidTaskKind naming the registry and the
// offending kind.
func (r *Registry) Create(kind domain.TaskKind, callable *domain.Callable, opts ...Option) (*Factory, error) {
	construct, ok := r.kinds[kind]
	if !ok {
		err := zerr.With(zerr.With(domain.ErrInvalidTaskKind, "registry", r.name), "kind", kind.String())
		r.log.Error(err)
		return nil, err
	}
	return New(kind, construct, callable, r.exec, r.sources, r.log, opts...)
}

// Name returns the registry's diagnostic name.
func (r *Registry) Name() string {
	return r.name
}

// Kinds returns the registered kind names, sorted.
func (r *Registry) Kinds() []domain.TaskKind {
	kinds := make([]domain.TaskKind, 0, len(r.kinds))
	for kind := range r.kinds {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)
	return kinds
}

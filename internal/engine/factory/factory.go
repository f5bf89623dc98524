// Package factory implements the task descriptor factory and the task kind
// registry: the pieces that classify callables, derive their cache identity
// and instantiate wrappers per invocation.
package factory

import (
	"context"
	"crypto/md5" //nolint:gosec // content identity digest, not a security boundary
	"encoding/hex"
	"time"

	"github.com/taskforge/taskforge/internal/core/domain"
	"github.com/taskforge/taskforge/internal/core/ports"
)

// Factory binds one callable to one task kind and computes its content
// identity once, at construction time. It is immutable afterwards, so
// concurrent invocation from multiple goroutines is safe without locking:
// each invocation allocates an independent wrapper instance.
type Factory struct {
	kind      domain.TaskKind
	construct ports.WrapperConstructor
	exec      ports.ExecutionContext
	spec      domain.TaskSpec
	status    domain.FactoryStatus
}

type settings struct {
	caching  bool
	executor string
	walltime time.Duration
	aux      []string
	env      map[string]string
}

// Option configures the optional execution parameters of a factory.
type Option func(*settings)

// WithCaching enables or disables result caching for the task.
func WithCaching(enabled bool) Option {
	return func(s *settings) { s.caching = enabled }
}

// WithExecutorSelector names the executors the task may run on.
func WithExecutorSelector(selector string) Option {
	return func(s *settings) { s.executor = selector }
}

// WithWalltime bounds a single execution of the task.
func WithWalltime(d time.Duration) Option {
	return func(s *settings) { s.walltime = d }
}

// WithAuxiliaryFiles lists file paths forwarded to every produced wrapper.
func WithAuxiliaryFiles(paths ...string) Option {
	return func(s *settings) { s.aux = paths }
}

// WithEnv sets extra environment variables for shell-command tasks.
func WithEnv(env map[string]string) Option {
	return func(s *settings) { s.env = env }
}

// New constructs a Factory for the given kind and callable. The callable's
// display name and parameter signature are captured by the callable itself;
// the content identity is derived here, once, so repeated invocations never
// pay for source retrieval or hashing again. The execution context may be
// nil, in which case produced wrappers run their task inline.
func New(
	kind domain.TaskKind,
	construct ports.WrapperConstructor,
	callable *domain.Callable,
	exec ports.ExecutionContext,
	sources ports.SourceProvider,
	log ports.Logger,
	opts ...Option,
) (*Factory, error) {
	if callable == nil {
		return nil, domain.ErrNilCallable
	}
	if construct == nil {
		return nil, domain.ErrNilConstructor
	}

	s := &settings{
		executor: domain.DefaultExecutorSelector,
		walltime: domain.DefaultWalltime,
	}
	for _, opt := range opts {
		opt(s)
	}

	return &Factory{
		kind:      kind,
		construct: construct,
		exec:      exec,
		spec: domain.TaskSpec{
			Callable:         callable,
			Kind:             kind,
			Identity:         computeIdentity(callable, s.caching, sources, log),
			CachingEnabled:   s.caching,
			ExecutorSelector: s.executor,
			Walltime:         s.walltime,
			AuxiliaryFiles:   s.aux,
			Env:              s.env,
		},
		status: domain.FactoryStatusCreated,
	}, nil
}

// computeIdentity derives the content identity for the task. With caching
// enabled it is the hex-encoded MD5 digest of the callable's source text.
// When the source cannot be recovered the display name substitutes for it, a
// degradation reported at debug level, and construction still succeeds. With
// caching disabled the identity is the display name: two differently
// implemented callables with the same name are then indistinguishable to the
// cache, which is accepted rather than hidden.
func computeIdentity(c *domain.Callable, caching bool, sources ports.SourceProvider, log ports.Logger) string {
	if !caching {
		return c.Name()
	}

	var src string
	ok := false
	if sources != nil {
		src, ok = sources.Source(c)
	}
	if !ok {
		if log != nil {
			log.Debug("unable to recover source for callable " + c.Name() + "; caching will key on the display name")
		}
		return c.Name()
	}

	sum := md5.Sum([]byte(src)) //nolint:gosec // content identity digest, not a security boundary
	return hex.EncodeToString(sum[:])
}

// Invoke constructs exactly one new wrapper of the factory's kind, bound to
// the immutable task spec, and immediately invokes it with the supplied
// arguments. The wrapper's return value is passed through unmodified; this
// layer does not interpret it and does not mask wrapper failures.
func (f *Factory) Invoke(ctx context.Context, args []any, kwargs map[string]any) (*ports.Invocation, error) {
	w, err := f.construct(f.spec, f.exec)
	if err != nil {
		return nil, err
	}
	return w.Invoke(ctx, args, kwargs)
}

// Name returns the callable's display name, for diagnostics.
func (f *Factory) Name() string {
	return f.spec.Callable.Name()
}

// Kind returns the task kind the factory is bound to.
func (f *Factory) Kind() domain.TaskKind {
	return f.kind
}

// Identity returns the content identity computed at construction. It is
// identical across all wrapper instances the factory produces.
func (f *Factory) Identity() string {
	return f.spec.Identity
}

// Status returns the factory's lifecycle status.
func (f *Factory) Status() domain.FactoryStatus {
	return f.status
}

// Spec returns a copy of the task spec forwarded to produced wrappers.
func (f *Factory) Spec() domain.TaskSpec {
	return f.spec
}

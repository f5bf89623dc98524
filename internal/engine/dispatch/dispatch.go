// Package dispatch implements the execution context that runs task
// invocations on behalf of wrappers.
package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"runtime"
	"time"

	"github.com/taskforge/taskforge/internal/core/domain"
	"github.com/taskforge/taskforge/internal/core/ports"
	"github.com/taskforge/taskforge/internal/engine/future"
	"go.trai.ch/zerr"
	"golang.org/x/sync/semaphore"
)

var _ ports.ExecutionContext = (*Engine)(nil)

// Engine implements ports.ExecutionContext with bounded parallelism,
// per-invocation walltime enforcement and result memoization.
type Engine struct {
	log    ports.Logger
	memo   ports.MemoStore
	hasher ports.InvocationHasher
	tracer ports.Tracer
	sem    *semaphore.Weighted
}

// NewEngine creates a new Engine. A non-positive parallelism defaults to the
// number of CPUs.
func NewEngine(
	log ports.Logger,
	memo ports.MemoStore,
	hasher ports.InvocationHasher,
	tracer ports.Tracer,
	parallelism int,
) *Engine {
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	return &Engine{
		log:    log,
		memo:   memo,
		hasher: hasher,
		tracer: tracer,
		sem:    semaphore.NewWeighted(int64(parallelism)),
	}
}

// Submit schedules run for execution. The returned future resolves when the
// invocation completes; submission itself never fails.
func (e *Engine) Submit(
	ctx context.Context,
	spec domain.TaskSpec,
	args []any,
	kwargs map[string]any,
	run ports.RunFunc,
) ports.Future {
	p := future.NewPromise()
	go e.execute(ctx, spec, args, kwargs, run, p)
	return p
}

func (e *Engine) execute(
	ctx context.Context,
	spec domain.TaskSpec,
	args []any,
	kwargs map[string]any,
	run ports.RunFunc,
	p *future.Promise,
) {
	if err := e.sem.Acquire(ctx, 1); err != nil {
		p.Complete(nil, err)
		return
	}
	defer e.sem.Release(1)

	ctx, span := e.tracer.Start(ctx, spec.Callable.Name())
	defer span.End()
	span.SetAttribute("kind", spec.Kind.String())
	span.SetAttribute("identity", spec.Identity)

	key := e.invocationKey(spec, args, kwargs)
	if key != "" {
		if value, ok := e.lookup(key); ok {
			span.SetAttribute("memoized", true)
			p.Complete(value, nil)
			return
		}
	}

	runCtx := ctx
	if spec.Walltime > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, spec.Walltime)
		defer cancel()
	}

	value, err := run(runCtx)
	if err != nil {
		// Distinguish the walltime deadline from a caller cancellation.
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			err = zerr.With(errors.Join(domain.ErrWalltimeExceeded, err), "walltime", spec.Walltime.String())
		}
		span.RecordError(err)
		p.Complete(nil, err)
		return
	}

	if key != "" {
		e.store(key, spec.Identity, value)
	}
	p.Complete(value, nil)
}

// invocationKey computes the memoization key, or "" when the invocation is
// not memoizable. Hash failures degrade to an uncached run.
func (e *Engine) invocationKey(spec domain.TaskSpec, args []any, kwargs map[string]any) string {
	if !spec.CachingEnabled || e.memo == nil || e.hasher == nil {
		return ""
	}
	key, err := e.hasher.ComputeInvocationHash(spec, args, kwargs)
	if err != nil {
		e.log.Debug("failed to compute invocation hash; running uncached: " + err.Error())
		return ""
	}
	return key
}

func (e *Engine) lookup(key string) (any, bool) {
	entry, err := e.memo.Get(key)
	if err != nil {
		e.log.Debug("memo store lookup failed; running uncached: " + err.Error())
		return nil, false
	}
	if entry == nil {
		return nil, false
	}
	var value any
	if err := json.Unmarshal(entry.Value, &value); err != nil {
		e.log.Debug("memo entry is corrupt; running uncached: " + err.Error())
		return nil, false
	}
	return value, true
}

func (e *Engine) store(key, identity string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		e.log.Debug("invocation result is not serializable; skipping memoization")
		return
	}
	entry := domain.MemoEntry{
		Key:        key,
		Identity:   identity,
		Value:      raw,
		ComputedAt: time.Now(),
	}
	if err := e.memo.Put(entry); err != nil {
		e.log.Warn("failed to store memo entry: " + err.Error())
	}
}

// Package future provides the promise/future primitives shared by the
// dispatch engine and the task wrappers.
package future

import (
	"context"
	"os"
	"sync"

	"github.com/taskforge/taskforge/internal/core/domain"
	"github.com/taskforge/taskforge/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Future = (*Promise)(nil)

// Promise is the writable side of a ports.Future. Complete may be called at
// most once; later calls are ignored.
type Promise struct {
	done  chan struct{}
	once  sync.Once
	value any
	err   error
}

// NewPromise creates an unresolved promise.
func NewPromise() *Promise {
	return &Promise{done: make(chan struct{})}
}

// Complete resolves the promise with a value or an error.
func (p *Promise) Complete(value any, err error) {
	p.once.Do(func() {
		p.value = value
		p.err = err
		close(p.done)
	})
}

// Done returns a channel that is closed when the promise is resolved.
func (p *Promise) Done() <-chan struct{} {
	return p.done
}

// Result blocks until the promise is resolved or ctx is done.
func (p *Promise) Result(ctx context.Context) (any, error) {
	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Resolved returns a future already resolved with value.
func Resolved(value any) ports.Future {
	p := NewPromise()
	p.Complete(value, nil)
	return p
}

// Failed returns a future already resolved with err.
func Failed(err error) ports.Future {
	p := NewPromise()
	p.Complete(nil, err)
	return p
}

// FilesAfter derives one data handle per path. Each handle resolves to its
// path once result completes successfully, fails with the result's error if
// the invocation failed, and fails with ErrAuxiliaryFileMissing if the path
// does not exist afterwards.
func FilesAfter(result ports.Future, paths []string) []ports.Future {
	outs := make([]ports.Future, len(paths))
	for i, path := range paths {
		p := NewPromise()
		outs[i] = p
		go func(path string, p *Promise) {
			<-result.Done()
			if _, err := result.Result(context.Background()); err != nil {
				p.Complete(nil, err)
				return
			}
			if _, err := os.Stat(path); err != nil {
				p.Complete(nil, zerr.With(domain.ErrAuxiliaryFileMissing, "path", path))
				return
			}
			p.Complete(path, nil)
		}(path, p)
	}
	return outs
}

package future_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskforge/taskforge/internal/core/domain"
	"github.com/taskforge/taskforge/internal/engine/future"
)

func TestPromise_CompleteOnce(t *testing.T) {
	p := future.NewPromise()
	p.Complete(42, nil)
	p.Complete(99, errors.New("ignored"))

	v, err := p.Result(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestPromise_ResultBlocksUntilComplete(t *testing.T) {
	p := future.NewPromise()

	go func() {
		time.Sleep(10 * time.Millisecond)
		p.Complete("done", nil)
	}()

	v, err := p.Result(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "done", v)
}

func TestPromise_ResultHonorsContext(t *testing.T) {
	p := future.NewPromise()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := p.Result(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestResolvedAndFailed(t *testing.T) {
	v, err := future.Resolved("ok").Result(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", v)

	boom := errors.New("boom")
	_, err = future.Failed(boom).Result(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestFilesAfter_ResolvesExistingFiles(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o600))

	outs := future.FilesAfter(future.Resolved(nil), []string{path})
	require.Len(t, outs, 1)

	v, err := outs[0].Result(context.Background())
	require.NoError(t, err)
	assert.Equal(t, path, v)
}

func TestFilesAfter_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never-written.txt")

	outs := future.FilesAfter(future.Resolved(nil), []string{path})
	_, err := outs[0].Result(context.Background())
	assert.ErrorIs(t, err, domain.ErrAuxiliaryFileMissing)
}

func TestFilesAfter_PropagatesInvocationError(t *testing.T) {
	boom := errors.New("invocation failed")
	outs := future.FilesAfter(future.Failed(boom), []string{"whatever"})
	_, err := outs[0].Result(context.Background())
	assert.ErrorIs(t, err, boom)
}

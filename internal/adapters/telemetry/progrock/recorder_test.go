package progrock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskforge/taskforge/internal/adapters/telemetry/progrock"
	"github.com/taskforge/taskforge/internal/core/ports"
	"go.trai.ch/zerr"
)

func TestNew(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)
	require.NoError(t, recorder.Close())
}

func TestRecorder_SpanLifecycle(t *testing.T) {
	recorder := progrock.New()
	defer recorder.Close() //nolint:errcheck // Best effort close in defer

	_, span := recorder.Start(context.Background(), "my-task")
	require.NotNil(t, span)

	n, err := span.Write([]byte("output line\n"))
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	span.SetAttribute("kind", "bash")
	span.SetAttribute("memoized", true)
	span.RecordError(zerr.New("task failed"))
	span.End()
}

func TestRecorder_CachedAtStart(t *testing.T) {
	recorder := progrock.New()
	defer recorder.Close() //nolint:errcheck // Best effort close in defer

	_, span := recorder.Start(context.Background(), "cached-task", ports.WithCached())
	require.NotNil(t, span)
	span.End()
}

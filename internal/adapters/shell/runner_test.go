package shell_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskforge/taskforge/internal/adapters/shell"
	"github.com/taskforge/taskforge/internal/core/domain"
	"github.com/taskforge/taskforge/internal/core/ports"
	"github.com/taskforge/taskforge/internal/core/ports/mocks"
	"github.com/taskforge/taskforge/internal/engine/future"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func specFor(t *testing.T, fn any, mutate ...func(*domain.TaskSpec)) domain.TaskSpec {
	t.Helper()
	callable, err := domain.NewNamedCallable("test-task", fn)
	require.NoError(t, err)
	spec := domain.TaskSpec{
		Callable:         callable,
		Kind:             domain.KindBash,
		Identity:         "test-task",
		ExecutorSelector: domain.DefaultExecutorSelector,
	}
	for _, m := range mutate {
		m(&spec)
	}
	return spec
}

func invokeInline(t *testing.T, log ports.Logger, spec domain.TaskSpec, args []any, kwargs map[string]any) (any, error) {
	t.Helper()
	w, err := shell.NewRunner(log).Wrap(spec, nil)
	require.NoError(t, err)
	inv, err := w.Invoke(context.Background(), args, kwargs)
	if err != nil {
		return nil, err
	}
	return inv.Result.Result(context.Background())
}

func TestWrapper_Invoke_CapturesStdout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	spec := specFor(t, func() string { return "echo line1; echo line2" })

	value, err := invokeInline(t, mocks.NewMockLogger(ctrl), spec, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2", value)
}

func TestWrapper_Invoke_RendersCommandFromArguments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	spec := specFor(t, func(greeting, name string) string {
		return "echo " + greeting + " " + name
	})

	value, err := invokeInline(t, mocks.NewMockLogger(ctrl), spec, []any{"hello", "world"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "hello world", value)
}

func TestWrapper_Invoke_KeywordArguments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	spec := specFor(t, func(kwargs map[string]any) string {
		return "echo " + kwargs["msg"].(string)
	})

	value, err := invokeInline(t, mocks.NewMockLogger(ctrl), spec, nil, map[string]any{"msg": "from-kwargs"})
	require.NoError(t, err)
	assert.Equal(t, "from-kwargs", value)
}

func TestWrapper_Invoke_EnvironmentOverrides(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	spec := specFor(t, func() string { return "echo $MY_TEST_VAR" }, func(s *domain.TaskSpec) {
		s.Env = map[string]string{"MY_TEST_VAR": "test-value-123"}
	})

	value, err := invokeInline(t, mocks.NewMockLogger(ctrl), spec, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "test-value-123", value)
}

func TestWrapper_Invoke_StderrGoesToLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info("test-task: warning line")

	spec := specFor(t, func() string { return "echo 'warning line' >&2; echo ok" })

	value, err := invokeInline(t, log, spec, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", value)
}

func TestWrapper_Invoke_CommandFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	spec := specFor(t, func() string { return "exit 42" })

	_, err := invokeInline(t, mocks.NewMockLogger(ctrl), spec, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCommandFailed)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	meta := zErr.Metadata()
	assert.Equal(t, 42, meta["exit_code"])
	assert.Equal(t, "test-task", meta["task"])
}

func TestWrapper_Invoke_NonStringCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	spec := specFor(t, func() int { return 7 })

	_, err := invokeInline(t, mocks.NewMockLogger(ctrl), spec, nil, nil)
	assert.ErrorIs(t, err, domain.ErrCommandNotString)
}

func TestWrapper_Invoke_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	spec := specFor(t, func() string { return "   " })

	_, err := invokeInline(t, mocks.NewMockLogger(ctrl), spec, nil, nil)
	assert.ErrorIs(t, err, domain.ErrCommandNotString)
}

func TestWrapper_Invoke_RenderErrorAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	spec := specFor(t, func() (string, error) {
		return "", domain.ErrMissingCommand
	})

	_, err := invokeInline(t, mocks.NewMockLogger(ctrl), spec, nil, nil)
	assert.ErrorIs(t, err, domain.ErrMissingCommand)
}

func TestWrapper_Invoke_AuxiliaryFileOutputs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	out := filepath.Join(t.TempDir(), "result.txt")
	spec := specFor(t, func() string { return "echo data > " + out }, func(s *domain.TaskSpec) {
		s.AuxiliaryFiles = []string{out}
	})

	w, err := shell.NewRunner(mocks.NewMockLogger(ctrl)).Wrap(spec, nil)
	require.NoError(t, err)
	inv, err := w.Invoke(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Len(t, inv.Outputs, 1)

	path, err := inv.Outputs[0].Result(context.Background())
	require.NoError(t, err)
	assert.Equal(t, out, path)

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "data\n", string(content))
}

func TestWrapper_Invoke_MissingAuxiliaryFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	missing := filepath.Join(t.TempDir(), "never-created.txt")
	spec := specFor(t, func() string { return "true" }, func(s *domain.TaskSpec) {
		s.AuxiliaryFiles = []string{missing}
	})

	w, err := shell.NewRunner(mocks.NewMockLogger(ctrl)).Wrap(spec, nil)
	require.NoError(t, err)
	inv, err := w.Invoke(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Len(t, inv.Outputs, 1)

	_, err = inv.Outputs[0].Result(context.Background())
	assert.ErrorIs(t, err, domain.ErrAuxiliaryFileMissing)
}

func TestWrapper_Invoke_SubmitsToExecutionContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	spec := specFor(t, func() string { return "echo unused" })
	args := []any{}
	want := future.Resolved("from-engine")

	exec := mocks.NewMockExecutionContext(ctrl)
	exec.EXPECT().
		Submit(gomock.Any(), spec, args, nil, gomock.Any()).
		Return(want)

	w, err := shell.NewRunner(mocks.NewMockLogger(ctrl)).Wrap(spec, exec)
	require.NoError(t, err)

	inv, err := w.Invoke(context.Background(), args, nil)
	require.NoError(t, err)
	assert.Same(t, want, inv.Result)
}

package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskforge/taskforge/internal/adapters/fs"
	"github.com/taskforge/taskforge/internal/core/domain"
)

func newHasher() *fs.Hasher {
	return fs.NewHasher(fs.NewWalker())
}

func specWith(identity string, mutate ...func(*domain.TaskSpec)) domain.TaskSpec {
	spec := domain.TaskSpec{
		Identity:       identity,
		CachingEnabled: true,
	}
	for _, m := range mutate {
		m(&spec)
	}
	return spec
}

func TestComputeInvocationHash_Deterministic(t *testing.T) {
	h := newHasher()
	spec := specWith("id-1")
	args := []any{1, "two", []any{3.0}}
	kwargs := map[string]any{"a": 1, "b": "x"}

	h1, err := h.ComputeInvocationHash(spec, args, kwargs)
	require.NoError(t, err)
	h2, err := h.ComputeInvocationHash(spec, args, kwargs)
	require.NoError(t, err)

	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 16)
}

func TestComputeInvocationHash_SensitiveToIdentity(t *testing.T) {
	h := newHasher()

	h1, err := h.ComputeInvocationHash(specWith("id-1"), nil, nil)
	require.NoError(t, err)
	h2, err := h.ComputeInvocationHash(specWith("id-2"), nil, nil)
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestComputeInvocationHash_SensitiveToArguments(t *testing.T) {
	h := newHasher()
	spec := specWith("id-1")

	h1, err := h.ComputeInvocationHash(spec, []any{1}, nil)
	require.NoError(t, err)
	h2, err := h.ComputeInvocationHash(spec, []any{2}, nil)
	require.NoError(t, err)
	h3, err := h.ComputeInvocationHash(spec, nil, map[string]any{"k": 1})
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.NotEqual(t, h1, h3)
}

func TestComputeInvocationHash_KeywordOrderIrrelevant(t *testing.T) {
	h := newHasher()
	spec := specWith("id-1")

	// Maps iterate in random order; repeated hashing exercises it.
	kwargs := map[string]any{"a": 1, "b": 2, "c": 3, "d": 4, "e": 5}
	first, err := h.ComputeInvocationHash(spec, nil, kwargs)
	require.NoError(t, err)

	for range 10 {
		again, err := h.ComputeInvocationHash(spec, nil, kwargs)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestComputeInvocationHash_SensitiveToEnvironment(t *testing.T) {
	h := newHasher()

	h1, err := h.ComputeInvocationHash(specWith("id-1"), nil, nil)
	require.NoError(t, err)
	h2, err := h.ComputeInvocationHash(specWith("id-1", func(s *domain.TaskSpec) {
		s.Env = map[string]string{"K": "v"}
	}), nil, nil)
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestComputeInvocationHash_UnserializableArgument(t *testing.T) {
	h := newHasher()

	_, err := h.ComputeInvocationHash(specWith("id-1"), []any{make(chan int)}, nil)
	assert.Error(t, err)
}

func TestComputeInvocationHash_AuxiliaryFileContent(t *testing.T) {
	h := newHasher()
	input := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(input, []byte("v1"), 0o644))

	spec := specWith("id-1", func(s *domain.TaskSpec) {
		s.AuxiliaryFiles = []string{input}
	})

	h1, err := h.ComputeInvocationHash(spec, nil, nil)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(input, []byte("v2"), 0o644))
	h2, err := h.ComputeInvocationHash(spec, nil, nil)
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestComputeInvocationHash_AuxiliaryDirectory(t *testing.T) {
	h := newHasher()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("b"), 0o644))

	spec := specWith("id-1", func(s *domain.TaskSpec) {
		s.AuxiliaryFiles = []string{dir}
	})

	h1, err := h.ComputeInvocationHash(spec, nil, nil)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("changed"), 0o644))
	h2, err := h.ComputeInvocationHash(spec, nil, nil)
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestComputeInvocationHash_AuxiliaryGlob(t *testing.T) {
	h := newHasher()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "x.csv"), []byte("1,2"), 0o644))

	spec := specWith("id-1", func(s *domain.TaskSpec) {
		s.AuxiliaryFiles = []string{filepath.Join(dir, "*.csv")}
	})

	_, err := h.ComputeInvocationHash(spec, nil, nil)
	require.NoError(t, err)
}

func TestComputeInvocationHash_MissingAuxiliaryInput(t *testing.T) {
	h := newHasher()

	spec := specWith("id-1", func(s *domain.TaskSpec) {
		s.AuxiliaryFiles = []string{filepath.Join(t.TempDir(), "absent.txt")}
	})

	_, err := h.ComputeInvocationHash(spec, nil, nil)
	assert.ErrorIs(t, err, domain.ErrAuxiliaryInputMissing)
}

func TestComputeFileHash(t *testing.T) {
	h := newHasher()
	path := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))

	h1, err := h.ComputeFileHash(path)
	require.NoError(t, err)
	h2, err := h.ComputeFileHash(path)
	require.NoError(t, err)
	assert.Equal(t, h1, h2)

	_, err = h.ComputeFileHash(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestWalker_SkipsVersionControlAndIgnores(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".git", "HEAD"), []byte("ref"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "node_modules"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "node_modules", "dep.js"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("x"), 0o644))

	var files []string
	for path := range fs.NewWalker().WalkFiles(dir, []string{"node_modules"}) {
		files = append(files, filepath.Base(path))
	}

	assert.Equal(t, []string{"keep.txt"}, files)
}

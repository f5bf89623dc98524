package source_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskforge/taskforge/internal/adapters/source"
	"github.com/taskforge/taskforge/internal/core/domain"
)

func doubleIt(x int) int {
	return x * 2
}

func mustCallable(t *testing.T, fn any) *domain.Callable {
	t.Helper()
	c, err := domain.NewCallable(fn)
	require.NoError(t, err)
	return c
}

func TestProvider_Source_NamedFunction(t *testing.T) {
	p := source.NewProvider()

	src, ok := p.Source(mustCallable(t, doubleIt))
	require.True(t, ok)

	assert.True(t, strings.HasPrefix(src, "func doubleIt(x int) int"), "got: %q", src)
	assert.Contains(t, src, "return x * 2")
}

func TestProvider_Source_Deterministic(t *testing.T) {
	p := source.NewProvider()

	s1, ok := p.Source(mustCallable(t, doubleIt))
	require.True(t, ok)
	s2, ok := p.Source(mustCallable(t, doubleIt))
	require.True(t, ok)

	assert.Equal(t, s1, s2)
}

func TestProvider_Source_ClosureGetsLiteralOnly(t *testing.T) {
	p := source.NewProvider()

	offset := 10
	closure := func(x int) int { return x + offset } // marker: closure body

	src, ok := p.Source(mustCallable(t, closure))
	require.True(t, ok)

	assert.Contains(t, src, "return x + offset")
	// The literal, not the enclosing test function.
	assert.NotContains(t, src, "TestProvider_Source_ClosureGetsLiteralOnly")
}

func TestProvider_Source_ExplicitTextWins(t *testing.T) {
	p := source.NewProvider()

	c := mustCallable(t, doubleIt).WithSource("echo from-taskfile")

	src, ok := p.Source(c)
	require.True(t, ok)
	assert.Equal(t, "echo from-taskfile", src)
}

func TestProvider_Source_SyntheticFunction(t *testing.T) {
	p := source.NewProvider()

	// A function fabricated at runtime has no source file to read.
	fnType := reflect.TypeOf(func(int) int { return 0 })
	made := reflect.MakeFunc(fnType, func(args []reflect.Value) []reflect.Value {
		return []reflect.Value{reflect.ValueOf(0)}
	}).Interface()

	_, ok := p.Source(mustCallable(t, made))
	assert.False(t, ok)
}

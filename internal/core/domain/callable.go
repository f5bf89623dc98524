// Package domain contains the core domain types for task classification,
// identity and invocation.
package domain

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"go.trai.ch/zerr"
)

var kwargsType = reflect.TypeOf(map[string]any(nil))

// Callable wraps a user-supplied function together with the metadata captured
// once at registration time: a display name and the formal parameter
// signature. The function value is owned by reference and never mutated.
type Callable struct {
	fn   reflect.Value
	name string
	src  string
	sig  Signature
}

// Signature describes the formal parameter list of a callable. It is captured
// at construction time so wrappers can validate invocation arguments without
// re-reflecting on every call.
type Signature struct {
	// NumIn is the number of formal parameters, counting a variadic tail as one.
	NumIn int
	// Variadic reports whether the final parameter is variadic.
	Variadic bool
	// In holds the parameter type names, for diagnostics.
	In []string
	// Out holds the result type names, for diagnostics.
	Out []string
}

// NewCallable wraps fn, deriving the display name from the function symbol.
// It returns an error if fn is not a function.
func NewCallable(fn any) (*Callable, error) {
	return NewNamedCallable("", fn)
}

// NewNamedCallable wraps fn under an explicit display name. An empty name
// falls back to the name derived from the function symbol.
func NewNamedCallable(name string, fn any) (*Callable, error) {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		return nil, zerr.With(ErrNotAFunction, "type", fmt.Sprintf("%T", fn))
	}
	if v.IsNil() {
		return nil, zerr.With(ErrNotAFunction, "type", "nil "+v.Type().String())
	}
	if name == "" {
		name = funcName(v)
	}
	return &Callable{
		fn:   v,
		name: name,
		sig:  signatureOf(v.Type()),
	}, nil
}

// WithSource returns a copy of the callable carrying explicit source text.
// Source providers prefer this text over best-effort extraction, so it gives
// dynamically constructed callables a precise cache identity.
func (c *Callable) WithSource(src string) *Callable {
	cp := *c
	cp.src = src
	return &cp
}

// Name returns the display name of the callable.
func (c *Callable) Name() string {
	return c.name
}

// Signature returns the captured formal parameter signature.
func (c *Callable) Signature() Signature {
	return c.sig
}

// SourceText returns the explicit source text, or "" if none was attached.
func (c *Callable) SourceText() string {
	return c.src
}

// Func returns the underlying function value.
func (c *Callable) Func() reflect.Value {
	return c.fn
}

// Call invokes the underlying function with positional arguments and returns
// its results. When the final formal parameter is a map[string]any and the
// positional arguments fill every other slot, the keyword arguments are bound
// to it; otherwise non-empty keyword arguments are rejected. Argument arity
// and assignability are validated here, not by the factory that produced the
// invocation.
func (c *Callable) Call(args []any, kwargs map[string]any) ([]any, error) {
	t := c.fn.Type()

	if c.acceptsKwargs(len(args)) {
		if kwargs == nil {
			kwargs = map[string]any{}
		}
		args = append(append(make([]any, 0, len(args)+1), args...), kwargs)
	} else if len(kwargs) > 0 {
		return nil, zerr.With(ErrUnexpectedKeywordArgs, "callable", c.name)
	}

	if err := c.checkArity(len(args)); err != nil {
		return nil, err
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		v, err := c.coerceArg(t, i, arg)
		if err != nil {
			return nil, err
		}
		in[i] = v
	}

	out := c.fn.Call(in)
	results := make([]any, len(out))
	for i, v := range out {
		results[i] = v.Interface()
	}
	return results, nil
}

// ResultAndError splits results returned by Call according to the convention
// that a trailing error return reports failure. With the error peeled off, a
// single remaining value is returned as is, none as nil and several as a
// slice.
func (c *Callable) ResultAndError(results []any) (any, error) {
	if n := len(results); n > 0 && n == len(c.sig.Out) && c.sig.Out[n-1] == "error" {
		if err, ok := results[n-1].(error); ok && err != nil {
			return nil, err
		}
		results = results[:n-1]
	}
	switch len(results) {
	case 0:
		return nil, nil
	case 1:
		return results[0], nil
	default:
		return results, nil
	}
}

// acceptsKwargs reports whether the trailing parameter is a keyword slot left
// open by the positional arguments.
func (c *Callable) acceptsKwargs(numArgs int) bool {
	t := c.fn.Type()
	return !t.IsVariadic() &&
		t.NumIn() > 0 &&
		t.In(t.NumIn()-1) == kwargsType &&
		numArgs == t.NumIn()-1
}

func (c *Callable) checkArity(numArgs int) error {
	t := c.fn.Type()
	if t.IsVariadic() {
		if numArgs >= t.NumIn()-1 {
			return nil
		}
	} else if numArgs == t.NumIn() {
		return nil
	}
	err := zerr.With(ErrArgumentCountMismatch, "callable", c.name)
	err = zerr.With(err, "expected", t.NumIn())
	return zerr.With(err, "got", numArgs)
}

func (c *Callable) coerceArg(t reflect.Type, i int, arg any) (reflect.Value, error) {
	var pt reflect.Type
	if t.IsVariadic() && i >= t.NumIn()-1 {
		pt = t.In(t.NumIn() - 1).Elem()
	} else {
		pt = t.In(i)
	}

	if arg == nil {
		switch pt.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
			return reflect.Zero(pt), nil
		default:
			return reflect.Value{}, c.argTypeError(i, "nil", pt)
		}
	}

	av := reflect.ValueOf(arg)
	if !av.Type().AssignableTo(pt) {
		return reflect.Value{}, c.argTypeError(i, av.Type().String(), pt)
	}
	return av, nil
}

func (c *Callable) argTypeError(i int, got string, want reflect.Type) error {
	err := zerr.With(ErrArgumentTypeMismatch, "callable", c.name)
	err = zerr.With(err, "index", i)
	err = zerr.With(err, "got", got)
	return zerr.With(err, "want", want.String())
}

func signatureOf(t reflect.Type) Signature {
	sig := Signature{
		NumIn:    t.NumIn(),
		Variadic: t.IsVariadic(),
		In:       make([]string, t.NumIn()),
		Out:      make([]string, t.NumOut()),
	}
	for i := range t.NumIn() {
		sig.In[i] = t.In(i).String()
	}
	for i := range t.NumOut() {
		sig.Out[i] = t.Out(i).String()
	}
	return sig
}

// funcName derives a short display name from the function symbol, mirroring
// what the runtime reports: the last path segment with its package prefix and
// method-value suffix stripped.
func funcName(v reflect.Value) string {
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return "anonymous"
	}
	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}

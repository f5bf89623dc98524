// Package source recovers the source text of callables for identity hashing.
package source

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"runtime"
	"sync"

	"github.com/taskforge/taskforge/internal/core/domain"
	"github.com/taskforge/taskforge/internal/core/ports"
)

var _ ports.SourceProvider = (*Provider)(nil)

// Provider implements ports.SourceProvider. Explicit source text attached to
// a callable always wins; otherwise the provider locates the function's
// defining file through the runtime and cuts the smallest enclosing function
// declaration or literal out of it. That only works when the source tree is
// present at the recorded path, so every lookup can fail and the caller must
// treat a miss as a recoverable degradation.
type Provider struct {
	mu    sync.Mutex
	files map[string]*parsedFile
}

type parsedFile struct {
	data []byte
	fset *token.FileSet
	ast  *ast.File
}

// NewProvider creates a new Provider.
func NewProvider() *Provider {
	return &Provider{files: make(map[string]*parsedFile)}
}

// Source returns the source text of the callable, or ("", false) when it
// cannot be recovered.
func (p *Provider) Source(c *domain.Callable) (string, bool) {
	if src := c.SourceText(); src != "" {
		return src, true
	}

	fn := c.Func()
	rf := runtime.FuncForPC(fn.Pointer())
	if rf == nil {
		return "", false
	}
	file, line := rf.FileLine(rf.Entry())
	if file == "" || line <= 0 {
		return "", false
	}

	parsed, err := p.parse(file)
	if err != nil {
		return "", false
	}
	return extractFunc(parsed, line)
}

func (p *Provider) parse(path string) (*parsedFile, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if cached, ok := p.files[path]; ok {
		return cached, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // Path comes from the runtime's symbol table
	if err != nil {
		return nil, err
	}
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, path, data, 0)
	if err != nil {
		return nil, err
	}

	parsed := &parsedFile{data: data, fset: fset, ast: f}
	p.files[path] = parsed
	return parsed, nil
}

// extractFunc cuts the smallest function declaration or literal whose span
// contains line out of the file. The smallest match matters for closures: a
// literal defined inside another function must not hash the whole enclosing
// body.
func extractFunc(pf *parsedFile, line int) (string, bool) {
	var best ast.Node

	ast.Inspect(pf.ast, func(n ast.Node) bool {
		switch n.(type) {
		case *ast.FuncDecl, *ast.FuncLit:
		default:
			return true
		}
		start := pf.fset.Position(n.Pos())
		end := pf.fset.Position(n.End())
		if line < start.Line || line > end.Line {
			return true
		}
		if best == nil || spanOf(pf.fset, n) < spanOf(pf.fset, best) {
			best = n
		}
		return true
	})

	if best == nil {
		return "", false
	}

	start := pf.fset.Position(best.Pos()).Offset
	end := pf.fset.Position(best.End()).Offset
	if start < 0 || end > len(pf.data) || start >= end {
		return "", false
	}
	return string(pf.data[start:end]), true
}

func spanOf(fset *token.FileSet, n ast.Node) int {
	return fset.Position(n.End()).Offset - fset.Position(n.Pos()).Offset
}

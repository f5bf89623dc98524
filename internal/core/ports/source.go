package ports

import "github.com/taskforge/taskforge/internal/core/domain"

// SourceProvider retrieves the source text of a callable on a best-effort
// basis. Absence is a normal, expected outcome: callers fall back to the
// callable's display name as a degraded cache identity.
//
//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type SourceProvider interface {
	// Source returns the callable's source text and true, or "" and false if
	// the source cannot be recovered.
	Source(c *domain.Callable) (string, bool)
}

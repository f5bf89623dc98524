package ports

import "github.com/taskforge/taskforge/internal/core/domain"

// MemoStore defines the interface for storing and retrieving memoized
// invocation results.
//
//go:generate mockgen -source=memo_store.go -destination=mocks/mock_memo_store.go -package=mocks
type MemoStore interface {
	// Get retrieves the entry for the given invocation hash.
	// Returns nil, nil if not found.
	Get(key string) (*domain.MemoEntry, error)

	// Put stores the entry.
	Put(entry domain.MemoEntry) error
}

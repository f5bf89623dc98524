// Package memo implements the invocation memo store on a flat JSON file.
package memo

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/taskforge/taskforge/internal/core/domain"
)

// DefaultPath is where the store lives when no explicit path is configured.
const DefaultPath = ".taskforge/memo.json"

// Store implements ports.MemoStore using a flat JSON file keyed by invocation
// hash. The full content is held in memory; every Put rewrites the file.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.MemoEntry
}

// NewStore creates a new Store backed by the file at the given path. A
// missing file is an empty store, not an error.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.MemoEntry),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.Join(domain.ErrStoreReadFailed, err)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return errors.Join(domain.ErrStoreUnmarshalFailed, err)
	}

	return nil
}

func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return errors.Join(domain.ErrStoreMarshalFailed, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return errors.Join(domain.ErrStoreCreateFailed, err)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return errors.Join(domain.ErrStoreWriteFailed, err)
	}

	return nil
}

// Get retrieves the entry for the given invocation hash. A miss returns
// (nil, nil).
func (s *Store) Get(key string) (*domain.MemoEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.cache[key]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

// Put stores the entry under its key, replacing any previous value.
func (s *Store) Put(entry domain.MemoEntry) error {
	s.mu.Lock()
	s.cache[entry.Key] = entry
	s.mu.Unlock()

	return s.save()
}

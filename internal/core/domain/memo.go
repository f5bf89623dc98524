package domain

import (
	"encoding/json"
	"time"
)

// MemoEntry stores a memoized invocation result.
type MemoEntry struct {
	// Key is the invocation hash: content identity combined with the argument
	// and auxiliary-file digests.
	Key string `json:"key"`
	// Identity is the content identity of the task that produced the entry.
	Identity string `json:"identity"`
	// Value is the JSON-encoded invocation result.
	Value json.RawMessage `json:"value"`
	// ComputedAt is the timestamp when the result was stored.
	ComputedAt time.Time `json:"computed_at"`
}

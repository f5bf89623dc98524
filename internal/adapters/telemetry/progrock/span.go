package progrock

import (
	"fmt"
	"sync"

	"github.com/vito/progrock"
)

// span implements ports.Span wrapping *progrock.VertexRecorder. The recorded
// error is held until End so the vertex completes exactly once.
type span struct {
	vertex *progrock.VertexRecorder

	mu  sync.Mutex
	err error
}

// Write streams task output onto the vertex's stdout channel.
func (s *span) Write(p []byte) (n int, err error) {
	return s.vertex.Stdout().Write(p)
}

// End completes the vertex, carrying any recorded error.
func (s *span) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vertex.Done(s.err)
}

// RecordError records the failure the vertex will complete with.
func (s *span) RecordError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// SetAttribute annotates the vertex. A memoization hit flips it to cached;
// other attributes land in the vertex log.
func (s *span) SetAttribute(key string, value any) {
	if key == "memoized" {
		if hit, ok := value.(bool); ok && hit {
			s.vertex.Cached()
			return
		}
	}
	_, _ = fmt.Fprintf(s.vertex.Stdout(), "%s=%v\n", key, value)
}

package pseries

import "sync"

// memoStream is a lazy, memoized, restartable sequence of values backed by
// a producer that yields one value per call. Every Cursor opened over a
// memoStream shares the same cache, so a given index is computed by the
// producer at most once regardless of how many cursors read it.
//
// The cache is an append-only slice rather than a single value, since a
// memoStream serves an unbounded number of indices rather than one.
type memoStream[T any] struct {
	mu        sync.Mutex
	producer  func() (T, bool)
	cache     []T
	exhausted bool
}

// newMemoStream constructs a memoStream around a producer. The producer
// is called lazily: the first call happens the first time some cursor
// requests an index past the current cache.
func newMemoStream[T any](producer func() (T, bool)) *memoStream[T] {
	return &memoStream[T]{producer: producer}
}

// cursor is an independent position over a memoStream. Advancing one
// cursor never affects any other cursor's position.
type cursor[T any] struct {
	stream *memoStream[T]
	index  int
}

// openCursor returns a Cursor positioned at index 0.
func (s *memoStream[T]) openCursor() *cursor[T] {
	return &cursor[T]{stream: s}
}

// next returns the value at the cursor's current index and advances it,
// or reports ok=false if the stream is exhausted at that index.
//
// The producer is invoked with the stream's lock released. Self-referential
// producers (reciprocal, exponential, square root, inverse)
// read earlier, already-cached coefficients of the very stream they are
// producing for; those reads must not block on a lock this goroutine
// already holds, or every self-referential operation would deadlock on
// its second coefficient. Productivity guarantees those
// reentrant reads only ever target indices strictly less than the one
// currently being produced, so they are always satisfied from cache.
func (c *cursor[T]) next() (value T, ok bool) {
	s := c.stream

	s.mu.Lock()
	if c.index < len(s.cache) {
		v := s.cache[c.index]
		c.index++
		s.mu.Unlock()
		return v, true
	}
	if s.exhausted {
		s.mu.Unlock()
		var zero T
		return zero, false
	}
	s.mu.Unlock()

	v, produced := s.producer()

	s.mu.Lock()
	defer s.mu.Unlock()
	if c.index < len(s.cache) {
		// A reentrant call already advanced the cache past our index while
		// the producer above was running; serve the cached value instead
		// of trusting this call's (possibly redundant) result.
		vv := s.cache[c.index]
		c.index++
		return vv, true
	}
	if !produced {
		s.exhausted = true
		var zero T
		return zero, false
	}
	s.cache = append(s.cache, v)
	c.index++
	return v, true
}

// lenIfExhausted returns the number of cached values and true if the
// producer has signaled end-of-sequence, or (0, false) if it has not.
func (s *memoStream[T]) lenIfExhausted() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.exhausted {
		return 0, false
	}
	return len(s.cache), true
}

package pseries

import (
	"sync"
)

// Series is a handle to a memoized, lazy sequence of rational coefficients,
// extended by convention with an infinite trailing tail of zero. Every
// algebraic operation on a Series returns a new Series whose producer
// closes over its operands; Series are never mutated through the public
// API, though they accumulate memoized internal state.
//
// Internally it is a mutex-guarded identity plus a set of lazily
// computed, cached derived fields.
type Series struct {
	id     uint64
	stream *memoStream[*Rational]

	mu              sync.Mutex
	zeroVal         *Rational
	zeroComputed    bool
	headCache       *Series
	tailCache       *Series
	xmulCache       *Series
	derivativeCache *Series
	reciprocalCache *Series
	inverseCache    *Series
	sqrtCache       *Series
	expCache        *Series
	logCache        *Series
	integralCache   map[string]*Series
	addCache        map[uint64]*Series
	mulCache        map[uint64]*Series
	composeCache    map[uint64]*Series
}

// newSeries allocates a Series with no stream attached yet. It exists so
// self-referential operations (Reciprocal, Exponential, SquareRoot,
// Inverse) can capture the returned pointer in a producer
// closure before the stream it will read from is assigned — a late-binding
// slot: allocate the identity first, close over it, attach the stream once
// every operand it needs is ready.
func newSeries() *Series {
	return &Series{id: nextSeriesID()}
}

// newSeriesFromProducer allocates a fully-formed Series around a producer
// function that yields one coefficient per call, or signals end with ok=false.
func newSeriesFromProducer(producer func() (*Rational, bool)) *Series {
	s := newSeries()
	s.stream = newMemoStream(producer)
	return s
}

// seriesCursor is a cursor over a Series' coefficient sequence that never
// signals end-of-sequence: once the underlying memoStream is exhausted it
// pads with Rational zero forever, matching Series' infinite coefficient
// view.
type seriesCursor struct {
	cur *cursor[*Rational]
}

func (s *Series) cursor() *seriesCursor {
	return &seriesCursor{cur: s.stream.openCursor()}
}

func (sc *seriesCursor) next() *Rational {
	v, ok := sc.cur.next()
	if !ok {
		return zeroRat()
	}
	return v
}

// Empty returns the Series with every coefficient zero.
func Empty() *Series {
	return newSeriesFromProducer(func() (*Rational, bool) {
		return nil, false
	})
}

// FromProducer constructs a Series from a function that yields the next
// coefficient on each call, or reports end-of-sequence with ok=false.
// Once a producer returns ok=false, it is never called again; the Series
// presents zero for every later index.
func FromProducer(producer func() (coeff *Rational, ok bool)) *Series {
	return newSeriesFromProducer(producer)
}

// FromFunc constructs a Series whose nth coefficient is f(n), for
// n = 0, 1, 2, ....
func FromFunc(f func(n int) *Rational) *Series {
	n := 0
	return newSeriesFromProducer(func() (*Rational, bool) {
		v := f(n)
		n++
		return v, true
	})
}

// FromList constructs a finite Series with the given coefficients in
// order; every coefficient beyond the list's length is zero.
func FromList(coeffs []*Rational) *Series {
	i := 0
	return newSeriesFromProducer(func() (*Rational, bool) {
		if i >= len(coeffs) {
			return nil, false
		}
		v := coeffs[i]
		i++
		return v, true
	})
}

// ZeroOf returns the zeroth coefficient of s, computed once and cached.
// The lock is not held while the producer runs, so a producer that
// reaches back into s (as self-referential operations do) cannot deadlock.
func (s *Series) ZeroOf() *Rational {
	s.mu.Lock()
	if s.zeroComputed {
		v := s.zeroVal
		s.mu.Unlock()
		return v
	}
	s.mu.Unlock()

	v := s.cursor().next()

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.zeroComputed {
		s.zeroVal = v
		s.zeroComputed = true
	}
	return s.zeroVal
}

// Head returns the Series whose zeroth coefficient equals s's zeroth
// coefficient and every other coefficient is zero.
func (s *Series) Head() *Series {
	s.mu.Lock()
	if s.headCache != nil {
		h := s.headCache
		s.mu.Unlock()
		return h
	}
	s.mu.Unlock()

	yielded := false
	h := newSeriesFromProducer(func() (*Rational, bool) {
		if yielded {
			return nil, false
		}
		yielded = true
		return s.ZeroOf(), true
	})

	s.mu.Lock()
	s.headCache = h
	s.mu.Unlock()
	return h
}

// Tail returns the Series whose nth coefficient equals s's (n+1)th.
func (s *Series) Tail() *Series {
	s.mu.Lock()
	if s.tailCache != nil {
		t := s.tailCache
		s.mu.Unlock()
		return t
	}
	s.mu.Unlock()

	started := false
	var sc *seriesCursor
	t := newSeriesFromProducer(func() (*Rational, bool) {
		if !started {
			sc = s.cursor()
			sc.next() // discard s's zeroth coefficient
			started = true
		}
		return sc.cur.next()
	})

	s.mu.Lock()
	s.tailCache = t
	s.mu.Unlock()
	return t
}

// XMul returns the Series whose zeroth coefficient is zero and whose
// (n+1)th coefficient equals s's nth. XMul(s) represents x * s.
func (s *Series) XMul() *Series {
	s.mu.Lock()
	if s.xmulCache != nil {
		x := s.xmulCache
		s.mu.Unlock()
		return x
	}
	s.mu.Unlock()

	first := true
	var sc *seriesCursor
	x := newSeriesFromProducer(func() (*Rational, bool) {
		if first {
			first = false
			return zeroRat(), true
		}
		if sc == nil {
			sc = s.cursor()
		}
		return sc.next(), true
	})

	s.mu.Lock()
	s.xmulCache = x
	s.mu.Unlock()
	return x
}

// Coeff returns the nth coefficient of s, computing and caching every
// coefficient up to n if it has not been requested before.
func (s *Series) Coeff(n int) *Rational {
	c := s.cursor()
	for i := 0; i < n; i++ {
		c.next()
	}
	return c.next()
}

// FirstK returns the first k coefficients of s as a slice.
func (s *Series) FirstK(k int) []*Rational {
	out := make([]*Rational, k)
	c := s.cursor()
	for i := 0; i < k; i++ {
		out[i] = c.next()
	}
	return out
}

package pseries

import (
	"fmt"

	"github.com/donisio/powerseries/internal/errdomain"
)

// Add returns the Series whose nth coefficient is s's nth plus t's nth,
// treating either operand's missing (beyond-exhaustion) coefficients as
// zero. Memoized per right-operand identity.
func (s *Series) Add(t *Series) *Series {
	if cached, ok := s.getAddCache(t.id); ok {
		return cached
	}

	cs := s.cursor()
	ct := t.cursor()
	result := newSeriesFromProducer(func() (*Rational, bool) {
		return addRat(cs.next(), ct.next()), true
	})

	s.setAddCache(t.id, result)
	return result
}

// AddRat returns s with c added to its zeroth coefficient, i.e. s + the
// series (c, 0, 0, ...).
func (s *Series) AddRat(c *Rational) *Series {
	cs := s.cursor()
	n := 0
	return newSeriesFromProducer(func() (*Rational, bool) {
		v := cs.next()
		n++
		if n == 1 {
			return addRat(c, v), true
		}
		return v, true
	})
}

// Sub returns s - t.
func (s *Series) Sub(t *Series) *Series {
	cs := s.cursor()
	ct := t.cursor()
	return newSeriesFromProducer(func() (*Rational, bool) {
		return subRat(cs.next(), ct.next()), true
	})
}

// SubRat returns s with c subtracted from its zeroth coefficient.
func (s *Series) SubRat(c *Rational) *Series {
	return s.AddRat(negRat(c))
}

// Neg returns -s, i.e. (-1)*s.
func (s *Series) Neg() *Series {
	return s.MulRat(ratFromInt(-1))
}

// MulRat returns c*s, scalar multiplication. c == 0 yields the all-zero
// series without consulting s; c == 1 returns s itself.
func (s *Series) MulRat(c *Rational) *Series {
	if isZeroRat(c) {
		return Empty()
	}
	if c.Cmp(oneRat()) == 0 {
		return s
	}
	cs := s.cursor()
	return newSeriesFromProducer(func() (*Rational, bool) {
		return mulRat(c, cs.next()), true
	})
}

// Mul returns the Cauchy product s*t, using a productive rewriting that
// emits the constant term before reading the recursive subterm:
//
//	S*T = (S0*T0) :: (tail(S)*tail(T)).xmul + S0*tail(T) + T0*tail(S)
//
// All reads of s and t (including their zeroth coefficients) are deferred
// until the result's producer is first invoked, so Mul is safe to call
// with a not-yet-fully-constructed self-referential operand (as
// Reciprocal, Exponential, SquareRoot and Inverse all do).
// Memoized per right-operand identity.
func (s *Series) Mul(t *Series) *Series {
	if cached, ok := s.getMulCache(t.id); ok {
		return cached
	}

	var (
		initialized bool
		firstTerm   *Rational
		firstDone   bool
		restCur     *seriesCursor
	)

	result := newSeries()
	result.stream = newMemoStream(func() (*Rational, bool) {
		if !initialized {
			s0 := s.ZeroOf()
			t0 := t.ZeroOf()
			firstTerm = mulRat(s0, t0)

			rest := s.Tail().Mul(t.Tail()).XMul()
			if !isZeroRat(s0) {
				rest = rest.Add(t.Tail().MulRat(s0))
			}
			if !isZeroRat(t0) {
				rest = rest.Add(s.Tail().MulRat(t0))
			}
			restCur = rest.cursor()
			initialized = true
		}
		if !firstDone {
			firstDone = true
			return firstTerm, true
		}
		return restCur.next(), true
	})

	s.setMulCache(t.id, result)
	return result
}

// getAddCache and friends isolate the per-operand memo tables' locking so
// Add/Mul stay readable.
// mutex-guarded, lazily-initialized per-key caches.
func (s *Series) getAddCache(key uint64) (*Series, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.addCache == nil {
		return nil, false
	}
	v, ok := s.addCache[key]
	return v, ok
}

func (s *Series) setAddCache(key uint64, v *Series) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.addCache == nil {
		s.addCache = make(map[uint64]*Series)
	}
	s.addCache[key] = v
}

func (s *Series) getMulCache(key uint64) (*Series, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mulCache == nil {
		return nil, false
	}
	v, ok := s.mulCache[key]
	return v, ok
}

func (s *Series) setMulCache(key uint64, v *Series) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mulCache == nil {
		s.mulCache = make(map[uint64]*Series)
	}
	s.mulCache[key] = v
}

// Reciprocal returns 1/s, defined only when s's zeroth coefficient is
// nonzero. Defined recursively as:
//
//	1/S = r :: (-r) * (tail(S) * (1/S))
//
// where r = 1/S0. The result is built as a self-referential Series: its
// own pointer is captured by the closures that construct (-r)*(tail(S)*R)
// before its producer is attached, so the recursive reference resolves
// lazily the first time a coefficient past the zeroth is demanded — the
// "late-binding slot" pattern: allocate the pointer, close over it, and
// only assign its stream once every operand it needs is ready.
func (s *Series) Reciprocal() (*Series, error) {
	s.mu.Lock()
	if s.reciprocalCache != nil {
		r := s.reciprocalCache
		s.mu.Unlock()
		return r, nil
	}
	s.mu.Unlock()

	r0 := s.ZeroOf()
	if isZeroRat(r0) {
		return nil, fmt.Errorf("%w: reciprocal of series with zero constant term", errdomain.ErrInvalidDomain)
	}
	recip := invRat(r0)

	result := newSeries()
	rest := s.Tail().Mul(result).MulRat(negRat(recip))
	restCur := rest.cursor()

	first := true
	result.stream = newMemoStream(func() (*Rational, bool) {
		if first {
			first = false
			return recip, true
		}
		return restCur.next(), true
	})

	s.mu.Lock()
	s.reciprocalCache = result
	s.mu.Unlock()
	return result, nil
}

// Div returns s/t, defined as s * (1/t).
func (s *Series) Div(t *Series) (*Series, error) {
	recip, err := t.Reciprocal()
	if err != nil {
		return nil, err
	}
	return s.Mul(recip), nil
}

// DivRat returns s scaled by 1/c. Division by zero is an invalid domain,
// the same failure math/big.Rat.Inv would otherwise panic on.
func (s *Series) DivRat(c *Rational) (*Series, error) {
	if isZeroRat(c) {
		return nil, fmt.Errorf("%w: division by a zero rational constant", errdomain.ErrInvalidDomain)
	}
	return s.MulRat(invRat(c)), nil
}

package pseries

import (
	"fmt"
	"math"

	"github.com/donisio/powerseries/internal/errdomain"
)

// Compose returns s(t), defined only when t's zeroth coefficient is zero.
// Defined as:
//
//	S(T) = S0 :: tail(T) * tail(S)(T)
//
// Memoized per argument identity.
func (s *Series) Compose(t *Series) (*Series, error) {
	if cached, ok := s.getComposeCache(t.id); ok {
		return cached, nil
	}

	t0 := t.ZeroOf()
	if !isZeroRat(t0) {
		return nil, fmt.Errorf("%w: composition with nonzero-headed argument", errdomain.ErrInvalidDomain)
	}

	var (
		initialized bool
		s0          *Rational
		firstDone   bool
		restCur     *seriesCursor
	)

	result := newSeries()
	result.stream = newMemoStream(func() (*Rational, bool) {
		if !initialized {
			s0 = s.ZeroOf()
			// s.Tail() composed with the same t can never fail: t0 == 0
			// was already verified above and is the only precondition.
			tailComposed, _ := s.Tail().Compose(t)
			rest := t.Tail().Mul(tailComposed)
			restCur = rest.cursor()
			initialized = true
		}
		if !firstDone {
			firstDone = true
			return s0, true
		}
		return restCur.next(), true
	})

	s.setComposeCache(t.id, result)
	return result, nil
}

// Derivative returns D(S), whose nth coefficient is (n+1)*S(n+1).
func (s *Series) Derivative() *Series {
	s.mu.Lock()
	if s.derivativeCache != nil {
		d := s.derivativeCache
		s.mu.Unlock()
		return d
	}
	s.mu.Unlock()

	tailCur := s.Tail().cursor()
	n := 0
	d := newSeriesFromProducer(func() (*Rational, bool) {
		term := tailCur.next()
		v := mulRat(ratFromInt(int64(n+1)), term)
		n++
		return v, true
	})

	s.mu.Lock()
	s.derivativeCache = d
	s.mu.Unlock()
	return d
}

// Integral returns I(S, const): the series with zeroth coefficient const
// and (n+1)th coefficient S(n)/(n+1). Memoized by constant.
func (s *Series) Integral(c *Rational) *Series {
	key := c.RatString()

	s.mu.Lock()
	if s.integralCache == nil {
		s.integralCache = make(map[string]*Series)
	}
	if cached, ok := s.integralCache[key]; ok {
		s.mu.Unlock()
		return cached
	}
	s.mu.Unlock()

	sc := s.cursor()
	n := 0
	first := true
	result := newSeriesFromProducer(func() (*Rational, bool) {
		if first {
			first = false
			return c, true
		}
		term := sc.next()
		v := quoRat(term, ratFromInt(int64(n+1)))
		n++
		return v, true
	})

	s.mu.Lock()
	s.integralCache[key] = result
	s.mu.Unlock()
	return result
}

// Exponential returns e^s, defined only when s's zeroth coefficient is
// zero. E satisfies E = I(E * D(S), 1); productive
// because Integral always emits its constant before consulting its
// argument.
func (s *Series) Exponential() (*Series, error) {
	s.mu.Lock()
	if s.expCache != nil {
		e := s.expCache
		s.mu.Unlock()
		return e, nil
	}
	s.mu.Unlock()

	s0 := s.ZeroOf()
	if !isZeroRat(s0) {
		return nil, fmt.Errorf("%w: exponential of series with nonzero constant term", errdomain.ErrInvalidDomain)
	}

	var (
		initialized bool
		restCur     *seriesCursor
	)

	result := newSeries()
	result.stream = newMemoStream(func() (*Rational, bool) {
		if !initialized {
			integrand := result.Mul(s.Derivative())
			integral := integrand.Integral(oneRat())
			restCur = integral.cursor()
			initialized = true
		}
		return restCur.next(), true
	})

	s.mu.Lock()
	s.expCache = result
	s.mu.Unlock()
	return result, nil
}

// Logarithm returns log(1+s), defined only when s's zeroth coefficient is
// zero. L = I(D(S)/(1+S), 0). Not self-referential: the
// formula never reads the result it is building.
func (s *Series) Logarithm() (*Series, error) {
	s.mu.Lock()
	if s.logCache != nil {
		l := s.logCache
		s.mu.Unlock()
		return l, nil
	}
	s.mu.Unlock()

	s0 := s.ZeroOf()
	if !isZeroRat(s0) {
		return nil, fmt.Errorf("%w: logarithm of series with nonzero constant term", errdomain.ErrInvalidDomain)
	}

	onePlusS := s.AddRat(oneRat())
	quotient, err := s.Derivative().Div(onePlusS)
	if err != nil {
		// Unreachable: onePlusS's zeroth coefficient is always 1.
		return nil, err
	}
	result := quotient.Integral(zeroRat())

	s.mu.Lock()
	s.logCache = result
	s.mu.Unlock()
	return result, nil
}

// SquareRoot returns sqrt(s), defined only when s's zeroth coefficient is
// nonzero. Defined as:
//
//	sqrt(S) = s0 :: tail(S) * 1/(s0 + sqrt(S))
//
// s0 here is computed as the float64 square root of S's zeroth
// coefficient, converted back to an exact Rational — the single admitted
// source of floating-point imprecision in the library.
func (s *Series) SquareRoot() (*Series, error) {
	s.mu.Lock()
	if s.sqrtCache != nil {
		r := s.sqrtCache
		s.mu.Unlock()
		return r, nil
	}
	s.mu.Unlock()

	c0 := s.ZeroOf()
	if isZeroRat(c0) {
		return nil, fmt.Errorf("%w: square root of series with zero constant term", errdomain.ErrInvalidDomain)
	}

	f, _ := c0.Float64()
	if f < 0 {
		return nil, fmt.Errorf("%w: square root of series with negative constant term", errdomain.ErrInvalidDomain)
	}
	root := new(Rational).SetFloat64(math.Sqrt(f))
	if root == nil {
		return nil, fmt.Errorf("%w: square root constant term has no finite floating-point representation", errdomain.ErrInvalidDomain)
	}

	var (
		initialized bool
		restCur     *seriesCursor
		first       = true
	)

	result := newSeries()
	result.stream = newMemoStream(func() (*Rational, bool) {
		if first {
			first = false
			return root, true
		}
		if !initialized {
			denom := result.AddRat(root)
			recipDenom, err := denom.Reciprocal()
			if err != nil {
				// denom's zeroth coefficient is 2*root, nonzero whenever
				// root is (root == 0 only if c0 == 0, already excluded).
				panic("pseries: unreachable square root denominator failure: " + err.Error())
			}
			product := s.Tail().Mul(recipDenom)
			restCur = product.cursor()
			initialized = true
		}
		return restCur.next(), true
	})

	s.mu.Lock()
	s.sqrtCache = result
	s.mu.Unlock()
	return result, nil
}

// Inverse returns the compositional inverse of s: the unique series
// Inv(S) with S(Inv(S)) = X. Defined only when s's zeroth coefficient is
// zero and its linear coefficient is nonzero. Defined as:
//
//	Inv(S) = 0 :: r :: (-r) * tail(I) * tail(I) * (tail(tail(S)))(I)
//
// where r = 1/S1 and I denotes Inv(S) itself. Two coefficients (0, then
// r) are emitted before the self-referential recursion on I is ever
// demanded.
func (s *Series) Inverse() (*Series, error) {
	s.mu.Lock()
	if s.inverseCache != nil {
		i := s.inverseCache
		s.mu.Unlock()
		return i, nil
	}
	s.mu.Unlock()

	s0 := s.ZeroOf()
	if !isZeroRat(s0) {
		return nil, fmt.Errorf("%w: compositional inverse of series with nonzero constant term", errdomain.ErrInvalidDomain)
	}
	s1 := s.Tail().ZeroOf()
	if isZeroRat(s1) {
		return nil, fmt.Errorf("%w: compositional inverse of series with zero linear term", errdomain.ErrInvalidDomain)
	}
	r := invRat(s1)

	var (
		initialized bool
		restCur     *seriesCursor
		n           = 0
	)

	result := newSeries()
	result.stream = newMemoStream(func() (*Rational, bool) {
		switch n {
		case 0:
			n++
			return zeroRat(), true
		case 1:
			n++
			return r, true
		default:
			if !initialized {
				tailI := result.Tail()
				ttS := s.Tail().Tail()
				ttSofI, err := ttS.Compose(result)
				if err != nil {
					panic("pseries: unreachable inverse composition failure: " + err.Error())
				}
				rest := tailI.Mul(tailI).Mul(ttSofI).MulRat(negRat(r))
				restCur = rest.cursor()
				initialized = true
			}
			n++
			return restCur.next(), true
		}
	})

	s.mu.Lock()
	s.inverseCache = result
	s.mu.Unlock()
	return result, nil
}

func (s *Series) getComposeCache(key uint64) (*Series, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.composeCache == nil {
		return nil, false
	}
	v, ok := s.composeCache[key]
	return v, ok
}

func (s *Series) setComposeCache(key uint64, v *Series) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.composeCache == nil {
		s.composeCache = make(map[uint64]*Series)
	}
	s.composeCache[key] = v
}

package eval

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/donisio/powerseries/internal/errdomain"
	"github.com/donisio/powerseries/pseries"
)

// Cause identifies why a DivergenceError was raised.
type Cause int

const (
	// CauseRatioTest means the ratio test fired more than ratio_max
	// times (counted over the whole evaluation, not necessarily in a row):
	// the series' terms grew relative to each other too often to
	// plausibly be converging.
	CauseRatioTest Cause = iota
	// CauseOverflow means a term's numerator or denominator exceeded
	// the configured bit-length ceiling.
	CauseOverflow
)

func (c Cause) String() string {
	switch c {
	case CauseRatioTest:
		return "ratio test"
	case CauseOverflow:
		return "overflow"
	default:
		return "unknown"
	}
}

// DivergenceError reports that an adaptive or fixed evaluation could not
// produce a trustworthy sum: the series appears to diverge at the
// requested point, or a term grew past the evaluator's numeric ceiling.
type DivergenceError struct {
	Cause Cause
	N     int // number of terms consumed before the failure
}

func (e *DivergenceError) Error() string {
	return fmt.Sprintf("pseries/eval: divergence detected (%s) after %d terms", e.Cause, e.N)
}

// Evaluate sums series at x, returning an exact Rational. With no
// options, it runs in adaptive mode with the package
// defaults (epsilon 1/10000, n_max 50, ratio_max 5). Pass Fixed(k) to
// sum exactly k terms instead.
func Evaluate(series *pseries.Series, x *big.Rat, opts ...Option) (*big.Rat, error) {
	if series == nil || x == nil {
		return nil, fmt.Errorf("%w: evaluate requires a non-nil series and point", errdomain.ErrInvalidDomain)
	}
	o := applyOptions(opts)

	if o.fixed {
		return evaluateFixed(series, x, o)
	}
	return evaluateAdaptive(series, x, o)
}

func evaluateFixed(series *pseries.Series, x *big.Rat, o options) (*big.Rat, error) {
	result := new(big.Rat)
	xt := big.NewRat(1, 1)
	for n := 0; n < o.fixedTerms; n++ {
		term := new(big.Rat).Mul(series.Coeff(n), xt)
		if exceedsBitLen(term, o.maxBits) {
			return nil, &DivergenceError{Cause: CauseOverflow, N: n}
		}
		result.Add(result, term)
		xt.Mul(xt, x)
	}
	return result, nil
}

func evaluateAdaptive(series *pseries.Series, x *big.Rat, o options) (*big.Rat, error) {
	result := new(big.Rat)
	xt := big.NewRat(1, 1)
	var ratioLast *big.Rat
	ratioCount := 0

	for n := 0; n < o.nMax; n++ {
		term := new(big.Rat).Mul(series.Coeff(n), xt)
		if exceedsBitLen(term, o.maxBits) {
			return nil, &DivergenceError{Cause: CauseOverflow, N: n}
		}
		result.Add(result, term)

		if term.Sign() != 0 {
			if absLess(term, new(big.Rat).Mul(o.epsilon, new(big.Rat).Abs(result))) {
				return result, nil
			}
			if ratioLast != nil {
				ratio := new(big.Rat).Quo(new(big.Rat).Abs(term), new(big.Rat).Abs(ratioLast))
				if ratio.Cmp(big.NewRat(1, 1)) > 0 {
					ratioCount++
					if ratioCount > o.ratioMax {
						return nil, &DivergenceError{Cause: CauseRatioTest, N: n}
					}
				}
			}
			ratioLast = term
		}

		xt.Mul(xt, x)
	}
	return result, nil
}

func absLess(a, b *big.Rat) bool {
	return new(big.Rat).Abs(a).Cmp(b) < 0
}

func exceedsBitLen(r *big.Rat, maxBits int) bool {
	if maxBits <= 0 {
		return false
	}
	return r.Num().BitLen() > maxBits || r.Denom().BitLen() > maxBits
}

// IsDivergence reports whether err is a DivergenceError and, if so,
// returns it.
func IsDivergence(err error) (*DivergenceError, bool) {
	var de *DivergenceError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

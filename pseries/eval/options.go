// Package eval implements the convergence-controlled numerical evaluator:
// summing a pseries.Series at a rational point under a fixed-term-count
// or adaptive ratio-test stopping rule.
package eval

import "math/big"

// Option configures an Evaluate call. Options are applied on top of
// defaultOptions, the adaptive default: epsilon 1/10000, n_max 50,
// ratio_max 5.
type Option func(*options)

// options holds the resolved configuration for one Evaluate call.
type options struct {
	fixed      bool
	fixedTerms int

	epsilon  *big.Rat
	nMax     int
	ratioMax int
	maxBits  int
}

// defaultMaxBits bounds the bit length of any term's numerator or
// denominator. math/big.Rat has no fixed width and so cannot overflow
// the way a machine rational would; this ceiling gives evaluate's
// overflow branch something to observe when summing a
// genuinely divergent series would otherwise grow its terms without
// bound forever.
const defaultMaxBits = 4096

func defaultOptions() options {
	return options{
		epsilon:  big.NewRat(1, 10000),
		nMax:     50,
		ratioMax: 5,
		maxBits:  defaultMaxBits,
	}
}

// Fixed sums exactly k terms and returns their total unconditionally
// (subject only to the overflow ceiling described at defaultMaxBits);
// it does not apply the ratio test or epsilon tolerance.
func Fixed(k int) Option {
	return func(o *options) {
		o.fixed = true
		o.fixedTerms = k
	}
}

// WithEpsilon sets the adaptive convergence tolerance: summation stops
// once the magnitude of the latest nonzero term is less than epsilon
// times the magnitude of the current partial sum.
func WithEpsilon(epsilon *big.Rat) Option {
	return func(o *options) {
		o.epsilon = epsilon
	}
}

// WithFigures sets the adaptive tolerance to 10^-d, i.e. roughly d
// significant decimal figures of precision.
func WithFigures(d int) Option {
	return func(o *options) {
		den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(d)), nil)
		o.epsilon = new(big.Rat).SetFrac(big.NewInt(1), den)
	}
}

// WithNMax caps the number of terms an adaptive evaluation will consume
// before returning its current partial sum.
func WithNMax(nMax int) Option {
	return func(o *options) {
		o.nMax = nMax
	}
}

// WithRatioMax sets how many ratio-test failures an adaptive evaluation
// tolerates before raising DivergenceError. Failures are counted over the
// whole evaluation; they need not be consecutive.
func WithRatioMax(ratioMax int) Option {
	return func(o *options) {
		o.ratioMax = ratioMax
	}
}

// WithMaxBitLen overrides the bit-length ceiling on term numerators and
// denominators beyond which evaluation fails with DivergenceError
// (Cause Overflow) instead of continuing indefinitely.
func WithMaxBitLen(bits int) Option {
	return func(o *options) {
		o.maxBits = bits
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

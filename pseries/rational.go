package pseries

import "math/big"

// Rational is the exact number type every Series coefficient is made of.
// It is math/big.Rat directly: no third-party arbitrary-precision
// rational library appears anywhere in the retrieved example corpus, and
// math/big is the Go ecosystem's standard answer to "exact rational
// arithmetic" (see DESIGN.md). The core only ever uses construction from
// integers, +, -, *, /, negation, absolute value, comparison, and the
// exact zero test.
type Rational = big.Rat

func zeroRat() *Rational {
	return new(Rational)
}

func oneRat() *Rational {
	return big.NewRat(1, 1)
}

func ratFromInt(n int64) *Rational {
	return big.NewRat(n, 1)
}

func isZeroRat(r *Rational) bool {
	return r.Sign() == 0
}

func addRat(a, b *Rational) *Rational {
	return new(Rational).Add(a, b)
}

func subRat(a, b *Rational) *Rational {
	return new(Rational).Sub(a, b)
}

func mulRat(a, b *Rational) *Rational {
	return new(Rational).Mul(a, b)
}

func negRat(a *Rational) *Rational {
	return new(Rational).Neg(a)
}

func invRat(a *Rational) *Rational {
	return new(Rational).Inv(a)
}

func quoRat(a, b *Rational) *Rational {
	return new(Rational).Quo(a, b)
}

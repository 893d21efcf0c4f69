// Package pseries implements formal power series over the rationals as
// lazy, memoized coefficient streams.
//
// A Series represents the sequence (a0, a1, a2, ...) of coefficients of
// a power series sum(an * x^n), extended conceptually with an infinite
// trailing tail of zero. Coefficients are exact *big.Rat values, computed
// on demand and cached so that no coefficient is ever computed twice for
// the same Series.
//
// # Core types
//
// memoStream[T] is the demand-driven, memoized sequence underneath every
// Series: a producer function is called at most once per index, and the
// resulting value is cached for every Cursor opened over the stream.
//
//	s := pseries.Exp()
//	a3 := s.Coeff(3) // 1/6, computed once and cached
//
// Series operations (Add, Mul, Reciprocal, Compose, Exponential, ...)
// each construct a new Series whose producer closes over its operands.
// Several operations (Reciprocal, Exponential, SquareRoot, Inverse) are
// self-referential: the result Series is constructed before
// its own producer is attached, so the producer's closure can read the
// result lazily. This is productive by construction — each of those
// operations is defined so its producer emits at least one coefficient
// before it ever needs to read a coefficient of itself.
//
// # Equality
//
// Series equality (Equal) compares a bounded prefix of coefficients; it
// is not a decision procedure for mathematical identity and is not a
// valid hash key.
package pseries

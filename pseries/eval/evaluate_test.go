package eval

import (
	"math/big"
	"testing"

	"github.com/donisio/powerseries/pseries"
)

func TestEvaluateFixedExpAtOne(t *testing.T) {
	// evaluate(expseries(), 1, fixed(6)) = 163/60.
	got, err := Evaluate(pseries.Exp(), big.NewRat(1, 1), Fixed(6))
	if err != nil {
		t.Fatalf("Evaluate() error: %v", err)
	}
	want := big.NewRat(163, 60)
	if got.Cmp(want) != 0 {
		t.Errorf("Evaluate(exp, 1, fixed(6)) = %s, want %s", got.RatString(), want.RatString())
	}
}

func TestEvaluateAdaptiveExpConvergesQuickly(t *testing.T) {
	got, err := Evaluate(pseries.Exp(), big.NewRat(1, 1), WithEpsilon(big.NewRat(1, 10000)))
	if err != nil {
		t.Fatalf("Evaluate() error: %v", err)
	}
	// e, to high precision, as a sanity bound.
	e := big.NewRat(2718281828, 1000000000)
	diff := new(big.Rat).Sub(got, e)
	diff.Abs(diff)
	if diff.Cmp(big.NewRat(1, 100)) > 0 {
		t.Errorf("Evaluate(exp, 1, adaptive) = %s, too far from e", got.RatString())
	}
}

func TestEvaluateRejectsNilSeries(t *testing.T) {
	if _, err := Evaluate(nil, big.NewRat(1, 1)); err == nil {
		t.Fatalf("Evaluate(nil, ...) should fail")
	}
}

func TestEvaluateAtZeroReturnsConstantTerm(t *testing.T) {
	got, err := Evaluate(pseries.Cos(), big.NewRat(0, 1), Fixed(5))
	if err != nil {
		t.Fatalf("Evaluate() error: %v", err)
	}
	if got.Cmp(big.NewRat(1, 1)) != 0 {
		t.Errorf("Evaluate(cos, 0, fixed(5)) = %s, want 1", got.RatString())
	}
}

func TestEvaluateDivergesOnRatioTest(t *testing.T) {
	// The geometric series sum(2^n * x^n) evaluated at x=1 diverges: each
	// term is twice the last, well past the ratio test's threshold of 1.
	s := pseries.FromFunc(func(n int) *big.Rat {
		v := big.NewInt(1)
		v.Lsh(v, uint(n))
		return new(big.Rat).SetInt(v)
	})
	_, err := Evaluate(s, big.NewRat(1, 1), WithRatioMax(2))
	if err == nil {
		t.Fatalf("Evaluate() on a divergent series should fail")
	}
	de, ok := IsDivergence(err)
	if !ok {
		t.Fatalf("expected a DivergenceError, got %v", err)
	}
	if de.Cause != CauseRatioTest {
		t.Errorf("Cause = %v, want CauseRatioTest", de.Cause)
	}
}

func TestWithFiguresMatchesEquivalentEpsilon(t *testing.T) {
	a, err := Evaluate(pseries.Sin(), big.NewRat(1, 2), WithFigures(4))
	if err != nil {
		t.Fatalf("Evaluate() error: %v", err)
	}
	b, err := Evaluate(pseries.Sin(), big.NewRat(1, 2), WithEpsilon(big.NewRat(1, 10000)))
	if err != nil {
		t.Fatalf("Evaluate() error: %v", err)
	}
	if a.Cmp(b) != 0 {
		t.Errorf("WithFigures(4) result %s differs from equivalent WithEpsilon result %s", a.RatString(), b.RatString())
	}
}

func TestEvaluateOverflowsPastBitLengthCeiling(t *testing.T) {
	s := pseries.FromFunc(func(n int) *big.Rat {
		v := big.NewInt(1)
		v.Lsh(v, uint(n))
		return new(big.Rat).SetInt(v)
	})
	_, err := Evaluate(s, big.NewRat(2, 1), Fixed(200), WithMaxBitLen(32))
	if err == nil {
		t.Fatalf("Evaluate() should overflow the bit-length ceiling")
	}
	de, ok := IsDivergence(err)
	if !ok {
		t.Fatalf("expected a DivergenceError, got %v", err)
	}
	if de.Cause != CauseOverflow {
		t.Errorf("Cause = %v, want CauseOverflow", de.Cause)
	}
}

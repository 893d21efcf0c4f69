package pseries

import "testing"

func TestAddSubIdentities(t *testing.T) {
	// S + ZERO = S; ZERO + S = S; S - ZERO = S; ZERO - S = -S.
	s := FromList(ratSlice(1, 2, 3))
	zero := Empty()

	if !Equal(s.Add(zero), s, 10) {
		t.Errorf("S + ZERO != S")
	}
	if !Equal(zero.Add(s), s, 10) {
		t.Errorf("ZERO + S != S")
	}
	if !Equal(s.Sub(zero), s, 10) {
		t.Errorf("S - ZERO != S")
	}
	if !Equal(zero.Sub(s), s.Neg(), 10) {
		t.Errorf("ZERO - S != -S")
	}
}

func TestMulIdentities(t *testing.T) {
	// S*ONE = S; ONE*S = S; S*0 = ZERO.
	s := FromList(ratSlice(2, 3, 5))
	one := One()
	zero := Empty()

	if !Equal(s.Mul(one), s, 10) {
		t.Errorf("S*ONE != S")
	}
	if !Equal(one.Mul(s), s, 10) {
		t.Errorf("ONE*S != S")
	}
	if !Equal(s.MulRat(zeroRat()), zero, 10) {
		t.Errorf("S*0 != ZERO")
	}
}

func TestMulMatchesConvolution(t *testing.T) {
	a := FromList(ratSlice(1, 1))    // 1 + x
	b := FromList(ratSlice(1, -1))   // 1 - x
	want := FromList(ratSlice(1, 0, -1)) // 1 - x^2
	if !Equal(a.Mul(b), want, 10) {
		t.Errorf("(1+x)*(1-x) != 1-x^2")
	}
}

func TestReciprocalOfConstIsConst(t *testing.T) {
	half := FromList([]*Rational{new(Rational).SetFrac64(1, 2)})
	recip, err := half.Reciprocal()
	if err != nil {
		t.Fatalf("Reciprocal() error: %v", err)
	}
	requireCoeffs(t, recip, []*Rational{ratFromInt(2)})
}

func TestReciprocalOfGeometricSeries(t *testing.T) {
	// 1/(1-x) is the all-ones series.
	oneMinusX := FromList(ratSlice(1, -1))
	recip, err := oneMinusX.Reciprocal()
	if err != nil {
		t.Fatalf("Reciprocal() error: %v", err)
	}
	requireCoeffs(t, recip, ratSlice(1, 1, 1, 1, 1, 1))
}

func TestReciprocalRejectsZeroConstant(t *testing.T) {
	s := FromList(ratSlice(0, 1))
	if _, err := s.Reciprocal(); err == nil {
		t.Fatalf("Reciprocal() on zero-headed series should fail")
	}
}

func TestSReciprocalIsOne(t *testing.T) {
	// S0 != 0 => S * (1/S) = ONE.
	s := Sin().Add(Cos())
	recip, err := s.Reciprocal()
	if err != nil {
		t.Fatalf("Reciprocal() error: %v", err)
	}
	if !Equal(s.Mul(recip), One(), 10) {
		t.Errorf("S * (1/S) != ONE")
	}
}

func TestDivByRatConstant(t *testing.T) {
	s := FromList(ratSlice(2, 4, 6))
	half, err := s.DivRat(ratFromInt(2))
	if err != nil {
		t.Fatalf("DivRat() error: %v", err)
	}
	requireCoeffs(t, half, ratSlice(1, 2, 3))
}

func TestDivRatByZeroFails(t *testing.T) {
	s := FromList(ratSlice(1))
	if _, err := s.DivRat(zeroRat()); err == nil {
		t.Fatalf("DivRat(0) should fail")
	}
}

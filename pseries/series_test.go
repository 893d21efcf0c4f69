package pseries

import "testing"

func ratSlice(vals ...int64) []*Rational {
	out := make([]*Rational, len(vals))
	for i, v := range vals {
		out[i] = ratFromInt(v)
	}
	return out
}

func requireCoeffs(t *testing.T, s *Series, want []*Rational) {
	t.Helper()
	got := s.FirstK(len(want))
	for i := range want {
		if got[i].Cmp(want[i]) != 0 {
			t.Errorf("coefficient %d = %s, want %s", i, got[i].RatString(), want[i].RatString())
		}
	}
}

func TestEmptyIsAllZero(t *testing.T) {
	requireCoeffs(t, Empty(), ratSlice(0, 0, 0, 0))
}

func TestFromListPadsWithZero(t *testing.T) {
	s := FromList(ratSlice(1, 2, 3))
	requireCoeffs(t, s, ratSlice(1, 2, 3, 0, 0))
}

func TestFromFunc(t *testing.T) {
	s := FromFunc(func(n int) *Rational { return ratFromInt(int64(n * n)) })
	requireCoeffs(t, s, ratSlice(0, 1, 4, 9, 16))
}

func TestHeadAndTail(t *testing.T) {
	s := FromList(ratSlice(5, 6, 7))

	requireCoeffs(t, s.Head(), ratSlice(5, 0, 0, 0))
	requireCoeffs(t, s.Tail(), ratSlice(6, 7, 0, 0))
}

func TestXMul(t *testing.T) {
	s := FromList(ratSlice(1, 2, 3))
	requireCoeffs(t, s.XMul(), ratSlice(0, 1, 2, 3, 0))
}

func TestStructuralIdentityHeadPlusXMulTail(t *testing.T) {
	// S = head(S) + xmul(tail(S)).
	s := NSeries()
	sum := s.Head().Add(s.Tail().XMul())
	if !Equal(sum, s, 10) {
		t.Errorf("head(S) + xmul(tail(S)) != S")
	}
}

func TestTailOfXMulIsOriginal(t *testing.T) {
	s := NSeries()
	if !Equal(s.XMul().Tail(), s, 10) {
		t.Errorf("tail(xmul(S)) != S")
	}
}

func TestCoeffAndFirstKAgree(t *testing.T) {
	s := FromList(ratSlice(1, 2, 3, 4))
	first := s.FirstK(4)
	for i, want := range ratSlice(1, 2, 3, 4) {
		if got := s.Coeff(i); got.Cmp(want) != 0 || got.Cmp(first[i]) != 0 {
			t.Errorf("Coeff(%d) = %s, FirstK(4)[%d] = %s, want %s", i, got.RatString(), i, first[i].RatString(), want.RatString())
		}
	}
}

func TestDerivedViewsAreMemoized(t *testing.T) {
	s := FromList(ratSlice(1, 2, 3))
	if s.Head() != s.Head() {
		t.Errorf("Head() returned different objects across calls")
	}
	if s.Tail() != s.Tail() {
		t.Errorf("Tail() returned different objects across calls")
	}
	if s.XMul() != s.XMul() {
		t.Errorf("XMul() returned different objects across calls")
	}
}

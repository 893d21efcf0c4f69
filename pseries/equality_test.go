package pseries

import "testing"

func TestEqualDefaultLimit(t *testing.T) {
	a := FromList(ratSlice(1, 2, 3))
	b := FromList(ratSlice(1, 2, 3))
	if !Equal(a, b, 0) {
		t.Errorf("identical series should compare equal")
	}
}

func TestEqualDetectsDifference(t *testing.T) {
	a := FromList(ratSlice(1, 2, 3))
	b := FromList(ratSlice(1, 2, 4))
	if Equal(a, b, 0) {
		t.Errorf("series differing at index 2 should not compare equal")
	}
}

func TestEqualRespectsExplicitLimit(t *testing.T) {
	a := FromList(ratSlice(1, 2, 3))
	b := FromList(ratSlice(1, 2, 999))
	if !Equal(a, b, 2) {
		t.Errorf("series agreeing on first 2 coefficients should compare equal with limit 2")
	}
	if Equal(a, b, 3) {
		t.Errorf("series disagreeing at index 2 should not compare equal with limit 3")
	}
}

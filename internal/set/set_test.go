package set

import "testing"

func TestString(t *testing.T) {
	s1 := &String{}

	// Test that Has works on a new set.
	if s1.Has("x") {
		t.Error("'x' is in the empty set")
	}

	s1.Add("a")
	s1.Add("b", "ccc")

	expectStrings(s1, []string{"a", "b", "ccc"}, []string{"not-in"}, t)

	s2 := NewString("a", "b", "c")
	expectStrings(s2, []string{"a", "b", "c"}, []string{"not-in"}, t)

	// Test that Has works (and not panics) on a nil set.
	var s3 *String
	if s3.Has("x") {
		t.Error("'x' is in the nil set")
	}
}

func expectStrings(s *String, in []string, notIn []string, t *testing.T) {
	for _, str := range in {
		if !s.Has(str) {
			t.Errorf("String %q not in set, it should be", str)
		}
	}

	for _, str := range notIn {
		if s.Has(str) {
			t.Errorf("String %q is in the set, should not be", str)
		}
	}
}

func TestUint32(t *testing.T) {
	s1 := &Uint32{}

	if s1.Has(7) {
		t.Error("7 is in the empty set")
	}
	if s1.Len() != 0 {
		t.Errorf("empty set has length %d", s1.Len())
	}

	s1.Add(1)
	s1.Add(2, 0xc02f)

	for _, v := range []uint32{1, 2, 0xc02f} {
		if !s1.Has(v) {
			t.Errorf("%#x not in set, it should be", v)
		}
	}
	if s1.Has(99) {
		t.Error("99 is in the set, should not be")
	}
	if s1.Len() != 3 {
		t.Errorf("set has length %d, expected 3", s1.Len())
	}

	// Has and Len on a nil set.
	var s2 *Uint32
	if s2.Has(1) {
		t.Error("1 is in the nil set")
	}
	if s2.Len() != 0 {
		t.Errorf("nil set has length %d", s2.Len())
	}
}

package state

import "testing"

func TestIdentical(t *testing.T) {
	a := &item{name: "a"}
	if !Identical(a, a) {
		t.Fatalf("expected pointer to be identical to itself")
	}
	if Identical(a, &item{name: "a"}) {
		t.Fatalf("expected distinct pointers not to be identical")
	}

	s := []int{1, 2, 3}
	if !Identical(s, s) {
		t.Fatalf("expected slice to be identical to itself")
	}
	if Identical(s, s[:2]) {
		t.Fatalf("expected resliced header not to be identical")
	}
	if Identical(s, []int{1, 2, 3}) {
		t.Fatalf("expected copied slice not to be identical")
	}

	m := map[string]int{"a": 1}
	if !Identical(m, m) || Identical(m, map[string]int{"a": 1}) {
		t.Fatalf("expected maps to compare by reference")
	}

	if !Identical(3, 3) || Identical(3, 4) {
		t.Fatalf("expected scalars to compare by value")
	}
	if !Identical[any](nil, nil) {
		t.Fatalf("expected nil interfaces to be identical")
	}
	if Identical[any](a, 1) {
		t.Fatalf("expected different dynamic types not to be identical")
	}
	if !Identical[any](a, a) {
		t.Fatalf("expected boxed pointer to be identical to itself")
	}

	f := func() {}
	if Identical(f, f) {
		t.Fatalf("expected funcs never to be identical")
	}

	type holder struct{ items []int }
	h := holder{items: s}
	if Identical(h, h) {
		t.Fatalf("expected non-comparable struct never to be identical")
	}
}

func TestIsZero(t *testing.T) {
	if !isZero[*item](nil) || !isZero("") || !isZero(0) {
		t.Fatalf("expected zero values to report zero")
	}
	if isZero("x") || isZero([]int{}) {
		t.Fatalf("expected non-zero values to report non-zero")
	}
}

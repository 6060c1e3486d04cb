package core

import "testing"

func TestNewRNGIsDeterministic(t *testing.T) {
	a := NewRNG(42).Source()
	b := NewRNG(42).Source()
	for i := 0; i < 32; i++ {
		if av, bv := a.IntN(1000), b.IntN(1000); av != bv {
			t.Fatalf("draw %d diverged: %d vs %d", i, av, bv)
		}
	}
}

func TestFillBitsIsDeterministicAndMixed(t *testing.T) {
	a := NewBitGrid(16, 16)
	b := NewBitGrid(16, 16)
	FillBits(NewRNG(7).Source(), a)
	FillBits(NewRNG(7).Source(), b)

	ones := 0
	for i := 0; i < a.Len(); i++ {
		if a.Get(i) != b.Get(i) {
			t.Fatalf("same seed filled cell %d differently", i)
		}
		ones += int(a.Get(i))
	}
	if ones == 0 || ones == a.Len() {
		t.Fatalf("fill produced %d ones out of %d, want a mix", ones, a.Len())
	}
}

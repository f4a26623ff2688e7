package core

import "testing"

func TestDeterministicStreams(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 100; i++ {
		if av, bv := a.Float64(), b.Float64(); av != bv {
			t.Fatalf("draw %d diverged: %v vs %v", i, av, bv)
		}
	}

	c := NewRNG(43)
	same := true
	d := NewRNG(42)
	for i := 0; i < 10; i++ {
		if c.Float64() != d.Float64() {
			same = false
		}
	}
	if same {
		t.Fatal("different seeds should produce different streams")
	}
}

func TestRangeNBounds(t *testing.T) {
	rng := NewRNG(7)
	for i := 0; i < 1000; i++ {
		v := rng.RangeN(4, 10)
		if v < 4 || v >= 10 {
			t.Fatalf("RangeN(4, 10) = %d, want value in [4, 10)", v)
		}
	}
	if v := rng.RangeN(5, 5); v != 5 {
		t.Fatalf("empty range should return lo, got %d", v)
	}
}

func TestIntNBounds(t *testing.T) {
	rng := NewRNG(11)
	for i := 0; i < 1000; i++ {
		v := rng.IntN(6)
		if v < 0 || v >= 6 {
			t.Fatalf("IntN(6) = %d, want value in [0, 6)", v)
		}
	}
	if v := rng.IntN(0); v != 0 {
		t.Fatalf("IntN(0) should return 0, got %d", v)
	}
}

func TestChanceExtremes(t *testing.T) {
	rng := NewRNG(3)
	for i := 0; i < 100; i++ {
		if rng.Chance(0) {
			t.Fatal("Chance(0) should never fire")
		}
		if !rng.Chance(1) {
			t.Fatal("Chance(1) should always fire")
		}
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	rng := NewRNG(99)
	vals := make([]int, 256)
	for i := range vals {
		vals[i] = i
	}
	rng.Shuffle(len(vals), func(i, j int) { vals[i], vals[j] = vals[j], vals[i] })

	seen := make([]bool, 256)
	for _, v := range vals {
		if v < 0 || v >= 256 || seen[v] {
			t.Fatalf("shuffle broke the permutation at value %d", v)
		}
		seen[v] = true
	}
}

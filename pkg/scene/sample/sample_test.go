package sample

import (
	"math/rand/v2"
	"testing"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestTakeDistinct(t *testing.T) {
	pool := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	for n := 1; n <= len(pool); n++ {
		got := Take(testRNG(), pool, n)
		if len(got) != n {
			t.Fatalf("Take(n=%d) returned %d elements", n, len(got))
		}

		seen := make(map[string]bool)
		for _, v := range got {
			if seen[v] {
				t.Errorf("Take(n=%d) returned duplicate %q", n, v)
			}
			seen[v] = true

			member := false
			for _, p := range pool {
				if p == v {
					member = true
					break
				}
			}
			if !member {
				t.Errorf("Take(n=%d) returned %q, not in pool", n, v)
			}
		}
	}
}

func TestTakeBounds(t *testing.T) {
	pool := []int{1, 2, 3}

	tests := []struct {
		name string
		n    int
		want int
	}{
		{name: "zero", n: 0, want: 0},
		{name: "negative", n: -5, want: 0},
		{name: "exceeds pool", n: 10, want: 3},
		{name: "exact", n: 3, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Take(testRNG(), pool, tt.n); len(got) != tt.want {
				t.Errorf("Take(n=%d) returned %d elements, want %d", tt.n, len(got), tt.want)
			}
		})
	}
}

func TestTakeDoesNotModifyPool(t *testing.T) {
	pool := []int{1, 2, 3, 4, 5}
	Take(testRNG(), pool, 3)

	for i, v := range pool {
		if v != i+1 {
			t.Fatalf("pool modified: %v", pool)
		}
	}
}

func TestTakeReproducible(t *testing.T) {
	pool := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	a := Take(rand.New(rand.NewPCG(7, 7)), pool, 5)
	b := Take(rand.New(rand.NewPCG(7, 7)), pool, 5)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different draws: %v vs %v", a, b)
		}
	}
}

func TestOne(t *testing.T) {
	if _, ok := One(testRNG(), []string(nil)); ok {
		t.Error("One(empty) ok = true, want false")
	}

	v, ok := One(testRNG(), []string{"only"})
	if !ok || v != "only" {
		t.Errorf("One([only]) = %q, %v; want only, true", v, ok)
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		n         int
		wantNouns int
		wantVerbs int
	}{
		{n: 10, wantNouns: 6, wantVerbs: 4},
		{n: 5, wantNouns: 3, wantVerbs: 2},
		{n: 1, wantNouns: 1, wantVerbs: 0},
		{n: 2, wantNouns: 2, wantVerbs: 0},
		{n: 3, wantNouns: 2, wantVerbs: 1},
		{n: 0, wantNouns: 0, wantVerbs: 0},
		{n: -1, wantNouns: 0, wantVerbs: 0},
	}

	for _, tt := range tests {
		nouns, verbs := Split(tt.n)
		if nouns != tt.wantNouns || verbs != tt.wantVerbs {
			t.Errorf("Split(%d) = %d, %d; want %d, %d",
				tt.n, nouns, verbs, tt.wantNouns, tt.wantVerbs)
		}
	}
}

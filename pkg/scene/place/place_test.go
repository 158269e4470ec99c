package place

import (
	"math/rand/v2"
	"testing"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(42, 42))
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		pad  int
		want bool
	}{
		{
			name: "identical rects",
			a:    Rect{X: 10, Y: 10, W: 100, H: 100},
			b:    Rect{X: 10, Y: 10, W: 100, H: 100},
			pad:  0,
			want: true,
		},
		{
			name: "clearly separated",
			a:    Rect{X: 0, Y: 0, W: 50, H: 50},
			b:    Rect{X: 200, Y: 200, W: 50, H: 50},
			pad:  10,
			want: false,
		},
		{
			name: "touching without pad",
			a:    Rect{X: 0, Y: 0, W: 50, H: 50},
			b:    Rect{X: 51, Y: 0, W: 50, H: 50},
			pad:  0,
			want: false,
		},
		{
			name: "separated but within pad",
			a:    Rect{X: 0, Y: 0, W: 50, H: 50},
			b:    Rect{X: 55, Y: 0, W: 50, H: 50},
			pad:  10,
			want: true,
		},
		{
			name: "vertical neighbors within pad",
			a:    Rect{X: 0, Y: 0, W: 50, H: 50},
			b:    Rect{X: 0, Y: 58, W: 50, H: 50},
			pad:  10,
			want: true,
		},
		{
			name: "contained rect",
			a:    Rect{X: 0, Y: 0, W: 200, H: 200},
			b:    Rect{X: 50, Y: 50, W: 20, H: 20},
			pad:  0,
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b, tt.pad); got != tt.want {
				t.Errorf("Overlaps(%+v, %+v, %d) = %v, want %v", tt.a, tt.b, tt.pad, got, tt.want)
			}
			// Symmetric arguments must agree.
			if got := Overlaps(tt.b, tt.a, tt.pad); got != tt.want {
				t.Errorf("Overlaps(%+v, %+v, %d) = %v, want %v (symmetry)", tt.b, tt.a, tt.pad, got, tt.want)
			}
		})
	}
}

func TestOverlapsPure(t *testing.T) {
	a := Rect{X: 10, Y: 10, W: 100, H: 100}
	b := Rect{X: 105, Y: 10, W: 100, H: 100}

	first := Overlaps(a, b, 12)
	second := Overlaps(a, b, 12)
	if first != second {
		t.Errorf("repeated calls disagree: %v then %v", first, second)
	}
}

func TestFindSpotNoPairwiseOverlap(t *testing.T) {
	p := Placer{
		CanvasW:  CanvasWidth,
		CanvasH:  CanvasHeight,
		Margin:   72,
		Pad:      12,
		MaxTries: 300,
	}
	rng := testRNG()

	var placed []Rect
	for range 20 {
		r, ok := p.FindSpot(rng, 400, 280, placed)
		if !ok {
			// Canvas filling up is a legal outcome; what matters is that
			// everything accepted so far is pairwise clear.
			break
		}
		placed = append(placed, r)
	}

	if len(placed) == 0 {
		t.Fatal("placed nothing on an empty canvas")
	}

	for i := range placed {
		for j := i + 1; j < len(placed); j++ {
			if Overlaps(placed[i], placed[j], p.Pad) {
				t.Errorf("rects %d and %d overlap: %+v vs %+v", i, j, placed[i], placed[j])
			}
		}
	}
}

func TestFindSpotWithinBounds(t *testing.T) {
	p := Placer{CanvasW: 1000, CanvasH: 800, Margin: 80, Pad: 8, MaxTries: 200}
	rng := testRNG()

	for range 50 {
		r, ok := p.FindSpot(rng, 100, 60, nil)
		if !ok {
			t.Fatal("FindSpot failed on an empty canvas")
		}
		if r.X < p.Margin || r.Y < p.Margin ||
			r.X+r.W > p.CanvasW-p.Margin || r.Y+r.H > p.CanvasH-p.Margin {
			t.Fatalf("rect %+v escapes the margin-adjusted canvas", r)
		}
	}
}

func TestFindSpotDegenerateSize(t *testing.T) {
	// countingRand proves the short-circuit happens before any sampling.
	p := Placer{CanvasW: 1000, CanvasH: 800, Margin: 80, Pad: 8, MaxTries: 200}

	tests := []struct {
		name string
		w, h int
	}{
		{name: "too wide", w: 900, h: 100},
		{name: "too tall", w: 100, h: 700},
		{name: "both too big", w: 2000, h: 2000},
		{name: "zero width", w: 0, h: 100},
		{name: "negative height", w: 100, h: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &countingSource{}
			rng := rand.New(src)
			if _, ok := p.FindSpot(rng, tt.w, tt.h, nil); ok {
				t.Errorf("FindSpot(%d, %d) ok = true, want false", tt.w, tt.h)
			}
			if src.calls != 0 {
				t.Errorf("FindSpot(%d, %d) consumed %d random draws, want 0", tt.w, tt.h, src.calls)
			}
		})
	}
}

func TestFindSpotExhaustsRetryBudget(t *testing.T) {
	// A canvas fully covered by one rect leaves no valid candidate.
	p := Placer{CanvasW: 500, CanvasH: 500, Margin: 10, Pad: 8, MaxTries: 50}
	blocker := []Rect{{X: 0, Y: 0, W: 500, H: 500}}

	if _, ok := p.FindSpot(testRNG(), 100, 100, blocker); ok {
		t.Error("FindSpot ok = true on a fully blocked canvas, want false")
	}
}

// countingSource counts how many raw draws the placer consumes.
type countingSource struct {
	calls int
}

func (s *countingSource) Uint64() uint64 {
	s.calls++
	return 0
}

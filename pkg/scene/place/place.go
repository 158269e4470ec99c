// Package place finds non-overlapping rectangles on a fixed canvas via
// bounded randomized retry.
//
// The placer makes no optimality guarantee: it draws uniform-random candidate
// positions and accepts the first one whose padded bounding box clears every
// rectangle already placed. A full canvas simply yields no spot, which callers
// treat as "drop this item", never as an error.
package place

import "math/rand/v2"

// Canvas dimensions: A4 at 300 DPI, origin top-left.
const (
	CanvasWidth  = 2480
	CanvasHeight = 3508
)

// Rect is an axis-aligned rectangle in canvas pixel space.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Overlaps reports whether a and b, each inflated by the symmetric pad,
// intersect. The padding deliberately biases the test toward reporting
// overlap near boundaries, trading placement density for guaranteed visual
// separation. Pure function: same inputs always give the same answer.
func Overlaps(a, b Rect, pad int) bool {
	separated := a.X+a.W+pad < b.X ||
		a.X > b.X+b.W+pad ||
		a.Y+a.H+pad < b.Y ||
		a.Y > b.Y+b.H+pad
	return !separated
}

// Placer holds the placement parameters for one generation pass.
type Placer struct {
	CanvasW  int // canvas width in pixels
	CanvasH  int // canvas height in pixels
	Margin   int // keep-out border on all four canvas edges
	Pad      int // symmetric padding for the overlap test
	MaxTries int // retry budget per placement
}

// FindSpot searches for a non-overlapping position for a w×h rectangle.
// It returns false when the rectangle cannot fit the margin-adjusted canvas
// at all (detected before consuming any retry budget) or when every candidate
// within MaxTries collided with an already-placed rectangle.
func (p Placer) FindSpot(rng *rand.Rand, w, h int, placed []Rect) (Rect, bool) {
	maxX := p.CanvasW - p.Margin - w
	maxY := p.CanvasH - p.Margin - h
	if w <= 0 || h <= 0 || maxX < p.Margin || maxY < p.Margin {
		return Rect{}, false
	}

	for range p.MaxTries {
		candidate := Rect{
			X: p.Margin + rng.IntN(maxX-p.Margin+1),
			Y: p.Margin + rng.IntN(maxY-p.Margin+1),
			W: w,
			H: h,
		}
		if p.collides(candidate, placed) {
			continue
		}
		return candidate, true
	}
	return Rect{}, false
}

// collides checks the candidate against every already-placed rectangle.
func (p Placer) collides(candidate Rect, placed []Rect) bool {
	for _, r := range placed {
		if Overlaps(candidate, r, p.Pad) {
			return true
		}
	}
	return false
}

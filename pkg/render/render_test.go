package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/serenakung/speech-scene-generator/pkg/lexicon"
	"github.com/serenakung/speech-scene-generator/pkg/scene"
	"github.com/serenakung/speech-scene-generator/pkg/scene/place"
)

func testScene() *scene.Result {
	return &scene.Result{
		ID:   "test",
		Mode: scene.ModeMixed,
		Items: []scene.Item{
			{
				Item: lexicon.Item{Word: "sun", Image: "sun.png"},
				Kind: lexicon.KindNoun,
				Box:  place.Rect{X: 200, Y: 300, W: 400, H: 280},
			},
			{
				Item: lexicon.Item{Word: "sip"},
				Kind: lexicon.KindVerb,
				Box:  place.Rect{X: 900, Y: 300, W: 320, H: 220},
			},
		},
		Targets: []string{"sun", "sip"},
	}
}

func testGroupScene() *scene.Result {
	cells := [3]place.Rect{
		{X: 100, Y: 200, W: 420, H: 420},
		{X: 520, Y: 200, W: 420, H: 420},
		{X: 940, Y: 200, W: 420, H: 420},
	}
	return &scene.Result{
		ID:   "test",
		Mode: scene.ModeSentence,
		Groups: []scene.Group{
			{
				Verb:   lexicon.Item{Word: "sip"},
				Object: lexicon.Item{Word: "cup"},
				Box:    place.Rect{X: 100, Y: 200, W: 1260, H: 420},
				Cells:  cells,
				Target: "The person sip the cup.",
			},
		},
		Targets: []string{"The person sip the cup."},
	}
}

func TestDrawDimensions(t *testing.T) {
	img := Draw(testScene())

	b := img.Bounds()
	if b.Dx() != place.CanvasWidth || b.Dy() != place.CanvasHeight {
		t.Errorf("page = %dx%d, want %dx%d", b.Dx(), b.Dy(), place.CanvasWidth, place.CanvasHeight)
	}
}

func TestDrawPlaceholderInk(t *testing.T) {
	res := testScene()
	img := Draw(res)

	// No sprites were supplied, so both boxes render as placeholder blocks.
	// The center of the first box must differ from the paper color.
	box := res.Items[0].Box
	paper := DefaultStyle().Paper
	center := img.At(box.X+box.W/2, box.Y+box.H/2)
	if sameColor(center, paper) {
		t.Error("placeholder box center matches paper color, expected a fill")
	}

	// A point far from any box stays paper-colored.
	corner := img.At(place.CanvasWidth-10, place.CanvasHeight-10)
	if !sameColor(corner, paper) {
		t.Error("empty canvas corner should keep the paper color")
	}
}

func TestDrawWithSprite(t *testing.T) {
	bounded := image.NewRGBA(image.Rect(0, 0, 8, 8))
	red := color.RGBA{R: 255, A: 255}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			bounded.Set(x, y, red)
		}
	}

	res := testScene()
	img := Draw(res, WithSprites(map[string]image.Image{"sun.png": bounded}))

	// The sprite is fitted into the body of the box above the label band.
	box := res.Items[0].Box
	center := img.At(box.X+box.W/2, box.Y+(box.H-labelBand)/2)
	r, _, _, _ := center.RGBA()
	if r>>8 != 255 {
		t.Errorf("sprite body pixel red = %d, want 255", r>>8)
	}
}

func TestDrawGroup(t *testing.T) {
	res := testGroupScene()
	img := Draw(res)

	paper := DefaultStyle().Paper
	for i, cell := range res.Groups[0].Cells {
		center := img.At(cell.X+cell.W/2, cell.Y+(cell.H-labelBand)/2)
		if sameColor(center, paper) {
			t.Errorf("cell %d center matches paper color, expected a fill", i)
		}
	}
}

func TestDrawBackground(t *testing.T) {
	bg := image.NewRGBA(image.Rect(0, 0, 16, 16))
	blue := color.RGBA{B: 200, A: 255}
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			bg.Set(x, y, blue)
		}
	}

	img := Draw(&scene.Result{}, WithBackground(bg))

	_, _, b, _ := img.At(place.CanvasWidth/2, place.CanvasHeight/2).RGBA()
	if b>>8 < 100 {
		t.Errorf("background pixel blue = %d, want near 200", b>>8)
	}
}

func sameColor(a, b color.Color) bool {
	ar, ag, ab, _ := a.RGBA()
	br, bg, bb, _ := b.RGBA()
	return ar == br && ag == bg && ab == bb
}

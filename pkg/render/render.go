// Package render draws composed scenes onto the worksheet canvas.
//
// The renderer consumes a scene.Result plus whatever sprites the asset
// loader managed to load, and paints a 2480×3508 page (A4 at 300 DPI).
// Items whose sprite is missing render as labeled placeholder blocks, so a
// failed image load never aborts a pass. Output formats live in the sink
// subpackage.
package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/serenakung/speech-scene-generator/pkg/lexicon"
	"github.com/serenakung/speech-scene-generator/pkg/scene"
	"github.com/serenakung/speech-scene-generator/pkg/scene/place"
)

// Text layout constants, in canvas pixels.
const (
	labelBand     = 72  // strip at the bottom of a box reserved for the word
	labelSize     = 46  // point size for item labels
	captionSize   = 52  // point size for sentence strips
	captionOffset = 64  // gap between a group box and its caption baseline
	cornerRadius  = 18  // placeholder corner rounding
	borderWidth   = 4   // placeholder outline width
	personLabel   = "person"
)

// Option configures a Draw call.
type Option func(*renderer)

type renderer struct {
	style   Style
	sprites map[string]image.Image
	bg      image.Image
}

// WithStyle overrides the default palette.
func WithStyle(s Style) Option {
	return func(r *renderer) { r.style = s }
}

// WithSprites supplies decoded item images keyed by the item's image path.
// Items whose path is absent from the map render as placeholder blocks.
func WithSprites(sprites map[string]image.Image) Option {
	return func(r *renderer) { r.sprites = sprites }
}

// WithBackground paints the page with an image instead of the paper color.
// The image is cropped to fill the canvas.
func WithBackground(img image.Image) Option {
	return func(r *renderer) { r.bg = img }
}

// Draw paints the scene and returns the finished page.
func Draw(res *scene.Result, opts ...Option) image.Image {
	r := renderer{style: DefaultStyle()}
	for _, opt := range opts {
		opt(&r)
	}

	dc := gg.NewContext(place.CanvasWidth, place.CanvasHeight)
	dc.SetColor(r.style.Paper)
	dc.Clear()

	if r.bg != nil {
		filled := imaging.Fill(r.bg, place.CanvasWidth, place.CanvasHeight, imaging.Center, imaging.Lanczos)
		dc.DrawImage(filled, 0, 0)
	}

	for _, it := range res.Items {
		r.drawItem(dc, it)
	}
	for _, g := range res.Groups {
		r.drawGroup(dc, g)
	}

	return dc.Image()
}

// drawItem paints one gallery item: sprite if loaded, placeholder otherwise,
// with the word labeled along the bottom band.
func (r *renderer) drawItem(dc *gg.Context, it scene.Item) {
	if sprite, ok := r.sprites[it.Image]; ok && it.Image != "" {
		r.drawSprite(dc, sprite, it.Box)
	} else {
		fill := r.style.NounFill
		if it.Kind == lexicon.KindVerb {
			fill = r.style.VerbFill
		}
		r.drawPlaceholder(dc, it.Box, fill)
	}
	r.drawLabel(dc, it.Word, it.Box)
}

// drawGroup paints one sentence vignette: person, verb, and object cells
// left-to-right, then the target sentence as a caption strip beneath.
func (r *renderer) drawGroup(dc *gg.Context, g scene.Group) {
	r.drawPlaceholder(dc, g.Cells[0], r.style.PersonFill)
	r.drawPerson(dc, g.Cells[0])
	r.drawLabel(dc, personLabel, g.Cells[0])

	r.drawCell(dc, g.Cells[1], g.Verb, r.style.VerbFill)
	r.drawCell(dc, g.Cells[2], g.Object, r.style.NounFill)

	r.drawCaption(dc, g.Target, g.Box)
}

// drawCell paints a single sentence cell, sprite-or-placeholder plus label.
func (r *renderer) drawCell(dc *gg.Context, box place.Rect, it lexicon.Item, fill color.Color) {
	if sprite, ok := r.sprites[it.Image]; ok && it.Image != "" {
		r.drawSprite(dc, sprite, box)
	} else {
		r.drawPlaceholder(dc, box, fill)
	}
	r.drawLabel(dc, it.Word, box)
}

// drawSprite fits the sprite inside the box above the label band, centered.
func (r *renderer) drawSprite(dc *gg.Context, sprite image.Image, box place.Rect) {
	maxH := box.H - labelBand
	if maxH < 1 {
		maxH = box.H
	}
	fitted := imaging.Fit(sprite, box.W, maxH, imaging.Lanczos)
	x := box.X + (box.W-fitted.Bounds().Dx())/2
	y := box.Y + (maxH-fitted.Bounds().Dy())/2
	dc.DrawImage(fitted, x, y)
}

// drawPlaceholder paints a rounded, outlined block filling the box above the
// label band.
func (r *renderer) drawPlaceholder(dc *gg.Context, box place.Rect, fill color.Color) {
	h := float64(box.H - labelBand)
	if h < 1 {
		h = float64(box.H)
	}
	dc.DrawRoundedRectangle(float64(box.X), float64(box.Y), float64(box.W), h, cornerRadius)
	dc.SetColor(fill)
	dc.FillPreserve()
	dc.SetColor(r.style.Border)
	dc.SetLineWidth(borderWidth)
	dc.Stroke()
}

// drawPerson sketches a stick figure inside the person cell so the
// placeholder reads as a character rather than an empty block.
func (r *renderer) drawPerson(dc *gg.Context, box place.Rect) {
	cx := float64(box.X) + float64(box.W)/2
	top := float64(box.Y) + float64(box.H-labelBand)*0.18
	unit := float64(box.H-labelBand) * 0.12

	dc.SetColor(r.style.Border)
	dc.SetLineWidth(borderWidth + 2)

	// Head, trunk, arms, legs.
	dc.DrawCircle(cx, top+unit, unit)
	dc.Stroke()
	dc.DrawLine(cx, top+2*unit, cx, top+4.5*unit)
	dc.DrawLine(cx-1.3*unit, top+3*unit, cx+1.3*unit, top+3*unit)
	dc.DrawLine(cx, top+4.5*unit, cx-unit, top+6*unit)
	dc.DrawLine(cx, top+4.5*unit, cx+unit, top+6*unit)
	dc.Stroke()
}

// drawLabel writes the word centered in the box's bottom band.
func (r *renderer) drawLabel(dc *gg.Context, word string, box place.Rect) {
	dc.SetFontFace(labelFace(labelSize))
	dc.SetColor(r.style.Ink)
	cx := float64(box.X) + float64(box.W)/2
	cy := float64(box.Y+box.H) - labelBand/2
	dc.DrawStringAnchored(word, cx, cy, 0.5, 0.5)
}

// drawCaption writes the target sentence on a backdrop strip beneath the
// group so it stays legible over photo backgrounds.
func (r *renderer) drawCaption(dc *gg.Context, text string, box place.Rect) {
	dc.SetFontFace(captionFace(captionSize))

	cx := float64(box.X) + float64(box.W)/2
	cy := float64(box.Y+box.H) + captionOffset

	w, h := dc.MeasureString(text)
	pad := 16.0
	dc.DrawRoundedRectangle(cx-w/2-pad, cy-h/2-pad, w+2*pad, h+2*pad, cornerRadius/2)
	dc.SetColor(r.style.Strip)
	dc.Fill()

	dc.SetColor(r.style.Ink)
	dc.DrawStringAnchored(text, cx, cy, 0.5, 0.5)
}

// Package sink serializes rendered scenes into output formats.
//
// PNG is the primary format: a full-resolution raster page ready for
// printing. SVG provides a vector rendition of the same layout, JSON exposes
// the raw placement data, and PDF converts the SVG via librsvg.
package sink

import (
	"bytes"
	"image"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/serenakung/speech-scene-generator/pkg/render"
	"github.com/serenakung/speech-scene-generator/pkg/scene"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	drawOpts []render.Option
	scale    float64
}

// WithPNGDrawOptions passes options through to the underlying renderer.
func WithPNGDrawOptions(opts ...render.Option) PNGOption {
	return func(r *pngRenderer) { r.drawOpts = opts }
}

// WithPNGScale scales the output page (default 1.0 = full 300 DPI). Useful
// for screen previews, e.g. 0.25 for a quarter-size image.
func WithPNGScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG draws the scene and encodes it as PNG.
func RenderPNG(res *scene.Result, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 1.0}
	for _, opt := range opts {
		opt(&r)
	}

	img := render.Draw(res, r.drawOpts...)
	if r.scale > 0 && r.scale != 1.0 {
		w := int(float64(img.Bounds().Dx()) * r.scale)
		img = image.Image(imaging.Resize(img, w, 0, imaging.Lanczos))
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

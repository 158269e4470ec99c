package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/serenakung/speech-scene-generator/pkg/lexicon"
	"github.com/serenakung/speech-scene-generator/pkg/scene"
	"github.com/serenakung/speech-scene-generator/pkg/scene/place"
)

// Placeholder palette for the vector rendition, kept in sync with the
// raster defaults in the render package.
const (
	svgNounFill   = "#DDEEFF"
	svgVerbFill   = "#FFE8CC"
	svgPersonFill = "#E6F5DC"
	svgBorder     = "#444444"
	svgInk        = "#222222"
	svgFont       = "Go, Helvetica, sans-serif"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	imageBase string
}

// WithImageBase references item sprites by href relative to base instead of
// rendering every item as a placeholder block. The SVG then depends on the
// asset files being reachable from wherever it is viewed.
func WithImageBase(base string) SVGOption {
	return func(r *svgRenderer) { r.imageBase = base }
}

// RenderSVG renders the scene layout as a standalone SVG document.
func RenderSVG(res *scene.Result, opts ...SVGOption) []byte {
	r := svgRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		place.CanvasWidth, place.CanvasHeight, place.CanvasWidth, place.CanvasHeight)
	fmt.Fprintf(&buf, `  <rect width="%d" height="%d" fill="#FFFFFF"/>`+"\n",
		place.CanvasWidth, place.CanvasHeight)

	for _, it := range res.Items {
		fill := svgNounFill
		if it.Kind == lexicon.KindVerb {
			fill = svgVerbFill
		}
		r.renderBox(&buf, it.Box, it.Word, it.Image, fill)
	}

	for _, g := range res.Groups {
		r.renderBox(&buf, g.Cells[0], "person", "", svgPersonFill)
		r.renderBox(&buf, g.Cells[1], g.Verb.Word, g.Verb.Image, svgVerbFill)
		r.renderBox(&buf, g.Cells[2], g.Object.Word, g.Object.Image, svgNounFill)

		captionY := g.Box.Y + g.Box.H + 64
		fmt.Fprintf(&buf, `  <text x="%d" y="%d" font-family="%s" font-size="52" font-weight="bold" fill="%s" text-anchor="middle">%s</text>`+"\n",
			g.Box.X+g.Box.W/2, captionY, svgFont, svgInk, escape(g.Target))
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// renderBox emits one cell: sprite reference or placeholder rect, plus the
// word label along the bottom band.
func (r *svgRenderer) renderBox(buf *bytes.Buffer, box place.Rect, word, imagePath, fill string) {
	bodyH := box.H - 72
	if bodyH < 1 {
		bodyH = box.H
	}

	if r.imageBase != "" && imagePath != "" {
		fmt.Fprintf(buf, `  <image x="%d" y="%d" width="%d" height="%d" href="%s/%s" preserveAspectRatio="xMidYMid meet"/>`+"\n",
			box.X, box.Y, box.W, bodyH, escape(r.imageBase), escape(imagePath))
	} else {
		fmt.Fprintf(buf, `  <rect x="%d" y="%d" width="%d" height="%d" rx="18" fill="%s" stroke="%s" stroke-width="4"/>`+"\n",
			box.X, box.Y, box.W, bodyH, fill, svgBorder)
	}

	fmt.Fprintf(buf, `  <text x="%d" y="%d" font-family="%s" font-size="46" fill="%s" text-anchor="middle">%s</text>`+"\n",
		box.X+box.W/2, box.Y+box.H-24, svgFont, svgInk, escape(word))
}

// escape makes a string safe for SVG text and attribute content.
func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// Package render draws composed scenes onto the fixed A4 canvas.
//
// # Overview
//
// This package contains the rendering layer that transforms a composed scene
// into visual outputs. It provides:
//
//   - Raster drawing of items, sentence strips, and labels ([Draw])
//   - Generic format conversion (SVG to PDF via [ToPDF])
//   - Export sinks (in the [sink] subpackage)
//
// # Drawing
//
// [Draw] paints a scene at full 2480×3508 resolution. Items with a loaded
// sprite get the image fitted above a label band; items without one get a
// pastel rounded-rect placeholder. Sentence groups draw a stick-figure
// person cell, a verb cell, an object cell, and the target sentence caption.
//
//	img := render.Draw(result,
//	    render.WithSprites(sprites),
//	    render.WithBackground(bg))
//
// # Format Conversion
//
// The [ToPDF] function converts any SVG to PDF using the external
// rsvg-convert tool (from librsvg). It backs the PDF sink.
//
// # Sinks
//
// The [sink] subpackage serializes a scene per output format: PNG (raster),
// SVG (vector with image hrefs), PDF (SVG piped through rsvg-convert), and
// JSON (placements plus canvas geometry for downstream tools).
package render

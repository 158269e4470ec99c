package render

import "image/color"

// Style holds the worksheet palette. The defaults aim for print: a white
// page, soft pastel blocks, dark ink for labels.
type Style struct {
	Paper      color.Color // page background when no image is set
	NounFill   color.Color // placeholder fill for nouns and objects
	VerbFill   color.Color // placeholder fill for verbs
	PersonFill color.Color // placeholder fill for the person cell
	Border     color.Color // placeholder outline
	Ink        color.Color // label and caption text
	Strip      color.Color // sentence caption backdrop
}

// DefaultStyle returns the standard print palette.
func DefaultStyle() Style {
	return Style{
		Paper:      color.White,
		NounFill:   color.RGBA{R: 0xDD, G: 0xEE, B: 0xFF, A: 0xFF}, // pale blue
		VerbFill:   color.RGBA{R: 0xFF, G: 0xE8, B: 0xCC, A: 0xFF}, // pale orange
		PersonFill: color.RGBA{R: 0xE6, G: 0xF5, B: 0xDC, A: 0xFF}, // pale green
		Border:     color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xFF},
		Ink:        color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xFF},
		Strip:      color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xE6},
	}
}

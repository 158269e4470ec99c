package render

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Label and caption fonts come from the Go font family shipped with
// golang.org/x/image, so rendering needs no font files on disk. Parsed fonts
// are cached after first use; faces are cheap and created per size.
var (
	fontOnce    sync.Once
	regularFont *truetype.Font
	boldFont    *truetype.Font
)

func loadFonts() {
	fontOnce.Do(func() {
		// The embedded TTFs are known-good; a parse failure here would be a
		// build defect, so panic rather than limp along without text.
		var err error
		if regularFont, err = truetype.Parse(goregular.TTF); err != nil {
			panic("render: parsing goregular: " + err.Error())
		}
		if boldFont, err = truetype.Parse(gobold.TTF); err != nil {
			panic("render: parsing gobold: " + err.Error())
		}
	})
}

// labelFace returns the regular face at the given point size.
func labelFace(size float64) font.Face {
	loadFonts()
	return truetype.NewFace(regularFont, &truetype.Options{Size: size})
}

// captionFace returns the bold face used for sentence strips.
func captionFace(size float64) font.Face {
	loadFonts()
	return truetype.NewFace(boldFont, &truetype.Options{Size: size})
}

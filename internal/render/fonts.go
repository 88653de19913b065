package render

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// fontSet builds faces for the two families the diagram uses. The Go fonts
// ship with the module, so rendering needs no host fonts and output bytes
// do not vary across machines. Faces embed the canvas DPI, which makes a
// point size scale with the raster resolution.
type fontSet struct {
	dpi     float64
	regular *truetype.Font
	bold    *truetype.Font
	faces   map[faceKey]font.Face
}

type faceKey struct {
	bold bool
	size float64
}

func newFontSet(dpi float64) (*fontSet, error) {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}
	return &fontSet{
		dpi:     dpi,
		regular: regular,
		bold:    bold,
		faces:   make(map[faceKey]font.Face),
	}, nil
}

// face returns a cached face at the given point size.
func (fs *fontSet) face(bold bool, size float64) font.Face {
	key := faceKey{bold: bold, size: size}
	if f, ok := fs.faces[key]; ok {
		return f
	}

	fnt := fs.regular
	if bold {
		fnt = fs.bold
	}
	f := truetype.NewFace(fnt, &truetype.Options{
		Size:    size,
		DPI:     fs.dpi,
		Hinting: font.HintingFull,
	})
	fs.faces[key] = f
	return f
}

// measure returns the advance width of text at the face, in pixels.
func measure(face font.Face, text string) float64 {
	d := &font.Drawer{Face: face}
	return float64(d.MeasureString(text) >> 6)
}

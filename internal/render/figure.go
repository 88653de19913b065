package render

import (
	"math"

	"github.com/Hodge2Franklin/MeAi/internal/scene"
)

// Figure fixes the physical geometry of the output image: canvas size in
// inches, raster resolution, and the margins reserved around the plot area.
// The top margin leaves headroom for the title, the bottom one for the
// caption.
type Figure struct {
	WidthIn  float64
	HeightIn float64
	DPI      float64

	MarginLeftIn   float64
	MarginRightIn  float64
	MarginTopIn    float64
	MarginBottomIn float64
}

// newFigure returns the diagram geometry at the given resolution: a 12x10
// inch canvas with half-inch side margins, one inch above the plot and
// 0.6 in below it.
func newFigure(dpi float64) Figure {
	return Figure{
		WidthIn:  12,
		HeightIn: 10,
		DPI:      dpi,

		MarginLeftIn:   0.5,
		MarginRightIn:  0.5,
		MarginTopIn:    1.0,
		MarginBottomIn: 0.6,
	}
}

func (f Figure) pxW() int {
	return int(math.Round(f.WidthIn * f.DPI))
}

func (f Figure) pxH() int {
	return int(math.Round(f.HeightIn * f.DPI))
}

// ptToPx converts typographic points to pixels at the figure resolution.
func (f Figure) ptToPx(pt float64) float64 {
	return pt * f.DPI / 72
}

// plotRect returns the plot area in pixels: top-left corner, then size.
func (f Figure) plotRect() (x, y, w, h float64) {
	x = f.MarginLeftIn * f.DPI
	y = f.MarginTopIn * f.DPI
	w = float64(f.pxW()) - (f.MarginLeftIn+f.MarginRightIn)*f.DPI
	h = float64(f.pxH()) - (f.MarginTopIn+f.MarginBottomIn)*f.DPI
	return x, y, w, h
}

// viewport maps data coordinates (y grows upward) onto the plot area in
// pixels (y grows downward).
type viewport struct {
	x, y, w, h float64
	xmin, xmax float64
	ymin, ymax float64
}

func newViewport(f Figure, s *scene.Scene) viewport {
	x, y, w, h := f.plotRect()
	return viewport{
		x: x, y: y, w: w, h: h,
		xmin: s.XMin, xmax: s.XMax,
		ymin: s.YMin, ymax: s.YMax,
	}
}

// toPx projects a data point into pixel space.
func (v viewport) toPx(p scene.Point) (float64, float64) {
	px := v.x + (p.X-v.xmin)/(v.xmax-v.xmin)*v.w
	py := v.y + v.h - (p.Y-v.ymin)/(v.ymax-v.ymin)*v.h
	return px, py
}

// scaleX converts a horizontal span in data units to pixels.
func (v viewport) scaleX(du float64) float64 {
	return du / (v.xmax - v.xmin) * v.w
}

// scaleY converts a vertical span in data units to pixels.
func (v viewport) scaleY(du float64) float64 {
	return du / (v.ymax - v.ymin) * v.h
}

// Package scene defines the drawing primitives a diagram is made of:
// rectangles, text labels, arrows and a legend. A Scene is declarative.
// Every item carries its own geometry, colors and stacking order, and the
// render backends decide how to paint it.
package scene

import (
	"math"
	"sort"
)

// Point is a position in data coordinates (y grows upward).
type Point struct {
	X float64
	Y float64
}

// Item is any primitive placed on the scene.
type Item interface {
	// Z returns the stacking order. Higher values paint above lower ones;
	// equal values keep insertion order.
	Z() int
	// Bounds returns the axis-aligned extent of the item in data coordinates.
	Bounds() (minX, minY, maxX, maxY float64)
}

// Rect is a filled, bordered rectangle anchored at its lower-left corner.
type Rect struct {
	X, Y      float64
	W, H      float64
	Fill      string  // hex color
	Edge      string  // hex color
	LineWidth float64 // points
	Alpha     float64 // 0..1, applied to fill and edge
	ZOrder    int
}

func (r Rect) Z() int { return r.ZOrder }

func (r Rect) Bounds() (float64, float64, float64, float64) {
	return r.X, r.Y, r.X + r.W, r.Y + r.H
}

// Label is a piece of text centered on its anchor point, both axes.
type Label struct {
	Text     string
	At       Point
	FontSize float64 // points
	Bold     bool
	ZOrder   int
}

func (l Label) Z() int { return l.ZOrder }

func (l Label) Bounds() (float64, float64, float64, float64) {
	// Text extent depends on backend font metrics; the anchor is the only
	// backend-independent geometry.
	return l.At.X, l.At.Y, l.At.X, l.At.Y
}

// Arrow is a directed line segment with a triangular head. The shaft runs
// from Start to Start+(DX,DY) and the head extends HeadLength beyond that
// endpoint, so the tip lands at Start + (DX,DY) + HeadLength along the
// shaft direction.
type Arrow struct {
	Start      Point
	DX, DY     float64
	HeadWidth  float64 // data units
	HeadLength float64 // data units
	Fill       string  // hex color
	Edge       string  // hex color
	ZOrder     int
}

func (a Arrow) Z() int { return a.ZOrder }

// End returns the shaft endpoint, excluding the head.
func (a Arrow) End() Point {
	return Point{X: a.Start.X + a.DX, Y: a.Start.Y + a.DY}
}

// Tip returns the point of the arrowhead. A zero-length arrow keeps the tip
// on its start point.
func (a Arrow) Tip() Point {
	length := math.Hypot(a.DX, a.DY)
	if length == 0 {
		return a.Start
	}
	end := a.End()
	return Point{
		X: end.X + a.DX/length*a.HeadLength,
		Y: end.Y + a.DY/length*a.HeadLength,
	}
}

func (a Arrow) Bounds() (float64, float64, float64, float64) {
	tip := a.Tip()
	minX := math.Min(a.Start.X, tip.X) - a.HeadWidth/2
	maxX := math.Max(a.Start.X, tip.X) + a.HeadWidth/2
	minY := math.Min(a.Start.Y, tip.Y) - a.HeadWidth/2
	maxY := math.Max(a.Start.Y, tip.Y) + a.HeadWidth/2
	return minX, minY, maxX, maxY
}

// LegendEntry maps a color swatch to its label.
type LegendEntry struct {
	Fill  string
	Edge  string
	Label string
}

// Legend is a keyed color box painted above every scene item. Entries fill
// column-major across Columns columns. AnchorX and AnchorY place the top
// center of the legend box as fractions of the plot area, (0,0) bottom-left
// to (1,1) top-right.
type Legend struct {
	Entries  []LegendEntry
	Columns  int
	FontSize float64 // points
	AnchorX  float64
	AnchorY  float64
}

// Rows returns the number of swatch rows per column.
func (l *Legend) Rows() int {
	if l.Columns < 1 {
		return len(l.Entries)
	}
	return (len(l.Entries) + l.Columns - 1) / l.Columns
}

// Scene is a complete diagram: view bounds, plot background, ordered items,
// an optional legend, and figure-level title and caption.
type Scene struct {
	XMin, XMax float64
	YMin, YMax float64

	Background string // plot area fill, hex

	Items  []Item
	Legend *Legend

	Title       string
	TitleSize   float64 // points
	Caption     string
	CaptionSize float64 // points
}

// AddRect appends a rectangle to the scene.
func (s *Scene) AddRect(r Rect) {
	s.Items = append(s.Items, r)
}

// AddLabel appends a text label to the scene.
func (s *Scene) AddLabel(l Label) {
	s.Items = append(s.Items, l)
}

// AddArrow appends an arrow to the scene.
func (s *Scene) AddArrow(a Arrow) {
	s.Items = append(s.Items, a)
}

// PaintOrder returns the items sorted by ascending stacking order, ties
// keeping insertion order.
func (s *Scene) PaintOrder() []Item {
	ordered := make([]Item, len(s.Items))
	copy(ordered, s.Items)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Z() < ordered[j].Z()
	})
	return ordered
}

// OutOfBounds returns the items whose extent falls outside the view box.
func (s *Scene) OutOfBounds() []Item {
	var outside []Item
	for _, item := range s.Items {
		minX, minY, maxX, maxY := item.Bounds()
		if minX < s.XMin || maxX > s.XMax || minY < s.YMin || maxY > s.YMax {
			outside = append(outside, item)
		}
	}
	return outside
}

// Counts reports how many rectangles, labels and arrows the scene holds.
func (s *Scene) Counts() (rects, labels, arrows int) {
	for _, item := range s.Items {
		switch item.(type) {
		case Rect:
			rects++
		case Label:
			labels++
		case Arrow:
			arrows++
		}
	}
	return rects, labels, arrows
}

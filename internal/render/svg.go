package render

import (
	"bytes"
	"fmt"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/Hodge2Franklin/MeAi/internal/scene"
)

// svgUnitsPerInch scales the vector viewport.
const svgUnitsPerInch = 100

// SVGRenderer produces the vector variant of the diagram.
type SVGRenderer struct {
	options Options
	fig     Figure
	vp      viewport
}

// NewSVGRenderer creates a new SVG renderer.
func NewSVGRenderer(opts Options) *SVGRenderer {
	return &SVGRenderer{
		options: opts,
	}
}

// Render draws the scene into an SVG document and returns its bytes.
func (r *SVGRenderer) Render(s *scene.Scene) ([]byte, error) {
	r.fig = newFigure(svgUnitsPerInch)
	r.vp = newViewport(r.fig, s)

	// Faces are only needed to measure legend labels; the document itself
	// names a generic family.
	fonts, err := newFontSet(svgUnitsPerInch)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(r.fig.pxW(), r.fig.pxH())
	canvas.Rect(0, 0, r.fig.pxW(), r.fig.pxH(), "fill:#ffffff")

	px, py, pw, ph := r.fig.plotRect()
	canvas.Rect(int(px), int(py), int(pw), int(ph), fmt.Sprintf("fill:%s", s.Background))

	for _, item := range s.PaintOrder() {
		switch it := item.(type) {
		case scene.Rect:
			r.rect(canvas, it)
		case scene.Label:
			r.label(canvas, it)
		case scene.Arrow:
			r.arrow(canvas, it)
		}
	}

	if s.Legend != nil {
		r.legend(canvas, layoutLegend(r.fig, r.vp, s.Legend, fonts))
	}
	if s.Title != "" {
		canvas.Text(int(px+pw/2), int(py-r.fig.ptToPx(titlePadPt)), s.Title,
			fmt.Sprintf("text-anchor:middle;font-family:sans-serif;font-size:%.4gpx;fill:#000000", r.fig.ptToPx(s.TitleSize)))
	}
	if s.Caption != "" {
		canvas.Text(r.fig.pxW()/2, int(float64(r.fig.pxH())*0.99), s.Caption,
			fmt.Sprintf("text-anchor:middle;font-family:sans-serif;font-size:%.4gpx;fill:#000000", r.fig.ptToPx(s.CaptionSize)))
	}

	canvas.End()
	return buf.Bytes(), nil
}

func (r *SVGRenderer) rect(canvas *svg.SVG, rect scene.Rect) {
	x, y := r.vp.toPx(scene.Point{X: rect.X, Y: rect.Y + rect.H})
	w := r.vp.scaleX(rect.W)
	h := r.vp.scaleY(rect.H)

	style := fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%.4g", rect.Fill, rect.Edge, r.fig.ptToPx(rect.LineWidth))
	if rect.Alpha > 0 && rect.Alpha < 1 {
		style += fmt.Sprintf(";fill-opacity:%.4g;stroke-opacity:%.4g", rect.Alpha, rect.Alpha)
	}
	canvas.Rect(int(x), int(y), int(w), int(h), style)
}

func (r *SVGRenderer) label(canvas *svg.SVG, l scene.Label) {
	x, y := r.vp.toPx(l.At)
	style := fmt.Sprintf("text-anchor:middle;dominant-baseline:middle;font-family:sans-serif;font-size:%.4gpx;fill:#000000", r.fig.ptToPx(l.FontSize))
	if l.Bold {
		style += ";font-weight:bold"
	}
	canvas.Text(int(x), int(y), l.Text, style)
}

func (r *SVGRenderer) arrow(canvas *svg.SVG, a scene.Arrow) {
	length := math.Hypot(a.DX, a.DY)
	if length == 0 {
		return
	}
	ux := a.DX / length
	uy := a.DY / length

	end := a.End()
	tip := a.Tip()
	left := scene.Point{X: end.X - uy*a.HeadWidth/2, Y: end.Y + ux*a.HeadWidth/2}
	right := scene.Point{X: end.X + uy*a.HeadWidth/2, Y: end.Y - ux*a.HeadWidth/2}

	sx, sy := r.vp.toPx(a.Start)
	ex, ey := r.vp.toPx(end)
	canvas.Line(int(sx), int(sy), int(ex), int(ey),
		fmt.Sprintf("stroke:%s;stroke-width:%.4g", a.Edge, r.fig.ptToPx(1)))

	tx, ty := r.vp.toPx(tip)
	lx, ly := r.vp.toPx(left)
	rx, ry := r.vp.toPx(right)
	canvas.Polygon(
		[]int{int(tx), int(lx), int(rx)},
		[]int{int(ty), int(ly), int(ry)},
		fmt.Sprintf("fill:%s;stroke:%s", a.Fill, a.Edge))
}

func (r *SVGRenderer) legend(canvas *svg.SVG, box legendBox) {
	canvas.Roundrect(int(box.x+box.shadow), int(box.y+box.shadow), int(box.w), int(box.h),
		int(box.radius), int(box.radius), "fill:#000000;fill-opacity:0.3")
	canvas.Roundrect(int(box.x), int(box.y), int(box.w), int(box.h),
		int(box.radius), int(box.radius),
		fmt.Sprintf("fill:#ffffff;stroke:#cccccc;stroke-width:%.4g", box.border))

	for _, cell := range box.cells {
		canvas.Rect(int(cell.swatchX), int(cell.swatchY), int(cell.swatchW), int(cell.swatchH),
			fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%.4g", cell.entry.Fill, cell.entry.Edge, box.border))
		canvas.Text(int(cell.textX), int(cell.textY), cell.entry.Label,
			fmt.Sprintf("dominant-baseline:middle;font-family:sans-serif;font-size:%.4gpx;fill:#000000", r.fig.ptToPx(box.fontPt)))
	}
}

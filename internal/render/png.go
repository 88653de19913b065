package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"

	"github.com/fogleman/gg"

	"github.com/Hodge2Franklin/MeAi/internal/scene"
)

// cropPadIn is how far the tight crop extends past the drawn content.
const cropPadIn = 0.1

// titlePadPt separates the plot edge from the title baseline.
const titlePadPt = 20

// PNGRenderer rasterizes a scene and encodes it as PNG.
type PNGRenderer struct {
	options Options
	fig     Figure
	vp      viewport
	fonts   *fontSet
	dc      *gg.Context
}

// NewPNGRenderer creates a new PNG renderer.
func NewPNGRenderer(opts Options) *PNGRenderer {
	return &PNGRenderer{
		options: opts,
	}
}

// Render draws the scene at the figure resolution, crops to the content
// bounding box and returns the encoded PNG bytes.
func (r *PNGRenderer) Render(s *scene.Scene) ([]byte, error) {
	r.fig = newFigure(r.options.DPI)
	r.vp = newViewport(r.fig, s)

	fonts, err := newFontSet(r.fig.DPI)
	if err != nil {
		return nil, err
	}
	r.fonts = fonts

	r.dc = gg.NewContext(r.fig.pxW(), r.fig.pxH())
	r.dc.SetColor(color.White)
	r.dc.Clear()

	// Plot area background
	px, py, pw, ph := r.fig.plotRect()
	r.dc.SetColor(parseColor(s.Background))
	r.dc.DrawRectangle(px, py, pw, ph)
	r.dc.Fill()

	for _, item := range s.PaintOrder() {
		switch it := item.(type) {
		case scene.Rect:
			r.drawRect(it)
		case scene.Label:
			r.drawLabel(it)
		case scene.Arrow:
			r.drawArrow(it)
		}
	}

	if s.Legend != nil {
		r.drawLegend(layoutLegend(r.fig, r.vp, s.Legend, r.fonts))
	}
	if s.Title != "" {
		r.drawTitle(s.Title, s.TitleSize)
	}
	if s.Caption != "" {
		r.drawCaption(s.Caption, s.CaptionSize)
	}

	raster, ok := r.dc.Image().(*image.RGBA)
	if !ok {
		return nil, fmt.Errorf("unexpected canvas image type %T", r.dc.Image())
	}
	cropped := tightCrop(raster, color.White, int(math.Round(cropPadIn*r.fig.DPI)))

	buf := &bytes.Buffer{}
	if err := png.Encode(buf, cropped); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// drawRect fills and strokes one rectangle. The item alpha rides on both
// the fill and the border.
func (r *PNGRenderer) drawRect(rect scene.Rect) {
	x, y := r.vp.toPx(scene.Point{X: rect.X, Y: rect.Y + rect.H})
	w := r.vp.scaleX(rect.W)
	h := r.vp.scaleY(rect.H)

	r.dc.DrawRectangle(x, y, w, h)
	r.dc.SetColor(withAlpha(parseColor(rect.Fill), rect.Alpha))
	r.dc.FillPreserve()
	r.dc.SetColor(withAlpha(parseColor(rect.Edge), rect.Alpha))
	r.dc.SetLineWidth(r.fig.ptToPx(rect.LineWidth))
	r.dc.Stroke()
}

// drawLabel draws text centered on its anchor.
func (r *PNGRenderer) drawLabel(l scene.Label) {
	x, y := r.vp.toPx(l.At)
	r.dc.SetFontFace(r.fonts.face(l.Bold, l.FontSize))
	r.dc.SetColor(color.Black)
	r.dc.DrawStringAnchored(l.Text, x, y, 0.5, 0.5)
}

// drawArrow draws the shaft and a filled head. Head geometry is computed in
// data space and projected point by point, so the plot's anisotropic scale
// shapes it exactly like the rectangles.
func (r *PNGRenderer) drawArrow(a scene.Arrow) {
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
	r.dc.SetColor(parseColor(a.Edge))
	r.dc.SetLineWidth(r.fig.ptToPx(1))
	r.dc.DrawLine(sx, sy, ex, ey)
	r.dc.Stroke()

	tx, ty := r.vp.toPx(tip)
	lx, ly := r.vp.toPx(left)
	rx, ry := r.vp.toPx(right)
	r.dc.MoveTo(tx, ty)
	r.dc.LineTo(lx, ly)
	r.dc.LineTo(rx, ry)
	r.dc.ClosePath()
	r.dc.SetColor(parseColor(a.Fill))
	r.dc.FillPreserve()
	r.dc.SetColor(parseColor(a.Edge))
	r.dc.SetLineWidth(r.fig.ptToPx(1))
	r.dc.Stroke()
}

// drawLegend paints the key: drop shadow, rounded box, then column-major
// swatch and label cells.
func (r *PNGRenderer) drawLegend(box legendBox) {
	r.dc.SetColor(color.NRGBA{A: 77})
	r.dc.DrawRoundedRectangle(box.x+box.shadow, box.y+box.shadow, box.w, box.h, box.radius)
	r.dc.Fill()

	r.dc.DrawRoundedRectangle(box.x, box.y, box.w, box.h, box.radius)
	r.dc.SetColor(color.White)
	r.dc.FillPreserve()
	r.dc.SetColor(parseColor("#cccccc"))
	r.dc.SetLineWidth(box.border)
	r.dc.Stroke()

	for _, cell := range box.cells {
		r.dc.DrawRectangle(cell.swatchX, cell.swatchY, cell.swatchW, cell.swatchH)
		r.dc.SetColor(parseColor(cell.entry.Fill))
		r.dc.FillPreserve()
		r.dc.SetColor(parseColor(cell.entry.Edge))
		r.dc.SetLineWidth(box.border)
		r.dc.Stroke()

		r.dc.SetFontFace(r.fonts.face(false, box.fontPt))
		r.dc.SetColor(color.Black)
		r.dc.DrawStringAnchored(cell.entry.Label, cell.textX, cell.textY, 0, 0.5)
	}
}

// drawTitle centers the title over the plot area, its baseline one title
// pad above the plot edge.
func (r *PNGRenderer) drawTitle(title string, sizePt float64) {
	px, py, pw, _ := r.fig.plotRect()
	r.dc.SetFontFace(r.fonts.face(false, sizePt))
	r.dc.SetColor(color.Black)
	r.dc.DrawStringAnchored(title, px+pw/2, py-r.fig.ptToPx(titlePadPt), 0.5, 0)
}

// drawCaption centers the caption near the bottom edge of the figure.
func (r *PNGRenderer) drawCaption(caption string, sizePt float64) {
	r.dc.SetFontFace(r.fonts.face(false, sizePt))
	r.dc.SetColor(color.Black)
	r.dc.DrawStringAnchored(caption, float64(r.fig.pxW())/2, float64(r.fig.pxH())*0.99, 0.5, 0)
}

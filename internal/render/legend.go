package render

import (
	"github.com/Hodge2Franklin/MeAi/internal/scene"
)

// legendBox is a legend measured and placed in pixel space. Entries fill
// column-major, the way the published artifact lays its key out.
type legendBox struct {
	x, y, w, h float64
	radius     float64
	shadow     float64 // drop shadow offset
	border     float64 // box line width
	fontPt     float64
	cells      []legendCell
}

type legendCell struct {
	swatchX, swatchY float64
	swatchW, swatchH float64
	textX, textY     float64 // left edge, vertical center
	entry            scene.LegendEntry
}

// layoutLegend measures the legend text and places the box with its top
// center on the plot-fraction anchor.
func layoutLegend(fig Figure, vp viewport, l *scene.Legend, fonts *fontSet) legendBox {
	face := fonts.face(false, l.FontSize)

	pad := fig.ptToPx(8)
	swatchW := fig.ptToPx(20)
	swatchH := fig.ptToPx(7)
	gap := fig.ptToPx(6)
	colGap := fig.ptToPx(14)
	rowH := fig.ptToPx(l.FontSize) * 1.7

	rows := l.Rows()
	cols := l.Columns
	if cols < 1 {
		cols = 1
	}

	colW := make([]float64, cols)
	for i, e := range l.Entries {
		c := i / rows
		if c >= cols {
			c = cols - 1
		}
		w := swatchW + gap + measure(face, e.Label)
		if w > colW[c] {
			colW[c] = w
		}
	}

	width := 2 * pad
	for _, w := range colW {
		width += w
	}
	width += float64(cols-1) * colGap

	height := 2*pad + float64(rows)*rowH

	// Top center sits on the anchor.
	anchorX := vp.x + l.AnchorX*vp.w
	anchorY := vp.y + (1-l.AnchorY)*vp.h
	x := anchorX - width/2
	y := anchorY

	box := legendBox{
		x: x, y: y, w: width, h: height,
		radius: fig.ptToPx(4),
		shadow: fig.ptToPx(2),
		border: fig.ptToPx(1),
		fontPt: l.FontSize,
	}

	for i, e := range l.Entries {
		c := i / rows
		if c >= cols {
			c = cols - 1
		}
		r := i % rows

		cellX := x + pad
		for j := 0; j < c; j++ {
			cellX += colW[j] + colGap
		}
		cellY := y + pad + float64(r)*rowH

		box.cells = append(box.cells, legendCell{
			swatchX: cellX,
			swatchY: cellY + (rowH-swatchH)/2,
			swatchW: swatchW,
			swatchH: swatchH,
			textX:   cellX + swatchW + gap,
			textY:   cellY + rowH/2,
			entry:   e,
		})
	}

	return box
}

package render

import (
	"testing"

	"github.com/Hodge2Franklin/MeAi/internal/scene"
)

func TestLayoutLegend(t *testing.T) {
	fig := newFigure(100)
	vp := newViewport(fig, &scene.Scene{XMin: 0, XMax: 12, YMin: 0, YMax: 10})
	fonts, err := newFontSet(100)
	if err != nil {
		t.Fatalf("newFontSet() error = %v", err)
	}

	l := &scene.Legend{
		Entries: []scene.LegendEntry{
			{Label: "Mirror"}, {Label: "Synthesis"}, {Label: "Bridge"},
			{Label: "Memory"}, {Label: "Ritual"}, {Label: "Voice"},
		},
		Columns:  2,
		FontSize: 10,
		AnchorX:  0.5,
		AnchorY:  0.45,
	}
	box := layoutLegend(fig, vp, l, fonts)

	if got, want := len(box.cells), 6; got != want {
		t.Fatalf("layoutLegend() cells = %d, want %d", got, want)
	}

	// Column-major fill: the first three entries stack in the left column,
	// the rest in the right.
	if box.cells[0].swatchX != box.cells[2].swatchX {
		t.Error("layoutLegend() left column swatches not aligned")
	}
	if box.cells[3].swatchX <= box.cells[0].swatchX {
		t.Error("layoutLegend() second column should sit right of the first")
	}
	if box.cells[0].swatchY >= box.cells[1].swatchY {
		t.Error("layoutLegend() rows should grow downward")
	}
	if box.cells[0].swatchY != box.cells[3].swatchY {
		t.Error("layoutLegend() rows should align across columns")
	}

	if got, want := box.x+box.w/2, vp.x+0.5*vp.w; !almostEqual(got, want) {
		t.Errorf("layoutLegend() box center x = %g, want anchor %g", got, want)
	}
	if got, want := box.y, vp.y+(1-0.45)*vp.h; !almostEqual(got, want) {
		t.Errorf("layoutLegend() box top y = %g, want anchor %g", got, want)
	}
	if box.w <= 0 || box.h <= 0 {
		t.Errorf("layoutLegend() box size = %gx%g, want positive", box.w, box.h)
	}

	// Text follows its swatch.
	for i, cell := range box.cells {
		if cell.textX <= cell.swatchX+cell.swatchW {
			t.Errorf("cell %d: text x = %g, want right of swatch ending at %g", i, cell.textX, cell.swatchX+cell.swatchW)
		}
	}
}

func TestLayoutLegendSingleColumn(t *testing.T) {
	fig := newFigure(100)
	vp := newViewport(fig, &scene.Scene{XMin: 0, XMax: 12, YMin: 0, YMax: 10})
	fonts, err := newFontSet(100)
	if err != nil {
		t.Fatalf("newFontSet() error = %v", err)
	}

	l := &scene.Legend{
		Entries:  []scene.LegendEntry{{Label: "a"}, {Label: "b"}},
		Columns:  1,
		FontSize: 10,
		AnchorX:  0.5,
		AnchorY:  0.5,
	}
	box := layoutLegend(fig, vp, l, fonts)

	if got, want := len(box.cells), 2; got != want {
		t.Fatalf("layoutLegend() cells = %d, want %d", got, want)
	}
	if box.cells[0].swatchX != box.cells[1].swatchX {
		t.Error("layoutLegend() single column should stack entries vertically")
	}
}

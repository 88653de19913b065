// Package meai declares the MeAi Companion System architecture diagram.
// Every coordinate, size, color and string below is a fixed constant of the
// published artifact; BuildScene assembles them into a drawable scene.
package meai

import (
	"github.com/Hodge2Franklin/MeAi/internal/scene"
)

// OutputPath is the canonical location of the rendered diagram.
const OutputPath = "/home/ubuntu/diagrams/high_level_architecture.png"

// Diagram layers, bottom to top.
const (
	zContainer  = 1
	zComponent  = 2
	zAnnotation = 3
)

const (
	boxLineWidth   = 2 // points
	containerAlpha = 0.2
	componentAlpha = 0.7

	arrowHeadWidth  = 0.1 // data units
	arrowHeadLength = 0.1

	nameFontSize    = 14 // core component names
	subFontSize     = 10 // core component roles
	supportFontSize = 12 // supporting system names
	subLabelDrop    = 0.5
)

// component is one labeled box of the diagram, anchored at its lower-left
// corner. Core components carry a secondary role label under the name.
type component struct {
	name string
	role string
	x, y float64
	w, h float64
	fill string
	edge string
}

var coreComponents = []component{
	{name: "Mirror", role: "User Understanding", x: 1, y: 6, w: 3, h: 2, fill: "#ffcccc", edge: "#cc0000"},
	{name: "Synthesis", role: "State Management", x: 4.5, y: 6, w: 3, h: 2, fill: "#ffffcc", edge: "#cccc00"},
	{name: "Bridge", role: "External Connections", x: 8, y: 6, w: 3, h: 2, fill: "#ccffcc", edge: "#00cc00"},
}

var supportingSystems = []component{
	{name: "Memory System", x: 1, y: 3.5, w: 2.5, h: 1.5, fill: "#cce6ff", edge: "#0066cc"},
	{name: "Ritual Engine", x: 4, y: 3.5, w: 2.5, h: 1.5, fill: "#e6ccff", edge: "#6600cc"},
	{name: "MCP Client Interface", x: 7, y: 3.5, w: 2.5, h: 1.5, fill: "#ffccff", edge: "#cc00cc"},
	{name: "Voice Engine", x: 1, y: 1.5, w: 2.5, h: 1.5, fill: "#ffe6cc", edge: "#cc6600"},
	{name: "Breath System", x: 4, y: 1.5, w: 2.5, h: 1.5, fill: "#ccffe6", edge: "#00cc66"},
	{name: "Ethics Engine", x: 7, y: 1.5, w: 2.5, h: 1.5, fill: "#e6e6e6", edge: "#666666"},
}

// relation is an arrow start point and displacement in data units.
type relation struct {
	x, y, dx, dy float64
}

var relations = []relation{
	{4, 7, 0.4, 0},       // Mirror -> Synthesis
	{4.5, 6.8, -0.4, 0},  // Synthesis -> Mirror
	{7.5, 7, 0.4, 0},     // Synthesis -> Bridge
	{8, 6.8, -0.4, 0},    // Bridge -> Synthesis
	{2.5, 6, 0, -0.9},    // Mirror -> Memory
	{2.3, 5.1, 0, 0.9},   // Memory -> Mirror
	{5.25, 6, 0, -0.9},   // Synthesis -> Ritual
	{8.25, 6, 0, -0.9},   // Bridge -> MCP
	{5.5, 6, -2.5, -3.5}, // Synthesis -> Voice
	{5.25, 6, 0, -2.9},   // Synthesis -> Breath
	{6.5, 6, 1.5, -3.5},  // Synthesis -> Ethics
	{8.25, 3, 0, 2.9},    // Ethics -> Bridge
}

// BuildScene returns the MeAi architecture diagram ready for rendering.
func BuildScene() *scene.Scene {
	s := &scene.Scene{
		XMin: 0, XMax: 12,
		YMin: 0, YMax: 10,
		Background:  "#f5f5f5",
		Title:       "MeAi System Architecture",
		TitleSize:   18,
		Caption:     "High-level architecture showing core components and supporting systems",
		CaptionSize: 10,
	}

	// System container and heading
	s.AddRect(scene.Rect{
		X: 0.5, Y: 0.5, W: 11, H: 9,
		Fill: "#e6f2ff", Edge: "#0066cc",
		LineWidth: boxLineWidth, Alpha: containerAlpha, ZOrder: zContainer,
	})
	s.AddLabel(scene.Label{
		Text: "MeAi Companion System",
		At:   scene.Point{X: 6, Y: 9.2},
		FontSize: 16, Bold: true, ZOrder: zAnnotation,
	})

	for _, c := range coreComponents {
		addComponent(s, c, nameFontSize)
	}
	for _, c := range supportingSystems {
		addComponent(s, c, supportFontSize)
	}

	for _, r := range relations {
		s.AddArrow(scene.Arrow{
			Start: scene.Point{X: r.x, Y: r.y},
			DX:    r.dx, DY: r.dy,
			HeadWidth: arrowHeadWidth, HeadLength: arrowHeadLength,
			Fill: "#000000", Edge: "#000000",
			ZOrder: zAnnotation,
		})
	}

	s.Legend = &scene.Legend{
		Entries: []scene.LegendEntry{
			{Fill: "#ffcccc", Edge: "#cc0000", Label: "Core - Mirror"},
			{Fill: "#ffffcc", Edge: "#cccc00", Label: "Core - Synthesis"},
			{Fill: "#ccffcc", Edge: "#00cc00", Label: "Core - Bridge"},
			{Fill: "#cce6ff", Edge: "#0066cc", Label: "Supporting - Memory"},
			{Fill: "#e6ccff", Edge: "#6600cc", Label: "Supporting - Ritual"},
			{Fill: "#e6e6e6", Edge: "#666666", Label: "Supporting - Ethics"},
		},
		Columns:  2,
		FontSize: 10,
		AnchorX:  0.5,
		AnchorY:  0.45,
	}

	return s
}

// addComponent places one box with its name centered inside, plus the role
// line for core components.
func addComponent(s *scene.Scene, c component, nameSize float64) {
	s.AddRect(scene.Rect{
		X: c.x, Y: c.y, W: c.w, H: c.h,
		Fill: c.fill, Edge: c.edge,
		LineWidth: boxLineWidth, Alpha: componentAlpha, ZOrder: zComponent,
	})

	cx := c.x + c.w/2
	cy := c.y + c.h/2
	s.AddLabel(scene.Label{
		Text: c.name,
		At:   scene.Point{X: cx, Y: cy},
		FontSize: nameSize, Bold: true, ZOrder: zAnnotation,
	})
	if c.role != "" {
		s.AddLabel(scene.Label{
			Text: c.role,
			At:   scene.Point{X: cx, Y: cy - subLabelDrop},
			FontSize: subFontSize, ZOrder: zAnnotation,
		})
	}
}

// Package render turns a scene description into diagram files. It carries
// two backends, a raster one producing PNG bytes and a vector one producing
// SVG, behind a single format-dispatching entrypoint.
package render

import (
	"context"

	"github.com/Hodge2Franklin/MeAi/internal/scene"
)

// Supported output formats.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

// DefaultDPI matches the resolution the diagram is published at.
const DefaultDPI = 300

// Options configures scene rendering.
type Options struct {
	Format string  // "png" or "svg", defaults to "png"
	DPI    float64 // raster resolution in dots per inch, defaults to DefaultDPI
}

// RenderScene renders the scene to the output path.
func RenderScene(ctx context.Context, s *scene.Scene, outputPath string, opts Options) error {
	return ExportScene(ctx, s, outputPath, opts)
}

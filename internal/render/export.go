package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/Hodge2Franklin/MeAi/internal/scene"
)

// ExportScene renders the scene in the requested format and writes the result
// to outputPath. An existing file at that path is replaced.
func ExportScene(ctx context.Context, s *scene.Scene, outputPath string, opts Options) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if s == nil {
		return fmt.Errorf("scene is nil")
	}
	if s.XMax <= s.XMin || s.YMax <= s.YMin {
		return fmt.Errorf("scene has an empty view: x [%g, %g], y [%g, %g]",
			s.XMin, s.XMax, s.YMin, s.YMax)
	}

	format := strings.ToLower(opts.Format)
	if format == "" {
		format = FormatPNG
	}
	if opts.DPI <= 0 {
		opts.DPI = DefaultDPI
	}

	var data []byte
	var err error
	switch format {
	case FormatPNG:
		data, err = NewPNGRenderer(opts).Render(s)
	case FormatSVG:
		data, err = NewSVGRenderer(opts).Render(s)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", format, err)
	}

	return writeFile(outputPath, data)
}

// Command meai-diagram regenerates the MeAi high level architecture diagram.
// It takes no arguments, writes the published PNG to its fixed location and
// stays silent unless something fails.
package main

import (
	"context"
	"log"

	"github.com/Hodge2Franklin/MeAi/internal/diagram"
	"github.com/Hodge2Franklin/MeAi/internal/interfaces"
	"github.com/Hodge2Franklin/MeAi/internal/meai"
	"github.com/Hodge2Franklin/MeAi/internal/render"
)

// version is set by the build via ldflags.
var version = "dev"

func main() {
	if err := run(context.Background(), meai.OutputPath); err != nil {
		log.Fatalf("generating architecture diagram: %v", err)
	}
}

func run(ctx context.Context, outputPath string) error {
	gen := diagram.NewGenerator()

	_, err := gen.Generate(ctx, interfaces.DiagramConfig{
		OutputPath: outputPath,
		Format:     render.FormatPNG,
		DPI:        render.DefaultDPI,
	})
	return err
}

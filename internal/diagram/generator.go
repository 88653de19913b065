// Package diagram wires the generation pipeline together: validate the
// output path, build the architecture scene and render it to disk.
package diagram

import (
	"context"
	"fmt"

	"github.com/Hodge2Franklin/MeAi/internal/interfaces"
	"github.com/Hodge2Franklin/MeAi/internal/meai"
	"github.com/Hodge2Franklin/MeAi/internal/render"
	"github.com/Hodge2Franklin/MeAi/internal/scene"
	"github.com/Hodge2Franklin/MeAi/internal/validation"
)

// builderFunc adapts a plain function to the SceneBuilder interface.
type builderFunc func() *scene.Scene

func (f builderFunc) BuildScene() *scene.Scene { return f() }

// rendererFunc adapts a plain function to the SceneRenderer interface.
type rendererFunc func(context.Context, *scene.Scene, string, render.Options) error

func (f rendererFunc) RenderScene(ctx context.Context, s *scene.Scene, outputPath string, opts render.Options) error {
	return f(ctx, s, outputPath, opts)
}

// validatorFunc adapts a plain function to the PathValidator interface.
type validatorFunc func(string) error

func (f validatorFunc) ValidateOutputPath(path string) error { return f(path) }

// Generator runs the diagram pipeline. NewGenerator wires the production
// scene builder, renderer and path validator; tests can swap any stage.
type Generator struct {
	builder   interfaces.SceneBuilder
	renderer  interfaces.SceneRenderer
	validator interfaces.PathValidator
}

var _ interfaces.DiagramGenerator = (*Generator)(nil)

// NewGenerator returns a Generator wired to the architecture scene and the
// file renderers.
func NewGenerator() *Generator {
	return &Generator{
		builder:   builderFunc(meai.BuildScene),
		renderer:  rendererFunc(render.RenderScene),
		validator: validatorFunc(validation.ValidateOutputPath),
	}
}

// Generate creates the diagram.
//
// It performs the following steps:
//  1. Validates the output path
//  2. Builds the architecture scene
//  3. Renders the scene and writes the diagram file
//
// Returns a GenerateResult with the scene item count and output path, or an
// error if any step fails.
func (g *Generator) Generate(ctx context.Context, cfg interfaces.DiagramConfig) (*interfaces.GenerateResult, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if err := g.validator.ValidateOutputPath(cfg.OutputPath); err != nil {
		return nil, fmt.Errorf("invalid output path: %w", err)
	}

	s := g.builder.BuildScene()
	if s == nil || len(s.Items) == 0 {
		return nil, fmt.Errorf("no scene items to diagram")
	}

	opts := render.Options{
		Format: cfg.Format,
		DPI:    cfg.DPI,
	}
	if err := g.renderer.RenderScene(ctx, s, cfg.OutputPath, opts); err != nil {
		return nil, fmt.Errorf("failed to render diagram: %w", err)
	}

	return &interfaces.GenerateResult{
		ItemCount:  len(s.Items),
		OutputPath: cfg.OutputPath,
	}, nil
}

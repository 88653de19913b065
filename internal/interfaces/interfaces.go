// Package interfaces defines the contracts between the diagram pipeline
// stages, for dependency injection and testing.
package interfaces

import (
	"context"

	"github.com/Hodge2Franklin/MeAi/internal/render"
	"github.com/Hodge2Franklin/MeAi/internal/scene"
)

// SceneBuilder defines the interface for assembling the diagram scene
type SceneBuilder interface {
	// BuildScene returns the complete scene to draw
	BuildScene() *scene.Scene
}

// SceneRenderer defines the interface for rendering scenes to files
type SceneRenderer interface {
	// RenderScene draws the scene and writes the result to the output path
	RenderScene(ctx context.Context, s *scene.Scene, outputPath string, opts render.Options) error
}

// PathValidator defines the interface for validating file paths
type PathValidator interface {
	// ValidateOutputPath validates an output path for security and writability
	ValidateOutputPath(path string) error
}

// DiagramGenerator defines the interface for the full generation pipeline
type DiagramGenerator interface {
	// Generate builds the scene, renders it and writes the diagram file
	Generate(ctx context.Context, cfg DiagramConfig) (*GenerateResult, error)
}

// DiagramConfig contains all configuration needed to generate a diagram
type DiagramConfig struct {
	OutputPath string
	Format     string
	DPI        float64
}

// GenerateResult contains the results of diagram generation
type GenerateResult struct {
	ItemCount  int
	OutputPath string
}

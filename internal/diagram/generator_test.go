package diagram

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Hodge2Franklin/MeAi/internal/interfaces"
	"github.com/Hodge2Franklin/MeAi/internal/render"
	"github.com/Hodge2Franklin/MeAi/internal/scene"
)

func TestGeneratorGenerate(t *testing.T) {
	tmpDir := t.TempDir()
	generator := NewGenerator()
	ctx := context.Background()

	tests := []struct {
		name    string
		config  interfaces.DiagramConfig
		wantErr bool
	}{
		{
			name: "png to temp dir",
			config: interfaces.DiagramConfig{
				OutputPath: filepath.Join(tmpDir, "architecture.png"),
				Format:     "png",
				DPI:        75,
			},
			wantErr: false,
		},
		{
			name: "svg to temp dir",
			config: interfaces.DiagramConfig{
				OutputPath: filepath.Join(tmpDir, "architecture.svg"),
				Format:     "svg",
			},
			wantErr: false,
		},
		{
			name: "missing output directory",
			config: interfaces.DiagramConfig{
				OutputPath: "/nonexistent/directory/architecture.png",
				Format:     "png",
				DPI:        75,
			},
			wantErr: true,
		},
		{
			name: "empty output path",
			config: interfaces.DiagramConfig{
				Format: "png",
			},
			wantErr: true,
		},
		{
			name: "unsupported format",
			config: interfaces.DiagramConfig{
				OutputPath: filepath.Join(tmpDir, "architecture.gif"),
				Format:     "gif",
				DPI:        75,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := generator.Generate(ctx, tt.config)

			if (err != nil) != tt.wantErr {
				t.Errorf("Generate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}

			if result == nil {
				t.Fatal("Generate() returned nil result for successful generation")
			}
			if result.ItemCount <= 0 {
				t.Errorf("Generate() ItemCount = %d, want > 0", result.ItemCount)
			}
			if result.OutputPath != tt.config.OutputPath {
				t.Errorf("Generate() OutputPath = %v, want %v", result.OutputPath, tt.config.OutputPath)
			}
			if _, err := os.Stat(result.OutputPath); os.IsNotExist(err) {
				t.Errorf("Generate() did not create output file at %s", result.OutputPath)
			}
		})
	}
}

func TestGeneratorGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGenerator().Generate(ctx, interfaces.DiagramConfig{
		OutputPath: filepath.Join(t.TempDir(), "architecture.png"),
		Format:     "png",
		DPI:        75,
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Generate() error = %v, want context.Canceled", err)
	}
}

type failingRenderer struct{ err error }

func (f failingRenderer) RenderScene(context.Context, *scene.Scene, string, render.Options) error {
	return f.err
}

func TestGeneratorStageErrors(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("validator failure", func(t *testing.T) {
		g := NewGenerator()
		g.validator = validatorFunc(func(string) error { return errors.New("denied") })

		_, err := g.Generate(context.Background(), interfaces.DiagramConfig{
			OutputPath: filepath.Join(tmpDir, "out.png"),
		})
		if err == nil || !strings.Contains(err.Error(), "denied") {
			t.Errorf("Generate() error = %v, want the validation failure wrapped", err)
		}
	})

	t.Run("empty scene", func(t *testing.T) {
		g := NewGenerator()
		g.builder = builderFunc(func() *scene.Scene { return &scene.Scene{} })

		_, err := g.Generate(context.Background(), interfaces.DiagramConfig{
			OutputPath: filepath.Join(tmpDir, "out.png"),
		})
		if err == nil {
			t.Error("Generate() error = nil, want empty scene error")
		}
	})

	t.Run("renderer failure", func(t *testing.T) {
		g := NewGenerator()
		g.renderer = failingRenderer{err: errors.New("disk full")}

		_, err := g.Generate(context.Background(), interfaces.DiagramConfig{
			OutputPath: filepath.Join(tmpDir, "out.png"),
		})
		if err == nil || !strings.Contains(err.Error(), "disk full") {
			t.Errorf("Generate() error = %v, want the renderer failure wrapped", err)
		}
	})
}

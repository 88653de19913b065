//go:build ignore
// +build ignore

// Regenerates the published architecture diagram in place. Run from the
// repository root with: go run tools/generate_diagram.go
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Hodge2Franklin/MeAi/internal/diagram"
	"github.com/Hodge2Franklin/MeAi/internal/interfaces"
	"github.com/Hodge2Franklin/MeAi/internal/meai"
)

func main() {
	fmt.Println("Regenerating architecture diagram...")

	gen := diagram.NewGenerator()
	result, err := gen.Generate(context.Background(), interfaces.DiagramConfig{
		OutputPath: meai.OutputPath,
		Format:     "png",
	})
	if err != nil {
		fmt.Printf("Error generating diagram: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Drew %d scene items\n", result.ItemCount)
	fmt.Printf("\n✅ SUCCESS! Diagram generated at: %s\n", result.OutputPath)
}

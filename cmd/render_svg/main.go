// Command render_svg renders the architecture diagram as SVG into the
// working directory. It is a development preview; the published artifact is
// the PNG written by the root command.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Hodge2Franklin/MeAi/internal/meai"
	"github.com/Hodge2Franklin/MeAi/internal/render"
)

func main() {
	fmt.Println("Rendering architecture diagram as SVG...")

	s := meai.BuildScene()
	rects, labels, arrows := s.Counts()
	fmt.Printf("Scene: %d rects, %d labels, %d arrows\n", rects, labels, arrows)

	opts := render.Options{
		Format: render.FormatSVG,
	}
	out := "high_level_architecture.svg"

	err := render.RenderScene(context.Background(), s, out, opts)
	if err != nil {
		fmt.Printf("❌ FAIL: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("✅ SUCCESS: Diagram rendered!")
	fmt.Printf("Output: %s\n", out)
}

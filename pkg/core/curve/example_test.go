package curve_test

import (
	"fmt"

	"github.com/matzehuels/logtrack/pkg/core/color"
	"github.com/matzehuels/logtrack/pkg/core/curve"
)

func ExampleGenerate() {
	gr, err := curve.Generate("Gamma Ray (API)", color.GammaRay, curve.Sine(50, 30, 5, 0), 100, 0.5)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("Samples:", gr.Len())
	fmt.Println("First:", gr.Samples[0].Depth, gr.Samples[0].Value)
	fmt.Println("Last depth:", gr.MaxDepth())
	// Output:
	// Samples: 201
	// First: 0 50
	// Last depth: 100
}

func ExampleGenerate_invalidRange() {
	_, err := curve.Generate("GR", color.GammaRay, curve.Sine(50, 30, 5, 0), 100, 0)
	fmt.Println(err)
	// Output:
	// INVALID_RANGE: step must be a positive number, got 0
}

package primitive_test

import (
	"fmt"

	"github.com/matzehuels/logtrack/pkg/core/color"
	"github.com/matzehuels/logtrack/pkg/core/curve"
	"github.com/matzehuels/logtrack/pkg/core/primitive"
	"github.com/matzehuels/logtrack/pkg/core/track"
)

func ExampleBuild() {
	gr, _ := curve.Generate("GR", color.GammaRay, curve.Sine(50, 30, 5, 0), 100, 0.5)
	tracks, _ := track.Layout([]curve.LogCurve{gr}, 100)

	prims, err := primitive.Build(tracks, primitive.DefaultAxisConfig(100), 10)
	if err != nil {
		fmt.Println(err)
		return
	}

	polylines, labels := primitive.Count(prims)
	fmt.Println("Polylines:", polylines, "Labels:", labels)
	fmt.Println("First:", prims[0].Tagged().Role, prims[1].Tagged().Role)
	// Output:
	// Polylines: 23 Labels: 22
	// First: axis axis-title
}

func ExampleDepthTicks() {
	ticks, _ := primitive.DepthTicks(95, 10)
	fmt.Println(ticks)
	// Output: [0 10 20 30 40 50 60 70 80 90]
}

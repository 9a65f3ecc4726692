// Package catalog holds the built-in well-log scenes and turns a scene
// definition into tracks and primitives.
//
// Each [Definition] is plain data: depth range, sampling step, track
// spacing and a list of [TrackSpec] values whose curves are closed-form
// waves. [Definition.Build] runs the generator pipeline
// (curve.Generate → track.Layout → primitive.Build) and returns a [Scene].
package catalog

import (
	"strings"

	"github.com/matzehuels/logtrack/pkg/core/color"
	errs "github.com/matzehuels/logtrack/pkg/errors"
)

// Example names a built-in scene.
type Example string

const (
	// ExampleOne is a single gamma-ray curve over a reference grid.
	ExampleOne Example = "one"
	// ExampleTwo is an annotated gamma-ray track with depth and value ticks.
	ExampleTwo Example = "two"
	// ExampleThree is a triple combo: gamma ray, bulk density and neutron porosity.
	ExampleThree Example = "three"
)

var aliases = map[string]Example{
	"one":          ExampleOne,
	"1":            ExampleOne,
	"exampleone":   ExampleOne,
	"two":          ExampleTwo,
	"2":            ExampleTwo,
	"exampletwo":   ExampleTwo,
	"three":        ExampleThree,
	"3":            ExampleThree,
	"examplethree": ExampleThree,
	"triple-combo": ExampleThree,
}

// ParseExample resolves a user-supplied scene name. Matching ignores case,
// surrounding space and dashes in the "example-one" form.
func ParseExample(s string) (Example, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if e, ok := aliases[key]; ok {
		return e, nil
	}
	if e, ok := aliases[strings.ReplaceAll(key, "-", "")]; ok {
		return e, nil
	}
	return "", errs.New(errs.ErrCodeUnknownExample, "unknown example %q (valid: %s)", s, strings.Join(Names(), ", "))
}

func builtin(e Example) (Definition, bool) {
	switch e {
	case ExampleOne:
		return Definition{
			Name:         ExampleOne,
			Title:        "Gamma Ray",
			Description:  "Single gamma-ray curve over a reference grid",
			MaxDepth:     100,
			Step:         0.5,
			Spacing:      100,
			TickInterval: 10,
			Grid:         true,
			Ticks:        false,
			Tracks:       []TrackSpec{gammaRay()},
		}, true
	case ExampleTwo:
		gr := gammaRay()
		gr.Name = "Gamma Ray (API)"
		gr.TickInterval = 30
		gr.TitleOffset = offset(50)
		return Definition{
			Name:         ExampleTwo,
			Title:        "Annotated Gamma Ray",
			Description:  "Gamma-ray track with depth and value axes",
			MaxDepth:     100,
			Step:         0.5,
			Spacing:      150,
			TrackWidth:   150,
			TickInterval: 10,
			Ticks:        true,
			Tracks:       []TrackSpec{gr},
		}, true
	case ExampleThree:
		return Definition{
			Name:         ExampleThree,
			Title:        "Triple Combo",
			Description:  "Gamma ray, bulk density and neutron porosity side by side",
			MaxDepth:     100,
			Step:         0.5,
			Spacing:      160,
			TickInterval: 10,
			Ticks:        true,
			Tracks: []TrackSpec{
				gammaRay(),
				{
					Name:  "RHOB (g/cc)",
					Color: color.Density,
					Scale: 50,
					Wave:  Wave{Kind: WaveCosine, Base: 2.45, Amplitude: 0.2, Divisor: 7},
				},
				{
					Name:  "NPHI (v/v)",
					Color: color.Neutron,
					Scale: 300,
					Wave:  Wave{Kind: WaveSine, Base: 0.25, Amplitude: 0.1, Divisor: 3, Phase: 1},
				},
			},
		}, true
	}
	return Definition{}, false
}

func offset(v float64) *float64 { return &v }

func gammaRay() TrackSpec {
	return TrackSpec{
		Name:  "GR (API)",
		Color: color.GammaRay,
		Scale: 1,
		Wave:  Wave{Kind: WaveSine, Base: 50, Amplitude: 30, Divisor: 5},
	}
}

// Lookup returns a fresh copy of the named built-in definition.
func Lookup(name string) (Definition, error) {
	e, err := ParseExample(name)
	if err != nil {
		return Definition{}, err
	}
	d, _ := builtin(e)
	return d, nil
}

// All returns every built-in definition in catalog order.
func All() []Definition {
	out := make([]Definition, 0, 3)
	for _, e := range []Example{ExampleOne, ExampleTwo, ExampleThree} {
		d, _ := builtin(e)
		out = append(out, d)
	}
	return out
}

// Names returns the canonical built-in names in catalog order.
func Names() []string {
	return []string{string(ExampleOne), string(ExampleTwo), string(ExampleThree)}
}

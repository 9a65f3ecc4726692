package catalog

import (
	"reflect"
	"testing"

	"github.com/matzehuels/logtrack/pkg/core/color"
	"github.com/matzehuels/logtrack/pkg/core/primitive"
	errs "github.com/matzehuels/logtrack/pkg/errors"
)

func TestParseExample(t *testing.T) {
	tests := []struct {
		in   string
		want Example
	}{
		{"one", ExampleOne},
		{" TWO ", ExampleTwo},
		{"3", ExampleThree},
		{"exampleTwo", ExampleTwo},
		{"example-one", ExampleOne},
		{"triple-combo", ExampleThree},
	}
	for _, tt := range tests {
		got, err := ParseExample(tt.in)
		if err != nil {
			t.Errorf("ParseExample(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseExample(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "four", "example"} {
		if _, err := ParseExample(bad); !errs.Is(err, errs.ErrCodeUnknownExample) {
			t.Errorf("ParseExample(%q) err = %v, want UNKNOWN_EXAMPLE", bad, err)
		}
	}
}

func TestAllMatchesNames(t *testing.T) {
	all := All()
	names := Names()
	if len(all) != len(names) {
		t.Fatalf("All() = %d definitions, Names() = %d", len(all), len(names))
	}
	for i, d := range all {
		if string(d.Name) != names[i] {
			t.Errorf("All()[%d].Name = %q, want %q", i, d.Name, names[i])
		}
		if err := d.Validate(); err != nil {
			t.Errorf("%s: Validate: %v", d.Name, err)
		}
	}
}

func TestBuildExampleOne(t *testing.T) {
	d, err := Lookup("one")
	if err != nil {
		t.Fatal(err)
	}
	s, err := d.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	// axis line + title, one track (curve, title, frame), 11 grid lines each way
	if len(s.Primitives) != 2+3+22 {
		t.Fatalf("primitives = %d, want 27", len(s.Primitives))
	}
	if s.Primitives[len(s.Primitives)-1].Tagged().Role != primitive.RoleGrid {
		t.Errorf("last primitive role = %q, want grid", s.Primitives[len(s.Primitives)-1].Tagged().Role)
	}
	if got := s.Curves[0].Len(); got != 201 {
		t.Errorf("samples = %d, want 201", got)
	}
	if s.Curves[0].Color != color.GammaRay {
		t.Errorf("color = %v", s.Curves[0].Color)
	}
}

func TestBuildExampleTwo(t *testing.T) {
	d, _ := Lookup("two")
	s, err := d.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if s.Tracks[0].Bounds.Width != 150 {
		t.Errorf("width = %v, want 150", s.Tracks[0].Bounds.Width)
	}
	// 11 depth ticks, 6 value ticks
	if len(s.Primitives) != 2+2*11+3+2*6 {
		t.Errorf("primitives = %d, want 39", len(s.Primitives))
	}
	title := primitive.ForTrack(s.Primitives, "Gamma Ray (API)")[1].(primitive.Label)
	if title.Text != "Gamma Ray (API)" {
		t.Errorf("track title = %q", title.Text)
	}
	if title.Position.X != 50 {
		t.Errorf("track title x = %v, want 50", title.Position.X)
	}

	var texts []string
	for _, p := range primitive.ForTrack(s.Primitives, "Gamma Ray (API)") {
		if l, ok := p.(primitive.Label); ok && l.Role == primitive.RoleTickLabel {
			texts = append(texts, l.Text)
		}
	}
	want := []string{"0", "30", "60", "90", "120", "150"}
	if !reflect.DeepEqual(texts, want) {
		t.Errorf("value tick labels = %v, want %v", texts, want)
	}
}

func TestBuildExampleThree(t *testing.T) {
	d, _ := Lookup("three")
	s, err := d.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	wantOrigins := []float64{0, 160, 320}
	wantColors := []color.RGB{color.GammaRay, color.Density, color.Neutron}
	for i, tr := range s.Tracks {
		if tr.OriginX != wantOrigins[i] {
			t.Errorf("track %d origin = %v, want %v", i, tr.OriginX, wantOrigins[i])
		}
		if tr.Curve.Color != wantColors[i] {
			t.Errorf("track %d color = %v, want %v", i, tr.Curve.Color, wantColors[i])
		}
		if tr.Bounds.Width > d.Spacing {
			t.Errorf("track %d width %v exceeds spacing", i, tr.Bounds.Width)
		}
	}
}

func TestBuildFreshResults(t *testing.T) {
	d, _ := Lookup("three")
	a, err := d.Build()
	if err != nil {
		t.Fatal(err)
	}
	b, err := d.Build()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a.Primitives, b.Primitives) {
		t.Fatal("Build is not deterministic")
	}

	a.Curves[0].Samples[0].Value = -1
	a.Definition.Tracks[0].Name = "changed"
	if b.Curves[0].Samples[0].Value == -1 {
		t.Error("scenes share curve storage")
	}
	if d.Tracks[0].Name == "changed" {
		t.Error("scene shares track specs with definition")
	}

	two, _ := Lookup("two")
	clone := two.Clone()
	*clone.Tracks[0].TitleOffset = 0
	if *two.Tracks[0].TitleOffset != 50 {
		t.Error("Clone shares title offsets")
	}
}

func TestBuildErrors(t *testing.T) {
	base, _ := Lookup("three")
	tests := []struct {
		name   string
		mutate func(*Definition)
		code   errs.Code
	}{
		{"zero step", func(d *Definition) { d.Step = 0 }, errs.ErrCodeInvalidRange},
		{"negative depth", func(d *Definition) { d.MaxDepth = -1 }, errs.ErrCodeInvalidRange},
		{"zero tick interval", func(d *Definition) { d.TickInterval = 0 }, errs.ErrCodeInvalidRange},
		{"no tracks", func(d *Definition) { d.Tracks = nil }, errs.ErrCodeUnknownTrackSpec},
		{"bad wave", func(d *Definition) { d.Tracks[1].Wave.Kind = "square" }, errs.ErrCodeUnknownTrackSpec},
		{"overlapping bands", func(d *Definition) { d.Spacing = 100 }, errs.ErrCodeUnknownTrackSpec},
		{"negative scale", func(d *Definition) { d.Tracks[2].Scale = -3 }, errs.ErrCodeUnknownTrackSpec},
		{"duplicate names", func(d *Definition) { d.Tracks[1].Name = d.Tracks[0].Name }, errs.ErrCodeUnknownTrackSpec},
		{"negative track tick interval", func(d *Definition) { d.Tracks[0].TickInterval = -30 }, errs.ErrCodeInvalidRange},
		{"negative values", func(d *Definition) { d.Tracks[0].Wave.Base = 10 }, errs.ErrCodeUnknownTrackSpec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := base.Clone()
			tt.mutate(&d)
			s, err := d.Build()
			if !errs.Is(err, tt.code) {
				t.Fatalf("err = %v, want %s", err, tt.code)
			}
			if s != nil {
				t.Error("scene returned alongside error")
			}
		})
	}
}

func TestWaveFunc(t *testing.T) {
	tests := []struct {
		wave Wave
		at   float64
		want float64
	}{
		{Wave{Kind: WaveSine, Base: 50, Amplitude: 30, Divisor: 5}, 0, 50},
		{Wave{Kind: WaveCosine, Base: 1, Amplitude: 0.5, Divisor: 7}, 0, 1.5},
		{Wave{Kind: "COSINE", Base: 1, Amplitude: 1, Divisor: 1}, 0, 2},
		{Wave{Kind: WaveConstant, Base: 7, Amplitude: 3}, 42, 7},
	}
	for _, tt := range tests {
		fn, err := tt.wave.Func()
		if err != nil {
			t.Fatalf("%+v: %v", tt.wave, err)
		}
		if got := fn(tt.at); got != tt.want {
			t.Errorf("%s(%v) = %v, want %v", tt.wave.Kind, tt.at, got, tt.want)
		}
	}
}

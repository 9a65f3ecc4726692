package catalog

import (
	"math"
	"strings"

	"github.com/matzehuels/logtrack/pkg/core/color"
	"github.com/matzehuels/logtrack/pkg/core/curve"
	"github.com/matzehuels/logtrack/pkg/core/primitive"
	"github.com/matzehuels/logtrack/pkg/core/track"
	errs "github.com/matzehuels/logtrack/pkg/errors"
)

// WaveKind selects the periodic function of a [Wave].
type WaveKind string

const (
	WaveSine     WaveKind = "sin"
	WaveCosine   WaveKind = "cos"
	WaveConstant WaveKind = "const"
)

// Wave is a closed-form curve: Base + Amplitude*f(depth/Divisor + Phase).
// A constant wave ignores everything but Base.
type Wave struct {
	Kind      WaveKind `json:"kind" toml:"kind"`
	Base      float64  `json:"base" toml:"base"`
	Amplitude float64  `json:"amplitude" toml:"amplitude"`
	Divisor   float64  `json:"divisor" toml:"divisor"`
	Phase     float64  `json:"phase,omitempty" toml:"phase"`
}

// Func returns the wave as a curve function.
func (w Wave) Func() (curve.Func, error) {
	switch WaveKind(strings.ToLower(string(w.Kind))) {
	case WaveSine, "sine":
		return curve.Sine(w.Base, w.Amplitude, w.Divisor, w.Phase), nil
	case WaveCosine, "cosine":
		return curve.Cosine(w.Base, w.Amplitude, w.Divisor, w.Phase), nil
	case WaveConstant, "constant":
		return curve.Constant(w.Base), nil
	}
	return nil, errs.New(errs.ErrCodeUnknownTrackSpec, "unknown wave kind %q (valid: sin, cos, const)", w.Kind)
}

// TrackSpec describes one curve of a scene.
//
// TickInterval spaces the track's value-axis ticks in world units and falls
// back to the scene's tick interval when zero. TitleOffset places the title
// relative to the track origin; nil centres it over the band.
type TrackSpec struct {
	Name         string    `json:"name" toml:"name"`
	Color        color.RGB `json:"color" toml:"color"`
	Scale        float64   `json:"scale" toml:"scale"`
	Wave         Wave      `json:"wave" toml:"wave"`
	TickInterval float64   `json:"tick_interval,omitempty" toml:"tick_interval"`
	TitleOffset  *float64  `json:"title_offset,omitempty" toml:"title_offset"`
}

func (ts TrackSpec) decor() primitive.TrackDecor {
	return primitive.TrackDecor{TickInterval: ts.TickInterval, TitleOffset: ts.TitleOffset}
}

// Definition is a complete scene description.
type Definition struct {
	Name         Example     `json:"name" toml:"name"`
	Title        string      `json:"title" toml:"title"`
	Description  string      `json:"description,omitempty" toml:"description"`
	MaxDepth     float64     `json:"max_depth" toml:"max_depth"`
	Step         float64     `json:"step" toml:"step"`
	Spacing      float64     `json:"spacing" toml:"spacing"`
	TrackWidth   float64     `json:"track_width,omitempty" toml:"track_width"`
	TickInterval float64     `json:"tick_interval" toml:"tick_interval"`
	Grid         bool        `json:"grid" toml:"grid"`
	Ticks        bool        `json:"ticks" toml:"ticks"`
	Tracks       []TrackSpec `json:"tracks" toml:"track"`
}

// Scene is the generated output of a definition.
type Scene struct {
	Definition Definition            `json:"definition"`
	Curves     []curve.LogCurve      `json:"curves"`
	Tracks     []track.Track         `json:"tracks"`
	Primitives []primitive.Primitive `json:"-"`
	Bounds     primitive.Rect        `json:"bounds"`
}

// Clone returns a deep copy so callers can adjust overrides without touching
// the original.
func (d Definition) Clone() Definition {
	d.Tracks = append([]TrackSpec(nil), d.Tracks...)
	for i, ts := range d.Tracks {
		if ts.TitleOffset != nil {
			off := *ts.TitleOffset
			d.Tracks[i].TitleOffset = &off
		}
	}
	return d
}

// Validate checks the scalar parameters of a definition. Curve and track
// specific problems are reported by [Definition.Build].
func (d Definition) Validate() error {
	if err := curve.ValidateRange(d.MaxDepth, d.Step); err != nil {
		return err
	}
	if math.IsNaN(d.TickInterval) || d.TickInterval <= 0 {
		return errs.New(errs.ErrCodeInvalidRange, "tick interval must be a positive number, got %g", d.TickInterval)
	}
	if math.IsNaN(d.TrackWidth) || d.TrackWidth < 0 {
		return errs.New(errs.ErrCodeUnknownTrackSpec, "track width must be non-negative, got %g", d.TrackWidth)
	}
	if len(d.Tracks) == 0 {
		return errs.New(errs.ErrCodeUnknownTrackSpec, "scene %q has no tracks", d.Name)
	}
	for _, ts := range d.Tracks {
		if math.IsNaN(ts.TickInterval) || math.IsInf(ts.TickInterval, 0) || ts.TickInterval < 0 {
			return errs.New(errs.ErrCodeInvalidRange, "track %q tick interval must be a positive number, got %g", ts.Name, ts.TickInterval)
		}
	}
	return nil
}

// Build generates curves, lays out tracks and emits primitives.
// Each call returns freshly allocated data.
func (d Definition) Build() (*Scene, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	curves := make([]curve.LogCurve, len(d.Tracks))
	scales := make([]float64, len(d.Tracks))
	for i, ts := range d.Tracks {
		fn, err := ts.Wave.Func()
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeUnknownTrackSpec, err, "track %q", ts.Name)
		}
		if curves[i], err = curve.Generate(ts.Name, ts.Color, fn, d.MaxDepth, d.Step); err != nil {
			return nil, err
		}
		scales[i] = ts.Scale
		if scales[i] == 0 {
			scales[i] = 1
		}
	}

	opts := []track.Option{track.WithScales(scales...)}
	if d.TrackWidth > 0 {
		opts = append(opts, track.WithWidth(d.TrackWidth))
	}
	tracks, err := track.Layout(curves, d.Spacing, opts...)
	if err != nil {
		return nil, err
	}

	var popts []primitive.Option
	if d.Grid {
		popts = append(popts, primitive.WithGrid(primitive.DefaultGrid()))
	}
	if !d.Ticks {
		popts = append(popts, primitive.WithoutTicks())
	}
	for _, ts := range d.Tracks {
		popts = append(popts, primitive.WithTrackDecor(ts.Name, ts.decor()))
	}
	prims, err := primitive.Build(tracks, primitive.DefaultAxisConfig(d.MaxDepth), d.TickInterval, popts...)
	if err != nil {
		return nil, err
	}

	return &Scene{
		Definition: d.Clone(),
		Curves:     curves,
		Tracks:     tracks,
		Primitives: prims,
		Bounds:     primitive.Bounds(prims),
	}, nil
}

package primitive

import (
	"math"

	"github.com/matzehuels/logtrack/pkg/core/color"
	"github.com/matzehuels/logtrack/pkg/core/track"
	errs "github.com/matzehuels/logtrack/pkg/errors"
)

// AxisConfig describes the shared depth axis and the decoration sizes used
// for every track.
type AxisConfig struct {
	MaxDepth    float64   // axis runs from depth 0 to MaxDepth
	X           float64   // x position of the axis line
	TickLength  float64   // length of tick marks on both axes
	LabelOffset float64   // depth tick labels sit at X - LabelOffset
	LabelSize   float64   // font size of tick labels
	Title       string    // depth axis title, empty to omit
	TitleOffset float64   // axis title sits at X - TitleOffset
	TitleSize   float64   // font size of the axis title and track titles
	TrackTitleY float64   // y position of track titles
	Color       color.RGB // axis line, ticks and tick labels
	TitleColor  color.RGB // axis title
	FrameColor  color.RGB // track bounding boxes
}

// DefaultAxisConfig returns the axis used by the built-in scenes: grey axis
// and ticks, a white "Depth (ft)" title rotated to run along the axis.
func DefaultAxisConfig(maxDepth float64) AxisConfig {
	return AxisConfig{
		MaxDepth:    maxDepth,
		X:           0,
		TickLength:  2,
		LabelOffset: 8,
		LabelSize:   2,
		Title:       "Depth (ft)",
		TitleOffset: 20,
		TitleSize:   4,
		TrackTitleY: 10,
		Color:       color.Axis,
		TitleColor:  color.White,
		FrameColor:  color.Grid,
	}
}

// GridConfig is a square reference grid on the z=0 plane.
type GridConfig struct {
	Size        float64
	Divisions   int
	CenterX     float64
	CenterY     float64
	Color       color.RGB
	CenterColor color.RGB
}

// DefaultGrid mirrors a 200 unit grid with 10 divisions centred on the origin.
func DefaultGrid() GridConfig {
	return GridConfig{
		Size:        200,
		Divisions:   10,
		Color:       color.GridMinor,
		CenterColor: color.Grid,
	}
}

// Option configures [Build].
type Option func(*buildConfig)

type buildConfig struct {
	grid    *GridConfig
	noTicks bool
	decor   map[string]TrackDecor
}

// TrackDecor adjusts the decorations of one track.
type TrackDecor struct {
	// TickInterval spaces the value-axis ticks in world units. Zero uses
	// the shared tick interval.
	TickInterval float64
	// TitleOffset places the title at OriginX + *TitleOffset. Nil centres it.
	TitleOffset *float64
}

// WithGrid appends a reference grid after all tracks.
func WithGrid(g GridConfig) Option {
	return func(c *buildConfig) { c.grid = &g }
}

// WithTrackDecor sets the decorations of the named track.
func WithTrackDecor(name string, d TrackDecor) Option {
	return func(c *buildConfig) {
		if c.decor == nil {
			c.decor = make(map[string]TrackDecor)
		}
		c.decor[name] = d
	}
}

// WithoutTicks omits tick marks and tick labels on every axis.
func WithoutTicks() Option {
	return func(c *buildConfig) { c.noTicks = true }
}

// Build emits the primitives for a multi-track display. All arguments are
// validated before anything is emitted.
func Build(tracks []track.Track, axis AxisConfig, tickInterval float64, opts ...Option) ([]Primitive, error) {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	depthTicks, err := DepthTicks(axis.MaxDepth, tickInterval)
	if err != nil {
		return nil, err
	}

	trackTicks := make([][]float64, len(tracks))
	for i, t := range tracks {
		if !(t.HorizontalScale > 0) {
			return nil, errs.New(errs.ErrCodeUnknownTrackSpec, "track %q scale must be positive, got %g", t.Name, t.HorizontalScale)
		}
		if t.Bounds.Width < 0 || math.IsNaN(t.Bounds.Width) {
			return nil, errs.New(errs.ErrCodeUnknownTrackSpec, "track %q width must be non-negative, got %g", t.Name, t.Bounds.Width)
		}
		interval := tickInterval
		d := cfg.decor[t.Name]
		if v := d.TickInterval; v != 0 {
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				return nil, errs.New(errs.ErrCodeInvalidRange, "track %q tick interval must be a positive number, got %g", t.Name, v)
			}
			interval = v
		}
		if off := d.TitleOffset; off != nil && (math.IsNaN(*off) || math.IsInf(*off, 0)) {
			return nil, errs.New(errs.ErrCodeUnknownTrackSpec, "track %q title offset must be finite, got %g", t.Name, *off)
		}
		if trackTicks[i], err = multiples(t.Bounds.Width, interval); err != nil {
			return nil, err
		}
	}
	if cfg.grid != nil && (cfg.grid.Divisions <= 0 || !(cfg.grid.Size > 0)) {
		return nil, errs.New(errs.ErrCodeInvalidRange, "grid needs a positive size and division count")
	}

	if cfg.noTicks {
		depthTicks = nil
		for i := range trackTicks {
			trackTicks[i] = nil
		}
	}

	b := builder{axis: axis, decor: cfg.decor}
	b.depthAxis(depthTicks)
	for i, t := range tracks {
		b.track(t, trackTicks[i])
	}
	if cfg.grid != nil {
		b.grid(*cfg.grid)
	}
	return b.out, nil
}

type builder struct {
	axis  AxisConfig
	decor map[string]TrackDecor
	out   []Primitive
}

func (b *builder) line(tag Tag, c color.RGB, pts ...Point) {
	b.out = append(b.out, Polyline{Tag: tag, Points: pts, Color: c})
}

func (b *builder) label(l Label) {
	b.out = append(b.out, l)
}

func (b *builder) depthAxis(ticks []float64) {
	a := b.axis
	b.line(Tag{Role: RoleAxis}, a.Color, Pt(a.X, 0), Pt(a.X, -a.MaxDepth))

	if a.Title != "" {
		b.label(Label{
			Tag:      Tag{Role: RoleAxisTitle},
			Text:     a.Title,
			Position: Pt(a.X-a.TitleOffset, -a.MaxDepth/2),
			Size:     a.TitleSize,
			Color:    a.TitleColor,
			Rotation: math.Pi / 2,
			Anchor:   AnchorMiddle,
		})
	}

	for _, d := range ticks {
		b.line(Tag{Role: RoleTick}, a.Color, Pt(a.X, -d), Pt(a.X-a.TickLength, -d))
		b.label(Label{
			Tag:      Tag{Role: RoleTickLabel},
			Text:     FormatTick(d),
			Position: Pt(a.X-a.LabelOffset, -d),
			Size:     a.LabelSize,
			Color:    a.Color,
			Anchor:   AnchorStart,
		})
	}
}

func (b *builder) track(t track.Track, ticks []float64) {
	a := b.axis
	owner := func(r Role) Tag { return Tag{Role: r, Track: t.Name} }

	pts := make([]Point, len(t.Curve.Samples))
	for i, s := range t.Curve.Samples {
		pts[i] = Pt(t.X(s.Value), -s.Depth)
	}
	b.line(owner(RoleCurve), t.Curve.Color, pts...)

	titleX := t.OriginX + t.Bounds.Width/2
	if off := b.decor[t.Name].TitleOffset; off != nil {
		titleX = t.OriginX + *off
	}
	b.label(Label{
		Tag:      owner(RoleTitle),
		Text:     t.Name,
		Position: Pt(titleX, a.TrackTitleY),
		Size:     a.TitleSize,
		Color:    t.Curve.Color,
		Anchor:   AnchorMiddle,
	})

	left, right := t.OriginX, t.Right()
	top, bottom := -t.Bounds.DepthMin, -a.MaxDepth
	b.line(owner(RoleFrame), a.FrameColor,
		Pt(left, top), Pt(right, top), Pt(right, bottom), Pt(left, bottom), Pt(left, top))

	for _, off := range ticks {
		x := t.OriginX + off
		b.line(owner(RoleTick), a.Color, Pt(x, top), Pt(x, top+a.TickLength))
		b.label(Label{
			Tag:      owner(RoleTickLabel),
			Text:     FormatTick(off / t.HorizontalScale),
			Position: Pt(x-a.LabelSize, top+a.TickLength+a.LabelSize),
			Size:     a.LabelSize,
			Color:    a.Color,
			Anchor:   AnchorStart,
		})
	}
}

func (b *builder) grid(g GridConfig) {
	half := g.Size / 2
	step := g.Size / float64(g.Divisions)
	for i := 0; i <= g.Divisions; i++ {
		off := -half + float64(i)*step
		role, c := RoleGrid, g.Color
		if 2*i == g.Divisions {
			role, c = RoleGridCenter, g.CenterColor
		}
		b.line(Tag{Role: role}, c, Pt(g.CenterX+off, g.CenterY-half), Pt(g.CenterX+off, g.CenterY+half))
		b.line(Tag{Role: role}, c, Pt(g.CenterX-half, g.CenterY+off), Pt(g.CenterX+half, g.CenterY+off))
	}
}

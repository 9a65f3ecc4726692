// Package track lays out log curves as side-by-side vertical strips.
//
// Each curve becomes a [Track] anchored at OriginX = index*spacing on a
// shared horizontal axis, the arrangement a wireline log viewer uses for its
// gamma ray, density and neutron columns. Values are drawn at
// OriginX + value*HorizontalScale, depth increases downwards.
//
// [Layout] rejects specs that would break the side-by-side arrangement with an
// UNKNOWN_TRACK_SPEC error: negative spacing, non-positive scales, invalid or
// duplicate names, spacing narrower than a track so that bands overlap, and
// curves whose scaled values leave their band [0, width].
package track

import (
	"math"

	"github.com/matzehuels/logtrack/pkg/core/curve"
	errs "github.com/matzehuels/logtrack/pkg/errors"
)

const (
	// widthStep is the granularity default track widths are rounded up to.
	widthStep = 10.0
	// minWidth is the smallest default width so flat or empty curves still get a band.
	minWidth = widthStep
)

// Bounds is the region a track occupies, in track-local units.
type Bounds struct {
	Width    float64 `json:"width"`
	DepthMin float64 `json:"depth_min"`
	DepthMax float64 `json:"depth_max"`
}

// Track places one curve as a vertical strip.
type Track struct {
	Name            string         `json:"name"`
	Curve           curve.LogCurve `json:"curve"`
	OriginX         float64        `json:"origin_x"`
	HorizontalScale float64        `json:"horizontal_scale"`
	Bounds          Bounds         `json:"bounds"`
}

// Right returns the right edge of the track band.
func (t Track) Right() float64 { return t.OriginX + t.Bounds.Width }

// X maps a curve value to its horizontal world position.
func (t Track) X(value float64) float64 { return t.OriginX + value*t.HorizontalScale }

// Option configures [Layout].
type Option func(*config)

type config struct {
	scales []float64
	width  float64
}

// WithScales sets per-track horizontal scales, aligned with the curve order.
// Curves without a matching entry use a scale of 1.
func WithScales(scales ...float64) Option {
	return func(c *config) { c.scales = append([]float64(nil), scales...) }
}

// WithWidth gives every track the same fixed width instead of deriving it from the data.
func WithWidth(w float64) Option {
	return func(c *config) { c.width = w }
}

// Layout assigns each curve a band starting at index*spacing.
// The output preserves the input order.
func Layout(curves []curve.LogCurve, spacing float64, opts ...Option) ([]Track, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if math.IsNaN(spacing) || math.IsInf(spacing, 0) || spacing < 0 {
		return nil, errs.New(errs.ErrCodeUnknownTrackSpec, "track spacing must be a non-negative number, got %g", spacing)
	}
	if cfg.width < 0 || math.IsNaN(cfg.width) || math.IsInf(cfg.width, 0) {
		return nil, errs.New(errs.ErrCodeUnknownTrackSpec, "track width must be a non-negative number, got %g", cfg.width)
	}
	if len(cfg.scales) > len(curves) {
		return nil, errs.New(errs.ErrCodeUnknownTrackSpec, "%d scales given for %d curves", len(cfg.scales), len(curves))
	}

	seen := make(map[string]struct{}, len(curves))
	tracks := make([]Track, 0, len(curves))
	for i, c := range curves {
		if err := errs.ValidateName(c.Name); err != nil {
			return nil, err
		}
		if _, dup := seen[c.Name]; dup {
			return nil, errs.New(errs.ErrCodeUnknownTrackSpec, "duplicate track name %q", c.Name)
		}
		seen[c.Name] = struct{}{}

		scale := 1.0
		if i < len(cfg.scales) {
			scale = cfg.scales[i]
		}
		if !(scale > 0) || math.IsInf(scale, 0) {
			return nil, errs.New(errs.ErrCodeUnknownTrackSpec, "track %q scale must be positive, got %g", c.Name, scale)
		}

		width := cfg.width
		if width == 0 {
			width = defaultWidth(c, scale)
		}

		if lo, hi := c.MinMax(); lo < 0 || hi*scale > width {
			return nil, errs.New(errs.ErrCodeUnknownTrackSpec,
				"track %q values [%g, %g] at scale %g do not fit its band [0, %g]", c.Name, lo*scale, hi*scale, scale, width)
		}
		if len(curves) > 1 && spacing < width {
			return nil, errs.New(errs.ErrCodeUnknownTrackSpec,
				"spacing %g is narrower than track %q (width %g); tracks would overlap", spacing, c.Name, width)
		}

		tracks = append(tracks, Track{
			Name:            c.Name,
			Curve:           c.Clone(),
			OriginX:         float64(i) * spacing,
			HorizontalScale: scale,
			Bounds: Bounds{
				Width:    width,
				DepthMin: 0,
				DepthMax: c.MaxDepth(),
			},
		})
	}
	return tracks, nil
}

// defaultWidth rounds the largest scaled value up to the next widthStep.
func defaultWidth(c curve.LogCurve, scale float64) float64 {
	_, hi := c.MinMax()
	w := math.Ceil(hi*scale/widthStep) * widthStep
	return math.Max(w, minWidth)
}

// Extent returns the horizontal span covered by tracks, from the first origin
// to the furthest right edge.
func Extent(tracks []Track) (left, right float64) {
	if len(tracks) == 0 {
		return 0, 0
	}
	left, right = tracks[0].OriginX, tracks[0].Right()
	for _, t := range tracks[1:] {
		left = math.Min(left, t.OriginX)
		right = math.Max(right, t.Right())
	}
	return left, right
}

package curve

import (
	"math"

	"github.com/matzehuels/logtrack/pkg/core/color"
	errs "github.com/matzehuels/logtrack/pkg/errors"
)

// sampleEpsilon absorbs floating point noise when dividing maxDepth by step,
// e.g. 0.3/0.1 = 2.9999999999999996. A maxDepth within this tolerance below a
// multiple of step still gets that sample, clamped to maxDepth.
const sampleEpsilon = 1e-9

// maxSamples caps a single curve. A million samples is far beyond anything a
// track can display and protects callers from runaway step values.
const maxSamples = 1_000_000

// Func maps a depth to a measured value.
type Func func(depth float64) float64

// DepthSample is one point of a log curve.
type DepthSample struct {
	Depth float64 `json:"depth"`
	Value float64 `json:"value"`
}

// LogCurve is a named, coloured series of samples ordered by depth.
type LogCurve struct {
	Name    string        `json:"name"`
	Color   color.RGB     `json:"color"`
	Samples []DepthSample `json:"samples"`
}

// Generate samples fn at depth = 0, step, 2*step, ... maxDepth.
// No sample lies deeper than maxDepth.
func Generate(name string, c color.RGB, fn Func, maxDepth, step float64) (LogCurve, error) {
	n, err := SampleCount(maxDepth, step)
	if err != nil {
		return LogCurve{}, err
	}
	if fn == nil {
		return LogCurve{}, errs.New(errs.ErrCodeInvalidInput, "curve %q has no function", name)
	}

	samples := make([]DepthSample, n)
	for i := range samples {
		d := math.Min(float64(i)*step, maxDepth)
		samples[i] = DepthSample{Depth: d, Value: fn(d)}
	}
	return LogCurve{Name: name, Color: c, Samples: samples}, nil
}

// SampleCount returns floor(maxDepth/step)+1 after validating the range.
func SampleCount(maxDepth, step float64) (int, error) {
	if err := ValidateRange(maxDepth, step); err != nil {
		return 0, err
	}
	q := math.Floor(maxDepth/step + sampleEpsilon)
	if q+1 > maxSamples {
		return 0, errs.New(errs.ErrCodeInvalidRange,
			"step %g over depth %g yields more than %d samples", step, maxDepth, maxSamples)
	}
	return int(q) + 1, nil
}

// ValidateRange checks a depth interval [0, maxDepth] sampled every step.
func ValidateRange(maxDepth, step float64) error {
	if math.IsNaN(step) || math.IsInf(step, 0) || step <= 0 {
		return errs.New(errs.ErrCodeInvalidRange, "step must be a positive number, got %g", step)
	}
	if math.IsNaN(maxDepth) || math.IsInf(maxDepth, 0) || maxDepth < 0 {
		return errs.New(errs.ErrCodeInvalidRange, "max depth must be a non-negative number, got %g", maxDepth)
	}
	return nil
}

// Len returns the number of samples.
func (c LogCurve) Len() int { return len(c.Samples) }

// MaxDepth returns the depth of the last sample, or 0 for an empty curve.
func (c LogCurve) MaxDepth() float64 {
	if len(c.Samples) == 0 {
		return 0
	}
	return c.Samples[len(c.Samples)-1].Depth
}

// MinMax returns the smallest and largest sample values.
// Both are 0 for an empty curve.
func (c LogCurve) MinMax() (lo, hi float64) {
	if len(c.Samples) == 0 {
		return 0, 0
	}
	lo, hi = c.Samples[0].Value, c.Samples[0].Value
	for _, s := range c.Samples[1:] {
		lo = math.Min(lo, s.Value)
		hi = math.Max(hi, s.Value)
	}
	return lo, hi
}

// Clone returns a deep copy of the curve.
func (c LogCurve) Clone() LogCurve {
	out := c
	out.Samples = append([]DepthSample(nil), c.Samples...)
	return out
}

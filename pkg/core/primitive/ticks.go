package primitive

import (
	"math"
	"strconv"

	errs "github.com/matzehuels/logtrack/pkg/errors"
)

const (
	tickEpsilon = 1e-9
	maxTicks    = 10_000
)

// DepthTicks returns the multiples of interval within [0, maxDepth],
// starting at 0. A trailing partial interval produces no tick. A maxDepth
// within 1e-9 intervals below a multiple gets that tick, clamped to maxDepth.
func DepthTicks(maxDepth, interval float64) ([]float64, error) {
	if math.IsNaN(interval) || math.IsInf(interval, 0) || interval <= 0 {
		return nil, errs.New(errs.ErrCodeInvalidRange, "tick interval must be a positive number, got %g", interval)
	}
	if math.IsNaN(maxDepth) || math.IsInf(maxDepth, 0) || maxDepth < 0 {
		return nil, errs.New(errs.ErrCodeInvalidRange, "max depth must be a non-negative number, got %g", maxDepth)
	}
	return multiples(maxDepth, interval)
}

func multiples(limit, interval float64) ([]float64, error) {
	q := math.Floor(limit/interval + tickEpsilon)
	if q+1 > maxTicks {
		return nil, errs.New(errs.ErrCodeInvalidRange,
			"tick interval %g over %g yields more than %d ticks", interval, limit, maxTicks)
	}
	n := int(q) + 1
	ticks := make([]float64, n)
	for i := range ticks {
		ticks[i] = math.Min(float64(i)*interval, limit)
	}
	return ticks, nil
}

// FormatTick renders a tick value without float noise, e.g. 0.30000000000000004 → "0.3".
func FormatTick(v float64) string {
	r := math.Round(v*1e6) / 1e6
	if r == 0 {
		r = 0 // normalise -0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

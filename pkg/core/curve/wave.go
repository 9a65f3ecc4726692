package curve

import "math"

// Sine returns base + amplitude*sin(depth/divisor + phase).
// A zero divisor is treated as 1.
func Sine(base, amplitude, divisor, phase float64) Func {
	if divisor == 0 {
		divisor = 1
	}
	return func(d float64) float64 {
		return base + amplitude*math.Sin(d/divisor+phase)
	}
}

// Cosine returns base + amplitude*cos(depth/divisor + phase).
// A zero divisor is treated as 1.
func Cosine(base, amplitude, divisor, phase float64) Func {
	if divisor == 0 {
		divisor = 1
	}
	return func(d float64) float64 {
		return base + amplitude*math.Cos(d/divisor+phase)
	}
}

// Constant returns a flat curve, handy for reference lines such as a shale baseline.
func Constant(v float64) Func {
	return func(float64) float64 { return v }
}

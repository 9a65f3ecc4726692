// Package curve samples closed-form log curves over a depth interval.
//
// # Overview
//
// A well log records a measurement (gamma ray, bulk density, neutron
// porosity, ...) against depth. logtrack draws synthetic logs, so a curve is
// produced by evaluating a [Func] at evenly spaced depths:
//
//	gr, err := curve.Generate("Gamma Ray (API)", color.GammaRay,
//	    curve.Sine(50, 30, 5, 0), 100, 0.5)
//
// The result holds floor(maxDepth/step)+1 samples at depths 0, step, 2*step,
// ... up to the last multiple of step not beyond maxDepth. Depths are computed
// as i*step rather than by repeated addition, so long curves do not drift.
//
// # Errors
//
// [Generate] fails with an INVALID_RANGE error (see pkg/errors) when step is
// not positive, maxDepth is negative, or either is not finite. Nothing is
// sampled in that case.
//
// # Ownership
//
// Every call returns a fresh [LogCurve]. Callers may keep or modify the
// samples without affecting other curves.
package curve

// Package biquad provides second-order-section (biquad) filter runtime
// primitives.
//
// A [Section] evaluates one biquad defined by [Coefficients]
// {B0, B1, B2, A0, A1, A2} as the direct-form recurrence
//
//	y[n] = (B0*x[n] + B1*x[n-1] + B2*x[n-2] - A1*y[n-1] - A2*y[n-2]) / A0
//
// with its own two-deep input and output history. A [Cascade] runs sections
// in series, each consuming the previous section's output, which keeps
// higher-order smoothing filters numerically well behaved.
//
// This package provides the processing runtime only. Coefficients are
// supplied by the caller, typically as rows [b0, b1, b2, a0, a1, a2] exported
// from a filter-design tool.
package biquad

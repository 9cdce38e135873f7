// Package iir provides a general causal IIR filter runtime in
// transfer-function form.
//
// A [Filter] is defined by numerator b and denominator a and evaluates the
// direct-form recurrence
//
//	y[n] = (b[0]x[n] + ... + b[M]x[n-M] - a[1]y[n-1] - ... - a[N]y[n-N]) / a[0]
//
// with zero-initialized input and output histories. Coefficient design is a
// separate concern; coefficients are supplied by the caller.
package iir

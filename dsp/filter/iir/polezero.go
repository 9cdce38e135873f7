package iir

import (
	"fmt"

	"github.com/cwbudde/algo-smooth/internal/polyroot"
)

// Poles returns the roots in z of the denominator polynomial.
func (f *Filter) Poles() ([]complex128, error) {
	p, err := polyroot.Roots(f.a)
	if err != nil {
		return nil, fmt.Errorf("poles: %w", err)
	}
	return p, nil
}

// Zeros returns the roots in z of the numerator polynomial. An all-zero
// numerator has no well-defined zeros and returns an error.
func (f *Filter) Zeros() ([]complex128, error) {
	z, err := polyroot.Roots(f.b)
	if err != nil {
		return nil, fmt.Errorf("zeros: %w", err)
	}
	return z, nil
}

// Stable reports whether all poles lie strictly inside the unit circle.
// FIR filters are always stable.
func (f *Filter) Stable() bool {
	if len(f.a) < 2 {
		return true
	}
	p, err := f.Poles()
	if err != nil {
		return false
	}
	return polyroot.MaxMagnitude(p) < 1
}

package filter

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptyCoefficients is returned when a coefficient sequence is empty.
	ErrEmptyCoefficients = errors.New("coefficients must not be empty")
	// ErrZeroLeadingDenominator is returned when a[0] == 0.
	ErrZeroLeadingDenominator = errors.New("leading denominator coefficient must be non-zero")
	// ErrNonFinite is returned for NaN or infinite coefficients.
	ErrNonFinite = errors.New("coefficients must be finite")
)

// ValidateTransferFunction checks numerator b and denominator a of a
// recurrence y = (Σ b·x − Σ a[1:]·y) / a[0].
func ValidateTransferFunction(b, a []float64) error {
	if len(b) == 0 {
		return fmt.Errorf("numerator: %w", ErrEmptyCoefficients)
	}
	if len(a) == 0 {
		return fmt.Errorf("denominator: %w", ErrEmptyCoefficients)
	}
	for i, c := range b {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("b[%d]=%v: %w", i, c, ErrNonFinite)
		}
	}
	for i, c := range a {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("a[%d]=%v: %w", i, c, ErrNonFinite)
		}
	}
	if a[0] == 0 {
		return ErrZeroLeadingDenominator
	}
	return nil
}

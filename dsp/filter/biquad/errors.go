package biquad

import "errors"

// ErrSectionLength is returned for a section row that does not hold exactly
// six coefficients.
var ErrSectionLength = errors.New("section row must have 6 coefficients [b0 b1 b2 a0 a1 a2]")

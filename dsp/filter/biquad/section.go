package biquad

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-smooth/dsp/filter"
)

// RowLen is the number of values in one section row [b0 b1 b2 a0 a1 a2].
const RowLen = 6

// Coefficients holds the transfer function coefficients for a single
// second-order section. A0 is kept unnormalized and divides every output.
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A0, A1, A2 float64 // feedback (denominator)
}

// Identity is the pass-through section.
var Identity = Coefficients{B0: 1, A0: 1}

// CoefficientsFromRow converts a row [b0 b1 b2 a0 a1 a2].
func CoefficientsFromRow(row []float64) (Coefficients, error) {
	if len(row) != RowLen {
		return Coefficients{}, fmt.Errorf("%w: got %d values", ErrSectionLength, len(row))
	}
	c := Coefficients{
		B0: row[0], B1: row[1], B2: row[2],
		A0: row[3], A1: row[4], A2: row[5],
	}
	if err := c.Validate(); err != nil {
		return Coefficients{}, err
	}
	return c, nil
}

// Row returns the coefficients as [b0 b1 b2 a0 a1 a2].
func (c Coefficients) Row() []float64 {
	return []float64{c.B0, c.B1, c.B2, c.A0, c.A1, c.A2}
}

// Validate checks that all coefficients are finite and A0 is non-zero.
func (c Coefficients) Validate() error {
	return filter.ValidateTransferFunction(
		[]float64{c.B0, c.B1, c.B2},
		[]float64{c.A0, c.A1, c.A2},
	)
}

// Section is a single biquad with coefficients and its own history.
type Section struct {
	Coefficients

	x1, x2 float64 // x[n-1], x[n-2]
	y1, y2 float64 // y[n-1], y[n-2]
}

// NewSection returns a Section initialized with the given coefficients and
// zero history.
func NewSection(c Coefficients) (*Section, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &Section{Coefficients: c}, nil
}

// ProcessSample filters one input sample and returns the output.
// A NaN input returns NaN and leaves the history untouched.
func (s *Section) ProcessSample(x float64) float64 {
	if math.IsNaN(x) {
		return x
	}
	return s.step(x)
}

func (s *Section) step(x float64) float64 {
	ff := s.B0*x + s.B1*s.x1 + s.B2*s.x2
	fb := s.A1*s.y1 + s.A2*s.y2
	y := (ff - fb) / s.A0

	s.x2, s.x1 = s.x1, x
	s.y2, s.y1 = s.y1, y
	return y
}

// ProcessBlock filters a block of samples in-place.
func (s *Section) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = s.ProcessSample(x)
	}
}

// Reset clears the history to zero.
func (s *Section) Reset() {
	s.x1, s.x2 = 0, 0
	s.y1, s.y2 = 0, 0
}

// State returns the current history [x1, x2, y1, y2].
func (s *Section) State() [4]float64 {
	return [4]float64{s.x1, s.x2, s.y1, s.y2}
}

// SetState restores a previously saved history.
func (s *Section) SetState(state [4]float64) {
	s.x1, s.x2 = state[0], state[1]
	s.y1, s.y2 = state[2], state[3]
}

package biquad

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-smooth/dsp/filter"
)

var (
	_ filter.Filter = (*Section)(nil)
	_ filter.Filter = (*Cascade)(nil)
)

// Cascade is an ordered series of biquad sections. Each section's output
// feeds the next; an empty cascade is the identity.
type Cascade struct {
	sections []Section
	gain     float64
}

// cascadeConfig holds options for NewCascade.
type cascadeConfig struct {
	gain float64
}

// CascadeOption configures a Cascade.
type CascadeOption func(*cascadeConfig)

// WithGain sets an overall gain applied to the input before the first
// section. Default is 1.0 (unity gain).
func WithGain(g float64) CascadeOption {
	return func(cfg *cascadeConfig) { cfg.gain = g }
}

// NewCascade creates a cascade from section rows [b0 b1 b2 a0 a1 a2], in
// evaluation order.
func NewCascade(rows [][]float64, opts ...CascadeOption) (*Cascade, error) {
	coeffs := make([]Coefficients, len(rows))
	for i, row := range rows {
		c, err := CoefficientsFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", i, err)
		}
		coeffs[i] = c
	}
	return NewCascadeFromCoefficients(coeffs, opts...)
}

// NewCascadeFromCoefficients creates a cascade with one Section per
// Coefficients value.
func NewCascadeFromCoefficients(coeffs []Coefficients, opts ...CascadeOption) (*Cascade, error) {
	cfg := cascadeConfig{gain: 1}
	for _, o := range opts {
		o(&cfg)
	}
	if math.IsNaN(cfg.gain) || math.IsInf(cfg.gain, 0) {
		return nil, fmt.Errorf("cascade gain %v: %w", cfg.gain, filter.ErrNonFinite)
	}

	c := &Cascade{
		sections: make([]Section, len(coeffs)),
		gain:     cfg.gain,
	}
	for i := range coeffs {
		if err := coeffs[i].Validate(); err != nil {
			return nil, fmt.Errorf("section %d: %w", i, err)
		}
		c.sections[i].Coefficients = coeffs[i]
	}
	return c, nil
}

// ProcessSample cascades input through all sections in order.
// A NaN input returns NaN and no section history changes.
func (c *Cascade) ProcessSample(x float64) float64 {
	if math.IsNaN(x) {
		return x
	}
	if c.gain != 1 {
		x *= c.gain
	}
	for i := range c.sections {
		x = c.sections[i].step(x)
	}
	return x
}

// ProcessBlock filters a block in-place through the full cascade.
func (c *Cascade) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = c.ProcessSample(x)
	}
}

// Reset clears all section histories.
func (c *Cascade) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// Order returns the total filter order (2 per section).
func (c *Cascade) Order() int {
	return 2 * len(c.sections)
}

// NumSections returns the number of sections.
func (c *Cascade) NumSections() int {
	return len(c.sections)
}

// Gain returns the input gain applied before the first section.
func (c *Cascade) Gain() float64 { return c.gain }

// Section returns a pointer to the i-th section for inspection.
func (c *Cascade) Section(i int) *Section {
	return &c.sections[i]
}

// Rows returns the section coefficients as rows [b0 b1 b2 a0 a1 a2].
func (c *Cascade) Rows() [][]float64 {
	rows := make([][]float64, len(c.sections))
	for i := range c.sections {
		rows[i] = c.sections[i].Row()
	}
	return rows
}

// State returns a snapshot of all section histories.
func (c *Cascade) State() [][4]float64 {
	states := make([][4]float64, len(c.sections))
	for i := range c.sections {
		states[i] = c.sections[i].State()
	}
	return states
}

// SetState restores previously saved section histories.
// The slice length must match NumSections.
func (c *Cascade) SetState(states [][4]float64) {
	for i := range c.sections {
		c.sections[i].SetState(states[i])
	}
}

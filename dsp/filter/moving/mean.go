package moving

import (
	"math"

	"github.com/cwbudde/algo-smooth/dsp/buffer"
	"github.com/cwbudde/algo-smooth/dsp/filter"
)

var _ filter.Filter = (*Mean)(nil)

// Mean is a sliding-window arithmetic mean.
//
// During warm-up the mean covers the samples seen so far, so a window of 1
// is the identity.
type Mean struct {
	window *buffer.Ring
}

// NewMean returns a mean filter over the last k accepted samples.
func NewMean(k int) (*Mean, error) {
	if err := validateWindow(k); err != nil {
		return nil, err
	}
	r, err := buffer.NewRing(k)
	if err != nil {
		return nil, err
	}
	return &Mean{window: r}, nil
}

// ProcessSample pushes x into the window and returns the window mean.
// The sum is recomputed oldest-first on every call.
func (m *Mean) ProcessSample(x float64) float64 {
	if math.IsNaN(x) {
		return x
	}
	m.window.Push(x)
	return m.window.Mean()
}

// ProcessBlock filters a block of samples in-place.
func (m *Mean) ProcessBlock(buf []float64) {
	filter.ProcessBlock(m, buf)
}

// Reset empties the window.
func (m *Mean) Reset() {
	m.window.Reset()
}

// Window returns the configured window size.
func (m *Mean) Window() int { return m.window.Cap() }

// Len returns the number of samples currently in the window.
func (m *Mean) Len() int { return m.window.Len() }

// Ready reports whether the window has filled.
func (m *Mean) Ready() bool { return m.window.Full() }

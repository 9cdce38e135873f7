package moving

import (
	"math"
	"slices"

	"github.com/cwbudde/algo-smooth/dsp/buffer"
	"github.com/cwbudde/algo-smooth/dsp/filter"
)

var _ filter.Filter = (*Median)(nil)

// Median is a sliding-window median filter with an odd window size.
//
// Until the window holds k samples the filter returns the mean of the
// partial window; from then on it returns the middle element of the sorted
// window. Median removes isolated thermocouple spikes that a mean would
// smear across k outputs.
type Median struct {
	window *buffer.Ring
	sorted []float64
}

// NewMedian returns a median filter over the last k accepted samples.
// k must be positive and odd.
func NewMedian(k int) (*Median, error) {
	if err := validateMedianWindow(k); err != nil {
		return nil, err
	}
	r, err := buffer.NewRing(k)
	if err != nil {
		return nil, err
	}
	return &Median{
		window: r,
		sorted: make([]float64, k),
	}, nil
}

// ProcessSample pushes x into the window and returns the warm-up mean or the
// window median.
func (m *Median) ProcessSample(x float64) float64 {
	if math.IsNaN(x) {
		return x
	}
	m.window.Push(x)
	if !m.window.Full() {
		return m.window.Mean()
	}

	m.window.CopyTo(m.sorted)
	slices.Sort(m.sorted)
	return m.sorted[len(m.sorted)/2]
}

// ProcessBlock filters a block of samples in-place.
func (m *Median) ProcessBlock(buf []float64) {
	filter.ProcessBlock(m, buf)
}

// Reset empties the window.
func (m *Median) Reset() {
	m.window.Reset()
	for i := range m.sorted {
		m.sorted[i] = 0
	}
}

// Window returns the configured window size.
func (m *Median) Window() int { return m.window.Cap() }

// Len returns the number of samples currently in the window.
func (m *Median) Len() int { return m.window.Len() }

// Ready reports whether the window has filled and the output is a true median.
func (m *Median) Ready() bool { return m.window.Full() }

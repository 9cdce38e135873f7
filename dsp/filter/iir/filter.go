package iir

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-smooth/dsp/filter"
)

var _ filter.Filter = (*Filter)(nil)

// Filter is a direct-form IIR filter with circular input and output
// histories.
type Filter struct {
	b, a []float64

	xHist []float64 // last len(b)-1 inputs
	yHist []float64 // last len(a)-1 outputs
	xPos  int       // index of x[n-1]
	yPos  int       // index of y[n-1]
}

// New creates a filter from numerator b and denominator a.
// Both slices are copied. b and a must be non-empty, finite, and a[0] != 0.
func New(b, a []float64) (*Filter, error) {
	if err := filter.ValidateTransferFunction(b, a); err != nil {
		return nil, err
	}
	f := &Filter{
		b:     append([]float64(nil), b...),
		a:     append([]float64(nil), a...),
		xHist: make([]float64, len(b)-1),
		yHist: make([]float64, len(a)-1),
	}
	return f, nil
}

// ProcessSample filters one input sample.
//
//	y[n] = (sum_{i=0}^{M} b[i]*x[n-i] - sum_{j=1}^{N} a[j]*y[n-j]) / a[0]
//
// A NaN input returns NaN and leaves both histories untouched.
func (f *Filter) ProcessSample(x float64) float64 {
	if math.IsNaN(x) {
		return x
	}

	ff := f.b[0] * x
	p := f.xPos
	for i := 1; i < len(f.b); i++ {
		ff += f.b[i] * f.xHist[p]
		p--
		if p < 0 {
			p = len(f.xHist) - 1
		}
	}

	var fb float64
	q := f.yPos
	for j := 1; j < len(f.a); j++ {
		fb += f.a[j] * f.yHist[q]
		q--
		if q < 0 {
			q = len(f.yHist) - 1
		}
	}

	y := (ff - fb) / f.a[0]

	if n := len(f.xHist); n > 0 {
		f.xPos++
		if f.xPos >= n {
			f.xPos = 0
		}
		f.xHist[f.xPos] = x
	}
	if n := len(f.yHist); n > 0 {
		f.yPos++
		if f.yPos >= n {
			f.yPos = 0
		}
		f.yHist[f.yPos] = y
	}

	return y
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. dst must be at least as long as src.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	filter.ProcessBlockTo(f, dst, src)
}

// Reset clears both histories to zero.
func (f *Filter) Reset() {
	for i := range f.xHist {
		f.xHist[i] = 0
	}
	for i := range f.yHist {
		f.yHist[i] = 0
	}
	f.xPos = 0
	f.yPos = 0
}

// Order returns the filter order max(len(b), len(a)) - 1.
func (f *Filter) Order() int {
	return max(len(f.b), len(f.a)) - 1
}

// Numerator returns a copy of b.
func (f *Filter) Numerator() []float64 {
	return append([]float64(nil), f.b...)
}

// Denominator returns a copy of a.
func (f *Filter) Denominator() []float64 {
	return append([]float64(nil), f.a...)
}

// State returns copies of the input and output histories, newest first:
// x[n-1], x[n-2], ... and y[n-1], y[n-2], ...
func (f *Filter) State() (inputs, outputs []float64) {
	return unwind(f.xHist, f.xPos), unwind(f.yHist, f.yPos)
}

// SetState restores histories previously returned by State. Extra values are
// ignored and missing values are treated as zero.
func (f *Filter) SetState(inputs, outputs []float64) {
	rewind(f.xHist, inputs)
	rewind(f.yHist, outputs)
	f.xPos = 0
	f.yPos = 0
}

// ImpulseResponse computes n samples of the impulse response. The filter
// state is saved and restored, so this method does not modify the filter.
func (f *Filter) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}
	xs, ys := f.State()
	f.Reset()
	ir := make([]float64, n)
	ir[0] = f.ProcessSample(1)
	for i := 1; i < n; i++ {
		ir[i] = f.ProcessSample(0)
	}
	f.SetState(xs, ys)
	return ir
}

// Response computes the complex frequency response H(e^jw) at the given
// frequency (Hz) and sample rate (Hz).
func (f *Filter) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	return polyval(f.b, w) / polyval(f.a, w)
}

// MagnitudeDB returns the magnitude response in dB at the given frequency.
func (f *Filter) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(f.Response(freqHz, sampleRate)))
}

// DCGain returns H(1) = sum(b) / sum(a).
func (f *Filter) DCGain() float64 {
	var sb, sa float64
	for _, c := range f.b {
		sb += c
	}
	for _, c := range f.a {
		sa += c
	}
	return sb / sa
}

func polyval(c []float64, w float64) complex128 {
	var h complex128
	for k, v := range c {
		h += complex(v, 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}
	return h
}

// unwind returns hist newest-first starting at pos.
func unwind(hist []float64, pos int) []float64 {
	out := make([]float64, len(hist))
	p := pos
	for i := range out {
		out[i] = hist[p]
		p--
		if p < 0 {
			p = len(hist) - 1
		}
	}
	return out
}

// rewind stores newest-first values so that hist[0] is the newest and the
// older values wrap backwards from the end, matching pos = 0.
func rewind(hist, values []float64) {
	n := len(hist)
	for i := range hist {
		hist[i] = 0
	}
	for i := 0; i < n && i < len(values); i++ {
		hist[(n-i)%n] = values[i]
	}
}

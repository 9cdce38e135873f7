package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-smooth/dsp/core"
	"github.com/cwbudde/algo-smooth/dsp/filter"
)

var (
	errLength    = errors.New("response length must be > 0")
	errTolerance = errors.New("settling tolerance must be > 0")
)

// ImpulseResponse feeds a unit impulse followed by n-1 zeros through f.
// f is reset before and after.
func ImpulseResponse(f filter.Filter, n int) []float64 {
	if n <= 0 {
		return nil
	}
	f.Reset()
	ir := make([]float64, n)
	ir[0] = f.ProcessSample(1)
	for i := 1; i < n; i++ {
		ir[i] = f.ProcessSample(0)
	}
	f.Reset()
	return ir
}

// StepResponse feeds n unit samples through f. f is reset before and after.
func StepResponse(f filter.Filter, n int) []float64 {
	if n <= 0 {
		return nil
	}
	f.Reset()
	out := make([]float64, n)
	for i := range out {
		out[i] = f.ProcessSample(1)
	}
	f.Reset()
	return out
}

// DCGain returns the sum of the first n impulse-response samples.
func DCGain(f filter.Filter, n int) float64 {
	var g float64
	for _, h := range ImpulseResponse(f, n) {
		g += h
	}
	return g
}

// SettlingSamples returns the number of samples after which the unit step
// response stays within tolerance (absolute) of its value at maxSamples-1.
// ok is false if the response is not finite.
func SettlingSamples(f filter.Filter, tolerance float64, maxSamples int) (n int, ok bool, err error) {
	if maxSamples <= 0 {
		return 0, false, fmt.Errorf("%w: %d", errLength, maxSamples)
	}
	if !(tolerance > 0) {
		return 0, false, fmt.Errorf("%w: %v", errTolerance, tolerance)
	}

	step := StepResponse(f, maxSamples)
	final := step[len(step)-1]
	if !core.IsFinite(final) {
		return 0, false, nil
	}
	for i := len(step) - 1; i >= 0; i-- {
		if !core.IsFinite(step[i]) {
			return 0, false, nil
		}
		if math.Abs(step[i]-final) > tolerance {
			return i + 1, true, nil
		}
	}
	return 0, true, nil
}

// Spectrum is a one-sided magnitude response.
type Spectrum struct {
	Frequencies []float64 // bin centre frequencies in Hz
	Magnitude   []float64 // |H(f)|
}

// MagnitudeDB returns 20*log10 of every magnitude bin.
func (s Spectrum) MagnitudeDB() []float64 {
	out := make([]float64, len(s.Magnitude))
	for i, m := range s.Magnitude {
		out[i] = core.LinearToDB(m)
	}
	return out
}

// Normalized returns the magnitudes scaled so that the DC bin is 1.
// A zero DC bin returns a copy of the magnitudes.
func (s Spectrum) Normalized() []float64 {
	out := make([]float64, len(s.Magnitude))
	if len(out) == 0 {
		return out
	}
	if s.Magnitude[0] == 0 {
		copy(out, s.Magnitude)
		return out
	}
	vecmath.ScaleBlock(out, s.Magnitude, 1/s.Magnitude[0])
	return out
}

// CutoffFrequency returns the first frequency at which the normalized
// magnitude falls below level (linear, e.g. 0.7071 for -3 dB), or NaN if
// it never does.
func (s Spectrum) CutoffFrequency(level float64) float64 {
	norm := s.Normalized()
	for i, m := range norm {
		if m < level {
			return s.Frequencies[i]
		}
	}
	return math.NaN()
}

// MagnitudeSpectrum computes the magnitude response of f from an FFT of its
// impulse response. The impulse-response length is the configured block size
// rounded up to a power of two; frequencies use the configured sample rate.
// f is reset before and after.
func MagnitudeSpectrum(f filter.Filter, opts ...core.ProcessorOption) (Spectrum, error) {
	cfg := core.ApplyProcessorOptions(opts...)
	n := nextPowerOf2(cfg.BlockSize)
	if n < 2 {
		n = 2
	}

	ir := ImpulseResponse(f, n)
	in := make([]complex128, n)
	for i, h := range ir {
		if math.IsNaN(h) {
			h = 0
		}
		in[i] = complex(h, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Spectrum{}, fmt.Errorf("fft plan %d: %w", n, err)
	}
	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return Spectrum{}, fmt.Errorf("fft forward: %w", err)
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	s := Spectrum{
		Frequencies: make([]float64, bins),
		Magnitude:   make([]float64, bins),
	}
	vecmath.Magnitude(s.Magnitude, re, im)
	for k := range s.Frequencies {
		s.Frequencies[k] = float64(k) * cfg.SampleRate / float64(n)
	}
	return s, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

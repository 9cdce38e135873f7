package testutil

import (
	"math"
	"math/rand"
)

// RoastCurve generates a deterministic bean-temperature-like curve: an
// exponential approach from charge towards final with time constant tau
// (in samples).
func RoastCurve(charge, final, tau float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = final - (final-charge)*math.Exp(-float64(i)/tau)
	}
	return out
}

// Ramp generates start, start+step, start+2*step, ...
func Ramp(start, step float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// AddNoise returns signal plus deterministic noise of the given amplitude.
func AddNoise(signal []float64, seed int64, amplitude float64) []float64 {
	noise := DeterministicNoise(seed, amplitude, len(signal))
	out := make([]float64, len(signal))
	for i := range signal {
		out[i] = signal[i] + noise[i]
	}
	return out
}

// WithGaps returns a copy of signal with NaN at every listed position.
// Out-of-range positions are ignored.
func WithGaps(signal []float64, positions ...int) []float64 {
	out := make([]float64, len(signal))
	copy(out, signal)
	for _, p := range positions {
		if p >= 0 && p < len(out) {
			out[p] = math.NaN()
		}
	}
	return out
}

// WithoutGaps returns signal with all NaN samples removed.
func WithoutGaps(signal []float64) []float64 {
	out := make([]float64, 0, len(signal))
	for _, x := range signal {
		if !math.IsNaN(x) {
			out = append(out, x)
		}
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

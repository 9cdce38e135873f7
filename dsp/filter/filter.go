package filter

import "math"

// Filter is a causal, sample-at-a-time transform with internal state.
//
// Implementations are not safe for concurrent use; each stream owns its own
// instance.
type Filter interface {
	// ProcessSample filters one sample. NaN input returns NaN without
	// updating state.
	ProcessSample(x float64) float64
	// Reset restores the just-constructed state.
	Reset()
}

// ProcessBlock filters buf in place through f. The result is identical to
// calling f.ProcessSample for every element in order.
func ProcessBlock(f Filter, buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. dst must be at least as long as src.
func ProcessBlockTo(f Filter, dst, src []float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Apply returns a new slice holding f applied to every sample of src.
func Apply(f Filter, src []float64) []float64 {
	out := make([]float64, len(src))
	ProcessBlockTo(f, out, src)
	return out
}

// IsMissing reports whether x is the missing-reading marker.
func IsMissing(x float64) bool {
	return math.IsNaN(x)
}

package biquad

import (
	"fmt"
	"testing"
)

func BenchmarkSectionProcessSample(b *testing.B) {
	s, _ := NewSection(lowpassCoeffs)
	x := 1.0
	for b.Loop() {
		x = s.ProcessSample(x)
	}
	_ = x
}

func BenchmarkCascadeProcessSample(b *testing.B) {
	for _, n := range []int{1, 2, 4} {
		b.Run(fmt.Sprintf("sections=%d", n), func(b *testing.B) {
			coeffs := make([]Coefficients, n)
			for i := range coeffs {
				coeffs[i] = lowpassCoeffs
			}
			c, _ := NewCascadeFromCoefficients(coeffs)
			x := 1.0
			for b.Loop() {
				x = c.ProcessSample(x)
			}
			_ = x
		})
	}
}

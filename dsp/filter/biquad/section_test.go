package biquad

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-smooth/dsp/filter"
	"github.com/cwbudde/algo-smooth/internal/testutil"
)

const eps = 1e-12

// lowpassCoeffs is a lowpass-like section with unity DC gain scaled by A0=2.
var lowpassCoeffs = Coefficients{B0: 0.42, B1: 0.84, B2: 0.42, A0: 2, A1: -0.4, A2: 0.08}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestCoefficientsFromRow(t *testing.T) {
	c, err := CoefficientsFromRow([]float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatal(err)
	}
	want := Coefficients{B0: 1, B1: 2, B2: 3, A0: 4, A1: 5, A2: 6}
	if c != want {
		t.Fatalf("got %+v, want %+v", c, want)
	}
	row := c.Row()
	for i, v := range []float64{1, 2, 3, 4, 5, 6} {
		if row[i] != v {
			t.Fatalf("Row()[%d] = %v, want %v", i, row[i], v)
		}
	}
}

func TestCoefficientsFromRowValidation(t *testing.T) {
	tests := []struct {
		name string
		row  []float64
		want error
	}{
		{name: "short", row: []float64{1, 0, 0, 1, 0}, want: ErrSectionLength},
		{name: "long", row: []float64{1, 0, 0, 1, 0, 0, 0}, want: ErrSectionLength},
		{name: "zero a0", row: []float64{1, 0, 0, 0, 0.1, 0}, want: filter.ErrZeroLeadingDenominator},
		{name: "nan", row: []float64{1, math.NaN(), 0, 1, 0, 0}, want: filter.ErrNonFinite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CoefficientsFromRow(tt.row); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewSectionValidation(t *testing.T) {
	if _, err := NewSection(Coefficients{B0: 1}); !errors.Is(err, filter.ErrZeroLeadingDenominator) {
		t.Fatalf("err = %v, want ErrZeroLeadingDenominator", err)
	}
}

func TestSection_Identity(t *testing.T) {
	s, err := NewSection(Identity)
	if err != nil {
		t.Fatal(err)
	}
	for _, x := range []float64{7, -2, 3, 1e-9, 212.75} {
		if y := s.ProcessSample(x); y != x {
			t.Fatalf("identity: got %v, want %v", y, x)
		}
	}
}

func TestSection_ProcessSample_Impulse(t *testing.T) {
	s, _ := NewSection(Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A0: 1, A1: -0.2, A2: 0.04})
	want := []float64{0.25, 0.55, 0.35, 0.048, -0.0044, -0.0028}
	got := filter.Apply(s, testutil.Impulse(len(want), 0))
	testutil.RequireSliceNearlyEqual(t, got, want, eps)
}

func TestSection_MatchesDirectRecurrence(t *testing.T) {
	c := lowpassCoeffs
	s, _ := NewSection(c)
	input := testutil.DeterministicNoise(12, 5, 80)
	var x1, x2, y1, y2 float64
	for i, x := range input {
		want := (c.B0*x + c.B1*x1 + c.B2*x2 - (c.A1*y1 + c.A2*y2)) / c.A0
		x2, x1 = x1, x
		y2, y1 = y1, want
		if got := s.ProcessSample(x); !almostEqual(got, want, eps) {
			t.Fatalf("sample %d: got %v, want %v", i, got, want)
		}
	}
}

func TestSection_MissingSamplesAreTransparent(t *testing.T) {
	s, _ := NewSection(lowpassCoeffs)
	s.ProcessSample(3)
	before := s.State()
	for range 5 {
		if y := s.ProcessSample(math.NaN()); !math.IsNaN(y) {
			t.Fatalf("got %v, want NaN", y)
		}
	}
	if s.State() != before {
		t.Fatalf("state changed: %v -> %v", before, s.State())
	}
}

func TestSection_ResetAndState(t *testing.T) {
	s, _ := NewSection(lowpassCoeffs)
	for _, x := range []float64{1, 2, 3} {
		s.ProcessSample(x)
	}
	st := s.State()
	if st[0] != 3 || st[1] != 2 {
		t.Fatalf("input history = %v, want [3 2 ...]", st)
	}

	s2, _ := NewSection(lowpassCoeffs)
	s2.SetState(st)
	for _, x := range []float64{4, 5, 6} {
		if a, b := s.ProcessSample(x), s2.ProcessSample(x); a != b {
			t.Fatalf("restored state diverged: %v vs %v", a, b)
		}
	}

	s.Reset()
	if s.State() != [4]float64{} {
		t.Fatalf("Reset left state %v", s.State())
	}
}

func TestSection_ProcessBlockMatchesSample(t *testing.T) {
	input := testutil.WithGaps(testutil.DeterministicNoise(1, 1, 32), 4, 5)
	s1, _ := NewSection(lowpassCoeffs)
	want := make([]float64, len(input))
	for i, x := range input {
		want[i] = s1.ProcessSample(x)
	}

	s2, _ := NewSection(lowpassCoeffs)
	block := append([]float64(nil), input...)
	s2.ProcessBlock(block)
	testutil.RequireSliceIdentical(t, block, want)
}

package filter_test

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-smooth/dsp/filter"
	"github.com/cwbudde/algo-smooth/dsp/filter/biquad"
	"github.com/cwbudde/algo-smooth/dsp/filter/iir"
	"github.com/cwbudde/algo-smooth/dsp/filter/moving"
	"github.com/cwbudde/algo-smooth/internal/testutil"
)

type factory struct {
	name string
	make func() (filter.Filter, error)
}

func factories() []factory {
	return []factory{
		{"mean-1", func() (filter.Filter, error) { return moving.NewMean(1) }},
		{"mean-5", func() (filter.Filter, error) { return moving.NewMean(5) }},
		{"median-1", func() (filter.Filter, error) { return moving.NewMedian(1) }},
		{"median-7", func() (filter.Filter, error) { return moving.NewMedian(7) }},
		{"iir-identity", func() (filter.Filter, error) { return iir.New([]float64{1}, []float64{1}) }},
		{"iir-lowpass", func() (filter.Filter, error) {
			return iir.New([]float64{0.1, 0.2, 0.1}, []float64{1, -0.9, 0.3})
		}},
		{"sos-empty", func() (filter.Filter, error) { return biquad.NewCascade(nil) }},
		{"sos-two", func() (filter.Filter, error) {
			return biquad.NewCascade([][]float64{
				{0.25, 0.5, 0.25, 1, -0.2, 0.04},
				{0.2, 0.4, 0.2, 2, -1, 0.2},
			})
		}},
		{"chain", func() (filter.Filter, error) {
			med, err := moving.NewMedian(3)
			if err != nil {
				return nil, err
			}
			mean, err := moving.NewMean(4)
			if err != nil {
				return nil, err
			}
			lp, err := iir.New([]float64{0.3}, []float64{1, -0.7})
			if err != nil {
				return nil, err
			}
			return filter.NewChain(med, mean, lp), nil
		}},
	}
}

func roastInput() []float64 {
	return testutil.AddNoise(testutil.RoastCurve(40, 218, 120, 300), 2024, 1.2)
}

func TestContract_NaNReturnsNaN(t *testing.T) {
	for _, fc := range factories() {
		t.Run(fc.name, func(t *testing.T) {
			f, err := fc.make()
			if err != nil {
				t.Fatal(err)
			}
			if y := f.ProcessSample(math.NaN()); !math.IsNaN(y) {
				t.Fatalf("fresh filter: got %v, want NaN", y)
			}
			for _, x := range roastInput()[:20] {
				f.ProcessSample(x)
			}
			if y := f.ProcessSample(math.NaN()); !math.IsNaN(y) {
				t.Fatalf("warm filter: got %v, want NaN", y)
			}
		})
	}
}

func TestContract_GapsDoNotChangeLaterOutputs(t *testing.T) {
	clean := roastInput()
	gapped := make([]float64, 0, len(clean)*2)
	for i, x := range clean {
		for range i % 4 {
			gapped = append(gapped, math.NaN())
		}
		gapped = append(gapped, x)
	}

	for _, fc := range factories() {
		t.Run(fc.name, func(t *testing.T) {
			ref, _ := fc.make()
			want := filter.Apply(ref, clean)

			f, _ := fc.make()
			got := testutil.WithoutGaps(filter.Apply(f, gapped))
			testutil.RequireSliceIdentical(t, got, want)
		})
	}
}

func TestContract_ReplayIsBitIdentical(t *testing.T) {
	input := testutil.WithGaps(roastInput(), 3, 50, 51, 200)
	for _, fc := range factories() {
		t.Run(fc.name, func(t *testing.T) {
			a, _ := fc.make()
			b, _ := fc.make()
			first := filter.Apply(a, input)
			testutil.RequireSliceIdentical(t, filter.Apply(b, input), first)

			a.Reset()
			testutil.RequireSliceIdentical(t, filter.Apply(a, input), first)
		})
	}
}

func TestContract_BlockMatchesSample(t *testing.T) {
	input := testutil.WithGaps(roastInput(), 0, 9, 10)
	for _, fc := range factories() {
		t.Run(fc.name, func(t *testing.T) {
			a, _ := fc.make()
			want := make([]float64, len(input))
			for i, x := range input {
				want[i] = a.ProcessSample(x)
			}
			b, _ := fc.make()
			buf := append([]float64(nil), input...)
			filter.ProcessBlock(b, buf)
			testutil.RequireSliceIdentical(t, buf, want)
		})
	}
}

func TestContract_OutputsFiniteForFiniteInput(t *testing.T) {
	for _, fc := range factories() {
		t.Run(fc.name, func(t *testing.T) {
			f, _ := fc.make()
			testutil.RequireFinite(t, filter.Apply(f, roastInput()))
		})
	}
}

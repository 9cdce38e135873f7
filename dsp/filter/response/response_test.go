package response

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-smooth/dsp/core"
	"github.com/cwbudde/algo-smooth/dsp/filter/biquad"
	"github.com/cwbudde/algo-smooth/dsp/filter/iir"
	"github.com/cwbudde/algo-smooth/dsp/filter/moving"
	"github.com/cwbudde/algo-smooth/internal/testutil"
)

func TestImpulseResponse(t *testing.T) {
	f, _ := iir.New([]float64{0.5, 0.5}, []float64{1})
	f.ProcessSample(100)

	got := ImpulseResponse(f, 4)
	testutil.RequireSliceIdentical(t, got, []float64{0.5, 0.5, 0, 0})

	// f was reset afterwards.
	if y := f.ProcessSample(2); y != 1 {
		t.Fatalf("after probe: got %v, want 1", y)
	}
	if ImpulseResponse(f, 0) != nil {
		t.Fatal("ImpulseResponse(0) should be nil")
	}
}

func TestStepResponseMeanWarmUp(t *testing.T) {
	m, _ := moving.NewMean(4)
	got := StepResponse(m, 6)
	testutil.RequireSliceIdentical(t, got, testutil.DC(1, 6))
	if StepResponse(m, -1) != nil {
		t.Fatal("StepResponse(-1) should be nil")
	}
}

func TestDCGain(t *testing.T) {
	f, _ := iir.New([]float64{0.2}, []float64{1, -0.8})
	if g := DCGain(f, 400); math.Abs(g-1) > 1e-9 {
		t.Fatalf("DCGain = %v, want 1", g)
	}
}

func TestSettlingSamples(t *testing.T) {
	identity, _ := biquad.NewCascade(nil)
	n, ok, err := SettlingSamples(identity, 1e-6, 50)
	if err != nil || !ok || n != 0 {
		t.Fatalf("identity: n=%d ok=%v err=%v", n, ok, err)
	}

	// Two-tap average settles after its first output (0.5, then 1).
	avg, _ := iir.New([]float64{0.5, 0.5}, []float64{1})
	n, ok, err = SettlingSamples(avg, 1e-6, 50)
	if err != nil || !ok || n != 1 {
		t.Fatalf("two-tap: n=%d ok=%v err=%v", n, ok, err)
	}

	// y = 0.5x + 0.5y[n-1]: step error 0.5^(n+1) drops below 1e-3 at n=9.
	lp, _ := iir.New([]float64{0.5}, []float64{1, -0.5})
	n, ok, err = SettlingSamples(lp, 1e-3, 200)
	if err != nil || !ok || n != 9 {
		t.Fatalf("lowpass: n=%d ok=%v err=%v", n, ok, err)
	}
}

func TestSettlingSamplesUnstable(t *testing.T) {
	f, _ := iir.New([]float64{1}, []float64{1, -2})
	_, ok, err := SettlingSamples(f, 1e-3, 2000)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("diverging filter should not report settling")
	}
}

func TestSettlingSamplesValidation(t *testing.T) {
	f, _ := moving.NewMean(3)
	if _, _, err := SettlingSamples(f, 0, 10); err == nil {
		t.Fatal("expected error for zero tolerance")
	}
	if _, _, err := SettlingSamples(f, math.NaN(), 10); err == nil {
		t.Fatal("expected error for NaN tolerance")
	}
	if _, _, err := SettlingSamples(f, 1e-3, 0); err == nil {
		t.Fatal("expected error for zero length")
	}
}

func TestMagnitudeSpectrumIdentity(t *testing.T) {
	f, _ := iir.New([]float64{1}, []float64{1})
	s, err := MagnitudeSpectrum(f, core.WithBlockSize(64), core.WithSampleRate(2))
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Magnitude) != 33 || len(s.Frequencies) != 33 {
		t.Fatalf("bins = %d/%d, want 33", len(s.Magnitude), len(s.Frequencies))
	}
	testutil.RequireSliceNearlyEqual(t, s.Magnitude, testutil.DC(1, 33), 1e-12)
	if s.Frequencies[32] != 1 {
		t.Fatalf("Nyquist bin = %v Hz, want 1", s.Frequencies[32])
	}
	for _, db := range s.MagnitudeDB() {
		if math.Abs(db) > 1e-9 {
			t.Fatalf("identity magnitude %v dB, want 0", db)
		}
	}
	if !math.IsNaN(s.CutoffFrequency(0.5)) {
		t.Fatal("identity has no cutoff")
	}
}

func TestMagnitudeSpectrumMatchesAnalyticResponse(t *testing.T) {
	cascade, _ := biquad.NewCascade([][]float64{
		{0.25, 0.5, 0.25, 1, -0.2, 0.04},
		{0.2, 0.4, 0.2, 2, -1, 0.2},
	})
	s, err := MagnitudeSpectrum(cascade, core.WithBlockSize(256))
	if err != nil {
		t.Fatal(err)
	}
	for k := 0; k < len(s.Frequencies); k += 16 {
		want := math.Pow(10, cascade.MagnitudeDB(s.Frequencies[k], 1)/20)
		if math.Abs(s.Magnitude[k]-want) > 1e-9 {
			t.Fatalf("bin %d (%.4f Hz): fft %v, analytic %v", k, s.Frequencies[k], s.Magnitude[k], want)
		}
	}
}

func TestMagnitudeSpectrumAverageCutoff(t *testing.T) {
	// A longer boxcar average lowers the -3 dB point.
	short, _ := iir.New(testutil.DC(1.0/3, 3), []float64{1})
	long, _ := iir.New(testutil.DC(1.0/9, 9), []float64{1})

	fs, err := MagnitudeSpectrum(short)
	if err != nil {
		t.Fatal(err)
	}
	fl, err := MagnitudeSpectrum(long)
	if err != nil {
		t.Fatal(err)
	}
	cs := fs.CutoffFrequency(math.Sqrt2 / 2)
	cl := fl.CutoffFrequency(math.Sqrt2 / 2)
	if math.IsNaN(cs) || math.IsNaN(cl) {
		t.Fatalf("cutoff not found: short=%v long=%v", cs, cl)
	}
	if !(cl < cs) {
		t.Fatalf("cutoff long=%v short=%v, want long < short", cl, cs)
	}
}

func TestNormalized(t *testing.T) {
	s := Spectrum{Magnitude: []float64{2, 1, 0.5}}
	testutil.RequireSliceNearlyEqual(t, s.Normalized(), []float64{1, 0.5, 0.25}, 1e-15)

	z := Spectrum{Magnitude: []float64{0, 1}}
	testutil.RequireSliceIdentical(t, z.Normalized(), []float64{0, 1})

	if len((Spectrum{}).Normalized()) != 0 {
		t.Fatal("empty spectrum should normalize to empty")
	}
}

package filter_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-smooth/dsp/filter"
	"github.com/cwbudde/algo-smooth/dsp/filter/iir"
	"github.com/cwbudde/algo-smooth/dsp/filter/moving"
)

func ExampleChain() {
	// Despike with a median, then smooth with a two-tap average.
	med, err := moving.NewMedian(3)
	if err != nil {
		panic(err)
	}
	avg, err := iir.New([]float64{0.5, 0.5}, []float64{1})
	if err != nil {
		panic(err)
	}
	c := filter.NewChain(med, avg)

	for _, x := range []float64{100, 102, math.NaN(), 104, 500, 106} {
		fmt.Println(c.ProcessSample(x))
	}

	// Output:
	// 50
	// 100.5
	// NaN
	// 101.5
	// 103
	// 105
}

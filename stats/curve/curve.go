package curve

import (
	"math"

	"github.com/montanaflynn/stats"
)

// Summary holds statistics of one curve.
type Summary struct {
	Length  int // total samples including missing
	Missing int // NaN samples
	Mean    float64
	Median  float64
	StdDev  float64 // population standard deviation
	Min     float64
	MinPos  int
	Max     float64
	MaxPos  int
	P10     float64 // 10th percentile
	P90     float64 // 90th percentile
	First   float64 // first present sample
	Last    float64 // last present sample
}

// Valid returns the number of present samples.
func (s Summary) Valid() int { return s.Length - s.Missing }

// Span returns Max - Min.
func (s Summary) Span() float64 { return s.Max - s.Min }

func emptySummary(length, missing int) Summary {
	nan := math.NaN()
	return Summary{
		Length:  length,
		Missing: missing,
		Mean:    nan,
		Median:  nan,
		StdDev:  nan,
		Min:     nan,
		MinPos:  -1,
		Max:     nan,
		MaxPos:  -1,
		P10:     nan,
		P90:     nan,
		First:   nan,
		Last:    nan,
	}
}

// Summarize computes a Summary of samples. Positions refer to indices in
// samples, missing readings included. A curve without present samples yields
// NaN statistics and positions of -1.
func Summarize(samples []float64) Summary {
	present := make(stats.Float64Data, 0, len(samples))
	s := emptySummary(len(samples), 0)

	for i, x := range samples {
		if math.IsNaN(x) {
			s.Missing++
			continue
		}
		if len(present) == 0 {
			s.First = x
			s.Min, s.MinPos = x, i
			s.Max, s.MaxPos = x, i
		}
		if x < s.Min {
			s.Min, s.MinPos = x, i
		}
		if x > s.Max {
			s.Max, s.MaxPos = x, i
		}
		s.Last = x
		present = append(present, x)
	}

	if len(present) == 0 {
		return emptySummary(len(samples), s.Missing)
	}

	s.Mean, _ = stats.Mean(present)
	s.Median, _ = stats.Median(present)
	s.StdDev, _ = stats.StandardDeviationPopulation(present)
	s.P10 = percentile(present, 10)
	s.P90 = percentile(present, 90)
	return s
}

func percentile(data stats.Float64Data, p float64) float64 {
	v, err := stats.Percentile(data, p)
	if err != nil {
		return math.NaN()
	}
	return v
}

package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-smooth/dsp/filter"
	"github.com/cwbudde/algo-smooth/dsp/filter/biquad"
	"github.com/cwbudde/algo-smooth/dsp/filter/iir"
	"github.com/cwbudde/algo-smooth/dsp/filter/moving"
)

// Stage kinds accepted in StageConfig.Kind.
const (
	KindMean   = "mean"
	KindMedian = "median"
	KindIIR    = "iir"
	KindSOS    = "sos"
)

// ErrUnknownKind is returned for an unsupported stage kind.
var ErrUnknownKind = errors.New("unknown stage kind")

// StageConfig describes one filter stage.
type StageConfig struct {
	Kind     string      `mapstructure:"kind"`
	Window   int         `mapstructure:"window"`   // mean, median
	B        []float64   `mapstructure:"b"`        // iir numerator
	A        []float64   `mapstructure:"a"`        // iir denominator
	Sections [][]float64 `mapstructure:"sections"` // sos rows [b0 b1 b2 a0 a1 a2]
	Gain     float64     `mapstructure:"gain"`     // sos input gain, 0 means unity
}

// String returns a short human-readable description.
func (c StageConfig) String() string {
	switch strings.ToLower(c.Kind) {
	case KindMean, KindMedian:
		return fmt.Sprintf("%s(%d)", strings.ToLower(c.Kind), c.Window)
	case KindIIR:
		return fmt.Sprintf("iir(nb=%d,na=%d)", len(c.B), len(c.A))
	case KindSOS:
		return fmt.Sprintf("sos(%d)", len(c.Sections))
	default:
		return c.Kind
	}
}

// BuildStage constructs the filter described by cfg.
func BuildStage(cfg StageConfig) (filter.Filter, error) {
	switch strings.ToLower(cfg.Kind) {
	case KindMean:
		return moving.NewMean(cfg.Window)
	case KindMedian:
		return moving.NewMedian(cfg.Window)
	case KindIIR:
		return iir.New(cfg.B, cfg.A)
	case KindSOS:
		var opts []biquad.CascadeOption
		if cfg.Gain != 0 {
			opts = append(opts, biquad.WithGain(cfg.Gain))
		}
		return biquad.NewCascade(cfg.Sections, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, cfg.Kind)
	}
}

// BuildChain constructs a chain from stages in order. An empty list yields
// the identity chain.
func BuildChain(stages []StageConfig) (*filter.Chain, error) {
	c := filter.NewChain()
	for i, st := range stages {
		f, err := BuildStage(st)
		if err != nil {
			return nil, fmt.Errorf("stage %d (%s): %w", i, st, err)
		}
		c.Append(f)
	}
	return c, nil
}

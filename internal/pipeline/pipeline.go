package pipeline

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-smooth/dsp/filter"
)

var (
	// ErrUnknownChannel is returned when a sample targets an unconfigured channel.
	ErrUnknownChannel = errors.New("unknown channel")
	errFrameLength    = errors.New("frame length does not match channel count")
	errNoChannels     = errors.New("pipeline needs at least one channel")
)

type channel struct {
	name    string
	chain   *filter.Chain
	samples prometheus.Counter
	missing prometheus.Counter
}

// Pipeline routes samples to per-channel filter chains.
type Pipeline struct {
	channels map[string]*channel
	order    []string
	logger   *zap.Logger
}

type options struct {
	logger     *zap.Logger
	registerer prometheus.Registerer
}

// Option configures a Pipeline.
type Option func(*options)

// WithLogger sets the logger. Default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRegisterer registers the pipeline counters on reg.
// Without it counters are kept but not exported.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) { o.registerer = reg }
}

// New builds a pipeline with one chain per configured channel.
func New(channels map[string][]StageConfig, opts ...Option) (*Pipeline, error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if len(channels) == 0 {
		return nil, errNoChannels
	}

	m, err := newMetrics(o.registerer)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	p := &Pipeline{
		channels: make(map[string]*channel, len(channels)),
		logger:   o.logger,
	}
	for name := range channels {
		p.order = append(p.order, name)
	}
	sort.Strings(p.order)

	for _, name := range p.order {
		stages := channels[name]
		chain, err := BuildChain(stages)
		if err != nil {
			return nil, fmt.Errorf("channel %q: %w", name, err)
		}
		p.channels[name] = &channel{
			name:    name,
			chain:   chain,
			samples: m.samples.WithLabelValues(name),
			missing: m.missing.WithLabelValues(name),
		}
		p.logger.Info("channel configured",
			zap.String("channel", name),
			zap.Stringers("stages", stages),
		)
		p.warnUnstable(name, chain)
	}
	return p, nil
}

func (p *Pipeline) warnUnstable(name string, chain *filter.Chain) {
	for i := range chain.Len() {
		s, ok := chain.Stage(i).(interface{ Stable() bool })
		if ok && !s.Stable() {
			p.logger.Warn("stage has poles on or outside the unit circle",
				zap.String("channel", name),
				zap.Int("stage", i),
			)
		}
	}
}

// Process feeds x into the named channel and returns the filtered value.
func (p *Pipeline) Process(name string, x float64) (float64, error) {
	ch, ok := p.channels[name]
	if !ok {
		return math.NaN(), fmt.Errorf("%w: %q", ErrUnknownChannel, name)
	}
	return ch.process(x), nil
}

// ProcessFrame feeds one sample per channel, ordered as Channels(), and
// writes the filtered values to dst. dst may alias frame.
func (p *Pipeline) ProcessFrame(dst, frame []float64) error {
	if len(frame) != len(p.order) || len(dst) < len(frame) {
		return fmt.Errorf("%w: got %d values for %d channels", errFrameLength, len(frame), len(p.order))
	}
	for i, name := range p.order {
		dst[i] = p.channels[name].process(frame[i])
	}
	return nil
}

// Reset restores every channel chain to its just-built state, e.g. at the
// start of a new roast.
func (p *Pipeline) Reset() {
	for _, name := range p.order {
		p.channels[name].chain.Reset()
	}
	p.logger.Debug("pipeline reset", zap.Int("channels", len(p.order)))
}

// Channels returns the channel names in processing order (sorted).
func (p *Pipeline) Channels() []string {
	return append([]string(nil), p.order...)
}

// Chain returns the filter chain of a channel.
func (p *Pipeline) Chain(name string) (*filter.Chain, bool) {
	ch, ok := p.channels[name]
	if !ok {
		return nil, false
	}
	return ch.chain, true
}

func (c *channel) process(x float64) float64 {
	c.samples.Inc()
	if filter.IsMissing(x) {
		c.missing.Inc()
	}
	return c.chain.ProcessSample(x)
}

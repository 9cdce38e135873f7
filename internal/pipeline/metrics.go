package pipeline

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	samples *prometheus.CounterVec
	missing *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		samples: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "roastfilter_samples_total",
				Help: "Total number of samples fed into a channel, missing readings included.",
			},
			[]string{"channel"},
		),
		missing: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "roastfilter_missing_samples_total",
				Help: "Total number of missing (NaN) readings per channel.",
			},
			[]string{"channel"},
		),
	}
	if reg == nil {
		return m, nil
	}

	var err error
	if m.samples, err = register(reg, m.samples); err != nil {
		return nil, err
	}
	if m.missing, err = register(reg, m.missing); err != nil {
		return nil, err
	}
	return m, nil
}

// register registers c, reusing an identical collector that is already
// registered.
func register(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return c, nil
}

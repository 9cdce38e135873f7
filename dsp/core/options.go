package core

// ProcessorConfig defines common processing settings for a sensor channel.
type ProcessorConfig struct {
	// SampleRate is the acquisition rate in Hz. Roasting software typically
	// polls thermocouples once per second or slower.
	SampleRate float64
	BlockSize  int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns defaults for a 1 Hz roast logger.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 1,
		BlockSize:  256,
	}
}

// WithSampleRate sets the acquisition sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithSampleInterval sets the sample rate from the polling interval in seconds.
func WithSampleInterval(seconds float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if seconds > 0 {
			cfg.SampleRate = 1 / seconds
		}
	}
}

// WithBlockSize sets the analysis block size.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Package config loads roastfilter settings from file and environment via Viper.
package config

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/cwbudde/algo-smooth/internal/pipeline"
)

// EnvPrefix is the prefix for environment overrides, e.g.
// ROASTFILTER_LOGGING_LEVEL=debug.
const EnvPrefix = "ROASTFILTER"

var (
	errNoChannels = errors.New("no channels configured")
	errSampleRate = errors.New("sample rate must be positive and finite")
)

type channelConfig struct {
	Stages []pipeline.StageConfig `mapstructure:"stages"`
}

// Load reads configuration from configPath (any format Viper understands)
// or, when configPath is empty, from roastfilter.yaml in the usual
// locations. A missing default file is not an error.
func Load(configPath string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("roastfilter")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/roastfilter")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	return v, nil
}

// SetDefaults installs the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("sample_rate", 1.0)
	v.SetDefault("block_size", 256)
}

// Channels decodes the channels section into per-channel stage lists.
//
//	channels:
//	  bt:
//	    stages:
//	      - {kind: median, window: 5}
//	      - {kind: iir, b: [0.2], a: [1, -0.8]}
//
// Channel names are case-insensitive and returned lower-cased.
func Channels(v *viper.Viper) (map[string][]pipeline.StageConfig, error) {
	var raw map[string]channelConfig
	if err := v.UnmarshalKey("channels", &raw); err != nil {
		return nil, fmt.Errorf("decoding channels: %w", err)
	}
	if len(raw) == 0 {
		return nil, errNoChannels
	}
	out := make(map[string][]pipeline.StageConfig, len(raw))
	for name, ch := range raw {
		out[name] = ch.Stages
	}
	return out, nil
}

// ChannelNames returns the configured channel names, sorted.
func ChannelNames(v *viper.Viper) []string {
	names := make([]string, 0)
	for name := range v.GetStringMap("channels") {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SampleRate returns the configured sensor sample rate in Hz.
func SampleRate(v *viper.Viper) (float64, error) {
	sr := v.GetFloat64("sample_rate")
	if sr <= 0 || math.IsNaN(sr) || math.IsInf(sr, 0) {
		return 0, fmt.Errorf("%w: %v", errSampleRate, sr)
	}
	return sr, nil
}

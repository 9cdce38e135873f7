package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestNewLogger_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	logger, err := NewLogger(v)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
	if logger.Core().Enabled(-1) {
		t.Error("debug should be disabled at the default level")
	}
}

func TestNewLogger_DebugConsole(t *testing.T) {
	v := viper.New()
	v.Set("logging.level", "debug")
	v.Set("logging.format", "console")

	logger, err := NewLogger(v)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if !logger.Core().Enabled(-1) {
		t.Error("debug should be enabled")
	}
}

func TestNewLogger_Invalid(t *testing.T) {
	tests := []struct {
		name, level, format string
	}{
		{"level", "banana", "json"},
		{"format", "info", "xml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.Set("logging.level", tt.level)
			v.Set("logging.format", tt.format)
			if _, err := NewLogger(v); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

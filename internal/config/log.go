package config

import (
	"log/slog"
	"strings"
)

// Log configures the diagnostics logger. Diagnostics never go to stdout,
// which carries only the price label.
type Log struct {
	Format    LogFormat  `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=json text"`
	Level     slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	AddSource bool       `env:"LOG_ADD_SOURCE"`
}

// LogFormat selects the slog handler: JSON records or tint's text output.
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

// UnmarshalText accepts the format in any case; unknown values are
// rejected by validation rather than here.
func (f *LogFormat) UnmarshalText(text []byte) error {
	*f = LogFormat(strings.ToLower(strings.TrimSpace(string(text))))
	return nil
}

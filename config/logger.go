package config

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds a zerolog logger writing to w. An empty style means
// console output and an empty level means info.
func NewLogger(lc LogConfig, w io.Writer) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if lc.Level != "" {
		l, err := zerolog.ParseLevel(lc.Level)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("LOG_LEVEL: %w", err)
		}
		level = l
	}

	var out io.Writer
	switch lc.Style {
	case "", "console":
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	case "json":
		out = w
	default:
		return zerolog.Nop(), fmt.Errorf("LOG_STYLE: unknown style %q", lc.Style)
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

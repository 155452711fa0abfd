package engine

import (
	"io"
	"time"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// NewLogger builds the engine logger described by cfg, writing to w.
func NewLogger(cfg Config, w io.Writer) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if cfg.LogLevel != "" {
		l, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			return zerolog.Nop(), eris.Wrapf(ErrInvalidConfig, "log_level %q", cfg.LogLevel)
		}
		level = l
	}
	if cfg.LogPretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

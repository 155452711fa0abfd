package engine

import (
	ddstatsd "github.com/DataDog/datadog-go/v5/statsd"
	"github.com/edwinsyarief/kumiki"
	"github.com/rs/zerolog"
)

var nopLogger = zerolog.Nop()

// loggerFrom returns the engine logger stored in aux, or a no-op logger.
func loggerFrom(aux *kumiki.Resources) *zerolog.Logger {
	if l, ok := kumiki.GetResource[zerolog.Logger](aux); ok {
		return l
	}
	return &nopLogger
}

// statsFrom returns the telemetry client stored in aux, or a discarding one.
func statsFrom(aux *kumiki.Resources) *Stats {
	if s, ok := kumiki.GetResource[Stats](aux); ok {
		return s
	}
	return &Stats{client: &ddstatsd.NoOpClient{}, logger: nopLogger}
}

package engine

import (
	"time"

	ddstatsd "github.com/DataDog/datadog-go/v5/statsd"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// Stats wraps the statsd client used for engine telemetry. Emission errors are
// logged and otherwise ignored.
type Stats struct {
	client ddstatsd.ClientInterface
	logger zerolog.Logger
}

// NewStats connects to the statsd agent at address. An empty address yields a
// client that discards everything.
func NewStats(address string, tags []string, logger zerolog.Logger) (*Stats, error) {
	if address == "" {
		return &Stats{client: &ddstatsd.NoOpClient{}, logger: logger}, nil
	}
	opts := []ddstatsd.Option{
		// The statsd namespace is the prefix of all metrics
		ddstatsd.WithNamespace("kumiki"),
	}
	if len(tags) > 0 {
		opts = append(opts, ddstatsd.WithTags(tags))
	}
	client, err := ddstatsd.New(address, opts...)
	if err != nil {
		return nil, eris.Wrapf(err, "statsd %s", address)
	}
	return &Stats{client: client, logger: logger}, nil
}

// NewStatsWithClient wraps an existing client.
func NewStatsWithClient(client ddstatsd.ClientInterface, logger zerolog.Logger) *Stats {
	return &Stats{client: client, logger: logger}
}

// Timing records a duration metric.
func (s *Stats) Timing(name string, d time.Duration, tags ...string) {
	if err := s.client.Timing(name, d, tags, 1); err != nil {
		s.logger.Warn().Err(err).Str("metric", name).Msg("failed to emit timing")
	}
}

// Gauge records a point-in-time value.
func (s *Stats) Gauge(name string, v float64, tags ...string) {
	if err := s.client.Gauge(name, v, tags, 1); err != nil {
		s.logger.Warn().Err(err).Str("metric", name).Msg("failed to emit gauge")
	}
}

// Count adds n to a counter.
func (s *Stats) Count(name string, n int64, tags ...string) {
	if err := s.client.Count(name, n, tags, 1); err != nil {
		s.logger.Warn().Err(err).Str("metric", name).Msg("failed to emit count")
	}
}

// Close flushes and closes the client.
func (s *Stats) Close() error {
	return s.client.Close()
}

package kumiki

import "github.com/rs/zerolog"

type worldConfig struct {
	logger        zerolog.Logger
	maxDepth      int
	queueCapacity int
}

func defaultWorldConfig() worldConfig {
	return worldConfig{
		logger:        zerolog.Nop(),
		queueCapacity: 64,
	}
}

// WorldOption configures a World at construction time.
type WorldOption func(*worldConfig)

// WithLogger sets the logger used for registration and dispatch diagnostics.
func WithLogger(l zerolog.Logger) WorldOption {
	return func(c *worldConfig) {
		c.logger = l
	}
}

// WithMaxDispatchDepth bounds the nesting of immediate dispatch. An event that
// would be dispatched deeper than depth is dropped and counted. Zero leaves the
// recursion unbounded.
func WithMaxDispatchDepth(depth int) WorldOption {
	return func(c *worldConfig) {
		c.maxDepth = max(depth, 0)
	}
}

// WithQueueCapacity preallocates the event queue.
func WithQueueCapacity(n int) WorldOption {
	return func(c *worldConfig) {
		c.queueCapacity = max(n, 0)
	}
}

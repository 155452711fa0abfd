package engine

import (
	"context"
	"os"
	"path/filepath"
	"time"

	ddstatsd "github.com/DataDog/datadog-go/v5/statsd"
	"github.com/edwinsyarief/kumiki"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// Clock abstracts wall-clock time for the game loop.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// Orchestrator owns the engine World and runs the game loop.
//
// The loop uses a fixed time step: wall-clock frame time (capped at
// MaxFrameTime) is accumulated and World.Update runs once per DeltaTime
// available. Each frame then runs World.DynamicUpdate with the frame time,
// World.Render, and World.HandleEvents, whose result ends the loop.
//
// The World's Resources hold the *Config, the *zerolog.Logger and the *Stats
// of the Orchestrator, so systems can reach them through their aux argument.
type Orchestrator struct {
	World *World

	cfg    Config
	logger zerolog.Logger
	stats  *Stats
	clock  Clock
	frames uint64
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithClock replaces the wall clock, mostly for tests.
func WithClock(c Clock) Option {
	return func(o *Orchestrator) {
		o.clock = c
	}
}

// WithLogger sets the engine logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = l
	}
}

// WithStats sets the telemetry client.
func WithStats(s *Stats) Option {
	return func(o *Orchestrator) {
		o.stats = s
	}
}

// NewOrchestrator validates cfg and creates an Orchestrator with a fresh
// World. The render gate, which maps Suspend events onto the World's render
// suspension, is registered as the first system.
func NewOrchestrator(cfg Config, opts ...Option) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := &Orchestrator{
		cfg:    cfg,
		logger: zerolog.Nop(),
		clock:  systemClock{},
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.stats == nil {
		o.stats = &Stats{client: &ddstatsd.NoOpClient{}, logger: o.logger}
	}

	o.World = NewWorld(
		kumiki.WithLogger(o.logger),
		kumiki.WithMaxDispatchDepth(cfg.MaxDispatchDepth),
	)
	aux := &o.World.Aux
	kumiki.SetResource(aux, &o.cfg)
	kumiki.SetResource(aux, &o.logger)
	kumiki.SetResource(aux, o.stats)

	if err := o.World.AddSystem(NewRenderGate(o.World)); err != nil {
		return nil, err
	}
	return o, nil
}

// Config returns the active configuration.
func (o *Orchestrator) Config() Config {
	return o.cfg
}

// Logger returns the engine logger.
func (o *Orchestrator) Logger() zerolog.Logger {
	return o.logger
}

// Stats returns the telemetry client.
func (o *Orchestrator) Stats() *Stats {
	return o.stats
}

// Frames returns the number of completed frames.
func (o *Orchestrator) Frames() uint64 {
	return o.frames
}

// File resolves name within category of the resource tree and checks that it
// is a readable regular file.
//
// Returns:
//   - The resolved path.
//   - ErrFileNotAccessible if the file is missing, not regular or unreadable.
func (o *Orchestrator) File(category, name string) (string, error) {
	path := filepath.Join(o.cfg.ResourcePath, category, name)
	info, err := os.Stat(path)
	if err != nil {
		return "", eris.Wrapf(ErrFileNotAccessible, "%s: %v", path, err)
	}
	if !info.Mode().IsRegular() {
		return "", eris.Wrapf(ErrFileNotAccessible, "%s is not a regular file", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return "", eris.Wrapf(ErrFileNotAccessible, "%s: %v", path, err)
	}
	if err := f.Close(); err != nil {
		return "", eris.Wrapf(ErrFileNotAccessible, "%s: %v", path, err)
	}
	return path, nil
}

// Run calls init, dispatches Ready and runs the loop until a Shutdown has
// been processed. Cancelling ctx dispatches a single Shutdown; the loop then
// stops through the usual two-step.
func (o *Orchestrator) Run(ctx context.Context, init func(*Orchestrator) error) error {
	if init != nil {
		if err := init(o); err != nil {
			return eris.Wrap(err, "initialize engine")
		}
	}
	o.World.Dispatch(NewReady())
	o.logger.Info().
		Int("systems", o.World.SystemCount()).
		Int("entities", o.World.EntityCount()).
		Dur("delta_time", o.cfg.DeltaTime).
		Msg("engine ready")
	o.loop(ctx)
	return nil
}

func (o *Orchestrator) loop(ctx context.Context) {
	var gameTime, accumulator time.Duration
	dt := o.cfg.DeltaTime
	last := o.clock.Now()
	cancelled := false

	for {
		if !cancelled && ctx.Err() != nil {
			cancelled = true
			o.logger.Info().Msg("context done, shutting down")
			o.World.Dispatch(NewShutdown())
		}

		now := o.clock.Now()
		frame := min(max(now.Sub(last), 0), o.cfg.MaxFrameTime)
		last = now
		accumulator += frame

		updates := 0
		for accumulator >= dt {
			o.World.Update(gameTime, dt)
			gameTime += dt
			accumulator -= dt
			updates++
		}
		o.World.DynamicUpdate(gameTime, frame)
		o.World.Render(gameTime, dt)

		o.frames++
		o.stats.Timing("frame_time", frame)
		o.stats.Count("updates", int64(updates))

		if !o.World.HandleEvents() {
			o.logger.Info().
				Uint64("frames", o.frames).
				Dur("game_time", gameTime).
				Msg("loop stopped")
			return
		}
		if updates == 0 && o.cfg.IdleSleep > 0 {
			o.clock.Sleep(o.cfg.IdleSleep)
		}
	}
}

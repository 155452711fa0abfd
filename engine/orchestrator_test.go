package engine

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/edwinsyarief/kumiki"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock advances by step on every reading.
type fakeClock struct {
	now   time.Time
	step  time.Duration
	slept time.Duration
}

func (c *fakeClock) Now() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

func (c *fakeClock) Sleep(d time.Duration) { c.slept += d }

// stepCounter records the arguments of the loop stages and asks for a
// shutdown after stopAfter fixed updates.
type stepCounter struct {
	kumiki.NoRequirements
	stopAfter int
	updates   []time.Duration
	frames    []time.Duration
	shutdowns int
}

func (s *stepCounter) LoopStageFilter() kumiki.LoopStageFlag {
	return kumiki.StageHandleEvent.Union(kumiki.StageUpdate).Union(kumiki.StageDynamicUpdate)
}

func (s *stepCounter) EventFilter() kumiki.EventFlag { return ShutdownFlag }

func (s *stepCounter) HandleEvent(*kumiki.Assembly, *kumiki.Resources, Event) ([]Event, []Event) {
	s.shutdowns++
	return nil, nil
}

func (s *stepCounter) Update(_ *kumiki.Assembly, _ *kumiki.Resources, t, _ time.Duration) ([]Event, []Event) {
	s.updates = append(s.updates, t)
	if len(s.updates) == s.stopAfter {
		return nil, []Event{NewShutdown()}
	}
	return nil, nil
}

func (s *stepCounter) DynamicUpdate(_ *kumiki.Assembly, _ *kumiki.Resources, _, dt time.Duration) ([]Event, []Event) {
	s.frames = append(s.frames, dt)
	return nil, nil
}

func newTestOrchestrator(t *testing.T, step time.Duration) (*Orchestrator, *fakeClock) {
	t.Helper()
	clock := &fakeClock{step: step}
	o, err := NewOrchestrator(DefaultConfig(), WithClock(clock), WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	return o, clock
}

func TestOrchestratorFixedStep(t *testing.T) {
	o, _ := newTestOrchestrator(t, 100*time.Millisecond)
	counter := &stepCounter{stopAfter: 3}

	err := o.Run(context.Background(), func(o *Orchestrator) error {
		return o.World.AddSystem(counter)
	})
	require.NoError(t, err)

	// The shutdown queued by the third update ends the loop one frame later.
	assert.Equal(t, uint64(4), o.Frames())
	assert.Equal(t, []time.Duration{0, 100 * time.Millisecond, 200 * time.Millisecond, 300 * time.Millisecond}, counter.updates)
	assert.Equal(t, 1, counter.shutdowns)
}

func TestOrchestratorClampsFrameTime(t *testing.T) {
	o, _ := newTestOrchestrator(t, time.Second)
	counter := &stepCounter{stopAfter: 1}
	require.NoError(t, o.World.AddSystem(counter))
	require.NoError(t, o.Run(context.Background(), nil))

	require.NotEmpty(t, counter.frames)
	for _, dt := range counter.frames {
		assert.Equal(t, o.Config().MaxFrameTime, dt)
	}
	// Two updates in the first frame, then three with the 50ms carried over.
	assert.Len(t, counter.updates, 5)
}

func TestOrchestratorIdleSleep(t *testing.T) {
	o, clock := newTestOrchestrator(t, 0)
	counter := &stepCounter{}
	require.NoError(t, o.World.AddSystem(counter))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, o.Run(ctx, nil))

	assert.Empty(t, counter.updates)
	assert.Equal(t, 1, counter.shutdowns, "cancellation dispatches a single shutdown")
	assert.Equal(t, uint64(2), o.Frames())
	assert.Equal(t, o.Config().IdleSleep, clock.slept, "only the frame that continues sleeps")
}

func TestOrchestratorInit(t *testing.T) {
	o, _ := newTestOrchestrator(t, 0)
	boom := errors.New("boom")
	err := o.Run(context.Background(), func(*Orchestrator) error { return boom })
	assert.ErrorContains(t, err, "boom")
	assert.Zero(t, o.Frames())
}

func TestOrchestratorResources(t *testing.T) {
	o, _ := newTestOrchestrator(t, 0)
	cfg, ok := kumiki.GetResource[Config](&o.World.Aux)
	require.True(t, ok)
	assert.Equal(t, o.Config(), *cfg)
	assert.True(t, kumiki.HasResource[zerolog.Logger](&o.World.Aux))
	assert.True(t, kumiki.HasResource[Stats](&o.World.Aux))
	require.NotNil(t, o.Stats(), "a discarding client is installed by default")
	assert.NotPanics(t, func() { o.Stats().Gauge("entities", 0) })
	assert.Equal(t, 1, o.World.SystemCount(), "the render gate is registered")

	o.World.Dispatch(NewSuspend(true))
	o.World.HandleEvents()
	assert.True(t, o.World.RenderingSuspended())
}

func TestOrchestratorInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DeltaTime = 0
	_, err := NewOrchestrator(cfg)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestOrchestratorFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ResourcePath = t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(cfg.ResourcePath, "maps"), 0o755))
	want := filepath.Join(cfg.ResourcePath, "maps", "start.yaml")
	require.NoError(t, os.WriteFile(want, []byte("{}"), 0o644))

	o, err := NewOrchestrator(cfg)
	require.NoError(t, err)

	got, err := o.File("maps", "start.yaml")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = o.File("maps", "missing.yaml")
	assert.True(t, errors.Is(err, ErrFileNotAccessible))

	_, err = o.File("", "maps")
	assert.True(t, errors.Is(err, ErrFileNotAccessible), "directories are rejected")
}

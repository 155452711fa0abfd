package engine

import (
	"bytes"
	"errors"
	"math"
	"testing"
	"time"

	ddstatsd "github.com/DataDog/datadog-go/v5/statsd"
	"github.com/edwinsyarief/kumiki"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderGate(t *testing.T) {
	w := NewWorld()
	require.NoError(t, w.AddSystem(NewRenderGate(w)))

	w.Dispatch(NewSuspend(true))
	w.HandleEvents()
	assert.True(t, w.RenderingSuspended())

	w.Dispatch(NewSuspend(false))
	w.HandleEvents()
	assert.False(t, w.RenderingSuspended())
}

func TestEventMonitor(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.TraceLevel)
	w := NewWorld()
	kumiki.SetResource(&w.Aux, &logger)
	require.NoError(t, w.AddSystem(NewEventMonitor()))

	w.Dispatch(NewReloadResources("maps/a.yaml"))
	w.Dispatch(NewCursorPosition(3, 4))
	w.HandleEvents()

	assert.Contains(t, buf.String(), `"path":"maps/a.yaml"`)
	assert.NotContains(t, buf.String(), "CursorPosition")
}

func spawnHero(t *testing.T, w *World) kumiki.Entity {
	t.Helper()
	e := w.CreateEntity()
	_, _, err := kumiki.AddComponent(w.Assembly, e, Description{Name: "hero"})
	require.NoError(t, err)
	_, _, err = kumiki.AddComponent(w.Assembly, e, Position{Z: 7})
	require.NoError(t, err)
	return e
}

func TestDebugMover(t *testing.T) {
	w := NewWorld()
	mover := NewDebugMover("hero", 2, math.Pi/2)

	err := w.AddSystem(mover)
	assert.True(t, errors.Is(err, kumiki.ErrUnsatisfiedRequirements))

	hero := spawnHero(t, w)
	require.NoError(t, w.AddSystem(mover))

	w.Update(time.Second, 100*time.Millisecond)
	p, err := kumiki.BorrowComponent[Position](w, hero)
	require.NoError(t, err)
	assert.InDelta(t, 0, p.X, 1e-5)
	assert.InDelta(t, 2, p.Y, 1e-5)
	assert.Equal(t, float32(7), p.Z)

	// A second target makes the lookup ambiguous; the mover leaves both alone.
	other := spawnHero(t, w)
	w.Update(2*time.Second, 100*time.Millisecond)
	p, err = kumiki.BorrowComponent[Position](w, other)
	require.NoError(t, err)
	assert.Equal(t, Position{Z: 7}, p)
}

type gaugeRecorder struct {
	ddstatsd.NoOpClient
	gauges map[string]float64
}

func (g *gaugeRecorder) Gauge(name string, value float64, _ []string, _ float64) error {
	g.gauges[name] = value
	return nil
}

func TestRenderStats(t *testing.T) {
	rec := &gaugeRecorder{gauges: make(map[string]float64)}
	w := NewWorld()
	kumiki.SetResource(&w.Aux, NewStatsWithClient(rec, zerolog.Nop()))
	stats := NewRenderStats(w)
	require.NoError(t, w.AddSystem(stats))
	spawnHero(t, w)

	w.Render(0, 0)
	assert.Empty(t, rec.gauges, "nothing is reported before Ready")
	assert.False(t, stats.LoopStageFilter().Contains(kumiki.StageRender))

	w.Dispatch(NewReady())
	w.HandleEvents()
	w.Dispatch(NewRendererReady())
	w.Render(0, 0)
	assert.Equal(t, 1.0, rec.gauges["entities"])
	assert.Equal(t, 1.0, rec.gauges["event_queue"])
}

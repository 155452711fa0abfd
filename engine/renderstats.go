package engine

import (
	"time"

	"github.com/edwinsyarief/kumiki"
)

// RenderStats reports per-frame gauges from the Render stage. It only
// subscribes to Render once it has seen Ready.
type RenderStats struct {
	kumiki.NoRequirements
	world *World
	ready bool
}

func NewRenderStats(w *World) *RenderStats {
	return &RenderStats{world: w}
}

func (r *RenderStats) LoopStageFilter() kumiki.LoopStageFlag {
	if r.ready {
		return kumiki.StageHandleEvent.Union(kumiki.StageRender)
	}
	return kumiki.StageHandleEvent
}

func (r *RenderStats) EventFilter() kumiki.EventFlag { return ReadyFlag }

func (r *RenderStats) HandleEvent(_ *kumiki.Assembly, _ *kumiki.Resources, _ Event) ([]Event, []Event) {
	r.ready = true
	return nil, nil
}

func (r *RenderStats) Render(v kumiki.View, aux *kumiki.Resources, _, _ time.Duration) []Event {
	stats := statsFrom(aux)
	stats.Gauge("entities", float64(v.EntityCount()))
	stats.Gauge("event_queue", float64(r.world.QueueLen()))
	return nil
}

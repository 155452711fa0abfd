package engine

import (
	"github.com/edwinsyarief/kumiki"
	"github.com/rs/zerolog"
)

// RenderGate turns the Render stage off and on in response to Suspend events.
type RenderGate struct {
	kumiki.NoRequirements
	world *World
}

// NewRenderGate creates a RenderGate controlling w.
func NewRenderGate(w *World) *RenderGate {
	return &RenderGate{world: w}
}

func (g *RenderGate) LoopStageFilter() kumiki.LoopStageFlag { return kumiki.StageHandleEvent }
func (g *RenderGate) EventFilter() kumiki.EventFlag         { return SuspendFlag }

func (g *RenderGate) HandleEvent(_ *kumiki.Assembly, aux *kumiki.Resources, e Event) ([]Event, []Event) {
	g.world.SuspendRendering(e.Suspended())
	if logger, ok := kumiki.GetResource[zerolog.Logger](aux); ok {
		logger.Debug().Bool("suspended", e.Suspended()).Msg("render suspension changed")
	}
	return nil, nil
}

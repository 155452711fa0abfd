package engine

import (
	"github.com/edwinsyarief/kumiki"
)

// EventMonitor logs every event it sees at trace level. Cursor movement is
// too frequent to be useful and is left out.
type EventMonitor struct {
	kumiki.NoRequirements
}

func NewEventMonitor() *EventMonitor {
	return &EventMonitor{}
}

func (m *EventMonitor) LoopStageFilter() kumiki.LoopStageFlag { return kumiki.StageHandleEvent }
func (m *EventMonitor) EventFilter() kumiki.EventFlag         { return AllEvents.Without(CursorPositionFlag) }

func (m *EventMonitor) HandleEvent(_ *kumiki.Assembly, aux *kumiki.Resources, e Event) ([]Event, []Event) {
	loggerFrom(aux).Trace().Object("event", e).Msg("received event")
	return nil, nil
}

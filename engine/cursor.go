package engine

import (
	"github.com/edwinsyarief/kumiki"
)

// CursorController keeps the single Cursor component in sync with pointer
// events. When a mouse button changes state it emits a MouseInputFlank as an
// immediate event, so listeners react to presses and releases within the
// same dispatch.
type CursorController struct{}

func NewCursorController() *CursorController {
	return &CursorController{}
}

// VerifyRequirements demands exactly one Cursor.
func (c *CursorController) VerifyRequirements(v kumiki.View) bool {
	return kumiki.Count1[Cursor](v) == 1
}

func (c *CursorController) LoopStageFilter() kumiki.LoopStageFlag { return kumiki.StageHandleEvent }
func (c *CursorController) EventFilter() kumiki.EventFlag {
	return CursorPositionFlag.Union(MouseInputFlag)
}

func (c *CursorController) HandleEvent(a *kumiki.Assembly, aux *kumiki.Resources, e Event) ([]Event, []Event) {
	var immediate []Event
	var err error
	switch e.Kind {
	case CursorPosition:
		err = kumiki.WS1(a, func(_ kumiki.Entity, cur *Cursor) {
			cur.Position = e.Cursor()
		})
	case MouseInput:
		in := e.ButtonInput()
		if in.Button >= numButtons {
			loggerFrom(aux).Warn().Stringer("button", in.Button).Msg("unknown mouse button")
			return nil, nil
		}
		err = kumiki.WS1(a, func(_ kumiki.Entity, cur *Cursor) {
			switch prev := cur.Buttons[in.Button]; {
			case prev == Released && in.State == Pressed:
				immediate = append(immediate, NewMouseInputFlank(in.Button, FlankDown))
			case prev == Pressed && in.State == Released:
				immediate = append(immediate, NewMouseInputFlank(in.Button, FlankUp))
			}
			cur.Buttons[in.Button] = in.State
		})
	}
	if err != nil {
		loggerFrom(aux).Warn().Err(err).Stringer("event", e.Kind).Msg("cursor unavailable")
		return nil, nil
	}
	return immediate, nil
}

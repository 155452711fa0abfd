package engine

import (
	"errors"
	"testing"

	"github.com/edwinsyarief/kumiki"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flankRecorder records the flanks it receives and the order of events seen.
type flankRecorder struct {
	kumiki.NoRequirements
	seen []Event
}

func (r *flankRecorder) LoopStageFilter() kumiki.LoopStageFlag { return kumiki.StageHandleEvent }
func (r *flankRecorder) EventFilter() kumiki.EventFlag {
	return MouseInputFlankFlag.Union(ReadyFlag)
}

func (r *flankRecorder) HandleEvent(_ *kumiki.Assembly, _ *kumiki.Resources, e Event) ([]Event, []Event) {
	r.seen = append(r.seen, e)
	return nil, nil
}

func newCursorWorld(t *testing.T) (*World, kumiki.Entity) {
	t.Helper()
	w := NewWorld()
	e := w.CreateEntity()
	_, _, err := kumiki.AddComponent(w.Assembly, e, Cursor{})
	require.NoError(t, err)
	return w, e
}

func TestCursorControllerRequirements(t *testing.T) {
	w := NewWorld()
	err := w.AddSystem(NewCursorController())
	assert.True(t, errors.Is(err, kumiki.ErrUnsatisfiedRequirements), "no cursor")

	w, _ = newCursorWorld(t)
	extra := w.CreateEntity()
	_, _, err = kumiki.AddComponent(w.Assembly, extra, Cursor{})
	require.NoError(t, err)
	err = w.AddSystem(NewCursorController())
	assert.True(t, errors.Is(err, kumiki.ErrUnsatisfiedRequirements), "two cursors")
}

func TestCursorControllerPosition(t *testing.T) {
	w, e := newCursorWorld(t)
	require.NoError(t, w.AddSystem(NewCursorController()))

	w.Dispatch(NewCursorPosition(12, 34))
	w.HandleEvents()

	cur, err := kumiki.BorrowComponent[Cursor](w, e)
	require.NoError(t, err)
	assert.Equal(t, Point{12, 34}, cur.Position)
}

func TestCursorControllerFlanks(t *testing.T) {
	w, e := newCursorWorld(t)
	c := NewCursorController()
	require.NoError(t, w.AddSystem(c))

	im, de := c.HandleEvent(w.Assembly, &w.Aux, NewMouseInput(LeftButton, Pressed))
	assert.Equal(t, []Event{NewMouseInputFlank(LeftButton, FlankDown)}, im)
	assert.Empty(t, de)

	im, _ = c.HandleEvent(w.Assembly, &w.Aux, NewMouseInput(LeftButton, Pressed))
	assert.Empty(t, im, "holding a button is not a flank")

	im, de = c.HandleEvent(w.Assembly, &w.Aux, NewMouseInput(LeftButton, Released))
	assert.Equal(t, []Event{NewMouseInputFlank(LeftButton, FlankUp)}, im)
	assert.Empty(t, de)

	im, _ = c.HandleEvent(w.Assembly, &w.Aux, NewMouseInput(RightButton, Released))
	assert.Empty(t, im)

	cur, err := kumiki.BorrowComponent[Cursor](w, e)
	require.NoError(t, err)
	assert.Equal(t, Released, cur.Buttons[LeftButton])
}

func TestCursorControllerFlanksAreImmediate(t *testing.T) {
	w, _ := newCursorWorld(t)
	rec := &flankRecorder{}
	require.NoError(t, w.AddSystem(NewCursorController()))
	require.NoError(t, w.AddSystem(rec))

	w.Dispatch(NewMouseInput(LeftButton, Pressed))
	w.Dispatch(NewMouseInput(LeftButton, Released))
	w.Dispatch(NewReady())
	assert.True(t, w.HandleEvents())

	// Both flanks are handled within the batch, ahead of the Ready behind them.
	assert.Equal(t, []Event{
		NewMouseInputFlank(LeftButton, FlankDown),
		NewMouseInputFlank(LeftButton, FlankUp),
		NewReady(),
	}, rec.seen)
	assert.Zero(t, w.QueueLen())
}

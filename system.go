package kumiki

import "time"

// System is a unit of behavior registered with a World. Beyond the two
// methods below, a system implements one hook interface per loop stage it
// takes part in: EventHandler, Updater, DynamicUpdater and Renderer.
//
// World.AddSystem rejects a system whose stage filter names a stage it has no
// hook for. LoopStageFilter is queried again on every pass, so a system may
// change its subscription over time; subscribing later to a stage without a
// hook panics with ErrUnimplementedStage.
type System[E Event, A any] interface {
	// VerifyRequirements is called once, by World.AddSystem. Returning false
	// rejects the system with ErrUnsatisfiedRequirements.
	VerifyRequirements(v View) bool
	// LoopStageFilter returns the stages the system currently subscribes to.
	LoopStageFilter() LoopStageFlag
}

// EventHandler is the HandleEvent stage hook.
type EventHandler[E Event, A any] interface {
	// EventFilter selects the events passed to HandleEvent.
	EventFilter() EventFlag
	// HandleEvent reacts to one event. Immediate events are dispatched
	// depth-first before the current dispatch returns; deferred events are
	// queued for the next World.HandleEvents call.
	HandleEvent(a *Assembly, aux *A, event E) (immediate, deferred []E)
}

// Updater is the fixed-rate Update stage hook.
type Updater[E Event, A any] interface {
	Update(a *Assembly, aux *A, t, dt time.Duration) (immediate, deferred []E)
}

// DynamicUpdater is the variable-rate DynamicUpdate stage hook.
type DynamicUpdater[E Event, A any] interface {
	DynamicUpdate(a *Assembly, aux *A, t, dt time.Duration) (immediate, deferred []E)
}

// Renderer is the Render stage hook. It only sees a View of the Assembly.
// The returned events are queued.
type Renderer[E Event, A any] interface {
	Render(v View, aux *A, t, dt time.Duration) []E
}

// NoRequirements can be embedded by systems that accept any Assembly.
type NoRequirements struct{}

// VerifyRequirements always returns true.
func (NoRequirements) VerifyRequirements(View) bool {
	return true
}

// implementedStages returns the stages s has a hook for.
func implementedStages[E Event, A any](s System[E, A]) LoopStageFlag {
	var f LoopStageFlag
	if _, ok := s.(EventHandler[E, A]); ok {
		f |= StageHandleEvent
	}
	if _, ok := s.(Updater[E, A]); ok {
		f |= StageUpdate
	}
	if _, ok := s.(DynamicUpdater[E, A]); ok {
		f |= StageDynamicUpdate
	}
	if _, ok := s.(Renderer[E, A]); ok {
		f |= StageRender
	}
	return f
}

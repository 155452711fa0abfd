package kumiki

import (
	"fmt"
	"time"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// World owns an Assembly, the registered systems, an auxiliary context value
// and the event queue, and runs the per-frame protocol over them.
//
// The Assembly is embedded, so entity and component operations can be called
// on the World directly, and a *World can be passed wherever a Viewer is
// expected. Write functions take the embedded pointer: W1(w.Assembly, fn).
//
// A World is driven from a single goroutine.
type World[E EventType[E], A any] struct {
	*Assembly

	// Aux is threaded through every system hook. World never looks inside it.
	Aux A

	systems            []systemEntry[E, A]
	queue              []E
	spare              []E
	renderingSuspended bool
	maxDepth           int
	depth              int
	dropped            int
	logger             zerolog.Logger
}

type systemEntry[E Event, A any] struct {
	sys      System[E, A]
	name     string
	stages   LoopStageFlag // implemented hooks
	handler  EventHandler[E, A]
	updater  Updater[E, A]
	dynamic  DynamicUpdater[E, A]
	renderer Renderer[E, A]
}

// subscribes reports whether the entry currently takes part in stage, and
// panics if it subscribes without a hook.
func (s *systemEntry[E, A]) subscribes(stage LoopStage) bool {
	if !stage.MatchFilter(s.sys.LoopStageFilter()) {
		return false
	}
	if !stage.MatchFilter(s.stages) {
		panic(eris.Wrapf(ErrUnimplementedStage, "system %s subscribes to %s", s.name, stage))
	}
	return true
}

// NewWorld creates a World with an empty Assembly.
//
// Parameters:
//   - aux: The auxiliary context handed to every system hook.
//   - opts: Optional settings such as WithLogger and WithMaxDispatchDepth.
//
// Returns:
//   - A pointer to the newly created World.
func NewWorld[E EventType[E], A any](aux A, opts ...WorldOption) *World[E, A] {
	cfg := defaultWorldConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &World[E, A]{
		Assembly: NewAssembly(),
		Aux:      aux,
		queue:    make([]E, 0, cfg.queueCapacity),
		spare:    make([]E, 0, cfg.queueCapacity),
		maxDepth: cfg.maxDepth,
		logger:   cfg.logger,
	}
}

// AddSystem registers s after the systems already present. Registration order
// is dispatch order.
//
// Returns:
//   - ErrUnsatisfiedRequirements if s rejects the current Assembly.
//   - ErrUnimplementedStage if s subscribes to a stage it has no hook for.
func (w *World[E, A]) AddSystem(s System[E, A]) error {
	name := fmt.Sprintf("%T", s)
	if !s.VerifyRequirements(w.View()) {
		return eris.Wrapf(ErrUnsatisfiedRequirements, "system %s", name)
	}
	entry := systemEntry[E, A]{sys: s, name: name, stages: implementedStages[E, A](s)}
	if missing := s.LoopStageFilter() & knownStages &^ entry.stages; missing != NoStages {
		return eris.Wrapf(ErrUnimplementedStage, "system %s subscribes to %s", name, missing)
	}
	entry.handler, _ = s.(EventHandler[E, A])
	entry.updater, _ = s.(Updater[E, A])
	entry.dynamic, _ = s.(DynamicUpdater[E, A])
	entry.renderer, _ = s.(Renderer[E, A])
	w.systems = append(w.systems, entry)
	w.logger.Debug().
		Str("system", name).
		Stringer("stages", s.LoopStageFilter()).
		Int("index", len(w.systems)-1).
		Msg("system registered")
	return nil
}

// SystemCount returns the number of registered systems.
func (w *World[E, A]) SystemCount() int {
	return len(w.systems)
}

// Dispatch appends event to the back of the queue. It is processed by the next
// HandleEvents call.
func (w *World[E, A]) Dispatch(event E) {
	w.queue = append(w.queue, event)
}

// QueueLen returns the number of queued events.
func (w *World[E, A]) QueueLen() int {
	return len(w.queue)
}

// DroppedEvents returns how many events the dispatch depth limit has dropped.
func (w *World[E, A]) DroppedEvents() int {
	return w.dropped
}

// SuspendRendering turns the Render stage off or back on.
func (w *World[E, A]) SuspendRendering(suspended bool) {
	w.renderingSuspended = suspended
}

// RenderingSuspended reports whether the Render stage is off.
func (w *World[E, A]) RenderingSuspended() bool {
	return w.renderingSuspended
}

// HandleEvents takes every event queued so far and dispatches each in FIFO
// order. Events queued while it runs wait for the next call.
//
// A Shutdown event is dispatched to its subscribers, followed by an
// ImmediateShutdown event which is dispatched as well and also queued. When
// HandleEvents dequeues an ImmediateShutdown it stops at once, discarding the
// rest of the batch. A Shutdown therefore ends the loop on the following
// call.
//
// Returns:
//   - false once an ImmediateShutdown has been dequeued, true otherwise.
func (w *World[E, A]) HandleEvents() bool {
	events := w.queue
	w.queue = w.spare[:0]
	defer w.recycle(events)

	for _, event := range events {
		core, ok := event.Core()
		switch {
		case ok && core == CoreImmediateShutdown:
			w.logger.Debug().Msg("immediate shutdown, stopping the loop")
			return false
		case ok && core == CoreShutdown:
			w.dispatchImmediate(event)
			stop := w.fromCore(CoreImmediateShutdown)
			w.dispatchImmediate(stop)
			w.Dispatch(stop)
		default:
			w.dispatchImmediate(event)
		}
	}
	return true
}

func (w *World[E, A]) recycle(events []E) {
	clear(events)
	w.spare = events[:0]
}

// Update runs the Update hook of every subscribed system in registration
// order. Once every system has run, the immediate events they returned are
// dispatched in production order, then the deferred ones are queued.
func (w *World[E, A]) Update(t, dt time.Duration) {
	var immediate, deferred []E
	for i := range w.systems {
		s := &w.systems[i]
		if !s.subscribes(UpdateStage) {
			continue
		}
		im, de := s.updater.Update(w.Assembly, &w.Aux, t, dt)
		immediate = append(immediate, im...)
		deferred = append(deferred, de...)
	}
	w.flush(immediate, deferred)
}

// DynamicUpdate is Update for the variable-rate stage.
func (w *World[E, A]) DynamicUpdate(t, dt time.Duration) {
	var immediate, deferred []E
	for i := range w.systems {
		s := &w.systems[i]
		if !s.subscribes(DynamicUpdateStage) {
			continue
		}
		im, de := s.dynamic.DynamicUpdate(w.Assembly, &w.Aux, t, dt)
		immediate = append(immediate, im...)
		deferred = append(deferred, de...)
	}
	w.flush(immediate, deferred)
}

// Render runs the Render hook of every subscribed system unless rendering is
// suspended. Events returned by renderers are queued.
func (w *World[E, A]) Render(t, dt time.Duration) {
	if w.renderingSuspended {
		return
	}
	v := w.View()
	for i := range w.systems {
		s := &w.systems[i]
		if !s.subscribes(RenderStage) {
			continue
		}
		w.queue = append(w.queue, s.renderer.Render(v, &w.Aux, t, dt)...)
	}
}

// dispatchImmediate hands event to every subscribed handler, then recursively
// dispatches the immediate events they returned before queueing the deferred
// ones.
func (w *World[E, A]) dispatchImmediate(event E) {
	if w.maxDepth > 0 && w.depth >= w.maxDepth {
		w.dropped++
		w.logEvent(w.logger.Error(), event).
			Int("depth", w.depth).
			Msg("dispatch depth limit reached, event dropped")
		return
	}
	w.depth++
	defer func() { w.depth-- }()

	flag := event.Flag()
	var immediate, deferred []E
	for i := range w.systems {
		s := &w.systems[i]
		if !s.subscribes(HandleEventStage) || !s.handler.EventFilter().Contains(flag) {
			continue
		}
		im, de := s.handler.HandleEvent(w.Assembly, &w.Aux, event)
		immediate = append(immediate, im...)
		deferred = append(deferred, de...)
	}
	w.flush(immediate, deferred)
}

func (w *World[E, A]) flush(immediate, deferred []E) {
	for _, event := range immediate {
		w.dispatchImmediate(event)
	}
	w.queue = append(w.queue, deferred...)
}

func (w *World[E, A]) fromCore(c CoreEvent) E {
	var zero E
	return zero.FromCore(c)
}

func (w *World[E, A]) logEvent(e *zerolog.Event, event E) *zerolog.Event {
	if m, ok := any(event).(zerolog.LogObjectMarshaler); ok {
		return e.Object("event", m)
	}
	return e.Stringer("flag", event.Flag())
}

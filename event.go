package kumiki

// CoreEvent is the reduced event set that World itself understands. Every
// concrete event type can represent all three.
type CoreEvent uint8

const (
	// CoreReady is dispatched once the engine has finished its setup.
	CoreReady CoreEvent = iota + 1
	// CoreShutdown asks every system to wind down. World follows it with a
	// CoreImmediateShutdown.
	CoreShutdown
	// CoreImmediateShutdown stops the loop the moment HandleEvents dequeues it.
	CoreImmediateShutdown
)

func (c CoreEvent) String() string {
	switch c {
	case CoreReady:
		return "Ready"
	case CoreShutdown:
		return "Shutdown"
	case CoreImmediateShutdown:
		return "ImmediateShutdown"
	}
	return "CoreEvent(?)"
}

// Event is the read side of an event: its filter bit and its projection onto
// the core event set.
type Event interface {
	// Flag returns the single bit identifying the variant of the event. The
	// mapping must be stable.
	Flag() EventFlag
	// Core projects the event onto the core set. The boolean is false for
	// variants outside it.
	Core() (CoreEvent, bool)
}

// EventType is the constraint World places on its event type. FromCore is the
// injection from the core set and must accept all three core events; World
// calls it on the zero value of E.
type EventType[E any] interface {
	Event
	FromCore(c CoreEvent) E
}

// MatchFilter reports whether the bit of e is contained in filter.
func MatchFilter(e Event, filter EventFlag) bool {
	return filter.Contains(e.Flag())
}

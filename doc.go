// Package kumiki is a small Entity-Component-System core for real-time
// simulations.
//
// An Assembly stores entities and their components and answers typed queries
// over them. A World owns an Assembly together with an ordered list of
// systems, an auxiliary context value and a FIFO event queue, and drives the
// per-frame protocol: events are handled, systems update at a fixed rate and
// optionally at a variable rate, then systems render from a read-only View.
//
// Systems communicate through events. An event returned as immediate is
// dispatched, together with everything it triggers, before control returns to
// the frame loop; a deferred event is queued for the next HandleEvents call.
//
// Queries come in generated arity families: R1..R5 return every match, RF
// variants take a predicate, RS and RSF require exactly one match, and Count
// returns the size of the match set. Mutable queries (W1, WF1, WS1, WSF1)
// exist for a single component type only.
package kumiki

//go:generate go run ./cmd/generate

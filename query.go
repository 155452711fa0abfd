package kumiki

import (
	"reflect"

	"github.com/rotisserie/eris"
)

// Row1 is one match of a single-component query: the matched entity and a
// copy of its component.
type Row1[T1 any] struct {
	Entity Entity
	C1     T1
}

// Get returns the matched component.
func (r Row1[T1]) Get() T1 {
	return r.C1
}

// R1 returns every entity that has a component of type T1, in ascending
// entity order. The components are copies taken under a read borrow.
//
// Parameters:
//   - v: The Assembly (or View, or World) to query.
//
// Returns:
//   - One Row1 per match. nil if nothing matched.
func R1[T1 any](v Viewer) []Row1[T1] {
	return RF1[T1](v, nil)
}

// RF1 is R1 restricted to the rows accepted by pred. A nil pred accepts every
// row. pred runs under the read borrow, so it may call other read queries but
// must not mutate the Assembly.
func RF1[T1 any](v Viewer, pred func(Row1[T1]) bool) []Row1[T1] {
	a := v.View().assembly()
	a.borrow.acquireRead("RF1")
	defer a.borrow.releaseRead()
	t1 := reflect.TypeFor[T1]()
	var rows []Row1[T1]
	for _, e := range a.order {
		s1 := a.groups[e].lookup(t1)
		if s1 == nil {
			continue
		}
		row := Row1[T1]{Entity: e, C1: *slotOf[T1](s1)}
		if pred != nil && !pred(row) {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// RS1 returns the only entity that has a component of type T1. It fails with
// ErrComponentNotFound when there is none and ErrMultipleComponentsFound when
// there are several.
func RS1[T1 any](v Viewer) (Row1[T1], error) {
	return single(R1[T1](v), reflect.TypeFor[T1]())
}

// RSF1 is RS1 over the rows accepted by pred.
func RSF1[T1 any](v Viewer, pred func(Row1[T1]) bool) (Row1[T1], error) {
	return single(RF1(v, pred), reflect.TypeFor[T1]())
}

// Count1 returns the number of entities that have a component of type T1.
func Count1[T1 any](v Viewer) int {
	a := v.View().assembly()
	a.borrow.acquireRead("Count1")
	defer a.borrow.releaseRead()
	t1 := reflect.TypeFor[T1]()
	n := 0
	for _, e := range a.order {
		if a.groups[e].lookup(t1) != nil {
			n++
		}
	}
	return n
}

// W1 calls fn with a pointer to the T1 component of every entity that has
// one, in ascending entity order, and returns the number of calls. The
// Assembly is write-borrowed for the whole pass: fn must not query or modify
// it, and must not retain the pointer.
//
// Mutable queries stop at one component type. Systems that need to update
// several components of the same entity read them first and write them back
// one type at a time.
func W1[T1 any](a *Assembly, fn func(Entity, *T1)) int {
	return WF1(a, nil, fn)
}

// WF1 is W1 restricted to the entities whose component is accepted by pred.
// pred sees a copy and runs before the write borrow is taken.
func WF1[T1 any](a *Assembly, pred func(Row1[T1]) bool, fn func(Entity, *T1)) int {
	targets := writeTargets(a, pred)
	a.borrow.acquireWrite("WF1")
	defer a.borrow.releaseWrite()
	for _, t := range targets {
		fn(t.entity, t.ptr)
	}
	return len(targets)
}

// WS1 calls fn for the only entity that has a component of type T1. fn is not
// called on a cardinality failure.
func WS1[T1 any](a *Assembly, fn func(Entity, *T1)) error {
	return WSF1(a, nil, fn)
}

// WSF1 is WS1 over the entities whose component is accepted by pred.
func WSF1[T1 any](a *Assembly, pred func(Row1[T1]) bool, fn func(Entity, *T1)) error {
	targets := writeTargets(a, pred)
	t, err := single(targets, reflect.TypeFor[T1]())
	if err != nil {
		return err
	}
	a.borrow.acquireWrite("WSF1")
	defer a.borrow.releaseWrite()
	fn(t.entity, t.ptr)
	return nil
}

type writeTarget[T any] struct {
	entity Entity
	ptr    *T
}

func writeTargets[T1 any](a *Assembly, pred func(Row1[T1]) bool) []writeTarget[T1] {
	a.borrow.acquireRead("writeTargets")
	defer a.borrow.releaseRead()
	t1 := reflect.TypeFor[T1]()
	var targets []writeTarget[T1]
	for _, e := range a.order {
		s1 := a.groups[e].lookup(t1)
		if s1 == nil {
			continue
		}
		p := slotOf[T1](s1)
		if pred != nil && !pred(Row1[T1]{Entity: e, C1: *p}) {
			continue
		}
		targets = append(targets, writeTarget[T1]{entity: e, ptr: p})
	}
	return targets
}

// single enforces a cardinality of exactly one.
func single[R any](rows []R, types ...reflect.Type) (R, error) {
	var zero R
	switch len(rows) {
	case 1:
		return rows[0], nil
	case 0:
		return zero, eris.Wrapf(ErrComponentNotFound, "%s", typeList(types...))
	default:
		return zero, eris.Wrapf(ErrMultipleComponentsFound, "%s: %d matches", typeList(types...), len(rows))
	}
}

// checkDistinct panics if a builder names the same component type twice.
func checkDistinct(builder string, types ...reflect.Type) {
	for i := range types {
		for j := i + 1; j < len(types); j++ {
			if types[i] == types[j] {
				panic("kumiki: duplicate component types in " + builder)
			}
		}
	}
}

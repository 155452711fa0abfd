package kumiki

import (
	"reflect"
	"slices"
	"strings"

	"github.com/rotisserie/eris"
)

// Assembly is the entity and component store. It maps every live Entity to
// its ComponentGroup and exposes the typed query functions (R1, RF2, RS3,
// Count4, W1 and friends).
//
// Queries visit entities in ascending identifier order, so the result of a
// query is stable between two calls that are not separated by a structural
// change.
//
// An Assembly is not safe for concurrent use. Within a single goroutine it
// tracks borrows at runtime: reads may overlap each other, a write excludes
// every other access, and structural changes are rejected while any borrow is
// live. Violations panic with ErrBorrowConflict.
//
// The zero value is an empty Assembly ready for use.
type Assembly struct {
	groups map[Entity]*ComponentGroup
	order  []Entity // live entities, ascending
	next   Entity
	borrow borrowState
}

// NewAssembly creates an empty Assembly.
//
// Returns:
//   - A pointer to the newly created Assembly.
func NewAssembly() *Assembly {
	a := &Assembly{}
	a.init()
	return a
}

func (a *Assembly) init() {
	if a.groups == nil {
		a.groups = make(map[Entity]*ComponentGroup)
	}
}

// View returns a read-only window onto a.
func (a *Assembly) View() View {
	return View{a: a}
}

// CreateEntity issues a new entity with an empty ComponentGroup. Identifiers
// are never reused, not even after the entity is destroyed.
//
// Returns:
//   - The new Entity.
func (a *Assembly) CreateEntity() Entity {
	a.borrow.checkFree("CreateEntity")
	a.init()
	a.next++
	e := a.next
	a.groups[e] = NewComponentGroup()
	a.order = append(a.order, e)
	return e
}

// DestroyEntity removes e and hands its ComponentGroup to the caller. An
// unknown entity is not an error; the boolean reports whether e existed.
//
// Parameters:
//   - e: The entity to remove.
//
// Returns:
//   - The removed group, or nil.
//   - true if e was present.
func (a *Assembly) DestroyEntity(e Entity) (*ComponentGroup, bool) {
	a.borrow.checkFree("DestroyEntity")
	g, ok := a.groups[e]
	if !ok {
		return nil, false
	}
	delete(a.groups, e)
	if i, found := slices.BinarySearch(a.order, e); found {
		a.order = slices.Delete(a.order, i, i+1)
	}
	return g, true
}

// HasEntity reports whether e is live.
func (a *Assembly) HasEntity(e Entity) bool {
	_, ok := a.groups[e]
	return ok
}

// EntityCount returns the number of live entities.
func (a *Assembly) EntityCount() int {
	return len(a.groups)
}

// Entities returns every live entity in ascending order. The slice is a copy.
func (a *Assembly) Entities() []Entity {
	return slices.Clone(a.order)
}

// Inspect returns a snapshot of the components of e keyed by type name.
func (a *Assembly) Inspect(e Entity) (map[string]any, error) {
	g, err := a.group(e)
	if err != nil {
		return nil, err
	}
	a.borrow.acquireRead("Inspect")
	defer a.borrow.releaseRead()
	return g.Inspect(), nil
}

func (a *Assembly) group(e Entity) (*ComponentGroup, error) {
	g, ok := a.groups[e]
	if !ok {
		return nil, eris.Wrapf(ErrEntityNotFound, "%s", e)
	}
	return g, nil
}

// AddComponent attaches c to e, replacing any component of the same type.
//
// Parameters:
//   - a: The Assembly that owns e.
//   - e: The target entity.
//   - c: The component value.
//
// Returns:
//   - The replaced component and true, or the zero value and false.
//   - ErrEntityNotFound if e is not live.
func AddComponent[T any](a *Assembly, e Entity, c T) (T, bool, error) {
	a.borrow.checkFree("AddComponent")
	g, err := a.group(e)
	if err != nil {
		var zero T
		return zero, false, err
	}
	prev, replaced := Insert(g, c)
	return prev, replaced, nil
}

// RemoveComponent detaches the component of type T from e and returns it.
func RemoveComponent[T any](a *Assembly, e Entity) (T, bool, error) {
	a.borrow.checkFree("RemoveComponent")
	var zero T
	g, err := a.group(e)
	if err != nil {
		return zero, false, err
	}
	c, ok := Remove[T](g)
	return c, ok, nil
}

// HasComponent reports whether e carries a component of type T.
func HasComponent[T any](v Viewer, e Entity) (bool, error) {
	g, err := v.View().assembly().group(e)
	if err != nil {
		return false, err
	}
	return Has[T](g), nil
}

// BorrowComponent returns a copy of the component of type T attached to e.
//
// Returns:
//   - The component value.
//   - ErrEntityNotFound if e is not live, ErrComponentNotFound if it has no T.
func BorrowComponent[T any](v Viewer, e Entity) (T, error) {
	a := v.View().assembly()
	var zero T
	g, err := a.group(e)
	if err != nil {
		return zero, err
	}
	a.borrow.acquireRead("BorrowComponent")
	defer a.borrow.releaseRead()
	c, err := Borrow[T](g)
	if err != nil {
		return zero, eris.Wrapf(err, "%s", e)
	}
	return c, nil
}

// BorrowComponentMut runs fn with a pointer to the component of type T
// attached to e. The Assembly is write-borrowed while fn runs, so fn must not
// touch a itself. The pointer must not be retained after fn returns.
func BorrowComponentMut[T any](a *Assembly, e Entity, fn func(*T)) error {
	g, err := a.group(e)
	if err != nil {
		return err
	}
	p, err := BorrowMut[T](g)
	if err != nil {
		return eris.Wrapf(err, "%s", e)
	}
	a.borrow.acquireWrite("BorrowComponentMut")
	defer a.borrow.releaseWrite()
	fn(p)
	return nil
}

// typeList renders a set of component types for diagnostics.
func typeList(types ...reflect.Type) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return "[" + strings.Join(names, ", ") + "]"
}

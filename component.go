package kumiki

import (
	"reflect"
	"slices"

	"github.com/rotisserie/eris"
)

// ComponentGroup holds the components of a single entity, at most one per
// component type. Components are keyed by their runtime type, so Position and
// *Position are distinct types with distinct slots.
//
// The zero value is an empty group ready for use. A group obtained from an
// Assembly is owned by that Assembly; a group returned by
// Assembly.DestroyEntity belongs to the caller.
type ComponentGroup struct {
	components map[reflect.Type]any // each value is a *T for its key T
}

// NewComponentGroup returns an empty group.
func NewComponentGroup() *ComponentGroup {
	return &ComponentGroup{components: make(map[reflect.Type]any)}
}

// Len returns the number of components in the group.
func (g *ComponentGroup) Len() int {
	return len(g.components)
}

// TypeNames returns the sorted type names of every component in the group.
func (g *ComponentGroup) TypeNames() []string {
	names := make([]string, 0, len(g.components))
	for t := range g.components {
		names = append(names, t.String())
	}
	slices.Sort(names)
	return names
}

// Inspect returns a snapshot of the group keyed by component type name. The
// values are copies.
func (g *ComponentGroup) Inspect() map[string]any {
	out := make(map[string]any, len(g.components))
	for t, slot := range g.components {
		out[t.String()] = reflect.ValueOf(slot).Elem().Interface()
	}
	return out
}

// Insert stores c in g, replacing any component of the same type. If a
// component was replaced, the previous value is returned along with true.
func Insert[T any](g *ComponentGroup, c T) (T, bool) {
	t := reflect.TypeFor[T]()
	if g.components == nil {
		g.components = make(map[reflect.Type]any)
	}
	if slot, ok := g.components[t]; ok {
		p := slotOf[T](slot)
		prev := *p
		*p = c
		return prev, true
	}
	g.components[t] = &c
	var zero T
	return zero, false
}

// Remove deletes the component of type T and returns it. The boolean is false
// when g had no such component.
func Remove[T any](g *ComponentGroup) (T, bool) {
	t := reflect.TypeFor[T]()
	slot, ok := g.components[t]
	if !ok {
		var zero T
		return zero, false
	}
	delete(g.components, t)
	return *slotOf[T](slot), true
}

// Has reports whether g holds a component of type T.
func Has[T any](g *ComponentGroup) bool {
	_, ok := g.components[reflect.TypeFor[T]()]
	return ok
}

// Borrow returns a copy of the component of type T, or ErrComponentNotFound.
func Borrow[T any](g *ComponentGroup) (T, error) {
	p, err := BorrowMut[T](g)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// BorrowMut returns a pointer to the stored component of type T, or
// ErrComponentNotFound. The pointer stays valid until the component is
// removed or replaced through Remove.
func BorrowMut[T any](g *ComponentGroup) (*T, error) {
	t := reflect.TypeFor[T]()
	slot, ok := g.components[t]
	if !ok {
		return nil, eris.Wrapf(ErrComponentNotFound, "[%s]", t)
	}
	return slotOf[T](slot), nil
}

// lookup returns the stored pointer for t, or nil.
func (g *ComponentGroup) lookup(t reflect.Type) any {
	return g.components[t]
}

// slotOf downcasts a stored slot. A failure means the type index is corrupt.
func slotOf[T any](slot any) *T {
	p, ok := slot.(*T)
	if !ok {
		panic(eris.Errorf("component slot for %s holds %T", reflect.TypeFor[T](), slot))
	}
	return p
}

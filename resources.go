package kumiki

import (
	"reflect"

	"github.com/rotisserie/eris"
)

// Resources is a type-keyed store of singleton values that do not belong in
// the Assembly: loggers, configuration, caches, clients. It holds at most one
// value per type and is the usual auxiliary context of a World.
//
// Values live in a slice indexed through a type map, with a free list so that
// removed slots are reused. The zero value is ready for use.
type Resources struct {
	items   []any
	types   map[reflect.Type]int
	freeIDs []int
}

// NewResources returns an empty store.
func NewResources() *Resources {
	return &Resources{types: make(map[reflect.Type]int)}
}

// Len returns the number of stored resources.
func (r *Resources) Len() int {
	return len(r.types)
}

// Clear removes every resource.
func (r *Resources) Clear() {
	clear(r.items)
	r.items = r.items[:0]
	clear(r.types)
	r.freeIDs = r.freeIDs[:0]
}

func (r *Resources) put(t reflect.Type, res any) {
	if r.types == nil {
		r.types = make(map[reflect.Type]int)
	}
	if id, ok := r.types[t]; ok {
		r.items[id] = res
		return
	}
	var id int
	if n := len(r.freeIDs); n > 0 {
		id = r.freeIDs[n-1]
		r.freeIDs = r.freeIDs[:n-1]
		r.items[id] = res
	} else {
		r.items = append(r.items, res)
		id = len(r.items) - 1
	}
	r.types[t] = id
}

// AddResource stores res under type T.
//
// Returns:
//   - ErrResourceExists if a T is already stored.
func AddResource[T any](r *Resources, res *T) error {
	t := reflect.TypeFor[T]()
	if _, ok := r.types[t]; ok {
		return eris.Wrapf(ErrResourceExists, "%s", t)
	}
	r.put(t, res)
	return nil
}

// SetResource stores res under type T, replacing any previous T.
func SetResource[T any](r *Resources, res *T) {
	r.put(reflect.TypeFor[T](), res)
}

// GetResource returns the stored T.
func GetResource[T any](r *Resources) (*T, bool) {
	id, ok := r.types[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return r.items[id].(*T), true
}

// MustGetResource returns the stored T and panics if there is none.
func MustGetResource[T any](r *Resources) *T {
	res, ok := GetResource[T](r)
	if !ok {
		panic(eris.Wrapf(ErrResourceNotFound, "%s", reflect.TypeFor[T]()))
	}
	return res
}

// HasResource reports whether a T is stored.
func HasResource[T any](r *Resources) bool {
	_, ok := r.types[reflect.TypeFor[T]()]
	return ok
}

// RemoveResource deletes the stored T, if any, and returns it.
func RemoveResource[T any](r *Resources) (*T, bool) {
	t := reflect.TypeFor[T]()
	id, ok := r.types[t]
	if !ok {
		return nil, false
	}
	res := r.items[id].(*T)
	delete(r.types, t)
	r.items[id] = nil
	r.freeIDs = append(r.freeIDs, id)
	return res, true
}

package kumiki

import "strconv"

// Entity is an opaque identifier for a logical object stored in an Assembly.
// Two entities are the same entity if and only if their numerals are equal.
//
// Identifiers are issued by incrementing a cursor before handing out the new
// value, so the first entity of every Assembly is Entity(1) and NilEntity is
// never issued.
type Entity uint64

// NilEntity is the zero value. It never names a live entity.
const NilEntity Entity = 0

// IsNil reports whether e is the zero value.
func (e Entity) IsNil() bool {
	return e == NilEntity
}

func (e Entity) String() string {
	return "Entity(" + strconv.FormatUint(uint64(e), 10) + ")"
}

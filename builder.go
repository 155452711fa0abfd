package kumiki

// Builder creates entities that start with a single component of type T1.
// Builder2 through Builder5 cover larger component sets.
type Builder[T1 any] struct {
	a *Assembly
}

// NewBuilder creates a Builder for a.
//
// Parameters:
//   - a: The Assembly the entities are created in.
//
// Returns:
//   - A pointer to the newly created Builder[T1].
func NewBuilder[T1 any](a *Assembly) *Builder[T1] {
	return &Builder[T1]{a: a}
}

// NewEntity creates one entity holding c1.
func (b *Builder[T1]) NewEntity(c1 T1) Entity {
	e := b.a.CreateEntity()
	Insert(b.a.groups[e], c1)
	return e
}

// NewEntities creates count entities, each holding a copy of c1.
//
// Parameters:
//   - count: The number of entities to create.
//   - c1: The initial component value.
//
// Returns:
//   - The new entities in creation order.
func (b *Builder[T1]) NewEntities(count int, c1 T1) []Entity {
	entities := make([]Entity, 0, count)
	for range count {
		entities = append(entities, b.NewEntity(c1))
	}
	return entities
}

// Set replaces the component of an existing entity.
func (b *Builder[T1]) Set(e Entity, c1 T1) error {
	_, _, err := AddComponent(b.a, e, c1)
	return err
}

// Get returns a copy of the component of e.
func (b *Builder[T1]) Get(e Entity) (T1, error) {
	return BorrowComponent[T1](b.a, e)
}

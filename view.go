package kumiki

// Viewer is implemented by anything that can hand out a read-only View of an
// Assembly: *Assembly, View and *World. Every read query accepts a Viewer.
type Viewer interface {
	View() View
}

// View is a read-only window onto an Assembly. It offers the read half of the
// Assembly API and is what render hooks receive, so that rendering cannot
// mutate simulation state.
//
// The zero View reads as an empty Assembly.
type View struct {
	a *Assembly
}

func (v View) assembly() *Assembly {
	if v.a == nil {
		return &Assembly{}
	}
	return v.a
}

// View returns v itself.
func (v View) View() View {
	return v
}

// HasEntity reports whether e is live.
func (v View) HasEntity(e Entity) bool {
	return v.assembly().HasEntity(e)
}

// EntityCount returns the number of live entities.
func (v View) EntityCount() int {
	return v.assembly().EntityCount()
}

// Entities returns every live entity in ascending order.
func (v View) Entities() []Entity {
	return v.assembly().Entities()
}

// Inspect returns a snapshot of the components of e keyed by type name.
func (v View) Inspect(e Entity) (map[string]any, error) {
	return v.assembly().Inspect(e)
}

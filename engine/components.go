package engine

// Description names an entity for the debug tools.
type Description struct {
	Name string
}

// Position is a point in world space.
type Position struct {
	X, Y, Z float32
}

// Cursor tracks the pointer position and the state of each mouse button.
type Cursor struct {
	Position Point
	Buttons  [numButtons]ButtonState
}

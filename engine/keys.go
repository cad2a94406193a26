package engine

// Normalized key names, matching lower-cased browser key values
const (
	KeyA          = "a"
	KeyD          = "d"
	KeyW          = "w"
	KeyS          = "s"
	KeyArrowLeft  = "arrowleft"
	KeyArrowRight = "arrowright"
	KeyArrowUp    = "arrowup"
	KeyArrowDown  = "arrowdown"
)

// Keys is the set of keys currently held down, keyed by normalized name.
// The engine only reads it; an input collaborator keeps it up to date.
type Keys map[string]bool

// Left reports whether a steer-left key is held
func (k Keys) Left() bool {
	return k[KeyA] || k[KeyArrowLeft]
}

// Right reports whether a steer-right key is held
func (k Keys) Right() bool {
	return k[KeyD] || k[KeyArrowRight]
}

// Up reports whether a move-up key is held
func (k Keys) Up() bool {
	return k[KeyW] || k[KeyArrowUp]
}

// Down reports whether a move-down key is held
func (k Keys) Down() bool {
	return k[KeyS] || k[KeyArrowDown]
}

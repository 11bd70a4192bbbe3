package input

// Edge turns a held button into a one-tick press event.
type Edge struct {
	held bool
}

// Update reports whether down transitioned from released to pressed.
func (e *Edge) Update(down bool) bool {
	pressed := down && !e.held
	e.held = down
	return pressed
}

// Reset forgets the previous button state.
func (e *Edge) Reset() {
	e.held = false
}

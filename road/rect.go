package road

// Rect is an axis-aligned box in playfield coordinates (y grows downward)
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// CenterY returns the vertical center
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// Intersects reports whether the two boxes share any interior area
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && r.Right() > other.X &&
		r.Y < other.Bottom() && r.Bottom() > other.Y
}

// Inset shrinks the box by pad on every side
func (r Rect) Inset(pad float64) Rect {
	return Rect{X: r.X + pad, Y: r.Y + pad, W: r.W - 2*pad, H: r.H - 2*pad}
}

// OverlapsPadded tests overlap after shrinking both boxes by pad. Boxes that
// overlap by no more than 2*pad along either axis do not count.
func (r Rect) OverlapsPadded(other Rect, pad float64) bool {
	return r.Inset(pad).Intersects(other.Inset(pad))
}

package pong

import "image/color"

// Ball is the ball bouncing inside the window
type Ball struct {
	Position Vector      `json:"position"`
	Velocity Vector      `json:"velocity"`
	Radius   int         `json:"radius"`
	Color    color.Color `json:"-"`
	// Bounds is the size of the area the ball bounces in
	Bounds Vector `json:"-"`
}

// Move advances the ball by one tick. An axis whose coordinate leaves
// [Radius, Bounds-Radius] has its velocity component negated; the position
// itself is not clamped.
func (b *Ball) Move() {
	b.Position = b.Position.Add(b.Velocity)

	if b.Position.X < b.Radius || b.Position.X > b.Bounds.X-b.Radius {
		b.Velocity.X = -b.Velocity.X
	}
	if b.Position.Y < b.Radius || b.Position.Y > b.Bounds.Y-b.Radius {
		b.Velocity.Y = -b.Velocity.Y
	}
}

// Draw renders the ball as a filled circle
func (b *Ball) Draw(s Surface) {
	s.FillCircle(b.Position, b.Radius, b.Color)
}

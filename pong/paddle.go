package pong

import (
	"image"
	"image/color"
)

// Paddle is a player's vertical bat. Only its Y coordinate ever changes.
type Paddle struct {
	Position Vector      `json:"position"`
	Score    int         `json:"score"`
	Speed    int         `json:"-"`
	Width    int         `json:"width"`
	Height   int         `json:"height"`
	Color    color.Color `json:"-"`
	Up       Key         `json:"-"`
	Down     Key         `json:"-"`
	// MaxY is the largest Y that keeps the paddle inside the window
	MaxY int `json:"-"`
}

// Rect returns the paddle's rectangle
func (p *Paddle) Rect() image.Rectangle {
	return image.Rect(p.Position.X, p.Position.Y, p.Position.X+p.Width, p.Position.Y+p.Height)
}

// Contains reports whether pt lies inside the paddle. The right and bottom
// edges are exclusive.
func (p *Paddle) Contains(pt Vector) bool {
	return pt.Point().In(p.Rect())
}

// Update moves the paddle one step for each of its keys currently held,
// skipping any step that would leave [0, MaxY]
func (p *Paddle) Update(in Input) {
	if in.Held(p.Down) && p.Position.Y+p.Speed <= p.MaxY {
		p.Position.Y += p.Speed
	}
	if in.Held(p.Up) && p.Position.Y-p.Speed >= 0 {
		p.Position.Y -= p.Speed
	}
}

// Draw renders the paddle as a filled rectangle
func (p *Paddle) Draw(s Surface) {
	s.FillRect(p.Rect(), p.Color)
}

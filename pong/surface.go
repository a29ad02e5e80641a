package pong

import (
	"image"
	"image/color"
)

// Surface is the drawable area a frame is rendered onto
type Surface interface {
	// Size returns the logical width and height in pixels
	Size() (width, height int)
	Fill(c color.Color)
	FillCircle(center Vector, radius int, c color.Color)
	FillRect(r image.Rectangle, c color.Color)
	// DrawText renders s with its top-left corner at topLeft
	DrawText(s string, topLeft Vector, c color.Color)
	// TextWidth returns the rendered width of s in pixels
	TextWidth(s string) int
}

// Key identifies one of the paddle controls
type Key byte

const (
	KeyLeftDown Key = iota
	KeyLeftUp
	KeyRightDown
	KeyRightUp
)

func (k Key) String() string {
	switch k {
	case KeyLeftDown:
		return "left-down"
	case KeyLeftUp:
		return "left-up"
	case KeyRightDown:
		return "right-down"
	case KeyRightUp:
		return "right-up"
	}
	return "unknown"
}

// Input is polled once per frame
type Input interface {
	// CloseRequested reports whether the player asked to quit since the
	// last poll
	CloseRequested() bool
	// Held reports whether k is held down right now
	Held(k Key) bool
}

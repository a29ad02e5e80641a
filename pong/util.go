package pong

import (
	"image"
	"image/color"
)

// Vector is a pair of integer components in the 2-D plane, used both for
// positions and for per-tick velocities
type Vector struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the component-wise sum of v and o
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Point converts v into an image.Point
func (v Vector) Point() image.Point {
	return image.Point{X: v.X, Y: v.Y}
}

// GameState is an enum that represents all possible game states
type GameState byte

const (
	PlayState GameState = iota
	GameOverState
)

func (s GameState) String() string {
	switch s {
	case PlayState:
		return "running"
	case GameOverState:
		return "stopped"
	}
	return "unknown"
}

// MarshalText lets snapshots carry the state by name
func (s GameState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

var (
	BgColor  color.Color = color.Black
	ObjColor color.Color = color.White
)

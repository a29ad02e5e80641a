package spectate

import (
	"image"
	"image/color"

	"github.com/jtestard/classic-pong/pong"
)

type idle struct{}

func (idle) CloseRequested() bool { return false }
func (idle) Held(pong.Key) bool { return false }

type nopSurface struct{}

func (nopSurface) Size() (int, int) { return pong.WindowWidth, pong.WindowHeight }
func (nopSurface) Fill(color.Color) {}
func (nopSurface) FillCircle(pong.Vector, int, color.Color) {}
func (nopSurface) FillRect(image.Rectangle, color.Color) {}
func (nopSurface) DrawText(string, pong.Vector, color.Color) {}
func (nopSurface) TextWidth(string) int { return 0 }

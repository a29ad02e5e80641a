// Package terminal plays the game inside a terminal. The 500x400 playfield
// is mapped onto 50x20 character cells.
package terminal

import (
	"image"
	"image/color"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/jtestard/classic-pong/pong"
)

const (
	cellWidth  = 10
	cellHeight = 20

	ballRune  = '●'
	blockRune = '█'
)

// Columns and Rows are the cell dimensions of the playfield
const (
	Columns = pong.WindowWidth / cellWidth
	Rows    = pong.WindowHeight / cellHeight
)

// Surface draws the playfield into tcell cells
type Surface struct {
	screen tcell.Screen
	bg     tcell.Color
}

// NewSurface creates a surface drawing onto screen
func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{screen: screen, bg: tcell.ColorBlack}
}

func toColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func (s *Surface) style(c color.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(toColor(c)).Background(s.bg)
}

// Size returns the logical size, not the cell count
func (s *Surface) Size() (int, int) {
	return pong.WindowWidth, pong.WindowHeight
}

func (s *Surface) Fill(c color.Color) {
	s.bg = toColor(c)
	s.screen.Fill(' ', tcell.StyleDefault.Background(s.bg))
}

// FillRect fills every cell the rectangle touches
func (s *Surface) FillRect(r image.Rectangle, c color.Color) {
	if r.Empty() {
		return
	}
	st := s.style(c)
	for y := r.Min.Y / cellHeight; y <= (r.Max.Y-1)/cellHeight; y++ {
		for x := r.Min.X / cellWidth; x <= (r.Max.X-1)/cellWidth; x++ {
			s.screen.SetContent(x, y, blockRune, nil, st)
		}
	}
}

// FillCircle marks the cell holding the center; the ball is smaller than a
// cell
func (s *Surface) FillCircle(center pong.Vector, radius int, c color.Color) {
	s.screen.SetContent(center.X/cellWidth, center.Y/cellHeight, ballRune, nil, s.style(c))
}

func (s *Surface) DrawText(str string, topLeft pong.Vector, c color.Color) {
	st := s.style(c)
	x, y := topLeft.X/cellWidth, topLeft.Y/cellHeight
	for _, r := range str {
		s.screen.SetContent(x, y, r, nil, st)
		x++
	}
}

func (s *Surface) TextWidth(str string) int {
	return utf8.RuneCountInString(str) * cellWidth
}

package pong

import (
	"image"
	"image/color"
)

// fakeInput holds a fixed set of keys and an optional close request
type fakeInput struct {
	held  map[Key]bool
	close bool
}

func (f *fakeInput) CloseRequested() bool { return f.close }
func (f *fakeInput) Held(k Key) bool { return f.held[k] }

func holding(keys ...Key) *fakeInput {
	in := &fakeInput{held: map[Key]bool{}}
	for _, k := range keys {
		in.held[k] = true
	}
	return in
}

type textCall struct {
	s  string
	at Vector
}

// recordingSurface records draw calls; every glyph is 20px wide
type recordingSurface struct {
	fills   int
	circles []Vector
	rects   []image.Rectangle
	texts   []textCall
}

func (r *recordingSurface) Size() (int, int) { return WindowWidth, WindowHeight }
func (r *recordingSurface) Fill(color.Color) { r.fills++ }
func (r *recordingSurface) TextWidth(s string) int { return 20 * len(s) }

func (r *recordingSurface) FillCircle(center Vector, radius int, c color.Color) {
	r.circles = append(r.circles, center)
}

func (r *recordingSurface) FillRect(rect image.Rectangle, c color.Color) {
	r.rects = append(r.rects, rect)
}

func (r *recordingSurface) DrawText(s string, at Vector, c color.Color) {
	r.texts = append(r.texts, textCall{s: s, at: at})
}

package terminal

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/jtestard/classic-pong/pong"
)

// Keys maps the rune of each paddle control
var Keys = map[rune]pong.Key{
	'a': pong.KeyLeftDown,
	'q': pong.KeyLeftUp,
	'l': pong.KeyRightDown,
	'p': pong.KeyRightUp,
}

// holdWindow is how long a press keeps its key held. It spans a few
// auto-repeat intervals so a held key moves the paddle every frame.
const holdWindow = 100 * time.Millisecond

// Input collects key presses between frames. Terminals report presses and
// auto-repeats but never releases, so a key counts as held until holdWindow
// after its latest press.
type Input struct {
	deadlines map[pong.Key]time.Time
	now       time.Time
	close     bool
}

// NewInput creates an input with nothing pressed
func NewInput() *Input {
	return &Input{deadlines: make(map[pong.Key]time.Time)}
}

func (in *Input) handle(ev tcell.Event) {
	if ev, ok := ev.(*tcell.EventKey); ok {
		in.press(ev.Key(), ev.Rune(), ev.When())
	}
}

func (in *Input) press(key tcell.Key, r rune, at time.Time) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		in.close = true
	case tcell.KeyRune:
		if k, ok := Keys[unicode.ToLower(r)]; ok {
			in.deadlines[k] = at.Add(holdWindow)
		}
	}
}

// advance sets the time the next frame samples keys at and drops expired
// presses
func (in *Input) advance(now time.Time) {
	in.now = now
	for k, deadline := range in.deadlines {
		if !now.Before(deadline) {
			delete(in.deadlines, k)
		}
	}
}

func (in *Input) CloseRequested() bool {
	return in.close
}

func (in *Input) Held(k pong.Key) bool {
	deadline, ok := in.deadlines[k]
	return ok && in.now.Before(deadline)
}

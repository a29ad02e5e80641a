package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jtestard/classic-pong/pong"
)

// Runner drives a game at pong.FPS on a tcell screen
type Runner struct {
	screen  tcell.Screen
	input   *Input
	surface *Surface

	// OnFrame, if set, is called after every frame
	OnFrame func()
}

// Open initializes the terminal and returns a runner drawing on it
func Open() (*Runner, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal screen: %w", err)
	}
	return NewRunner(screen), nil
}

// NewRunner creates a runner on an initialized screen
func NewRunner(screen tcell.Screen) *Runner {
	screen.HideCursor()
	return &Runner{
		screen:  screen,
		input:   NewInput(),
		surface: NewSurface(screen),
	}
}

// Run plays g until it is closed
func (r *Runner) Run(g *pong.Game) {
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pump(r.screen, events, done)

	ticker := time.NewTicker(time.Second / pong.FPS)
	defer ticker.Stop()

	for !g.Closed() {
		r.drain(events)
		r.input.advance(time.Now())
		g.Frame(r.input, r.surface)
		r.screen.Show()
		if r.OnFrame != nil {
			r.OnFrame()
		}
		<-ticker.C
	}
}

// pump forwards screen events until the screen is finalized or done is
// closed
func pump(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func (r *Runner) drain(events <-chan tcell.Event) {
	for {
		select {
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				r.screen.Sync()
				continue
			}
			r.input.handle(ev)
		default:
			return
		}
	}
}

// Close restores the terminal
func (r *Runner) Close() {
	r.screen.Fini()
}

package sound

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/jtestard/classic-pong/pong"
)

const (
	sampleRate = beep.SampleRate(44100)
	volume     = 0.3
)

type tone struct {
	freq   float64
	length time.Duration
}

var tones = map[pong.Event]tone{
	pong.EventWallBounce: {freq: 440, length: 30 * time.Millisecond},
	pong.EventPaddleHit:  {freq: 880, length: 50 * time.Millisecond},
	pong.EventPoint:      {freq: 220, length: 200 * time.Millisecond},
	pong.EventGameOver:   {freq: 110, length: 600 * time.Millisecond},
}

// Player beeps on game events
type Player struct {
	mu          sync.Mutex
	initialized bool
}

// NewPlayer creates a player; Init must succeed before anything is heard
func NewPlayer() *Player {
	return &Player{}
}

// Init opens the audio device
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	p.initialized = true
	return nil
}

// Close releases the audio device
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Close()
	p.initialized = false
}

// Notify plays the tone for e. It is meant to be registered with
// pong.Game.AddListener.
func (p *Player) Notify(e pong.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	if s := streamerFor(e); s != nil {
		speaker.Play(s)
	}
}

// streamerFor builds the finite streamer for e, or nil if e is silent
func streamerFor(e pong.Event) beep.Streamer {
	t, ok := tones[e]
	if !ok {
		return nil
	}
	sine, err := generators.SineTone(sampleRate, t.freq)
	if err != nil {
		return nil
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(t.length), sine),
		Base:     2,
		Volume:   math.Log2(volume),
	}
}

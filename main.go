package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/jtestard/classic-pong/assets"
	"github.com/jtestard/classic-pong/config"
	"github.com/jtestard/classic-pong/pong"
	"github.com/jtestard/classic-pong/screen"
	"github.com/jtestard/classic-pong/sound"
	"github.com/jtestard/classic-pong/spectate"
	"github.com/jtestard/classic-pong/terminal"
)

// errClosed ends RunGame when the player asks to quit
var errClosed = errors.New("game closed")

// Game runs a pong session inside ebiten
type Game struct {
	game    *pong.Game
	surface *screen.Surface
	input   screen.Input
	showTPS bool
	onFrame func()
}

// Update plays one frame. ebiten calls it pong.FPS times per second and
// repeats it to catch up after a slow frame; those repeats are skipped.
func (g *Game) Update(img *ebiten.Image) error {
	if g.game.Closed() {
		return errClosed
	}
	if ebiten.IsDrawingSkipped() {
		return nil
	}

	g.surface.Target(img)
	g.game.Frame(g.input, g.surface)
	if g.showTPS {
		ebitenutil.DebugPrint(img, fmt.Sprintf("TPS: %0.2f", ebiten.CurrentTPS()))
	}
	g.onFrame()

	return nil
}

// Layout sets the screen layout
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return pong.WindowWidth, pong.WindowHeight
}

func runWindow(g *pong.Game, cfg *config.Config, onFrame func()) error {
	face, err := assets.NewScoreFace()
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(int(pong.WindowWidth*cfg.Scale), int(pong.WindowHeight*cfg.Scale))
	ebiten.SetWindowTitle("Pong")
	ebiten.SetMaxTPS(pong.FPS)

	err = ebiten.RunGame(&Game{
		game:    g,
		surface: screen.NewSurface(face),
		showTPS: cfg.ShowTPS,
		onFrame: onFrame,
	})
	if err != nil && !errors.Is(err, errClosed) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

func runTerminal(g *pong.Game, onFrame func()) error {
	r, err := terminal.Open()
	if err != nil {
		return err
	}
	defer r.Close()

	r.OnFrame = onFrame
	r.Run(g)
	return nil
}

func run(cfg *config.Config) error {
	fmt.Println("bootstraping new game...")
	g := pong.NewGame()

	if cfg.Sound {
		player := sound.NewPlayer()
		if err := player.Init(); err != nil {
			// Non-fatal, game can run without sound
			log.Printf("sound disabled: %v", err)
		} else {
			defer player.Close()
			g.AddListener(player.Notify)
		}
	}

	onFrame := func() {}
	if cfg.SpectateAddr != "" {
		hub := spectate.NewHub()
		fmt.Println("starting spectator feed on", cfg.SpectateAddr)
		go func() {
			if err := hub.ListenAndServe(cfg.SpectateAddr); err != nil {
				log.Printf("spectating disabled: %v", err)
			}
		}()
		onFrame = func() { hub.Publish(g.Snapshot()) }
	}

	fmt.Println("starting the game...")
	if cfg.Backend == config.BackendTerminal {
		return runTerminal(g, onFrame)
	}
	return runWindow(g, cfg, onFrame)
}

func main() {
	if err := run(config.Load()); err != nil {
		log.Printf("pong: %v", err)
		os.Exit(1)
	}
}

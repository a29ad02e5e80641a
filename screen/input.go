package screen

import (
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/jtestard/classic-pong/pong"
)

// Keys maps each paddle control to its keyboard key
var Keys = map[pong.Key]ebiten.Key{
	pong.KeyLeftDown:  ebiten.KeyA,
	pong.KeyLeftUp:    ebiten.KeyQ,
	pong.KeyRightDown: ebiten.KeyL,
	pong.KeyRightUp:   ebiten.KeyP,
}

// Input samples the ebiten keyboard state
type Input struct{}

// CloseRequested reports whether escape went down this tick. Closing the
// window itself is handled by ebiten, which ends RunGame.
func (Input) CloseRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func (Input) Held(k pong.Key) bool {
	key, ok := Keys[k]
	return ok && ebiten.IsKeyPressed(key)
}

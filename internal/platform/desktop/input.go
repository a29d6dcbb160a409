package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// keySource reports keyboard state for the current tick.
type keySource interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// readInput builds the input frame for one tick. Movement follows held
// keys; fire, pause, restart and quit only fire on the press edge.
func readInput(src keySource) core.InputFrame {
	in := core.NewInputFrame()
	if src.Pressed(ebiten.KeyA) || src.Pressed(ebiten.KeyArrowLeft) {
		in.Set(core.ActionMoveLeft)
	}
	if src.Pressed(ebiten.KeyD) || src.Pressed(ebiten.KeyArrowRight) {
		in.Set(core.ActionMoveRight)
	}
	if src.JustPressed(ebiten.KeySpace) {
		in.Set(core.ActionFire)
	}
	if src.JustPressed(ebiten.KeyP) || src.JustPressed(ebiten.KeyEscape) {
		in.Set(core.ActionPause)
	}
	if src.JustPressed(ebiten.KeyR) {
		in.Set(core.ActionRestart)
	}
	if src.JustPressed(ebiten.KeyQ) {
		in.Set(core.ActionQuit)
	}
	return in
}

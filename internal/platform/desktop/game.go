// Package desktop runs invaders in a window with Ebitengine and draws the
// PNG sprite frames loaded by ImageProvider.
package desktop

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
	"github.com/vovakirdan/tui-invaders/internal/logging"
)

// Game adapts an invaders session to ebiten.Game.
type Game struct {
	session *invaders.Game
	keys    keySource
	logger  *log.Logger
	state   core.GameState
}

// NewGame wraps a session that has already been Reset.
func NewGame(session *invaders.Game, logger *log.Logger) *Game {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Game{
		session: session,
		keys:    ebitenKeys{},
		logger:  logger,
	}
}

// Update advances the session by one tick. Ebitengine calls it at the
// configured TPS.
func (g *Game) Update() error {
	in := readInput(g.keys)
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	wasOver := g.state.GameOver
	g.state = g.session.Step(in).State
	switch {
	case g.state.GameOver && !wasOver:
		st := g.session.World().Stats()
		g.logger.Info("game over", "kills", st.Kills, "escaped", st.Escaped, "shots", st.ShotsFired)
	case wasOver && !g.state.GameOver:
		g.logger.Info("restarted")
	}
	return nil
}

// Draw renders the world and a debug HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.session.Draw(imageRenderer{dst: screen})
	ebitenutil.DebugPrint(screen, g.hud())
}

// Layout fixes the logical screen to the play area; Ebitengine scales it
// to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(core.PlayWidth), int(core.PlayHeight)
}

func (g *Game) hud() string {
	text := fmt.Sprintf("HP %d  KILLS %d", g.state.Health, g.state.Score)
	switch {
	case g.state.GameOver:
		text += "\nGAME OVER - press R to restart"
	case g.state.Paused:
		text += "\nPAUSED"
	}
	return text
}

// Run opens the window described by window and blocks until it closes.
func Run(session *invaders.Game, window config.Window, tickRate int, logger *log.Logger) error {
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	if window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
	ebiten.SetFullscreen(window.Fullscreen)
	ebiten.SetTPS(tickRate)

	session.Reset(core.RuntimeConfig{
		ScreenW:  window.Width,
		ScreenH:  window.Height,
		TickRate: tickRate,
	})

	g := NewGame(session, logger)
	g.logger.Info("window opened", "title", window.Title, "width", window.Width, "height", window.Height, "tps", tickRate)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

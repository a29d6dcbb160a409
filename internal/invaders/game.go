package invaders

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Game wraps a World with session concerns shared by every frontend:
// fixed tick timing, pause, game over and restart.
type Game struct {
	sprites Sprites
	policy  CollisionPolicy
	logger  *log.Logger

	world     *World
	config    core.RuntimeConfig
	paused    bool
	gameOver  bool
	tickCount int
}

// NewGame creates a session that builds its worlds from sprites.
func NewGame(sprites Sprites) *Game {
	return &Game{
		sprites: sprites,
		policy:  DefaultCollisionPolicy(),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Invaders"
}

// SetLogger sets the logger handed to every world this session creates.
func (g *Game) SetLogger(l *log.Logger) {
	g.logger = l
	if g.world != nil {
		g.world.SetLogger(l)
	}
}

// SetPolicy sets the collision policy for this and future worlds.
func (g *Game) SetPolicy(p CollisionPolicy) {
	g.policy = p
	if g.world != nil {
		g.world.SetPolicy(p)
	}
}

// Reset initializes or restarts the session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.world = NewWorld(g.sprites)
	g.world.SetLogger(g.logger)
	g.world.SetPolicy(g.policy)
	g.paused = false
	g.gameOver = false
	g.tickCount = 0
}

// World returns the running world. Reset must have been called.
func (g *Game) World() *World {
	return g.world
}

// TickCount returns the number of simulated frames since the last reset.
func (g *Game) TickCount() int {
	return g.tickCount
}

// Step advances the session by one fixed tick of the configured rate.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	return g.Advance(g.config.FrameTime(), in)
}

// Advance advances the session by dt seconds.
func (g *Game) Advance(dt float64, in core.InputFrame) core.StepResult {
	if g.world == nil {
		g.Reset(g.config)
	}

	if g.gameOver {
		if in.Has(core.ActionRestart) {
			g.Reset(g.config)
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.world.Step(dt, in)

	if g.world.Player().CanBeRemoved() {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// Draw renders the world through r.
func (g *Game) Draw(r Renderer) {
	if g.world == nil {
		return
	}
	g.world.Draw(r)
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
	if g.world != nil {
		st.Score = g.world.Stats().Kills
		st.Health = g.world.Player().Health()
	}
	return st
}

package core

// Logical play area. The simulation works in these units regardless of the
// frontend; the terminal frontend scales them down to cells.
const (
	PlayWidth  = 1280.0
	PlayHeight = 720.0
)

// RuntimeConfig contains configuration passed to a game session at initialization.
type RuntimeConfig struct {
	ScreenW  int // Frontend width (cells or pixels)
	ScreenH  int // Frontend height (cells or pixels)
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// FrameTime returns the fixed elapsed time of one tick in seconds.
func (c RuntimeConfig) FrameTime() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game session.
type GameState struct {
	Score    int  // Enemies destroyed
	Health   int  // Player health
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

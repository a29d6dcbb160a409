package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
	"github.com/vovakirdan/tui-invaders/internal/logging"
)

const (
	hudRows  = 1
	helpRows = 1

	// Terminals report key presses and auto-repeats but no releases, so a
	// key counts as held until holdWindow passes without a repeat. Held
	// movement keeps moving; held fire shoots only on the first press.
	holdWindow = 150 * time.Millisecond
)

var (
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	bannerColor = core.ColorBrightYellow
)

// Model is the Bubble Tea model for terminal play.
type Model struct {
	game     *invaders.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	input    core.InputFrame
	held     map[core.Action]time.Time
	fireHeld time.Time
	state    core.GameState
	clock    func() time.Time
	quitting bool
}

// NewModel creates a new Bubble Tea model around a game session.
func NewModel(game *invaders.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = logging.Discard()
	}
	h := help.New()
	h.ShowAll = false

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpRows, hudRows+1)),
		config: cfg,
		logger: logger,
		keys:   DefaultKeyMap(),
		help:   h,
		input:  core.NewInputFrame(),
		held:   make(map[core.Action]time.Time),
		clock:  time.Now,
	}
}

// Init starts the session and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session started", "tick_rate", m.config.TickRate, "cols", m.screen.Width(), "rows", m.screen.Height())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "ticks", m.game.TickCount(), "kills", m.state.Score)
		return m, tea.Quit
	case core.ActionMoveLeft, core.ActionMoveRight:
		m.held[a] = m.clock().Add(holdWindow)
		m.input.Set(a)
	case core.ActionFire:
		now := m.clock()
		if !now.Before(m.fireHeld) {
			m.input.Set(a)
		}
		m.fireHeld = now.Add(holdWindow)
	case core.ActionNone:
	default:
		m.input.Set(a)
	}
	return m, nil
}

// handleResize rescales the character screen. The world keeps its own
// coordinates, so the running session is not reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpRows, hudRows+1))
	return m, nil
}

// handleTick steps the simulation once with the collected input.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for a, until := range m.held {
		if now.Before(until) {
			m.input.Set(a)
		} else {
			delete(m.held, a)
		}
	}

	wasOver := m.state.GameOver
	m.state = m.game.Step(m.input).State
	switch {
	case m.state.GameOver && !wasOver:
		st := m.game.World().Stats()
		m.logger.Info("game over", "kills", st.Kills, "escaped", st.Escaped, "shots", st.ShotsFired)
	case wasOver && !m.state.GameOver:
		m.logger.Info("restarted")
	}

	m.input.Clear()
	return m, tickCmd(m.config.TickRate)
}

// draw renders the world and HUD into the screen buffer.
func (m Model) draw() {
	m.screen.Clear()
	m.game.Draw(newPlayfield(m.screen, hudRows))

	// The HUD row is drawn last so ships entering from above never cover it.
	m.screen.FillRect(core.NewRect(0, 0, m.screen.Width(), hudRows), ' ')
	st := invaders.Stats{}
	if w := m.game.World(); w != nil {
		st = w.Stats()
	}
	hud := fmt.Sprintf(" %s  HP %3d  KILLS %d  ESCAPED %d  SHOTS %d", m.game.Title(), m.state.Health, st.Kills, st.Escaped, st.ShotsFired)
	m.screen.DrawText(0, 0, hud)

	switch {
	case m.state.GameOver:
		m.drawBanner("GAME OVER", fmt.Sprintf("score %d - press r to restart", m.state.Score))
	case m.state.Paused:
		m.drawBanner("PAUSED")
	}
}

// drawBanner draws centered lines inside a cleared box in the middle of the
// play area.
func (m Model) drawBanner(lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := core.NewRect(
		(m.screen.Width()-width)/2-2,
		hudRows+(m.screen.Height()-hudRows-len(lines))/2-1,
		width+4,
		len(lines)+2,
	)
	m.screen.FillRect(box, ' ')
	m.screen.DrawBox(box)
	for i, l := range lines {
		m.screen.DrawTextCentered(box.Y+1+i, l, bannerColor)
	}
}

// saveScreenshot writes the current screen as plain text under ~/.invaders/screenshots.
func (m Model) saveScreenshot() (string, error) {
	m.draw()

	base := config.Dir()
	if base == "" {
		return "", fmt.Errorf("no home directory")
	}
	dir := filepath.Join(base, "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create screenshot directory: %w", err)
	}

	timestamp := m.clock().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("failed to write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for a game session.
func Run(game *invaders.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

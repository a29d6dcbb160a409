// invaders is a space shooter for the terminal and the desktop.
//
// Usage:
//
//	invaders play            - Play in the terminal
//	invaders window          - Play in a desktop window
//	invaders sprites         - Resolve and list sprite sets
//
// Global flags:
//
//	--config <path>      - Config file (default: ~/.invaders/config.yaml)
//	--fps <rate>         - Override tick rate
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
	"github.com/vovakirdan/tui-invaders/internal/logging"
)

var (
	// Global flags
	flagConfig        string
	flagFPS           int
	flagLogLevel      string
	flagLogFile       string
	flagContactDamage bool
	flagDedupHits     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Invaders - shoot down descending enemy ships",
	Long: `Invaders is a small arcade shooter. The same simulation runs in the
terminal or in a desktop window.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  sprites  - Resolve the sprite manifest and list its sets

Examples:
  invaders play
  invaders play --fps 30 --log-file /tmp/invaders.log
  invaders window --config ./configs/invaders.yaml
  invaders sprites --provider image`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level override: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagContactDamage, "contact-damages-player", false, "Ramming an enemy also damages the player")
	rootCmd.PersistentFlags().BoolVar(&flagDedupHits, "dedup-hits", false, "A projectile damages at most one enemy")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(spritesCmd)
}

// app is the configuration and logger shared by every command.
type app struct {
	cfg     config.Config
	logger  *log.Logger
	logFile io.Closer
}

// loadApp resolves config and flags. Without a log file, logs go to
// fallback.
func loadApp(fallback io.Writer) (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}

	a := &app{cfg: cfg}
	w := fallback
	if cfg.Log.File != "" {
		f, err := logging.OpenFile(cfg.Log.File)
		if err != nil {
			return nil, err
		}
		a.logFile = f
		w = f
	}
	a.logger, err = logging.New(w, cfg.Log.Level)
	if err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

// Close releases the log file, if any.
func (a *app) Close() {
	if a.logFile != nil {
		//nolint:errcheck // Best-effort close on exit
		a.logFile.Close()
	}
}

// newSession builds a game session with the collision policy from flags.
func (a *app) newSession(sprites invaders.Sprites) *invaders.Game {
	g := invaders.NewGame(sprites)
	g.SetLogger(a.logger)
	g.SetPolicy(invaders.CollisionPolicy{
		ContactDamagesPlayer: flagContactDamage,
		DedupProjectileHits:  flagDedupHits,
	})
	return g
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/assets"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  A/Left, D/Right  - Move
  Space            - Fire
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot to ~/.invaders/screenshots
  Q/Ctrl+C         - Quit

The terminal owns the screen while playing, so logs are discarded unless
--log-file is set.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	a, err := loadApp(io.Discard)
	if err != nil {
		return err
	}
	defer a.Close()

	manifest, err := assets.LoadManifest(a.cfg.Sprites.Manifest, assets.DefaultGlyphManifest())
	if err != nil {
		return err
	}
	sprites, err := assets.LoadSprites(cmd.Context(), assets.DefaultGlyphProvider(), manifest)
	if err != nil {
		return fmt.Errorf("load sprites: %w", err)
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = a.cfg.TickRate
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	a.logger.Info("sprites loaded", "provider", "glyph", "sets", len(manifest.Sets))
	return tui.Run(a.newSession(sprites), cfg, a.logger)
}

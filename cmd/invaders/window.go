package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/assets"
	"github.com/vovakirdan/tui-invaders/internal/platform/desktop"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play with PNG sprites.

Sprite files are resolved against sprites.dir from the config. The window
size, title and fullscreen mode come from the window section.

Controls:
  A/Left, D/Right  - Move
  Space            - Fire
  P/Esc            - Pause
  R                - Restart (after game over)
  Q                - Quit`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	a, err := loadApp(os.Stderr)
	if err != nil {
		return err
	}
	defer a.Close()

	manifest, err := assets.LoadManifest(a.cfg.Sprites.Manifest, assets.DefaultImageManifest())
	if err != nil {
		return err
	}
	provider := desktop.NewImageProvider(a.cfg.Sprites.Dir)
	sprites, err := assets.LoadSprites(cmd.Context(), provider, manifest)
	if err != nil {
		return fmt.Errorf("load sprites from %s: %w", a.cfg.Sprites.Dir, err)
	}
	a.logger.Info("sprites loaded", "dir", a.cfg.Sprites.Dir, "images", provider.Len())

	return desktop.Run(a.newSession(sprites), a.cfg.Window, a.cfg.TickRate, a.logger)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dots/internal/config"
	"github.com/vovakirdan/tui-dots/internal/core"
	"github.com/vovakirdan/tui-dots/internal/games/dots"
	"github.com/vovakirdan/tui-dots/internal/platform/tui"
	"github.com/vovakirdan/tui-dots/internal/registry"
	"github.com/vovakirdan/tui-dots/internal/storage"
)

var (
	flagPreset string
	flagWidth  int
	flagHeight int
	flagPlayer string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a board",
	Long: `Start a Dots & Boxes board.

Mouse:
  Press on a dot, drag to a neighbour and release to draw a line.
  Releasing away from a dot snaps to the nearest one.

Keyboard:
  Arrows/WASD  - Move the cursor
  Space/Enter  - Grab the dot under the cursor, then drop it on a neighbour
  Esc          - Drop the line without drawing
  +/-          - Grow or shrink the grid
  P            - Pause
  R            - New board (after the board is complete)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Presets:
  small   - 3x3 dots
  normal  - 5x4 dots
  large   - 8x6 dots
  custom  - grid from the config file (default)

Examples:
  dots play
  dots play --preset small
  dots play --width 6 --height 5
  dots play --config ./my-dots.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Grid preset: small, normal, large, custom")
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Dots per row (overrides the preset)")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Dots per column (overrides the preset)")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with finished rounds (default: current user)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return err
	}
	if err := checkGridFlag("width", flagWidth); err != nil {
		return err
	}
	if err := checkGridFlag("height", flagHeight); err != nil {
		return err
	}

	cfg := runtimeConfig()
	cfg.Preset = string(preset)
	cfg.GridW = flagWidth
	cfg.GridH = flagHeight

	player := flagPlayer
	if player == "" {
		player = playerName()
	}

	store := openStore(os.Stderr)
	if store != nil {
		defer store.Close()
	}

	_, err = playBoard(cfg, player, store)
	return err
}

// playBoard runs one board until the player quits or goes back.
func playBoard(cfg core.RuntimeConfig, player string, store *storage.Store) (backToMenu bool, err error) {
	game, err := registry.Create(dots.GameID)
	if err != nil {
		return false, err
	}

	logger, closeLog := fileLogger()
	defer closeLog()

	logger.Info("board started", "preset", cfg.Preset, "player", player)
	return tui.Run(game, store, cfg, tui.GameOptions{
		Player: player,
		Logger: logger,
	})
}

// checkGridFlag rejects grid sizes the board cannot hold. Zero keeps the
// configured size.
func checkGridFlag(name string, v int) error {
	if v == 0 {
		return nil
	}
	if v < config.MinGridSize || v > config.MaxGridSize {
		return fmt.Errorf("--%s must be between %d and %d, got %d",
			name, config.MinGridSize, config.MaxGridSize, v)
	}
	return nil
}

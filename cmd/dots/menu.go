package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dots/internal/games/dots"
	"github.com/vovakirdan/tui-dots/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a grid preset, then play",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a grid, Enter to play it.
Esc on a paused or finished board returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play the grid
  Tab          - Best rounds
  Q            - Quit

Examples:
  dots menu
  dots menu --fps 30
  dots menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with finished rounds (default: current user)")
}

func runMenu(_ *cobra.Command, _ []string) error {
	player := flagPlayer
	if player == "" {
		player = playerName()
	}

	store := openStore(os.Stderr)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(dots.GameID, store, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(dots.GameID, player, store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from scoreboard
		}

		// New labels for each board unless the seed was pinned
		boardCfg := cfg
		boardCfg.Preset = string(menuResult.Preset)
		if flagSeed == 0 {
			boardCfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := playBoard(boardCfg, player, store)
		if err != nil {
			return err
		}
		if !backToMenu {
			return nil
		}
	}
}

// dots is a Dots & Boxes board for the terminal: drag between dots with the
// mouse (or the keyboard) to draw lines and close squares.
//
// Usage:
//
//	dots play              - Play a board
//	dots menu              - Pick a grid preset interactively
//	dots serve             - Start SSH server for remote play
//	dots scores            - Show the best rounds
//	dots presets           - List grid presets
//	dots config init|show  - Write or print the board config
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible square labels
//	--db <path>         - Set database path (default: ~/.dots/scores.db)
//	--config <path>     - Use a board config file instead of the search path
//	--log-level <name>  - debug, info, warn or error
//
// DOTS_DB, DOTS_CONFIG, DOTS_LOG_LEVEL, DOTS_SSH_ADDR, DOTS_HOST_KEY and
// DOTS_IDLE_TIMEOUT set the same values; flags win.
package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dots/internal/config"
	"github.com/vovakirdan/tui-dots/internal/core"
	"github.com/vovakirdan/tui-dots/internal/logging"
	"github.com/vovakirdan/tui-dots/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/tui-dots/internal/games/dots"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	// envCfg holds the DOTS_* environment, read before every command.
	envCfg config.Env
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dots",
	Short: "Dots & Boxes - connect the dots in your terminal",
	Long: `Dots & Boxes draws a grid of dots in your terminal. Press on a dot,
drag to a neighbour and release to draw a line. Every closed square is
filled and labelled. The board is done when every line is drawn.

Available commands:
  play     - Play a board directly
  menu     - Pick a grid preset, then play
  serve    - Start SSH server for remote play
  scores   - View the best rounds
  presets  - List grid presets
  config   - Write or print the board config

Examples:
  dots play
  dots play --preset large
  dots play --width 6 --height 6
  dots menu
  dots serve --ssh :2222
  dots scores`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadEnv,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dots/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a board config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadEnv reads DOTS_* variables into every flag the user did not set.
func loadEnv(cmd *cobra.Command, _ []string) error {
	e, err := config.LoadEnv()
	if err != nil {
		return err
	}
	envCfg = e

	flags := cmd.Flags()
	if !flags.Changed("db") {
		flagDBPath = e.DBPath
	}
	if !flags.Changed("config") && e.ConfigPath != "" {
		flagConfig = e.ConfigPath
	}
	if !flags.Changed("log-level") && e.LogLevel != "" {
		flagLogLevel = e.LogLevel
	}

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	_, err = logging.ParseLevel(flagLogLevel)
	return err
}

// runtimeConfig builds the game config from the global flags and the
// terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	return core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		ConfigPath: flagConfig,
	}
}

// fileLogger logs to ~/.dots/dots.log while a full-screen program owns the
// terminal. The returned close func is never nil.
func fileLogger() (*log.Logger, func()) {
	dir := config.UserDir()
	if dir == "" {
		return logging.Discard(), func() {}
	}

	f, err := logging.OpenFile(filepath.Join(dir, "dots.log"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return logging.Discard(), func() {}
	}

	logger, err := logging.New(f, flagLogLevel, "dots")
	if err != nil {
		f.Close()
		return logging.Discard(), func() {}
	}
	return logger, func() { f.Close() }
}

// openStore opens the scores database. The game still works without it,
// so failures are only reported.
func openStore(w io.Writer) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(w, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// playerName is the local user, recorded with finished rounds.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}

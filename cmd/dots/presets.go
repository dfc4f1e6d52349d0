package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-dots/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List grid presets",
	Long:  `Shows the named grid sizes accepted by 'dots play --preset'.`,
	Args:  cobra.NoArgs,
	Run:   runPresets,
}

func runPresets(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Grid presets:")
	fmt.Fprintln(out)

	// Print header
	fmt.Fprintf(out, "  %-7s  %-6s  %s\n", "Name", "Grid", "Description")
	fmt.Fprintf(out, "  %-7s  %-6s  %s\n", "----", "----", "-----------")

	for _, p := range config.Presets() {
		grid := "config"
		if p.Width > 0 {
			grid = fmt.Sprintf("%dx%d", p.Width, p.Height)
		}
		fmt.Fprintf(out, "  %-7s  %-6s  %s\n", p.Preset, grid, p.Description)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'dots play --preset <name>' to play one.")
}

var flagForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Write or print the board config",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default board config",
	Long: `Write the default board config with comments, to the given path or
to ~/.dots/configs/dots.yaml.

Examples:
  dots config init
  dots config init ./configs/dots.yaml --force`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the config a board would use",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	configInitCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.UserConfigPath()
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		return errors.New("no home directory, pass a path")
	}

	if _, err := os.Stat(path); err == nil && !flagForce {
		return fmt.Errorf("%s exists, use --force to overwrite", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}
	if err := os.WriteFile(path, config.DefaultYAML(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadDots(flagConfig)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

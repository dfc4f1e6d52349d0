package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dots/internal/games/dots"
	"github.com/vovakirdan/tui-dots/internal/logging"
	"github.com/vovakirdan/tui-dots/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dots SSH server",
	Long: `Start an SSH server that lets users connect and play boards.

Each SSH connection gets its own session with the preset menu. The SSH
user name is recorded with finished rounds, and all users share the same
scoreboard. Mouse drags work in terminals that report mouse events.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise DOTS_HOST_KEY, generated on first start if missing

Examples:
  dots serve                           # Listen on :2222
  dots serve --ssh :23234              # Listen on port 23234
  dots serve --host-key ./my_host_key  # Use specific host key
  dots serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 2222`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":2222", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (generated if missing)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Idle time before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	if !flags.Changed("ssh") {
		flagSSHAddr = envCfg.SSHAddr
	}
	if !flags.Changed("host-key") {
		flagHostKey = envCfg.HostKey
	}
	if !flags.Changed("idle-timeout") {
		flagIdleTimeout = envCfg.IdleTimeout
	}

	// The server owns no terminal, so it logs to stderr.
	logger, err := logging.New(os.Stderr, flagLogLevel, "dots-ssh")
	if err != nil {
		return err
	}

	base := runtimeConfig()
	base.Seed = 0 // every session picks its own

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: flagIdleTimeout,
		GameID:      dots.GameID,
		Runtime:     base,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting dots SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe(ctx)
}

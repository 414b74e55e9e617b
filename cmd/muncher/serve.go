package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/muncher/internal/games/muncher"
	"github.com/vovakirdan/muncher/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the muncher SSH server",
	Long: `Start an SSH server that lets users connect and play in their terminal.

Each SSH connection gets its own game on the mode menu. Sound stays on the
client side, which means there is none. Rounds from every connection go to
the same history (--db).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.muncher/host_key

Examples:
  muncher serve                           # Listen on :23234 with auto-generated key
  muncher serve --ssh :2222               # Listen on port 2222
  muncher serve --host-key ./my_host_key  # Use specific host key
  muncher serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(os.Stderr, "muncher-ssh")
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	cfg, reg, err := loadModes()
	if err != nil {
		fail("%v", err)
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		Logger:      logger,
		NewSession: func(rngSeed int64, l *log.Logger) (*muncher.Session, error) {
			if flagSeed != 0 {
				rngSeed = flagSeed
			}
			return newSession(cfg, reg, nil, l, rngSeed)
		},
	})
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting muncher SSH server on %s\n", flagSSHAddr)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}

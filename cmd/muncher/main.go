// muncher is an arcade game about eating chicken and avoiding celery.
//
// Usage:
//
//	muncher play             - Play in the terminal
//	muncher window           - Play in a window with gamepads
//	muncher serve            - Start SSH server for remote play
//	muncher scores [mode]    - Show round history
//	muncher modes            - List game modes
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.muncher/scores.db)
//	--config <path>       - Use a custom game config YAML
//	--difficulty <name>   - easy, normal or hard
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/muncher/internal/config"
	"github.com/vovakirdan/muncher/internal/games/muncher"
	"github.com/vovakirdan/muncher/internal/registry"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
	flagMode       string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "muncher",
	Short: "Muncher - eat the chicken, not the celery",
	Long: `Muncher is an arcade game for one or two players. Steer your muncher
around the arena, eat every chicken you can and keep your mouth away from the
celery. Eat too much celery and the round is over.

Available commands:
  play     - Play in the terminal
  window   - Play in a window with gamepads
  serve    - Start SSH server for remote play
  scores   - View round history
  modes    - List game modes

Examples:
  muncher play
  muncher play --mode haunted --difficulty hard
  muncher window
  muncher serve --ssh :2222
  muncher scores classic`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.muncher/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagMode, "mode", "", "Mode id preselected in the menu")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(modesCmd)
}

// loadModes loads the configuration, applies the difficulty preset and
// resolves the mode table.
func loadModes() (config.MuncherConfig, *registry.Registry, error) {
	cfg, err := config.LoadMuncher(flagConfig)
	if err != nil {
		return cfg, nil, err
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return cfg, nil, err
	}
	config.ApplyMuncherPreset(&cfg, preset)

	reg, err := registry.FromConfig(cfg)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, reg, nil
}

// newSession creates a session with the --mode preselected.
func newSession(cfg config.MuncherConfig, reg *registry.Registry, sound muncher.Sound, logger *log.Logger, rngSeed int64) (*muncher.Session, error) {
	s, err := muncher.New(muncher.Options{
		Config: cfg,
		Modes:  reg,
		Sound:  sound,
		Logger: logger,
		Seed:   rngSeed,
	})
	if err != nil {
		return nil, err
	}
	if flagMode != "" {
		if err := s.SelectModeByID(flagMode); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// seed returns --seed, or a time-based seed when it is zero.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// newLogger builds the logger for a command. With --log-file the log goes
// there; otherwise to fallback, which may be io.Discard when the terminal
// is taken by the game.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, closer := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/muncher/internal/audio"
	"github.com/vovakirdan/muncher/internal/core"
	"github.com/vovakirdan/muncher/internal/platform/tui"
	"github.com/vovakirdan/muncher/internal/storage"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal, on the mode menu.

Controls (player one):
  Arrows/WASD  - Move, or choose a mode on the menu
  Space/Enter  - A: start a round, hold for armor, restart after game over
  Esc/B        - Back to the menu
  P            - Pause
  Tab          - Round history (on the menu)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Player two joins by pressing any of I/J/K/L (move), U (A), O (back), Y (pause).

Examples:
  muncher play
  muncher play --mode stampede
  muncher play --difficulty hard --seed 42
  muncher play --log-file muncher.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	windowCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, _ []string) {
	// The alternate screen owns the terminal; log only to --log-file
	logger, closeLog, err := newLogger(io.Discard, "muncher")
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	cfg, reg, err := loadModes()
	if err != nil {
		fail("%v", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rngSeed := seed()
	sound := openSound(logger)
	defer sound.Close()

	session, err := newSession(cfg, reg, sound, logger, rngSeed)
	if err != nil {
		fail("%v", err)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	runErr := tui.Run(session, tui.Options{
		Store: store,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     rngSeed,
		},
		Logger:   logger,
		Frontend: "tui",
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}

// openSound starts the speaker unless --mute is set. A machine without
// audio plays silently.
func openSound(logger *log.Logger) *audio.Player {
	player := audio.New(logger)
	if flagMute {
		return player
	}
	if err := player.Init(); err != nil {
		logger.Warn("sound disabled", "error", err)
	}
	return player
}

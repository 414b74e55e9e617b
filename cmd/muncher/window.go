package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/muncher/internal/platform/window"
	"github.com/vovakirdan/muncher/internal/storage"
)

var (
	flagWindowWidth  int
	flagWindowHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a window with gamepads",
	Long: `Open the game in a desktop window. Up to two gamepads are used;
they can be plugged in or out at any time. The first controller to connect
is player one, the next is player two. Without a controller on the first
slot the keyboard plays player one.

Gamepad:
  Left stick/D-pad  - Move, or choose a mode on the menu
  A                 - Start a round, hold for armor, restart after game over
  B                 - Back to the menu
  Start             - Pause

Keyboard:
  Arrows/WASD, Space/Enter (A), Backspace/B (back), P (pause), Esc (quit)

Examples:
  muncher window
  muncher window --width 1920 --height 1080
  muncher window --mode haunted --mute`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWindowWidth, "width", 1280, "Initial window width")
	windowCmd.Flags().IntVar(&flagWindowHeight, "height", 720, "Initial window height")
}

func runWindow(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(os.Stderr, "muncher")
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	cfg, reg, err := loadModes()
	if err != nil {
		fail("%v", err)
	}

	sound := openSound(logger)
	defer sound.Close()

	session, err := newSession(cfg, reg, sound, logger, seed())
	if err != nil {
		fail("%v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	runErr := window.Run(session, window.Options{
		Store:    store,
		TickRate: flagFPS,
		Logger:   logger,
		Width:    flagWindowWidth,
		Height:   flagWindowHeight,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("%v", runErr)
	}
}

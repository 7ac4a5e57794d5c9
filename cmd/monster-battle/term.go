package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/monster-battle/internal/core"
	"github.com/vovakirdan/monster-battle/internal/platform/tui"
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Play in the terminal",
	Long: `Play Monster Battle in the terminal. The arena is scaled to the
terminal size.

Controls:
  Arrows/WASD - Move
  Space       - Attack
  Enter       - Start / return to menu
  M           - Toggle sound
  Q/Esc       - Quit`,
	Args: cobra.NoArgs,
	Run:  runTerm,
}

func runTerm(cmd *cobra.Command, args []string) {
	logger, err := newLogger()
	exitOnError("configuring logger", err)

	cfg, err := loadConfig()
	exitOnError("loading config", err)

	sess, closeSession := newSession(cfg, logger)
	runErr := tui.Run(sess, terminalConfig(cfg.Timing.FPS))
	closeSession()

	exitOnError("running game", runErr)
}

// terminalConfig describes stdout, keeping the 80x24 defaults if it is not
// a terminal.
func terminalConfig(fps int) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	if fps > 0 {
		rc.TickRate = fps
	}
	return rc
}

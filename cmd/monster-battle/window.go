package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/monster-battle/internal/platform/window"
)

func runWindow(cmd *cobra.Command, args []string) {
	logger, err := newLogger()
	exitOnError("configuring logger", err)

	cfg, err := loadConfig()
	exitOnError("loading config", err)

	// Loaded sprites define the entity footprints
	assets := window.LoadAssets(cfg, logger)
	cfg = assets.ApplyFootprints(cfg)
	exitOnError("validating sprite sizes", cfg.Validate())

	sess, closeSession := newSession(cfg, logger)
	runErr := window.Run(sess, assets, logger)
	closeSession()

	exitOnError("running game", runErr)
}

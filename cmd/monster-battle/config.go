package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/monster-battle/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in battle configuration as YAML. Save it to
~/.monster-battle/configs/battle.yaml or ./configs/battle.yaml and edit it,
or pass it with --config.

Examples:
  monster-battle config > configs/battle.yaml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		_, err := os.Stdout.Write(config.DefaultYAML())
		exitOnError("writing config", err)
	},
}

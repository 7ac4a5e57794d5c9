// monster-battle is a small real-time action game: move around the arena and
// defeat the monster before it wears you down.
//
// Usage:
//
//	monster-battle            - Play in a window
//	monster-battle term       - Play in the terminal
//	monster-battle results    - Show recorded rounds
//	monster-battle config     - Print the default configuration
//
// Global flags:
//
//	--config <path>     - Custom battle config YAML
//	--fps <rate>        - Override the configured frame rate
//	--db <path>         - Record finished rounds to a SQLite database
//	--mute              - Disable sound
//	--log-level <level> - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagDBPath   string
	flagMute     bool
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "monster-battle",
	Short: "Monster Battle - fight the monster before it catches you",
	Long: `Monster Battle is a small real-time action game. Move around the arena,
attack the monster when it is in reach, and avoid its touch.

Controls:
  Arrows/WASD - Move
  Space       - Attack
  Enter       - Start / return to menu
  M           - Toggle sound
  Esc         - Quit

Examples:
  monster-battle
  monster-battle term
  monster-battle --db ~/.monster-battle/results.db
  monster-battle results --db ~/.monster-battle/results.db`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom battle config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (empty = do not record)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(configCmd)
}

// exitOnError prints err and exits with status 1.
func exitOnError(msg string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error %s: %v\n", msg, err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/monster-battle/internal/platform/tui"
	"github.com/vovakirdan/monster-battle/internal/storage"
)

// defaultResultsDB is read when --db is not given.
const defaultResultsDB = "~/.monster-battle/results.db"

var (
	flagPlain bool
	flagRound string
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show recorded rounds",
	Long: `Display rounds recorded with --db, newest first.

Examples:
  monster-battle results --db ./results.db
  monster-battle results --plain
  monster-battle results --round 1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed`,
	Args: cobra.NoArgs,
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain listing instead of the interactive table")
	resultsCmd.Flags().StringVar(&flagRound, "round", "", "Print a single round by its ID")
}

func runResults(cmd *cobra.Command, args []string) {
	path := flagDBPath
	if path == "" {
		path = defaultResultsDB
	}

	store, err := storage.Open(path)
	exitOnError("opening results database", err)
	defer store.Close()

	if flagRound != "" {
		printRound(store, flagRound)
		return
	}

	if !flagPlain {
		rc := terminalConfig(0)
		if err := tui.RunResults(store, rc.ScreenW, rc.ScreenH); err != nil {
			store.Close()
			exitOnError("showing results", err)
		}
		return
	}

	rounds, err := store.RecentRounds(10)
	if err != nil {
		store.Close()
		exitOnError("retrieving results", err)
	}
	stats, err := store.Stats()
	if err != nil {
		store.Close()
		exitOnError("retrieving stats", err)
	}

	fmt.Println("Monster Battle - Results")
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'monster-battle --db <path>' to record rounds.")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-6s  %-4s  %s\n", "#", "Outcome", "Time", "Health", "Hits", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-6s  %-4s  %s\n", "-", "-------", "----", "------", "----", "----")

	for i, r := range rounds {
		fmt.Printf("  %-4d  %-8s  %-8s  %-6d  %-4d  %s\n",
			i+1,
			strings.ToUpper(r.Outcome),
			fmt.Sprintf("%.1fs", r.Duration),
			r.PlayerHealth,
			r.Hits,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	fmt.Println()
	fmt.Println(tui.StatsLine(stats))
}

// printRound prints the details of one recorded round.
func printRound(store *storage.Store, roundID string) {
	r, err := store.RoundByID(roundID)
	if err != nil {
		store.Close()
		exitOnError("retrieving round", err)
	}
	if r == nil {
		fmt.Printf("No round with ID %s.\n", roundID)
		return
	}

	fmt.Printf("Round:   %s\n", r.RoundID)
	fmt.Printf("Outcome: %s\n", strings.ToUpper(r.Outcome))
	fmt.Printf("Time:    %.1fs\n", r.Duration)
	fmt.Printf("Health:  %d\n", r.PlayerHealth)
	fmt.Printf("Hits:    %d\n", r.Hits)
	fmt.Printf("Date:    %s\n", r.CreatedAt.Format("2006-01-02 15:04"))
}

// railrunner is an endless rail runner played in the terminal.
//
// Usage:
//
//	railrunner play          - Play in this terminal
//	railrunner serve         - Start SSH server for remote play
//	railrunner scores        - Show the leaderboard and run history
//	railrunner sim           - Run a headless deterministic simulation
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.railrunner/scores.db)
//	--store <kind>        - Leaderboard backend: sqlite or gdata
//	--config <path>       - Custom YAML or TOML config
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--assets <dir>        - Load models from a directory instead of the built-in set
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagStore      string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagAssets     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "railrunner",
	Short: "Rail Runner - an endless runner in your terminal",
	Long: `Rail Runner is an endless runner played in the terminal: dodge the
trains and barriers rushing down the rails for as long as you can.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View the leaderboard and run history
  sim      - Run a headless simulation

Examples:
  railrunner play
  railrunner play --difficulty hard
  railrunner serve --ssh :2222
  railrunner scores --stats
  railrunner sim --seed 42 --ticks 3600`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.railrunner/scores.db", "Path to scores database")
	pf.StringVar(&flagStore, "store", storeSQLite, "Leaderboard backend: sqlite, gdata")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.StringVar(&flagAssets, "assets", "", "Directory with models/*.yaml (default: built-in)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/railrunner/internal/leaderboard"
	"github.com/vovakirdan/railrunner/internal/platform/tui"
	"github.com/vovakirdan/railrunner/internal/storage"
)

var (
	flagStats  bool
	flagRecent int
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top 10 scores, and optionally statistics and recent runs
from the run history.

Examples:
  railrunner scores
  railrunner scores --stats
  railrunner scores --recent 20
  railrunner scores --store gdata`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Show run history statistics")
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 0, "Show the N most recent runs")
	scoresCmd.Flags().BoolVar(&flagClear, "clear-history", false, "Delete the run history")
}

func runScores(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	st := openStores(logger)
	defer st.Close()

	out := os.Stdout
	entries := leaderboard.New(st.kv, logger).Load()

	fmt.Fprintln(out, "High Scores - Rail Runner")
	fmt.Fprintln(out)
	fmt.Fprint(out, tui.RenderScores(entries))
	if len(entries) == 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'railrunner play' to set the first high score!")
	}

	if !flagStats && flagRecent <= 0 && !flagClear {
		return nil
	}
	if st.history == nil {
		return fmt.Errorf("run history unavailable: cannot open %s", flagDBPath)
	}

	if flagClear {
		if err := st.history.ClearRuns(); err != nil {
			return err
		}
		fmt.Fprintln(out, "\nRun history cleared.")
	}
	if flagStats {
		stats, err := st.history.Stats()
		if err != nil {
			return err
		}
		printStats(out, stats)
	}
	if flagRecent > 0 {
		runs, err := st.history.RecentRuns(flagRecent)
		if err != nil {
			return err
		}
		printRuns(out, runs)
	}
	return nil
}

func printStats(out io.Writer, s *storage.Stats) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Statistics")
	fmt.Fprintf(out, "  Runs:         %s\n", humanize.Comma(int64(s.Runs)))
	fmt.Fprintf(out, "  Best:         %s\n", humanize.Comma(int64(s.Best)))
	fmt.Fprintf(out, "  Average:      %s\n", humanize.CommafWithDigits(s.AvgScore, 1))
	fmt.Fprintf(out, "  Total score:  %s\n", humanize.Comma(int64(s.TotalScore)))
	fmt.Fprintf(out, "  Time played:  %s\n", s.TotalTime.Round(time.Second))
	if !s.LastPlayed.IsZero() {
		fmt.Fprintf(out, "  Last played:  %s\n", humanize.Time(s.LastPlayed))
	}
}

func printRuns(out io.Writer, runs []storage.Run) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Recent Runs")
	if len(runs) == 0 {
		fmt.Fprintln(out, "  No runs recorded yet.")
		return
	}
	fmt.Fprintf(out, "  %-12s  %-10s  %-8s  %-8s  %s\n", "Player", "Score", "Time", "Level", "When")
	for _, r := range runs {
		fmt.Fprintf(out, "  %-12s  %-10d  %-8s  %-8s  %s\n",
			r.Player, r.Score, r.Duration.Round(100*time.Millisecond), r.Difficulty, humanize.Time(r.CreatedAt))
	}
}

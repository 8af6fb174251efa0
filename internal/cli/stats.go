package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/history"
)

func newStatsCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show results of past sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.openHistory()
			if err != nil {
				return err
			}
			if h == nil {
				return errors.New("history is disabled (HISTORY_DB=off)")
			}
			defer h.Close()

			sum, err := h.Summary(cmd.Context())
			if err != nil {
				return fmt.Errorf("summary: %w", err)
			}
			recent, err := h.Recent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("recent sessions: %w", err)
			}
			printStats(cmd.OutOrStdout(), sum, recent)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "number of recent sessions to list")
	return cmd
}

func printStats(w io.Writer, sum history.Summary, recent []history.Result) {
	fmt.Fprintf(w, "Sessions:  %d\n", sum.Total)
	fmt.Fprintf(w, "Solved:    %d\n", sum.Solved)
	fmt.Fprintf(w, "Exhausted: %d\n", sum.Exhausted)
	if sum.Solved > 0 {
		fmt.Fprintf(w, "Average:   %.2f rounds\n", sum.AvgRounds)
	}
	if sum.BestOpener != "" {
		fmt.Fprintf(w, "Top opener: %s (%d solved)\n", sum.BestOpener, sum.BestOpenerN)
	}
	if len(recent) == 0 {
		return
	}
	fmt.Fprintln(w, "\nRecent:")
	for _, r := range recent {
		fmt.Fprintf(w, "  %s  %-9s %2d rounds  opener %s\n", r.FinishedAt.Local().Format(time.DateTime), r.Outcome, r.Rounds, r.Opener)
	}
}

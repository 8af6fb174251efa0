package cli

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/ui"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func newSimulateCmd(a *app) *cobra.Command {
	var (
		answer    string
		rows      int
		all       bool
		withDaily bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Let the solver play against a known answer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if answer == "" && !all {
				return errors.New("either --answer or --all is required")
			}
			dict, err := words.Load(a.cfg.WordsFile)
			if err != nil {
				return err
			}
			if all {
				return a.benchmark(cmd, dict, rows, withDaily)
			}

			g, err := game.New(answer, rows)
			if err != nil {
				return fmt.Errorf("answer %q: %w", answer, err)
			}
			term := ui.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout())
			sess := a.newSession(dict, withDaily)

			n := 0
			state, err := game.Play(g, sess, func(t game.Turn) {
				n++
				term.Round(n, t.Guess, t.Code, t.Remaining)
			})
			if err != nil {
				return err
			}
			switch state {
			case solver.StateSolved:
				term.Solved(sess.Guess())
			case solver.StateExhausted:
				term.Exhausted()
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "Out of rows after %d guesses, answer was %s\n", n, g.Answer)
			}
			a.record(cmd.Context(), uuid.NewString(), sess, g.Answer)
			return nil
		},
	}

	cmd.Flags().StringVar(&answer, "answer", "", "answer word to play against")
	cmd.Flags().IntVar(&rows, "rows", 0, "maximum guesses (0 = unlimited)")
	cmd.Flags().BoolVar(&all, "all", false, "play against every dictionary word and print a summary")
	cmd.Flags().BoolVar(&withDaily, "daily", false, "open with the word of the day")
	return cmd
}

// benchmark plays every dictionary word as the answer. Nothing is recorded
// to history.
func (a *app) benchmark(cmd *cobra.Command, dict []string, rows int, withDaily bool) error {
	var solved, failed, total, worst int
	for _, w := range dict {
		g, err := game.New(w, rows)
		if err != nil {
			return err
		}
		sess := a.newSession(dict, withDaily)
		state, err := game.Play(g, sess, nil)
		if err != nil {
			return err
		}
		if state != solver.StateSolved {
			failed++
			log.Debug().Str("answer", w).Str("state", string(state)).Msg("not solved")
			continue
		}
		n := len(sess.Rounds())
		solved++
		total += n
		if n > worst {
			worst = n
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Answers:  %d\n", len(dict))
	fmt.Fprintf(out, "Solved:   %d\n", solved)
	fmt.Fprintf(out, "Failed:   %d\n", failed)
	if solved > 0 {
		fmt.Fprintf(out, "Average:  %.2f guesses\n", float64(total)/float64(solved))
		fmt.Fprintf(out, "Worst:    %d guesses\n", worst)
	}
	return nil
}

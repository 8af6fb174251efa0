package cli

import (
	"errors"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/ui"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func newPlayCmd(a *app) *cobra.Command {
	var withDaily bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Suggest guesses and narrow the word list from your feedback",
		Long: `Suggests a guess each round. Enter the game's feedback as five characters:
  G  correct letter, correct place
  Y  letter in the word, wrong place
  _  letter not in the word
  R  repeated letter already scored at another position
Enter ERROR if the game rejected the word, GGGGG when solved.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := words.Load(a.cfg.WordsFile)
			if err != nil {
				return err
			}
			log.Debug().Int("words", len(dict)).Str("source", a.cfg.WordsFile).Msg("dictionary loaded")

			term := ui.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout())
			term.Key()

			sess := a.newSession(dict, withDaily)
			state, err := solver.Run(cmd.Context(), sess, term)
			if err != nil {
				if errors.Is(err, io.EOF) {
					log.Info().Msg("input closed, quitting")
					return nil
				}
				return err
			}

			var answer string
			switch state {
			case solver.StateSolved:
				answer = sess.Guess()
				term.Solved(answer)
			case solver.StateExhausted:
				term.Exhausted()
			}
			a.record(cmd.Context(), uuid.NewString(), sess, answer)
			return nil
		},
	}

	cmd.Flags().BoolVar(&withDaily, "daily", false, "open with the word of the day (same opener for every run today)")
	return cmd
}

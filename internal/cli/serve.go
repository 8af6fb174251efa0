package cli

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// sweepEvery is how often expired sessions are evicted.
const sweepEvery = time.Minute

func newServeCmd(a *app) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve solver sessions over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := words.Init(a.cfg.WordsFile); err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				a.cfg.Port = port
			}

			opts := httpserver.Options{
				Secret:       []byte(a.cfg.JWTSecret),
				TokenTTL:     a.cfg.TokenTTL,
				ClientOrigin: a.cfg.ClientOrigin,
				NewSession: func(withDaily bool) *solver.Session {
					return a.newSession(words.Dictionary(), withDaily)
				},
			}
			h, err := a.openHistory()
			if err != nil {
				return err
			}
			if h != nil {
				defer h.Close()
				opts.History = h
			}

			// sessions live exactly as long as their tokens
			srv := httpserver.New(store.NewMemoryStore(a.cfg.TokenTTL), opts)
			go srv.Janitor(cmd.Context(), sweepEvery)
			log.Info().Str("port", a.cfg.Port).Int("words", words.Stats()).Bool("history", h != nil).Msg("starting go-solver")
			return srv.Start(":" + a.cfg.Port)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "listen port (default $PORT or 5176)")
	return cmd
}

// Package cli wires the solver, its stores and its front ends into cobra
// commands.
package cli

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/daily"
	"github.com/robalobadob/wordle/apps/go-solver/internal/history"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// app holds what every subcommand shares once flags are parsed.
type app struct {
	cfg *config.Config

	// flag overrides
	wordsFile string
	historyDB string
	logLevel  string
	seed      int64

	now func() time.Time
}

func NewRootCmd() *cobra.Command {
	a := &app{now: time.Now}

	cmd := &cobra.Command{
		Use:           "go-solver",
		Short:         "Narrow down five-letter word puzzles from per-letter feedback",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.wordsFile, "words", "", "dictionary file, one word per line (default: built-in list)")
	cmd.PersistentFlags().StringVar(&a.historyDB, "history", "", `history database path, or "off"`)
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().Int64Var(&a.seed, "seed", 0, "fixed random seed for guess selection")

	cmd.AddCommand(newPlayCmd(a))
	cmd.AddCommand(newSimulateCmd(a))
	cmd.AddCommand(newServeCmd(a))
	cmd.AddCommand(newStatsCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}

// setup loads configuration, applies flag overrides and configures logging.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("words") {
		cfg.WordsFile = a.wordsFile
	}
	if flags.Changed("history") {
		cfg.HistoryDB = a.historyDB
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("seed") {
		cfg.Seed, cfg.HasSeed = a.seed, true
	}
	a.cfg = cfg

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.Kitchen})
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}

// chooser returns the guess policy: seeded when a seed is configured.
func (a *app) chooser() solver.Chooser {
	if a.cfg.HasSeed {
		return solver.NewRandomChooser(rand.NewSource(a.cfg.Seed))
	}
	return solver.NewTimeSeededChooser()
}

// newSession starts a solve over dict. withDaily picks today's opener.
func (a *app) newSession(dict []string, withDaily bool) *solver.Session {
	opts := []solver.Option{
		solver.WithChooser(a.chooser()),
		solver.WithLogger(log.Logger),
	}
	if withDaily {
		seed := daily.Seed(a.now(), a.cfg.DailySalt)
		opts = append(opts, solver.WithOpenerChooser(solver.NewRandomChooser(rand.NewSource(seed))))
	}
	return solver.NewSession(dict, opts...)
}

// openHistory opens the history store, or returns nil when it is disabled.
func (a *app) openHistory() (*history.Store, error) {
	if !a.cfg.HistoryEnabled() {
		return nil, nil
	}
	return history.Open(a.cfg.HistoryDB)
}

// record stores a finished session. Failures are logged, not returned.
func (a *app) record(ctx context.Context, id string, s *solver.Session, answer string) {
	h, err := a.openHistory()
	if err != nil {
		log.Warn().Err(err).Msg("open history")
		return
	}
	if h == nil {
		return
	}
	defer h.Close()
	err = h.Record(ctx, history.Result{
		ID:         id,
		Opener:     s.Opener(),
		Answer:     answer,
		Outcome:    string(s.State()),
		Rounds:     len(s.Rounds()),
		Remaining:  s.Remaining(),
		FinishedAt: a.now(),
	})
	if err != nil {
		log.Warn().Err(err).Msg("record history")
	}
}

// apps/go-solver/internal/solver/session.go
//
// Session state machine for one solve.
// Responsibilities:
//   - Own the candidate set and the current guess.
//   - Interpret one feedback line per round (reject, solved, or a code).
//   - Report terminal outcomes as states (Solved / Exhausted) rather than
//     exiting, leaving exit codes to the caller.
//
// States:
//   start → awaiting_feedback ⇄ pruning → solved | exhausted
//
// Notes:
//   - A Session has exactly one owner and is not safe for concurrent use.
//   - Malformed feedback leaves the session untouched so the caller can
//     re-prompt.

package solver

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// State is a coarse label for where a session is in its lifecycle.
type State string

const (
	StateStart            State = "start"
	StateAwaitingFeedback State = "awaiting_feedback"
	StatePruning          State = "pruning"
	StateSolved           State = "solved"
	StateExhausted        State = "exhausted"
)

// Terminal reports whether no further feedback can be applied.
func (s State) Terminal() bool { return s == StateSolved || s == StateExhausted }

// ErrSessionOver is returned by Apply once the session has finished.
var ErrSessionOver = errors.New("session is over")

// Round records one applied feedback line.
type Round struct {
	Guess  string // word that was presented
	Code   string // normalised feedback code
	Before int    // candidates before the round
	After  int    // candidates after the round
}

// Session holds the state of a single solve.
type Session struct {
	candidates []string
	guess      string
	opener     string
	state      State
	rounds     []Round

	chooser       Chooser
	openerChooser Chooser
	log           zerolog.Logger
}

// Option customises a Session.
type Option func(*Session)

// WithChooser sets the policy used for every guess after the opener
// (and for the opener too unless WithOpenerChooser is given).
func WithChooser(c Chooser) Option { return func(s *Session) { s.chooser = c } }

// WithOpenerChooser sets the policy used for the first guess only.
func WithOpenerChooser(c Chooser) Option { return func(s *Session) { s.openerChooser = c } }

// WithLogger attaches a logger for round transitions.
func WithLogger(l zerolog.Logger) Option { return func(s *Session) { s.log = l } }

// NewSession starts a solve over dict. The dictionary is copied; the caller
// keeps ownership of its slice. An empty dictionary produces a session that
// is already exhausted.
func NewSession(dict []string, opts ...Option) *Session {
	s := &Session{
		candidates: clone(dict),
		state:      StateStart,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.chooser == nil {
		s.chooser = NewTimeSeededChooser()
	}
	if s.openerChooser == nil {
		s.openerChooser = s.chooser
	}

	pool, err := Openers(s.candidates)
	if err != nil || len(pool) == 0 {
		pool = s.candidates
	}
	g, ok := s.openerChooser.Choose(pool)
	if !ok {
		s.state = StateExhausted
		s.log.Debug().Msg("dictionary empty, nothing to guess")
		return s
	}
	s.guess, s.opener = g, g
	s.state = StateAwaitingFeedback
	s.log.Debug().Str("opener", g).Int("candidates", len(s.candidates)).Int("openers", len(pool)).Msg("session started")
	return s
}

// Guess is the word currently presented to the player. Empty once exhausted.
func (s *Session) Guess() string { return s.guess }

// Opener is the first word the session suggested.
func (s *Session) Opener() string { return s.opener }

// State reports the current lifecycle state.
func (s *Session) State() State { return s.state }

// Remaining is the number of candidates left.
func (s *Session) Remaining() int { return len(s.candidates) }

// Candidates returns a copy of the current candidate set.
func (s *Session) Candidates() []string { return clone(s.candidates) }

// Rounds returns the feedback applied so far, oldest first.
func (s *Session) Rounds() []Round { return append([]Round(nil), s.rounds...) }

// Apply interprets one raw feedback line for the current guess.
// The line is trimmed and truncated to five characters first.
// Parse failures are returned with the session unchanged.
func (s *Session) Apply(raw string) (State, error) {
	if s.state.Terminal() {
		return s.state, ErrSessionOver
	}
	code := NormalizeCode(raw)
	before := len(s.candidates)

	switch code {
	case CodeSolved:
		s.state = StateSolved
		s.record(code, before)
		s.log.Debug().Str("guess", s.guess).Msg("solved")
		return s.state, nil

	case CodeRejected:
		s.candidates = RemoveWord(s.candidates, s.guess)
		s.log.Debug().Str("guess", s.guess).Msg("guess rejected")

	default:
		fb, err := ParseFeedback(code)
		if err != nil {
			return s.state, fmt.Errorf("apply feedback: %w", err)
		}
		s.state = StatePruning
		s.candidates = Prune(s.candidates, s.guess, fb)
	}

	s.record(code, before)
	s.log.Debug().Str("guess", s.guess).Str("code", code).Int("before", before).Int("after", len(s.candidates)).Msg("round applied")
	s.next()
	return s.state, nil
}

// next chooses the following guess or marks the session exhausted.
func (s *Session) next() {
	g, ok := s.chooser.Choose(s.candidates)
	if !ok {
		s.guess = ""
		s.state = StateExhausted
		s.log.Debug().Msg("candidates exhausted")
		return
	}
	s.guess = g
	s.state = StateAwaitingFeedback
}

func (s *Session) record(code string, before int) {
	s.rounds = append(s.rounds, Round{Guess: s.guess, Code: code, Before: before, After: len(s.candidates)})
}

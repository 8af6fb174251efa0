package game

import (
	"fmt"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// Turn is one refereed round of self-play.
type Turn struct {
	Guess     string
	Code      string
	Remaining int // candidates left after the code was applied
}

// Play lets s guess against g until either side finishes. onTurn, if not
// nil, is called after every round. It returns the session's final state,
// or solver.StateAwaitingFeedback when the game ran out of rows first.
//
// A game without a row limit is still capped at one round per starting
// candidate plus one: a guess whose code holds only G and R survives its own
// pruning and may be chosen again.
func Play(g *Game, s *solver.Session, onTurn func(Turn)) (solver.State, error) {
	limit := g.Rows
	if limit <= 0 {
		limit = s.Remaining() + 1
	}
	for turns := 0; !s.State().Terminal() && turns < limit; turns++ {
		guess := s.Guess()
		code, state, err := g.ApplyGuess(guess)
		if err != nil {
			return s.State(), fmt.Errorf("referee %q: %w", guess, err)
		}
		if _, err := s.Apply(code); err != nil {
			return s.State(), err
		}
		if onTurn != nil {
			onTurn(Turn{Guess: guess, Code: code, Remaining: s.Remaining()})
		}
		if state == "lost" && !s.State().Terminal() {
			break
		}
	}
	return s.State(), nil
}

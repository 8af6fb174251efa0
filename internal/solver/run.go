package solver

import (
	"context"
	"errors"
	"fmt"
)

// Prompter is the interactive side of a session: it shows the current
// guess and collects one feedback line per round.
type Prompter interface {
	// Present shows the guess and the remaining candidates.
	Present(guess string, candidates []string)
	// Feedback blocks until the player enters a line.
	Feedback() (string, error)
	// Reject reports a line that could not be applied.
	Reject(err error)
}

// Run drives s until it reaches a terminal state. Malformed feedback is
// reported through p and the same round is prompted again. Errors from p
// end the run and are returned wrapped.
func Run(ctx context.Context, s *Session, p Prompter) (State, error) {
	for !s.State().Terminal() {
		if err := ctx.Err(); err != nil {
			return s.State(), err
		}
		p.Present(s.Guess(), s.Candidates())

		line, err := p.Feedback()
		if err != nil {
			return s.State(), fmt.Errorf("read feedback: %w", err)
		}
		if _, err := s.Apply(line); err != nil {
			if errors.Is(err, ErrMalformedFeedback) || errors.Is(err, ErrFeedbackLength) {
				p.Reject(err)
				continue
			}
			return s.State(), err
		}
	}
	return s.State(), nil
}

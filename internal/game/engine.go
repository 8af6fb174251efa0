// apps/go-solver/internal/game/engine.go
//
// Referee for games with a known answer.
// Responsibilities:
//   - Validate and score guesses against the answer.
//   - Emit feedback codes in the solver's notation (_, Y, G, R).
//   - Track state transitions: playing → won/lost.
//
// Scoring is the classic two-pass algorithm. On top of it, a miss whose
// letter is already scored hit/present elsewhere in the same guess is
// reported as a repeat, so the solver never treats it as "letter absent".

package game

import (
	"errors"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

var (
	ErrFinished     = errors.New("game finished")
	ErrInvalidGuess = errors.New("invalid guess")
)

// New constructs a game for answer with at most rows guesses (0 = unlimited).
func New(answer string, rows int) (*Game, error) {
	ans := strings.ToLower(strings.TrimSpace(answer))
	if !words.IsValid(ans) {
		return nil, ErrInvalidGuess
	}
	return &Game{Answer: ans, Rows: rows, Guesses: []string{}}, nil
}

// ApplyGuess scores a guess, mutating the game state.
// Returns the feedback code, the new state ("playing"/"won"/"lost"), or an error.
func (g *Game) ApplyGuess(guess string) (string, string, error) {
	if g.Finished {
		return "", g.State(), ErrFinished
	}
	guess = strings.ToLower(strings.TrimSpace(guess))
	if !words.IsValid(guess) {
		return "", g.State(), ErrInvalidGuess
	}

	marks := Score(g.Answer, guess)
	g.Guesses = append(g.Guesses, guess)

	if allHit(marks) {
		g.Finished, g.Won = true, true
	} else if g.Rows > 0 && len(g.Guesses) >= g.Rows {
		g.Finished = true
	}
	return Code(marks), g.State(), nil
}

// State reports a coarse string representation of the current game state.
func (g *Game) State() string {
	if g.Finished {
		if g.Won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}

// Score evaluates guess against answer (both lowercase, same length).
//
// Pass 1: mark exact matches as hits and count the remaining answer letters.
// Pass 2: a non-hit letter with remaining count becomes present, otherwise miss.
// Pass 3: a miss whose letter is hit/present elsewhere in the guess becomes repeat.
func Score(answer, guess string) []Mark {
	n := len(guess)
	res := make([]Mark, n)

	var counts [26]int
	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			res[i] = MarkHit
		} else {
			counts[idx(answer[i])]++
		}
	}

	var scored [26]bool
	for i := 0; i < n; i++ {
		if res[i] == MarkHit {
			scored[idx(guess[i])] = true
			continue
		}
		j := idx(guess[i])
		if counts[j] > 0 {
			res[i] = MarkPresent
			counts[j]--
			scored[j] = true
		} else {
			res[i] = MarkMiss
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == MarkMiss && scored[idx(guess[i])] {
			res[i] = MarkRepeat
		}
	}
	return res
}

// Code renders marks as a feedback code.
func Code(marks []Mark) string {
	b := make([]byte, len(marks))
	for i, m := range marks {
		b[i] = m.Symbol()
	}
	return string(b)
}

// idx maps a lowercase ASCII letter to 0..25.
// Assumes inputs are validated to a–z elsewhere.
func idx(c byte) int { return int(c - 'a') }

func allHit(m []Mark) bool {
	for _, x := range m {
		if x != MarkHit {
			return false
		}
	}
	return true
}

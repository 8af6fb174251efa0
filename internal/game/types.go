// apps/go-solver/internal/game/types.go
//
// Core type definitions for the referee.
// Defines:
//   - Mark: per-letter result of a guess (hit/present/miss/repeat).
//   - Game: state for a single refereed game with a known answer.

package game

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "hit":     letter is correct and in the correct position.
//   - "present": letter exists in the answer but in a different position.
//   - "miss":    letter does not exist in the answer at all.
//   - "repeat":  letter was not matched here but was already scored as
//     hit/present at another position of the same guess.
type Mark string

const (
	MarkHit     Mark = "hit"
	MarkPresent Mark = "present"
	MarkMiss    Mark = "miss"
	MarkRepeat  Mark = "repeat"
)

// Symbol maps a mark onto its feedback code character.
func (m Mark) Symbol() byte {
	switch m {
	case MarkHit:
		return 'G'
	case MarkPresent:
		return 'Y'
	case MarkRepeat:
		return 'R'
	default:
		return '_'
	}
}

// Game holds the state of a single refereed game.
type Game struct {
	Answer   string   // The solution word (always lowercase).
	Rows     int      // Maximum number of guesses allowed; 0 means unlimited.
	Guesses  []string // List of guesses made so far (lowercased).
	Finished bool     // True once the game is over (won or lost).
	Won      bool     // True if the game was finished with a win.
}

// apps/go-solver/internal/solver/feedback.go
//
// Feedback codes and their parser.
// A feedback code is one character per guess position:
//   _ → Absent            letter is not in the answer
//   Y → Present           letter is in the answer, elsewhere
//   G → Correct           letter is in the answer, here
//   R → AlreadyAccounted  letter was already scored by another position
//
// The parser never panics; bad input comes back as a *FeedbackError.

package solver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Judgment is the per-position verdict for one guessed letter.
type Judgment uint8

const (
	Absent Judgment = iota
	Present
	Correct
	// AlreadyAccounted marks a repeated letter whose verdict was given at
	// another position of the same guess. Pruning ignores it.
	AlreadyAccounted
)

// Sentinel codes recognised by the session loop.
const (
	CodeRejected = "ERROR"
	CodeSolved   = "GGGGG"
)

var (
	ErrMalformedFeedback = errors.New("malformed feedback")
	ErrFeedbackLength    = errors.New("feedback length")
)

// Feedback is one round's judgments, indexed by guess position.
type Feedback [words.Length]Judgment

// FeedbackError describes why a code could not be parsed.
// Pos is -1 for length errors.
type FeedbackError struct {
	Code string
	Pos  int
	Char rune
	kind error
}

func (e *FeedbackError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("%s: %q has %d characters, want %d", e.kind, e.Code, len([]rune(e.Code)), words.Length)
	}
	return fmt.Sprintf("%s: invalid character %q at position %d (use _, Y, G or R)", e.kind, e.Char, e.Pos+1)
}

func (e *FeedbackError) Unwrap() error { return e.kind }

// ParseFeedback converts a code such as "_YG_R" into a Feedback.
func ParseFeedback(code string) (Feedback, error) {
	var fb Feedback
	runes := []rune(code)
	if len(runes) != words.Length {
		return fb, &FeedbackError{Code: code, Pos: -1, kind: ErrFeedbackLength}
	}
	for i, c := range runes {
		j, ok := judgmentOf(c)
		if !ok {
			return fb, &FeedbackError{Code: code, Pos: i, Char: c, kind: ErrMalformedFeedback}
		}
		fb[i] = j
	}
	return fb, nil
}

func judgmentOf(c rune) (Judgment, bool) {
	switch c {
	case '_':
		return Absent, true
	case 'Y':
		return Present, true
	case 'G':
		return Correct, true
	case 'R':
		return AlreadyAccounted, true
	}
	return 0, false
}

// Symbol returns the code character for j.
func (j Judgment) Symbol() byte {
	switch j {
	case Present:
		return 'Y'
	case Correct:
		return 'G'
	case AlreadyAccounted:
		return 'R'
	default:
		return '_'
	}
}

func (j Judgment) String() string {
	switch j {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Correct:
		return "correct"
	case AlreadyAccounted:
		return "already-accounted"
	}
	return fmt.Sprintf("Judgment(%d)", uint8(j))
}

// String renders fb back into its code form.
func (fb Feedback) String() string {
	var b strings.Builder
	for _, j := range fb {
		b.WriteByte(j.Symbol())
	}
	return b.String()
}

// NormalizeCode trims whitespace and keeps at most the first five characters
// of a raw input line.
func NormalizeCode(raw string) string {
	s := strings.TrimSpace(raw)
	if r := []rune(s); len(r) > words.Length {
		s = string(r[:words.Length])
	}
	return s
}

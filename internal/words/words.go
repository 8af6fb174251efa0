// apps/go-solver/internal/words/words.go
//
// Dictionary loading for the solver.
//
// Responsibilities:
//   - Parse a line-oriented word list (one word per line).
//   - Load it from a configured file or fall back to the embedded default.
//   - Keep the process-wide dictionary for callers that share it (HTTP server).
//
// Format:
//   - Lines are trimmed and lowercased.
//   - Blank lines and lines starting with '#' are skipped.
//   - Every other line must be exactly 5 letters a–z, otherwise loading fails
//     with a *ParseError naming the source and line.
//
// Duplicates are kept; the solver does not deduplicate.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
)

// Length is the number of letters in every word.
const Length = 5

// ErrInvalidWord is matched by every *ParseError.
var ErrInvalidWord = errors.New("invalid word")

// ParseError reports a dictionary line that is not a valid word.
type ParseError struct {
	Source string
	Line   int
	Word   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v %q (want %d letters a-z)", e.Source, e.Line, ErrInvalidWord, e.Word, Length)
}

func (e *ParseError) Unwrap() error { return ErrInvalidWord }

// LoadError reports a dictionary that could not be read at all.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string { return fmt.Sprintf("load dictionary %s: %v", e.Source, e.Err) }

func (e *LoadError) Unwrap() error { return e.Err }

// Parse reads one word per line from r. source is only used in errors.
func Parse(r io.Reader, source string) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if !IsValid(w) {
			return nil, &ParseError{Source: source, Line: n, Word: w}
		}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	return out, nil
}

// ReadFile loads a dictionary from path.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer f.Close()
	return Parse(f, path)
}

// Embedded loads the built-in dictionary.
func Embedded() ([]string, error) {
	f, err := assets.Dictionary()
	if err != nil {
		return nil, &LoadError{Source: assets.DictionaryName, Err: err}
	}
	defer f.Close()
	return Parse(f, assets.DictionaryName)
}

// Load reads path, or the embedded dictionary when path is empty.
func Load(path string) ([]string, error) {
	if path == "" {
		return Embedded()
	}
	return ReadFile(path)
}

// IsValid reports whether w is exactly Length lowercase ASCII letters.
func IsValid(w string) bool {
	if len(w) != Length {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}

var (
	initOnce   sync.Once
	dictionary []string
	initialErr error
)

// Init loads the shared dictionary exactly once. Later calls return the
// first result regardless of path.
func Init(path string) error {
	initOnce.Do(func() {
		dictionary, initialErr = Load(path)
		if initialErr == nil && len(dictionary) == 0 {
			initialErr = fmt.Errorf("words: dictionary %q is empty", path)
		}
	})
	return initialErr
}

// Dictionary returns a copy of the shared dictionary (nil before Init).
func Dictionary() []string {
	return append([]string(nil), dictionary...)
}

// Stats returns the number of words in the shared dictionary.
func Stats() int { return len(dictionary) }

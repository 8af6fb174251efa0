package solver

import (
	"errors"
	"strings"
)

// ErrEmptyDictionary is returned when a heuristic is given no words at all.
var ErrEmptyDictionary = errors.New("empty dictionary")

// minOpenerVowels is the number of distinct vowels a word needs to be
// considered a strong opener ("audio" has four).
const minOpenerVowels = 4

const vowels = "aeiou"

// Openers filters dict down to words with at least four distinct vowels.
// An empty dict yields ErrEmptyDictionary; a dict without any such word
// yields an empty, non-nil slice.
func Openers(dict []string) ([]string, error) {
	if len(dict) == 0 {
		return nil, ErrEmptyDictionary
	}
	out := []string{}
	for _, w := range dict {
		if distinctVowels(w) >= minOpenerVowels {
			out = append(out, w)
		}
	}
	return out, nil
}

func distinctVowels(w string) int {
	n := 0
	for i := 0; i < len(vowels); i++ {
		if strings.IndexByte(w, vowels[i]) >= 0 {
			n++
		}
	}
	return n
}

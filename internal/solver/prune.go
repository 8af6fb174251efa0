// apps/go-solver/internal/solver/prune.go
//
// Candidate pruning.
// Each position of the guess contributes one filter; filters compose by
// conjunction and are applied in position order. Every call allocates a
// fresh slice so the caller's candidate set is never modified.

package solver

import "strings"

// Prune returns the candidates consistent with fb for the given guess.
// The result is a subsequence of candidates and may be empty.
// guess and fb are assumed to have the same length as every candidate.
func Prune(candidates []string, guess string, fb Feedback) []string {
	out := clone(candidates)
	for i, j := range fb {
		if i >= len(guess) {
			break
		}
		c := guess[i]
		switch j {
		case Correct:
			out = filter(out, func(w string) bool { return containsByte(w, c) })
			out = filter(out, func(w string) bool { return i < len(w) && w[i] == c })
		case Present:
			out = filter(out, func(w string) bool { return containsByte(w, c) })
			out = filter(out, func(w string) bool { return i >= len(w) || w[i] != c })
		case Absent:
			out = filter(out, func(w string) bool { return !containsByte(w, c) })
		case AlreadyAccounted:
			// resolved by another position of the same guess
		}
	}
	return out
}

// RemoveWord returns candidates without any occurrence of word.
func RemoveWord(candidates []string, word string) []string {
	return filter(clone(candidates), func(w string) bool { return w != word })
}

// filter keeps the words for which keep is true, reusing ws' backing array.
// Callers must own ws.
func filter(ws []string, keep func(string) bool) []string {
	out := ws[:0]
	for _, w := range ws {
		if keep(w) {
			out = append(out, w)
		}
	}
	return out
}

func clone(ws []string) []string {
	out := make([]string, len(ws))
	copy(out, ws)
	return out
}

func containsByte(w string, c byte) bool {
	return strings.IndexByte(w, c) >= 0
}

// apps/go-solver/internal/solver/chooser.go
//
// Guess selection.
// The session never picks words itself; it asks a Chooser. The default
// policy is uniform random over the remaining candidates.

package solver

import (
	"math/rand"
	"time"
)

// Chooser selects the next guess from a candidate set.
// It returns false when words is empty.
type Chooser interface {
	Choose(words []string) (string, bool)
}

// ChooserFunc adapts a plain function to the Chooser interface.
type ChooserFunc func(words []string) (string, bool)

func (f ChooserFunc) Choose(words []string) (string, bool) { return f(words) }

// RandomChooser picks uniformly at random from its own source.
// It is not safe for concurrent use.
type RandomChooser struct {
	rng *rand.Rand
}

// NewRandomChooser builds a chooser over src. Pass a seeded source for
// reproducible sequences.
func NewRandomChooser(src rand.Source) *RandomChooser {
	return &RandomChooser{rng: rand.New(src)}
}

// NewTimeSeededChooser is the chooser used when no seed is configured.
func NewTimeSeededChooser() *RandomChooser {
	return NewRandomChooser(rand.NewSource(time.Now().UnixNano()))
}

func (c *RandomChooser) Choose(words []string) (string, bool) {
	if len(words) == 0 {
		return "", false
	}
	return words[c.rng.Intn(len(words))], true
}

// FirstChooser always picks the first candidate.
type FirstChooser struct{}

func (FirstChooser) Choose(words []string) (string, bool) {
	if len(words) == 0 {
		return "", false
	}
	return words[0], true
}

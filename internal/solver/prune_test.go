package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []string{"audio", "crane", "zesty", "cabin", "react", "trace", "ocean", "cacao", "sheep"}

func mustFeedback(t *testing.T, code string) Feedback {
	t.Helper()
	fb, err := ParseFeedback(code)
	require.NoError(t, err)
	return fb
}

func TestPruneCorrectAtFirstPosition(t *testing.T) {
	dict := []string{"audio", "crane", "zesty"}
	got := Prune(dict, "crane", mustFeedback(t, "GRRRR"))
	assert.Equal(t, []string{"crane"}, got)

	// the remaining letters judged absent eliminate crane too
	assert.Empty(t, Prune(dict, "crane", mustFeedback(t, "G____")))
}

func TestPruneJudgments(t *testing.T) {
	tests := []struct {
		name  string
		guess string
		code  string
		want  []string
	}{
		{"correct keeps letter in place", "crane", "GRRRR", []string{"crane", "cabin", "cacao"}},
		{"present excludes position", "crane", "RYRRR", []string{"react"}},
		{"absent drops every word with the letter", "zesty", "R_RRR", []string{"audio", "cabin", "cacao"}},
		{"absent vowels", "audio", "_____", []string{"zesty", "sheep"}},
		{"already accounted is ignored", "sheep", "RRRRR", sample},
		{"mixed", "trace", "YYGGY", []string{"react"}},
		{"nothing fits", "crane", "G____", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Prune(sample, tt.guess, mustFeedback(t, tt.code)))
		})
	}
}

func TestPruneIsSubsequence(t *testing.T) {
	codes := []string{"_____", "GGGGG", "Y_G_R", "RYRYR", "G___Y", "__Y__"}
	for _, guess := range sample {
		for _, code := range codes {
			got := Prune(sample, guess, mustFeedback(t, code))
			assert.True(t, isSubsequence(got, sample), "guess %s code %s -> %v", guess, code, got)
		}
	}
}

func TestPruneIsIdempotent(t *testing.T) {
	codes := []string{"_____", "Y_G_R", "G____", "_Y___", "__G_Y"}
	for _, guess := range sample {
		for _, code := range codes {
			fb := mustFeedback(t, code)
			once := Prune(sample, guess, fb)
			assert.Equal(t, once, Prune(once, guess, fb), "guess %s code %s", guess, code)
		}
	}
}

func TestPruneAlreadyAccountedNeverChangesSet(t *testing.T) {
	for _, guess := range sample {
		assert.Equal(t, sample, Prune(sample, guess, mustFeedback(t, "RRRRR")))

		// an R next to another judgment adds nothing to that judgment's filter
		for i := 0; i < 5; i++ {
			var fb Feedback
			for j := range fb {
				fb[j] = AlreadyAccounted
			}
			fb[i] = Correct
			var want []string
			for _, w := range sample {
				if w[i] == guess[i] {
					want = append(want, w)
				}
			}
			got := Prune(sample, guess, fb)
			if want == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, want, got)
			}
		}
	}
}

func TestPruneDoesNotModifyInput(t *testing.T) {
	in := []string{"crane", "audio", "cabin"}
	snapshot := append([]string(nil), in...)
	out := Prune(in, "crane", mustFeedback(t, "GRRRR"))
	require.NotEmpty(t, out)
	out[0] = "xxxxx"
	assert.Equal(t, snapshot, in)

	removed := RemoveWord(in, "audio")
	removed[0] = "xxxxx"
	assert.Equal(t, snapshot, in)
}

func TestPruneEmptyResultIsNotNil(t *testing.T) {
	got := Prune([]string{"audio"}, "crane", mustFeedback(t, "GGGGG"))
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRemoveWord(t *testing.T) {
	dict := []string{"audio", "crane", "zesty"}
	assert.Equal(t, []string{"audio", "crane"}, RemoveWord(dict, "zesty"))
	assert.Equal(t, []string{"audio", "crane", "zesty"}, dict)

	assert.Equal(t, []string{"crane"}, RemoveWord([]string{"zesty", "crane", "zesty"}, "zesty"))
	assert.Equal(t, dict, RemoveWord(dict, "xxxxx"))
}

func isSubsequence(sub, full []string) bool {
	j := 0
	for _, w := range full {
		if j < len(sub) && sub[j] == w {
			j++
		}
	}
	return j == len(sub)
}

package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func TestScoreCodes(t *testing.T) {
	tests := []struct {
		answer, guess, code string
	}{
		{"crane", "crane", "GGGGG"},
		{"react", "trace", "YYGGY"},
		{"sheep", "zesty", "_YY__"},
		{"abide", "speed", "__YRY"}, // second e repeats the scored first e
		{"green", "eerie", "YYY_R"}, // two e in the answer, third e repeats
		{"geese", "eerie", "YG__G"},
		{"audio", "crane", "__Y__"},
	}
	for _, tt := range tests {
		t.Run(tt.answer+"/"+tt.guess, func(t *testing.T) {
			assert.Equal(t, tt.code, Code(Score(tt.answer, tt.guess)))
		})
	}
}

func TestApplyGuess(t *testing.T) {
	g, err := New("Sheep", 2)
	require.NoError(t, err)
	assert.Equal(t, "sheep", g.Answer)

	code, state, err := g.ApplyGuess("zesty")
	require.NoError(t, err)
	assert.Equal(t, "_YY__", code)
	assert.Equal(t, "playing", state)

	_, _, err = g.ApplyGuess("toolong")
	assert.ErrorIs(t, err, ErrInvalidGuess)

	code, state, err = g.ApplyGuess("SHEEP")
	require.NoError(t, err)
	assert.Equal(t, "GGGGG", code)
	assert.Equal(t, "won", state)

	_, _, err = g.ApplyGuess("crane")
	assert.ErrorIs(t, err, ErrFinished)
}

func TestApplyGuessRunsOutOfRows(t *testing.T) {
	g, err := New("sheep", 1)
	require.NoError(t, err)
	_, state, err := g.ApplyGuess("crane")
	require.NoError(t, err)
	assert.Equal(t, "lost", state)
	assert.True(t, g.Finished)
	assert.False(t, g.Won)
}

func TestNewRejectsInvalidAnswer(t *testing.T) {
	_, err := New("abc", 0)
	assert.ErrorIs(t, err, ErrInvalidGuess)
}

// The answer must survive pruning with referee feedback for every guess.
func TestPruningIsSoundWithRefereeFeedback(t *testing.T) {
	dict, err := words.Embedded()
	require.NoError(t, err)
	dict = dict[:120]

	for _, answer := range dict {
		for _, guess := range dict {
			fb, err := solver.ParseFeedback(Code(Score(answer, guess)))
			require.NoError(t, err)
			kept := solver.Prune(dict, guess, fb)
			if !assert.Contains(t, kept, answer, "answer %s guess %s code %s", answer, guess, fb) {
				return
			}
		}
	}
}

func TestPlaySolvesEveryAnswer(t *testing.T) {
	dict, err := words.Embedded()
	require.NoError(t, err)
	dict = dict[:80]

	for _, answer := range dict {
		g, err := New(answer, 0)
		require.NoError(t, err)
		s := solver.NewSession(dict, solver.WithChooser(solver.FirstChooser{}))

		var turns []Turn
		state, err := Play(g, s, func(tn Turn) { turns = append(turns, tn) })
		require.NoError(t, err)
		require.Equal(t, solver.StateSolved, state, "answer %s", answer)
		assert.Equal(t, answer, turns[len(turns)-1].Guess)
		assert.Equal(t, "GGGGG", turns[len(turns)-1].Code)
	}
}

func TestPlayStopsWhenRowsRunOut(t *testing.T) {
	dict := []string{"crane", "zesty", "sheep", "audio"}
	g, err := New("sheep", 1)
	require.NoError(t, err)
	s := solver.NewSession(dict, solver.WithChooser(solver.FirstChooser{}))
	require.Equal(t, "audio", s.Guess())

	state, err := Play(g, s, nil)
	require.NoError(t, err)
	assert.Equal(t, solver.StateAwaitingFeedback, state)
	assert.Equal(t, "lost", g.State())
}

package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(dict []string, opts ...Option) *Session {
	return NewSession(dict, append([]Option{WithChooser(FirstChooser{})}, opts...)...)
}

func TestNewSessionPrefersOpeners(t *testing.T) {
	s := newTestSession([]string{"crane", "audio", "zesty"})
	assert.Equal(t, StateAwaitingFeedback, s.State())
	assert.Equal(t, "audio", s.Guess())
	assert.Equal(t, "audio", s.Opener())
	assert.Equal(t, 3, s.Remaining())
}

func TestNewSessionFallsBackToDictionary(t *testing.T) {
	s := newTestSession([]string{"crane", "zesty"})
	assert.Equal(t, "crane", s.Guess())
	assert.Equal(t, StateAwaitingFeedback, s.State())
}

func TestNewSessionEmptyDictionaryIsExhausted(t *testing.T) {
	s := newTestSession(nil)
	assert.Equal(t, StateExhausted, s.State())
	assert.Empty(t, s.Guess())
	assert.Equal(t, 0, s.Remaining())

	_, err := s.Apply("GGGGG")
	assert.ErrorIs(t, err, ErrSessionOver)
}

func TestNewSessionCopiesDictionary(t *testing.T) {
	dict := []string{"crane", "zesty"}
	s := newTestSession(dict)
	dict[0] = "xxxxx"
	assert.Equal(t, []string{"crane", "zesty"}, s.Candidates())

	c := s.Candidates()
	c[1] = "yyyyy"
	assert.Equal(t, []string{"crane", "zesty"}, s.Candidates())
}

func TestSessionOpenerChooser(t *testing.T) {
	last := ChooserFunc(func(ws []string) (string, bool) {
		if len(ws) == 0 {
			return "", false
		}
		return ws[len(ws)-1], true
	})
	s := newTestSession([]string{"audio", "crane", "adieu", "zesty"}, WithOpenerChooser(last))
	assert.Equal(t, "adieu", s.Guess())

	// later guesses go back to the main chooser
	_, err := s.Apply("RRRRR")
	require.NoError(t, err)
	assert.Equal(t, "audio", s.Guess())
}

func TestSessionRejectRemovesGuess(t *testing.T) {
	s := newTestSession([]string{"zesty", "crane", "sheep"})
	require.Equal(t, "zesty", s.Guess())

	state, err := s.Apply("ERROR")
	require.NoError(t, err)
	assert.Equal(t, StateAwaitingFeedback, state)
	assert.Equal(t, []string{"crane", "sheep"}, s.Candidates())
	assert.Equal(t, "crane", s.Guess())
	assert.Equal(t, []Round{{Guess: "zesty", Code: "ERROR", Before: 3, After: 2}}, s.Rounds())
}

func TestSessionRejectLastWordExhausts(t *testing.T) {
	s := newTestSession([]string{"zesty"})
	state, err := s.Apply("ERROR\n")
	require.NoError(t, err)
	assert.Equal(t, StateExhausted, state)
	assert.Empty(t, s.Guess())
}

func TestSessionSolvedSkipsPruning(t *testing.T) {
	s := newTestSession(sample)
	state, err := s.Apply("GGGGG")
	require.NoError(t, err)
	assert.Equal(t, StateSolved, state)
	assert.Equal(t, sample, s.Candidates())
	assert.Equal(t, "audio", s.Guess())

	_, err = s.Apply("_____")
	assert.ErrorIs(t, err, ErrSessionOver)
}

func TestSessionSolvedAfterTruncation(t *testing.T) {
	s := newTestSession(sample)
	state, err := s.Apply("GGGGGG and more\n")
	require.NoError(t, err)
	assert.Equal(t, StateSolved, state)
}

func TestSessionPrunesToAnswer(t *testing.T) {
	s := newTestSession(sample)
	require.Equal(t, "audio", s.Guess())

	state, err := s.Apply("_____\n")
	require.NoError(t, err)
	assert.Equal(t, StateAwaitingFeedback, state)
	assert.Equal(t, []string{"zesty", "sheep"}, s.Candidates())
	assert.Equal(t, "zesty", s.Guess())

	_, err = s.Apply("_YY__")
	require.NoError(t, err)
	assert.Equal(t, []string{"sheep"}, s.Candidates())
	assert.Equal(t, "sheep", s.Guess())

	state, err = s.Apply("GGGGG")
	require.NoError(t, err)
	assert.Equal(t, StateSolved, state)

	assert.Equal(t, []Round{
		{Guess: "audio", Code: "_____", Before: 9, After: 2},
		{Guess: "zesty", Code: "_YY__", Before: 2, After: 1},
		{Guess: "sheep", Code: "GGGGG", Before: 1, After: 1},
	}, s.Rounds())
}

func TestSessionExhaustsWhenNothingFits(t *testing.T) {
	s := newTestSession([]string{"audio"})
	state, err := s.Apply("G____")
	require.NoError(t, err)
	assert.Equal(t, StateExhausted, state)
	assert.Equal(t, 0, s.Remaining())
	assert.Empty(t, s.Guess())
}

func TestSessionMalformedFeedbackKeepsState(t *testing.T) {
	s := newTestSession(sample)

	for _, raw := range []string{"GX___", "gg", "\n", "hello"} {
		state, err := s.Apply(raw)
		require.Error(t, err, raw)
		assert.Equal(t, StateAwaitingFeedback, state)
	}
	assert.Equal(t, sample, s.Candidates())
	assert.Equal(t, "audio", s.Guess())
	assert.Empty(t, s.Rounds())
}

func TestStateTerminal(t *testing.T) {
	assert.True(t, StateSolved.Terminal())
	assert.True(t, StateExhausted.Terminal())
	assert.False(t, StateStart.Terminal())
	assert.False(t, StateAwaitingFeedback.Terminal())
	assert.False(t, StatePruning.Terminal())
}

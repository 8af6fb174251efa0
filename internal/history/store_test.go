package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSummaryEmpty(t *testing.T) {
	s := openTestStore(t)
	sum, err := s.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Summary{}, sum)
}

func TestRecordAndSummary(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	base := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	results := []Result{
		{ID: "a", Opener: "audio", Outcome: "solved", Rounds: 3, Remaining: 1, FinishedAt: base},
		{ID: "b", Opener: "audio", Outcome: "solved", Rounds: 5, Remaining: 1, FinishedAt: base.Add(time.Minute)},
		{ID: "c", Opener: "adieu", Outcome: "solved", Rounds: 4, Remaining: 2, FinishedAt: base.Add(2 * time.Minute)},
		{ID: "d", Opener: "adieu", Answer: "xylyl", Outcome: "exhausted", Rounds: 6, Remaining: 0, FinishedAt: base.Add(3 * time.Minute)},
	}
	for _, r := range results {
		require.NoError(t, s.Record(ctx, r))
	}
	// duplicate IDs are ignored
	require.NoError(t, s.Record(ctx, Result{ID: "a", Opener: "crane", Outcome: "exhausted"}))

	sum, err := s.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, sum.Total)
	assert.Equal(t, 3, sum.Solved)
	assert.Equal(t, 1, sum.Exhausted)
	assert.InDelta(t, 4.0, sum.AvgRounds, 1e-9)
	assert.Equal(t, "audio", sum.BestOpener)
	assert.Equal(t, 2, sum.BestOpenerN)

	recent, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "d", recent[0].ID)
	assert.Equal(t, "xylyl", recent[0].Answer)
	assert.True(t, recent[0].FinishedAt.Equal(base.Add(3*time.Minute)))
	assert.Equal(t, "c", recent[1].ID)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Record(context.Background(), Result{ID: "x", Opener: "audio", Outcome: "solved", Rounds: 2}))
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()
	sum, err := s2.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Total)
}

func TestRecentRejectsCorruptTimestamp(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO sessions (id, opener, answer, outcome, rounds, remaining, finished_at)
        VALUES ('bad', 'audio', '', 'solved', 2, 1, 'yesterday')`)
	require.NoError(t, err)

	_, err = s.Recent(ctx, 5)
	assert.ErrorContains(t, err, "finished_at")
}

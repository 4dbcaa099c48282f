package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	require.NotNil(t, s.Client())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		require.NoError(t, err, "PRAGMA %s", tt.pragma)
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestAppendAndQueryTurns(t *testing.T) {
	s := openTestStore(t)
	repo, err := s.EventRepo()
	require.NoError(t, err)
	ctx := context.Background()

	turns := []TurnEventData{
		{SessionID: "s1", LearnerID: 7, BotText: "Hi Sam!", Status: "completed", Greeting: true},
		{SessionID: "s1", LearnerID: 7, UserText: "2+2=4", BotText: "That's right!", Status: "completed", LatencyMs: 120},
		{SessionID: "s1", LearnerID: 7, UserText: "hello", BotText: "apology", Status: "errored"},
	}
	for _, data := range turns {
		require.NoError(t, repo.AppendTurn(ctx, data))
	}

	got, err := repo.RecentTurns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Newest first.
	assert.Equal(t, "errored", got[0].Status)
	assert.Equal(t, "2+2=4", got[1].UserText)
	assert.Greater(t, got[0].Sequence, got[1].Sequence)
}

func TestAppendSessionAndFeedback(t *testing.T) {
	s := openTestStore(t)
	repo, err := s.EventRepo()
	require.NoError(t, err)
	ctx := context.Background()

	assert.NoError(t, repo.AppendSession(ctx, SessionEventData{
		SessionID: "s1", LearnerID: 7, LearnerName: "Sam", Action: "start",
	}))

	assert.NoError(t, repo.AppendFeedback(ctx, FeedbackEventData{
		LearnerID: 7, Rating: 1, LatencyMs: 120, Delivered: true,
	}))
}

func TestSequenceMonotonic(t *testing.T) {
	s := openTestStore(t)
	sc, err := newSequenceCounter(s.DB())
	require.NoError(t, err)

	ctx := context.Background()
	prev, err := sc.Next(ctx)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		n, err := sc.Next(ctx)
		require.NoError(t, err)
		require.Equal(t, prev+1, n)
		prev = n
	}
}

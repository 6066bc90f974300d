package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	for _, table := range []string{TableStats, TableQuizSessions, TableAnswerEvents, "global_sequence"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if want := int64(i + 1); seq != want {
			t.Errorf("seq[%d] = %d, want %d", i, seq, want)
		}
	}
}

func TestStatsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.StatsRepo()
	ctx := context.Background()

	empty, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.False(t, empty.HasBestScore)
	assert.False(t, empty.HasAverageResponseTime)

	require.NoError(t, repo.Save(ctx, Stats{
		BestScorePercent: 80, HasBestScore: true,
		AverageResponseTimeSeconds: 4, HasAverageResponseTime: true,
	}))
	require.NoError(t, repo.Save(ctx, Stats{
		BestScorePercent: 90, HasBestScore: true,
	}))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{
		BestScorePercent: 90, HasBestScore: true,
		AverageResponseTimeSeconds: 4, HasAverageResponseTime: true,
	}, got)

	require.NoError(t, repo.Reset(ctx))
	got, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{}, got)
}

func TestSessionEventsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, id := range []string{"s1", "s2", "s3"} {
		require.NoError(t, repo.AppendSession(ctx, SessionEventData{
			SessionID:     id,
			Level:         "medium",
			Selection:     []int{2, 3, i + 4},
			QuestionCount: 10,
			CorrectCount:  7 + i,
			ScorePercent:  70 + 10*i,
			Grade:         "good",
			AvgResponseMs: 3200,
			DurationMs:    45000,
			LongestStreak: 4,
		}))
	}

	all, err := repo.QuerySessions(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "s3", all[0].SessionID)
	assert.Equal(t, []int{2, 3, 6}, all[0].Selection)
	assert.Equal(t, 90, all[0].ScorePercent)
	assert.Greater(t, all[0].Sequence, all[1].Sequence)
	assert.WithinDuration(t, time.Now(), all[0].Timestamp, time.Minute)

	limited, err := repo.QuerySessions(ctx, QueryOpts{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	after, err := repo.QuerySessions(ctx, QueryOpts{After: all[2].Sequence})
	require.NoError(t, err)
	assert.Len(t, after, 2)
}

func TestAnswerEventsAndAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	acc, err := repo.BaseAccuracy(ctx, 7)
	require.NoError(t, err)
	assert.Zero(t, acc)

	sel := func(v int) *int { return &v }
	answers := []AnswerEventData{
		{SessionID: "a", BaseNumber: 7, Multiplier: 8, CorrectAnswer: 56, Selected: sel(56), Correct: true, ResponseMs: 2100},
		{SessionID: "a", BaseNumber: 7, Multiplier: 6, CorrectAnswer: 42, Selected: sel(13), ResponseMs: 3000,
			DiagnosisCategory: "misconception", MisconceptionID: "mul-added"},
		{SessionID: "a", BaseNumber: 7, Multiplier: 4, CorrectAnswer: 28, Selected: nil, ResponseMs: 15000,
			DiagnosisCategory: "no-answer"},
		{SessionID: "a", BaseNumber: 7, Multiplier: 3, CorrectAnswer: 21, Selected: sel(21), Correct: true, ResponseMs: 1900},
		{SessionID: "b", BaseNumber: 3, Multiplier: 3, CorrectAnswer: 9, Selected: sel(9), Correct: true, ResponseMs: 1200},
	}
	for _, a := range answers {
		require.NoError(t, repo.AppendAnswer(ctx, a))
	}

	acc, err = repo.BaseAccuracy(ctx, 7)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, acc, 1e-9)

	got, err := repo.SessionAnswers(ctx, "a")
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, 56, *got[0].Selected)
	assert.Nil(t, got[2].Selected)
	assert.Equal(t, "mul-added", got[1].MisconceptionID)
	assert.Equal(t, "no-answer", got[2].DiagnosisCategory)

	require.NoError(t, repo.Reset(ctx))
	got, err = repo.SessionAnswers(ctx, "a")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDefaultDBPath_Env(t *testing.T) {
	dir := t.TempDir()
	want := dir + "/nested/drill.db"
	t.Setenv("TIMESDRILL_DB", want)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.DirExists(t, dir+"/nested")
}

func TestDefaultDBPath_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TIMESDRILL_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, dir+"/timesdrill/timesdrill.db", got)
}

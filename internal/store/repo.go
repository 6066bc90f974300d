package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// Stats are the only aggregate values persisted across sessions.
// The Has flags distinguish "never recorded" from a recorded zero.
type Stats struct {
	BestScorePercent           int
	HasBestScore               bool
	AverageResponseTimeSeconds int
	HasAverageResponseTime     bool
}

// StatsRepo loads and saves the aggregate statistics.
type StatsRepo interface {
	// Load returns the stored statistics; missing values have their Has flag unset.
	Load(ctx context.Context) (Stats, error)

	// Save writes every value whose Has flag is set.
	Save(ctx context.Context, stats Stats) error

	// Reset deletes all statistics.
	Reset(ctx context.Context) error
}

// SessionEventData captures one completed quiz.
type SessionEventData struct {
	SessionID     string
	Level         string
	Selection     []int
	QuestionCount int
	CorrectCount  int
	ScorePercent  int
	Grade         string
	AvgResponseMs int64
	DurationMs    int64
	LongestStreak int
}

// SessionEventRecord is a SessionEventData as read back from the store.
type SessionEventRecord struct {
	SessionEventData
	Sequence  int64
	Timestamp time.Time
}

// AnswerEventData captures one answered question. Selected is nil when the
// question timed out.
type AnswerEventData struct {
	SessionID         string
	BaseNumber        int
	Multiplier        int
	CorrectAnswer     int
	Selected          *int
	Correct           bool
	ResponseMs        int64
	DiagnosisCategory string
	MisconceptionID   string
}

// AnswerEventRecord is an AnswerEventData as read back from the store.
type AnswerEventRecord struct {
	AnswerEventData
	Sequence  int64
	Timestamp time.Time
}

// EventRepo provides append and query access to the session and answer logs.
type EventRepo interface {
	// AppendSession records a completed quiz.
	AppendSession(ctx context.Context, data SessionEventData) error

	// AppendAnswer records a single answered question.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// QuerySessions returns completed quizzes, newest first.
	QuerySessions(ctx context.Context, opts QueryOpts) ([]SessionEventRecord, error)

	// SessionAnswers returns the answers of one quiz in the order given.
	SessionAnswers(ctx context.Context, sessionID string) ([]AnswerEventRecord, error)

	// BaseAccuracy returns the historical accuracy for a base number,
	// or 0 when it was never practised.
	BaseAccuracy(ctx context.Context, base int) (float64, error)

	// Reset deletes the session and answer logs.
	Reset(ctx context.Context) error
}

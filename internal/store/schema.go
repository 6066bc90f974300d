package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table names.
const (
	TableStats        = "stats"
	TableQuizSessions = "quiz_sessions"
	TableAnswerEvents = "answer_events"
)

var (
	// StatsColumns holds the columns for the "stats" table.
	StatsColumns = []*schema.Column{
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeInt},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// StatsTable holds the two aggregate statistics as key/value rows.
	StatsTable = &schema.Table{
		Name:       TableStats,
		Columns:    StatsColumns,
		PrimaryKey: []*schema.Column{StatsColumns[0]},
	}

	// QuizSessionsColumns holds the columns for the "quiz_sessions" table.
	QuizSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "level", Type: field.TypeString},
		{Name: "selection", Type: field.TypeString},
		{Name: "question_count", Type: field.TypeInt},
		{Name: "correct_count", Type: field.TypeInt},
		{Name: "score_percent", Type: field.TypeInt},
		{Name: "grade", Type: field.TypeString},
		{Name: "avg_response_ms", Type: field.TypeInt64},
		{Name: "duration_ms", Type: field.TypeInt64},
		{Name: "longest_streak", Type: field.TypeInt},
	}
	// QuizSessionsTable holds one row per completed quiz.
	QuizSessionsTable = &schema.Table{
		Name:       TableQuizSessions,
		Columns:    QuizSessionsColumns,
		PrimaryKey: []*schema.Column{QuizSessionsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "quizsession_timestamp", Unique: false, Columns: []*schema.Column{QuizSessionsColumns[2]}},
		},
	}

	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "base_number", Type: field.TypeInt},
		{Name: "multiplier", Type: field.TypeInt},
		{Name: "correct_answer", Type: field.TypeInt},
		{Name: "selected", Type: field.TypeInt, Nullable: true},
		{Name: "correct", Type: field.TypeBool},
		{Name: "response_ms", Type: field.TypeInt64},
		{Name: "diagnosis_category", Type: field.TypeString, Default: ""},
		{Name: "misconception_id", Type: field.TypeString, Default: ""},
	}
	// AnswerEventsTable holds one row per answered question.
	AnswerEventsTable = &schema.Table{
		Name:       TableAnswerEvents,
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "answerevent_session_id", Unique: false, Columns: []*schema.Column{AnswerEventsColumns[3]}},
			{Name: "answerevent_base_number", Unique: false, Columns: []*schema.Column{AnswerEventsColumns[4]}},
		},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		StatsTable,
		QuizSessionsTable,
		AnswerEventsTable,
	}
)

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

var sessionColumns = []string{
	"sequence", "timestamp", "session_id", "level", "selection",
	"question_count", "correct_count", "score_percent", "grade",
	"avg_response_ms", "duration_ms", "longest_streak",
}

func (r *eventRepo) AppendSession(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	selection, err := json.Marshal(data.Selection)
	if err != nil {
		return fmt.Errorf("encode selection: %w", err)
	}

	query, args := builder().
		Insert(TableQuizSessions).
		Columns(sessionColumns...).
		Values(
			seqNum, time.Now().UTC(), data.SessionID, data.Level, string(selection),
			data.QuestionCount, data.CorrectCount, data.ScorePercent, data.Grade,
			data.AvgResponseMs, data.DurationMs, data.LongestStreak,
		).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessions(ctx context.Context, opts QueryOpts) ([]SessionEventRecord, error) {
	sel := builder().
		Select(sessionColumns...).
		From(entsql.Table(TableQuizSessions)).
		OrderBy(entsql.Desc("sequence"))

	var preds []*entsql.Predicate
	if opts.After > 0 {
		preds = append(preds, entsql.GT("sequence", opts.After))
	}
	if opts.Before > 0 {
		preds = append(preds, entsql.LT("sequence", opts.Before))
	}
	if !opts.From.IsZero() {
		preds = append(preds, entsql.GTE("timestamp", opts.From))
	}
	if !opts.To.IsZero() {
		preds = append(preds, entsql.LTE("timestamp", opts.To))
	}
	if len(preds) > 0 {
		sel = sel.Where(entsql.And(preds...))
	}
	if opts.Limit > 0 {
		sel = sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	defer rows.Close()

	var records []SessionEventRecord
	for rows.Next() {
		var (
			rec       SessionEventRecord
			selection string
		)
		err := rows.Scan(
			&rec.Sequence, &rec.Timestamp, &rec.SessionID, &rec.Level, &selection,
			&rec.QuestionCount, &rec.CorrectCount, &rec.ScorePercent, &rec.Grade,
			&rec.AvgResponseMs, &rec.DurationMs, &rec.LongestStreak,
		)
		if err != nil {
			return nil, fmt.Errorf("scan session event: %w", err)
		}
		if err := json.Unmarshal([]byte(selection), &rec.Selection); err != nil {
			return nil, fmt.Errorf("decode selection of %s: %w", rec.SessionID, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read session events: %w", err)
	}
	return records, nil
}

func (r *eventRepo) Reset(ctx context.Context) error {
	for _, table := range []string{TableAnswerEvents, TableQuizSessions} {
		query, args := builder().Delete(table).Query()
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("reset %s: %w", table, err)
		}
	}
	return nil
}

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

var answerColumns = []string{
	"sequence", "timestamp", "session_id", "base_number", "multiplier",
	"correct_answer", "selected", "correct", "response_ms",
	"diagnosis_category", "misconception_id",
}

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	var selected any
	if data.Selected != nil {
		selected = *data.Selected
	}

	query, args := builder().
		Insert(TableAnswerEvents).
		Columns(answerColumns...).
		Values(
			seqNum, time.Now().UTC(), data.SessionID, data.BaseNumber, data.Multiplier,
			data.CorrectAnswer, selected, data.Correct, data.ResponseMs,
			data.DiagnosisCategory, data.MisconceptionID,
		).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) SessionAnswers(ctx context.Context, sessionID string) ([]AnswerEventRecord, error) {
	query, args := builder().
		Select(answerColumns...).
		From(entsql.Table(TableAnswerEvents)).
		Where(entsql.EQ("session_id", sessionID)).
		OrderBy(entsql.Asc("sequence")).
		Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	defer rows.Close()

	var records []AnswerEventRecord
	for rows.Next() {
		var (
			rec      AnswerEventRecord
			selected sql.NullInt64
		)
		err := rows.Scan(
			&rec.Sequence, &rec.Timestamp, &rec.SessionID, &rec.BaseNumber, &rec.Multiplier,
			&rec.CorrectAnswer, &selected, &rec.Correct, &rec.ResponseMs,
			&rec.DiagnosisCategory, &rec.MisconceptionID,
		)
		if err != nil {
			return nil, fmt.Errorf("scan answer event: %w", err)
		}
		if selected.Valid {
			v := int(selected.Int64)
			rec.Selected = &v
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read answer events: %w", err)
	}
	return records, nil
}

func (r *eventRepo) BaseAccuracy(ctx context.Context, base int) (float64, error) {
	query, args := builder().
		Select(entsql.Count("*"), "COALESCE(SUM(correct), 0)").
		From(entsql.Table(TableAnswerEvents)).
		Where(entsql.EQ("base_number", base)).
		Query()

	var total, correct int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total, &correct); err != nil {
		return 0, fmt.Errorf("query base accuracy: %w", err)
	}
	if total == 0 {
		return 0, nil
	}
	return float64(correct) / float64(total), nil
}

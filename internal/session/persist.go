package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/timesdrill/internal/store"
)

// Persist writes a finished session: one answer event per record, the
// session event, and the updated statistics. It returns the new statistics.
// Failures are joined. Statistics are only written when the previous ones
// could be read, so a failed read never lowers the stored best score.
func Persist(ctx context.Context, events store.EventRepo, stats store.StatsRepo, s *QuizSession) (store.Stats, error) {
	summary := s.BuildSummary()
	var errs []error

	if events != nil {
		for _, rec := range s.Records {
			if err := events.AppendAnswer(ctx, answerEventData(s.ID, rec)); err != nil {
				errs = append(errs, err)
				break
			}
		}
		if err := events.AppendSession(ctx, sessionEventData(summary)); err != nil {
			errs = append(errs, err)
		}
	}

	var next store.Stats
	if stats != nil {
		prev, err := stats.Load(ctx)
		if err != nil {
			errs = append(errs, fmt.Errorf("load stats: %w", err))
			return next, errors.Join(errs...)
		}
		next = UpdateStats(prev, summary)
		if err := stats.Save(ctx, next); err != nil {
			errs = append(errs, err)
		}
	}

	return next, errors.Join(errs...)
}

func answerEventData(sessionID string, rec AnswerRecord) store.AnswerEventData {
	data := store.AnswerEventData{
		SessionID:     sessionID,
		BaseNumber:    rec.Question.BaseNumber,
		Multiplier:    rec.Question.Multiplier,
		CorrectAnswer: rec.Question.CorrectAnswer,
		Correct:       rec.Correct,
		ResponseMs:    rec.ResponseTime.Milliseconds(),
	}
	if rec.Answered {
		selected := rec.Selected
		data.Selected = &selected
	}
	if rec.Diagnosis != nil {
		data.DiagnosisCategory = string(rec.Diagnosis.Category)
		data.MisconceptionID = rec.Diagnosis.MisconceptionID
	}
	return data
}

func sessionEventData(sum *SessionSummary) store.SessionEventData {
	return store.SessionEventData{
		SessionID:     sum.SessionID,
		Level:         string(sum.Level),
		Selection:     sum.Selection,
		QuestionCount: sum.TotalQuestions,
		CorrectCount:  sum.TotalCorrect,
		ScorePercent:  sum.ScorePercent,
		Grade:         string(sum.Grade),
		AvgResponseMs: sum.AverageResponse.Milliseconds(),
		DurationMs:    sum.Duration.Milliseconds(),
		LongestStreak: sum.LongestStreak,
	}
}

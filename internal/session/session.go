package session

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/abhisek/timesdrill/internal/quizgen"
)

// ErrNotAwaitingAnswer is returned when an answer arrives outside PhaseActive.
var ErrNotAwaitingAnswer = errors.New("session is not awaiting an answer")

// CurrentQuestion returns the active question, or nil once finished.
func (s *QuizSession) CurrentQuestion() *quizgen.Question {
	if s.Index < 0 || s.Index >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.Index]
}

// Answer records the selected option for the current question.
func (s *QuizSession) Answer(selected int, now time.Time) (*AnswerRecord, error) {
	return s.record(selected, true, now)
}

// TimeOut records "no answer" for the current question. It scores as incorrect.
func (s *QuizSession) TimeOut(now time.Time) (*AnswerRecord, error) {
	return s.record(0, false, now)
}

func (s *QuizSession) record(selected int, answered bool, now time.Time) (*AnswerRecord, error) {
	q := s.CurrentQuestion()
	if q == nil || s.Phase != PhaseActive {
		return nil, ErrNotAwaitingAnswer
	}

	rt := now.Sub(s.QuestionStartTime)
	if rt < 0 {
		rt = 0
	}
	if limit := s.Profile.TimeLimit(); !answered && limit > 0 && rt > limit {
		rt = limit
	}

	correct := answered && quizgen.CheckAnswer(selected, q)
	rec := AnswerRecord{
		Question:     *q,
		Selected:     selected,
		Answered:     answered,
		Correct:      correct,
		ResponseTime: rt,
		AnsweredAt:   now,
	}

	// Running mean over answered-or-timed-out questions.
	i := float64(len(s.Records))
	s.AverageResponseSeconds = (s.AverageResponseSeconds*i + rt.Seconds()) / (i + 1)

	if correct {
		s.Correct++
		s.Streak++
		if s.Streak > s.LongestStreak {
			s.LongestStreak = s.Streak
		}
	} else {
		s.Streak = 0
		if s.DiagnosisService != nil {
			rec.Diagnosis = s.DiagnosisService.Diagnose(
				context.Background(), q, selected, answered, int(rt.Milliseconds()))
		}
	}

	s.Records = append(s.Records, rec)
	s.Phase = PhaseFeedback
	return &s.Records[len(s.Records)-1], nil
}

// Advance moves past the feedback of the current question. It returns false
// once every question has been answered.
func (s *QuizSession) Advance(now time.Time) bool {
	if s.Phase == PhaseFinished {
		return false
	}
	s.Index++
	if s.Index >= len(s.Questions) {
		s.Phase = PhaseFinished
		s.EndTime = now
		return false
	}
	s.Phase = PhaseActive
	s.QuestionStartTime = now
	return true
}

// Finished reports whether every question has been answered.
func (s *QuizSession) Finished() bool {
	return s.Phase == PhaseFinished
}

// Remaining returns the countdown for the current question, never negative.
func (s *QuizSession) Remaining(now time.Time) time.Duration {
	left := s.Profile.TimeLimit() - now.Sub(s.QuestionStartTime)
	if left < 0 {
		return 0
	}
	return left
}

// RemainingSeconds rounds Remaining up to whole seconds for display.
func (s *QuizSession) RemainingSeconds(now time.Time) int {
	return int(math.Ceil(s.Remaining(now).Seconds()))
}

// TimerWarning reports whether the countdown has entered the last 30% of
// the time per question, rounded up to whole seconds.
func (s *QuizSession) TimerWarning(remaining time.Duration) bool {
	threshold := time.Duration(math.Ceil(float64(s.Profile.TimePerQuestion)*0.3)) * time.Second
	return remaining <= threshold
}

// ShowStreakBadge reports whether the current streak deserves the badge.
func (s *QuizSession) ShowStreakBadge() bool {
	return s.Streak >= StreakBadgeThreshold
}

// ScorePercent returns the rounded percentage of correct answers over the
// whole quiz length.
func (s *QuizSession) ScorePercent() int {
	return scorePercent(s.Correct, len(s.Questions))
}

// Progress returns the 1-based number of the current question and the total.
func (s *QuizSession) Progress() (current, total int) {
	current = s.Index + 1
	if current > len(s.Questions) {
		current = len(s.Questions)
	}
	return current, len(s.Questions)
}

func scorePercent(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) * 100 / float64(total)))
}

package session

import (
	"errors"
	"testing"
	"time"

	"github.com/abhisek/timesdrill/internal/diagnosis"
	"github.com/abhisek/timesdrill/internal/quizgen"
	"github.com/abhisek/timesdrill/internal/store"
)

func TestGradeFor(t *testing.T) {
	tests := []struct {
		score int
		want  Grade
	}{
		{100, GradeExcellent},
		{91, GradeExcellent},
		{90, GradeGood},
		{71, GradeGood},
		{70, GradeFair},
		{61, GradeFair},
		{60, GradeFailed},
		{0, GradeFailed},
	}
	for _, tt := range tests {
		if got := GradeFor(tt.score); got != tt.want {
			t.Errorf("GradeFor(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestBuildSummary(t *testing.T) {
	s := testSession()
	s.DiagnosisService = diagnosis.NewService(nil)

	answerAt(t, s, 12, t0.Add(2*time.Second)) // 3×4 correct
	answerAt(t, s, 11, t0.Add(6*time.Second)) // 5×6 added
	if _, err := s.TimeOut(t0.Add(20 * time.Second)); err != nil {
		t.Fatal(err)
	}
	s.Advance(t0.Add(20 * time.Second))
	answerAt(t, s, 40, t0.Add(24*time.Second)) // 5×8 correct

	sum := s.BuildSummary()
	if sum.ScorePercent != 50 || sum.Grade != GradeFailed {
		t.Errorf("score/grade = %d/%q, want 50/failed", sum.ScorePercent, sum.Grade)
	}
	if sum.TotalCorrect != 2 || sum.TotalQuestions != 4 {
		t.Errorf("correct = %d of %d, want 2 of 4", sum.TotalCorrect, sum.TotalQuestions)
	}
	if sum.Duration != 24*time.Second {
		t.Errorf("Duration = %v, want 24s", sum.Duration)
	}
	if sum.LongestStreak != 1 {
		t.Errorf("LongestStreak = %d, want 1", sum.LongestStreak)
	}
	if sum.Level != quizgen.LevelMedium || sum.TimePerQuestion != 10 {
		t.Errorf("level/time = %q/%d", sum.Level, sum.TimePerQuestion)
	}

	want := []BaseResult{{Base: 3, Attempted: 2, Correct: 1}, {Base: 5, Attempted: 2, Correct: 1}}
	if len(sum.BaseResults) != len(want) {
		t.Fatalf("BaseResults = %+v", sum.BaseResults)
	}
	for i := range want {
		if sum.BaseResults[i] != want[i] {
			t.Errorf("BaseResults[%d] = %+v, want %+v", i, sum.BaseResults[i], want[i])
		}
	}

	if sum.Mistakes[diagnosis.CategoryMisconception] != 1 || sum.Mistakes[diagnosis.CategoryNoAnswer] != 1 {
		t.Errorf("Mistakes = %v", sum.Mistakes)
	}
	// 2s, 4s, 10s (clamped), 4s
	if got := sum.AverageResponseSeconds(); got != 5 {
		t.Errorf("AverageResponseSeconds = %d, want 5", got)
	}
}

func TestUpdateStats(t *testing.T) {
	first := UpdateStats(store.Stats{}, &SessionSummary{ScorePercent: 40, AverageResponse: 6 * time.Second})
	if !first.HasBestScore || first.BestScorePercent != 40 {
		t.Errorf("first best = %+v, want 40", first)
	}
	if !first.HasAverageResponseTime || first.AverageResponseTimeSeconds != 6 {
		t.Errorf("first avg = %+v, want 6", first)
	}

	lower := UpdateStats(first, &SessionSummary{ScorePercent: 20, AverageResponse: 2600 * time.Millisecond})
	if lower.BestScorePercent != 40 {
		t.Errorf("best dropped to %d", lower.BestScorePercent)
	}
	if lower.AverageResponseTimeSeconds != 3 {
		t.Errorf("avg = %d, want 3 (latest session, rounded)", lower.AverageResponseTimeSeconds)
	}

	higher := UpdateStats(lower, &SessionSummary{ScorePercent: 95, AverageResponse: time.Second})
	if higher.BestScorePercent != 95 {
		t.Errorf("best = %d, want 95", higher.BestScorePercent)
	}

	zero := UpdateStats(store.Stats{}, &SessionSummary{ScorePercent: 0})
	if !zero.HasBestScore || zero.BestScorePercent != 0 {
		t.Errorf("a zero score should still be recorded: %+v", zero)
	}
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name string
		s    Settings
		ok   bool
	}{
		{"valid", Settings{Selection: []int{2, 3}, Count: 10, Level: quizgen.LevelHard}, true},
		{"empty selection", Settings{Selection: nil, Count: 10, Level: quizgen.LevelEasy}, false},
		{"base too large", Settings{Selection: []int{100}, Count: 10, Level: quizgen.LevelEasy}, false},
		{"zero base", Settings{Selection: []int{0}, Count: 10, Level: quizgen.LevelEasy}, false},
		{"zero count", Settings{Selection: []int{2}, Count: 0, Level: quizgen.LevelEasy}, false},
		{"count too large", Settings{Selection: []int{2}, Count: 101, Level: quizgen.LevelEasy}, false},
		{"bad level", Settings{Selection: []int{2}, Count: 5, Level: "nightmare"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, quizgen.ErrInvalidInput) {
				t.Errorf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestSettings_Request(t *testing.T) {
	s := Settings{Selection: []int{4, 6}, Count: 7, Level: quizgen.LevelMedium}
	req := s.Request(quizgen.DefaultProfile(quizgen.LevelMedium))
	req.Selection[0] = 99
	if s.Selection[0] != 4 {
		t.Error("Request shares the selection slice")
	}
	if req.Count != 7 {
		t.Errorf("Count = %d, want 7", req.Count)
	}
}

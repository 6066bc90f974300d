package session

import (
	"math"
	"sort"
	"time"

	"github.com/abhisek/timesdrill/internal/diagnosis"
	"github.com/abhisek/timesdrill/internal/quizgen"
)

// Grade is the verdict shown with the final score.
type Grade string

const (
	GradeExcellent Grade = "excellent"
	GradeGood      Grade = "good"
	GradeFair      Grade = "fair"
	GradeFailed    Grade = "failed"
)

// GradeFor maps a score percentage to its grade band.
func GradeFor(score int) Grade {
	switch {
	case score >= 91:
		return GradeExcellent
	case score >= 71:
		return GradeGood
	case score >= 61:
		return GradeFair
	default:
		return GradeFailed
	}
}

// BaseResult tracks performance on one base number within a session.
type BaseResult struct {
	Base      int
	Attempted int
	Correct   int
}

// SessionSummary holds the data displayed on the summary screen.
type SessionSummary struct {
	SessionID       string
	Level           quizgen.Level
	Selection       []int
	TimePerQuestion int
	ScorePercent    int
	Grade           Grade
	TotalQuestions  int
	TotalCorrect    int
	Duration        time.Duration
	AverageResponse time.Duration
	LongestStreak   int
	BaseResults     []BaseResult
	Mistakes        map[diagnosis.ErrorCategory]int
	FinishedAt      time.Time
}

// AverageResponseSeconds is the rounded mean response time.
func (s *SessionSummary) AverageResponseSeconds() int {
	return int(math.Round(s.AverageResponse.Seconds()))
}

// BuildSummary creates a SessionSummary from the session state.
func (s *QuizSession) BuildSummary() *SessionSummary {
	end := s.EndTime
	if end.IsZero() && len(s.Records) > 0 {
		end = s.Records[len(s.Records)-1].AnsweredAt
	}

	byBase := make(map[int]*BaseResult)
	mistakes := make(map[diagnosis.ErrorCategory]int)
	for _, r := range s.Records {
		br := byBase[r.Question.BaseNumber]
		if br == nil {
			br = &BaseResult{Base: r.Question.BaseNumber}
			byBase[r.Question.BaseNumber] = br
		}
		br.Attempted++
		if r.Correct {
			br.Correct++
			continue
		}
		cat := diagnosis.CategoryUnclassified
		if r.Diagnosis != nil {
			cat = r.Diagnosis.Category
		} else if !r.Answered {
			cat = diagnosis.CategoryNoAnswer
		}
		mistakes[cat]++
	}

	results := make([]BaseResult, 0, len(byBase))
	for _, br := range byBase {
		results = append(results, *br)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Base < results[j].Base })

	score := s.ScorePercent()
	return &SessionSummary{
		SessionID:       s.ID,
		Level:           s.Settings.Level,
		Selection:       append([]int(nil), s.Settings.Selection...),
		TimePerQuestion: s.Profile.TimePerQuestion,
		ScorePercent:    score,
		Grade:           GradeFor(score),
		TotalQuestions:  len(s.Questions),
		TotalCorrect:    s.Correct,
		Duration:        end.Sub(s.StartTime),
		AverageResponse: time.Duration(s.AverageResponseSeconds * float64(time.Second)),
		LongestStreak:   s.LongestStreak,
		BaseResults:     results,
		Mistakes:        mistakes,
		FinishedAt:      end,
	}
}

package diagnosis

import "github.com/abhisek/timesdrill/internal/quizgen"

// ErrorCategory classifies a wrong answer.
type ErrorCategory string

const (
	CategoryNoAnswer      ErrorCategory = "no-answer"
	CategoryCareless      ErrorCategory = "careless"
	CategorySpeedRush     ErrorCategory = "speed-rush"
	CategoryMisconception ErrorCategory = "misconception"
	CategoryUnclassified  ErrorCategory = "unclassified"
)

// Categories lists every category in display order.
func Categories() []ErrorCategory {
	return []ErrorCategory{
		CategoryMisconception,
		CategoryCareless,
		CategorySpeedRush,
		CategoryNoAnswer,
		CategoryUnclassified,
	}
}

// ClassifyInput holds the context for classification.
type ClassifyInput struct {
	Question       *quizgen.Question
	Selected       int  // Chosen option; meaningless when Answered is false
	Answered       bool // False when the question timed out
	ResponseTimeMs int
	BaseAccuracy   float64 // Historical accuracy for the base number (0.0–1.0)
}

// SelectedKind returns the distractor kind of the chosen option, or "" when
// nothing was chosen.
func (in *ClassifyInput) SelectedKind() quizgen.DistractorKind {
	if !in.Answered || in.Question == nil {
		return ""
	}
	return in.Question.KindOf(in.Selected)
}

// DiagnosisResult is the output of classifying a wrong answer.
type DiagnosisResult struct {
	Category        ErrorCategory
	MisconceptionID string  // Non-empty only when Category == misconception
	Confidence      float64 // 0.0–1.0
	ClassifierName  string
}

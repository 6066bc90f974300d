package diagnosis

import (
	"context"

	"github.com/abhisek/timesdrill/internal/quizgen"
)

// AccuracySource reports historical accuracy for a base number.
// The store's answer log implements it.
type AccuracySource interface {
	BaseAccuracy(ctx context.Context, base int) (float64, error)
}

// Service coordinates rule-based error diagnosis.
type Service struct {
	classifiers []Classifier
	accuracy    AccuracySource
}

// NewService creates a diagnosis service. If accuracy is nil, careless
// classification never fires.
func NewService(accuracy AccuracySource) *Service {
	return &Service{
		classifiers: DefaultClassifiers(),
		accuracy:    accuracy,
	}
}

// Diagnose classifies a wrong or missing answer. It is synchronous; a failing
// accuracy lookup counts as no history.
func (s *Service) Diagnose(
	ctx context.Context,
	question *quizgen.Question,
	selected int,
	answered bool,
	responseTimeMs int,
) *DiagnosisResult {
	input := &ClassifyInput{
		Question:       question,
		Selected:       selected,
		Answered:       answered,
		ResponseTimeMs: responseTimeMs,
	}
	if s.accuracy != nil && question != nil {
		input.BaseAccuracy, _ = s.accuracy.BaseAccuracy(ctx, question.BaseNumber)
	}

	cat, conf, name := RunClassifiers(s.classifiers, input)
	if cat == "" {
		return &DiagnosisResult{
			Category:       CategoryUnclassified,
			Confidence:     0,
			ClassifierName: "none",
		}
	}

	result := &DiagnosisResult{
		Category:       cat,
		Confidence:     conf,
		ClassifierName: name,
	}
	if cat == CategoryMisconception {
		if m := MisconceptionForKind(input.SelectedKind()); m != nil {
			result.MisconceptionID = m.ID
		}
	}
	return result
}

package quizgen

import "fmt"

// OptionCount is the number of answer choices on every question.
const OptionCount = 4

// StructuralValidator checks option count, positivity, distinctness and
// that the correct answer is among the options.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question) *ValidationError {
	if q.BaseNumber <= 0 || q.Multiplier <= 0 {
		return v.fail("operands must be positive, got %d and %d", q.BaseNumber, q.Multiplier)
	}
	if len(q.Options) != OptionCount {
		return v.fail("expected %d options, got %d", OptionCount, len(q.Options))
	}
	if len(q.OptionKinds) != 0 && len(q.OptionKinds) != len(q.Options) {
		return v.fail("option kinds do not match options (%d vs %d)", len(q.OptionKinds), len(q.Options))
	}

	seen := make(map[int]bool, len(q.Options))
	hasCorrect := false
	for _, o := range q.Options {
		if o <= 0 {
			return v.fail("option %d is not positive", o)
		}
		if seen[o] {
			return v.fail("option %d appears twice", o)
		}
		seen[o] = true
		if o == q.CorrectAnswer {
			hasCorrect = true
		}
	}
	if !hasCorrect {
		return v.fail("correct answer %d is not among the options", q.CorrectAnswer)
	}
	return nil
}

func (v *StructuralValidator) fail(format string, args ...any) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf(format, args...)}
}

package quizgen

import (
	"fmt"
	"regexp"
	"strconv"
)

// ProductValidator recomputes the answer from the rendered prompt and
// compares it with CorrectAnswer.
type ProductValidator struct{}

func (v *ProductValidator) Name() string { return "product" }

// productRe matches "a × b", "a x b" and "a * b".
var productRe = regexp.MustCompile(`(\d+)\s*([×x*])\s*(\d+)`)

func (v *ProductValidator) Validate(q *Question) *ValidationError {
	computed, err := computeProduct(q.PromptText())
	if err != nil {
		return &ValidationError{Validator: v.Name(), Message: err.Error()}
	}
	if computed != q.CorrectAnswer {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("computed %d but question claims %d", computed, q.CorrectAnswer),
		}
	}
	return nil
}

// computeProduct extracts the first multiplication in text and evaluates it.
func computeProduct(text string) (int, error) {
	m := productRe.FindStringSubmatch(text)
	if m == nil {
		return 0, fmt.Errorf("no multiplication found in %q", text)
	}
	a, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, err
	}
	b, err := strconv.Atoi(m[3])
	if err != nil {
		return 0, err
	}
	return a * b, nil
}

package diagnosis

// NoAnswerClassifier flags questions that ran out of time.
type NoAnswerClassifier struct{}

func (c *NoAnswerClassifier) Name() string { return "no-answer" }

func (c *NoAnswerClassifier) Classify(input *ClassifyInput) (ErrorCategory, float64) {
	if !input.Answered {
		return CategoryNoAnswer, 1.0
	}
	return "", 0
}

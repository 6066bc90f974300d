package diagnosis

// DistractorClassifier maps the chosen wrong option to the misconception
// that produces it, e.g. 7 × 8 answered with 15 means the numbers were added.
type DistractorClassifier struct{}

func (c *DistractorClassifier) Name() string { return "distractor" }

func (c *DistractorClassifier) Classify(input *ClassifyInput) (ErrorCategory, float64) {
	if MisconceptionForKind(input.SelectedKind()) != nil {
		return CategoryMisconception, 0.7
	}
	return "", 0
}

package diagnosis

// Classifier is one diagnosis rule for a wrong or missing answer. Classify
// returns ("", 0) when the rule does not fit.
type Classifier interface {
	Name() string
	Classify(in *ClassifyInput) (ErrorCategory, float64)
}

// DefaultClassifiers lists the rules in the order they are tried. A timeout
// wins over everything; a rushed pick wins over the misconception its option
// happens to match; a slip on a well-known table is the fallback.
func DefaultClassifiers() []Classifier {
	return []Classifier{
		&NoAnswerClassifier{},
		&SpeedRushClassifier{},
		&DistractorClassifier{},
		&CarelessClassifier{},
	}
}

// RunClassifiers returns the verdict of the first rule in rules that fits,
// with that rule's name. Nothing matching yields ("", 0, "").
func RunClassifiers(rules []Classifier, in *ClassifyInput) (cat ErrorCategory, confidence float64, rule string) {
	for _, r := range rules {
		if cat, confidence = r.Classify(in); cat != "" {
			return cat, confidence, r.Name()
		}
	}
	return "", 0, ""
}

package diagnosis

// CarelessAccuracyThreshold is the historical accuracy on a base number
// above which a miss on that table reads as a slip.
const CarelessAccuracyThreshold = 0.80

const carelessConfidence = 0.8

// CarelessClassifier tags misses on tables the player usually gets right.
// It runs last, so it only sees answers no other rule explained.
type CarelessClassifier struct{}

func (*CarelessClassifier) Name() string { return string(CategoryCareless) }

func (*CarelessClassifier) Classify(in *ClassifyInput) (ErrorCategory, float64) {
	if !in.Answered || in.BaseAccuracy <= CarelessAccuracyThreshold {
		return "", 0
	}
	return CategoryCareless, carelessConfidence
}

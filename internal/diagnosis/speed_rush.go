package diagnosis

// SpeedRushThresholdMs is how fast (exclusive) a wrong option has to be
// picked to count as a rushed guess rather than a worked-out product.
const SpeedRushThresholdMs = 1500

const speedRushConfidence = 0.9

// SpeedRushClassifier tags wrong options picked before the player could have
// read the whole prompt.
type SpeedRushClassifier struct{}

func (*SpeedRushClassifier) Name() string { return string(CategorySpeedRush) }

func (*SpeedRushClassifier) Classify(in *ClassifyInput) (ErrorCategory, float64) {
	if !in.Answered || in.ResponseTimeMs >= SpeedRushThresholdMs {
		return "", 0
	}
	return CategorySpeedRush, speedRushConfidence
}

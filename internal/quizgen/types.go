package quizgen

import "fmt"

// Question is one generated multiplication item.
type Question struct {
	// BaseNumber is drawn from the caller's selection.
	BaseNumber int

	// Multiplier is either an easy multiplier (1, 2, 10) or a value from the
	// profile's MultiplierRange.
	Multiplier int

	// CorrectAnswer is always BaseNumber * Multiplier.
	CorrectAnswer int

	// Options holds exactly 4 distinct positive integers, one of which is
	// CorrectAnswer. The order is randomized for presentation.
	Options []int

	// OptionKinds is parallel to Options and records which mistake produced
	// each distractor. The correct option has KindCorrect.
	OptionKinds []DistractorKind
}

// PromptText renders the question as "base × multiplier = ?".
// It is derived from BaseNumber and Multiplier and can be regenerated at any time.
func (q Question) PromptText() string {
	return fmt.Sprintf("%d × %d = ?", q.BaseNumber, q.Multiplier)
}

// IsEasy reports whether the question uses an easy multiplier.
func (q Question) IsEasy() bool {
	return IsEasyMultiplier(q.Multiplier)
}

// KindOf returns the distractor kind of the given option value, or "" when
// the value is not one of the options.
func (q Question) KindOf(option int) DistractorKind {
	for i, o := range q.Options {
		if o == option && i < len(q.OptionKinds) {
			return q.OptionKinds[i]
		}
	}
	return ""
}

// pair returns the (base, multiplier) combination of the question.
func (q Question) pair() combination {
	return combination{base: q.BaseNumber, multiplier: q.Multiplier}
}

// DistractorKind names the arithmetic slip a wrong option imitates.
type DistractorKind string

const (
	KindCorrect            DistractorKind = "correct"
	KindMultiplierOffByOne DistractorKind = "multiplier-off-by-one"
	KindBaseOffByOne       DistractorKind = "base-off-by-one"
	KindAddedInstead       DistractorKind = "added-instead"
	KindSubtractedInstead  DistractorKind = "subtracted-instead"
	KindNearMiss           DistractorKind = "near-miss"
	KindDigitsReversed     DistractorKind = "digits-reversed"
	KindFallback           DistractorKind = "fallback"
)

// easyMultipliers are the multipliers considered trivial regardless of base.
var easyMultipliers = []int{1, 2, 10}

// IsEasyMultiplier reports whether m is one of 1, 2 or 10.
func IsEasyMultiplier(m int) bool {
	for _, e := range easyMultipliers {
		if m == e {
			return true
		}
	}
	return false
}

// Request holds everything a single generation call needs.
type Request struct {
	// Selection is the non-empty set of positive base numbers.
	Selection []int

	// Count is the number of questions to produce.
	Count int

	// Profile shapes multiplier selection.
	Profile DifficultyProfile
}

// combination is a (base, multiplier) pair.
type combination struct {
	base       int
	multiplier int
}

func (c combination) swapped() combination {
	return combination{base: c.multiplier, multiplier: c.base}
}

package diagnosis

import "github.com/abhisek/timesdrill/internal/quizgen"

// seedMisconceptions defines the multiplication misconception taxonomy.
// Near misses and fallback options are deliberately absent: they look like
// slips, not a wrong mental model.
var seedMisconceptions = []Misconception{
	{
		ID:        "mul-skip-count-off",
		Kind:      quizgen.KindMultiplierOffByOne,
		Label:     "Skip count overshoot",
		MessageID: "hint.mul-skip-count-off",
		Examples:  []string{"7 × 8 = 63", "6 × 4 = 18"},
	},
	{
		ID:        "mul-wrong-table",
		Kind:      quizgen.KindBaseOffByOne,
		Label:     "Neighbouring table",
		MessageID: "hint.mul-wrong-table",
		Examples:  []string{"7 × 8 = 64", "6 × 4 = 28"},
	},
	{
		ID:        "mul-added",
		Kind:      quizgen.KindAddedInstead,
		Label:     "Added instead of multiplied",
		MessageID: "hint.mul-added",
		Examples:  []string{"7 × 8 = 15", "3 × 4 = 7"},
	},
	{
		ID:        "mul-subtracted",
		Kind:      quizgen.KindSubtractedInstead,
		Label:     "Subtracted instead of multiplied",
		MessageID: "hint.mul-subtracted",
		Examples:  []string{"7 × 8 = 1", "9 × 3 = 6"},
	},
	{
		ID:        "mul-digits-swapped",
		Kind:      quizgen.KindDigitsReversed,
		Label:     "Digits swapped",
		MessageID: "hint.mul-digits-swapped",
		Examples:  []string{"7 × 8 = 65", "3 × 4 = 21"},
	},
}

package quizgen

import (
	"fmt"
	"time"
)

// Level is a difficulty tag.
type Level string

const (
	LevelEasy   Level = "easy"
	LevelMedium Level = "medium"
	LevelHard   Level = "hard"
)

// Levels returns all levels from easiest to hardest.
func Levels() []Level {
	return []Level{LevelEasy, LevelMedium, LevelHard}
}

// ParseLevel converts a string into a Level.
func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case LevelEasy, LevelMedium, LevelHard:
		return Level(s), nil
	}
	return "", fmt.Errorf("%w: unknown level %q", ErrInvalidInput, s)
}

// IntRange is an inclusive integer range.
type IntRange struct {
	Min int `json:"min" validate:"gte=1"`
	Max int `json:"max" validate:"gtefield=Min"`
}

// Contains reports whether n lies within the range.
func (r IntRange) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

// DifficultyProfile is the immutable configuration for one difficulty level.
type DifficultyProfile struct {
	Level Level `json:"-"`

	// TimePerQuestion is the answer time limit in whole seconds.
	TimePerQuestion int `json:"time_per_question" validate:"gte=1"`

	// EasyMultiplierChance is the probability of forcing a multiplier of 1, 2 or 10.
	EasyMultiplierChance float64 `json:"easy_multiplier_chance" validate:"gte=0,lte=1"`

	// ConsecutiveEasyLimit caps the run of consecutive easy-multiplier
	// questions. Zero disables easy multipliers.
	ConsecutiveEasyLimit int `json:"consecutive_easy_limit" validate:"gte=0"`

	// MultiplierRange bounds the non-easy multipliers.
	MultiplierRange IntRange `json:"multiplier_range"`
}

// TimeLimit returns TimePerQuestion as a duration.
func (p DifficultyProfile) TimeLimit() time.Duration {
	return time.Duration(p.TimePerQuestion) * time.Second
}

// Validate checks the profile's bounds.
func (p DifficultyProfile) Validate() error {
	switch {
	case p.TimePerQuestion <= 0:
		return fmt.Errorf("%w: time per question must be positive, got %d", ErrInvalidInput, p.TimePerQuestion)
	case p.EasyMultiplierChance < 0 || p.EasyMultiplierChance > 1:
		return fmt.Errorf("%w: easy multiplier chance must be within [0,1], got %g", ErrInvalidInput, p.EasyMultiplierChance)
	case p.ConsecutiveEasyLimit < 0:
		return fmt.Errorf("%w: consecutive easy limit must not be negative, got %d", ErrInvalidInput, p.ConsecutiveEasyLimit)
	case p.MultiplierRange.Min < 1 || p.MultiplierRange.Max < p.MultiplierRange.Min:
		return fmt.Errorf("%w: invalid multiplier range %d..%d", ErrInvalidInput, p.MultiplierRange.Min, p.MultiplierRange.Max)
	}
	return nil
}

// nonEasyPool lists the multipliers in the range that are not easy.
// Easy values are filtered out even when the range covers them.
func (p DifficultyProfile) nonEasyPool() []int {
	var pool []int
	for m := p.MultiplierRange.Min; m <= p.MultiplierRange.Max; m++ {
		if !IsEasyMultiplier(m) {
			pool = append(pool, m)
		}
	}
	return pool
}

// DefaultProfiles returns the built-in profiles keyed by level.
func DefaultProfiles() map[Level]DifficultyProfile {
	return map[Level]DifficultyProfile{
		LevelEasy: {
			Level:                LevelEasy,
			TimePerQuestion:      15,
			EasyMultiplierChance: 0.5,
			ConsecutiveEasyLimit: 3,
			MultiplierRange:      IntRange{Min: 1, Max: 10},
		},
		LevelMedium: {
			Level:                LevelMedium,
			TimePerQuestion:      10,
			EasyMultiplierChance: 0.3,
			ConsecutiveEasyLimit: 2,
			MultiplierRange:      IntRange{Min: 2, Max: 10},
		},
		LevelHard: {
			Level:                LevelHard,
			TimePerQuestion:      5,
			EasyMultiplierChance: 0.1,
			ConsecutiveEasyLimit: 1,
			MultiplierRange:      IntRange{Min: 3, Max: 10},
		},
	}
}

// DefaultProfile returns the built-in profile for a level.
// Unknown levels fall back to the easy profile.
func DefaultProfile(level Level) DifficultyProfile {
	p, ok := DefaultProfiles()[level]
	if !ok {
		return DefaultProfiles()[LevelEasy]
	}
	return p
}

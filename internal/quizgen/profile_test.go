package quizgen

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultProfiles(t *testing.T) {
	tests := []struct {
		level    Level
		seconds  int
		chance   float64
		limit    int
		min, max int
	}{
		{LevelEasy, 15, 0.5, 3, 1, 10},
		{LevelMedium, 10, 0.3, 2, 2, 10},
		{LevelHard, 5, 0.1, 1, 3, 10},
	}
	for _, tt := range tests {
		p := DefaultProfile(tt.level)
		if p.Level != tt.level {
			t.Errorf("%s: Level = %q", tt.level, p.Level)
		}
		if p.TimePerQuestion != tt.seconds || p.TimeLimit() != time.Duration(tt.seconds)*time.Second {
			t.Errorf("%s: TimePerQuestion = %d, want %d", tt.level, p.TimePerQuestion, tt.seconds)
		}
		if p.EasyMultiplierChance != tt.chance {
			t.Errorf("%s: EasyMultiplierChance = %g, want %g", tt.level, p.EasyMultiplierChance, tt.chance)
		}
		if p.ConsecutiveEasyLimit != tt.limit {
			t.Errorf("%s: ConsecutiveEasyLimit = %d, want %d", tt.level, p.ConsecutiveEasyLimit, tt.limit)
		}
		if p.MultiplierRange.Min != tt.min || p.MultiplierRange.Max != tt.max {
			t.Errorf("%s: MultiplierRange = %+v", tt.level, p.MultiplierRange)
		}
		if err := p.Validate(); err != nil {
			t.Errorf("%s: Validate() = %v", tt.level, err)
		}
	}
}

func TestDefaultProfile_UnknownFallsBackToEasy(t *testing.T) {
	if got := DefaultProfile("impossible"); got.Level != LevelEasy {
		t.Errorf("Level = %q, want easy", got.Level)
	}
}

func TestParseLevel(t *testing.T) {
	for _, l := range Levels() {
		got, err := ParseLevel(string(l))
		if err != nil || got != l {
			t.Errorf("ParseLevel(%q) = %q, %v", l, got, err)
		}
	}
	if _, err := ParseLevel("extreme"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ParseLevel(extreme) err = %v, want ErrInvalidInput", err)
	}
}

func TestNonEasyPool_FiltersOverlap(t *testing.T) {
	tests := []struct {
		level Level
		want  []int
	}{
		{LevelEasy, []int{3, 4, 5, 6, 7, 8, 9}},
		{LevelMedium, []int{3, 4, 5, 6, 7, 8, 9}},
		{LevelHard, []int{3, 4, 5, 6, 7, 8, 9}},
	}
	for _, tt := range tests {
		got := DefaultProfile(tt.level).nonEasyPool()
		if len(got) != len(tt.want) {
			t.Fatalf("%s: pool = %v, want %v", tt.level, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%s: pool[%d] = %d, want %d", tt.level, i, got[i], tt.want[i])
			}
		}
	}

	onlyEasy := DifficultyProfile{TimePerQuestion: 1, ConsecutiveEasyLimit: 1, MultiplierRange: IntRange{Min: 1, Max: 2}}
	if pool := onlyEasy.nonEasyPool(); len(pool) != 0 {
		t.Errorf("pool = %v, want empty", pool)
	}
}

func TestGenerate_OnlyEasyRange(t *testing.T) {
	// With no non-easy values the generator can still alternate between
	// easy questions as long as the run limit allows.
	profile := DifficultyProfile{
		TimePerQuestion:      5,
		EasyMultiplierChance: 0,
		ConsecutiveEasyLimit: 5,
		MultiplierRange:      IntRange{Min: 1, Max: 2},
	}
	qs, err := New(WithSeed(1)).Generate(Request{Selection: []int{4, 5}, Count: 4, Profile: profile})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkSequence(t, qs, profile)
}

func TestProfile_Validate(t *testing.T) {
	bad := []DifficultyProfile{
		{TimePerQuestion: 0, MultiplierRange: IntRange{Min: 1, Max: 2}},
		{TimePerQuestion: 5, EasyMultiplierChance: 1.5, MultiplierRange: IntRange{Min: 1, Max: 2}},
		{TimePerQuestion: 5, ConsecutiveEasyLimit: -1, MultiplierRange: IntRange{Min: 1, Max: 2}},
		{TimePerQuestion: 5, MultiplierRange: IntRange{Min: 4, Max: 3}},
		{TimePerQuestion: 5, MultiplierRange: IntRange{Min: 0, Max: 3}},
	}
	for i, p := range bad {
		if err := p.Validate(); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("case %d: Validate() = %v, want ErrInvalidInput", i, err)
		}
	}
}

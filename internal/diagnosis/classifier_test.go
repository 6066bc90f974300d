package diagnosis

import (
	"testing"

	"github.com/abhisek/timesdrill/internal/quizgen"
)

// testQuestion is 7 × 8 with one option of each diagnostic flavour.
func testQuestion() *quizgen.Question {
	return &quizgen.Question{
		BaseNumber:    7,
		Multiplier:    8,
		CorrectAnswer: 56,
		Options:       []int{15, 56, 57, 63},
		OptionKinds: []quizgen.DistractorKind{
			quizgen.KindAddedInstead,
			quizgen.KindCorrect,
			quizgen.KindNearMiss,
			quizgen.KindMultiplierOffByOne,
		},
	}
}

func TestNoAnswerClassifier(t *testing.T) {
	c := &NoAnswerClassifier{}
	cat, conf := c.Classify(&ClassifyInput{Answered: false, ResponseTimeMs: 15000})
	if cat != CategoryNoAnswer {
		t.Errorf("got category %q, want %q", cat, CategoryNoAnswer)
	}
	if conf != 1.0 {
		t.Errorf("got confidence %f, want 1.0", conf)
	}
	if cat, _ := c.Classify(&ClassifyInput{Answered: true}); cat != "" {
		t.Errorf("got category %q for an answered question, want empty", cat)
	}
}

func TestSpeedRushClassifier_UnderThreshold(t *testing.T) {
	c := &SpeedRushClassifier{}
	cat, conf := c.Classify(&ClassifyInput{Answered: true, ResponseTimeMs: 1000})
	if cat != CategorySpeedRush {
		t.Errorf("got category %q, want %q", cat, CategorySpeedRush)
	}
	if conf != 0.9 {
		t.Errorf("got confidence %f, want 0.9", conf)
	}
}

func TestSpeedRushClassifier_AtThreshold(t *testing.T) {
	c := &SpeedRushClassifier{}
	cat, _ := c.Classify(&ClassifyInput{Answered: true, ResponseTimeMs: 1500})
	if cat != "" {
		t.Errorf("got category %q at threshold, want empty", cat)
	}
}

func TestDistractorClassifier(t *testing.T) {
	c := &DistractorClassifier{}
	tests := []struct {
		selected int
		want     ErrorCategory
	}{
		{15, CategoryMisconception},
		{63, CategoryMisconception},
		{57, ""}, // near miss is a slip
		{99, ""}, // not an option
	}
	for _, tt := range tests {
		cat, _ := c.Classify(&ClassifyInput{Question: testQuestion(), Selected: tt.selected, Answered: true})
		if cat != tt.want {
			t.Errorf("selected %d: got %q, want %q", tt.selected, cat, tt.want)
		}
	}
}

func TestCarelessClassifier_HighAccuracy(t *testing.T) {
	c := &CarelessClassifier{}
	cat, conf := c.Classify(&ClassifyInput{Answered: true, BaseAccuracy: 0.85})
	if cat != CategoryCareless {
		t.Errorf("got category %q, want %q", cat, CategoryCareless)
	}
	if conf != 0.8 {
		t.Errorf("got confidence %f, want 0.8", conf)
	}
}

func TestRushAndSlipRules_SkipUnanswered(t *testing.T) {
	in := &ClassifyInput{Answered: false, ResponseTimeMs: 200, BaseAccuracy: 0.95}
	for _, c := range []Classifier{&SpeedRushClassifier{}, &CarelessClassifier{}} {
		if cat, _ := c.Classify(in); cat != "" {
			t.Errorf("%s: got category %q for a timeout, want empty", c.Name(), cat)
		}
	}
}

func TestCarelessClassifier_AtThreshold(t *testing.T) {
	c := &CarelessClassifier{}
	cat, _ := c.Classify(&ClassifyInput{Answered: true, BaseAccuracy: 0.80})
	if cat != "" {
		t.Errorf("got category %q at threshold, want empty", cat)
	}
}

func TestRunClassifiers_Priority(t *testing.T) {
	tests := []struct {
		name  string
		input *ClassifyInput
		want  ErrorCategory
		by    string
	}{
		{
			name:  "no answer beats speed",
			input: &ClassifyInput{Question: testQuestion(), Answered: false, ResponseTimeMs: 10},
			want:  CategoryNoAnswer,
			by:    "no-answer",
		},
		{
			name:  "speed beats distractor",
			input: &ClassifyInput{Question: testQuestion(), Selected: 15, Answered: true, ResponseTimeMs: 900, BaseAccuracy: 0.9},
			want:  CategorySpeedRush,
			by:    "speed-rush",
		},
		{
			name:  "distractor beats careless",
			input: &ClassifyInput{Question: testQuestion(), Selected: 15, Answered: true, ResponseTimeMs: 4000, BaseAccuracy: 0.9},
			want:  CategoryMisconception,
			by:    "distractor",
		},
		{
			name:  "careless on near miss",
			input: &ClassifyInput{Question: testQuestion(), Selected: 57, Answered: true, ResponseTimeMs: 4000, BaseAccuracy: 0.9},
			want:  CategoryCareless,
			by:    "careless",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, _, name := RunClassifiers(DefaultClassifiers(), tt.input)
			if cat != tt.want {
				t.Errorf("got category %q, want %q", cat, tt.want)
			}
			if name != tt.by {
				t.Errorf("got classifier %q, want %q", name, tt.by)
			}
		})
	}
}

func TestRunClassifiers_NoMatch(t *testing.T) {
	input := &ClassifyInput{Question: testQuestion(), Selected: 57, Answered: true, ResponseTimeMs: 5000, BaseAccuracy: 0.5}
	cat, conf, name := RunClassifiers(DefaultClassifiers(), input)
	if cat != "" || conf != 0 || name != "" {
		t.Errorf("got (%q, %f, %q), want no match", cat, conf, name)
	}
}

func TestDefaultClassifiers_Order(t *testing.T) {
	want := []string{"no-answer", "speed-rush", "distractor", "careless"}
	classifiers := DefaultClassifiers()
	if len(classifiers) != len(want) {
		t.Fatalf("got %d classifiers, want %d", len(classifiers), len(want))
	}
	for i, c := range classifiers {
		if c.Name() != want[i] {
			t.Errorf("classifier %d is %q, want %q", i, c.Name(), want[i])
		}
	}
}

// Package worksheet exports generated question sets as printable text,
// JSON or XLSX, and reads JSON worksheets back for replay.
package worksheet

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/abhisek/timesdrill/internal/quizgen"
)

// Version is the JSON worksheet format version.
const Version = 1

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// Formats lists every supported format.
func Formats() []Format { return []Format{FormatText, FormatJSON, FormatXLSX} }

// ParseFormat converts a user-supplied string to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Formats(), f) {
		return f, nil
	}
	return "", fmt.Errorf("unknown worksheet format %q (want text, json or xlsx)", s)
}

// Item is one question on a worksheet.
type Item struct {
	Base       int                      `json:"base"`
	Multiplier int                      `json:"multiplier"`
	Answer     int                      `json:"answer"`
	Options    []int                    `json:"options"`
	Kinds      []quizgen.DistractorKind `json:"kinds,omitempty"`
}

// Worksheet is a fixed, replayable question set.
type Worksheet struct {
	Version   int           `json:"version"`
	Level     quizgen.Level `json:"level"`
	Selection []int         `json:"selection,omitempty"`
	Seed      *uint64       `json:"seed,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	Items     []Item        `json:"questions"`
}

// New builds a worksheet from generated questions.
func New(level quizgen.Level, selection []int, questions []quizgen.Question, createdAt time.Time) *Worksheet {
	items := make([]Item, len(questions))
	for i, q := range questions {
		items[i] = Item{
			Base:       q.BaseNumber,
			Multiplier: q.Multiplier,
			Answer:     q.CorrectAnswer,
			Options:    slices.Clone(q.Options),
			Kinds:      slices.Clone(q.OptionKinds),
		}
	}
	return &Worksheet{
		Version:   Version,
		Level:     level,
		Selection: slices.Clone(selection),
		CreatedAt: createdAt.UTC(),
		Items:     items,
	}
}

// Questions converts the items back to generator questions.
func (w *Worksheet) Questions() []quizgen.Question {
	out := make([]quizgen.Question, len(w.Items))
	for i, it := range w.Items {
		out[i] = it.question()
	}
	return out
}

func (it Item) question() quizgen.Question {
	return quizgen.Question{
		BaseNumber:    it.Base,
		Multiplier:    it.Multiplier,
		CorrectAnswer: it.Answer,
		Options:       slices.Clone(it.Options),
		OptionKinds:   slices.Clone(it.Kinds),
	}
}

// optionLetter labels the i-th option a), b), c), d).
func optionLetter(i int) string {
	return string(rune('a'+i)) + ")"
}

package diagnosis

import (
	"sort"

	"github.com/abhisek/timesdrill/internal/quizgen"
)

// Misconception defines a known multiplication mistake pattern.
type Misconception struct {
	ID        string
	Kind      quizgen.DistractorKind // Distractor kind that imitates it
	Label     string
	MessageID string // i18n key of the learner-facing hint
	Examples  []string
}

// registry is the package-level misconception registry, keyed by ID.
var registry map[string]*Misconception

// byKind indexes misconceptions by distractor kind.
var byKind map[quizgen.DistractorKind]*Misconception

func init() {
	registry = make(map[string]*Misconception, len(seedMisconceptions))
	byKind = make(map[quizgen.DistractorKind]*Misconception, len(seedMisconceptions))
	for i := range seedMisconceptions {
		m := &seedMisconceptions[i]
		registry[m.ID] = m
		byKind[m.Kind] = m
	}
}

// GetMisconception returns a misconception by ID, or nil if not found.
func GetMisconception(id string) *Misconception {
	return registry[id]
}

// MisconceptionForKind returns the misconception a distractor kind stands
// for, or nil for kinds that carry no diagnostic meaning.
func MisconceptionForKind(kind quizgen.DistractorKind) *Misconception {
	return byKind[kind]
}

// AllMisconceptions returns every misconception in the taxonomy, sorted by ID.
func AllMisconceptions() []*Misconception {
	result := make([]*Misconception, 0, len(registry))
	for _, m := range registry {
		result = append(result, m)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

package screen

import (
	"time"

	"github.com/abhisek/timesdrill/internal/diagnosis"
	"github.com/abhisek/timesdrill/internal/i18n"
	"github.com/abhisek/timesdrill/internal/logger"
	"github.com/abhisek/timesdrill/internal/quizgen"
	"github.com/abhisek/timesdrill/internal/store"
)

// DefaultGenTimeout bounds interactive generation when Deps leaves it unset.
const DefaultGenTimeout = 2 * time.Second

// Deps carries the services shared by every screen.
type Deps struct {
	Generator  *quizgen.Generator
	Profiles   map[quizgen.Level]quizgen.DifficultyProfile
	Events     store.EventRepo
	Stats      store.StatsRepo
	Diagnosis  *diagnosis.Service
	Printer    *i18n.Printer
	Logger     *logger.Logger
	GenTimeout time.Duration

	// Clock returns the current time; nil means time.Now.
	Clock func() time.Time
}

// WithDefaults fills unset fields so screens never see nil services
// other than the optional repositories.
func (d *Deps) WithDefaults() *Deps {
	out := *d
	if out.Generator == nil {
		out.Generator = quizgen.New()
	}
	if out.Profiles == nil {
		out.Profiles = quizgen.DefaultProfiles()
	}
	if out.Printer == nil {
		out.Printer = i18n.Default()
	}
	if out.Logger == nil {
		out.Logger = logger.NewNop()
	}
	if out.GenTimeout <= 0 {
		out.GenTimeout = DefaultGenTimeout
	}
	if out.Clock == nil {
		out.Clock = time.Now
	}
	return &out
}

// Now reads the clock.
func (d *Deps) Now() time.Time {
	if d.Clock == nil {
		return time.Now()
	}
	return d.Clock()
}

// T is shorthand for d.Printer.T.
func (d *Deps) T(id string, args ...any) string {
	return d.Printer.T(id, args...)
}

// Profile returns the profile for level, falling back to the built-in one.
func (d *Deps) Profile(level quizgen.Level) quizgen.DifficultyProfile {
	if p, ok := d.Profiles[level]; ok {
		return p
	}
	return quizgen.DefaultProfile(level)
}

package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/timesdrill/internal/store"
	"github.com/abhisek/timesdrill/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // No score yet, or a middling one
	MascotCelebrating                      // Best score is excellent
	MascotAlert                            // Best score is still failing
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ ×÷× │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ ×÷× │
└─╥═╥─┘
  ╚═╝`

const mascotAlert = `┌─────┐
│ ◉ ◉ │ !
│  ▽  │
│ ×÷× │
└─────┘`

// MascotFor picks the mascot mood from the stored best score.
func MascotFor(st store.Stats) MascotVariant {
	switch {
	case !st.HasBestScore:
		return MascotIdle
	case st.BestScorePercent >= 91:
		return MascotCelebrating
	case st.BestScorePercent < 61:
		return MascotAlert
	}
	return MascotIdle
}

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.ArcadeYellow
	case MascotAlert:
		art = mascotAlert
		fg = theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}

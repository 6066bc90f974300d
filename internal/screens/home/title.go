package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/timesdrill/internal/ui/theme"
)

const titleFull = `╔╦╗╦╔╦╗╔═╗╔═╗  ╔╦╗╦═╗╦╦  ╦
 ║ ║║║║║╣ ╚═╗   ║║╠╦╝║║  ║
 ╩ ╩╩ ╩╚═╝╚═╝  ═╩╝╩╚═╩╩═╝╩═╝`

const titleCompact = "T · I · M · E · S  D · R · I · L · L"

// renderTitle returns the styled title block, or one line when compact.
func renderTitle(subtitle string, cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)
	block := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	if compact {
		return block.Render(style.Render(titleCompact))
	}
	return block.Render(style.Render(titleFull) + "\n" + theme.Subtitle.Render(subtitle))
}

package setup

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/timesdrill/internal/ui/components"
	"github.com/abhisek/timesdrill/internal/ui/theme"
)

func (s *SetupScreen) View(width, height int) string {
	t := s.deps.T
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, s.label(t("setup.numbers"), fieldBases)+"\n"+s.renderBases())
	sections = append(sections, s.label(t("setup.count"), fieldCount)+"\n"+
		s.count.View()+"  "+theme.Hint.Render(t("setup.count_hint")))
	sections = append(sections, s.label(t("setup.level"), fieldLevel)+"\n"+s.renderLevel())
	sections = append(sections, components.NewButton(t("setup.start"), s.focus == fieldStart).View())

	if s.job != nil {
		produced, wanted, _ := s.job.Progress()
		bar := components.NewProgressBar("", components.Fraction(produced, wanted), false, cw-4)
		sections = append(sections,
			theme.Hint.Render(t("quiz.generating", produced, wanted))+"\n"+bar.View())
	}
	if s.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).
			Width(cw-4).
			Render(s.errMsg))
	}

	card := components.ArcadeCard(strings.Join(sections, "\n\n"), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *SetupScreen) label(text string, f field) string {
	if s.focus == f && s.job == nil {
		return theme.Selected.Render("▸ " + text)
	}
	return theme.Subtitle.Render("  " + text)
}

func (s *SetupScreen) renderBases() string {
	cells := make([]string, 0, GridSize)
	for b := 1; b <= GridSize; b++ {
		mark := " "
		if s.selected[b] {
			mark = "x"
		}
		cell := fmt.Sprintf("[%s]%2d", mark, b)

		style := theme.Unselected
		switch {
		case s.focus == fieldBases && b == s.cursor:
			style = lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.ArcadeYellow).Bold(true)
		case s.selected[b]:
			style = theme.Correct
		}
		cells = append(cells, style.Render(cell))
	}
	rows := []string{
		strings.Join(cells[:GridSize/2], " "),
		strings.Join(cells[GridSize/2:], " "),
	}

	var extra []int
	for b, on := range s.selected {
		if on && (b < 1 || b > GridSize) {
			extra = append(extra, b)
		}
	}
	if len(extra) > 0 {
		slices.Sort(extra)
		labels := make([]string, len(extra))
		for i, b := range extra {
			labels[i] = strconv.Itoa(b)
		}
		rows = append(rows, theme.Hint.Render("+ "+strings.Join(labels, ", ")))
	}
	return strings.Join(rows, "\n")
}

func (s *SetupScreen) renderLevel() string {
	t := s.deps.T
	parts := make([]string, len(s.levels))
	for i, lvl := range s.levels {
		name := t("level." + string(lvl))
		if i == s.level {
			style := theme.Selected
			if s.focus != fieldLevel {
				style = theme.Body.Bold(true)
			}
			parts[i] = style.Render("‹ " + name + " ›")
		} else {
			parts[i] = theme.Disabled.Render("  " + name + "  ")
		}
	}
	return strings.Join(parts, " ")
}

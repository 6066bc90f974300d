package summary

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/timesdrill/internal/diagnosis"
	"github.com/abhisek/timesdrill/internal/router"
	"github.com/abhisek/timesdrill/internal/screen"
	"github.com/abhisek/timesdrill/internal/screens/history"
	"github.com/abhisek/timesdrill/internal/session"
	"github.com/abhisek/timesdrill/internal/ui/layout"
	"github.com/abhisek/timesdrill/internal/ui/theme"
)

// SummaryScreen displays the results of a finished quiz.
type SummaryScreen struct {
	deps       *screen.Deps
	summary    *session.SessionSummary
	saveFailed bool
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.EscapeHandler = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. saveFailed adds a notice that the results
// were not stored.
func New(deps *screen.Deps, summary *session.SessionSummary, saveFailed bool) *SummaryScreen {
	return &SummaryScreen{deps: deps, summary: summary, saveFailed: saveFailed}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return s.deps.T("summary.title")
}

func (s *SummaryScreen) HandlesEscape() bool { return true }

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: s.deps.T("keys.home")},
		{Key: "R", Description: s.deps.T("keys.retry")},
		{Key: "H", Description: s.deps.T("keys.history")},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "enter", "esc":
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	case "r", "R":
		// The setup screen sits below with the same settings.
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "h", "H":
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: history.New(s.deps)} }
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}
	t := s.deps.T
	center := func(style lipgloss.Style, text string) string {
		return style.Width(width).Align(lipgloss.Center).Render(text)
	}
	body := lipgloss.NewStyle().Foreground(theme.Text)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(gradeColor(sum.Grade)).Bold(true),
		t("grade."+string(sum.Grade))))
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		t("summary.score", sum.ScorePercent)))
	b.WriteString("\n\n")

	lines := []string{
		t("summary.level", t("level."+string(sum.Level))),
		t("summary.time_per", sum.TimePerQuestion),
		t("summary.taken", int(math.Round(sum.Duration.Seconds()))),
		t("summary.avg", sum.AverageResponseSeconds()),
		t("summary.correct", sum.TotalCorrect, sum.TotalQuestions),
		t("summary.streak", sum.LongestStreak),
	}
	for _, line := range lines {
		b.WriteString(center(body, line))
		b.WriteString("\n")
	}

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 40)))

	if len(sum.BaseResults) > 0 {
		b.WriteString("\n")
		b.WriteString(center(dim, t("summary.by_base")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n")
		rows := make([]string, len(sum.BaseResults))
		for i, br := range sum.BaseResults {
			rows[i] = t("summary.base_row", br.Base, br.Correct, br.Attempted)
		}
		b.WriteString(center(body, strings.Join(rows, "   ")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(center(dim, t("summary.mistakes")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n")
	b.WriteString(s.renderMistakes(width))

	if s.saveFailed {
		b.WriteString("\n")
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Error), t("err.store")))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *SummaryScreen) renderMistakes(width int) string {
	var rows []string
	for _, cat := range diagnosis.Categories() {
		n := s.summary.Mistakes[cat]
		if n == 0 {
			continue
		}
		rows = append(rows, s.deps.T("category."+string(cat))+": "+strconv.Itoa(n))
	}
	style := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if len(rows) == 0 {
		return style.Foreground(theme.Success).Render(s.deps.T("summary.no_mistake")) + "\n"
	}
	return style.Foreground(theme.Text).Render(strings.Join(rows, "\n")) + "\n"
}

func gradeColor(g session.Grade) color.Color {
	switch g {
	case session.GradeExcellent:
		return theme.Success
	case session.GradeGood:
		return theme.Secondary
	case session.GradeFair:
		return theme.Warning
	default:
		return theme.Error
	}
}

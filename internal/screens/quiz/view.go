package quiz

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/timesdrill/internal/diagnosis"
	"github.com/abhisek/timesdrill/internal/session"
	"github.com/abhisek/timesdrill/internal/ui/components"
	"github.com/abhisek/timesdrill/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.confirmQuit {
		return s.renderQuitConfirm(width)
	}
	q := s.quiz.CurrentQuestion()
	if q == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n")

	current, total := s.quiz.Progress()
	done := current - 1
	if s.quiz.Phase != session.PhaseActive {
		done = current
	}
	bar := components.NewProgressBar("", components.Fraction(done, total), false, min(width-4, 60))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.PromptText()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))

	if s.last != nil {
		b.WriteString("\n")
		b.WriteString(s.renderFeedback(width))
	}
	return b.String()
}

// renderInfoLine shows the progress on the left and the countdown on the right.
func (s *QuizScreen) renderInfoLine(width int) string {
	current, total := s.quiz.Progress()
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + s.deps.T("quiz.progress", current, total))

	now := s.deps.Now()
	remaining := s.quiz.Remaining(now)
	if s.quiz.Phase != session.PhaseActive {
		remaining = 0
	}
	timerStyle := theme.TimerNormal
	if s.quiz.TimerWarning(remaining) {
		timerStyle = theme.TimerWarning
	}
	secs := s.quiz.RemainingSeconds(now)
	if s.quiz.Phase != session.PhaseActive {
		secs = 0
	}
	right := timerStyle.Render("⏱ " + s.deps.T("quiz.remaining", secs))

	line := left
	if pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 2; pad > 0 {
		line += strings.Repeat(" ", pad) + right
	} else {
		line += "  " + right
	}
	return line
}

func (s *QuizScreen) renderFeedback(width int) string {
	rec := s.last
	q := rec.Question
	center := func(style lipgloss.Style, text string) string {
		return style.Width(width).Align(lipgloss.Center).Render(text)
	}

	var b strings.Builder
	switch {
	case rec.Correct:
		b.WriteString(center(theme.Correct, s.deps.T("quiz.correct")))
	case !rec.Answered:
		b.WriteString(center(theme.Incorrect,
			s.deps.T("quiz.timeout", q.BaseNumber, q.Multiplier, q.CorrectAnswer)))
	default:
		b.WriteString(center(theme.Incorrect,
			s.deps.T("quiz.wrong", q.BaseNumber, q.Multiplier, q.CorrectAnswer)))
	}
	b.WriteString("\n")

	if hint := s.hint(rec); hint != "" {
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Accent).Italic(true), hint))
		b.WriteString("\n")
	}

	if !s.saving {
		b.WriteString(center(theme.Hint, s.deps.T("quiz.continue")))
	}
	return b.String()
}

// hint explains a wrong answer from its diagnosis. Timeouts need none.
func (s *QuizScreen) hint(rec *session.AnswerRecord) string {
	d := rec.Diagnosis
	if rec.Correct || d == nil {
		return ""
	}
	switch d.Category {
	case diagnosis.CategoryNoAnswer, diagnosis.CategoryUnclassified:
		return ""
	case diagnosis.CategoryMisconception:
		if m := diagnosis.GetMisconception(d.MisconceptionID); m != nil {
			return s.deps.T(m.MessageID)
		}
		return ""
	}
	return s.deps.T("category." + string(d.Category))
}

func (s *QuizScreen) renderQuitConfirm(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("\n\n\n" + s.deps.T("quiz.quit_confirm"))
}

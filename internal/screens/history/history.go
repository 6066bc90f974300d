package history

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/timesdrill/internal/screen"
	"github.com/abhisek/timesdrill/internal/store"
	"github.com/abhisek/timesdrill/internal/ui/layout"
	"github.com/abhisek/timesdrill/internal/ui/theme"
)

// Limit caps how many past quizzes are listed.
const Limit = 50

type historyLoadedMsg struct {
	Sessions []store.SessionEventRecord
	Err      error
}

type answersLoadedMsg struct {
	SessionID string
	Answers   []store.AnswerEventRecord
	Err       error
}

// HistoryScreen lists past quizzes. Enter expands a quiz to show its answers,
// which are loaded on first expansion.
type HistoryScreen struct {
	deps     *screen.Deps
	sessions []store.SessionEventRecord
	answers  map[string][]store.AnswerEventRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(deps *screen.Deps) *HistoryScreen {
	return &HistoryScreen{
		deps:     deps,
		answers:  make(map[string][]store.AnswerEventRecord),
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	events := s.deps.Events
	if events == nil {
		s.loaded = true
		return nil
	}
	return func() tea.Msg {
		sessions, err := events.QuerySessions(context.Background(), store.QueryOpts{Limit: Limit})
		return historyLoadedMsg{Sessions: sessions, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return s.deps.T("history.title")
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: s.deps.T("keys.details")},
		{Key: "↑↓", Description: s.deps.T("keys.navigate")},
		{Key: "Esc", Description: s.deps.T("keys.back")},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.deps.Logger.Warn("load history failed", "error", msg.Err)
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case answersLoadedMsg:
		if msg.Err != nil {
			s.deps.Logger.Warn("load answers failed", "session_id", msg.SessionID, "error", msg.Err)
			return s, nil
		}
		s.answers[msg.SessionID] = msg.Answers
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
		case "enter":
			return s, s.toggle()
		}
	}
	return s, nil
}

// toggle flips the selected row and fetches its answers when needed.
func (s *HistoryScreen) toggle() tea.Cmd {
	if s.selected >= len(s.sessions) {
		return nil
	}
	s.expanded[s.selected] = !s.expanded[s.selected]
	id := s.sessions[s.selected].SessionID
	if _, ok := s.answers[id]; ok || !s.expanded[s.selected] || s.deps.Events == nil {
		return nil
	}
	events := s.deps.Events
	return func() tea.Msg {
		answers, err := events.SessionAnswers(context.Background(), id)
		return answersLoadedMsg{SessionID: id, Answers: answers, Err: err}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if s.errMsg != "" {
		return center.Foreground(theme.Error).Render("\n\n" + s.errMsg)
	}
	if !s.loaded {
		return center.Foreground(theme.TextDim).Render("\n\n" + s.deps.T("history.loading"))
	}
	if len(s.sessions) == 0 {
		return center.Foreground(theme.TextDim).Italic(true).Render("\n\n" + s.deps.T("history.empty"))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("  "+s.deps.T("history.header"))))
	b.WriteString("\n")

	for i, rec := range s.sessions {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "> "
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(prefix+screen.SessionRowText(s.deps.Printer, rec))))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(s.renderAnswers(rec.SessionID, width))
		}
	}
	return b.String()
}

func (s *HistoryScreen) renderAnswers(sessionID string, width int) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
	answers, ok := s.answers[sessionID]
	if !ok {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render(s.deps.T("history.loading"))) + "\n"
	}
	if len(answers) == 0 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render(s.deps.T("history.no_answers"))) + "\n"
	}

	var b strings.Builder
	for _, a := range answers {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.answerLine(a)))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *HistoryScreen) answerLine(a store.AnswerEventRecord) string {
	prompt := fmt.Sprintf("%d × %d", a.BaseNumber, a.Multiplier)
	if a.Correct {
		return theme.Correct.Render(s.deps.T("history.answer_right", prompt, a.CorrectAnswer))
	}
	picked := s.deps.T("quiz.no_answer")
	if a.Selected != nil {
		picked = strconv.Itoa(*a.Selected)
	}
	return theme.Incorrect.Render(s.deps.T("history.answer_wrong", prompt, picked, a.CorrectAnswer))
}

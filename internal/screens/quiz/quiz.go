package quiz

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/timesdrill/internal/router"
	"github.com/abhisek/timesdrill/internal/screen"
	"github.com/abhisek/timesdrill/internal/screens/summary"
	"github.com/abhisek/timesdrill/internal/session"
	"github.com/abhisek/timesdrill/internal/ui/components"
	"github.com/abhisek/timesdrill/internal/ui/layout"
)

// QuizScreen runs one quiz: it shows each question with its countdown,
// records the answer, shows feedback, and hands over to the summary.
type QuizScreen struct {
	deps        *screen.Deps
	quiz        *session.QuizSession
	choice      components.MultiChoice
	last        *session.AnswerRecord
	confirmQuit bool
	saving      bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.EscapeHandler = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a QuizScreen over a freshly created session.
func New(deps *screen.Deps, quiz *session.QuizSession) *QuizScreen {
	s := &QuizScreen{deps: deps, quiz: quiz}
	s.resetChoice()
	return s
}

// Session exposes the running quiz.
func (s *QuizScreen) Session() *session.QuizSession {
	return s.quiz
}

func (s *QuizScreen) Init() tea.Cmd {
	if s.quiz.Finished() {
		return s.finish()
	}
	return tickCmd(s.quiz.Index)
}

func (s *QuizScreen) Title() string {
	return s.deps.T("quiz.title")
}

func (s *QuizScreen) HandlesEscape() bool { return true }

func (s *QuizScreen) Status() string {
	if s.quiz.ShowStreakBadge() {
		return s.deps.T("quiz.streak", s.quiz.Streak)
	}
	return ""
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	t := s.deps.T
	switch {
	case s.saving:
		return nil
	case s.confirmQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: t("keys.yes")},
			{Key: "N", Description: t("keys.no")},
		}
	case s.quiz.Phase == session.PhaseFeedback:
		return []layout.KeyHint{
			{Key: "Enter", Description: t("keys.continue")},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: t("keys.answer")},
		{Key: "↑↓", Description: t("keys.navigate")},
		{Key: "Esc", Description: t("keys.quit")},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return s, s.handleTick(msg)

	case feedbackDoneMsg:
		if msg.Index != s.quiz.Index || s.quiz.Phase != session.PhaseFeedback {
			return s, nil
		}
		return s, s.advance()

	case persistedMsg:
		return s.handlePersisted(msg)

	case tea.KeyMsg:
		return s, s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleTick(msg tickMsg) tea.Cmd {
	// Ticks of an answered question stop here; Advance starts a new chain.
	if msg.Index != s.quiz.Index || s.quiz.Phase != session.PhaseActive {
		return nil
	}
	now := s.deps.Now()
	if s.quiz.Remaining(now) > 0 {
		return tickCmd(msg.Index)
	}

	rec, err := s.quiz.TimeOut(now)
	if err != nil {
		s.deps.Logger.Warn("time out rejected", "session_id", s.quiz.ID, "error", err)
		return nil
	}
	s.last = rec
	s.choice.Reveal()
	return feedbackCmd(s.quiz.Index)
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	if s.saving {
		return nil
	}
	key := msg.String()

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.deps.Logger.Info("quiz abandoned",
				"session_id", s.quiz.ID, "answered", len(s.quiz.Records))
			return func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return nil
	}

	if key == "esc" {
		s.confirmQuit = true
		return nil
	}

	switch s.quiz.Phase {
	case session.PhaseFeedback:
		if key == "enter" || key == "space" || key == " " {
			return s.advance()
		}
	case session.PhaseActive:
		s.choice = s.choice.Update(msg)
		if s.choice.Submitted {
			return s.answer()
		}
	}
	return nil
}

func (s *QuizScreen) answer() tea.Cmd {
	selected, ok := s.choice.Chosen()
	if !ok {
		return nil
	}
	rec, err := s.quiz.Answer(selected, s.deps.Now())
	if err != nil {
		s.deps.Logger.Warn("answer rejected", "session_id", s.quiz.ID, "error", err)
		return nil
	}
	s.last = rec
	s.deps.Logger.Debug("answer",
		"session_id", s.quiz.ID,
		"question", rec.Question.PromptText(),
		"selected", rec.Selected,
		"correct", rec.Correct,
		"response_ms", rec.ResponseTime.Milliseconds())
	return feedbackCmd(s.quiz.Index)
}

func (s *QuizScreen) advance() tea.Cmd {
	if s.quiz.Advance(s.deps.Now()) {
		s.last = nil
		s.resetChoice()
		return tickCmd(s.quiz.Index)
	}
	return s.finish()
}

// finish persists the quiz off the update loop and then replaces this screen
// with the summary.
func (s *QuizScreen) finish() tea.Cmd {
	s.saving = true
	sum := s.quiz.BuildSummary()
	events, stats, quiz := s.deps.Events, s.deps.Stats, s.quiz
	return func() tea.Msg {
		st, err := session.Persist(context.Background(), events, stats, quiz)
		return persistedMsg{Summary: sum, Stats: st, Err: err}
	}
}

func (s *QuizScreen) handlePersisted(msg persistedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.deps.Logger.Error("save quiz failed", "session_id", s.quiz.ID, "error", msg.Err)
	}
	s.deps.Logger.Info("quiz finished",
		"session_id", s.quiz.ID,
		"level", string(msg.Summary.Level),
		"score", msg.Summary.ScorePercent,
		"best", msg.Stats.BestScorePercent)

	next := summary.New(s.deps, msg.Summary, msg.Err != nil)
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *QuizScreen) resetChoice() {
	q := s.quiz.CurrentQuestion()
	if q == nil {
		s.choice = components.MultiChoice{}
		return
	}
	s.choice = components.NewMultiChoice(q.Options, q.CorrectAnswer)
}

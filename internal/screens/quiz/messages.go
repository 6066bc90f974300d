package quiz

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/timesdrill/internal/session"
	"github.com/abhisek/timesdrill/internal/store"
)

const (
	// TickInterval is how often the countdown is refreshed.
	TickInterval = 250 * time.Millisecond

	// FeedbackDelay is how long answer feedback stays before the next question.
	FeedbackDelay = 1500 * time.Millisecond
)

// tickMsg drives the countdown of the question at Index.
type tickMsg struct {
	Index int
}

// feedbackDoneMsg ends the feedback of the question at Index.
type feedbackDoneMsg struct {
	Index int
}

// persistedMsg is sent once the finished quiz has been written to the store.
type persistedMsg struct {
	Summary *session.SessionSummary
	Stats   store.Stats
	Err     error
}

func tickCmd(index int) tea.Cmd {
	return tea.Tick(TickInterval, func(time.Time) tea.Msg {
		return tickMsg{Index: index}
	})
}

func feedbackCmd(index int) tea.Cmd {
	return tea.Tick(FeedbackDelay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{Index: index}
	})
}

package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/timesdrill/internal/screen"
	"github.com/abhisek/timesdrill/internal/store"
)

type fakeEvents struct {
	sessions    []store.SessionEventRecord
	answers     map[string][]store.AnswerEventRecord
	answerCalls int
	err         error
}

func (f *fakeEvents) AppendSession(context.Context, store.SessionEventData) error { return nil }
func (f *fakeEvents) AppendAnswer(context.Context, store.AnswerEventData) error   { return nil }
func (f *fakeEvents) QuerySessions(_ context.Context, opts store.QueryOpts) ([]store.SessionEventRecord, error) {
	if opts.Limit != Limit {
		return nil, errors.New("unexpected limit")
	}
	return f.sessions, f.err
}
func (f *fakeEvents) SessionAnswers(_ context.Context, id string) ([]store.AnswerEventRecord, error) {
	f.answerCalls++
	return f.answers[id], nil
}
func (f *fakeEvents) BaseAccuracy(context.Context, int) (float64, error) { return 0, nil }
func (f *fakeEvents) Reset(context.Context) error                        { return nil }

func session(id string, score int, grade string) store.SessionEventRecord {
	return store.SessionEventRecord{
		SessionEventData: store.SessionEventData{
			SessionID:     id,
			Level:         "medium",
			QuestionCount: 10,
			ScorePercent:  score,
			Grade:         grade,
		},
		Timestamp: time.Date(2026, 3, 1, 9, 30, 0, 0, time.Local),
	}
}

func intPtr(v int) *int { return &v }

func loaded(t *testing.T, events *fakeEvents) *HistoryScreen {
	t.Helper()
	s := New((&screen.Deps{Events: events}).WithDefaults())
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected a load command")
	}
	s.Update(cmd())
	return s
}

func key(r rune) tea.KeyPressMsg { return tea.KeyPressMsg{Code: r, Text: string(r)} }

func TestHistory_ListsSessions(t *testing.T) {
	events := &fakeEvents{sessions: []store.SessionEventRecord{
		session("a", 95, "excellent"),
		session("b", 40, "failed"),
	}}
	s := loaded(t, events)

	view := s.View(100, 30)
	for _, want := range []string{"2026-03-01 09:30", "Medium", "95%", "Excellent!", "Failed"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestHistory_Empty(t *testing.T) {
	s := loaded(t, &fakeEvents{})
	if !strings.Contains(s.View(80, 24), "No quizzes yet.") {
		t.Error("expected empty message")
	}
}

func TestHistory_NoRepo(t *testing.T) {
	s := New((&screen.Deps{}).WithDefaults())
	if cmd := s.Init(); cmd != nil {
		t.Error("expected no command without a repo")
	}
	if !strings.Contains(s.View(80, 24), "No quizzes yet.") {
		t.Error("expected empty message without a repo")
	}
}

func TestHistory_LoadError(t *testing.T) {
	s := loaded(t, &fakeEvents{err: errors.New("disk gone")})
	if !strings.Contains(s.View(80, 24), "disk gone") {
		t.Error("expected error in view")
	}
}

func TestHistory_Navigation(t *testing.T) {
	events := &fakeEvents{sessions: []store.SessionEventRecord{
		session("a", 95, "excellent"),
		session("b", 40, "failed"),
	}}
	s := loaded(t, events)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}
	s.Update(key('k'))
	if s.selected != 0 {
		t.Errorf("selected = %d, want 0", s.selected)
	}
}

func TestHistory_ExpandLoadsAnswersOnce(t *testing.T) {
	events := &fakeEvents{
		sessions: []store.SessionEventRecord{session("a", 50, "failed")},
		answers: map[string][]store.AnswerEventRecord{
			"a": {
				{AnswerEventData: store.AnswerEventData{BaseNumber: 3, Multiplier: 4, CorrectAnswer: 12, Selected: intPtr(12), Correct: true}},
				{AnswerEventData: store.AnswerEventData{BaseNumber: 7, Multiplier: 8, CorrectAnswer: 56, Selected: intPtr(54)}},
				{AnswerEventData: store.AnswerEventData{BaseNumber: 6, Multiplier: 6, CorrectAnswer: 36}},
			},
		},
	}
	s := loaded(t, events)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected answers to be fetched")
	}
	s.Update(cmd())

	view := s.View(100, 30)
	for _, want := range []string{"3 × 4  12 ✓", "7 × 8  54 ✗  (56)", "6 × 6  No answer ✗  (36)"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	// Collapse and expand again: answers are cached.
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected cached answers to be reused")
	}
	if events.answerCalls != 1 {
		t.Errorf("SessionAnswers called %d times, want 1", events.answerCalls)
	}
}

func TestHistory_KeyHints(t *testing.T) {
	s := New((&screen.Deps{}).WithDefaults())
	if got := len(s.KeyHints()); got != 3 {
		t.Errorf("KeyHints length = %d, want 3", got)
	}
	if s.Title() != "History" {
		t.Errorf("Title = %q", s.Title())
	}
}

package home

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/timesdrill/internal/quizgen"
	"github.com/abhisek/timesdrill/internal/router"
	"github.com/abhisek/timesdrill/internal/screen"
	"github.com/abhisek/timesdrill/internal/screens/history"
	"github.com/abhisek/timesdrill/internal/screens/setup"
	"github.com/abhisek/timesdrill/internal/session"
	"github.com/abhisek/timesdrill/internal/store"
)

type fakeStats struct {
	stats store.Stats
	err   error
	loads int
}

func (f *fakeStats) Load(context.Context) (store.Stats, error) {
	f.loads++
	return f.stats, f.err
}
func (f *fakeStats) Save(context.Context, store.Stats) error { return nil }
func (f *fakeStats) Reset(context.Context) error             { return nil }

func newHome(repo store.StatsRepo) *HomeScreen {
	return New((&screen.Deps{Stats: repo}).WithDefaults(), session.Settings{})
}

func TestHome_StatsPlaceholders(t *testing.T) {
	h := newHome(nil)
	if cmd := h.Init(); cmd != nil {
		t.Error("expected no load without a repo")
	}
	view := h.View(100, 34)
	if !strings.Contains(view, "Best score") || !strings.Contains(view, "-") {
		t.Errorf("expected placeholders in view:\n%s", view)
	}
}

func TestHome_LoadsStats(t *testing.T) {
	repo := &fakeStats{stats: store.Stats{
		BestScorePercent:           85,
		HasBestScore:               true,
		AverageResponseTimeSeconds: 4,
		HasAverageResponseTime:     true,
	}}
	h := newHome(repo)
	cmd := h.Init()
	if cmd == nil {
		t.Fatal("expected a load command")
	}
	h.Update(cmd())

	view := h.View(100, 34)
	for _, want := range []string{"85%", "4s"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHome_ResumeReloads(t *testing.T) {
	repo := &fakeStats{}
	h := newHome(repo)
	h.Update(h.Init()())

	repo.stats = store.Stats{BestScorePercent: 70, HasBestScore: true}
	cmd := h.Resume()
	if cmd == nil {
		t.Fatal("expected a reload command")
	}
	h.Update(cmd())
	if repo.loads != 2 {
		t.Errorf("loads = %d, want 2", repo.loads)
	}
	if !strings.Contains(h.View(100, 34), "70%") {
		t.Error("expected refreshed best score")
	}
}

func TestHome_LoadErrorKeepsPlaceholders(t *testing.T) {
	h := newHome(&fakeStats{err: errors.New("locked")})
	h.Update(h.Init()())
	if h.stats.HasBestScore {
		t.Error("stats should stay empty after a failed load")
	}
}

func TestHome_MenuNavigation(t *testing.T) {
	tests := []struct {
		name  string
		downs int
		check func(t *testing.T, msg tea.Msg)
	}{
		{"start opens setup", 0, func(t *testing.T, msg tea.Msg) {
			push, ok := msg.(router.PushScreenMsg)
			if !ok {
				t.Fatalf("msg = %T", msg)
			}
			if _, ok := push.Screen.(*setup.SetupScreen); !ok {
				t.Errorf("screen = %T", push.Screen)
			}
		}},
		{"history opens history", 1, func(t *testing.T, msg tea.Msg) {
			push, ok := msg.(router.PushScreenMsg)
			if !ok {
				t.Fatalf("msg = %T", msg)
			}
			if _, ok := push.Screen.(*history.HistoryScreen); !ok {
				t.Errorf("screen = %T", push.Screen)
			}
		}},
		{"exit quits", 2, func(t *testing.T, msg tea.Msg) {
			if _, ok := msg.(tea.QuitMsg); !ok {
				t.Errorf("msg = %T, want tea.QuitMsg", msg)
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHome(nil)
			for i := 0; i < tt.downs; i++ {
				h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
			}
			_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
			if cmd == nil {
				t.Fatal("expected a command")
			}
			tt.check(t, cmd())
		})
	}
}

func TestHome_StartUsesSettings(t *testing.T) {
	settings := session.Settings{Selection: []int{6}, Count: 4, Level: quizgen.LevelHard}
	h := New((&screen.Deps{}).WithDefaults(), settings)
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	push := cmd().(router.PushScreenMsg)
	got := push.Screen.(*setup.SetupScreen).Settings()
	if got.Count != 4 || got.Level != quizgen.LevelHard || len(got.Selection) != 1 {
		t.Errorf("settings = %+v", got)
	}
}

func TestMascotFor(t *testing.T) {
	tests := []struct {
		stats store.Stats
		want  MascotVariant
	}{
		{store.Stats{}, MascotIdle},
		{store.Stats{BestScorePercent: 95, HasBestScore: true}, MascotCelebrating},
		{store.Stats{BestScorePercent: 75, HasBestScore: true}, MascotIdle},
		{store.Stats{BestScorePercent: 0, HasBestScore: true}, MascotAlert},
	}
	for _, tt := range tests {
		if got := MascotFor(tt.stats); got != tt.want {
			t.Errorf("MascotFor(%+v) = %v, want %v", tt.stats, got, tt.want)
		}
	}
}

func TestHome_TitleAndHints(t *testing.T) {
	h := newHome(nil)
	if h.Title() != "Home" {
		t.Errorf("Title = %q", h.Title())
	}
	if len(h.KeyHints()) != 3 {
		t.Errorf("KeyHints length = %d, want 3", len(h.KeyHints()))
	}
}

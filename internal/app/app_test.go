package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/timesdrill/internal/quizgen"
	"github.com/abhisek/timesdrill/internal/router"
	"github.com/abhisek/timesdrill/internal/screen"
	"github.com/abhisek/timesdrill/internal/screens/history"
	"github.com/abhisek/timesdrill/internal/screens/quiz"
	"github.com/abhisek/timesdrill/internal/screens/setup"
	"github.com/abhisek/timesdrill/internal/session"
)

func sized(m AppModel, w, h int) AppModel {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return updated.(AppModel)
}

func escape(m AppModel) tea.Cmd {
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	return cmd
}

func TestApp_StartsAtHome(t *testing.T) {
	m := New(&screen.Deps{}, Options{})
	m.Init()
	if m.router.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", m.router.Depth())
	}
	if m.render() != "" {
		t.Error("expected empty frame before the first window size")
	}

	out := sized(m, 100, 34).render()
	for _, want := range []string{"Timesdrill", "Home", "Start quiz"} {
		if !strings.Contains(out, want) {
			t.Errorf("frame missing %q", want)
		}
	}
}

func TestApp_TooSmall(t *testing.T) {
	m := sized(New(&screen.Deps{}, Options{}), 40, 10)
	out := m.render()
	if !strings.Contains(out, "Terminal too small!") || !strings.Contains(out, "40 x 10") {
		t.Errorf("unexpected frame:\n%s", out)
	}
}

func TestApp_EscapeOnRootDoesNothing(t *testing.T) {
	m := New(&screen.Deps{}, Options{})
	if cmd := escape(m); cmd != nil {
		t.Error("expected no command at the root")
	}
}

func TestApp_EscapePopsPlainScreens(t *testing.T) {
	m := New(&screen.Deps{}, Options{})
	deps := (&screen.Deps{}).WithDefaults()
	m.Update(router.PushScreenMsg{Screen: history.New(deps)})
	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", m.router.Depth())
	}

	cmd := escape(m)
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestApp_ReplaysQuestions(t *testing.T) {
	settings := session.Settings{Selection: []int{2, 3}, Level: quizgen.LevelEasy}
	qs, err := quizgen.New(quizgen.WithSeed(1)).Generate(quizgen.Request{
		Selection: settings.Selection,
		Count:     3,
		Profile:   quizgen.DefaultProfile(quizgen.LevelEasy),
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	m := New(&screen.Deps{}, Options{Settings: settings, Questions: qs})
	m.Init()
	if m.router.Depth() != 3 {
		t.Fatalf("depth = %d, want 3", m.router.Depth())
	}
	qscreen, ok := m.router.Active().(*quiz.QuizScreen)
	if !ok {
		t.Fatalf("active = %T", m.router.Active())
	}
	if got := qscreen.Session().Settings.Count; got != 3 {
		t.Errorf("count = %d, want 3", got)
	}

	// The quiz consumes Esc to ask for confirmation instead of popping.
	escape(m)
	if m.router.Depth() != 3 {
		t.Error("quiz was popped by Esc")
	}
	if !strings.Contains(sized(m, 100, 34).render(), "Quit this quiz?") {
		t.Error("expected quit confirmation")
	}
}

func TestApp_AutoStart(t *testing.T) {
	settings := session.Settings{Selection: []int{4}, Count: 5, Level: quizgen.LevelMedium}
	m := New(&screen.Deps{}, Options{Settings: settings, AutoStart: true})
	if cmd := m.Init(); cmd == nil {
		t.Fatal("expected start commands")
	}
	s, ok := m.router.Active().(*setup.SetupScreen)
	if !ok {
		t.Fatalf("active = %T", m.router.Active())
	}
	if !s.Generating() {
		t.Error("expected generation to be running")
	}
}

func TestApp_CtrlCQuits(t *testing.T) {
	m := New(&screen.Deps{}, Options{})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestApp_FooterUsesScreenHints(t *testing.T) {
	m := sized(New(&screen.Deps{}, Options{}), 100, 34)
	if !strings.Contains(m.render(), "Navigate") {
		t.Error("expected home hints in the footer")
	}
}

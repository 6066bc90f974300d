package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/abhisek/timesdrill/internal/quizgen"
	"github.com/abhisek/timesdrill/internal/router"
	"github.com/abhisek/timesdrill/internal/screen"
	"github.com/abhisek/timesdrill/internal/screens/home"
	"github.com/abhisek/timesdrill/internal/screens/quiz"
	"github.com/abhisek/timesdrill/internal/screens/setup"
	"github.com/abhisek/timesdrill/internal/session"
	"github.com/abhisek/timesdrill/internal/ui/layout"
)

// Options selects what the program shows first.
type Options struct {
	// Settings pre-fill the setup screen.
	Settings session.Settings

	// AutoStart opens the setup screen and starts generating right away.
	AutoStart bool

	// Questions, when set, are played as-is (a replayed worksheet).
	Questions []quizgen.Question
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps   *screen.Deps
	router *router.Router
	start  []screen.Screen
	width  int
	height int
}

// New builds the root model. Home is always at the bottom of the stack so
// that finishing or abandoning a quiz lands there.
func New(deps *screen.Deps, opts Options) AppModel {
	deps = deps.WithDefaults()
	m := AppModel{
		deps:   deps,
		router: router.New(home.New(deps, opts.Settings)),
	}

	switch {
	case len(opts.Questions) > 0:
		settings := opts.Settings
		if settings.Count == 0 {
			settings.Count = len(opts.Questions)
		}
		q := session.NewQuizSession(uuid.NewString(), settings,
			deps.Profile(settings.Level), opts.Questions, deps.Now())
		q.DiagnosisService = deps.Diagnosis
		m.start = append(m.start, setup.New(deps, settings), quiz.New(deps, q))
	case opts.AutoStart:
		m.start = append(m.start, setup.New(deps, opts.Settings).AutoStart())
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.router.Active().Init()}
	for _, s := range m.start {
		cmds = append(cmds, m.router.Push(s))
	}
	return tea.Batch(cmds...)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscapeHandler); ok && h.HandlesEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the whole frame; empty until the first window size arrives.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		text := m.deps.T("app.too_small", layout.MinWidth, layout.MinHeight, m.width, m.height)
		return layout.RenderMinSizeMessage(text, m.width, m.height)
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(m.deps.T("app.title"), title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if hp, ok := active.(screen.KeyHintProvider); ok {
		return hp.KeyHints()
	}
	t := m.deps.T
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: t("keys.back")},
			{Key: "Ctrl+C", Description: t("keys.quit")},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: t("keys.navigate")},
		{Key: "Enter", Description: t("keys.select")},
		{Key: "Ctrl+C", Description: t("keys.quit")},
	}
}

// Run starts the Bubble Tea program.
func Run(deps *screen.Deps, opts Options) error {
	p := tea.NewProgram(New(deps, opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

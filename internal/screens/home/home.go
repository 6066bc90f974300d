package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/timesdrill/internal/router"
	"github.com/abhisek/timesdrill/internal/screen"
	"github.com/abhisek/timesdrill/internal/screens/history"
	"github.com/abhisek/timesdrill/internal/screens/setup"
	"github.com/abhisek/timesdrill/internal/session"
	"github.com/abhisek/timesdrill/internal/store"
	"github.com/abhisek/timesdrill/internal/ui/components"
	"github.com/abhisek/timesdrill/internal/ui/layout"
	"github.com/abhisek/timesdrill/internal/ui/theme"
)

// statsLoadedMsg carries the stored statistics for the stats bar.
type statsLoadedMsg struct {
	Stats store.Stats
	Err   error
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	deps     *screen.Deps
	menu     components.Menu
	stats    store.Stats
	settings session.Settings
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates a new HomeScreen. settings pre-fill the setup screen opened
// from the menu.
func New(deps *screen.Deps, settings session.Settings) *HomeScreen {
	h := &HomeScreen{deps: deps, settings: settings}
	t := deps.T

	h.menu = components.NewMenu([]components.MenuItem{
		{Label: t("home.start"), Action: func() tea.Cmd {
			next := setup.New(h.deps, h.settings)
			return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}},
		{Label: t("home.history"), Action: func() tea.Cmd {
			next := history.New(h.deps)
			return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}},
		{Label: t("home.exit"), Action: func() tea.Cmd {
			return tea.Quit
		}},
	})
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadStats()
}

// Resume reloads the statistics after a quiz or a reset.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.loadStats()
}

func (h *HomeScreen) loadStats() tea.Cmd {
	repo := h.deps.Stats
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		st, err := repo.Load(context.Background())
		return statsLoadedMsg{Stats: st, Err: err}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(statsLoadedMsg); ok {
		if msg.Err != nil {
			h.deps.Logger.Warn("load stats failed", "error", msg.Err)
			return h, nil
		}
		h.stats = msg.Stats
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer
	termHeight := height + layout.HeaderHeight + layout.FooterHeight + 2
	compact := termHeight < layout.CompactHeightThreshold || layout.IsCompactWidth(width)

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(h.deps.T("app.subtitle"), cw, compact))
	if !compact {
		sections = append(sections, lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(RenderMascot(MascotFor(h.stats))))
	}
	sections = append(sections, components.StatsBar(h.statsText(), cw))
	sections = append(sections, components.ArcadeMenu(h.menu.Labels(), h.menu.Selected, cw, compact))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) statsText() string {
	t := h.deps.T
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	best := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	avg := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)

	return label.Render(t("home.best")+": ") +
		best.Render(screen.BestScoreText(h.deps.Printer, h.stats)) +
		"   " +
		label.Render(t("home.avg")+": ") +
		avg.Render(screen.AverageTimeText(h.deps.Printer, h.stats))
}

func (h *HomeScreen) Title() string {
	return h.deps.T("home.title")
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: h.deps.T("keys.navigate")},
		{Key: "Enter", Description: h.deps.T("keys.select")},
		{Key: "Ctrl+C", Description: h.deps.T("keys.quit")},
	}
}

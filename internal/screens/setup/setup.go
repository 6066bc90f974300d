package setup

import (
	"slices"
	"strconv"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/timesdrill/internal/quizgen"
	"github.com/abhisek/timesdrill/internal/router"
	"github.com/abhisek/timesdrill/internal/screen"
	"github.com/abhisek/timesdrill/internal/screens/quiz"
	"github.com/abhisek/timesdrill/internal/session"
	"github.com/abhisek/timesdrill/internal/ui/components"
	"github.com/abhisek/timesdrill/internal/ui/layout"
)

// GridSize is the number of base numbers offered as toggles.
const GridSize = 10

// DefaultCount pre-fills the question count.
const DefaultCount = 10

type field int

const (
	fieldBases field = iota
	fieldCount
	fieldLevel
	fieldStart
	numFields
)

// genStepMsg reports one chunk of a running generation job.
type genStepMsg struct {
	job  *quizgen.Job
	done bool
	err  error
}

// SetupScreen collects the quiz settings and builds the question set.
type SetupScreen struct {
	deps *screen.Deps

	selected map[int]bool
	cursor   int // base under the cursor, 1..GridSize
	count    components.TextInput
	levels   []quizgen.Level
	level    int
	focus    field

	errMsg    string
	autoStart bool

	job      *quizgen.Job
	pending  session.Settings
	deadline time.Time
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)
var _ screen.EscapeHandler = (*SetupScreen)(nil)

// New creates a SetupScreen pre-filled from settings. Bases outside the grid
// are kept and shown separately.
func New(deps *screen.Deps, settings session.Settings) *SetupScreen {
	s := &SetupScreen{
		deps:     deps,
		selected: make(map[int]bool),
		cursor:   1,
		count:    components.NewTextInput(strconv.Itoa(DefaultCount), true, 3),
		levels:   quizgen.Levels(),
	}
	for _, b := range settings.Selection {
		s.selected[b] = true
	}

	count := settings.Count
	if count <= 0 {
		count = DefaultCount
	}
	s.count.SetValue(strconv.Itoa(count))
	s.count.Blur()

	s.level = slices.Index(s.levels, quizgen.LevelMedium)
	if i := slices.Index(s.levels, settings.Level); i >= 0 {
		s.level = i
	}
	return s
}

// AutoStart makes the screen start generating as soon as it is shown.
func (s *SetupScreen) AutoStart() *SetupScreen {
	s.autoStart = true
	return s
}

func (s *SetupScreen) Init() tea.Cmd {
	if s.autoStart {
		s.autoStart = false
		return s.start()
	}
	return nil
}

func (s *SetupScreen) Title() string {
	return s.deps.T("setup.title")
}

// HandlesEscape is true while generating, where Esc cancels the job.
func (s *SetupScreen) HandlesEscape() bool {
	return s.job != nil
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	t := s.deps.T
	if s.job != nil {
		return []layout.KeyHint{{Key: "Esc", Description: t("keys.cancel")}}
	}
	hints := []layout.KeyHint{{Key: "Tab", Description: t("keys.next_field")}}
	switch s.focus {
	case fieldBases:
		hints = append(hints,
			layout.KeyHint{Key: "←→", Description: t("keys.move")},
			layout.KeyHint{Key: "Space/0-9", Description: t("keys.toggle")})
	case fieldLevel:
		hints = append(hints, layout.KeyHint{Key: "←→", Description: t("keys.select")})
	}
	return append(hints,
		layout.KeyHint{Key: "Enter", Description: t("keys.start")},
		layout.KeyHint{Key: "Esc", Description: t("keys.back")})
}

// Settings returns the settings as currently entered. An unparsable count
// is returned as zero so validation rejects it.
func (s *SetupScreen) Settings() session.Settings {
	selection := make([]int, 0, len(s.selected))
	for b, on := range s.selected {
		if on {
			selection = append(selection, b)
		}
	}
	slices.Sort(selection)
	count, err := s.count.NumericValue()
	if err != nil {
		count = 0
	}
	return session.Settings{
		Selection: selection,
		Count:     count,
		Level:     s.levels[s.level],
	}
}

// Generating reports whether a generation job is running.
func (s *SetupScreen) Generating() bool {
	return s.job != nil
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case genStepMsg:
		return s, s.handleStep(msg)
	case tea.KeyMsg:
		return s, s.handleKey(msg)
	}
	if s.focus == fieldCount && s.job == nil {
		var cmd tea.Cmd
		s.count, cmd = s.count.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SetupScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	if s.job != nil {
		if key == "esc" {
			produced, wanted, _ := s.job.Progress()
			s.deps.Logger.Info("generation cancelled", "produced", produced, "wanted", wanted)
			s.job = nil
		}
		return nil
	}

	switch key {
	case "enter":
		return s.start()
	case "tab", "down":
		return s.moveFocus(1)
	case "shift+tab", "up":
		return s.moveFocus(-1)
	}

	switch s.focus {
	case fieldBases:
		s.handleBasesKey(key)
	case fieldCount:
		var cmd tea.Cmd
		s.count, cmd = s.count.Update(msg)
		return cmd
	case fieldLevel:
		switch key {
		case "left", "h":
			s.level = (s.level + len(s.levels) - 1) % len(s.levels)
		case "right", "l", "space", " ":
			s.level = (s.level + 1) % len(s.levels)
		}
	}
	return nil
}

func (s *SetupScreen) handleBasesKey(key string) {
	switch key {
	case "left", "h":
		if s.cursor > 1 {
			s.cursor--
		}
	case "right", "l":
		if s.cursor < GridSize {
			s.cursor++
		}
	case "space", " ", "x":
		s.toggle(s.cursor)
	case "a":
		all := true
		for b := 1; b <= GridSize; b++ {
			all = all && s.selected[b]
		}
		for b := 1; b <= GridSize; b++ {
			s.selected[b] = !all
		}
	default:
		if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
			b := int(key[0] - '0')
			if b == 0 {
				b = 10
			}
			s.cursor = b
			s.toggle(b)
		}
	}
}

func (s *SetupScreen) toggle(base int) {
	s.selected[base] = !s.selected[base]
	s.errMsg = ""
}

func (s *SetupScreen) moveFocus(delta int) tea.Cmd {
	s.focus = field((int(s.focus) + delta + int(numFields)) % int(numFields))
	if s.focus == fieldCount {
		return s.count.Focus()
	}
	s.count.Blur()
	return nil
}

// start validates the settings and launches a generation job.
func (s *SetupScreen) start() tea.Cmd {
	settings := s.Settings()
	if err := settings.Validate(); err != nil {
		s.fail(err)
		return nil
	}
	job, err := s.deps.Generator.NewJob(settings.Request(s.deps.Profile(settings.Level)))
	if err != nil {
		s.fail(err)
		return nil
	}

	s.errMsg = ""
	s.job = job
	s.pending = settings
	s.deadline = s.deps.Now().Add(s.deps.GenTimeout)
	s.deps.Logger.Debug("generation started",
		"selection", settings.Selection, "count", settings.Count, "level", string(settings.Level))
	return stepCmd(job)
}

func stepCmd(job *quizgen.Job) tea.Cmd {
	return func() tea.Msg {
		done, err := job.Step()
		return genStepMsg{job: job, done: done, err: err}
	}
}

func (s *SetupScreen) handleStep(msg genStepMsg) tea.Cmd {
	// Steps of a cancelled or replaced job are dropped.
	if msg.job != s.job {
		return nil
	}
	if msg.err != nil {
		s.job = nil
		s.fail(msg.err)
		return nil
	}
	// A result that arrives after the deadline counts as a timeout.
	if s.deps.Now().After(s.deadline) {
		produced, wanted, attempts := msg.job.Progress()
		s.job = nil
		s.fail(&quizgen.GenerationError{
			Err:      quizgen.ErrGenerationTimeout,
			Produced: produced,
			Wanted:   wanted,
			Attempts: attempts,
		})
		return nil
	}
	if msg.done {
		s.job = nil
		return s.launch(msg.job.Questions())
	}
	return stepCmd(msg.job)
}

func (s *SetupScreen) launch(questions []quizgen.Question) tea.Cmd {
	settings := s.pending
	q := session.NewQuizSession(uuid.NewString(), settings,
		s.deps.Profile(settings.Level), questions, s.deps.Now())
	q.DiagnosisService = s.deps.Diagnosis

	s.deps.Logger.Info("quiz started",
		"session_id", q.ID,
		"selection", settings.Selection,
		"count", settings.Count,
		"level", string(settings.Level))

	next := quiz.New(s.deps, q)
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (s *SetupScreen) fail(err error) {
	msg, ok := screen.GenerationErrorText(s.deps.Printer, err)
	if ok {
		s.deps.Logger.Info("generation rejected", "error", err)
	} else {
		s.deps.Logger.Error("generation failed", "error", err)
	}
	s.errMsg = msg
}

package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/timesdrill/internal/ui/theme"
)

// MultiChoice is a numbered answer selector. Options are picked with the
// number keys or with the arrows and Enter.
type MultiChoice struct {
	Options     []int
	Correct     int
	Selected    int
	Submitted   bool
	ChosenIndex int // -1 when revealed without a choice
}

// NewMultiChoice creates a selector over options.
func NewMultiChoice(options []int, correct int) MultiChoice {
	return MultiChoice{
		Options:     options,
		Correct:     correct,
		ChosenIndex: -1,
	}
}

// Update handles keyboard navigation and selection. Once submitted the
// component ignores input.
func (m MultiChoice) Update(msg tea.Msg) MultiChoice {
	if m.Submitted {
		return m
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.choose(m.Selected)
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(m.Options) {
				m.Selected = i
				m.choose(i)
			}
		}
	}

	return m
}

func (m *MultiChoice) choose(i int) {
	m.Submitted = true
	m.ChosenIndex = i
}

// Reveal marks the selector as finished without a choice, used on timeout.
func (m *MultiChoice) Reveal() {
	m.Submitted = true
	m.ChosenIndex = -1
}

// Chosen returns the picked option value.
func (m MultiChoice) Chosen() (int, bool) {
	if !m.Submitted || m.ChosenIndex < 0 || m.ChosenIndex >= len(m.Options) {
		return 0, false
	}
	return m.Options[m.ChosenIndex], true
}

// View renders the options. After submission the correct option is green
// and a wrong pick red.
func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %d", prefix, i+1, opt)

		switch {
		case m.Submitted && opt == m.Correct:
			b.WriteString(theme.Correct.Render(line + "  ✓"))
		case m.Submitted && i == m.ChosenIndex:
			b.WriteString(theme.Incorrect.Render(line + "  ✗"))
		case m.Submitted:
			b.WriteString(theme.Disabled.Render(line))
		case i == m.Selected:
			b.WriteString(theme.Selected.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

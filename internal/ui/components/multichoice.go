package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/algebra/internal/ui/theme"
)

// Mark is the judged state shown on a chosen option.
type Mark int

const (
	Unmarked Mark = iota
	MarkCorrect
	MarkIncorrect
)

// MultiChoice is a multiple-choice selector. It tracks the cursor and the
// chosen option; judging is done by the caller through Judge.
type MultiChoice struct {
	Options []string
	Cursor  int
	Chosen  int // -1 when nothing is chosen
	Mark    Mark
	Shaking bool
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{
		Options: options,
		Chosen:  -1,
	}
}

// Update handles arrow navigation and choosing. Number keys 1-9 choose the
// matching option directly; space chooses the option under the cursor.
// Choosing clears any previous mark.
func (m MultiChoice) Update(msg tea.Msg) MultiChoice {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Options) == 0 {
		return m
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case "space", " ":
		m.choose(m.Cursor)
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(m.Options) {
				m.Cursor = i
				m.choose(i)
			}
		}
	}
	return m
}

func (m *MultiChoice) choose(i int) {
	m.Chosen = i
	m.Mark = Unmarked
	m.Shaking = false
}

// Choice returns the chosen option text.
func (m MultiChoice) Choice() (string, bool) {
	if m.Chosen < 0 || m.Chosen >= len(m.Options) {
		return "", false
	}
	return m.Options[m.Chosen], true
}

// ChooseCursor chooses the option under the cursor if nothing is chosen.
func (m *MultiChoice) ChooseCursor() {
	if m.Chosen < 0 && m.Cursor < len(m.Options) {
		m.choose(m.Cursor)
	}
}

// Judge marks the chosen option. Incorrect answers start a shake.
func (m *MultiChoice) Judge(correct bool) {
	if correct {
		m.Mark = MarkCorrect
		return
	}
	m.Mark = MarkIncorrect
	m.Shaking = true
}

// View renders the options.
func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor {
			prefix = "▸ "
		}
		bullet := "○"
		if i == m.Chosen {
			bullet = "●"
		}
		line := fmt.Sprintf("%s%d) %s %s", prefix, i+1, bullet, opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case i == m.Chosen && m.Mark == MarkCorrect:
			style = theme.Correct
			line += "  ✓"
		case i == m.Chosen && m.Mark == MarkIncorrect:
			style = theme.Incorrect
			line += "  ✗"
			if m.Shaking {
				line = " " + line
			}
		case i == m.Cursor:
			style = theme.Selected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

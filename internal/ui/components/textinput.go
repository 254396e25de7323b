package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/algebra/internal/ui/theme"
)

// AnswerInput wraps bubbles/textinput for free response answers.
type AnswerInput struct {
	Model   textinput.Model
	Mark    Mark
	Shaking bool
}

// NewAnswerInput creates a focused answer input.
func NewAnswerInput(placeholder string, limit int) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if limit > 0 {
		ti.CharLimit = limit
	}

	return AnswerInput{Model: ti}
}

// Init returns the initial command.
func (t AnswerInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update forwards messages to the text input. Editing clears the mark.
func (t AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	before := t.Model.Value()
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	if t.Model.Value() != before {
		t.Mark = Unmarked
		t.Shaking = false
	}
	return t, cmd
}

// View renders the input with its mark.
func (t AnswerInput) View() string {
	view := t.Model.View()
	switch t.Mark {
	case MarkCorrect:
		view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	case MarkIncorrect:
		view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		if t.Shaking {
			view = "  " + view
		}
	}
	return view
}

// Value returns the current input value.
func (t AnswerInput) Value() string {
	return t.Model.Value()
}

// Judge marks the input. Incorrect answers start a shake.
func (t *AnswerInput) Judge(correct bool) {
	if correct {
		t.Mark = MarkCorrect
		return
	}
	t.Mark = MarkIncorrect
	t.Shaking = true
}

// Clear empties the input and removes the mark.
func (t *AnswerInput) Clear() {
	t.Model.Reset()
	t.Mark = Unmarked
	t.Shaking = false
}

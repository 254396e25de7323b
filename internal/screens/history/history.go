package history

import (
	"fmt"
	"image/color"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/algebra/internal/router"
	"github.com/abhisek/algebra/internal/screen"
	"github.com/abhisek/algebra/internal/session"
	"github.com/abhisek/algebra/internal/ui/layout"
	"github.com/abhisek/algebra/internal/ui/theme"
)

// Filter selects which attempts are listed.
type Filter int

const (
	FilterAll Filter = iota
	FilterCorrect
	FilterIncorrect
)

func (f Filter) String() string {
	switch f {
	case FilterCorrect:
		return "correct"
	case FilterIncorrect:
		return "incorrect"
	default:
		return "all"
	}
}

// HistoryScreen lists the session's attempts, newest first.
type HistoryScreen struct {
	attempts []session.Attempt
	filter   Filter
	selected int
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen over a copy of the attempts.
func New(attempts []session.Attempt) *HistoryScreen {
	list := slices.Clone(attempts)
	slices.Reverse(list)
	return &HistoryScreen{attempts: list}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "F", Description: "Filter: " + s.filter.String()},
		{Key: "Esc", Description: "Back"},
	}
}

// visible returns the attempts matching the filter.
func (s *HistoryScreen) visible() []session.Attempt {
	if s.filter == FilterAll {
		return s.attempts
	}
	want := s.filter == FilterCorrect
	var out []session.Attempt
	for _, a := range s.attempts {
		if a.Correct == want {
			out = append(out, a)
		}
	}
	return out
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.visible())-1 {
			s.selected++
		}
	case "f":
		s.filter = (s.filter + 1) % 3
		s.selected = 0
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	items := s.visible()
	if len(items) == 0 {
		msg := "\n\n  No answers yet. Pick a topic and start practicing!"
		if len(s.attempts) > 0 {
			msg = fmt.Sprintf("\n\n  No %s answers.", s.filter)
		}
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render(msg)
	}

	var b strings.Builder
	b.WriteString("\n")

	// Scroll so the selection stays on screen.
	rows := max(height-2, 1)
	start := 0
	if s.selected >= rows {
		start = s.selected - rows + 1
	}
	end := min(start+rows, len(items))

	for i := start; i < end; i++ {
		a := items[i]
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		mark := "✗"
		if a.Correct {
			mark = "✓"
		}
		line := fmt.Sprintf("%s%s  %-14s  level %d  %s",
			prefix, a.At.Format("15:04:05"), a.Topic, a.Level, mark)

		style := lipgloss.NewStyle().Foreground(resultColor(a.Correct))
		if i == s.selected {
			style = style.Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func resultColor(correct bool) color.Color {
	if correct {
		return theme.Success
	}
	return theme.Error
}

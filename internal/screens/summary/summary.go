package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/algebra/internal/catalog"
	"github.com/abhisek/algebra/internal/router"
	"github.com/abhisek/algebra/internal/screen"
	"github.com/abhisek/algebra/internal/session"
	"github.com/abhisek/algebra/internal/ui/components"
	"github.com/abhisek/algebra/internal/ui/layout"
	"github.com/abhisek/algebra/internal/ui/theme"
)

// SummaryScreen displays the session summary.
type SummaryScreen struct {
	summary   session.Summary
	topics    []catalog.TopicInfo
	completed string // name of the topic just finished, if any
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. topics orders the mastery rows.
func New(summary session.Summary, topics []catalog.TopicInfo) *SummaryScreen {
	return &SummaryScreen{summary: summary, topics: topics}
}

// TopicComplete creates a SummaryScreen headed by a completion banner.
func TopicComplete(summary session.Summary, topics []catalog.TopicInfo, topicName string) *SummaryScreen {
	s := New(summary, topics)
	s.completed = topicName
	return s
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Topics"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	var b strings.Builder

	center := func(style lipgloss.Style, text string) {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(style.Render(text)))
		b.WriteString("\n")
	}

	title := "Session so far"
	if s.completed != "" {
		title = fmt.Sprintf("%s complete!", s.completed)
	}
	center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), title)
	b.WriteString("\n")

	statsLine := fmt.Sprintf("Level: %d        Score: %d        Streak: %d",
		sum.UserLevel, sum.Score, sum.Streak)
	center(lipgloss.NewStyle().Foreground(theme.Text), statsLine)

	accuracy := fmt.Sprintf("%.0f%%", sum.Accuracy*100)
	answersLine := fmt.Sprintf("Answered: %d        Correct: %d        Accuracy: %s",
		sum.Attempts, sum.Correct, accuracy)
	center(lipgloss.NewStyle().Foreground(theme.TextDim), answersLine)
	b.WriteString("\n")

	barWidth := min(width-8, 60)
	goal := components.NewProgressBar("Goal", sum.ProgressPercent/100, true, barWidth)
	goal.Fill = theme.ArcadeYellow
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, goal.View()))
	b.WriteString("\n\n")

	// Topics divider.
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", barWidth))
	center(lipgloss.NewStyle().Foreground(theme.TextDim), "Topics")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	rows := 0
	for _, t := range s.topics {
		m, ok := sum.TopicMastery[t.ID]
		if !ok || m.Total == 0 {
			continue
		}
		rows++
		bar := components.NewProgressBar(
			fmt.Sprintf("%-20s %2d/%-2d", t.DisplayName, m.Correct, m.Total),
			m.Ratio(), true, barWidth)
		if m.Ratio() < session.DemoteBelow {
			bar.Fill = theme.Error
		} else if m.Ratio() > session.PromoteAbove {
			bar.Fill = theme.Success
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}
	if rows == 0 {
		center(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true), "No answers yet.")
	}

	return b.String()
}

package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/algebra/internal/session"
	"github.com/abhisek/algebra/internal/ui/components"
	"github.com/abhisek/algebra/internal/ui/theme"
)

const arcadeTitleFull = ` █████╗ ██╗      ██████╗ ███████╗██████╗ ██████╗  █████╗
██╔══██╗██║     ██╔════╝ ██╔════╝██╔══██╗██╔══██╗██╔══██╗
███████║██║     ██║  ███╗█████╗  ██████╔╝██████╔╝███████║
██╔══██║██║     ██║   ██║██╔══╝  ██╔══██╗██╔══██╗██╔══██║
██║  ██║███████╗╚██████╔╝███████╗██████╔╝██║  ██║██║  ██║
╚═╝  ╚═╝╚══════╝ ╚═════╝ ╚══════╝╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝`

const arcadeTitleCompact = "A · L · G · E · B · R · A"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	title := arcadeTitleFull
	if compact {
		title = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderStatsBar renders level, score, streak and goal progress in a
// double-bordered box matching content width.
func renderStatsBar(st session.State, cw int) string {
	levelStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	scoreStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	stats := fmt.Sprintf("%s  %s  %s",
		levelStyle.Render(fmt.Sprintf("LEVEL %d", st.UserLevel)),
		scoreStyle.Render(fmt.Sprintf("◆ %d PTS", st.Score)),
		streakStyle.Render(fmt.Sprintf("★ %d STREAK", st.Streak)),
	)

	bar := components.NewProgressBar("GOAL", session.ProgressPercent(st.Score)/100, true, cw-6)
	bar.Fill = theme.ArcadeYellow

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats + "\n" + bar.View())
}

// renderMenu renders the topic menu as a left-aligned block centered in
// the content width.
func renderMenu(m components.Menu, cw int) string {
	block := strings.TrimRight(m.View(), "\n")
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().Align(lipgloss.Left).Render(block))
}

// masteryDetail formats a topic's record for the menu.
func masteryDetail(m *session.TopicMastery) string {
	if m == nil || m.Total == 0 {
		return ""
	}
	mark := ""
	if m.Ratio() > session.PromoteAbove {
		mark = " ✓"
	}
	return fmt.Sprintf("%d/%d%s", m.Correct, m.Total, mark)
}

package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: chalkboard tones with bright plot ink
var (
	Primary      = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary    = lipgloss.Color("#14B8A6") // Teal
	Accent       = lipgloss.Color("#F97316") // Orange
	Success      = lipgloss.Color("#22C55E") // Green
	Error        = lipgloss.Color("#F43F5E") // Rose
	Text         = lipgloss.Color("#F8FAFC") // White
	TextDim      = lipgloss.Color("#94A3B8") // Slate
	BgCard       = lipgloss.Color("#1E293B") // Dark Slate
	Border       = lipgloss.Color("#334155") // Slate
	ArcadeYellow = lipgloss.Color("#FACC15") // Yellow
	ArcadeCyan   = lipgloss.Color("#22D3EE") // Cyan
	PlotCurve    = lipgloss.Color("#3B82F6") // Blue
)

// Typography
var (
	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Plot ink
var (
	PlotAxis    = lipgloss.NewStyle().Foreground(Border)
	PlotAux     = lipgloss.NewStyle().Foreground(Error)
	PlotLine    = lipgloss.NewStyle().Foreground(PlotCurve)
	PlotFeature = lipgloss.NewStyle().Foreground(ArcadeYellow).Bold(true)
	PlotLabel   = lipgloss.NewStyle().Foreground(Text)
)

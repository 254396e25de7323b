package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/algebra/internal/plot"
	"github.com/abhisek/algebra/internal/render"
	"github.com/abhisek/algebra/internal/ui/components"
	"github.com/abhisek/algebra/internal/ui/layout"
	"github.com/abhisek/algebra/internal/ui/theme"
)

func (s *PracticeScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}

	var b strings.Builder
	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n")

	bodyHeight := max(height-2, 4)
	plotWidth := width * 11 / 20
	panelWidth := max(width-plotWidth-2, 10)

	plotBox := renderPlot(s.problem.Plot, plotWidth, bodyHeight)
	panel := lipgloss.NewStyle().
		Width(panelWidth).
		MaxHeight(bodyHeight).
		PaddingLeft(1).
		Render(s.renderPanel(panelWidth-1, height >= layout.CompactHeightThreshold))

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, plotBox, " ", panel))
	return b.String()
}

func (s *PracticeScreen) renderInfoLine(width int) string {
	p := s.problem
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Problem %d/%d", p.Index+1, p.Count))
	infoLeft += lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  ·  level %d", p.Level))

	bar := components.NewProgressBar("", float64(p.Index+1)/float64(max(p.Count, 1)), false, 20)
	infoRight := bar.View()

	pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if pad < 1 {
		return infoLeft
	}
	return infoLeft + strings.Repeat(" ", pad) + infoRight
}

// renderPlot draws the sampled plot on a canvas inside a card.
func renderPlot(res plot.Result, width, height int) string {
	c := render.NewCanvas(width-2, height-2)
	render.Draw(res, c)
	return theme.Card.
		Padding(0).
		Render(c.Render(styleCell))
}

func styleCell(class render.Class, text string) string {
	switch class {
	case render.ClassAxis:
		return theme.PlotAxis.Render(text)
	case render.ClassAux:
		return theme.PlotAux.Render(text)
	case render.ClassCurve:
		return theme.PlotLine.Render(text)
	case render.ClassFeature:
		return theme.PlotFeature.Render(text)
	case render.ClassText:
		return theme.PlotLabel.Render(text)
	default:
		return text
	}
}

func (s *PracticeScreen) renderPanel(width int, legend bool) string {
	p := s.problem
	wrap := lipgloss.NewStyle().Width(width)

	var b strings.Builder
	b.WriteString(wrap.Foreground(theme.Primary).Bold(true).Render(p.Title))
	b.WriteString("\n")
	if p.Description != "" {
		b.WriteString(wrap.Foreground(theme.TextDim).Render(p.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(wrap.Foreground(theme.Text).Bold(true).Render(p.Question))
	b.WriteString("\n\n")

	if s.multipleChoice() {
		b.WriteString(s.choices.View())
	} else {
		b.WriteString("Answer: " + s.input.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if v := s.verdict; v != nil {
		if v.Correct {
			b.WriteString(theme.Correct.Render(fmt.Sprintf("Correct! +%d points", v.PointsAwarded)))
		} else {
			b.WriteString(theme.Incorrect.Render("Not quite. Try again."))
		}
		switch {
		case v.LevelChange > 0:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(fmt.Sprintf("  Level up! Now %d", v.Level)))
		case v.LevelChange < 0:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("  Level %d", v.Level)))
		}
		b.WriteString("\n")
	}

	hint := s.hint
	if hint == "" && s.verdict != nil && !s.verdict.Correct {
		hint = s.verdict.Hint
	}
	if hint != "" {
		b.WriteString(theme.Hint.Width(width).Render("Hint: " + hint))
		b.WriteString("\n")
	}

	if s.notice != "" {
		b.WriteString(wrap.Foreground(theme.Accent).Render(s.notice))
		b.WriteString("\n")
	}
	if s.complete {
		b.WriteString(theme.Correct.Render("Topic complete!"))
		b.WriteString("\n")
	}

	if legend {
		if l := renderLegend(p.Plot); l != "" {
			b.WriteString("\n")
			b.WriteString(l)
		}
	}
	return b.String()
}

// renderLegend lists plot features and auxiliary lines.
func renderLegend(res plot.Result) string {
	var lines, terms []string
	for _, f := range res.Features {
		switch {
		case f.Name == plot.FeatureTerm:
			terms = append(terms, f.Label)
		case f.Name == plot.FeatureAxisLabel, f.Label == "":
		default:
			lines = append(lines, theme.PlotFeature.Render("● ")+theme.PlotLabel.Render(f.Label))
		}
	}
	if len(terms) > 0 {
		lines = append(lines, theme.PlotFeature.Render("● ")+theme.PlotLabel.Render("Terms: "+strings.Join(terms, ", ")))
	}
	for _, l := range res.Lines {
		if l.Kind != plot.Asymptote {
			continue
		}
		lines = append(lines, theme.PlotAux.Render("┊ ")+theme.PlotLabel.Render("asymptote "+l.Label))
	}
	for _, w := range res.Warnings {
		lines = append(lines, theme.Hint.Render(string(w)))
	}
	return strings.Join(lines, "\n")
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

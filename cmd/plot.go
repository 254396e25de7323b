package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/algebra/internal/catalog"
	"github.com/abhisek/algebra/internal/plot"
	"github.com/abhisek/algebra/internal/render"
)

func newPlotCmd() *cobra.Command {
	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "Render a problem's plot as text or SVG",
		Long: `Sample the function behind a catalog problem and print it.

The text format draws the plot on a character grid followed by a legend of
labeled features. The svg format writes a standalone SVG document.`,
		Args: cobra.NoArgs,
		RunE: runPlot,
	}

	plotCmd.Flags().String("topic", catalog.DefaultTopicID, "Topic ID")
	plotCmd.Flags().Int("index", 0, "Problem index within the topic (0-based)")
	plotCmd.Flags().String("format", "text", "Output format: text or svg")
	plotCmd.Flags().Int("width", 61, "Text canvas width in columns")
	plotCmd.Flags().Int("height", 25, "Text canvas height in rows")
	return plotCmd
}

func runPlot(cmd *cobra.Command, args []string) error {
	topicID, _ := cmd.Flags().GetString("topic")
	index, _ := cmd.Flags().GetInt("index")
	format, _ := cmd.Flags().GetString("format")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")

	topic, err := catalog.Default().Topic(topicID)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(topic.Problems) {
		return fmt.Errorf("index %d out of range: topic %q has %d problems", index, topic.ID, len(topic.Problems))
	}
	p := topic.Problems[index]

	res, err := plot.Sample(p.Plot)
	if err != nil {
		return fmt.Errorf("sample %s: %w", p.ID, err)
	}

	out := cmd.OutOrStdout()
	switch strings.ToLower(format) {
	case "svg":
		svg := render.NewSVG()
		render.Draw(res, svg)
		fmt.Fprintln(out, svg.String())
	case "text":
		c := render.NewCanvas(width, height)
		render.Draw(res, c)
		fmt.Fprintf(out, "%s  (%s)\n\n", p.Title, p.Plot.Kind())
		fmt.Fprintln(out, c.String())
		writeLegend(out, res)
	default:
		return fmt.Errorf("invalid format %q: must be text or svg", format)
	}
	return nil
}

func writeLegend(out io.Writer, res plot.Result) {
	fmt.Fprintln(out)
	for _, f := range res.Features {
		if f.Name == plot.FeatureAxisLabel {
			continue
		}
		fmt.Fprintf(out, "  %-12s %s\n", f.Name, f.Label)
	}
	for _, l := range res.Lines {
		fmt.Fprintf(out, "  %-12s %s\n", l.Kind, l.Label)
	}
	for _, w := range res.Warnings {
		fmt.Fprintf(out, "  warning      %s\n", w)
	}
}

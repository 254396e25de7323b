package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/algebra/internal/catalog"
)

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "List the practice topics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.Default()
			out := cmd.OutOrStdout()

			// Header.
			fmt.Fprintf(out, "%-14s  %-26s  %8s  %s\n", "ID", "Name", "Problems", "Levels")
			fmt.Fprintln(out, strings.Repeat("─", 62))

			for _, ti := range cat.ListTopics() {
				t, err := cat.Topic(ti.ID)
				if err != nil {
					return err
				}
				lo, hi := levelRange(t.Problems)
				fmt.Fprintf(out, "%-14s  %-26s  %8d  %d-%d\n",
					t.ID, t.Name, len(t.Problems), lo, hi)
			}

			fmt.Fprintf(out, "\n%d topics, %d problems\n", len(cat.ListTopics()), cat.ProblemCount())
			return nil
		},
	}
}

func levelRange(problems []catalog.Problem) (lo, hi int) {
	for i, p := range problems {
		if i == 0 || p.Level < lo {
			lo = p.Level
		}
		if p.Level > hi {
			hi = p.Level
		}
	}
	return lo, hi
}

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/algebra/internal/catalog"
)

func newValidateCmd() *cobra.Command {
	validateCmd := &cobra.Command{
		Use:   "validate [dir]",
		Short: "Validate topic files",
		Long: `Check topic YAML files against the topic schema and the problem
validators. With no directory the built-in catalog is checked.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			var (
				cat *catalog.Catalog
				err error
			)
			source := "built-in catalog"
			if len(args) == 1 {
				source = args[0]
				cat, err = catalog.Load(os.DirFS(args[0]))
			} else {
				cat = catalog.Default()
			}
			if err != nil {
				fmt.Fprintf(out, "%s: invalid\n", source)
				for _, e := range flatten(err) {
					fmt.Fprintf(out, "  - %v\n", e)
				}
				return fmt.Errorf("validation failed")
			}

			fmt.Fprintf(out, "%s: %d topics, %d problems OK\n",
				source, len(cat.ListTopics()), cat.ProblemCount())
			return nil
		},
	}
	return validateCmd
}

// flatten unwraps joined errors into their parts.
func flatten(err error) []error {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		var out []error
		for _, e := range joined.Unwrap() {
			out = append(out, flatten(e)...)
		}
		return out
	}
	return []error{err}
}

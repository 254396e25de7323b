package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/algebra/internal/app"
)

// NewRootCmd builds the algebra command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "algebra",
		Short: "Interactive algebra practice in the terminal",
		Long: `Algebra — practice algebra problems with live plots of every function.

Pick a topic, answer multiple choice or free response questions, and watch
your level adapt to how you are doing. Nothing is saved between sessions.`,
		SilenceUsage: true,
		RunE:         runApp,
	}

	pf := rootCmd.PersistentFlags()
	pf.String("default-topic", "", "Topic loaded at start and used for unknown topics (overrides ALGEBRA_DEFAULT_TOPIC)")
	pf.String("log-level", "", "Log level: debug, info, warn or error (overrides ALGEBRA_LOG_LEVEL)")
	pf.String("log-format", "", "Log format: text or json (overrides ALGEBRA_LOG_FORMAT)")
	pf.String("log-file", "", "Write logs to this file (overrides ALGEBRA_LOG_FILE)")

	rootCmd.Flags().String("topic", "", "Open this topic directly instead of the topic list")

	rootCmd.AddCommand(
		newTopicsCmd(),
		newPlotCmd(),
		newQuizCmd(),
		newValidateCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// runApp builds the engine and launches the TUI. Logs are discarded unless
// a log file is configured, since the TUI owns the terminal.
func runApp(cmd *cobra.Command, args []string) error {
	d, err := newDeps(cmd, nil)
	if err != nil {
		return err
	}
	defer d.Close()

	topic, _ := cmd.Flags().GetString("topic")
	return app.Run(d.Engine(), app.Options{StartTopic: topic})
}

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/algebra/internal/catalog"
	"github.com/abhisek/algebra/internal/session"
)

func newQuizCmd() *cobra.Command {
	quizCmd := &cobra.Command{
		Use:   "quiz",
		Short: "Answer a topic's problems line by line (no TUI)",
		Long: `Work through a topic on plain stdin/stdout.

Type an answer and press Enter. For multiple choice, type the option
number. Commands:
  :hint   show the hint (costs points)
  :next   skip to the next problem
  :prev   go back one problem
  :reset  start the current problem over
  :sum    print the session summary
  :quit   stop`,
		Args: cobra.NoArgs,
		RunE: runQuiz,
	}

	quizCmd.Flags().String("topic", catalog.DefaultTopicID, "Topic ID")
	quizCmd.Flags().Bool("history", false, "Print every answer with its timestamp at the end")
	return quizCmd
}

func runQuiz(cmd *cobra.Command, args []string) error {
	d, err := newDeps(cmd, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer d.Close()

	topicID, _ := cmd.Flags().GetString("topic")
	showHistory, _ := cmd.Flags().GetBool("history")

	e := d.Engine()
	tv, err := e.LoadTopic(topicID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if tv.FellBack {
		fmt.Fprintf(out, "Topic %q not found, using %s.\n", tv.Requested, tv.Name)
	}
	fmt.Fprintf(out, "── %s ──\n", tv.Name)

	q := &quiz{engine: e, out: out, in: bufio.NewScanner(cmd.InOrStdin())}
	q.run(tv.Problem)

	writeSummary(out, e.Summary())
	if showHistory {
		writeHistory(out, e.History())
	}
	return nil
}

// quiz drives an Engine from line input.
type quiz struct {
	engine *session.Engine
	in     *bufio.Scanner
	out    io.Writer
}

func (q *quiz) run(v session.ProblemView) {
	q.show(v)
	for {
		fmt.Fprint(q.out, "> ")
		if !q.in.Scan() {
			fmt.Fprintln(q.out)
			return
		}
		line := strings.TrimSpace(q.in.Text())
		if line == "" {
			continue
		}

		var done bool
		if strings.HasPrefix(line, ":") {
			done = q.command(line)
		} else {
			done = q.answer(line)
		}
		if done {
			return
		}
	}
}

// command runs a colon command and reports whether the quiz is over.
func (q *quiz) command(line string) bool {
	switch line {
	case ":q", ":quit":
		return true
	case ":h", ":hint":
		hint, _ := q.engine.UseHint()
		fmt.Fprintf(q.out, "Hint: %s\n", hint)
	case ":n", ":next":
		nav, err := q.engine.NextProblem()
		if err != nil {
			fmt.Fprintln(q.out, err)
			return false
		}
		return q.navigated(nav)
	case ":p", ":prev":
		nav, err := q.engine.PrevProblem()
		if errors.Is(err, session.ErrIndexOutOfRange) {
			fmt.Fprintln(q.out, "Already at the first problem.")
			return false
		}
		if err != nil {
			fmt.Fprintln(q.out, err)
			return false
		}
		return q.navigated(nav)
	case ":r", ":reset":
		v, err := q.engine.ResetProblem()
		if err != nil {
			fmt.Fprintln(q.out, err)
			return false
		}
		q.show(v)
	case ":s", ":sum", ":summary":
		writeSummary(q.out, q.engine.Summary())
	default:
		fmt.Fprintf(q.out, "Unknown command %q.\n", line)
	}
	return false
}

// answer submits line and reports whether the quiz is over.
func (q *quiz) answer(line string) bool {
	cur := q.engine.Current()
	raw := line
	if cur.Kind == catalog.MultipleChoice {
		opt, ok := pickOption(cur.Options, line)
		if !ok {
			fmt.Fprintf(q.out, "Choose 1-%d.\n", len(cur.Options))
			return false
		}
		if err := q.engine.SelectOption(opt); err != nil {
			fmt.Fprintln(q.out, err)
			return false
		}
		raw = ""
	}

	v, err := q.engine.SubmitAnswer(raw)
	if err != nil {
		fmt.Fprintln(q.out, err)
		return false
	}

	if !v.Correct {
		fmt.Fprintln(q.out, "✗ Not quite.")
		if v.Hint != "" {
			fmt.Fprintf(q.out, "Hint: %s\n", v.Hint)
		}
		writeLevelChange(q.out, v)
		return false
	}

	fmt.Fprintf(q.out, "✓ Correct! +%d points\n", v.PointsAwarded)
	writeLevelChange(q.out, v)

	// No animation to wait for: advance right away.
	nav, ok := q.engine.AutoAdvance(*v.AutoAdvance)
	if !ok {
		return false
	}
	return q.navigated(nav)
}

func (q *quiz) navigated(nav session.Navigation) bool {
	if nav.TopicComplete {
		fmt.Fprintln(q.out, "\nTopic complete!")
		return true
	}
	q.show(nav.View)
	return false
}

func (q *quiz) show(v session.ProblemView) {
	fmt.Fprintf(q.out, "\n[%d/%d] %s (level %d)\n", v.Index+1, v.Count, v.Title, v.Level)
	fmt.Fprintln(q.out, v.Question)
	for i, opt := range v.Options {
		fmt.Fprintf(q.out, "  %d) %s\n", i+1, opt)
	}
}

// pickOption resolves a typed option number. Option text is not accepted
// since many options are themselves numbers.
func pickOption(options []string, line string) (string, bool) {
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > len(options) {
		return "", false
	}
	return options[n-1], true
}

func writeLevelChange(out io.Writer, v session.Verdict) {
	switch {
	case v.LevelChange > 0:
		fmt.Fprintf(out, "Level up! Now level %d.\n", v.Level)
	case v.LevelChange < 0:
		fmt.Fprintf(out, "Level down to %d.\n", v.Level)
	}
}

func writeSummary(out io.Writer, s session.Summary) {
	fmt.Fprintf(out, "\n── Summary: %d/%d correct (%.0f%%) ──\n", s.Correct, s.Attempts, s.Accuracy*100)
	fmt.Fprintf(out, "Level %d   Score %d   Streak %d   Goal %.0f%%\n",
		s.UserLevel, s.Score, s.Streak, s.ProgressPercent)
}

func writeHistory(out io.Writer, attempts []session.Attempt) {
	for _, a := range attempts {
		mark := "✗"
		if a.Correct {
			mark = "✓"
		}
		fmt.Fprintf(out, "%s  %-14s level %d  %s\n", a.At.Format("2006-01-02 15:04:05"), a.Topic, a.Level, mark)
	}
}

package practice

import (
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/algebra/internal/catalog"
	"github.com/abhisek/algebra/internal/router"
	"github.com/abhisek/algebra/internal/screen"
	"github.com/abhisek/algebra/internal/screens/summary"
	"github.com/abhisek/algebra/internal/session"
	"github.com/abhisek/algebra/internal/ui/components"
	"github.com/abhisek/algebra/internal/ui/layout"
)

// PracticeScreen shows one problem of a topic with its plot and takes
// answers.
type PracticeScreen struct {
	engine  *session.Engine
	topicID string

	topic   session.TopicView
	problem session.ProblemView
	choices components.MultiChoice
	input   components.AnswerInput

	verdict  *session.Verdict
	hint     string
	notice   string
	complete bool
	errMsg   string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a PracticeScreen for topicID. The topic is loaded in Init.
func New(engine *session.Engine, topicID string) *PracticeScreen {
	return &PracticeScreen{
		engine:  engine,
		topicID: topicID,
		input:   components.NewAnswerInput("Type your answer...", 40),
	}
}

func (s *PracticeScreen) Init() tea.Cmd {
	tv, err := s.engine.LoadTopic(s.topicID)
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.topic = tv
	if tv.FellBack {
		s.notice = "Topic " + tv.Requested + " not found, showing " + tv.Name
	}
	return s.show(tv.Problem)
}

func (s *PracticeScreen) Title() string {
	if s.topic.Name == "" {
		return "Practice"
	}
	return s.topic.Name
}

func (s *PracticeScreen) multipleChoice() bool {
	return s.problem.Kind == catalog.MultipleChoice
}

// awaitingAdvance is true while a correct answer waits for auto-advance.
func (s *PracticeScreen) awaitingAdvance() bool {
	return s.verdict != nil && s.verdict.Correct
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	if s.multipleChoice() {
		return []layout.KeyHint{
			{Key: "1-4", Description: "Choose"},
			{Key: "Enter", Description: "Submit"},
			{Key: "H", Description: "Hint"},
			{Key: "N/P", Description: "Next/Prev"},
			{Key: "R", Description: "Reset"},
			{Key: "S", Description: "Summary"},
			{Key: "Esc", Description: "Topics"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "?", Description: "Hint"},
		{Key: "^N/^P", Description: "Next/Prev"},
		{Key: "^R", Description: "Reset"},
		{Key: "^S", Description: "Summary"},
		{Key: "Esc", Description: "Topics"},
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case autoAdvanceMsg:
		nav, ok := s.engine.AutoAdvance(msg.Token)
		if !ok {
			return s, nil
		}
		return s, s.navigated(nav)

	case shakeDoneMsg:
		if s.engine.ShakeExpired(msg.Token) {
			s.choices.Shaking = false
			s.input.Shaking = false
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if !s.multipleChoice() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch key {
	case "enter":
		return s, s.submit()
	case "?", "ctrl+t":
		s.useHint()
		return s, nil
	case "ctrl+n":
		return s, s.next()
	case "ctrl+p":
		return s, s.prev()
	case "ctrl+r":
		return s, s.reset()
	case "ctrl+s":
		return s, s.openSummary()
	}

	if s.multipleChoice() {
		switch key {
		case "h":
			s.useHint()
			return s, nil
		case "n":
			return s, s.next()
		case "p":
			return s, s.prev()
		case "r":
			return s, s.reset()
		case "s":
			return s, s.openSummary()
		}
		if s.awaitingAdvance() {
			return s, nil
		}
		before := s.choices.Chosen
		s.choices = s.choices.Update(msg)
		if s.choices.Chosen != before {
			s.selectChoice()
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// show displays a freshly loaded problem.
func (s *PracticeScreen) show(v session.ProblemView) tea.Cmd {
	s.problem = v
	s.verdict = nil
	s.hint = ""
	s.choices = components.NewMultiChoice(v.Options)
	s.input.Clear()
	if s.multipleChoice() {
		return nil
	}
	return s.input.Init()
}

func (s *PracticeScreen) selectChoice() {
	opt, ok := s.choices.Choice()
	if !ok {
		return
	}
	if err := s.engine.SelectOption(opt); err != nil {
		s.notice = err.Error()
		return
	}
	s.verdict = nil
	s.notice = ""
}

func (s *PracticeScreen) submit() tea.Cmd {
	if s.awaitingAdvance() {
		return nil
	}

	raw := ""
	if s.multipleChoice() {
		if s.choices.Chosen < 0 {
			s.choices.ChooseCursor()
			s.selectChoice()
		}
	} else {
		raw = s.input.Value()
	}

	v, err := s.engine.SubmitAnswer(raw)
	if errors.Is(err, session.ErrEmptyAnswer) {
		s.notice = "Enter an answer first"
		return nil
	}
	if err != nil {
		s.notice = err.Error()
		return nil
	}

	s.verdict = &v
	s.notice = ""
	if s.multipleChoice() {
		s.choices.Judge(v.Correct)
	} else {
		s.input.Judge(v.Correct)
	}

	switch {
	case v.AutoAdvance != nil:
		return scheduleAdvance(*v.AutoAdvance)
	case v.Shake != nil:
		return scheduleShakeDone(*v.Shake)
	}
	return nil
}

func (s *PracticeScreen) useHint() {
	hint, err := s.engine.UseHint()
	if err != nil {
		s.notice = err.Error()
		return
	}
	s.hint = hint
}

// navigated applies the result of a move to another problem.
func (s *PracticeScreen) navigated(nav session.Navigation) tea.Cmd {
	s.notice = ""
	if nav.TopicComplete {
		s.complete = true
		return func() tea.Msg {
			return router.PushScreenMsg{
				Screen: summary.TopicComplete(s.engine.Summary(), s.engine.ListTopics(), s.topic.Name),
			}
		}
	}
	return s.show(nav.View)
}

func (s *PracticeScreen) next() tea.Cmd {
	nav, err := s.engine.NextProblem()
	if err != nil {
		s.notice = err.Error()
		return nil
	}
	return s.navigated(nav)
}

func (s *PracticeScreen) prev() tea.Cmd {
	nav, err := s.engine.PrevProblem()
	if errors.Is(err, session.ErrIndexOutOfRange) {
		s.notice = "Already at the first problem"
		return nil
	}
	if err != nil {
		s.notice = err.Error()
		return nil
	}
	return s.navigated(nav)
}

func (s *PracticeScreen) reset() tea.Cmd {
	v, err := s.engine.ResetProblem()
	if err != nil {
		s.notice = err.Error()
		return nil
	}
	s.notice = ""
	return s.show(v)
}

func (s *PracticeScreen) openSummary() tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: summary.New(s.engine.Summary(), s.engine.ListTopics())}
	}
}

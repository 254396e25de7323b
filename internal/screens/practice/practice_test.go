package practice

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/algebra/internal/catalog"
	"github.com/abhisek/algebra/internal/router"
	"github.com/abhisek/algebra/internal/screens/summary"
	"github.com/abhisek/algebra/internal/session"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func testEngine() *session.Engine {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return session.New(catalog.Default(),
		session.WithSessionID("test-session"),
		session.WithClock(func() time.Time { return now }),
	)
}

func testScreen(t *testing.T, topic string) (*PracticeScreen, *session.Engine) {
	t.Helper()
	e := testEngine()
	s := New(e, topic)
	s.Init()
	if s.errMsg != "" {
		t.Fatalf("init failed: %s", s.errMsg)
	}
	return s, e
}

func press(s *PracticeScreen, msg tea.Msg) tea.Cmd {
	_, cmd := s.Update(msg)
	return cmd
}

func TestPracticeScreen_InitLoadsTopic(t *testing.T) {
	s, e := testScreen(t, "systems")
	if s.Title() != "Systems of Equations" {
		t.Errorf("Title = %q, want %q", s.Title(), "Systems of Equations")
	}
	if e.State().TopicID != "systems" {
		t.Errorf("active topic = %q, want systems", e.State().TopicID)
	}
	if s.notice != "" {
		t.Errorf("unexpected notice %q", s.notice)
	}
}

func TestPracticeScreen_UnknownTopicFallsBack(t *testing.T) {
	s, _ := testScreen(t, "trigonometry")
	if s.Title() != "Quadratic Functions" {
		t.Errorf("Title = %q, want fallback topic", s.Title())
	}
	if !strings.Contains(s.notice, "trigonometry") {
		t.Errorf("notice = %q, want mention of requested topic", s.notice)
	}
}

func TestPracticeScreen_MultipleChoiceCorrect(t *testing.T) {
	s, e := testScreen(t, "quadratic")

	press(s, keyPress('1'))
	if got := e.State().SelectedOption; got != "(1, -1)" {
		t.Fatalf("selected = %q, want (1, -1)", got)
	}

	cmd := press(s, specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Error("expected auto-advance to be scheduled")
	}
	if s.verdict == nil || !s.verdict.Correct {
		t.Fatal("expected a correct verdict")
	}
	if e.State().Score != session.BasePoints {
		t.Errorf("score = %d, want %d", e.State().Score, session.BasePoints)
	}
}

func TestPracticeScreen_AutoAdvance(t *testing.T) {
	s, e := testScreen(t, "quadratic")
	press(s, keyPress('1'))
	press(s, specialKey(tea.KeyEnter))
	tok := *s.verdict.AutoAdvance

	press(s, autoAdvanceMsg{Token: tok})

	if e.State().ProblemIndex != 1 {
		t.Errorf("index = %d, want 1", e.State().ProblemIndex)
	}
	if s.problem.Index != 1 || s.verdict != nil {
		t.Error("expected the next problem to be shown with no verdict")
	}
}

func TestPracticeScreen_StaleAutoAdvanceIgnored(t *testing.T) {
	s, e := testScreen(t, "quadratic")
	press(s, keyPress('1'))
	press(s, specialKey(tea.KeyEnter))
	tok := *s.verdict.AutoAdvance

	// Manual navigation before the timer fires.
	press(s, keyPress('n'))
	press(s, autoAdvanceMsg{Token: tok})

	if e.State().ProblemIndex != 1 {
		t.Errorf("index = %d, want 1 (stale token must not advance again)", e.State().ProblemIndex)
	}
}

func TestPracticeScreen_NoDoubleAward(t *testing.T) {
	s, e := testScreen(t, "quadratic")
	press(s, keyPress('1'))
	press(s, specialKey(tea.KeyEnter))
	press(s, specialKey(tea.KeyEnter))

	if e.State().Score != session.BasePoints {
		t.Errorf("score = %d, want %d", e.State().Score, session.BasePoints)
	}
	if len(e.History()) != 1 {
		t.Errorf("history = %d, want 1", len(e.History()))
	}
}

func TestPracticeScreen_IncorrectShake(t *testing.T) {
	s, e := testScreen(t, "quadratic")
	press(s, keyPress('2'))
	cmd := press(s, specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Error("expected shake timer to be scheduled")
	}
	if s.verdict == nil || s.verdict.Correct {
		t.Fatal("expected an incorrect verdict")
	}
	if !s.choices.Shaking {
		t.Error("expected options to shake")
	}
	if e.State().Streak != 0 {
		t.Errorf("streak = %d, want 0", e.State().Streak)
	}

	press(s, shakeDoneMsg{Token: *s.verdict.Shake})
	if s.choices.Shaking {
		t.Error("expected shake to clear")
	}
}

func TestPracticeScreen_HintReducesPoints(t *testing.T) {
	s, e := testScreen(t, "quadratic")
	press(s, keyPress('h'))
	if s.hint == "" {
		t.Error("expected hint text")
	}
	if e.State().HintsUsed != 1 {
		t.Errorf("hints used = %d, want 1", e.State().HintsUsed)
	}

	press(s, keyPress('1'))
	press(s, specialKey(tea.KeyEnter))
	if s.verdict.PointsAwarded != session.Points(1) {
		t.Errorf("points = %d, want %d", s.verdict.PointsAwarded, session.Points(1))
	}
}

func TestPracticeScreen_PrevAtFirstProblem(t *testing.T) {
	s, e := testScreen(t, "quadratic")
	press(s, keyPress('p'))
	if s.notice != "Already at the first problem" {
		t.Errorf("notice = %q", s.notice)
	}
	if e.State().ProblemIndex != 0 {
		t.Errorf("index = %d, want 0", e.State().ProblemIndex)
	}
}

func TestPracticeScreen_ResetClearsSelection(t *testing.T) {
	s, e := testScreen(t, "quadratic")
	press(s, keyPress('3'))
	press(s, keyPress('r'))
	if e.State().SelectedOption != "" {
		t.Errorf("selected = %q, want empty", e.State().SelectedOption)
	}
	if s.choices.Chosen != -1 {
		t.Errorf("chosen = %d, want -1", s.choices.Chosen)
	}
}

func TestPracticeScreen_TopicComplete(t *testing.T) {
	s, _ := testScreen(t, "systems")
	cmd := press(s, keyPress('n'))
	if cmd == nil {
		t.Fatal("expected a command on topic completion")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected a PushScreenMsg")
	}
	if _, ok := msg.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("pushed %T, want summary screen", msg.Screen)
	}
	if !s.complete {
		t.Error("expected topic to be marked complete")
	}
}

func TestPracticeScreen_FreeResponse(t *testing.T) {
	s, e := testScreen(t, "applications")
	if s.multipleChoice() {
		t.Fatal("expected a free response problem first")
	}

	press(s, specialKey(tea.KeyEnter))
	if s.notice != "Enter an answer first" {
		t.Errorf("notice = %q", s.notice)
	}

	s.input.Model.SetValue(" 11 ")
	press(s, specialKey(tea.KeyEnter))
	if s.verdict == nil || !s.verdict.Correct {
		t.Fatal("expected 11 to be accepted")
	}
	if e.State().Score != session.BasePoints {
		t.Errorf("score = %d, want %d", e.State().Score, session.BasePoints)
	}
}

func TestPracticeScreen_FreeResponseLettersGoToInput(t *testing.T) {
	s, e := testScreen(t, "applications")
	press(s, keyPress('n'))
	if e.State().ProblemIndex != 0 {
		t.Error("plain n must not navigate while typing")
	}
	press(s, ctrlKey('n'))
	if e.State().ProblemIndex != 1 {
		t.Errorf("index = %d, want 1 after ctrl+n", e.State().ProblemIndex)
	}
}

func TestPracticeScreen_View(t *testing.T) {
	s, _ := testScreen(t, "quadratic")
	view := s.View(120, 40)
	for _, want := range []string{"Problem 1/4", "(1, -1)", "Vertex (1.0, -1.0)"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestPracticeScreen_KeyHints(t *testing.T) {
	s, _ := testScreen(t, "quadratic")
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints for multiple choice")
	}
	f, _ := testScreen(t, "applications")
	if len(f.KeyHints()) == 0 {
		t.Error("expected key hints for free response")
	}
}

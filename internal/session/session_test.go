package session

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/algebra/internal/catalog"
	"github.com/abhisek/algebra/internal/plot"
)

var testNow = time.Date(2025, 3, 14, 9, 26, 0, 0, time.UTC)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.Topic{
		{
			ID: "quadratic", Name: "Quadratics", Order: 1,
			Problems: []catalog.Problem{
				{
					ID: "q-vertex", Title: "Vertex", Question: "Vertex of y = x²?",
					Kind: catalog.MultipleChoice, Options: []string{"(0, 0)", "(1, 1)", "(0, 1)"},
					AnswerKey: "(0, 0)", Hint: "b = 0", Level: 1,
					Plot: plot.Quadratic{A: 1},
				},
				{
					ID: "q-roots", Title: "Roots", Question: "Solve x² - 5x + 6 = 0",
					Kind: catalog.FreeResponse, AnswerKey: "x = 2, 3", Hint: "Factor", Level: 2,
					Plot: plot.Quadratic{A: 1, B: -5, C: 6},
				},
				{
					ID: "q-max", Title: "Maximum", Question: "Max of 4 - x²?",
					Kind: catalog.FreeResponse, AnswerKey: "4", Hint: "Vertex", Level: 1,
					Plot: plot.Quadratic{A: -1, C: 4},
				},
			},
		},
		{
			ID: "systems", Name: "Systems", Order: 2,
			Problems: []catalog.Problem{
				{
					ID: "s-solve", Title: "Solve", Question: "y = 2x + 1, y = -x + 4",
					Kind: catalog.FreeResponse, AnswerKey: "(1, 3)", Hint: "Set equal", Level: 2,
					Plot: plot.LinearSystem{Lines: []plot.Line{{Slope: 2, Intercept: 1}, {Slope: -1, Intercept: 4}}},
				},
			},
		},
	})
	require.NoError(t, err)
	return c
}

func testEngine(t *testing.T) *Engine {
	t.Helper()
	return New(testCatalog(t),
		WithClock(func() time.Time { return testNow }),
		WithSessionID("test-session-id"),
	)
}

func TestNew_InitialState(t *testing.T) {
	e := testEngine(t)
	s := e.State()

	if s.ID != "test-session-id" {
		t.Errorf("ID = %q, want test-session-id", s.ID)
	}
	if s.UserLevel != 1 || s.Score != 0 || s.Streak != 0 {
		t.Errorf("level/score/streak = %d/%d/%d, want 1/0/0", s.UserLevel, s.Score, s.Streak)
	}
	if s.TopicID != catalog.DefaultTopicID || s.ProblemIndex != 0 {
		t.Errorf("topic/index = %s/%d, want quadratic/0", s.TopicID, s.ProblemIndex)
	}
	if s.Generation != 1 {
		t.Errorf("Generation = %d, want 1", s.Generation)
	}
}

func TestNew_GeneratesSessionID(t *testing.T) {
	a := New(testCatalog(t))
	b := New(testCatalog(t))
	assert.NotEmpty(t, a.State().ID)
	assert.NotEqual(t, a.State().ID, b.State().ID)
}

func TestNew_UnknownDefaultTopic(t *testing.T) {
	e := New(testCatalog(t), WithDefaultTopic("trigonometry"))
	assert.Equal(t, catalog.DefaultTopicID, e.State().TopicID)
}

func TestLoadTopic_Known(t *testing.T) {
	e := testEngine(t)

	tv, err := e.LoadTopic("systems")
	require.NoError(t, err)
	assert.False(t, tv.FellBack)
	assert.Equal(t, "systems", tv.ID)
	assert.Equal(t, "Systems", tv.Name)
	assert.Equal(t, "s-solve", tv.Problem.ProblemID)
	assert.Equal(t, 1, tv.Problem.Count)

	f, ok := tv.Problem.Plot.Feature(plot.FeatureIntersection)
	require.True(t, ok)
	assert.InDelta(t, 1, f.X, 1e-9)
	assert.InDelta(t, 3, f.Y, 1e-9)
}

func TestLoadTopic_UnknownFallsBack(t *testing.T) {
	e := testEngine(t)
	_, err := e.LoadTopic("systems")
	require.NoError(t, err)

	tv, err := e.LoadTopic("trigonometry")
	require.NoError(t, err)
	assert.True(t, tv.FellBack)
	assert.Equal(t, "trigonometry", tv.Requested)
	assert.Equal(t, catalog.DefaultTopicID, tv.ID)
	assert.Equal(t, 0, e.State().ProblemIndex)
}

func TestLoadProblem_OutOfRange(t *testing.T) {
	e := testEngine(t)
	_, err := e.UseHint()
	require.NoError(t, err)
	before := e.State()

	for _, i := range []int{-1, 3, 100} {
		_, err := e.LoadProblem(i)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("LoadProblem(%d) error = %v, want ErrIndexOutOfRange", i, err)
		}
	}
	assert.Equal(t, before, e.State())
}

func TestLoadProblem_ResetsHintsAndSelection(t *testing.T) {
	e := testEngine(t)
	require.NoError(t, e.SelectOption("(1, 1)"))
	_, _ = e.UseHint()
	_, _ = e.UseHint()

	v, err := e.LoadProblem(1)
	require.NoError(t, err)

	s := e.State()
	assert.Equal(t, 0, s.HintsUsed)
	assert.Empty(t, s.SelectedOption)
	assert.Equal(t, 1, s.ProblemIndex)
	assert.Equal(t, uint64(2), s.Generation)
	assert.Equal(t, "q-roots", v.ProblemID)
	assert.Equal(t, catalog.FreeResponse, v.Kind)
	assert.NotEmpty(t, v.Plot.Curves)
}

func TestResetProblem_RoundTrip(t *testing.T) {
	e := New(catalog.Default(), WithSessionID("rt"))

	tv, err := e.LoadTopic("quadratic")
	require.NoError(t, err)
	first, err := e.LoadProblem(0)
	require.NoError(t, err)
	assert.Equal(t, tv.Problem, first)

	require.NoError(t, e.SelectOption(first.Options[1]))
	_, _ = e.UseHint()

	again, err := e.ResetProblem()
	require.NoError(t, err)
	assert.Equal(t, first, again)

	s := e.State()
	assert.Equal(t, 0, s.HintsUsed)
	assert.Empty(t, s.SelectedOption)
}

func TestResetProblem_KeepsScore(t *testing.T) {
	e := testEngine(t)
	require.NoError(t, e.SelectOption("(0, 0)"))
	_, err := e.SubmitAnswer("")
	require.NoError(t, err)

	_, err = e.ResetProblem()
	require.NoError(t, err)

	s := e.State()
	assert.Equal(t, 10, s.Score)
	assert.Equal(t, 1, s.Streak)
	assert.Len(t, s.History, 1)
}

func TestSelectOption(t *testing.T) {
	e := testEngine(t)

	err := e.SelectOption("(9, 9)")
	assert.True(t, errors.Is(err, ErrUnknownOption))
	assert.Empty(t, e.State().SelectedOption)

	require.NoError(t, e.SelectOption("(1, 1)"))
	assert.Equal(t, "(1, 1)", e.State().SelectedOption)
	assert.Empty(t, e.State().History, "selecting must not evaluate")

	_, err = e.LoadProblem(1)
	require.NoError(t, err)
	assert.ErrorIs(t, e.SelectOption("x = 2, 3"), ErrNotMultipleChoice)
}

func TestSubmitAnswer_Empty(t *testing.T) {
	e := testEngine(t)

	// Multiple choice with nothing selected ignores raw input.
	_, err := e.SubmitAnswer("(0, 0)")
	assert.ErrorIs(t, err, ErrEmptyAnswer)

	_, err = e.LoadProblem(1)
	require.NoError(t, err)
	_, err = e.SubmitAnswer("   \t ")
	assert.ErrorIs(t, err, ErrEmptyAnswer)

	s := e.State()
	assert.Empty(t, s.History)
	assert.Equal(t, 0, s.Score)
	assert.Empty(t, s.Mastery)
}

func TestSubmitAnswer_Correct(t *testing.T) {
	e := testEngine(t)
	require.NoError(t, e.SelectOption("(0, 0)"))

	v, err := e.SubmitAnswer("")
	require.NoError(t, err)

	assert.True(t, v.Correct)
	assert.Equal(t, 10, v.PointsAwarded)
	assert.Equal(t, "(0, 0)", v.Answer)
	assert.Empty(t, v.Hint)
	assert.Nil(t, v.Shake)
	require.NotNil(t, v.AutoAdvance)
	assert.Equal(t, DefaultAutoAdvanceDelay, v.AutoAdvance.Delay)

	s := e.State()
	assert.Equal(t, 10, s.Score)
	assert.Equal(t, 1, s.Streak)
	assert.Equal(t, []Attempt{{Topic: "quadratic", Level: 1, Correct: true, At: testNow}}, s.History)
	assert.Equal(t, TopicMastery{Correct: 1, Total: 1}, *s.Mastery["quadratic"])
}

func TestSubmitAnswer_Incorrect(t *testing.T) {
	e := testEngine(t)
	require.NoError(t, e.SelectOption("(0, 0)"))
	_, err := e.SubmitAnswer("")
	require.NoError(t, err)

	_, err = e.LoadProblem(1)
	require.NoError(t, err)
	v, err := e.SubmitAnswer("x = 1, 6")
	require.NoError(t, err)

	assert.False(t, v.Correct)
	assert.Equal(t, 0, v.PointsAwarded)
	assert.Equal(t, "Factor", v.Hint)
	assert.Nil(t, v.AutoAdvance)
	require.NotNil(t, v.Shake)
	assert.Equal(t, DefaultShakeDelay, v.Shake.Delay)

	s := e.State()
	assert.Equal(t, 10, s.Score)
	assert.Equal(t, 0, s.Streak)
	assert.Len(t, s.History, 2)
	assert.Equal(t, 2, s.History[1].Level)
	assert.False(t, s.History[1].Correct)
	assert.Equal(t, TopicMastery{Correct: 1, Total: 2}, *s.Mastery["quadratic"])
}

func TestSubmitAnswer_FreeResponseNormalized(t *testing.T) {
	e := testEngine(t)
	_, err := e.LoadProblem(1)
	require.NoError(t, err)

	v, err := e.SubmitAnswer("  X=2,3 ")
	require.NoError(t, err)
	assert.True(t, v.Correct)
	assert.Equal(t, "X=2,3", v.Answer)
}

func TestSubmitAnswer_HintScoring(t *testing.T) {
	tests := []struct {
		hints int
		want  int
	}{
		{0, 10},
		{1, 8},
		{2, 6},
		{3, 5},
		{10, 5},
	}
	for _, tt := range tests {
		e := testEngine(t)
		for range tt.hints {
			hint, err := e.UseHint()
			require.NoError(t, err)
			assert.Equal(t, "b = 0", hint)
		}
		require.NoError(t, e.SelectOption("(0, 0)"))
		v, err := e.SubmitAnswer("")
		require.NoError(t, err)
		if v.PointsAwarded != tt.want {
			t.Errorf("hints=%d: points = %d, want %d", tt.hints, v.PointsAwarded, tt.want)
		}
	}
}

func TestSubmitAnswer_LevelUp(t *testing.T) {
	e := testEngine(t)
	e.state.UserLevel = 2
	e.state.Mastery["quadratic"] = &TopicMastery{Correct: 4, Total: 5}

	require.NoError(t, e.SelectOption("(0, 0)"))
	v, err := e.SubmitAnswer("")
	require.NoError(t, err)

	assert.Equal(t, 1, v.LevelChange)
	assert.Equal(t, 3, v.Level)
	assert.Equal(t, 3, e.State().UserLevel)
}

func TestSubmitAnswer_LevelDown(t *testing.T) {
	e := testEngine(t)
	e.state.UserLevel = 3
	e.state.Mastery["quadratic"] = &TopicMastery{Correct: 0, Total: 1}

	require.NoError(t, e.SelectOption("(1, 1)"))
	v, err := e.SubmitAnswer("")
	require.NoError(t, err)

	assert.Equal(t, -1, v.LevelChange)
	assert.Equal(t, 2, e.State().UserLevel)
}

func TestSubmitAnswer_LevelUsesCurrentTopicOnly(t *testing.T) {
	e := testEngine(t)
	e.state.UserLevel = 3
	e.state.Mastery["quadratic"] = &TopicMastery{Correct: 0, Total: 10}

	_, err := e.LoadTopic("systems")
	require.NoError(t, err)
	v, err := e.SubmitAnswer("(1,3)")
	require.NoError(t, err)

	assert.True(t, v.Correct)
	assert.Equal(t, 4, e.State().UserLevel)
}

func TestSubmitAnswer_LevelStaysInBounds(t *testing.T) {
	e := testEngine(t)
	for range 20 {
		require.NoError(t, e.SelectOption("(0, 0)"))
		_, err := e.SubmitAnswer("")
		require.NoError(t, err)
		lvl := e.State().UserLevel
		if lvl < MinLevel || lvl > MaxLevel {
			t.Fatalf("UserLevel = %d out of bounds", lvl)
		}
	}
	assert.Equal(t, MaxLevel, e.State().UserLevel)

	for range 40 {
		require.NoError(t, e.SelectOption("(1, 1)"))
		_, err := e.SubmitAnswer("")
		require.NoError(t, err)
		lvl := e.State().UserLevel
		if lvl < MinLevel || lvl > MaxLevel {
			t.Fatalf("UserLevel = %d out of bounds", lvl)
		}
	}
	assert.Equal(t, MinLevel, e.State().UserLevel)
}

func TestNavigation(t *testing.T) {
	e := testEngine(t)

	_, err := e.PrevProblem()
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, 0, e.State().ProblemIndex)

	nav, err := e.NextProblem()
	require.NoError(t, err)
	assert.False(t, nav.TopicComplete)
	assert.Equal(t, 1, nav.View.Index)

	nav, err = e.NextProblem()
	require.NoError(t, err)
	assert.Equal(t, 2, nav.View.Index)

	gen := e.State().Generation
	nav, err = e.NextProblem()
	require.NoError(t, err)
	assert.True(t, nav.TopicComplete)
	assert.Equal(t, 2, nav.View.Index)
	assert.Equal(t, 2, e.State().ProblemIndex)
	assert.Equal(t, gen, e.State().Generation)

	nav, err = e.PrevProblem()
	require.NoError(t, err)
	assert.Equal(t, 1, nav.View.Index)
}

func TestSummary(t *testing.T) {
	e := testEngine(t)
	require.NoError(t, e.SelectOption("(0, 0)"))
	_, err := e.SubmitAnswer("")
	require.NoError(t, err)
	require.NoError(t, e.SelectOption("(1, 1)"))
	_, err = e.SubmitAnswer("")
	require.NoError(t, err)

	s := e.Summary()
	assert.Equal(t, "test-session-id", s.SessionID)
	assert.Equal(t, 10, s.Score)
	assert.Equal(t, 0, s.Streak)
	assert.Equal(t, 2, s.UserLevel)
	assert.InDelta(t, 1.0, s.ProgressPercent, 1e-9)
	assert.Equal(t, 2, s.Attempts)
	assert.Equal(t, 1, s.Correct)
	assert.InDelta(t, 0.5, s.Accuracy, 1e-9)
	assert.Equal(t, map[string]TopicMastery{"quadratic": {Correct: 1, Total: 2}}, s.TopicMastery)
	assert.Len(t, e.History(), 2)
}

func TestState_IsCopy(t *testing.T) {
	e := testEngine(t)
	require.NoError(t, e.SelectOption("(0, 0)"))
	_, err := e.SubmitAnswer("")
	require.NoError(t, err)

	s := e.State()
	s.Mastery["quadratic"].Correct = 99
	s.History[0].Correct = false

	assert.Equal(t, 1, e.State().Mastery["quadratic"].Correct)
	assert.True(t, e.State().History[0].Correct)
}

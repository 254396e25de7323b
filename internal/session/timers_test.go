package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitCorrect(t *testing.T, e *Engine) Verdict {
	t.Helper()
	require.NoError(t, e.SelectOption("(0, 0)"))
	v, err := e.SubmitAnswer("")
	require.NoError(t, err)
	require.True(t, v.Correct)
	return v
}

func TestAutoAdvance_Live(t *testing.T) {
	e := testEngine(t)
	v := submitCorrect(t, e)

	nav, ok := e.AutoAdvance(*v.AutoAdvance)
	assert.True(t, ok)
	assert.Equal(t, 1, nav.View.Index)
	assert.Equal(t, 1, e.State().ProblemIndex)
}

func TestAutoAdvance_StaleAfterNavigation(t *testing.T) {
	e := testEngine(t)
	v := submitCorrect(t, e)

	_, err := e.NextProblem()
	require.NoError(t, err)
	_, err = e.PrevProblem()
	require.NoError(t, err)

	_, ok := e.AutoAdvance(*v.AutoAdvance)
	assert.False(t, ok, "token from an earlier load must not advance")
	assert.Equal(t, 0, e.State().ProblemIndex)
}

func TestAutoAdvance_StaleAfterTopicChange(t *testing.T) {
	e := testEngine(t)
	v := submitCorrect(t, e)

	_, err := e.LoadTopic("systems")
	require.NoError(t, err)

	_, ok := e.AutoAdvance(*v.AutoAdvance)
	assert.False(t, ok)
	assert.Equal(t, "systems", e.State().TopicID)
}

func TestAutoAdvance_FiresOnce(t *testing.T) {
	e := testEngine(t)
	v := submitCorrect(t, e)

	_, ok := e.AutoAdvance(*v.AutoAdvance)
	require.True(t, ok)
	_, ok = e.AutoAdvance(*v.AutoAdvance)
	assert.False(t, ok)
	assert.Equal(t, 1, e.State().ProblemIndex)
}

func TestAutoAdvance_SupersededBySubmission(t *testing.T) {
	e := testEngine(t)
	first := submitCorrect(t, e)
	second := submitCorrect(t, e)

	_, ok := e.AutoAdvance(*first.AutoAdvance)
	assert.False(t, ok)
	_, ok = e.AutoAdvance(*second.AutoAdvance)
	assert.True(t, ok)
	assert.Equal(t, 1, e.State().ProblemIndex)
}

func TestAutoAdvance_LastProblemCompletesTopic(t *testing.T) {
	e := testEngine(t)
	_, err := e.LoadProblem(2)
	require.NoError(t, err)

	v, err := e.SubmitAnswer("4")
	require.NoError(t, err)
	nav, ok := e.AutoAdvance(*v.AutoAdvance)
	assert.True(t, ok)
	assert.True(t, nav.TopicComplete)
	assert.Equal(t, 2, e.State().ProblemIndex)
}

func TestShakeExpired(t *testing.T) {
	e := testEngine(t)
	require.NoError(t, e.SelectOption("(1, 1)"))
	v, err := e.SubmitAnswer("")
	require.NoError(t, err)
	require.NotNil(t, v.Shake)

	assert.True(t, e.ShakeExpired(*v.Shake))

	// A newer submission owns the shake.
	w, err := e.SubmitAnswer("")
	require.NoError(t, err)
	assert.False(t, e.ShakeExpired(*v.Shake))
	assert.True(t, e.ShakeExpired(*w.Shake))

	_, err = e.ResetProblem()
	require.NoError(t, err)
	assert.False(t, e.ShakeExpired(*w.Shake))
}

func TestWithDelays(t *testing.T) {
	e := New(testCatalog(t), WithDelays(5*time.Second, time.Second))
	v := submitCorrect(t, e)
	assert.Equal(t, 5*time.Second, v.AutoAdvance.Delay)

	require.NoError(t, e.SelectOption("(1, 1)"))
	w, err := e.SubmitAnswer("")
	require.NoError(t, err)
	assert.Equal(t, time.Second, w.Shake.Delay)
}

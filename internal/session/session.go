package session

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/algebra/internal/catalog"
	"github.com/abhisek/algebra/internal/plot"
)

var (
	// ErrIndexOutOfRange is returned when a load or navigation would leave
	// the active topic. The state is unchanged.
	ErrIndexOutOfRange = errors.New("problem index out of range")

	// ErrEmptyAnswer is returned when there is nothing to submit.
	ErrEmptyAnswer = errors.New("empty answer")

	// ErrNotMultipleChoice is returned by SelectOption on a free response problem.
	ErrNotMultipleChoice = errors.New("problem is not multiple choice")

	// ErrUnknownOption is returned by SelectOption for text that is not one
	// of the problem's options.
	ErrUnknownOption = errors.New("unknown option")
)

// ProblemView is what the host displays for a loaded problem.
type ProblemView struct {
	TopicID     string
	Index       int
	Count       int // problems in the topic
	ProblemID   string
	Title       string
	Description string
	Question    string
	Kind        catalog.Kind
	Options     []string
	Level       int
	Plot        plot.Result
}

// TopicView is returned by LoadTopic.
type TopicView struct {
	ID        string
	Name      string
	Requested string // the ID asked for
	FellBack  bool   // Requested was unknown and ID is the default topic
	Problem   ProblemView
}

// Verdict is the result of a submission.
type Verdict struct {
	Correct       bool
	PointsAwarded int

	// Answer is the effective answer that was judged.
	Answer string

	// Hint is the problem's hint, set on incorrect answers.
	Hint string

	// LevelChange is +1, -1 or 0.
	LevelChange int
	Level       int

	// AutoAdvance is set on correct answers, Shake on incorrect ones.
	AutoAdvance *Token
	Shake       *Token
}

// Navigation is the result of NextProblem and PrevProblem.
type Navigation struct {
	// TopicComplete is set when NextProblem is called on the last problem.
	// The index is unchanged and View is the current problem.
	TopicComplete bool
	View          ProblemView
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the time source used for history timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithLogger sets the engine logger. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithDefaultTopic sets the topic loaded at start and used as the fallback
// for unknown topics. Ignored if the catalog does not contain it.
func WithDefaultTopic(id string) Option {
	return func(e *Engine) { e.defaultTopic = id }
}

// WithSessionID overrides the generated session ID.
func WithSessionID(id string) Option {
	return func(e *Engine) { e.sessionID = id }
}

// WithDelays sets the auto-advance and shake delays carried by tokens.
func WithDelays(autoAdvance, shake time.Duration) Option {
	return func(e *Engine) {
		e.autoAdvanceDelay = autoAdvance
		e.shakeDelay = shake
	}
}

// Engine is the assessment engine for one learner session. It owns the
// session State. An Engine is not safe for concurrent use; the host must
// serialize calls.
type Engine struct {
	cat   *catalog.Catalog
	state *State
	topic catalog.Topic

	now              func() time.Time
	log              *slog.Logger
	defaultTopic     string
	sessionID        string
	autoAdvanceDelay time.Duration
	shakeDelay       time.Duration

	// seq counts submissions; tokens are tied to the latest one.
	seq uint64
}

// New creates an engine over cat and loads the default topic.
func New(cat *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{
		cat:              cat,
		now:              time.Now,
		log:              slog.New(slog.NewTextHandler(io.Discard, nil)),
		defaultTopic:     catalog.DefaultTopicID,
		autoAdvanceDelay: DefaultAutoAdvanceDelay,
		shakeDelay:       DefaultShakeDelay,
	}
	for _, opt := range opts {
		opt(e)
	}
	if !cat.Has(e.defaultTopic) {
		e.log.Warn("default topic not in catalog", "topic", e.defaultTopic, "using", catalog.DefaultTopicID)
		e.defaultTopic = catalog.DefaultTopicID
	}
	if e.sessionID == "" {
		e.sessionID = uuid.New().String()
	}
	e.state = NewState(e.sessionID)
	e.log = e.log.With("session", e.sessionID)

	if _, err := e.LoadTopic(e.defaultTopic); err != nil {
		// The catalog guarantees the default topic has valid problems.
		panic(fmt.Sprintf("session: load default topic: %v", err))
	}
	return e
}

// State returns a copy of the session state.
func (e *Engine) State() State {
	return e.state.clone()
}

// Current returns the view of the loaded problem.
func (e *Engine) Current() ProblemView {
	v, err := e.view(e.state.ProblemIndex)
	if err != nil {
		e.log.Error("render current problem", "error", err)
	}
	return v
}

// ListTopics returns the catalog topics in display order.
func (e *Engine) ListTopics() []catalog.TopicInfo {
	return e.cat.ListTopics()
}

// LoadTopic makes id the active topic and loads its first problem. Unknown
// IDs fall back to the default topic.
func (e *Engine) LoadTopic(id string) (TopicView, error) {
	tv := TopicView{Requested: id}

	topic, err := e.cat.Topic(id)
	if errors.Is(err, catalog.ErrUnknownTopic) {
		e.log.Warn("unknown topic, falling back", "topic", id, "fallback", e.defaultTopic)
		tv.FellBack = true
		topic, err = e.cat.Topic(e.defaultTopic)
	}
	if err != nil {
		return TopicView{}, fmt.Errorf("load topic %q: %w", id, err)
	}

	prev := e.topic
	prevIndex := e.state.ProblemIndex
	prevTopicID := e.state.TopicID

	e.topic = topic
	e.state.TopicID = topic.ID
	pv, err := e.LoadProblem(0)
	if err != nil {
		e.topic = prev
		e.state.TopicID = prevTopicID
		e.state.ProblemIndex = prevIndex
		return TopicView{}, fmt.Errorf("load topic %q: %w", topic.ID, err)
	}

	tv.ID = topic.ID
	tv.Name = topic.Name
	tv.Problem = pv
	e.log.Info("topic loaded", "topic", topic.ID, "problems", len(topic.Problems))
	return tv, nil
}

// LoadProblem loads problem i of the active topic, resetting hints and the
// selected option. Out of range indexes are rejected with the state untouched.
func (e *Engine) LoadProblem(i int) (ProblemView, error) {
	v, err := e.view(i)
	if err != nil {
		return ProblemView{}, err
	}
	e.state.ProblemIndex = i
	e.state.HintsUsed = 0
	e.state.SelectedOption = ""
	e.state.Generation++
	e.log.Debug("problem loaded", "topic", e.state.TopicID, "index", i, "generation", e.state.Generation)
	return v, nil
}

func (e *Engine) view(i int) (ProblemView, error) {
	if i < 0 || i >= len(e.topic.Problems) {
		return ProblemView{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(e.topic.Problems))
	}
	p := e.topic.Problems[i]
	res, err := plot.Sample(p.Plot)
	if err != nil {
		return ProblemView{}, fmt.Errorf("problem %q: %w", p.ID, err)
	}
	return ProblemView{
		TopicID:     e.topic.ID,
		Index:       i,
		Count:       len(e.topic.Problems),
		ProblemID:   p.ID,
		Title:       p.Title,
		Description: p.Description,
		Question:    p.Question,
		Kind:        p.Kind,
		Options:     slices.Clone(p.Options),
		Level:       p.Level,
		Plot:        res,
	}, nil
}

func (e *Engine) problem() catalog.Problem {
	return e.topic.Problems[e.state.ProblemIndex]
}

// SelectOption records the learner's choice without judging it.
func (e *Engine) SelectOption(opt string) error {
	p := e.problem()
	if p.Kind != catalog.MultipleChoice {
		return ErrNotMultipleChoice
	}
	if !slices.Contains(p.Options, opt) {
		return fmt.Errorf("%w: %q", ErrUnknownOption, opt)
	}
	e.state.SelectedOption = opt
	return nil
}

// SubmitAnswer judges the effective answer: the selected option for
// multiple choice, otherwise the trimmed raw input.
func (e *Engine) SubmitAnswer(raw string) (Verdict, error) {
	p := e.problem()

	answer := strings.TrimSpace(raw)
	if p.Kind == catalog.MultipleChoice {
		answer = e.state.SelectedOption
	}
	if answer == "" {
		return Verdict{}, ErrEmptyAnswer
	}

	e.seq++
	correct := CompareAnswers(answer, p.AnswerKey)
	v := Verdict{Correct: correct, Answer: answer}

	if correct {
		v.PointsAwarded = Points(e.state.HintsUsed)
		e.state.Score += v.PointsAwarded
		e.state.Streak++
		v.AutoAdvance = e.issue(e.autoAdvanceDelay)
	} else {
		e.state.Streak = 0
		v.Hint = p.Hint
		v.Shake = e.issue(e.shakeDelay)
	}

	v.LevelChange = e.record(p, correct)
	v.Level = e.state.UserLevel

	e.log.Info("answer submitted",
		"topic", e.state.TopicID,
		"problem", p.ID,
		"correct", correct,
		"points", v.PointsAwarded,
		"level", e.state.UserLevel,
	)
	return v, nil
}

// record appends history, updates topic mastery and runs adaptive leveling.
// It returns the level change.
func (e *Engine) record(p catalog.Problem, correct bool) int {
	e.state.History = append(e.state.History, Attempt{
		Topic:   e.state.TopicID,
		Level:   p.Level,
		Correct: correct,
		At:      e.now(),
	})

	m := e.state.Mastery[e.state.TopicID]
	if m == nil {
		m = &TopicMastery{}
		e.state.Mastery[e.state.TopicID] = m
	}
	m.Record(correct)

	before := e.state.UserLevel
	e.state.UserLevel = AdjustLevel(before, m)
	return e.state.UserLevel - before
}

// UseHint counts a hint against the current problem and returns its text.
func (e *Engine) UseHint() (string, error) {
	e.state.HintsUsed++
	return e.problem().Hint, nil
}

// NextProblem advances one problem. On the last problem it reports
// TopicComplete without moving.
func (e *Engine) NextProblem() (Navigation, error) {
	next := e.state.ProblemIndex + 1
	if next >= len(e.topic.Problems) {
		e.log.Info("topic complete", "topic", e.state.TopicID)
		return Navigation{TopicComplete: true, View: e.Current()}, nil
	}
	v, err := e.LoadProblem(next)
	if err != nil {
		return Navigation{}, err
	}
	return Navigation{View: v}, nil
}

// PrevProblem retreats one problem. At the first problem it returns
// ErrIndexOutOfRange, which callers may ignore.
func (e *Engine) PrevProblem() (Navigation, error) {
	v, err := e.LoadProblem(e.state.ProblemIndex - 1)
	if err != nil {
		return Navigation{}, err
	}
	return Navigation{View: v}, nil
}

// ResetProblem reloads the current problem, clearing hints and selection.
// Score, streak and history are kept.
func (e *Engine) ResetProblem() (ProblemView, error) {
	return e.LoadProblem(e.state.ProblemIndex)
}

// Summary returns the session summary.
func (e *Engine) Summary() Summary {
	return BuildSummary(e.state)
}

// History returns a copy of the performance history.
func (e *Engine) History() []Attempt {
	return slices.Clone(e.state.History)
}

package session

import "time"

// Level bounds for State.UserLevel.
const (
	MinLevel = 1
	MaxLevel = 5
)

// Attempt is one entry in the performance history.
type Attempt struct {
	Topic   string
	Level   int // authored level of the problem answered
	Correct bool
	At      time.Time
}

// State is the learner's in-memory session. It is owned by a single Engine
// and discarded when the session ends.
type State struct {
	// ID is the UUID for this session.
	ID string

	// TopicID is the active topic.
	TopicID string

	// ProblemIndex is always a valid index into the active topic.
	ProblemIndex int

	// UserLevel is the adaptive difficulty level, clamped to [MinLevel, MaxLevel].
	UserLevel int

	Score  int
	Streak int

	// HintsUsed counts hints taken on the current problem. Reset on every load.
	HintsUsed int

	// SelectedOption is the chosen multiple choice option, "" when none.
	SelectedOption string

	// History is append-only.
	History []Attempt

	// Mastery tracks per-topic correctness, keyed by topic ID.
	Mastery map[string]*TopicMastery

	// Generation increases every time a problem is loaded. Timer tokens
	// carry the generation they were issued under.
	Generation uint64
}

// NewState creates a fresh session state.
func NewState(id string) *State {
	return &State{
		ID:        id,
		UserLevel: MinLevel,
		Mastery:   make(map[string]*TopicMastery),
	}
}

// clone returns a deep copy safe to hand to callers.
func (s *State) clone() State {
	out := *s
	out.History = append([]Attempt(nil), s.History...)
	out.Mastery = make(map[string]*TopicMastery, len(s.Mastery))
	for k, v := range s.Mastery {
		m := *v
		out.Mastery[k] = &m
	}
	return out
}

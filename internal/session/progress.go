package session

// TopicMastery tracks correctness within one topic.
type TopicMastery struct {
	Correct int
	Total   int
}

// Record adds a new answer result.
func (m *TopicMastery) Record(correct bool) {
	m.Total++
	if correct {
		m.Correct++
	}
}

// Ratio returns Correct/Total, or 0 before any answer.
func (m *TopicMastery) Ratio() float64 {
	if m.Total == 0 {
		return 0
	}
	return float64(m.Correct) / float64(m.Total)
}

// Adaptive leveling thresholds. Between them the level holds.
const (
	PromoteAbove = 0.8
	DemoteBelow  = 0.4
)

// AdjustLevel moves level at most one step based on the mastery ratio of the
// topic just answered, staying within [MinLevel, MaxLevel].
func AdjustLevel(level int, m *TopicMastery) int {
	r := m.Ratio()
	switch {
	case r > PromoteAbove && level < MaxLevel:
		return level + 1
	case r < DemoteBelow && level > MinLevel:
		return level - 1
	}
	return level
}

// Scoring constants.
const (
	BasePoints   = 10
	HintPenalty  = 2
	MinimumAward = 5
)

// Points returns the award for a correct answer after hintsUsed hints.
func Points(hintsUsed int) int {
	return max(BasePoints-hintsUsed*HintPenalty, MinimumAward)
}

package session

// ProgressGoal is the score at which the progress bar is full.
const ProgressGoal = 1000

// Summary holds the header and summary screen data.
type Summary struct {
	SessionID       string
	UserLevel       int
	Score           int
	Streak          int
	ProgressPercent float64
	Attempts        int
	Correct         int
	Accuracy        float64
	TopicMastery    map[string]TopicMastery
}

// ProgressPercent returns min(score/ProgressGoal*100, 100).
func ProgressPercent(score int) float64 {
	return min(float64(score)/ProgressGoal*100, 100)
}

// BuildSummary creates a Summary from the session state.
func BuildSummary(state *State) Summary {
	s := Summary{
		SessionID:       state.ID,
		UserLevel:       state.UserLevel,
		Score:           state.Score,
		Streak:          state.Streak,
		ProgressPercent: ProgressPercent(state.Score),
		Attempts:        len(state.History),
		TopicMastery:    make(map[string]TopicMastery, len(state.Mastery)),
	}
	for _, a := range state.History {
		if a.Correct {
			s.Correct++
		}
	}
	if s.Attempts > 0 {
		s.Accuracy = float64(s.Correct) / float64(s.Attempts)
	}
	for id, m := range state.Mastery {
		s.TopicMastery[id] = *m
	}
	return s
}

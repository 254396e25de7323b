package session

import "testing"

func TestTopicMastery_Record(t *testing.T) {
	m := &TopicMastery{}

	m.Record(true)
	m.Record(true)
	m.Record(false)
	m.Record(true)

	if m.Total != 4 {
		t.Errorf("Total = %d, want 4", m.Total)
	}
	if m.Correct != 3 {
		t.Errorf("Correct = %d, want 3", m.Correct)
	}
	if m.Ratio() != 0.75 {
		t.Errorf("Ratio = %f, want 0.75", m.Ratio())
	}
}

func TestTopicMastery_RatioEmpty(t *testing.T) {
	m := &TopicMastery{}
	if m.Ratio() != 0 {
		t.Errorf("Ratio = %f, want 0", m.Ratio())
	}
}

func TestAdjustLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   int
		correct int
		total   int
		want    int
	}{
		{"five of six promotes", 2, 5, 6, 3},
		{"exactly 0.8 holds", 2, 4, 5, 2},
		{"deadband holds", 3, 3, 5, 3},
		{"exactly 0.4 holds", 3, 2, 5, 3},
		{"below 0.4 demotes", 3, 1, 3, 2},
		{"zero demotes", 3, 0, 4, 2},
		{"capped at max", MaxLevel, 10, 10, MaxLevel},
		{"floored at min", MinLevel, 0, 10, MinLevel},
		{"perfect from min", MinLevel, 1, 1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdjustLevel(tt.level, &TopicMastery{Correct: tt.correct, Total: tt.total})
			if got != tt.want {
				t.Errorf("AdjustLevel(%d, %d/%d) = %d, want %d", tt.level, tt.correct, tt.total, got, tt.want)
			}
		})
	}
}

func TestPoints(t *testing.T) {
	for hints, want := range map[int]int{0: 10, 1: 8, 2: 6, 3: 5, 4: 5, 50: 5} {
		if got := Points(hints); got != want {
			t.Errorf("Points(%d) = %d, want %d", hints, got, want)
		}
	}
}

func TestProgressPercent(t *testing.T) {
	tests := []struct {
		score int
		want  float64
	}{
		{0, 0},
		{10, 1},
		{500, 50},
		{1000, 100},
		{2500, 100},
	}
	for _, tt := range tests {
		if got := ProgressPercent(tt.score); got != tt.want {
			t.Errorf("ProgressPercent(%d) = %f, want %f", tt.score, got, tt.want)
		}
	}
}

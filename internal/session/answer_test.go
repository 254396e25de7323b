package session

import "testing"

func TestCompareAnswers(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"(1, 3)", "(1,3)", true},
		{"x = 2, 3", "X=2,3", true},
		{"1, 3", "(1, 3)", true},
		{"F(X) = (1/2)ˣ", "f(x) = 1/2ˣ", true},
		{"  5 ", "5", true},
		{"5", "25", false},
		{"(1, 3)", "(3, 1)", false},
		{"x ≥ -4", "x>-4", false},
		{"", "", true},
	}
	for _, tt := range tests {
		if got := CompareAnswers(tt.a, tt.b); got != tt.want {
			t.Errorf("CompareAnswers(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
		if got := CompareAnswers(tt.b, tt.a); got != tt.want {
			t.Errorf("CompareAnswers(%q, %q) = %v, want %v (symmetry)", tt.b, tt.a, got, tt.want)
		}
	}
}

func TestNormalizeAnswer(t *testing.T) {
	tests := map[string]string{
		"(1, -1)":      "1,-1",
		"X = 0.5, -2":  "x=0.5,-2",
		"ΑΒΓ":          "αβγ",
		"a\tb\nc d": "abcd",
	}
	for in, want := range tests {
		if got := NormalizeAnswer(in); got != want {
			t.Errorf("NormalizeAnswer(%q) = %q, want %q", in, got, want)
		}
	}
}

package session

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeAnswer lower-cases s and drops all whitespace and parentheses.
func NormalizeAnswer(s string) string {
	// Casers carry state, so one is built per call.
	lower := cases.Lower(language.Und).String(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '(' || r == ')' {
			return -1
		}
		return r
	}, lower)
}

// CompareAnswers reports whether two answers are equal after normalization.
// It is symmetric.
func CompareAnswers(a, b string) bool {
	return NormalizeAnswer(a) == NormalizeAnswer(b)
}

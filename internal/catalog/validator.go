package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/algebra/internal/plot"
)

// Validator checks an authored problem for correctness.
// Implementations are stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier used in error messages,
	// e.g. "structural", "options", "plot".
	Name() string

	// Validate returns nil if the problem passes.
	Validate(p *Problem) *ValidationError
}

// ValidationError describes why an authored problem was rejected.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Problem   string // Problem ID
	Message   string // Human-readable description of the failure
	Err       error  // Underlying cause, if any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("problem %q: validator %q: %s", e.Problem, e.Validator, e.Message)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// DefaultValidators is the validator chain applied to every problem.
// They run in order; the first failure for a problem stops its chain.
func DefaultValidators() []Validator {
	return []Validator{
		&StructuralValidator{},
		&OptionsValidator{},
		&PlotValidator{},
	}
}

// StructuralValidator checks required fields and value ranges.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(p *Problem) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), Problem: p.ID, Message: msg}
	}
	switch {
	case p.ID == "":
		return fail("id is empty")
	case strings.TrimSpace(p.Title) == "":
		return fail("title is empty")
	case strings.TrimSpace(p.Question) == "":
		return fail("question is empty")
	case strings.TrimSpace(p.AnswerKey) == "":
		return fail("answer key is empty")
	case p.Level < 1 || p.Level > 5:
		return fail(fmt.Sprintf("level must be between 1 and 5, got %d", p.Level))
	case p.Kind != MultipleChoice && p.Kind != FreeResponse:
		return fail(fmt.Sprintf("kind must be %q or %q", MultipleChoice, FreeResponse))
	case p.Plot == nil:
		return fail("plot is missing")
	}
	return nil
}

// OptionsValidator enforces the multiple choice contract: non-empty,
// distinct options containing the answer key exactly once. Free response
// problems must not carry options.
type OptionsValidator struct{}

func (v *OptionsValidator) Name() string { return "options" }

func (v *OptionsValidator) Validate(p *Problem) *ValidationError {
	fail := func(format string, args ...any) *ValidationError {
		return &ValidationError{Validator: v.Name(), Problem: p.ID, Message: fmt.Sprintf(format, args...)}
	}

	if p.Kind == FreeResponse {
		if len(p.Options) > 0 {
			return fail("free response problem must have no options")
		}
		return nil
	}

	if len(p.Options) < 2 {
		return fail("multiple choice needs at least 2 options, got %d", len(p.Options))
	}
	seen := make(map[string]bool, len(p.Options))
	matches := 0
	for i, o := range p.Options {
		if strings.TrimSpace(o) == "" {
			return fail("option %d is empty", i+1)
		}
		if seen[o] {
			return fail("duplicate option %q", o)
		}
		seen[o] = true
		if o == p.AnswerKey {
			matches++
		}
	}
	if matches != 1 {
		return fail("answer %q must appear exactly once in options, found %d", p.AnswerKey, matches)
	}
	return nil
}

// PlotValidator rejects malformed or degenerate plot specs.
type PlotValidator struct{}

func (v *PlotValidator) Name() string { return "plot" }

func (v *PlotValidator) Validate(p *Problem) *ValidationError {
	if err := plot.Validate(p.Plot); err != nil {
		return &ValidationError{
			Validator: v.Name(),
			Problem:   p.ID,
			Message:   err.Error(),
			Err:       err,
		}
	}
	return nil
}

// validateTopics runs catalog-wide checks and the validator chain on
// every problem, returning all failures joined.
func validateTopics(topics []Topic) error {
	var errs []error

	if len(topics) == 0 {
		errs = append(errs, errors.New("catalog has no topics"))
	}

	topicIDs := make(map[string]bool, len(topics))
	problemIDs := make(map[string]string)
	validators := DefaultValidators()

	for _, t := range topics {
		if t.ID == "" {
			errs = append(errs, errors.New("topic with empty id"))
		}
		if topicIDs[t.ID] {
			errs = append(errs, fmt.Errorf("duplicate topic id %q", t.ID))
		}
		topicIDs[t.ID] = true

		if len(t.Problems) == 0 {
			errs = append(errs, fmt.Errorf("topic %q has no problems", t.ID))
		}

		for i := range t.Problems {
			p := &t.Problems[i]
			if owner, dup := problemIDs[p.ID]; dup && p.ID != "" {
				errs = append(errs, fmt.Errorf("duplicate problem id %q in topics %q and %q", p.ID, owner, t.ID))
			}
			problemIDs[p.ID] = t.ID

			for _, v := range validators {
				if verr := v.Validate(p); verr != nil {
					errs = append(errs, verr)
					break
				}
			}
		}
	}

	if len(topics) > 0 && !topicIDs[DefaultTopicID] {
		errs = append(errs, fmt.Errorf("default topic %q is missing", DefaultTopicID))
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed: %w", errors.Join(errs...))
	}
	return nil
}

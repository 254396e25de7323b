package plot

import "fmt"

// Validate checks that spec is well formed and non-degenerate. Catalog
// validation uses it so authored problems never reach Sample with
// parameters that cannot produce their feature.
func Validate(spec Spec) error {
	if spec == nil {
		return fmt.Errorf("%w: nil spec", ErrInvalidPlotSpec)
	}
	if err := checkWellFormed(spec); err != nil {
		return err
	}

	switch s := spec.(type) {
	case Quadratic:
		if s.A == 0 {
			return fmt.Errorf("%w: quadratic with a = 0 has no vertex", ErrDegenerateParameters)
		}
	case LinearSystem:
		if len(s.Lines) == 2 && s.Lines[0].Slope == s.Lines[1].Slope {
			return fmt.Errorf("%w: parallel lines have no unique intersection", ErrDegenerateParameters)
		}
	case Rational:
		if len(s.Den) == 2 && s.Den[0] == 0 {
			return fmt.Errorf("%w: constant denominator has no asymptote", ErrDegenerateParameters)
		}
	}
	return nil
}

// checkWellFormed rejects specs Sample cannot evaluate meaningfully.
func checkWellFormed(spec Spec) error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s: %s", ErrInvalidPlotSpec, spec.Kind(), fmt.Sprintf(format, args...))
	}

	switch s := spec.(type) {
	case Quadratic:
		if !allFinite(s.A, s.B, s.C) {
			return invalid("non-finite coefficient")
		}
	case Polynomial:
		if len(s.Coeffs) == 0 {
			return invalid("no coefficients")
		}
		if !allFinite(s.Coeffs...) {
			return invalid("non-finite coefficient")
		}
	case Exponential:
		if !allFinite(s.A, s.B) {
			return invalid("non-finite parameter")
		}
		if s.B <= 0 {
			return invalid("base must be positive, got %g", s.B)
		}
	case Logarithm:
		if !allFinite(s.Base) {
			return invalid("non-finite base")
		}
		if s.Base <= 0 || s.Base == 1 {
			return invalid("base must be positive and not 1, got %g", s.Base)
		}
	case Rational:
		if len(s.Num) == 0 || len(s.Den) == 0 {
			return invalid("numerator and denominator need coefficients")
		}
		if !allFinite(s.Num...) || !allFinite(s.Den...) {
			return invalid("non-finite coefficient")
		}
	case LinearSystem:
		if len(s.Lines) == 0 {
			return invalid("no lines")
		}
		for i, l := range s.Lines {
			if !allFinite(l.Slope, l.Intercept) {
				return invalid("line %d has a non-finite parameter", i+1)
			}
		}
	case Circle:
		if !allFinite(s.H, s.K, s.R) {
			return invalid("non-finite parameter")
		}
		if s.R <= 0 {
			return invalid("radius must be positive, got %g", s.R)
		}
	case Sequence:
		if s.Rule != Arithmetic && s.Rule != Geometric {
			return invalid("unknown rule %q", s.Rule)
		}
		if !allFinite(s.First, s.Step) {
			return invalid("non-finite parameter")
		}
	case Radical:
		if !allFinite(s.A, s.H) {
			return invalid("non-finite parameter")
		}
	case ComplexPlane:
	default:
		return fmt.Errorf("%w: unsupported variant %T", ErrInvalidPlotSpec, spec)
	}
	return nil
}

func allFinite(vs ...float64) bool {
	for _, v := range vs {
		if !finite(v) {
			return false
		}
	}
	return true
}

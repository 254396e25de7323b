package plot

import (
	"fmt"
	"math"
	"strconv"
)

const (
	// Extent bounds the visible plane: samples with |y| > Extent are dropped
	// and the default domain is x ∈ [-Extent, Extent].
	Extent = 10.0

	// Step is the sampling interval along x.
	Step = 0.1

	// SequenceTerms is the number of terms a Sequence spec emits.
	SequenceTerms = 8

	// DenominatorGuard drops rational samples with |den(x)| at or below it,
	// so spikes next to a pole are never plotted.
	DenominatorGuard = 0.1

	stepsPerUnit = 10
)

// Sample turns a Spec into render data. It is a pure function: the same
// spec always yields an identical Result.
//
// Malformed specs return ErrInvalidPlotSpec. Degenerate but well-formed
// specs (a = 0 quadratic, parallel lines) return a Result carrying a
// Warning instead of the missing feature.
func Sample(spec Spec) (Result, error) {
	if spec == nil {
		return Result{}, fmt.Errorf("%w: nil spec", ErrInvalidPlotSpec)
	}
	if err := checkWellFormed(spec); err != nil {
		return Result{}, err
	}

	var res Result
	switch s := spec.(type) {
	case Quadratic:
		res = sampleQuadratic(s)
	case Polynomial:
		res = samplePolynomial(s)
	case Exponential:
		res = sampleExponential(s)
	case Logarithm:
		res = sampleLogarithm(s)
	case Rational:
		res = sampleRational(s)
	case LinearSystem:
		res = sampleLinearSystem(s)
	case Circle:
		res = sampleCircle(s)
	case Sequence:
		res = sampleSequence(s)
	case Radical:
		res = sampleRadical(s)
	case ComplexPlane:
		res = sampleComplexPlane()
	default:
		return Result{}, fmt.Errorf("%w: unsupported variant %T", ErrInvalidPlotSpec, spec)
	}

	for _, f := range res.Features {
		if !finite(f.X) || !finite(f.Y) {
			return Result{}, fmt.Errorf("%w: %s feature %q is not finite", ErrInvalidPlotSpec, spec.Kind(), f.Name)
		}
	}
	return res, nil
}

// sampleRange evaluates f at lo, lo+Step, ... up to hi and keeps finite
// values with |y| <= Extent. f may report ok=false to skip a sample.
func sampleRange(lo, hi float64, f func(x float64) (float64, bool)) []Point {
	n := int(math.Floor((hi-lo)*stepsPerUnit + 1e-9))
	var pts []Point
	for i := 0; i <= n; i++ {
		x := lo + float64(i)/stepsPerUnit
		y, ok := f(x)
		if !ok || !visible(y) {
			continue
		}
		pts = append(pts, Point{X: x, Y: y})
	}
	return pts
}

func samplePlane(f func(x float64) (float64, bool)) []Point {
	return sampleRange(-Extent, Extent, f)
}

// Horner evaluates coeffs (highest degree first) at x.
func Horner(coeffs []float64, x float64) float64 {
	var acc float64
	for _, c := range coeffs {
		acc = acc*x + c
	}
	return acc
}

// Term returns the n-th term (n >= 1) of a sequence.
func Term(rule SequenceKind, first, step float64, n int) float64 {
	if rule == Geometric {
		return first * math.Pow(step, float64(n-1))
	}
	return first + float64(n-1)*step
}

func visible(y float64) bool {
	return finite(y) && math.Abs(y) <= Extent
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// formatOneDecimal mirrors fixed one-decimal labels, e.g. "-1.0".
func formatOneDecimal(v float64) string {
	r := math.Round(v*10) / 10
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', 1, 64)
}

// formatNumber prints v with at most two decimals and no trailing zeros.
func formatNumber(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0 // normalizes -0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

package plot

import (
	"fmt"
	"math"
)

func sampleQuadratic(s Quadratic) Result {
	if s.A == 0 {
		return Result{Warnings: []Warning{WarnNoVertex}}
	}
	f := func(x float64) float64 { return s.A*x*x + s.B*x + s.C }
	h := -s.B / (2 * s.A)
	k := f(h)
	return Result{
		Curves: []Curve{{
			Label:  "parabola",
			Points: samplePlane(func(x float64) (float64, bool) { return f(x), true }),
		}},
		Features: []Feature{{
			Name:  FeatureVertex,
			Label: fmt.Sprintf("Vertex (%s, %s)", formatOneDecimal(h), formatOneDecimal(k)),
			X:     h,
			Y:     k,
		}},
	}
}

func samplePolynomial(s Polynomial) Result {
	return Result{
		Curves: []Curve{{
			Label: "polynomial",
			Points: samplePlane(func(x float64) (float64, bool) {
				return Horner(s.Coeffs, x), true
			}),
		}},
	}
}

func sampleExponential(s Exponential) Result {
	return Result{
		Curves: []Curve{{
			Label: "exponential",
			Points: samplePlane(func(x float64) (float64, bool) {
				y := s.A * math.Pow(s.B, x)
				return y, y > 0
			}),
		}},
	}
}

func sampleLogarithm(s Logarithm) Result {
	lnBase := math.Log(s.Base)
	return Result{
		Curves: []Curve{{
			Label: "logarithm",
			Points: sampleRange(Step, Extent, func(x float64) (float64, bool) {
				return math.Log(x) / lnBase, true
			}),
		}},
	}
}

func sampleRational(s Rational) Result {
	res := Result{
		Curves: []Curve{{
			Label: "rational",
			Points: samplePlane(func(x float64) (float64, bool) {
				den := Horner(s.Den, x)
				if math.Abs(den) <= DenominatorGuard {
					return 0, false
				}
				return Horner(s.Num, x) / den, true
			}),
		}},
	}

	if len(s.Den) == 2 {
		m, b := s.Den[0], s.Den[1]
		if m == 0 {
			res.Warnings = append(res.Warnings, WarnNoAsymptote)
		} else {
			x := -b / m
			res.Lines = append(res.Lines, AuxLine{
				Kind:  Asymptote,
				Label: "x = " + formatNumber(x),
				X1:    x, Y1: -Extent,
				X2: x, Y2: Extent,
			})
		}
	}
	return res
}

func sampleLinearSystem(s LinearSystem) Result {
	var res Result
	for i, l := range s.Lines {
		res.Curves = append(res.Curves, Curve{
			Label: fmt.Sprintf("line %d", i+1),
			Points: samplePlane(func(x float64) (float64, bool) {
				return l.Slope*x + l.Intercept, true
			}),
		})
	}

	if len(s.Lines) != 2 {
		return res
	}
	l1, l2 := s.Lines[0], s.Lines[1]
	if l1.Slope == l2.Slope {
		res.Warnings = append(res.Warnings, WarnNoUniqueIntersection)
		return res
	}
	x := (l2.Intercept - l1.Intercept) / (l1.Slope - l2.Slope)
	y := l1.Slope*x + l1.Intercept
	res.Features = append(res.Features, Feature{
		Name:  FeatureIntersection,
		Label: fmt.Sprintf("(%s, %s)", formatNumber(x), formatNumber(y)),
		X:     x,
		Y:     y,
	})
	return res
}

func sampleCircle(s Circle) Result {
	return Result{
		Circles: []CircleShape{{H: s.H, K: s.K, R: s.R}},
		Features: []Feature{{
			Name:  FeatureCenter,
			Label: fmt.Sprintf("Center (%s, %s)", formatNumber(s.H), formatNumber(s.K)),
			X:     s.H,
			Y:     s.K,
		}},
	}
}

func sampleSequence(s Sequence) Result {
	res := Result{Layout: LayoutSequence}
	for n := 1; n <= SequenceTerms; n++ {
		term := Term(s.Rule, s.First, s.Step, n)
		res.Features = append(res.Features, Feature{
			Name:  FeatureTerm,
			Label: formatNumber(term),
			X:     float64(n),
			Y:     term,
		})
	}
	return res
}

func sampleRadical(s Radical) Result {
	start := -s.H
	res := Result{
		Curves: []Curve{{
			Label: "radical",
			Points: sampleRange(math.Max(-Extent, start), Extent, func(x float64) (float64, bool) {
				r := x + s.H
				if r < 0 {
					return 0, false
				}
				return s.A * math.Sqrt(r), true
			}),
		}},
	}
	if start >= -Extent && start <= Extent {
		res.Features = append(res.Features, Feature{
			Name:  FeatureStart,
			Label: fmt.Sprintf("Start (%s, 0)", formatNumber(start)),
			X:     start,
			Y:     0,
		})
	}
	return res
}

func sampleComplexPlane() Result {
	return Result{
		Lines: []AuxLine{
			{Kind: AxisMarker, Label: "Real", X1: -Extent, Y1: 0, X2: Extent, Y2: 0},
			{Kind: AxisMarker, Label: "Imaginary", X1: 0, Y1: -Extent, X2: 0, Y2: Extent},
		},
		Circles: []CircleShape{{H: 0, K: 0, R: 1, Decorative: true}},
		Features: []Feature{
			{Name: FeatureAxisLabel, Label: "Real", X: Extent, Y: 0},
			{Name: FeatureAxisLabel, Label: "Imaginary", X: 0, Y: Extent},
		},
	}
}

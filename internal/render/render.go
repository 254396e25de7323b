// Package render draws sampled plots onto a drawing surface. The sampler
// never depends on it; any Surface implementation can be swapped in.
package render

import (
	"math"

	"github.com/abhisek/algebra/internal/plot"
)

// Style selects how a stroke is drawn.
type Style int

const (
	Solid Style = iota
	Dashed
)

// Bounds is the visible region in result coordinates.
type Bounds struct {
	MinX, MaxX, MinY, MaxY float64
}

// Surface receives drawing calls in result coordinates. Implementations own
// the mapping to device space.
type Surface interface {
	// Frame is called once before any other call.
	Frame(layout plot.Layout, b Bounds)
	Polyline(pts []plot.Point)
	Segment(a, b plot.Point, style Style)
	Dot(p plot.Point, label string)
	Circle(center plot.Point, r float64, style Style)
	Text(p plot.Point, s string)
}

// gapTolerance is the largest x distance between samples on one path.
const gapTolerance = plot.Step * 1.5

// PlaneBounds is the fixed coordinate plane.
var PlaneBounds = Bounds{MinX: -plot.Extent, MaxX: plot.Extent, MinY: -plot.Extent, MaxY: plot.Extent}

// BoundsFor returns the region a result should be framed in. Sequences get
// one column per term and a y range that covers every term and zero.
func BoundsFor(res plot.Result) Bounds {
	if res.Layout != plot.LayoutSequence {
		return PlaneBounds
	}
	b := Bounds{MinX: 0, MaxX: plot.SequenceTerms + 1}
	for _, f := range res.Features {
		b.MinY = math.Min(b.MinY, f.Y)
		b.MaxY = math.Max(b.MaxY, f.Y)
	}
	if b.MaxY == b.MinY {
		b.MaxY = b.MinY + 1
	}
	pad := (b.MaxY - b.MinY) * 0.1
	b.MinY -= pad
	b.MaxY += pad
	return b
}

// Paths splits a curve's samples into contiguous runs. A new run starts
// wherever samples were dropped between two kept points.
func Paths(pts []plot.Point) [][]plot.Point {
	var out [][]plot.Point
	start := 0
	for i := 1; i < len(pts); i++ {
		if pts[i].X-pts[i-1].X > gapTolerance {
			out = append(out, pts[start:i])
			start = i
		}
	}
	if start < len(pts) {
		out = append(out, pts[start:])
	}
	return out
}

// Draw renders res onto s.
func Draw(res plot.Result, s Surface) {
	s.Frame(res.Layout, BoundsFor(res))

	for _, c := range res.Circles {
		style := Solid
		if c.Decorative {
			style = Dashed
		}
		s.Circle(plot.Point{X: c.H, Y: c.K}, c.R, style)
	}

	for _, l := range res.Lines {
		a := plot.Point{X: l.X1, Y: l.Y1}
		b := plot.Point{X: l.X2, Y: l.Y2}
		switch l.Kind {
		case plot.Asymptote:
			s.Segment(a, b, Dashed)
			s.Text(b, l.Label)
		default:
			s.Segment(a, b, Solid)
		}
	}

	for _, c := range res.Curves {
		for _, p := range Paths(c.Points) {
			s.Polyline(p)
		}
	}

	for _, f := range res.Features {
		p := plot.Point{X: f.X, Y: f.Y}
		if f.Name == plot.FeatureAxisLabel {
			s.Text(p, f.Label)
			continue
		}
		s.Dot(p, f.Label)
	}
}

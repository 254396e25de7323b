package plot

// Layout tells the renderer which coordinate space a Result uses.
type Layout int

const (
	// LayoutPlane is the coordinate plane, x and y in [-Extent, Extent].
	LayoutPlane Layout = iota
	// LayoutSequence places term n at x = n with y = term value.
	// Renderers scale it independently of the plane.
	LayoutSequence
)

// Point is a sampled coordinate.
type Point struct {
	X, Y float64
}

// Curve is an ordered sample sequence for one plotted function. Samples
// outside the visible range are dropped, so consecutive points are not
// necessarily adjacent on the curve; renderers break the path at gaps.
type Curve struct {
	Label  string
	Points []Point
}

// Feature names used in Result.Features.
const (
	FeatureVertex       = "vertex"
	FeatureIntersection = "intersection"
	FeatureCenter       = "center"
	FeatureStart        = "start"
	FeatureTerm         = "term"
	FeatureAxisLabel    = "axis-label"
)

// Feature is a notable labeled point.
type Feature struct {
	Name  string
	Label string
	X, Y  float64
}

// LineKind classifies auxiliary lines.
type LineKind int

const (
	Asymptote LineKind = iota
	AxisMarker
)

func (k LineKind) String() string {
	switch k {
	case Asymptote:
		return "asymptote"
	case AxisMarker:
		return "axis-marker"
	default:
		return "unknown"
	}
}

// AuxLine is a straight segment that is not part of a curve.
type AuxLine struct {
	Kind           LineKind
	Label          string
	X1, Y1, X2, Y2 float64
}

// CircleShape is emitted as geometry rather than samples.
type CircleShape struct {
	H, K, R    float64
	Decorative bool
}

// Warning codes signal that a feature could not be produced.
type Warning string

const (
	WarnNoVertex             Warning = "no-vertex"
	WarnNoUniqueIntersection Warning = "no-unique-intersection"
	WarnNoAsymptote          Warning = "no-asymptote"
)

// Result is the render-ready output of Sample. It is never mutated after
// Sample returns.
type Result struct {
	Layout   Layout
	Curves   []Curve
	Features []Feature
	Lines    []AuxLine
	Circles  []CircleShape
	Warnings []Warning
}

// Feature returns the first feature with the given name.
func (r Result) Feature(name string) (Feature, bool) {
	for _, f := range r.Features {
		if f.Name == name {
			return f, true
		}
	}
	return Feature{}, false
}

// HasWarning reports whether w was raised while sampling.
func (r Result) HasWarning(w Warning) bool {
	for _, got := range r.Warnings {
		if got == w {
			return true
		}
	}
	return false
}

// PointCount returns the total number of sampled points across curves.
func (r Result) PointCount() int {
	n := 0
	for _, c := range r.Curves {
		n += len(c.Points)
	}
	return n
}

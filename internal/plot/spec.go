package plot

// Spec describes which function to plot and with what parameters.
// It is implemented only by the variant types in this package.
type Spec interface {
	// Kind returns the variant name, e.g. "quadratic".
	Kind() string
	isSpec()
}

// Quadratic is y = A·x² + B·x + C.
type Quadratic struct {
	A, B, C float64
}

// Polynomial evaluates Coeffs with the highest degree first,
// so [3, -2, 0, 1, -5] is 3x⁴ - 2x³ + x - 5.
type Polynomial struct {
	Coeffs []float64
}

// Exponential is y = A·Bˣ. B must be positive.
type Exponential struct {
	A, B float64
}

// Logarithm is y = log_Base(x). Base must be positive and not 1.
type Logarithm struct {
	Base float64
}

// Rational is y = Num(x) / Den(x), both highest degree first.
type Rational struct {
	Num []float64
	Den []float64
}

// Line is y = Slope·x + Intercept.
type Line struct {
	Slope     float64
	Intercept float64
}

// LinearSystem plots each line; with exactly two lines the
// intersection is reported as a feature.
type LinearSystem struct {
	Lines []Line
}

// Circle is (x-H)² + (y-K)² = R².
type Circle struct {
	H, K, R float64
}

// SequenceKind selects the term rule of a Sequence.
type SequenceKind string

const (
	Arithmetic SequenceKind = "arithmetic"
	Geometric  SequenceKind = "geometric"
)

// Sequence plots the first SequenceTerms terms. Step is the common
// difference (arithmetic) or ratio (geometric).
type Sequence struct {
	Rule  SequenceKind
	First float64
	Step  float64
}

// Radical is y = A·√(x + H).
type Radical struct {
	A, H float64
}

// ComplexPlane is a decorative complex plane with a unit circle.
type ComplexPlane struct{}

func (Quadratic) Kind() string    { return "quadratic" }
func (Polynomial) Kind() string   { return "polynomial" }
func (Exponential) Kind() string  { return "exponential" }
func (Logarithm) Kind() string    { return "logarithm" }
func (Rational) Kind() string     { return "rational" }
func (LinearSystem) Kind() string { return "linear_system" }
func (Circle) Kind() string       { return "circle" }
func (Sequence) Kind() string     { return "sequence" }
func (Radical) Kind() string      { return "radical" }
func (ComplexPlane) Kind() string { return "complex_plane" }

func (Quadratic) isSpec()    {}
func (Polynomial) isSpec()   {}
func (Exponential) isSpec()  {}
func (Logarithm) isSpec()    {}
func (Rational) isSpec()     {}
func (LinearSystem) isSpec() {}
func (Circle) isSpec()       {}
func (Sequence) isSpec()     {}
func (Radical) isSpec()      {}
func (ComplexPlane) isSpec() {}

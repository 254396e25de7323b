package render

import (
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"

	"github.com/abhisek/algebra/internal/plot"
)

// Device scales for SVG output.
const (
	PlaneScale     = 30   // px per plane unit
	SequenceStartX = -240 // px of term 1
	SequenceStepX  = 60   // px between terms
	SequenceScaleY = 5    // px per unit of term value
	svgHalfSize    = 300
)

// SVG is a Surface that writes a standalone SVG document centered on the
// origin.
type SVG struct {
	layout plot.Layout
	body   strings.Builder
}

// NewSVG returns an empty SVG surface.
func NewSVG() *SVG {
	return &SVG{}
}

func (s *SVG) px(p plot.Point) (float64, float64) {
	if s.layout == plot.LayoutSequence {
		return SequenceStartX + SequenceStepX*(p.X-1), -SequenceScaleY * p.Y
	}
	return p.X * PlaneScale, -p.Y * PlaneScale
}

func num(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (s *SVG) Frame(layout plot.Layout, _ Bounds) {
	s.layout = layout
	h := strconv.Itoa(svgHalfSize)
	fmt.Fprintf(&s.body, `<line class="axis" x1="-%s" y1="0" x2="%s" y2="0" stroke="#999"/>`+"\n", h, h)
	if layout == plot.LayoutPlane {
		fmt.Fprintf(&s.body, `<line class="axis" x1="0" y1="-%s" x2="0" y2="%s" stroke="#999"/>`+"\n", h, h)
	}
}

func (s *SVG) Polyline(pts []plot.Point) {
	var d strings.Builder
	for i, p := range pts {
		x, y := s.px(p)
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&d, "%s%s %s", cmd, num(x), num(y))
		if i < len(pts)-1 {
			d.WriteByte(' ')
		}
	}
	fmt.Fprintf(&s.body, `<path class="curve" d="%s" fill="none" stroke="#3b82f6" stroke-width="2"/>`+"\n", d.String())
}

func dash(style Style) string {
	if style == Dashed {
		return ` stroke-dasharray="5,5"`
	}
	return ""
}

func (s *SVG) Segment(a, b plot.Point, style Style) {
	x1, y1 := s.px(a)
	x2, y2 := s.px(b)
	fmt.Fprintf(&s.body, `<line class="aux" x1="%s" y1="%s" x2="%s" y2="%s" stroke="#ef4444"%s/>`+"\n",
		num(x1), num(y1), num(x2), num(y2), dash(style))
}

func (s *SVG) Dot(p plot.Point, label string) {
	x, y := s.px(p)
	fmt.Fprintf(&s.body, `<circle class="feature" cx="%s" cy="%s" r="5" fill="#f59e0b"/>`+"\n", num(x), num(y))
	if label != "" {
		fmt.Fprintf(&s.body, `<text x="%s" y="%s" font-size="12">%s</text>`+"\n",
			num(x+10), num(y-10), html.EscapeString(label))
	}
}

func (s *SVG) Circle(center plot.Point, r float64, style Style) {
	x, y := s.px(center)
	fmt.Fprintf(&s.body, `<circle class="shape" cx="%s" cy="%s" r="%s" fill="none" stroke="#10b981" stroke-width="2"%s/>`+"\n",
		num(x), num(y), num(r*PlaneScale), dash(style))
}

func (s *SVG) Text(p plot.Point, str string) {
	x, y := s.px(p)
	fmt.Fprintf(&s.body, `<text x="%s" y="%s" font-size="12">%s</text>`+"\n",
		num(x), num(y), html.EscapeString(str))
}

// String returns the complete SVG document.
func (s *SVG) String() string {
	h := strconv.Itoa(svgHalfSize)
	size := strconv.Itoa(2 * svgHalfSize)
	return `<svg xmlns="http://www.w3.org/2000/svg" viewBox="-` + h + ` -` + h + ` ` + size + ` ` + size +
		`" width="` + size + `" height="` + size + `">` + "\n" + s.body.String() + "</svg>\n"
}

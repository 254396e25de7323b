package render

import (
	"math"
	"strings"

	"github.com/abhisek/algebra/internal/plot"
)

// Class tags what a canvas cell shows so hosts can style it.
type Class int

const (
	ClassEmpty Class = iota
	ClassAxis
	ClassAux
	ClassCurve
	ClassFeature
	ClassText
)

type cell struct {
	r     rune
	class Class
}

// Canvas is a character grid Surface for terminals.
type Canvas struct {
	w, h   int
	b      Bounds
	layout plot.Layout
	cells  [][]cell
}

// NewCanvas returns a blank canvas of w columns by h rows.
func NewCanvas(w, h int) *Canvas {
	w = max(w, 8)
	h = max(h, 4)
	cells := make([][]cell, h)
	for i := range cells {
		cells[i] = make([]cell, w)
		for j := range cells[i] {
			cells[i][j] = cell{r: ' '}
		}
	}
	return &Canvas{w: w, h: h, b: PlaneBounds, cells: cells}
}

// Frame sets the coordinate mapping and draws the axes.
func (c *Canvas) Frame(layout plot.Layout, b Bounds) {
	c.layout = layout
	c.b = b

	col0, row0 := c.cell(plot.Point{})
	if row0 >= 0 && row0 < c.h {
		for col := range c.w {
			c.set(col, row0, '─', ClassAxis)
		}
	}
	if layout == plot.LayoutPlane && col0 >= 0 && col0 < c.w {
		for row := range c.h {
			r := '│'
			if row == row0 {
				r = '┼'
			}
			c.set(col0, row, r, ClassAxis)
		}
	}
}

// cell maps a point to grid coordinates. Results may fall off the grid.
func (c *Canvas) cell(p plot.Point) (col, row int) {
	fx := (p.X - c.b.MinX) / (c.b.MaxX - c.b.MinX)
	fy := (c.b.MaxY - p.Y) / (c.b.MaxY - c.b.MinY)
	return int(math.Round(fx * float64(c.w-1))), int(math.Round(fy * float64(c.h-1)))
}

func (c *Canvas) set(col, row int, r rune, class Class) {
	if col < 0 || col >= c.w || row < 0 || row >= c.h {
		return
	}
	c.cells[row][col] = cell{r: r, class: class}
}

// line plots every cell between two points. With dashed set every other
// cell is skipped.
func (c *Canvas) line(a, b plot.Point, r rune, class Class, dashed bool) {
	c0, r0 := c.cell(a)
	c1, r1 := c.cell(b)
	n := max(abs(c1-c0), abs(r1-r0))
	if n == 0 {
		c.set(c0, r0, r, class)
		return
	}
	for i := 0; i <= n; i++ {
		if dashed && i%2 == 1 {
			continue
		}
		t := float64(i) / float64(n)
		col := int(math.Round(float64(c0) + t*float64(c1-c0)))
		row := int(math.Round(float64(r0) + t*float64(r1-r0)))
		c.set(col, row, r, class)
	}
}

func (c *Canvas) Polyline(pts []plot.Point) {
	if len(pts) == 1 {
		col, row := c.cell(pts[0])
		c.set(col, row, '•', ClassCurve)
		return
	}
	for i := 1; i < len(pts); i++ {
		c.line(pts[i-1], pts[i], '•', ClassCurve, false)
	}
}

func (c *Canvas) Segment(a, b plot.Point, style Style) {
	r := '·'
	switch {
	case a.X == b.X:
		r = '┊'
	case a.Y == b.Y:
		r = '┄'
	}
	c.line(a, b, r, ClassAux, style == Dashed)
}

func (c *Canvas) Dot(p plot.Point, label string) {
	col, row := c.cell(p)
	c.set(col, row, '●', ClassFeature)
	if label != "" {
		c.text(col+2, row, label)
	}
}

func (c *Canvas) Circle(center plot.Point, r float64, style Style) {
	const steps = 180
	for i := range steps {
		if style == Dashed && i%4 >= 2 {
			continue
		}
		theta := 2 * math.Pi * float64(i) / steps
		col, row := c.cell(plot.Point{
			X: center.X + r*math.Cos(theta),
			Y: center.Y + r*math.Sin(theta),
		})
		c.set(col, row, '∘', ClassAux)
	}
}

func (c *Canvas) Text(p plot.Point, s string) {
	col, row := c.cell(p)
	// Keep labels anchored at the right edge inside the grid.
	if n := len([]rune(s)); col+n > c.w {
		col = c.w - n
	}
	c.text(col, row, s)
}

func (c *Canvas) text(col, row int, s string) {
	for i, r := range []rune(s) {
		c.set(col+i, row, r, ClassText)
	}
}

// Render joins the grid into lines, passing each run of same-class cells
// through style. A nil style returns the plain text.
func (c *Canvas) Render(style func(Class, string) string) string {
	var b strings.Builder
	for i, row := range c.cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && row[j].class == row[start].class {
				continue
			}
			var run strings.Builder
			for _, cl := range row[start:j] {
				run.WriteRune(cl.r)
			}
			if style != nil {
				b.WriteString(style(row[start].class, run.String()))
			} else {
				b.WriteString(run.String())
			}
			start = j
		}
	}
	return b.String()
}

// String returns the plain text rendering.
func (c *Canvas) String() string {
	return c.Render(nil)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

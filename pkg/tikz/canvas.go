package tikz

import (
	"strings"

	"github.com/saltsmart/tikzgo/pkg/errors"
)

// statementIndent prefixes every statement inside an environment.
const statementIndent = "    "

// canvas is the ordered drawable container shared by Picture and
// Scope. The factory methods construct a shape, append it, and hand
// the concrete pointer back so the caller can keep mutating it; the
// container renders whatever state the drawables hold at render time.
type canvas struct {
	drawables []Drawable
}

// Add appends already-constructed drawables in argument order. Nil
// entries are ignored.
func (c *canvas) Add(drawables ...Drawable) {
	for _, d := range drawables {
		if d != nil {
			c.drawables = append(c.drawables, d)
		}
	}
}

// Remove detaches a drawable, matched by identity. Removing a
// drawable that is not present returns a NOT_FOUND error.
func (c *canvas) Remove(d Drawable) error {
	for i, existing := range c.drawables {
		if existing == d {
			c.drawables = append(c.drawables[:i], c.drawables[i+1:]...)
			return nil
		}
	}
	return errors.New(errors.ErrCodeNotFound, "drawable not found in container")
}

// Drawables returns the contained drawables in insertion order. The
// slice is a copy but the elements are shared, so mutating them
// affects subsequent renders.
func (c *canvas) Drawables() []Drawable {
	out := make([]Drawable, len(c.drawables))
	copy(out, c.drawables)
	return out
}

// Transform applies t to every contained drawable.
func (c *canvas) Transform(t Transform) {
	for _, d := range c.drawables {
		d.Transform(t)
	}
}

// TransformIf applies t to each drawable for which match returns
// true. Nested scopes count as single drawables: a matched scope is
// transformed wholesale and an unmatched one is skipped entirely.
func (c *canvas) TransformIf(t Transform, match func(Drawable) bool) {
	for _, d := range c.drawables {
		if match(d) {
			d.Transform(t)
		}
	}
}

// renderBody writes every contained statement, indented one level,
// into b. Multi-line statements such as nested scopes indent each of
// their lines.
func (c *canvas) renderBody(b *strings.Builder) {
	for _, d := range c.drawables {
		for _, line := range strings.Split(d.Code(), "\n") {
			b.WriteString(statementIndent)
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
}

// Line constructs a polyline, appends it, and returns it.
func (c *canvas) Line(points []Point, options ...string) (*Line, error) {
	l, err := NewLine(points, options...)
	if err != nil {
		return nil, err
	}
	c.Add(l)
	return l, nil
}

// Circle constructs a circle, appends it, and returns it.
func (c *canvas) Circle(center Point, radius float64, options ...string) (*Circle, error) {
	ci, err := NewCircle(center, radius, options...)
	if err != nil {
		return nil, err
	}
	c.Add(ci)
	return ci, nil
}

// Ellipse constructs an ellipse, appends it, and returns it.
func (c *canvas) Ellipse(center Point, xRadius, yRadius float64, options ...string) (*Ellipse, error) {
	e, err := NewEllipse(center, xRadius, yRadius, options...)
	if err != nil {
		return nil, err
	}
	c.Add(e)
	return e, nil
}

// Arc constructs a circular arc, appends it, and returns it.
func (c *canvas) Arc(position Point, startAngle, endAngle, radius float64, options ...string) (*Arc, error) {
	a, err := NewArc(position, startAngle, endAngle, radius, options...)
	if err != nil {
		return nil, err
	}
	c.Add(a)
	return a, nil
}

// ArcXY constructs an elliptical arc, appends it, and returns it.
func (c *canvas) ArcXY(position Point, startAngle, endAngle, xRadius, yRadius float64, options ...string) (*Arc, error) {
	a, err := NewArcXY(position, startAngle, endAngle, xRadius, yRadius, options...)
	if err != nil {
		return nil, err
	}
	c.Add(a)
	return a, nil
}

// Rectangle constructs a rectangle, appends it, and returns it.
func (c *canvas) Rectangle(from, to Point, options ...string) (*Rectangle, error) {
	r, err := NewRectangle(from, to, options...)
	if err != nil {
		return nil, err
	}
	c.Add(r)
	return r, nil
}

// Node constructs a text node, appends it, and returns it.
func (c *canvas) Node(at Point, text string, options ...string) (*Node, error) {
	n, err := NewNode(at, text, options...)
	if err != nil {
		return nil, err
	}
	c.Add(n)
	return n, nil
}

// Plot constructs a coordinate plot, appends it, and returns it.
func (c *canvas) Plot(points []Point, plotOptions string, options ...string) (*PlotPath, error) {
	p, err := NewPlot(points, plotOptions, options...)
	if err != nil {
		return nil, err
	}
	c.Add(p)
	return p, nil
}

// Path constructs a freeform path, appends it, and returns it.
func (c *canvas) Path(start Point, segments []Segment, options ...string) (*Path, error) {
	p, err := NewPath(start, segments, options...)
	if err != nil {
		return nil, err
	}
	c.Add(p)
	return p, nil
}

// Scope constructs a nested scope, appends it, and returns it.
func (c *canvas) Scope(options ...string) *Scope {
	s := NewScope(options...)
	c.Add(s)
	return s
}

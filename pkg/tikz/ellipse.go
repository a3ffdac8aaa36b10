package tikz

import (
	"fmt"

	"github.com/saltsmart/tikzgo/pkg/errors"
)

// Ellipse is an axis-aligned ellipse given by center and two radii,
// rendered as:
//
//	\draw (0, 0) ellipse (3cm and 1.5cm);
type Ellipse struct {
	Center  Point
	XRadius float64
	YRadius float64
	Action  Action
	Options *Options
}

// NewEllipse builds an ellipse. Both radii must be finite and not
// negative.
func NewEllipse(center Point, xRadius, yRadius float64, options ...string) (*Ellipse, error) {
	if err := validatePoint("ellipse center", center); err != nil {
		return nil, err
	}
	if err := errors.ValidateNonNegative("ellipse x radius", xRadius); err != nil {
		return nil, err
	}
	if err := errors.ValidateNonNegative("ellipse y radius", yRadius); err != nil {
		return nil, err
	}
	return &Ellipse{
		Center:  center,
		XRadius: xRadius,
		YRadius: yRadius,
		Action:  ActionDraw,
		Options: NewOptions(options...),
	}, nil
}

// North returns the topmost point of the ellipse.
func (e *Ellipse) North() Point {
	return Point{e.Center.X, e.Center.Y + e.YRadius}
}

// South returns the bottommost point of the ellipse.
func (e *Ellipse) South() Point {
	return Point{e.Center.X, e.Center.Y - e.YRadius}
}

// East returns the rightmost point of the ellipse.
func (e *Ellipse) East() Point {
	return Point{e.Center.X + e.XRadius, e.Center.Y}
}

// West returns the leftmost point of the ellipse.
func (e *Ellipse) West() Point {
	return Point{e.Center.X - e.XRadius, e.Center.Y}
}

// Code returns the TikZ statement for the ellipse.
func (e *Ellipse) Code() string {
	return statement(e.Action, e.Options, e.command())
}

func (e *Ellipse) command() string {
	return fmt.Sprintf("%s ellipse (%scm and %scm)",
		e.Center, formatNum(e.XRadius), formatNum(e.YRadius))
}

// Transform moves the center through t and resizes both radii by the
// accumulated scale factor.
func (e *Ellipse) Transform(t Transform) {
	e.Center = t.Apply(e.Center)
	e.XRadius = t.scaleLength(e.XRadius)
	e.YRadius = t.scaleLength(e.YRadius)
}

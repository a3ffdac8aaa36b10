package tikz

import (
	"fmt"

	"github.com/saltsmart/tikzgo/pkg/errors"
)

// Circle is a circle given by center and radius, rendered as:
//
//	\draw[fill=red] (0, 0) circle (3cm);
type Circle struct {
	Center  Point
	Radius  float64
	Action  Action
	Options *Options
}

// NewCircle builds a circle. The radius must be finite and not
// negative; zero is allowed.
func NewCircle(center Point, radius float64, options ...string) (*Circle, error) {
	if err := validatePoint("circle center", center); err != nil {
		return nil, err
	}
	if err := errors.ValidateNonNegative("circle radius", radius); err != nil {
		return nil, err
	}
	return &Circle{
		Center:  center,
		Radius:  radius,
		Action:  ActionDraw,
		Options: NewOptions(options...),
	}, nil
}

// North returns the topmost point of the circle.
func (c *Circle) North() Point {
	return Point{c.Center.X, c.Center.Y + c.Radius}
}

// South returns the bottommost point of the circle.
func (c *Circle) South() Point {
	return Point{c.Center.X, c.Center.Y - c.Radius}
}

// East returns the rightmost point of the circle.
func (c *Circle) East() Point {
	return Point{c.Center.X + c.Radius, c.Center.Y}
}

// West returns the leftmost point of the circle.
func (c *Circle) West() Point {
	return Point{c.Center.X - c.Radius, c.Center.Y}
}

// Code returns the TikZ statement for the circle.
func (c *Circle) Code() string {
	return statement(c.Action, c.Options, c.command())
}

func (c *Circle) command() string {
	return fmt.Sprintf("%s circle (%scm)", c.Center, formatNum(c.Radius))
}

// Transform moves the center through t and resizes the radius by the
// accumulated scale factor.
func (c *Circle) Transform(t Transform) {
	c.Center = t.Apply(c.Center)
	c.Radius = t.scaleLength(c.Radius)
}

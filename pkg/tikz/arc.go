package tikz

import (
	"fmt"
	"math"

	"github.com/saltsmart/tikzgo/pkg/errors"
)

// Arc is a circular or elliptical arc swept between two angles,
// rendered in the bracketed TikZ form:
//
//	\draw (3, 0) arc [start angle = 0, end angle = 180, radius = 2cm];
//
// Position is the point the pen starts from. With FromCenter set,
// Position is instead interpreted as the arc's center and the start
// point is derived from it, which is usually the more convenient way
// to place an arc.
//
// A circular arc carries Radius; an elliptical arc carries XRadius
// and YRadius. When either elliptical radius is nonzero the x/y form
// renders and Radius is ignored.
type Arc struct {
	Position   Point
	StartAngle float64
	EndAngle   float64
	Radius     float64
	XRadius    float64
	YRadius    float64
	FromCenter bool
	Action     Action
	Options    *Options
}

// NewArc builds a circular arc starting at position.
func NewArc(position Point, startAngle, endAngle, radius float64, options ...string) (*Arc, error) {
	if err := validateArc(position, startAngle, endAngle); err != nil {
		return nil, err
	}
	if err := errors.ValidateNonNegative("arc radius", radius); err != nil {
		return nil, err
	}
	return &Arc{
		Position:   position,
		StartAngle: startAngle,
		EndAngle:   endAngle,
		Radius:     radius,
		Action:     ActionDraw,
		Options:    NewOptions(options...),
	}, nil
}

// NewArcXY builds an elliptical arc starting at position.
func NewArcXY(position Point, startAngle, endAngle, xRadius, yRadius float64, options ...string) (*Arc, error) {
	if err := validateArc(position, startAngle, endAngle); err != nil {
		return nil, err
	}
	if err := errors.ValidateNonNegative("arc x radius", xRadius); err != nil {
		return nil, err
	}
	if err := errors.ValidateNonNegative("arc y radius", yRadius); err != nil {
		return nil, err
	}
	return &Arc{
		Position:   position,
		StartAngle: startAngle,
		EndAngle:   endAngle,
		XRadius:    xRadius,
		YRadius:    yRadius,
		Action:     ActionDraw,
		Options:    NewOptions(options...),
	}, nil
}

func validateArc(position Point, startAngle, endAngle float64) error {
	if err := validatePoint("arc position", position); err != nil {
		return err
	}
	return errors.ValidateFinite("arc angle", startAngle, endAngle)
}

// elliptical reports whether the x/y radius form renders.
func (a *Arc) elliptical() bool {
	return a.XRadius != 0 || a.YRadius != 0
}

// radii returns the effective horizontal and vertical radii.
func (a *Arc) radii() (float64, float64) {
	if a.elliptical() {
		return a.XRadius, a.YRadius
	}
	return a.Radius, a.Radius
}

// Center returns the center of the arc's underlying circle or
// ellipse.
func (a *Arc) Center() Point {
	if a.FromCenter {
		return a.Position
	}
	rx, ry := a.radii()
	sin, cos := math.Sincos(a.StartAngle * math.Pi / 180)
	return Point{a.Position.X - rx*cos, a.Position.Y - ry*sin}
}

// StartPoint returns the point the pen starts drawing from.
func (a *Arc) StartPoint() Point {
	if !a.FromCenter {
		return a.Position
	}
	rx, ry := a.radii()
	sin, cos := math.Sincos(a.StartAngle * math.Pi / 180)
	return Point{
		roundCoord(a.Position.X + rx*cos),
		roundCoord(a.Position.Y + ry*sin),
	}
}

// Code returns the TikZ statement for the arc.
func (a *Arc) Code() string {
	return statement(a.Action, a.Options, a.command())
}

func (a *Arc) command() string {
	var radii string
	if a.elliptical() {
		radii = fmt.Sprintf("x radius = %scm, y radius = %scm",
			formatNum(a.XRadius), formatNum(a.YRadius))
	} else {
		radii = fmt.Sprintf("radius = %scm", formatNum(a.Radius))
	}
	return fmt.Sprintf("%s arc [start angle = %s, end angle = %s, %s]",
		a.StartPoint(), formatNum(a.StartAngle), formatNum(a.EndAngle), radii)
}

// Transform moves the position through t, resizes the radii by the
// accumulated scale factor, and shifts both angles by the accumulated
// rotation.
func (a *Arc) Transform(t Transform) {
	a.Position = t.Apply(a.Position)
	a.StartAngle = t.shiftAngle(a.StartAngle)
	a.EndAngle = t.shiftAngle(a.EndAngle)
	a.Radius = t.scaleLength(a.Radius)
	a.XRadius = t.scaleLength(a.XRadius)
	a.YRadius = t.scaleLength(a.YRadius)
}

package tikz

import (
	"strings"

	"github.com/saltsmart/tikzgo/pkg/errors"
)

// Line is a polyline through two or more points, rendered with
// straight "--" segments:
//
//	\draw[thick] (0, 0) -- (1, 1) -- (2, 0);
type Line struct {
	Points  []Point
	Action  Action
	Options *Options
}

// NewLine builds a line through the given points. At least two points
// are required and every coordinate must be finite.
func NewLine(points []Point, options ...string) (*Line, error) {
	if err := errors.ValidateCount("line", len(points), 2); err != nil {
		return nil, err
	}
	if err := validatePoints("line", points); err != nil {
		return nil, err
	}
	pts := make([]Point, len(points))
	copy(pts, points)
	return &Line{
		Points:  pts,
		Action:  ActionDraw,
		Options: NewOptions(options...),
	}, nil
}

// Start returns the first point.
func (l *Line) Start() Point {
	return l.Points[0]
}

// End returns the last point.
func (l *Line) End() Point {
	return l.Points[len(l.Points)-1]
}

// Midpoint returns the point halfway between the endpoints.
func (l *Line) Midpoint() Point {
	return l.Start().Midpoint(l.End())
}

// Code returns the TikZ statement for the line.
func (l *Line) Code() string {
	return statement(l.Action, l.Options, l.command())
}

func (l *Line) command() string {
	parts := make([]string, len(l.Points))
	for i, p := range l.Points {
		parts[i] = p.String()
	}
	return strings.Join(parts, " -- ")
}

// Transform rewrites every point of the line through t.
func (l *Line) Transform(t Transform) {
	for i, p := range l.Points {
		l.Points[i] = t.Apply(p)
	}
}

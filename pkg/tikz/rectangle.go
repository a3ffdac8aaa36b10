package tikz

import (
	"fmt"
	"math"
)

// Rectangle is an axis-aligned rectangle spanned by two diagonally
// opposite corners, rendered as:
//
//	\draw (2, 2) rectangle (3, 4);
//
// The corners may be given in any order; the anchor helpers sort out
// which side is which.
type Rectangle struct {
	From    Point
	To      Point
	Action  Action
	Options *Options
}

// NewRectangle builds a rectangle between two corners.
func NewRectangle(from, to Point, options ...string) (*Rectangle, error) {
	if err := validatePoint("rectangle corner", from); err != nil {
		return nil, err
	}
	if err := validatePoint("rectangle corner", to); err != nil {
		return nil, err
	}
	return &Rectangle{
		From:    from,
		To:      to,
		Action:  ActionDraw,
		Options: NewOptions(options...),
	}, nil
}

// Width returns the horizontal extent.
func (r *Rectangle) Width() float64 {
	return math.Abs(r.To.X - r.From.X)
}

// Height returns the vertical extent.
func (r *Rectangle) Height() float64 {
	return math.Abs(r.To.Y - r.From.Y)
}

// Center returns the center of the rectangle.
func (r *Rectangle) Center() Point {
	return r.From.Midpoint(r.To)
}

// North returns the midpoint of the top edge.
func (r *Rectangle) North() Point {
	return Point{r.Center().X, math.Max(r.From.Y, r.To.Y)}
}

// South returns the midpoint of the bottom edge.
func (r *Rectangle) South() Point {
	return Point{r.Center().X, math.Min(r.From.Y, r.To.Y)}
}

// East returns the midpoint of the right edge.
func (r *Rectangle) East() Point {
	return Point{math.Max(r.From.X, r.To.X), r.Center().Y}
}

// West returns the midpoint of the left edge.
func (r *Rectangle) West() Point {
	return Point{math.Min(r.From.X, r.To.X), r.Center().Y}
}

// Code returns the TikZ statement for the rectangle.
func (r *Rectangle) Code() string {
	return statement(r.Action, r.Options, r.command())
}

func (r *Rectangle) command() string {
	return fmt.Sprintf("%s rectangle %s", r.From, r.To)
}

// Transform rewrites both corners through t. The shape stays
// axis-aligned: rotating moves the corners and the rectangle is
// re-spanned between them.
func (r *Rectangle) Transform(t Transform) {
	r.From = t.Apply(r.From)
	r.To = t.Apply(r.To)
}

package tikz

import (
	"fmt"
	"math"
	"strconv"
)

// coordPrecision is the number of decimal places coordinates are
// rounded to when a transform recomputes them. Seven places keeps
// output stable across compositions while staying far below what any
// TikZ engine can resolve visually.
const coordPrecision = 7

// Point is a position in the drawing plane.
//
// The zero value is the origin. Points are plain values and are safe
// to copy; drawables store them by value and rewrite them in place
// when transformed.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// String renders the point as a TikZ coordinate, e.g. "(1, 2.5)".
func (p Point) String() string {
	return fmt.Sprintf("(%s, %s)", formatNum(p.X), formatNum(p.Y))
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul returns p scaled by k.
func (p Point) Mul(k float64) Point {
	return Point{p.X * k, p.Y * k}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2}
}

// IsFinite reports whether both coordinates are finite floats.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Shifted returns the point translated by (dx, dy).
func (p Point) Shifted(dx, dy float64) (Point, error) {
	t, err := Translation(dx, dy)
	if err != nil {
		return Point{}, err
	}
	return t.Apply(p), nil
}

// Scaled returns the point scaled uniformly by factor about a center
// point.
func (p Point) Scaled(factor float64, about Point) (Point, error) {
	t, err := ScalingAbout(factor, about)
	if err != nil {
		return Point{}, err
	}
	return t.Apply(p), nil
}

// Rotated returns the point rotated counterclockwise about a center
// point, in degrees.
func (p Point) Rotated(degrees float64, about Point) (Point, error) {
	t, err := RotationAbout(degrees, about)
	if err != nil {
		return Point{}, err
	}
	return t.Apply(p), nil
}

// roundCoord rounds a recomputed coordinate to coordPrecision decimal
// places so that equivalent transform sequences produce byte-identical
// output. Values too large for the shift trick pass through unchanged.
func roundCoord(v float64) float64 {
	if math.Abs(v) >= 1e15 {
		return v
	}
	const shift = 1e7 // 10^coordPrecision
	return math.Round(v*shift) / shift
}

// formatNum renders a coordinate or length using the shortest decimal
// form that round-trips, e.g. 1 -> "1", 0.5 -> "0.5". Negative zero
// normalizes to "0" so that a reflection cannot change the output of
// an otherwise identical drawing.
func formatNum(v float64) string {
	v = roundCoord(v)
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

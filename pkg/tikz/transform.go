package tikz

import (
	"math"

	"github.com/saltsmart/tikzgo/pkg/errors"
)

// matrix is a 2x3 affine transform in column-major convention:
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
type matrix struct {
	a, b, c, d, e, f float64
}

func identityMatrix() matrix {
	return matrix{a: 1, d: 1}
}

// mul returns the composition m∘n: n applies first, then m.
func (m matrix) mul(n matrix) matrix {
	return matrix{
		a: m.a*n.a + m.c*n.b,
		b: m.b*n.a + m.d*n.b,
		c: m.a*n.c + m.c*n.d,
		d: m.b*n.c + m.d*n.d,
		e: m.a*n.e + m.c*n.f + m.e,
		f: m.b*n.e + m.d*n.f + m.f,
	}
}

// apply maps a coordinate pair through the matrix.
func (m matrix) apply(x, y float64) (float64, float64) {
	return m.a*x + m.c*y + m.e, m.b*x + m.d*y + m.f
}

// Transform is a composable affine transform over drawables.
//
// Alongside the point matrix it tracks the accumulated uniform scale
// factor, which resizes lengths such as radii, and the accumulated
// rotation in degrees, which shifts arc angles. Build transforms with
// the constructors; the zero value is not usable.
//
// Transforms are immutable values: Then returns a new Transform and
// Apply does not modify t, so one Transform can be applied to any
// number of drawables.
type Transform struct {
	m     matrix
	scale float64
	rot   float64
}

// Identity returns the transform that leaves every point unchanged.
func Identity() Transform {
	return Transform{m: identityMatrix(), scale: 1}
}

// Translation returns a transform moving every point by (dx, dy).
func Translation(dx, dy float64) (Transform, error) {
	if err := errors.ValidateFinite("translation offset", dx, dy); err != nil {
		return Transform{}, err
	}
	t := Identity()
	t.m.e = dx
	t.m.f = dy
	return t, nil
}

// Scaling returns a uniform scaling about the origin. Lengths such as
// radii scale by |factor|; a negative factor reflects through the
// origin.
func Scaling(factor float64) (Transform, error) {
	return ScalingAbout(factor, Point{})
}

// ScalingAbout returns a uniform scaling about an arbitrary point.
func ScalingAbout(factor float64, about Point) (Transform, error) {
	if err := errors.ValidateFinite("scale factor", factor); err != nil {
		return Transform{}, err
	}
	if err := errors.ValidateFinite("scale center", about.X, about.Y); err != nil {
		return Transform{}, err
	}
	return Transform{
		m: matrix{
			a: factor,
			d: factor,
			e: about.X * (1 - factor),
			f: about.Y * (1 - factor),
		},
		scale: math.Abs(factor),
	}, nil
}

// Rotation returns a counterclockwise rotation about the origin, in
// degrees.
func Rotation(degrees float64) (Transform, error) {
	return RotationAbout(degrees, Point{})
}

// RotationAbout returns a counterclockwise rotation about an
// arbitrary point, in degrees.
func RotationAbout(degrees float64, about Point) (Transform, error) {
	if err := errors.ValidateFinite("rotation angle", degrees); err != nil {
		return Transform{}, err
	}
	if err := errors.ValidateFinite("rotation center", about.X, about.Y); err != nil {
		return Transform{}, err
	}
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Transform{
		m: matrix{
			a: cos,
			b: sin,
			c: -sin,
			d: cos,
			e: about.X - cos*about.X + sin*about.Y,
			f: about.Y - sin*about.X - cos*about.Y,
		},
		scale: 1,
		rot:   degrees,
	}, nil
}

// Then returns the transform that applies t first and u second.
// Composition is associative, and composing before applying avoids
// the intermediate rounding that separate applications introduce.
func (t Transform) Then(u Transform) Transform {
	return Transform{
		m:     u.m.mul(t.m),
		scale: t.scale * u.scale,
		rot:   t.rot + u.rot,
	}
}

// Apply maps a point through the transform, rounding the result so
// repeated renders stay byte-identical.
func (t Transform) Apply(p Point) Point {
	x, y := t.m.apply(p.X, p.Y)
	return Point{roundCoord(x), roundCoord(y)}
}

// ScaleFactor returns the accumulated uniform scale applied to
// lengths. Reflections contribute their magnitude.
func (t Transform) ScaleFactor() float64 {
	return t.scale
}

// Angle returns the accumulated rotation in degrees applied to
// angular attributes such as arc start and end angles.
func (t Transform) Angle() float64 {
	return t.rot
}

// scaleLength resizes a length attribute and rounds it.
func (t Transform) scaleLength(v float64) float64 {
	return roundCoord(v * t.scale)
}

// shiftAngle rotates an angular attribute and rounds it. Angles are
// not normalized: a 540 degree result renders as written, which TikZ
// accepts and which keeps winding information intact.
func (t Transform) shiftAngle(deg float64) float64 {
	return roundCoord(deg + t.rot)
}

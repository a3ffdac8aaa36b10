package tikz

import (
	"strings"

	"github.com/saltsmart/tikzgo/pkg/errors"
)

// Action selects the TikZ path command a drawable renders with.
type Action string

// Path actions understood by TikZ.
const (
	ActionDraw        Action = "draw"
	ActionFill        Action = "fill"
	ActionFillDraw    Action = "filldraw"
	ActionPath        Action = "path"
	ActionBoundingBox Action = "useasboundingbox"
)

// Drawable is a single renderable TikZ statement. All shape types and
// Scope implement it.
type Drawable interface {
	// Code returns the complete TikZ statement for the object,
	// without a trailing newline. Rendering never mutates the
	// object, so calling Code twice yields identical bytes.
	Code() string

	// Transform rewrites every coordinate-bearing attribute of the
	// object in place through t.
	Transform(t Transform)
}

// commander is implemented by drawables whose path body can stand on
// its own inside another command such as \clip.
type commander interface {
	command() string
}

// statement assembles a full drawing statement from an action, an
// option set, and a path body. An unset action defaults to draw.
func statement(action Action, opts *Options, body string) string {
	a := string(action)
	if a == "" {
		a = string(ActionDraw)
	}
	var b strings.Builder
	b.WriteByte('\\')
	b.WriteString(a)
	b.WriteString(opts.String())
	b.WriteByte(' ')
	b.WriteString(body)
	b.WriteByte(';')
	return b.String()
}

// Shift translates a drawable by (dx, dy).
func Shift(d Drawable, dx, dy float64) error {
	t, err := Translation(dx, dy)
	if err != nil {
		return err
	}
	d.Transform(t)
	return nil
}

// Scale resizes a drawable uniformly about the origin.
func Scale(d Drawable, factor float64) error {
	return ScaleAbout(d, factor, Point{})
}

// ScaleAbout resizes a drawable uniformly about a point.
func ScaleAbout(d Drawable, factor float64, about Point) error {
	t, err := ScalingAbout(factor, about)
	if err != nil {
		return err
	}
	d.Transform(t)
	return nil
}

// Rotate rotates a drawable counterclockwise about the origin, in
// degrees.
func Rotate(d Drawable, degrees float64) error {
	return RotateAbout(d, degrees, Point{})
}

// RotateAbout rotates a drawable counterclockwise about a point, in
// degrees.
func RotateAbout(d Drawable, degrees float64, about Point) error {
	t, err := RotationAbout(degrees, about)
	if err != nil {
		return err
	}
	d.Transform(t)
	return nil
}

// validatePoints checks that every point in a sequence is finite.
func validatePoints(label string, pts []Point) error {
	for i, p := range pts {
		if !p.IsFinite() {
			return errors.New(errors.ErrCodeInvalidGeometry,
				"%s point %d must be finite, got (%v, %v)", label, i, p.X, p.Y)
		}
	}
	return nil
}

// validatePoint checks a single named point for finiteness.
func validatePoint(label string, p Point) error {
	if !p.IsFinite() {
		return errors.New(errors.ErrCodeInvalidGeometry,
			"%s must be finite, got (%v, %v)", label, p.X, p.Y)
	}
	return nil
}

package tikz

import (
	"strings"

	"github.com/saltsmart/tikzgo/pkg/errors"
)

// Segment is one leg of a Path: either a straight segment or a cubic
// Bézier curve to To. Build segments with LineTo and CurveTo.
type Segment struct {
	To     Point
	C1, C2 Point // Bézier control points, used when Curved
	Curved bool
}

// LineTo returns a straight segment ending at to.
func LineTo(to Point) Segment {
	return Segment{To: to}
}

// CurveTo returns a cubic Bézier segment ending at to with control
// points c1 and c2.
func CurveTo(to, c1, c2 Point) Segment {
	return Segment{To: to, C1: c1, C2: c2, Curved: true}
}

// Path is a freeform path mixing straight and Bézier segments,
// rendered as:
//
//	\draw (0, 0) -- (1, 1) .. controls (1.5, 2) and (2.5, 2) .. (3, 1);
type Path struct {
	Start    Point
	Segments []Segment
	Action   Action
	Options  *Options
}

// NewPath builds a path from a start point and at least one segment.
func NewPath(start Point, segments []Segment, options ...string) (*Path, error) {
	if err := validatePoint("path start", start); err != nil {
		return nil, err
	}
	if err := errors.ValidateCount("path", len(segments)+1, 2); err != nil {
		return nil, err
	}
	segs := make([]Segment, len(segments))
	copy(segs, segments)
	for i, s := range segs {
		if err := validateSegment(i, s); err != nil {
			return nil, err
		}
	}
	return &Path{
		Start:    start,
		Segments: segs,
		Action:   ActionDraw,
		Options:  NewOptions(options...),
	}, nil
}

func validateSegment(i int, s Segment) error {
	if !s.To.IsFinite() {
		return errors.New(errors.ErrCodeInvalidGeometry,
			"path segment %d endpoint must be finite, got (%v, %v)", i, s.To.X, s.To.Y)
	}
	if s.Curved && (!s.C1.IsFinite() || !s.C2.IsFinite()) {
		return errors.New(errors.ErrCodeInvalidGeometry,
			"path segment %d control points must be finite", i)
	}
	return nil
}

// LineTo appends a straight segment and returns p for chaining.
// Non-finite coordinates are rejected.
func (p *Path) LineTo(to Point) (*Path, error) {
	return p.append(LineTo(to))
}

// CurveTo appends a Bézier segment and returns p for chaining.
func (p *Path) CurveTo(to, c1, c2 Point) (*Path, error) {
	return p.append(CurveTo(to, c1, c2))
}

func (p *Path) append(s Segment) (*Path, error) {
	if err := validateSegment(len(p.Segments), s); err != nil {
		return nil, err
	}
	p.Segments = append(p.Segments, s)
	return p, nil
}

// End returns the final point of the path.
func (p *Path) End() Point {
	if len(p.Segments) == 0 {
		return p.Start
	}
	return p.Segments[len(p.Segments)-1].To
}

// Code returns the TikZ statement for the path.
func (p *Path) Code() string {
	return statement(p.Action, p.Options, p.command())
}

func (p *Path) command() string {
	var b strings.Builder
	b.WriteString(p.Start.String())
	for _, s := range p.Segments {
		if s.Curved {
			b.WriteString(" .. controls ")
			b.WriteString(s.C1.String())
			b.WriteString(" and ")
			b.WriteString(s.C2.String())
			b.WriteString(" .. ")
		} else {
			b.WriteString(" -- ")
		}
		b.WriteString(s.To.String())
	}
	return b.String()
}

// Transform rewrites the start point and every segment point,
// including Bézier controls, through t.
func (p *Path) Transform(t Transform) {
	p.Start = t.Apply(p.Start)
	for i, s := range p.Segments {
		s.To = t.Apply(s.To)
		if s.Curved {
			s.C1 = t.Apply(s.C1)
			s.C2 = t.Apply(s.C2)
		}
		p.Segments[i] = s
	}
}

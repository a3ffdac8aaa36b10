package tikz

import (
	"math"
	"testing"

	"github.com/saltsmart/tikzgo/pkg/errors"
)

func TestPathCode(t *testing.T) {
	tests := []struct {
		name     string
		start    Point
		segments []Segment
		options  []string
		expected string
	}{
		{
			name:     "straight segments",
			start:    Pt(0, 0),
			segments: []Segment{LineTo(Pt(1, 1)), LineTo(Pt(2, 0))},
			expected: `\draw (0, 0) -- (1, 1) -- (2, 0);`,
		},
		{
			name:  "mixed straight and curve",
			start: Pt(0, 0),
			segments: []Segment{
				LineTo(Pt(1, 1)),
				CurveTo(Pt(3, 1), Pt(1.5, 2), Pt(2.5, 2)),
			},
			expected: `\draw (0, 0) -- (1, 1) .. controls (1.5, 2) and (2.5, 2) .. (3, 1);`,
		},
		{
			name:     "curve only with options",
			start:    Pt(0, 0),
			segments: []Segment{CurveTo(Pt(2, 0), Pt(0.5, 1), Pt(1.5, 1))},
			options:  []string{"thick"},
			expected: `\draw[thick] (0, 0) .. controls (0.5, 1) and (1.5, 1) .. (2, 0);`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPath(tt.start, tt.segments, tt.options...)
			if err != nil {
				t.Fatalf("NewPath() error = %v", err)
			}
			if got := p.Code(); got != tt.expected {
				t.Errorf("Code() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPathBuilder(t *testing.T) {
	p, err := NewPath(Pt(0, 0), []Segment{LineTo(Pt(1, 0))})
	if err != nil {
		t.Fatalf("NewPath() error = %v", err)
	}

	if _, err := p.LineTo(Pt(2, 1)); err != nil {
		t.Fatalf("LineTo() error = %v", err)
	}
	if _, err := p.CurveTo(Pt(4, 1), Pt(2.5, 2), Pt(3.5, 2)); err != nil {
		t.Fatalf("CurveTo() error = %v", err)
	}

	expected := `\draw (0, 0) -- (1, 0) -- (2, 1) .. controls (2.5, 2) and (3.5, 2) .. (4, 1);`
	if got := p.Code(); got != expected {
		t.Errorf("Code() = %q, want %q", got, expected)
	}
	if got := p.End(); got != Pt(4, 1) {
		t.Errorf("End = %v, want %v", got, Pt(4, 1))
	}
}

func TestNewPathValidation(t *testing.T) {
	tests := []struct {
		name  string
		start Point
		segs  []Segment
		code  errors.Code
	}{
		{"no segments", Pt(0, 0), nil, errors.ErrCodeInsufficientGeometry},
		{"NaN start", Pt(math.NaN(), 0), []Segment{LineTo(Pt(1, 1))}, errors.ErrCodeInvalidGeometry},
		{"NaN endpoint", Pt(0, 0), []Segment{LineTo(Pt(math.NaN(), 1))}, errors.ErrCodeInvalidGeometry},
		{
			"NaN control point",
			Pt(0, 0),
			[]Segment{CurveTo(Pt(1, 1), Pt(math.NaN(), 0), Pt(1, 0))},
			errors.ErrCodeInvalidGeometry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPath(tt.start, tt.segs)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestPathTransform(t *testing.T) {
	p, _ := NewPath(Pt(0, 0), []Segment{
		CurveTo(Pt(2, 0), Pt(0.5, 1), Pt(1.5, 1)),
	})
	if err := Shift(p, 1, 1); err != nil {
		t.Fatalf("Shift() error = %v", err)
	}

	// Control points move together with the endpoints.
	expected := `\draw (1, 1) .. controls (1.5, 2) and (2.5, 2) .. (3, 1);`
	if got := p.Code(); got != expected {
		t.Errorf("Code() = %q, want %q", got, expected)
	}
}

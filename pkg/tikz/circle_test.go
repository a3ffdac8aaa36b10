package tikz

import (
	"math"
	"testing"

	"github.com/saltsmart/tikzgo/pkg/errors"
)

func TestCircleCode(t *testing.T) {
	tests := []struct {
		name     string
		center   Point
		radius   float64
		options  []string
		expected string
	}{
		{
			name:     "with fill option",
			center:   Pt(0, 0),
			radius:   3,
			options:  []string{"fill=red"},
			expected: `\draw[fill=red] (0, 0) circle (3cm);`,
		},
		{
			name:     "fractional radius",
			center:   Pt(1, 1),
			radius:   0.5,
			expected: `\draw (1, 1) circle (0.5cm);`,
		},
		{
			name:     "zero radius",
			center:   Pt(-1, 2),
			radius:   0,
			expected: `\draw (-1, 2) circle (0cm);`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCircle(tt.center, tt.radius, tt.options...)
			if err != nil {
				t.Fatalf("NewCircle() error = %v", err)
			}
			if got := c.Code(); got != tt.expected {
				t.Errorf("Code() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNewCircleValidation(t *testing.T) {
	tests := []struct {
		name   string
		center Point
		radius float64
	}{
		{"negative radius", Pt(0, 0), -1},
		{"NaN radius", Pt(0, 0), math.NaN()},
		{"inf radius", Pt(0, 0), math.Inf(1)},
		{"NaN center", Pt(math.NaN(), 0), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCircle(tt.center, tt.radius)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, errors.ErrCodeInvalidGeometry) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidGeometry)
			}
		})
	}
}

func TestCircleAnchors(t *testing.T) {
	c, err := NewCircle(Pt(1, 2), 3)
	if err != nil {
		t.Fatalf("NewCircle() error = %v", err)
	}

	if got := c.North(); got != Pt(1, 5) {
		t.Errorf("North = %v, want %v", got, Pt(1, 5))
	}
	if got := c.South(); got != Pt(1, -1) {
		t.Errorf("South = %v, want %v", got, Pt(1, -1))
	}
	if got := c.East(); got != Pt(4, 2) {
		t.Errorf("East = %v, want %v", got, Pt(4, 2))
	}
	if got := c.West(); got != Pt(-2, 2) {
		t.Errorf("West = %v, want %v", got, Pt(-2, 2))
	}
}

func TestCircleTransform(t *testing.T) {
	t.Run("scale resizes radius", func(t *testing.T) {
		c, _ := NewCircle(Pt(1, 1), 0.5)
		if err := Scale(c, 2); err != nil {
			t.Fatalf("Scale() error = %v", err)
		}
		if got := c.Code(); got != `\draw (2, 2) circle (1cm);` {
			t.Errorf("Code() = %q", got)
		}
	})

	t.Run("shift keeps radius", func(t *testing.T) {
		c, _ := NewCircle(Pt(0, 0), 2)
		if err := Shift(c, 3, 4); err != nil {
			t.Fatalf("Shift() error = %v", err)
		}
		if got := c.Code(); got != `\draw (3, 4) circle (2cm);` {
			t.Errorf("Code() = %q", got)
		}
	})

	t.Run("rotation keeps radius", func(t *testing.T) {
		c, _ := NewCircle(Pt(1, 0), 2)
		if err := Rotate(c, 90); err != nil {
			t.Fatalf("Rotate() error = %v", err)
		}
		if got := c.Code(); got != `\draw (0, 1) circle (2cm);` {
			t.Errorf("Code() = %q", got)
		}
	})

	t.Run("reflection keeps radius positive", func(t *testing.T) {
		c, _ := NewCircle(Pt(1, 1), 2)
		if err := Scale(c, -1); err != nil {
			t.Fatalf("Scale() error = %v", err)
		}
		if got := c.Code(); got != `\draw (-1, -1) circle (2cm);` {
			t.Errorf("Code() = %q", got)
		}
	})
}

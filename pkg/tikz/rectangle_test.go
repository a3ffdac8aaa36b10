package tikz

import (
	"math"
	"testing"

	"github.com/saltsmart/tikzgo/pkg/errors"
)

func TestRectangleCode(t *testing.T) {
	tests := []struct {
		name     string
		from, to Point
		options  []string
		expected string
	}{
		{
			name:     "with color",
			from:     Pt(2, 2),
			to:       Pt(3, 4),
			options:  []string{"Blue"},
			expected: `\draw[Blue] (2, 2) rectangle (3, 4);`,
		},
		{
			name:     "plain",
			from:     Pt(0, 0),
			to:       Pt(1, 1),
			expected: `\draw (0, 0) rectangle (1, 1);`,
		},
		{
			name:     "reversed corners render as given",
			from:     Pt(3, 4),
			to:       Pt(2, 2),
			expected: `\draw (3, 4) rectangle (2, 2);`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRectangle(tt.from, tt.to, tt.options...)
			if err != nil {
				t.Fatalf("NewRectangle() error = %v", err)
			}
			if got := r.Code(); got != tt.expected {
				t.Errorf("Code() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRectangleAnchors(t *testing.T) {
	for _, corners := range []struct {
		name     string
		from, to Point
	}{
		{"ascending", Pt(2, 2), Pt(3, 4)},
		{"descending", Pt(3, 4), Pt(2, 2)},
	} {
		t.Run(corners.name, func(t *testing.T) {
			r, err := NewRectangle(corners.from, corners.to)
			if err != nil {
				t.Fatalf("NewRectangle() error = %v", err)
			}

			if got := r.Width(); got != 1 {
				t.Errorf("Width = %v, want 1", got)
			}
			if got := r.Height(); got != 2 {
				t.Errorf("Height = %v, want 2", got)
			}
			if got := r.Center(); got != Pt(2.5, 3) {
				t.Errorf("Center = %v, want %v", got, Pt(2.5, 3))
			}
			if got := r.North(); got != Pt(2.5, 4) {
				t.Errorf("North = %v, want %v", got, Pt(2.5, 4))
			}
			if got := r.South(); got != Pt(2.5, 2) {
				t.Errorf("South = %v, want %v", got, Pt(2.5, 2))
			}
			if got := r.East(); got != Pt(3, 3) {
				t.Errorf("East = %v, want %v", got, Pt(3, 3))
			}
			if got := r.West(); got != Pt(2, 3) {
				t.Errorf("West = %v, want %v", got, Pt(2, 3))
			}
		})
	}
}

func TestRectangleTransform(t *testing.T) {
	t.Run("shift", func(t *testing.T) {
		r, _ := NewRectangle(Pt(2, 2), Pt(3, 4))
		if err := Shift(r, 1, 1); err != nil {
			t.Fatalf("Shift() error = %v", err)
		}
		if got := r.Code(); got != `\draw (3, 3) rectangle (4, 5);` {
			t.Errorf("Code() = %q", got)
		}
	})

	t.Run("scale about origin", func(t *testing.T) {
		r, _ := NewRectangle(Pt(2, 2), Pt(3, 4))
		if err := Scale(r, 2); err != nil {
			t.Fatalf("Scale() error = %v", err)
		}
		if got := r.Code(); got != `\draw (4, 4) rectangle (6, 8);` {
			t.Errorf("Code() = %q", got)
		}
	})

	t.Run("rotation moves corners", func(t *testing.T) {
		r, _ := NewRectangle(Pt(1, 0), Pt(2, 1))
		if err := Rotate(r, 90); err != nil {
			t.Fatalf("Rotate() error = %v", err)
		}
		if got := r.Code(); got != `\draw (0, 1) rectangle (-1, 2);` {
			t.Errorf("Code() = %q", got)
		}
	})
}

func TestNewRectangleValidation(t *testing.T) {
	_, err := NewRectangle(Pt(math.NaN(), 0), Pt(1, 1))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, errors.ErrCodeInvalidGeometry) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidGeometry)
	}
}

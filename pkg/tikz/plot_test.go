package tikz

import (
	"testing"

	"github.com/saltsmart/tikzgo/pkg/errors"
)

func TestPlotCode(t *testing.T) {
	tests := []struct {
		name     string
		points   []Point
		plotOpts string
		options  []string
		action   Action
		expected string
	}{
		{
			name:     "smooth",
			points:   []Point{Pt(1, 1), Pt(2, 2), Pt(3, 1)},
			plotOpts: "smooth",
			expected: `\draw plot[smooth] coordinates {(1, 1) (2, 2) (3, 1)};`,
		},
		{
			name:     "no plot options",
			points:   []Point{Pt(0, 0), Pt(1, 1)},
			expected: `\draw plot coordinates {(0, 0) (1, 1)};`,
		},
		{
			name:     "plot and drawing options",
			points:   []Point{Pt(0, 0), Pt(1, 2)},
			plotOpts: "mark=*, smooth",
			options:  []string{"red"},
			expected: `\draw[red] plot[mark=*, smooth] coordinates {(0, 0) (1, 2)};`,
		},
		{
			name:     "fill action",
			points:   []Point{Pt(0, 0), Pt(1, 0), Pt(0.5, 1)},
			action:   ActionFill,
			expected: `\fill plot coordinates {(0, 0) (1, 0) (0.5, 1)};`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPlot(tt.points, tt.plotOpts, tt.options...)
			if err != nil {
				t.Fatalf("NewPlot() error = %v", err)
			}
			if tt.action != "" {
				p.Action = tt.action
			}
			if got := p.Code(); got != tt.expected {
				t.Errorf("Code() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNewPlotValidation(t *testing.T) {
	_, err := NewPlot([]Point{Pt(0, 0)}, "")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, errors.ErrCodeInsufficientGeometry) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInsufficientGeometry)
	}
}

func TestPlotTransform(t *testing.T) {
	p, _ := NewPlot([]Point{Pt(1, 1), Pt(2, 2)}, "smooth")
	if err := Shift(p, -1, -1); err != nil {
		t.Fatalf("Shift() error = %v", err)
	}
	if got := p.Code(); got != `\draw plot[smooth] coordinates {(0, 0) (1, 1)};` {
		t.Errorf("Code() = %q", got)
	}
}

package tikz

import (
	"math"
	"testing"

	"github.com/saltsmart/tikzgo/pkg/errors"
)

func TestNodeCode(t *testing.T) {
	tests := []struct {
		name     string
		at       Point
		text     string
		options  []string
		expected string
	}{
		{
			name:     "with position option",
			at:       Pt(0, 0),
			text:     "origin",
			options:  []string{"above"},
			expected: `\node[above] at (0, 0) {origin};`,
		},
		{
			name:     "plain",
			at:       Pt(1, 2),
			text:     "label",
			expected: `\node at (1, 2) {label};`,
		},
		{
			name:     "math text passes through",
			at:       Pt(1, 0.5),
			text:     `$\alpha$`,
			expected: `\node at (1, 0.5) {$\alpha$};`,
		},
		{
			name:     "empty text",
			at:       Pt(0, 0),
			text:     "",
			expected: `\node at (0, 0) {};`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := NewNode(tt.at, tt.text, tt.options...)
			if err != nil {
				t.Fatalf("NewNode() error = %v", err)
			}
			if got := n.Code(); got != tt.expected {
				t.Errorf("Code() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNodeTransform(t *testing.T) {
	n, _ := NewNode(Pt(1, 1), "label")
	if err := Shift(n, 2, 3); err != nil {
		t.Fatalf("Shift() error = %v", err)
	}
	if got := n.Code(); got != `\node at (3, 4) {label};` {
		t.Errorf("Code() = %q", got)
	}

	// Scaling moves the anchor but never the text size.
	if err := Scale(n, 2); err != nil {
		t.Fatalf("Scale() error = %v", err)
	}
	if got := n.Code(); got != `\node at (6, 8) {label};` {
		t.Errorf("Code() = %q", got)
	}
}

func TestNewNodeValidation(t *testing.T) {
	_, err := NewNode(Pt(0, math.NaN()), "label")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, errors.ErrCodeInvalidGeometry) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidGeometry)
	}
}

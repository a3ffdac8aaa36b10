package tikz

import (
	"reflect"
	"testing"
)

func TestOptionsString(t *testing.T) {
	tests := []struct {
		name     string
		opts     *Options
		expected string
	}{
		{"empty", NewOptions(), ""},
		{"single", NewOptions("thick"), "[thick]"},
		{"multiple", NewOptions("thick", "blue"), "[thick, blue]"},
		{"comma separated input", NewOptions("thick, blue"), "[thick, blue]"},
		{"key value", NewOptions("fill=red", "draw opacity=0.5"), "[fill=red, draw opacity=0.5]"},
		{"whitespace trimmed", NewOptions("  thick  ", " blue"), "[thick, blue]"},
		{"empty tokens dropped", NewOptions("", "thick", " , "), "[thick]"},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestOptionsDuplicates(t *testing.T) {
	tests := []struct {
		name     string
		opts     *Options
		expected []string
	}{
		{
			name:     "flag token added once",
			opts:     NewOptions("thick", "thick"),
			expected: []string{"thick"},
		},
		{
			name:     "key replaced in place",
			opts:     NewOptions("color=red", "thick", "color=blue"),
			expected: []string{"color=blue", "thick"},
		},
		{
			name:     "spaced key matches",
			opts:     NewOptions("draw opacity=0.2", "draw opacity = 0.8"),
			expected: []string{"draw opacity = 0.8"},
		},
		{
			name:     "different keys coexist",
			opts:     NewOptions("fill=red", "draw=blue"),
			expected: []string{"fill=red", "draw=blue"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.Tokens(); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Tokens() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestOptionsBracedValues(t *testing.T) {
	o := NewOptions("dash pattern={on 2pt off 1pt}, thick")

	expected := []string{"dash pattern={on 2pt off 1pt}", "thick"}
	if got := o.Tokens(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Tokens() = %v, want %v", got, expected)
	}

	// The key before the braces still drives replacement.
	o.Add("dash pattern={on 4pt off 4pt}")
	expected = []string{"dash pattern={on 4pt off 4pt}", "thick"}
	if got := o.Tokens(); !reflect.DeepEqual(got, expected) {
		t.Errorf("after Add, Tokens() = %v, want %v", got, expected)
	}
}

func TestOptionsMerge(t *testing.T) {
	a := NewOptions("thick", "color=red")
	b := NewOptions("color=blue", "dashed")

	a.Merge(b)

	expected := []string{"thick", "color=blue", "dashed"}
	if got := a.Tokens(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Tokens() = %v, want %v", got, expected)
	}

	// Merging nil is a no-op.
	a.Merge(nil)
	if got := a.Tokens(); !reflect.DeepEqual(got, expected) {
		t.Errorf("after nil merge, Tokens() = %v, want %v", got, expected)
	}
}

func TestOptionsClone(t *testing.T) {
	a := NewOptions("thick")
	b := a.Clone()
	b.Add("blue")

	if got := a.String(); got != "[thick]" {
		t.Errorf("original mutated by clone: %q", got)
	}
	if got := b.String(); got != "[thick, blue]" {
		t.Errorf("clone = %q, want %q", got, "[thick, blue]")
	}
}

func TestOptionsLen(t *testing.T) {
	if got := NewOptions("a", "b").Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
	var o *Options
	if got := o.Len(); got != 0 {
		t.Errorf("nil Len() = %d, want 0", got)
	}
}

func TestParseOptions(t *testing.T) {
	o := ParseOptions("thick, fill=red, dash pattern={on 2pt off 1pt}")
	expected := []string{"thick", "fill=red", "dash pattern={on 2pt off 1pt}"}
	if got := o.Tokens(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Tokens() = %v, want %v", got, expected)
	}
}

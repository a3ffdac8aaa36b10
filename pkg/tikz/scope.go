package tikz

import (
	"strings"

	"github.com/saltsmart/tikzgo/pkg/errors"
)

// Scope is a group of drawables rendered inside a scope environment:
//
//	\begin{scope}[opacity=0.5]
//	    \draw (0, 0) -- (1, 1);
//	\end{scope}
//
// Scope options apply to everything inside, scopes nest freely, and a
// Scope is itself a Drawable, so transforming one transforms its
// whole subtree.
type Scope struct {
	canvas
	options *Options
}

// NewScope builds an empty scope with the given options.
func NewScope(options ...string) *Scope {
	return &Scope{options: NewOptions(options...)}
}

// Options returns the scope's option set for further modification.
func (s *Scope) Options() *Options {
	return s.options
}

// Clip appends a clip statement restricting everything drawn after it
// in this scope to the outline of shape. The shape must be a path
// drawable (line, circle, ellipse, arc, rectangle, plot, path);
// nodes and nested scopes have no standalone outline and are
// rejected.
func (s *Scope) Clip(shape Drawable) (*Clip, error) {
	cl, err := NewClip(shape)
	if err != nil {
		return nil, err
	}
	s.Add(cl)
	return cl, nil
}

// Code renders the scope environment with its statements indented.
func (s *Scope) Code() string {
	var b strings.Builder
	b.WriteString("\\begin{scope}")
	b.WriteString(s.options.String())
	b.WriteByte('\n')
	s.renderBody(&b)
	b.WriteString("\\end{scope}")
	return b.String()
}

// Transform applies t to every drawable in the scope.
func (s *Scope) Transform(t Transform) {
	s.canvas.Transform(t)
}

// Clip is a clipping statement wrapping another drawable's outline:
//
//	\clip (0, 0) circle (1cm);
//
// The wrapped shape is shared, not copied: transforming the shape
// afterwards moves the clip region with it.
type Clip struct {
	Shape Drawable
}

// NewClip wraps a path drawable in a clip statement.
func NewClip(shape Drawable) (*Clip, error) {
	if shape == nil {
		return nil, errors.New(errors.ErrCodeInvalidGeometry, "clip shape cannot be nil")
	}
	if _, ok := shape.(commander); !ok {
		return nil, errors.New(errors.ErrCodeUnsupported, "clip requires a path drawable, got %T", shape)
	}
	return &Clip{Shape: shape}, nil
}

// Code returns the clip statement.
func (c *Clip) Code() string {
	return "\\clip " + c.Shape.(commander).command() + ";"
}

// Transform rewrites the clipped shape through t.
func (c *Clip) Transform(t Transform) {
	c.Shape.Transform(t)
}

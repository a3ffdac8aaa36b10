package tikz

import (
	"fmt"
	"strings"

	"github.com/saltsmart/tikzgo/pkg/errors"
)

// Picture is the top-level drawing container. It owns an ordered
// sequence of drawables and renders them as a complete tikzpicture
// environment:
//
//	\begin{tikzpicture}[scale=2]
//	    \draw[thick] (0, 0) -- (1, 1);
//	\end{tikzpicture}
//
// Rendering is pure: Code never mutates the picture, and two renders
// of an unmodified picture produce byte-identical output. A Picture
// is not safe for concurrent mutation; callers that share one across
// goroutines must serialize access themselves.
type Picture struct {
	canvas
	options  *Options
	preamble []preambleEntry
}

// preambleEntry is a keyed block emitted before the tikzpicture
// environment. Entries with an end part close in reverse order after
// it, so nested wrappers such as center pair up correctly.
type preambleEntry struct {
	key   string
	begin string
	end   string
}

// NewPicture builds an empty picture with the given environment
// options.
func NewPicture(options ...string) *Picture {
	return &Picture{options: NewOptions(options...)}
}

// Options returns the picture's environment option set for further
// modification.
func (p *Picture) Options() *Options {
	return p.options
}

// SetScale sets the scale option on the environment. Calling it again
// replaces the previous value.
func (p *Picture) SetScale(factor float64) error {
	if err := errors.ValidateFinite("picture scale", factor); err != nil {
		return err
	}
	p.options.Add(fmt.Sprintf("scale=%s", formatNum(factor)))
	return nil
}

// Center wraps the rendered environment in a center environment so
// the figure centers on the page.
func (p *Picture) Center() {
	p.upsertPreamble("center", "\\begin{center}\n", "\\end{center}\n")
}

// DefineStyle registers a reusable TikZ style emitted as a \tikzset
// line before the environment:
//
//	\tikzset{helper lines/.style={thin, dashed}}
//
// Defining the same name again replaces the rules while keeping the
// original position.
func (p *Picture) DefineStyle(name, rules string) error {
	if err := errors.ValidateStyleName(name); err != nil {
		return err
	}
	p.upsertPreamble("style:"+name, "\\tikzset{"+name+"/.style={"+rules+"}}\n", "")
	return nil
}

// UseAsBoundingBox fixes the picture's bounding box to the rectangle
// between the two corners, regardless of what else is drawn. The
// statement is appended like any drawable, so it participates in
// transforms.
func (p *Picture) UseAsBoundingBox(from, to Point, options ...string) (*Rectangle, error) {
	r, err := NewRectangle(from, to, options...)
	if err != nil {
		return nil, err
	}
	r.Action = ActionBoundingBox
	p.Add(r)
	return r, nil
}

// Code renders the complete environment, including preamble wrappers,
// with a trailing newline.
func (p *Picture) Code() string {
	var b strings.Builder
	for _, e := range p.preamble {
		b.WriteString(e.begin)
	}
	b.WriteString("\\begin{tikzpicture}")
	b.WriteString(p.options.String())
	b.WriteByte('\n')
	p.renderBody(&b)
	b.WriteString("\\end{tikzpicture}\n")
	for i := len(p.preamble) - 1; i >= 0; i-- {
		if p.preamble[i].end != "" {
			b.WriteString(p.preamble[i].end)
		}
	}
	return b.String()
}

// Transform applies t to every drawable in the picture.
func (p *Picture) Transform(t Transform) {
	p.canvas.Transform(t)
}

func (p *Picture) upsertPreamble(key, begin, end string) {
	for i, e := range p.preamble {
		if e.key == key {
			p.preamble[i] = preambleEntry{key: key, begin: begin, end: end}
			return
		}
	}
	p.preamble = append(p.preamble, preambleEntry{key: key, begin: begin, end: end})
}

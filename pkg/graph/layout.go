package graph

import (
	"bufio"
	"bytes"
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/saltsmart/tikzgo/pkg/errors"
)

// formatPlain selects Graphviz's line-oriented plain output, which
// carries node positions and edge splines in inches.
const formatPlain = graphviz.Format("plain")

// =============================================================================
// Layout - Computed Positions
// =============================================================================

// Layout holds the node positions and edge splines computed for a
// graph. Coordinates are in TikZ units with the origin at the bottom
// left, matching both Graphviz and TikZ conventions.
type Layout struct {
	Positions map[string]Position `json:"positions" bson:"positions"`
	Edges     []EdgeLayout        `json:"edges,omitempty" bson:"edges,omitempty"`
	Width     float64             `json:"width" bson:"width"`
	Height    float64             `json:"height" bson:"height"`
}

// Position is a node center.
type Position struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// EdgeLayout is the spline Graphviz routed for one edge.
type EdgeLayout struct {
	From   string     `json:"from" bson:"from"`
	To     string     `json:"to" bson:"to"`
	Points []Position `json:"points" bson:"points"`
}

// LayoutOptions tune the dot engine run.
type LayoutOptions struct {
	// Direction overrides the graph's declared direction.
	Direction string

	// Scale multiplies the inch coordinates Graphviz produces.
	// The default of 1 maps one layout inch to one TikZ unit.
	Scale float64

	// RankSep is the separation between ranks, in inches.
	RankSep float64

	// NodeSep is the separation between sibling nodes, in inches.
	NodeSep float64

	// FontSize is the DOT label font size, which drives node box sizes.
	FontSize int
}

func (o *LayoutOptions) setDefaults() {
	if o.Scale == 0 {
		o.Scale = 1
	}
	if o.RankSep == 0 {
		o.RankSep = 0.5
	}
	if o.NodeSep == 0 {
		o.NodeSep = 0.3
	}
	if o.FontSize == 0 {
		o.FontSize = 12
	}
}

// direction resolves the effective rankdir.
func (o *LayoutOptions) direction(g Graph) string {
	if o.Direction != "" {
		return o.Direction
	}
	if g.Direction != "" {
		return g.Direction
	}
	return DefaultDirection
}

// =============================================================================
// Layout Computation
// =============================================================================

// ComputeLayout runs the graph through the Graphviz dot engine and
// returns node positions and edge splines. The engine is embedded, so
// this works without a graphviz installation.
func ComputeLayout(ctx context.Context, g Graph, opts LayoutOptions) (Layout, error) {
	if err := g.Validate(); err != nil {
		return Layout{}, err
	}
	opts.setDefaults()
	if d := opts.direction(g); !ValidDirections[d] {
		return Layout{}, errors.New(errors.ErrCodeInvalidInput,
			"invalid direction: %q (must be one of: TB, LR, BT, RL)", d)
	}

	dot, ids := buildDOT(g, opts)

	gv, err := graphviz.New(ctx)
	if err != nil {
		return Layout{}, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return Layout{}, errors.Wrap(errors.ErrCodeInternal, err, "parse DOT")
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, formatPlain, &buf); err != nil {
		return Layout{}, errors.Wrap(errors.ErrCodeInternal, err, "lay out graph")
	}

	return parsePlain(buf.Bytes(), ids, opts.Scale)
}

// parsePlain decodes Graphviz plain output:
//
//	graph scale width height
//	node name x y width height label style shape color fillcolor
//	edge tail head n x1 y1 .. xn yn [label xl yl] style color
//	stop
//
// Only the leading fields are consumed, so labels never need quote
// handling (the synthetic names contain no spaces).
func parsePlain(data []byte, ids map[string]string, scale float64) (Layout, error) {
	l := Layout{Positions: make(map[string]Position, len(ids))}

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "graph":
			if len(fields) < 4 {
				return Layout{}, badPlainLine(sc.Text())
			}
			w, errW := strconv.ParseFloat(fields[2], 64)
			h, errH := strconv.ParseFloat(fields[3], 64)
			if errW != nil || errH != nil {
				return Layout{}, badPlainLine(sc.Text())
			}
			l.Width = round4(w * scale)
			l.Height = round4(h * scale)

		case "node":
			if len(fields) < 4 {
				return Layout{}, badPlainLine(sc.Text())
			}
			id, ok := ids[fields[1]]
			if !ok {
				return Layout{}, errors.New(errors.ErrCodeInternal,
					"layout produced unknown node %q", fields[1])
			}
			x, errX := strconv.ParseFloat(fields[2], 64)
			y, errY := strconv.ParseFloat(fields[3], 64)
			if errX != nil || errY != nil {
				return Layout{}, badPlainLine(sc.Text())
			}
			l.Positions[id] = Position{X: round4(x * scale), Y: round4(y * scale)}

		case "edge":
			if len(fields) < 4 {
				return Layout{}, badPlainLine(sc.Text())
			}
			n, err := strconv.Atoi(fields[3])
			if err != nil || len(fields) < 4+2*n {
				return Layout{}, badPlainLine(sc.Text())
			}
			points := make([]Position, 0, n)
			for i := 0; i < n; i++ {
				x, errX := strconv.ParseFloat(fields[4+2*i], 64)
				y, errY := strconv.ParseFloat(fields[5+2*i], 64)
				if errX != nil || errY != nil {
					return Layout{}, badPlainLine(sc.Text())
				}
				points = append(points, Position{X: round4(x * scale), Y: round4(y * scale)})
			}
			l.Edges = append(l.Edges, EdgeLayout{
				From:   ids[fields[1]],
				To:     ids[fields[2]],
				Points: points,
			})

		case "stop":
			return l, nil
		}
	}
	return l, nil
}

func badPlainLine(line string) error {
	return errors.New(errors.ErrCodeInternal, "malformed layout line: %q", line)
}

// round4 keeps coordinates readable after scaling.
func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}

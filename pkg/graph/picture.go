package graph

import (
	"cmp"
	"slices"

	"github.com/saltsmart/tikzgo/pkg/errors"
	"github.com/saltsmart/tikzgo/pkg/tikz"
)

// Default styling for emitted pictures. Nodes are filled so they mask
// the edge splines drawn underneath them.
const (
	DefaultNodeOptions = "draw, rounded corners, fill=white"
	DefaultEdgeOptions = "->"
)

// PictureOptions configure the graph to TikZ conversion.
type PictureOptions struct {
	// NodeOptions style nodes that carry no options of their own.
	NodeOptions string

	// EdgeOptions style edges that carry no options of their own.
	EdgeOptions string
}

// ToPicture converts a laid-out graph into a TikZ picture. Edges are
// emitted first as smooth plots along their Graphviz splines, then
// nodes sorted by ID, so node boxes paint over the spline endpoints.
// The same graph and layout always produce identical code.
func ToPicture(g Graph, l Layout, opts PictureOptions) (*tikz.Picture, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if opts.NodeOptions == "" {
		opts.NodeOptions = DefaultNodeOptions
	}
	if opts.EdgeOptions == "" {
		opts.EdgeOptions = DefaultEdgeOptions
	}

	pic := tikz.NewPicture()

	splines := splineQueues(l)
	for _, e := range g.Edges {
		edgeOpts := e.Options
		if edgeOpts == "" {
			edgeOpts = opts.EdgeOptions
		}

		points := popSpline(splines, e.From, e.To)
		if len(points) >= 2 {
			if _, err := pic.Plot(points, "smooth", edgeOpts); err != nil {
				return nil, err
			}
			continue
		}

		// No spline for this edge: fall back to a straight segment
		// between the node centers.
		from, okFrom := l.Positions[e.From]
		to, okTo := l.Positions[e.To]
		if !okFrom || !okTo {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"layout has no position for edge %s -> %s", e.From, e.To)
		}
		line := []tikz.Point{tikz.Pt(from.X, from.Y), tikz.Pt(to.X, to.Y)}
		if _, err := pic.Line(line, edgeOpts); err != nil {
			return nil, err
		}
	}

	nodes := slices.Clone(g.Nodes)
	slices.SortFunc(nodes, func(a, b Node) int { return cmp.Compare(a.ID, b.ID) })
	for _, n := range nodes {
		pos, ok := l.Positions[n.ID]
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"layout has no position for node %q", n.ID)
		}
		nodeOpts := n.Options
		if nodeOpts == "" {
			nodeOpts = opts.NodeOptions
		}
		if _, err := pic.Node(tikz.Pt(pos.X, pos.Y), n.DisplayLabel(), nodeOpts); err != nil {
			return nil, err
		}
	}

	return pic, nil
}

// splineQueues indexes edge splines by endpoint pair, preserving order
// for parallel edges.
func splineQueues(l Layout) map[[2]string][][]tikz.Point {
	queues := make(map[[2]string][][]tikz.Point, len(l.Edges))
	for _, e := range l.Edges {
		key := [2]string{e.From, e.To}
		points := make([]tikz.Point, len(e.Points))
		for i, p := range e.Points {
			points[i] = tikz.Pt(p.X, p.Y)
		}
		queues[key] = append(queues[key], points)
	}
	return queues
}

func popSpline(queues map[[2]string][][]tikz.Point, from, to string) []tikz.Point {
	key := [2]string{from, to}
	q := queues[key]
	if len(q) == 0 {
		return nil
	}
	queues[key] = q[1:]
	return q[0]
}

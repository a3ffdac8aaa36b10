package graph

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"
)

// ToDOT converts a graph to Graphviz DOT format. The output is what
// [ComputeLayout] feeds to the dot engine; it is exported so callers
// can inspect or tune layouts with standalone Graphviz tooling.
func ToDOT(g Graph, opts LayoutOptions) string {
	dot, _ := buildDOT(g, opts)
	return dot
}

// buildDOT emits DOT with synthetic node identifiers (n0, n1, ...) so
// the plain-format layout output can be parsed with a field split, no
// matter what characters the real node IDs contain. The returned map
// translates synthetic identifiers back to node IDs.
//
// Nodes are emitted sorted by ID, which makes the DOT, and with it the
// computed layout, deterministic for a given graph.
func buildDOT(g Graph, opts LayoutOptions) (string, map[string]string) {
	opts.setDefaults()

	nodes := slices.Clone(g.Nodes)
	slices.SortFunc(nodes, func(a, b Node) int { return cmp.Compare(a.ID, b.ID) })

	synth := make(map[string]string, len(nodes)) // node ID → synthetic
	ids := make(map[string]string, len(nodes))   // synthetic → node ID

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", opts.direction(g))
	fmt.Fprintf(&buf, "  node [shape=box, fontsize=%d, margin=\"0.15,0.1\"];\n", opts.FontSize)
	fmt.Fprintf(&buf, "  ranksep=%.2f;\n", opts.RankSep)
	fmt.Fprintf(&buf, "  nodesep=%.2f;\n", opts.NodeSep)
	buf.WriteString("\n")

	for i, n := range nodes {
		id := fmt.Sprintf("n%d", i)
		synth[n.ID] = id
		ids[id] = n.ID
		fmt.Fprintf(&buf, "  %s [label=%q];\n", id, n.DisplayLabel())
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		if e.Label != "" {
			fmt.Fprintf(&buf, "  %s -> %s [label=%q];\n", synth[e.From], synth[e.To], e.Label)
		} else {
			fmt.Fprintf(&buf, "  %s -> %s;\n", synth[e.From], synth[e.To])
		}
	}

	buf.WriteString("}\n")
	return buf.String(), ids
}

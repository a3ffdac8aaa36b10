// Package graph turns abstract node-link descriptions into TikZ pictures.
//
// This package defines the wire format for graph data, used for JSON
// files, document storage, and the graph CLI command, plus the bridge
// that converts a laid-out graph into a [tikz.Picture].
//
// # Architecture
//
// The package sits between serialized graph descriptions and the
// drawing core:
//
//   - [Graph], [Node], [Edge]: Serialization types (this package)
//   - [Layout]: Node positions and edge splines computed by Graphviz
//   - pkg/tikz.Picture: The drawing the bridge emits
//
// Layout runs the Graphviz dot engine through goccy/go-graphviz, so no
// external graphviz installation is needed. [ToPicture] then emits one
// TikZ node per graph node and one plot per edge spline.
//
// # Graph Serialization
//
// Graphs use a simple node-link JSON format:
//
//	{
//	  "direction": "TB",
//	  "nodes": [{"id": "app"}, {"id": "lib", "label": "library"}],
//	  "edges": [{"from": "app", "to": "lib"}]
//	}
//
// Common operations:
//
//	g, _ := graph.UnmarshalGraph(data)            // []byte → Graph
//	l, _ := graph.ComputeLayout(ctx, g, opts)     // Graph → positions
//	pic, _ := graph.ToPicture(g, l, popts)        // positions → TikZ
//	fmt.Print(pic.Code())
//
// # Determinism
//
// Everything downstream of layout is deterministic: nodes are emitted
// sorted by ID and edges in declaration order, so the same graph and
// layout always produce byte-identical TikZ code. Layout itself is as
// deterministic as the dot engine, which is stable for a fixed input.
//
// # Concurrency
//
// All functions are safe for concurrent reads but not concurrent writes.
//
// [tikz.Picture]: github.com/saltsmart/tikzgo/pkg/tikz.Picture
package graph

package graph_test

import (
	"fmt"

	"github.com/saltsmart/tikzgo/pkg/graph"
)

// ExampleToPicture renders a two node dependency graph with a fixed
// layout.
func ExampleToPicture() {
	g := graph.Graph{
		Nodes: []graph.Node{{ID: "app"}, {ID: "lib"}},
		Edges: []graph.Edge{{From: "app", To: "lib"}},
	}
	l := graph.Layout{
		Positions: map[string]graph.Position{
			"app": {X: 0, Y: 1.5},
			"lib": {X: 0, Y: 0},
		},
	}

	pic, err := graph.ToPicture(g, l, graph.PictureOptions{})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Print(pic.Code())
	// Output:
	// \begin{tikzpicture}
	//     \draw[->] (0, 1.5) -- (0, 0);
	//     \node[draw, rounded corners, fill=white] at (0, 1.5) {app};
	//     \node[draw, rounded corners, fill=white] at (0, 0) {lib};
	// \end{tikzpicture}
}

// ExampleMarshalGraph shows the on disk JSON form.
func ExampleMarshalGraph() {
	g := graph.Graph{
		Direction: graph.DirectionLR,
		Nodes: []graph.Node{
			{ID: "server"},
			{ID: "database", Label: "postgres"},
		},
		Edges: []graph.Edge{{From: "server", To: "database"}},
	}

	data, err := graph.MarshalGraph(g)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Print(string(data))
	// Output:
	// {
	//   "direction": "LR",
	//   "nodes": [
	//     {
	//       "id": "server"
	//     },
	//     {
	//       "id": "database",
	//       "label": "postgres"
	//     }
	//   ],
	//   "edges": [
	//     {
	//       "from": "server",
	//       "to": "database"
	//     }
	//   ]
	// }
}

package graph

import (
	"encoding/json"

	"github.com/saltsmart/tikzgo/pkg/errors"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Layout directions, matching Graphviz rankdir values.
const (
	DirectionTB = "TB"
	DirectionLR = "LR"
	DirectionBT = "BT"
	DirectionRL = "RL"
)

// DefaultDirection is used when a graph does not declare one.
const DefaultDirection = DirectionTB

// ValidDirections is the set of supported layout directions.
var ValidDirections = map[string]bool{
	DirectionTB: true,
	DirectionLR: true,
	DirectionBT: true,
	DirectionRL: true,
}

// =============================================================================
// Graph - Node-Link Serialization
// =============================================================================

// Graph is the canonical serialization format for node-link drawings.
// Used for JSON files, document storage, and the graph CLI command.
//
// The format is human-readable and designed for round-trip fidelity:
// import → layout → export → re-import produces identical results.
type Graph struct {
	Name      string `json:"name,omitempty" bson:"name,omitempty"`
	Direction string `json:"direction,omitempty" bson:"direction,omitempty"`
	Nodes     []Node `json:"nodes" bson:"nodes"`
	Edges     []Edge `json:"edges" bson:"edges"`
}

// Node is a single vertex of the graph.
type Node struct {
	ID      string `json:"id" bson:"id"`
	Label   string `json:"label,omitempty" bson:"label,omitempty"`     // Display label (defaults to ID)
	Options string `json:"options,omitempty" bson:"options,omitempty"` // TikZ node options, comma separated
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n *Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Edge represents a directed edge between two nodes.
type Edge struct {
	From    string `json:"from" bson:"from"`
	To      string `json:"to" bson:"to"`
	Label   string `json:"label,omitempty" bson:"label,omitempty"`
	Options string `json:"options,omitempty" bson:"options,omitempty"` // TikZ draw options, comma separated
}

// =============================================================================
// Validation
// =============================================================================

// Validate checks structural constraints: node IDs must be unique and
// non-empty, edges must reference declared nodes, and the direction
// must be a Graphviz rankdir value when set.
func (g *Graph) Validate() error {
	if g.Direction != "" && !ValidDirections[g.Direction] {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid direction: %q (must be one of: TB, LR, BT, RL)", g.Direction)
	}
	if len(g.Nodes) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "graph has no nodes")
	}

	seen := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		if n.ID == "" {
			return errors.New(errors.ErrCodeInvalidInput, "node with empty ID")
		}
		if seen[n.ID] {
			return errors.New(errors.ErrCodeInvalidInput, "duplicate node ID %q", n.ID)
		}
		seen[n.ID] = true
	}

	for _, e := range g.Edges {
		if !seen[e.From] {
			return errors.New(errors.ErrCodeInvalidInput, "edge references unknown node %q", e.From)
		}
		if !seen[e.To] {
			return errors.New(errors.ErrCodeInvalidInput, "edge references unknown node %q", e.To)
		}
	}
	return nil
}

// =============================================================================
// Serialization API
// =============================================================================

// MarshalGraph serializes a Graph to pretty-printed JSON bytes.
func MarshalGraph(g Graph) ([]byte, error) {
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "marshal graph")
	}
	return append(data, '\n'), nil
}

// UnmarshalGraph deserializes and validates JSON bytes.
func UnmarshalGraph(data []byte) (Graph, error) {
	var g Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return Graph{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse graph JSON")
	}
	if err := g.Validate(); err != nil {
		return Graph{}, err
	}
	return g, nil
}

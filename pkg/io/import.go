package io

import (
	"fmt"
	"io"
	"os"

	"github.com/saltsmart/tikzgo/pkg/graph"
)

// ReadGraph decodes a JSON graph from r.
//
// The input must be a JSON object with "nodes" and "edges" arrays:
//
//	{
//	  "nodes": [{"id": "a"}, {"id": "b"}],
//	  "edges": [{"from": "a", "to": "b"}]
//	}
//
// The graph is validated on the way in, so an error is returned for
// malformed JSON, duplicate or empty node IDs, edges referencing
// unknown nodes, and invalid directions. ReadGraph does not close r.
func ReadGraph(r io.Reader) (graph.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return graph.Graph{}, fmt.Errorf("read: %w", err)
	}
	return graph.UnmarshalGraph(data)
}

// ImportGraph reads a JSON file at path and returns the decoded graph.
// It returns the same validation errors as [ReadGraph], wrapped with
// the file path for context.
func ImportGraph(path string) (graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return graph.Graph{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	g, err := ReadGraph(f)
	if err != nil {
		return graph.Graph{}, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// WriteGraph encodes g as pretty-printed JSON and writes it to w.
// The output can be re-imported with [ReadGraph] for round-trip
// processing.
func WriteGraph(g graph.Graph, w io.Writer) error {
	data, err := graph.MarshalGraph(g)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write graph: %w", err)
	}
	return nil
}

// ExportGraph writes g to a JSON file at path.
// This is a convenience wrapper around [WriteGraph] for file-based
// output.
func ExportGraph(g graph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteGraph(g, f)
}

// Package io reads and writes the project's file formats: TikZ code,
// standalone LaTeX documents, and graph JSON.
//
// # Overview
//
// Three format families are covered:
//
//   - Bare TikZ code: the tikzpicture environment alone, for pasting
//     into an existing LaTeX document ([WriteTex], [ExportTex])
//   - Standalone documents: the same code wrapped in a minimal
//     document that compiles on its own ([Document], [WriteDocument],
//     [ExportDocument])
//   - Graph JSON: the node-link serialization defined in [graph]
//     ([ReadGraph], [ImportGraph], [WriteGraph], [ExportGraph])
//
// Each family follows the same naming scheme: Read/Write operate on
// io.Reader/io.Writer, Import/Export are the file path conveniences.
//
// # Standalone Documents
//
// [Document] wraps rendered code in a standalone class document:
//
//	\documentclass[crop,tikz]{standalone}
//	\usetikzlibrary{arrows.meta}
//	\usetikzlibrary{calc}
//	\usetikzlibrary{shapes.geometric}
//	\begin{document}
//	\begin{tikzpicture}
//	    ...
//	\end{tikzpicture}
//	\end{document}
//
// Extra preamble lines (additional packages, tikzset blocks, macro
// definitions) slot in between the library imports and
// \begin{document}. The compile pipeline feeds this exact document to
// latexmk, so anything that compiles here compiles there.
//
// # Graph JSON
//
// The graph functions delegate to [graph.MarshalGraph] and
// [graph.UnmarshalGraph]; reading validates structure, so a graph
// obtained from [ReadGraph] is safe to lay out directly. Round trips
// are byte-stable: export an imported file and the bytes match.
//
// # Concurrency
//
// All functions are pure apart from the streams they are handed and
// are safe for concurrent use on distinct readers and writers.
//
// [graph]: github.com/saltsmart/tikzgo/pkg/graph
// [graph.MarshalGraph]: github.com/saltsmart/tikzgo/pkg/graph.MarshalGraph
// [graph.UnmarshalGraph]: github.com/saltsmart/tikzgo/pkg/graph.UnmarshalGraph
package io

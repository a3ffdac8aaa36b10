// Package tikz builds TikZ drawings programmatically.
//
// # Overview
//
// The package models a drawing as a [Picture] holding an ordered
// sequence of drawable objects: lines, circles, ellipses, arcs,
// rectangles, nodes, plots, freeform paths, and nested scopes. Each
// drawable knows how to render itself as one TikZ statement, and the
// picture assembles the statements into a tikzpicture environment in
// insertion order.
//
// The model is live: factory methods hand back concrete pointers, and
// objects can be repositioned, restyled, or transformed after they
// have been added. Rendering is deferred until [Picture.Code] is
// called and never mutates the model, so a picture can be rendered,
// adjusted, and rendered again.
//
// # Building a Drawing
//
//	pic := tikz.NewPicture()
//	line, _ := pic.Line([]tikz.Point{tikz.Pt(0, 0), tikz.Pt(1, 1)}, "thick", "blue")
//	pic.Circle(tikz.Pt(1, 1), 0.5, "fill=red")
//	tikz.Rotate(line, 45)
//	fmt.Print(pic.Code())
//
// # Options
//
// Styling goes through [Options], an ordered set of opaque TikZ
// option tokens. Tokens are passed through verbatim, so every TikZ
// key works without the package having to know it. See [Options] for
// the duplicate-handling rules.
//
// # Transforms
//
// [Transform] values compose affine operations: translation, uniform
// scaling, and rotation, each optionally about an arbitrary point.
// Transforms apply to single drawables, whole scopes, or whole
// pictures, rewriting coordinates in place. Compose with
// [Transform.Then] before applying when a sequence of operations
// should behave as one.
//
// Coordinates are rounded to a fixed precision whenever a transform
// recomputes them, so equal pictures render to equal bytes.
//
// # Concurrency
//
// Pictures and drawables are plain mutable values with no internal
// locking. Build and render a picture from one goroutine, or
// serialize access externally.
package tikz

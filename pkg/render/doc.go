// Package render groups the output side of logtrack. Every renderer consumes
// the same ordered []primitive.Primitive, so a scene drawn to SVG, PNG or the
// terminal shows identical geometry.
//
// # Sinks
//
// The [sink] subpackage writes files. SVG is emitted directly; PNG, PDF and
// EPS go through gonum/plot so they share one canvas implementation.
//
//	svg := sink.RenderSVG(prims, sink.WithStyle(styles.Paper{}))
//	png, err := sink.RenderPlot(prims, "png", sink.WithPlotSize(8*vg.Inch, 0))
//
// # Styles
//
// The [styles] subpackage maps primitive roles to colours and stroke widths.
// "dark" reproduces the on-screen palette; "paper" suits print.
//
// # Terminal
//
// The [terminal] subpackage draws primitives as braille cells, optionally
// rotated about the vertical axis for the animated preview.
//
// # Scene Graph
//
// The [scenegraph] subpackage shows how primitives group under the scene,
// the shared axis and each track, rendered with Graphviz.
//
// [sink]: https://pkg.go.dev/github.com/matzehuels/logtrack/pkg/render/sink
// [styles]: https://pkg.go.dev/github.com/matzehuels/logtrack/pkg/render/styles
// [terminal]: https://pkg.go.dev/github.com/matzehuels/logtrack/pkg/render/terminal
// [scenegraph]: https://pkg.go.dev/github.com/matzehuels/logtrack/pkg/render/scenegraph
package render

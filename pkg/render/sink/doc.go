// Package sink writes primitive lists to output formats.
//
// # Formats
//
//   - SVG: hand-written markup, see [RenderSVG]
//   - PNG, PDF, EPS: drawn onto a gonum/plot canvas, see [RenderPNG],
//     [RenderPDF] and [RenderEPS]
//   - JSON: the tagged primitive document from [primitive.Marshal]
//
// Every sink flips the y axis so that world -depth maps to screen down, and
// frames the drawing with [primitive.Bounds] plus a margin. Colours and
// stroke widths come from a [styles.Style]; geometry is never altered.
//
//	svg := sink.RenderSVG(scene.Primitives, sink.WithStyle(styles.Paper{}))
//	png, err := sink.RenderPNG(scene.Primitives, sink.WithPlotStyle(styles.Dark{}))
package sink

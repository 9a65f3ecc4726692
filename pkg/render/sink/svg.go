package sink

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/logtrack/pkg/core/primitive"
	"github.com/matzehuels/logtrack/pkg/render/styles"
)

const (
	// DefaultMargin is the world-space padding around the drawing.
	DefaultMargin = 10.0
	// DefaultPixelsPerUnit scales world units to SVG pixels when no size is set.
	DefaultPixelsPerUnit = 4.0
)

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style  styles.Style
	width  float64
	height float64
	margin float64
	title  string
}

func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }
func WithTitle(t string) SVGOption       { return func(r *svgRenderer) { r.title = t } }
func WithMargin(m float64) SVGOption     { return func(r *svgRenderer) { r.margin = m } }

// WithSize sets the pixel size of the SVG element. A zero dimension is
// derived from the other one and the drawing's aspect ratio.
func WithSize(width, height float64) SVGOption {
	return func(r *svgRenderer) { r.width, r.height = width, height }
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Dark{}, margin: DefaultMargin}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG renders prims as a standalone SVG document.
func RenderSVG(prims []primitive.Primitive, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	view := primitive.Bounds(prims).Pad(r.margin)
	w, h := pixelSize(view, r.width, r.height)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s" width="%.0f" height="%.0f">`+"\n",
		num(view.MinX), num(-view.MaxY), num(view.Width()), num(view.Height()), w, h)
	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", styles.EscapeXML(r.title))
	}
	fmt.Fprintf(&buf, `  <rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
		num(view.MinX), num(-view.MaxY), num(view.Width()), num(view.Height()), r.style.Background().Hex())
	fmt.Fprintf(&buf, `  <g font-family="%s">`+"\n", styles.EscapeXML(r.style.FontFamily()))

	for _, p := range prims {
		switch v := p.(type) {
		case primitive.Polyline:
			renderPolyline(&buf, r.style, v)
		case primitive.Label:
			renderLabel(&buf, r.style, v)
		}
	}

	buf.WriteString("  </g>\n</svg>\n")
	return buf.Bytes()
}

func pixelSize(view primitive.Rect, width, height float64) (float64, float64) {
	vw, vh := view.Width(), view.Height()
	switch {
	case vw <= 0 || vh <= 0:
		return math.Max(width, 1), math.Max(height, 1)
	case width > 0 && height > 0:
		return width, height
	case width > 0:
		return width, width * vh / vw
	case height > 0:
		return height * vw / vh, height
	}
	return vw * DefaultPixelsPerUnit, vh * DefaultPixelsPerUnit
}

func renderPolyline(buf *bytes.Buffer, s styles.Style, p primitive.Polyline) {
	pts := make([]string, len(p.Points))
	for i, pt := range p.Points {
		pts[i] = num(pt.X) + "," + num(-pt.Y)
	}
	fmt.Fprintf(buf, `    <polyline class="%s"%s points="%s" fill="none" stroke="%s" stroke-width="%s"/>`+"\n",
		p.Role, trackAttr(p.Track), strings.Join(pts, " "), s.Stroke(p).Hex(), num(s.LineWidth(p.Role)))
}

func renderLabel(buf *bytes.Buffer, s styles.Style, l primitive.Label) {
	x, y := num(l.Position.X), num(-l.Position.Y)
	var transform string
	if l.Rotation != 0 {
		// world rotation is counter-clockwise with y up; SVG rotates clockwise with y down
		transform = fmt.Sprintf(` transform="rotate(%s %s %s)"`, num(-l.Rotation*180/math.Pi), x, y)
	}
	fmt.Fprintf(buf, `    <text class="%s"%s x="%s" y="%s" font-size="%s" fill="%s" text-anchor="%s" dominant-baseline="hanging"%s>%s</text>`+"\n",
		l.Role, trackAttr(l.Track), x, y, num(l.Size), s.TextColor(l).Hex(), textAnchor(l.Anchor), transform, styles.EscapeXML(l.Text))
}

func textAnchor(a primitive.Anchor) string {
	switch a {
	case primitive.AnchorMiddle:
		return "middle"
	case primitive.AnchorEnd:
		return "end"
	}
	return "start"
}

func trackAttr(name string) string {
	if name == "" {
		return ""
	}
	return fmt.Sprintf(` data-track="%s"`, styles.EscapeXML(name))
}

// num formats a coordinate with at most three decimals and no trailing zeros.
func num(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

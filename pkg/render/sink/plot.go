package sink

import (
	"bytes"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matzehuels/logtrack/pkg/core/color"
	"github.com/matzehuels/logtrack/pkg/core/primitive"
	errs "github.com/matzehuels/logtrack/pkg/errors"
	"github.com/matzehuels/logtrack/pkg/render/styles"
)

// DefaultPlotWidth is the canvas width used when no size is given. The
// height follows the drawing's aspect ratio.
const DefaultPlotWidth = 6 * vg.Inch

// PlotOption configures the gonum/plot based sinks.
type PlotOption func(*plotRenderer)

type plotRenderer struct {
	style  styles.Style
	width  vg.Length
	height vg.Length
	margin float64
	title  string
}

func WithPlotStyle(s styles.Style) PlotOption { return func(r *plotRenderer) { r.style = s } }
func WithPlotTitle(t string) PlotOption       { return func(r *plotRenderer) { r.title = t } }
func WithPlotMargin(m float64) PlotOption     { return func(r *plotRenderer) { r.margin = m } }

// WithPlotSize sets the canvas size. A zero height keeps the aspect ratio.
func WithPlotSize(width, height vg.Length) PlotOption {
	return func(r *plotRenderer) { r.width, r.height = width, height }
}

// RenderPNG draws prims onto a raster canvas.
func RenderPNG(prims []primitive.Primitive, opts ...PlotOption) ([]byte, error) {
	return RenderPlot(prims, "png", opts...)
}

// RenderPDF draws prims onto a PDF page.
func RenderPDF(prims []primitive.Primitive, opts ...PlotOption) ([]byte, error) {
	return RenderPlot(prims, "pdf", opts...)
}

// RenderEPS draws prims as Encapsulated PostScript.
func RenderEPS(prims []primitive.Primitive, opts ...PlotOption) ([]byte, error) {
	return RenderPlot(prims, "eps", opts...)
}

// RenderPlot draws prims with gonum/plot and encodes the result in any
// format its WriterTo understands (png, pdf, eps, svg, jpg, tif).
func RenderPlot(prims []primitive.Primitive, format string, opts ...PlotOption) ([]byte, error) {
	r := plotRenderer{style: styles.Dark{}, width: DefaultPlotWidth, margin: DefaultMargin}
	for _, opt := range opts {
		opt(&r)
	}

	p, view := newPlot(prims, r)
	width, height := r.width, r.height
	if height == 0 {
		height = width
		if view.Width() > 0 {
			height = vg.Length(float64(width) * view.Height() / view.Width())
		}
	}

	w, err := p.WriterTo(width, height, format)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "plot format %q", format)
	}
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

func newPlot(prims []primitive.Primitive, r plotRenderer) (*plot.Plot, primitive.Rect) {
	view := primitive.Bounds(prims).Pad(r.margin)

	p := plot.New()
	p.HideAxes()
	p.BackgroundColor = r.style.Background()
	if r.title != "" {
		p.Title.Text = r.title
		p.Title.TextStyle.Color = r.style.TextColor(primitive.Label{Tag: primitive.Tag{Role: primitive.RoleTitle}, Color: color.White})
	}
	p.Add(&scenePlotter{prims: prims, style: r.style, view: view})
	return p, view
}

// scenePlotter adapts a primitive list to plot.Plotter.
type scenePlotter struct {
	prims []primitive.Primitive
	style styles.Style
	view  primitive.Rect
}

var (
	_ plot.Plotter    = &scenePlotter{}
	_ plot.DataRanger = &scenePlotter{}
)

// DataRange implements plot.DataRanger so the plot frames the padded bounds.
func (s *scenePlotter) DataRange() (xmin, xmax, ymin, ymax float64) {
	return s.view.MinX, s.view.MaxX, s.view.MinY, s.view.MaxY
}

// Plot implements plot.Plotter.
func (s *scenePlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	unit := trX(1) - trX(0)

	for _, prim := range s.prims {
		switch v := prim.(type) {
		case primitive.Polyline:
			if len(v.Points) < 2 {
				continue
			}
			pts := make([]vg.Point, len(v.Points))
			for i, pt := range v.Points {
				pts[i] = vg.Point{X: trX(pt.X), Y: trY(pt.Y)}
			}
			c.StrokeLines(draw.LineStyle{
				Color: s.style.Stroke(v),
				Width: vg.Length(s.style.LineWidth(v.Role)) * unit,
			}, pts)
		case primitive.Label:
			c.FillText(draw.TextStyle{
				Color:    s.style.TextColor(v),
				Font:     font.From(plotter.DefaultFont, vg.Length(v.Size)*unit),
				Rotation: v.Rotation,
				XAlign:   xAlign(v.Anchor),
				YAlign:   draw.YTop,
				Handler:  plot.DefaultTextHandler,
			}, vg.Point{X: trX(v.Position.X), Y: trY(v.Position.Y)}, v.Text)
		}
	}
}

func xAlign(a primitive.Anchor) draw.XAlignment {
	switch a {
	case primitive.AnchorMiddle:
		return draw.XCenter
	case primitive.AnchorEnd:
		return draw.XRight
	}
	return draw.XLeft
}

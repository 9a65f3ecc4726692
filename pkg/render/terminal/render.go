// Package terminal rasterises primitives into braille characters for the
// interactive viewer.
package terminal

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/logtrack/pkg/core/primitive"
)

// Option configures [Render].
type Option func(*config)

type config struct {
	theta  float64
	color  bool
	labels bool
}

// WithRotation spins the scene about the vertical axis through its centre.
// Points move as x' = x·cos θ − z·sin θ.
func WithRotation(theta float64) Option { return func(c *config) { c.theta = theta } }

// WithColor wraps each cell in an ANSI colour taken from its primitive.
func WithColor() Option { return func(c *config) { c.color = true } }

// WithLabels prints unrotated labels as plain text over the braille layer.
func WithLabels() Option { return func(c *config) { c.labels = true } }

// Render draws prims into a w×h cell grid and returns one string per row.
// The scene keeps its aspect ratio and is centred in the grid.
func Render(prims []primitive.Primitive, w, h int, opts ...Option) []string {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	c := NewCanvas(w, h)
	Draw(c, prims, opts...)
	return c.Lines(cfg.color)
}

// Draw rasterises prims onto an existing canvas.
func Draw(c *Canvas, prims []primitive.Primitive, opts ...Option) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	pr := newProjection(primitive.Bounds(prims), c, cfg.theta)
	if pr == nil {
		return
	}

	for _, p := range prims {
		v, ok := p.(primitive.Polyline)
		if !ok {
			continue
		}
		for i := 1; i < len(v.Points); i++ {
			x0, y0 := pr.micro(v.Points[i-1])
			x1, y1 := pr.micro(v.Points[i])
			c.Line(x0, y0, x1, y1, v.Color)
		}
		if len(v.Points) == 1 {
			x, y := pr.micro(v.Points[0])
			c.Set(x, y, v.Color)
		}
	}

	if !cfg.labels {
		return
	}
	for _, p := range prims {
		l, ok := p.(primitive.Label)
		if !ok || l.Rotation != 0 {
			continue
		}
		mx, my := pr.micro(l.Position)
		cx := mx / 2
		switch l.Anchor {
		case primitive.AnchorMiddle:
			cx -= len([]rune(l.Text)) / 2
		case primitive.AnchorEnd:
			cx -= len([]rune(l.Text))
		}
		c.Text(cx, my/4, l.Text, l.Color)
	}
}

type projection struct {
	minX, maxY float64
	cx         float64
	scale      float64
	offX, offY float64
	sin, cos   float64
}

func newProjection(b primitive.Rect, c *Canvas, theta float64) *projection {
	mw, mh := c.MicroSize()
	if mw < 1 || mh < 1 || b.Width() < 0 || b.Height() < 0 {
		return nil
	}
	bw, bh := math.Max(b.Width(), 1e-9), math.Max(b.Height(), 1e-9)
	scale := math.Min(float64(mw-1)/bw, float64(mh-1)/bh)
	sin, cos := math.Sincos(theta)
	return &projection{
		minX:  b.MinX,
		maxY:  b.MaxY,
		cx:    (b.MinX + b.MaxX) / 2,
		scale: scale,
		offX:  (float64(mw-1) - b.Width()*scale) / 2,
		offY:  (float64(mh-1) - b.Height()*scale) / 2,
		sin:   sin,
		cos:   cos,
	}
}

func (p *projection) micro(pt primitive.Point) (int, int) {
	x := p.cx + (pt.X-p.cx)*p.cos - pt.Z*p.sin
	mx := (x-p.minX)*p.scale + p.offX
	my := (p.maxY-pt.Y)*p.scale + p.offY
	return int(math.Round(mx)), int(math.Round(my))
}

// Lines returns the canvas rows. With colour enabled each drawn cell is
// wrapped in a lipgloss foreground style.
func (c *Canvas) Lines(colored bool) []string {
	styles := map[uint32]lipgloss.Style{}
	out := make([]string, c.h)
	for y := 0; y < c.h; y++ {
		var sb strings.Builder
		for x := 0; x < c.w; x++ {
			r, ink, drawn := c.Cell(x, y)
			if !colored || !drawn {
				sb.WriteRune(r)
				continue
			}
			st, ok := styles[uint32(ink)]
			if !ok {
				st = lipgloss.NewStyle().Foreground(lipgloss.Color(ink.Hex()))
				styles[uint32(ink)] = st
			}
			sb.WriteString(st.Render(string(r)))
		}
		out[y] = sb.String()
	}
	return out
}

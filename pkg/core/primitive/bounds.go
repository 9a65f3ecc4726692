package primitive

import (
	"math"
	"unicode/utf8"
)

// charAspect approximates glyph advance as a fraction of font size.
const charAspect = 0.6

// Rect is an axis-aligned rectangle in world space.
type Rect struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// Width returns MaxX - MinX.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns MaxY - MinY.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Empty reports whether r contains no area and no points.
func (r Rect) Empty() bool { return r.MinX > r.MaxX || r.MinY > r.MaxY }

// Pad grows r by m on every side.
func (r Rect) Pad(m float64) Rect {
	return Rect{MinX: r.MinX - m, MinY: r.MinY - m, MaxX: r.MaxX + m, MaxY: r.MaxY + m}
}

func emptyRect() Rect {
	return Rect{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
}

func (r *Rect) add(x, y float64) {
	r.MinX = math.Min(r.MinX, x)
	r.MinY = math.Min(r.MinY, y)
	r.MaxX = math.Max(r.MaxX, x)
	r.MaxY = math.Max(r.MaxY, y)
}

// Bounds returns the x/y extent of prims. Label extents are estimated from
// text length and font size. An empty list yields a zero Rect.
func Bounds(prims []Primitive) Rect {
	r := emptyRect()
	for _, p := range prims {
		switch v := p.(type) {
		case Polyline:
			for _, pt := range v.Points {
				r.add(pt.X, pt.Y)
			}
		case Label:
			for _, c := range LabelCorners(v) {
				r.add(c.X, c.Y)
			}
		}
	}
	if r.Empty() {
		return Rect{}
	}
	return r
}

// TextWidth estimates the rendered width of a label.
func TextWidth(l Label) float64 {
	return float64(utf8.RuneCountInString(l.Text)) * l.Size * charAspect
}

// LabelCorners returns the four corners of the label's text box after
// anchoring and rotation.
func LabelCorners(l Label) [4]Point {
	w := TextWidth(l)
	var x0 float64
	switch l.Anchor {
	case AnchorMiddle:
		x0 = -w / 2
	case AnchorEnd:
		x0 = -w
	}
	local := [4][2]float64{{x0, 0}, {x0 + w, 0}, {x0 + w, -l.Size}, {x0, -l.Size}}
	sin, cos := math.Sincos(l.Rotation)
	var out [4]Point
	for i, c := range local {
		out[i] = Point{
			X: l.Position.X + c[0]*cos - c[1]*sin,
			Y: l.Position.Y + c[0]*sin + c[1]*cos,
			Z: l.Position.Z,
		}
	}
	return out
}

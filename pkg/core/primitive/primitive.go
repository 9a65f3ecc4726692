package primitive

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/logtrack/pkg/core/color"
)

// Kind discriminates primitive types in serialized form.
type Kind string

const (
	KindPolyline Kind = "polyline"
	KindLabel    Kind = "label"
)

// Role tells sinks what a primitive represents so styles can treat curves,
// frames and ticks differently.
type Role string

const (
	RoleAxis       Role = "axis"
	RoleAxisTitle  Role = "axis-title"
	RoleTick       Role = "tick"
	RoleTickLabel  Role = "tick-label"
	RoleCurve      Role = "curve"
	RoleTitle      Role = "title"
	RoleFrame      Role = "frame"
	RoleGrid       Role = "grid"
	RoleGridCenter Role = "grid-center"
)

// Anchor is the horizontal alignment of a label relative to its position.
type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// Point is a position in world space.
type Point struct {
	X, Y, Z float64
}

// Pt is shorthand for a point on the z=0 plane.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// MarshalJSON encodes the point as a compact [x, y, z] array.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{p.X, p.Y, p.Z})
}

// UnmarshalJSON decodes an [x, y] or [x, y, z] array.
func (p *Point) UnmarshalJSON(data []byte) error {
	var xs []float64
	if err := json.Unmarshal(data, &xs); err != nil {
		return err
	}
	if len(xs) != 2 && len(xs) != 3 {
		return fmt.Errorf("point needs 2 or 3 coordinates, got %d", len(xs))
	}
	p.X, p.Y, p.Z = xs[0], xs[1], 0
	if len(xs) == 3 {
		p.Z = xs[2]
	}
	return nil
}

// Tag identifies what a primitive draws and which track owns it.
// Track is empty for the shared depth axis and the grid.
type Tag struct {
	Role  Role   `json:"role"`
	Track string `json:"track,omitempty"`
}

// Tagged returns the tag. It is promoted to every primitive that embeds Tag.
func (t Tag) Tagged() Tag { return t }

// Primitive is a drawable element handed to a render host.
// It is implemented by [Polyline] and [Label].
type Primitive interface {
	Kind() Kind
	Tagged() Tag
}

// Polyline is an open sequence of connected points.
type Polyline struct {
	Tag
	Points []Point
	Color  color.RGB
}

// Kind implements Primitive.
func (Polyline) Kind() Kind { return KindPolyline }

// Closed reports whether the last point repeats the first.
func (p Polyline) Closed() bool {
	n := len(p.Points)
	return n > 2 && p.Points[0] == p.Points[n-1]
}

// Label is a text element. Position is the top edge of the text at the
// anchor point; the text hangs below it. Rotation is counter-clockwise in
// radians about Position.
type Label struct {
	Tag
	Text     string
	Position Point
	Size     float64
	Color    color.RGB
	Rotation float64
	Anchor   Anchor
}

// Kind implements Primitive.
func (Label) Kind() Kind { return KindLabel }

var (
	_ Primitive = Polyline{}
	_ Primitive = Label{}
)

// Count returns the number of polylines and labels in prims.
func Count(prims []Primitive) (polylines, labels int) {
	for _, p := range prims {
		switch p.(type) {
		case Polyline:
			polylines++
		case Label:
			labels++
		}
	}
	return polylines, labels
}

// ForTrack returns the primitives owned by the named track, in order.
func ForTrack(prims []Primitive, name string) []Primitive {
	var out []Primitive
	for _, p := range prims {
		if p.Tagged().Track == name {
			out = append(out, p)
		}
	}
	return out
}

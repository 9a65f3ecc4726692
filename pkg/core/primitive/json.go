package primitive

import (
	"encoding/json"

	"github.com/matzehuels/logtrack/pkg/core/color"
	errs "github.com/matzehuels/logtrack/pkg/errors"
)

// DocumentVersion is written into every serialized primitive list.
const DocumentVersion = 1

type document struct {
	Version    int    `json:"version"`
	Bounds     Rect   `json:"bounds"`
	Primitives []wire `json:"primitives"`
}

type wire struct {
	Kind     Kind      `json:"kind"`
	Role     Role      `json:"role"`
	Track    string    `json:"track,omitempty"`
	Color    color.RGB `json:"color"`
	Points   []Point   `json:"points,omitempty"`
	Text     string    `json:"text,omitempty"`
	Position *Point    `json:"position,omitempty"`
	Size     float64   `json:"size,omitempty"`
	Rotation float64   `json:"rotation,omitempty"`
	Anchor   Anchor    `json:"anchor,omitempty"`
}

// Marshal encodes prims as an indented JSON document.
func Marshal(prims []Primitive) ([]byte, error) {
	doc := document{
		Version:    DocumentVersion,
		Bounds:     Bounds(prims),
		Primitives: make([]wire, 0, len(prims)),
	}
	for _, p := range prims {
		switch v := p.(type) {
		case Polyline:
			doc.Primitives = append(doc.Primitives, wire{
				Kind: KindPolyline, Role: v.Role, Track: v.Track, Color: v.Color, Points: v.Points,
			})
		case Label:
			pos := v.Position
			doc.Primitives = append(doc.Primitives, wire{
				Kind: KindLabel, Role: v.Role, Track: v.Track, Color: v.Color,
				Text: v.Text, Position: &pos, Size: v.Size, Rotation: v.Rotation, Anchor: v.Anchor,
			})
		default:
			return nil, errs.New(errs.ErrCodeInvalidInput, "unsupported primitive %T", p)
		}
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Unmarshal decodes a document produced by [Marshal].
func Unmarshal(data []byte) ([]Primitive, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidScene, err, "decode primitives")
	}
	if doc.Version != DocumentVersion {
		return nil, errs.New(errs.ErrCodeInvalidScene, "unsupported primitive document version %d", doc.Version)
	}
	out := make([]Primitive, 0, len(doc.Primitives))
	for i, w := range doc.Primitives {
		tag := Tag{Role: w.Role, Track: w.Track}
		switch w.Kind {
		case KindPolyline:
			out = append(out, Polyline{Tag: tag, Points: w.Points, Color: w.Color})
		case KindLabel:
			if w.Position == nil {
				return nil, errs.New(errs.ErrCodeInvalidScene, "label %d has no position", i)
			}
			out = append(out, Label{
				Tag: tag, Text: w.Text, Position: *w.Position, Size: w.Size,
				Color: w.Color, Rotation: w.Rotation, Anchor: w.Anchor,
			})
		default:
			return nil, errs.New(errs.ErrCodeInvalidScene, "primitive %d has unknown kind %q", i, w.Kind)
		}
	}
	return out, nil
}

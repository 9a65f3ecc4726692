// Package styles defines the visual themes applied by the render sinks.
//
// A [Style] never changes geometry. It picks the background, stroke widths
// per primitive role, font scaling and colour overrides. [Dark] reproduces
// the on-screen demo palette; [Paper] is a light theme for print output.
package styles

import (
	"bytes"
	"encoding/xml"
	"sort"
	"strings"

	"github.com/matzehuels/logtrack/pkg/core/color"
	"github.com/matzehuels/logtrack/pkg/core/primitive"
	errs "github.com/matzehuels/logtrack/pkg/errors"
)

// Style controls how primitives are painted.
type Style interface {
	// Name is the identifier accepted by [Lookup].
	Name() string
	// Background is the canvas fill colour.
	Background() color.RGB
	// LineWidth returns the stroke width for a polyline role, in world units.
	LineWidth(r primitive.Role) float64
	// Stroke returns the colour used for a polyline.
	Stroke(p primitive.Polyline) color.RGB
	// TextColor returns the colour used for a label.
	TextColor(l primitive.Label) color.RGB
	// FontFamily is the CSS font-family list used by the SVG sink.
	FontFamily() string
}

const fontFamily = "Helvetica, Arial, sans-serif"

func lineWidth(r primitive.Role) float64 {
	switch r {
	case primitive.RoleCurve:
		return 0.6
	case primitive.RoleAxis:
		return 0.4
	case primitive.RoleGrid, primitive.RoleGridCenter:
		return 0.2
	}
	return 0.25
}

// Dark keeps the colours carried by each primitive on a near-black canvas.
type Dark struct{}

func (Dark) Name() string                          { return "dark" }
func (Dark) Background() color.RGB                 { return color.Background }
func (Dark) LineWidth(r primitive.Role) float64    { return lineWidth(r) }
func (Dark) Stroke(p primitive.Polyline) color.RGB { return p.Color }
func (Dark) TextColor(l primitive.Label) color.RGB { return l.Color }
func (Dark) FontFamily() string                    { return fontFamily }

// Paper inverts the decoration colours for a white background. Curve
// colours are kept except where they are too light to read on paper.
type Paper struct{}

var paperCurve = map[color.RGB]color.RGB{
	color.GammaRay: 0x009955,
	color.White:    0x000000,
}

func (Paper) Name() string                       { return "paper" }
func (Paper) Background() color.RGB              { return color.White }
func (Paper) LineWidth(r primitive.Role) float64 { return lineWidth(r) }
func (Paper) FontFamily() string                 { return fontFamily }

func (Paper) Stroke(p primitive.Polyline) color.RGB {
	switch p.Role {
	case primitive.RoleCurve:
		if c, ok := paperCurve[p.Color]; ok {
			return c
		}
		return p.Color
	case primitive.RoleGrid:
		return 0xdddddd
	case primitive.RoleGridCenter:
		return 0xbbbbbb
	case primitive.RoleFrame:
		return 0x888888
	}
	return 0x333333
}

func (Paper) TextColor(l primitive.Label) color.RGB {
	if l.Role == primitive.RoleTitle {
		if c, ok := paperCurve[l.Color]; ok {
			return c
		}
		return l.Color
	}
	return 0x000000
}

var registry = map[string]Style{
	"dark":  Dark{},
	"paper": Paper{},
}

// DefaultName is the style used when none is requested.
const DefaultName = "dark"

// Lookup returns the named style. The empty name selects [Dark].
func Lookup(name string) (Style, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultName
	}
	s, ok := registry[key]
	if !ok {
		return nil, errs.New(errs.ErrCodeInvalidStyle, "unknown style %q (valid: %s)", name, strings.Join(Names(), ", "))
	}
	return s, nil
}

// Names returns the registered style names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// EscapeXML escapes s for use in SVG text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// Package scenegraph renders the retained-mode hierarchy of a scene as a
// Graphviz diagram: the scene root, the shared axis group, one group per
// track and the primitives inside each group.
//
// It is a debugging view of what a render host receives, not a display of
// the log itself.
//
//	dot := scenegraph.ToDOT(scene, scenegraph.Options{})
//	svg, err := scenegraph.RenderSVG(ctx, dot)
package scenegraph

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/logtrack/pkg/core/catalog"
	"github.com/matzehuels/logtrack/pkg/core/primitive"
)

// Options configures scene graph rendering.
type Options struct {
	// Detailed emits one node per primitive. When false, repeated roles in a
	// group (ticks, tick labels, grid lines) collapse into a single node.
	Detailed bool
}

const (
	rootID = "scene"
	axisID = "axis"
	gridID = "grid"
)

// ToDOT converts a scene to Graphviz DOT format.
func ToDOT(s *catalog.Scene, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph scene {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	title := rootID
	if s != nil && s.Definition.Title != "" {
		title = s.Definition.Title
	}
	fmt.Fprintf(&buf, "  %s [label=%s, fillcolor=\"#dddddd\"];\n", quote(rootID), quote(title))
	if s == nil {
		buf.WriteString("}\n")
		return buf.String()
	}

	for _, g := range groups(s.Primitives) {
		fmt.Fprintf(&buf, "  %s [label=%s, shape=folder];\n", quote(g.id), quote(g.label))
		fmt.Fprintf(&buf, "  %s -> %s;\n", quote(rootID), quote(g.id))
		for i, n := range g.nodes(opts.Detailed) {
			id := fmt.Sprintf("%s/%d", g.id, i)
			fmt.Fprintf(&buf, "  %s [%s];\n", quote(id), strings.Join(n.attrs(), ", "))
			fmt.Fprintf(&buf, "  %s -> %s;\n", quote(g.id), quote(id))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// dotEscaper escapes a string for a DOT quoted id. Newlines become centred
// line breaks and tabs become spaces.
var dotEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", "",
	"\t", " ",
)

// quote returns s as a DOT double-quoted string. Unlike Go's %q it keeps
// non-ASCII text as is.
func quote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}

type group struct {
	id, label string
	prims     []primitive.Primitive
}

// groups partitions prims by owner, keeping first-seen order.
func groups(prims []primitive.Primitive) []*group {
	var out []*group
	index := map[string]*group{}
	for _, p := range prims {
		tag := p.Tagged()
		id, label := axisID, "depth axis"
		switch {
		case tag.Track != "":
			id, label = "track:"+tag.Track, tag.Track
		case tag.Role == primitive.RoleGrid || tag.Role == primitive.RoleGridCenter:
			id, label = gridID, "grid"
		}
		g, ok := index[id]
		if !ok {
			g = &group{id: id, label: label}
			index[id] = g
			out = append(out, g)
		}
		g.prims = append(g.prims, p)
	}
	return out
}

type node struct {
	kind  primitive.Kind
	role  primitive.Role
	text  string
	count int
	color string
}

func (n node) attrs() []string {
	label := string(n.kind) + "\n" + string(n.role)
	if n.text != "" {
		label += "\n\"" + n.text + "\""
	}
	if n.count > 1 {
		label += fmt.Sprintf("\n×%d", n.count)
	}
	attrs := []string{"label=" + quote(label)}
	if n.color != "" {
		attrs = append(attrs, "color="+quote(n.color), "penwidth=2")
	}
	if n.kind == primitive.KindLabel {
		attrs = append(attrs, "shape=note")
	}
	return attrs
}

func describe(p primitive.Primitive) node {
	n := node{kind: p.Kind(), role: p.Tagged().Role, count: 1}
	switch v := p.(type) {
	case primitive.Polyline:
		n.color = v.Color.Hex()
		if v.Role == primitive.RoleCurve {
			n.text = fmt.Sprintf("%d points", len(v.Points))
		}
	case primitive.Label:
		n.text = v.Text
	}
	return n
}

func (g *group) nodes(detailed bool) []node {
	var out []node
	seen := map[[2]string]int{}
	for _, p := range g.prims {
		n := describe(p)
		if !detailed && collapsible(n.role) {
			key := [2]string{string(n.kind), string(n.role)}
			if i, ok := seen[key]; ok {
				out[i].count++
				out[i].text = ""
				continue
			}
			seen[key] = len(out)
		}
		out = append(out, n)
	}
	return out
}

func collapsible(r primitive.Role) bool {
	switch r {
	case primitive.RoleTick, primitive.RoleTickLabel, primitive.RoleGrid, primitive.RoleGridCenter:
		return true
	}
	return false
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	data, err := render(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(data), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

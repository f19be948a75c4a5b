// Package render converts a transit graph to Graphviz DOT and renders it
// to SVG. This is the drawing side of the export surface: stations become
// coloured nodes labelled with their lines and daily riders, edges become
// undirected links.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/mhalvorsen/transitmap/pkg/export"
	"github.com/mhalvorsen/transitmap/pkg/transit"
)

// defaultColor fills stations that match no colour-table entry.
const defaultColor = "#d9d9d9"

// DefaultColors maps the reference dataset's lines to their customary
// colours. The first matching entry (in table order) wins.
var DefaultColors = []LineColor{
	{Line: "1 Yonge-University", Color: "#ffff00"},
	{Line: "2 Bloor-Danforth", Color: "#00b530"},
	{Line: "4 Sheppard", Color: "#b50072"},
	{Line: "Surface", Color: "#ff0000"},
	{Line: "Bike Share", Color: "#fe744d"},
}

// LineColor assigns a fill colour to stations carrying a line.
type LineColor struct {
	Line  string
	Color string
}

// Options configures DOT conversion.
type Options struct {
	// Colors overrides DefaultColors when non-nil.
	Colors []LineColor
	// MaxNodes caps the number of rendered stations (0 = export default).
	MaxNodes int
}

// ToDOT converts the graph to undirected Graphviz DOT. Node labels show
// the station name, its lines and its rounded daily riders; fills follow
// the colour table. The result can be rendered with [RenderSVG].
func ToDOT(g *transit.Graph, opts Options) string {
	colors := opts.Colors
	if colors == nil {
		colors = DefaultColors
	}
	snap := export.Take(g, export.Options{MaxNodes: opts.MaxNodes})

	var buf bytes.Buffer
	buf.WriteString("graph transit {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fixedsize=false, fontsize=12];\n")
	buf.WriteString("\n")

	for _, s := range snap.Stations {
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%q, pos=\"%g,%g!\"];\n",
			s.ID, nodeLabel(s), fillFor(s.Lines, colors), s.X, s.Y)
	}

	buf.WriteString("\n")
	for _, e := range snap.Edges {
		fmt.Fprintf(&buf, "  %q -- %q;\n", e.A, e.B)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeLabel(s export.StationRecord) string {
	lines := "No Lines"
	if len(s.Lines) > 0 {
		lines = strings.Join(s.Lines, " and ")
	}
	return fmt.Sprintf("%s\n%s\n%d riders per day", s.ID, lines, s.Usage)
}

func fillFor(lines []string, colors []LineColor) string {
	for _, c := range colors {
		for _, l := range lines {
			if l == c.Line {
				return c.Color
			}
		}
	}
	return defaultColor
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
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
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

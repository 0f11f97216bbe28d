package adjacency

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/regiolab/regio/pkg/render"
)

// Options configures adjacency diagram output.
type Options struct {
	// Palette colors graph nodes like their regions. Optional.
	Palette render.Palette

	// ShowCellCount appends the region's cell count to each node label.
	ShowCellCount bool
}

// ToDOT converts an adjacency graph to Graphviz DOT format. Node fill colors
// follow the palette when one is given, so the diagram matches the rendered
// decomposition image.
func ToDOT(g *Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph regions {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  node [shape=circle, style=filled, fontsize=12];\n")
	buf.WriteString("\n")

	for _, l := range g.Labels {
		label := fmt.Sprintf("%d", l)
		if opts.ShowCellCount {
			label = fmt.Sprintf("%d\\n%d cells", l, g.CellCount[l])
		}
		attrs := []string{fmt.Sprintf("label=%q", label)}
		if opts.Palette != nil {
			attrs = append(attrs, fmt.Sprintf("fillcolor=%q", hexColor(opts.Palette.Color(l))))
		}
		fmt.Fprintf(&buf, "  %s [%s];\n", NodeID(l), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		fmt.Fprintf(&buf, "  %s -- %s;\n", NodeID(e.A), NodeID(e.B))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
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

package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/spheregrid/pkg/grid"
	"github.com/matzehuels/spheregrid/pkg/palette"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds state, domain and requirements to node labels.
	// When false, only the node label is shown.
	Detailed bool
}

var shapes = map[grid.Shape]string{
	grid.ShapeCircle:  "circle",
	grid.ShapeHexagon: "hexagon",
	grid.ShapeDiamond: "diamond",
	grid.ShapeOctagon: "octagon",
}

var edgeStyles = map[grid.PathType]string{
	grid.PathMain:        "penwidth=3",
	grid.PathOptional:    "penwidth=1.5",
	grid.PathBlocked:     "penwidth=1.5, style=dashed",
	grid.PathCrossDomain: "penwidth=2, style=dotted",
}

// ToDOT converts a grid to Graphviz DOT format. The CORE node is the source
// rank and every tier forms one rank below it, so the diagram reads from the
// center outward. Node fill follows the state palette.
func ToDOT(cfg *grid.Config, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [style=filled, fontsize=14, fixedsize=false, margin=\"0.1,0.05\"];\n")
	buf.WriteString("  ranksep=0.8;\n")
	buf.WriteString("  nodesep=0.4;\n")
	buf.WriteString("\n")

	for _, n := range cfg.Nodes {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(fmtAttrs(n, opts.Detailed), ", "))
	}

	buf.WriteString("\n")
	ranks := append([]string{grid.CoreTier}, tierIDs(cfg)...)
	for _, tier := range ranks {
		var ids []string
		for _, n := range cfg.Nodes {
			if n.Tier == tier {
				ids = append(ids, strconv.Quote(n.ID))
			}
		}
		if len(ids) > 0 {
			fmt.Fprintf(&buf, "  { rank=same; %s; }\n", strings.Join(ids, "; "))
		}
	}

	buf.WriteString("\n")
	for _, e := range cfg.Edges {
		if _, ok := cfg.Node(e.From); !ok {
			continue
		}
		if _, ok := cfg.Node(e.To); !ok {
			continue
		}
		style, ok := edgeStyles[e.Type]
		if !ok {
			style = edgeStyles[grid.PathOptional]
		}
		fmt.Fprintf(&buf, "  %q -> %q [%s, color=%q];\n", e.From, e.To, style, palette.Connector(e.Type).Hex())
	}

	buf.WriteString("}\n")
	return buf.String()
}

func tierIDs(cfg *grid.Config) []string {
	ids := make([]string, len(cfg.Tiers))
	for i, t := range cfg.Tiers {
		ids[i] = t.ID
	}
	return ids
}

func fmtLabel(n grid.Node, detailed bool) string {
	label := strings.ReplaceAll(n.Label, "\n", " ")
	if label == "" {
		label = n.ID
	}
	if !detailed {
		return label
	}

	parts := []string{string(n.State), n.Domain}
	for _, r := range n.Requirements {
		parts = append(parts, fmt.Sprintf("%s×%d", r.Type, r.Count))
	}
	return label + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(n grid.Node, detailed bool) []string {
	p := palette.For(n.State)
	return []string{
		fmt.Sprintf("label=%q", fmtLabel(n, detailed)),
		fmt.Sprintf("shape=%s", shapes[n.EffectiveShape()]),
		fmt.Sprintf("fillcolor=%q", p.Fill.Hex()),
		fmt.Sprintf("color=%q", p.Stroke.Hex()),
		fmt.Sprintf("fontcolor=%q", p.Text.Hex()),
		fmt.Sprintf("penwidth=%g", p.StrokeWeight/2),
	}
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with render.ToPDF or render.ToPNG.
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
	return normalizeViewBox(buf.Bytes()), nil
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

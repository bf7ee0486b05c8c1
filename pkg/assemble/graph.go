package assemble

import (
	"fmt"
	"strings"

	"github.com/matzehuels/spheregrid/pkg/catalog"
	"github.com/matzehuels/spheregrid/pkg/grid"
	"github.com/matzehuels/spheregrid/pkg/layout"
	"github.com/matzehuels/spheregrid/pkg/palette"
	"github.com/matzehuels/spheregrid/pkg/paths"
	"github.com/matzehuels/spheregrid/pkg/scene"
	"github.com/matzehuels/spheregrid/pkg/sector"
	"github.com/matzehuels/spheregrid/pkg/style"
)

const (
	sectorOpacity     = 0.12
	sectorStroke      = 4.0
	sectorBlur        = 10.0
	sectorLabelWidth  = 50.0
	sectorLabelHeight = 12.0

	ringLabelGap   = 16.0
	ringLabelWidth = 160.0
)

func (g *generator) domainSectors() scene.Node {
	group := scene.Group(LayerDomainSectors)
	group.Style = group.Style.WithOpacity(sectorOpacity)
	for _, s := range sector.Build(g.cfg, g.layout.Center) {
		arc := style.Stroked(s.Domain.Color, sectorStroke).WithEffects(style.Blur(sectorBlur))
		arc.RoundCap = true
		group.Add(scene.PathNode("Sector-"+s.Domain.ID, s.Path, arc))
		group.Add(scene.TextNode("SectorLabel-"+s.Domain.ID,
			s.Label.X-sectorLabelWidth/2, s.Label.Y-sectorLabelHeight/2, sectorLabelWidth, sectorLabelHeight,
			scene.Text{Content: s.Domain.Label, FontSize: 10, Align: string(layout.AlignCenter)},
			style.Filled(s.Domain.Color)))
	}
	return group
}

func (g *generator) rings() scene.Node {
	group := scene.Group(LayerRings)
	c := g.layout.Center
	for _, t := range g.cfg.Tiers {
		r, gi := t.Radius, t.GlowIntensity
		stroke, label := palette.Ring(t)
		glow := style.Stroked(palette.Base.Ring, 6).WithOpacity(0.15 * gi).WithEffects(style.Blur(6))
		line := style.Stroked(stroke, 1.5).WithOpacity(0.6 + 0.3*gi)
		ring := scene.Group("Ring-" + t.ID)
		if gi > 0 {
			ring.Add(scene.Ellipse("Glow", c.X-r, c.Y-r, 2*r, 2*r, glow))
		}
		ring.Add(scene.Ellipse("Line", c.X-r, c.Y-r, 2*r, 2*r, line))
		ring.Add(scene.TextNode("Label", c.X+r+ringLabelGap, c.Y-8, ringLabelWidth, 16,
			scene.Text{Content: t.Label, FontSize: 12},
			style.Filled(label)))
		group.Add(ring)
	}
	return group
}

func (g *generator) connectors() scene.Node {
	group := scene.Group(LayerConnectors)
	for i, e := range g.cfg.Edges {
		if g.report.SkipEdge(i) {
			continue
		}
		a, okA := g.layout.Anchor(e.From)
		b, okB := g.layout.Anchor(e.To)
		if !okA || !okB {
			// Validation rejects these under either policy.
			continue
		}
		p, fellBack := paths.Edge(a, b, e.EffectiveCurve(), paths.Intensity(e))
		if fellBack {
			g.warn("edge %s→%s: zero-length bezier drawn straight", e.From, e.To)
		}

		es := paths.StyleFor(e.Type)
		glow := style.Stroked(palette.Base.Connector, es.StrokeWeight+4).
			WithOpacity(es.GlowOpacity).
			WithEffects(style.Blur(es.GlowRadius))
		glow.RoundCap = true
		main := style.Stroked(palette.Connector(e.Type), es.StrokeWeight).WithOpacity(es.Opacity)
		main.Dash = es.Dash
		main.RoundCap = len(es.Dash) == 0

		group.Add(scene.Group(fmt.Sprintf("Edge-%s-%s", e.From, e.To),
			scene.PathNode("Glow", p, glow),
			scene.PathNode("Line", p, main),
		))
	}
	return group
}

func (g *generator) nodes() (scene.Node, error) {
	group := scene.Group(LayerNodes)
	for _, n := range g.cfg.Nodes {
		key := catalog.Key{State: n.State, Shape: n.EffectiveShape()}
		tpl, err := g.catalog.Lookup(key)
		if err != nil {
			return scene.Node{}, fmt.Errorf("node %q: %w", n.ID, err)
		}
		p, _ := g.layout.Placement(n.ID)
		group.Add(catalog.Instantiate(tpl, p.TopLeft(), p.Size, "Node-"+n.ID, n.Label,
			catalog.LabelFontSizeFor(n.EffectiveImportance())))
	}
	return group, nil
}

// InfoLines returns the requirement and effect lines of a node's info label.
// Either line is omitted when empty.
func InfoLines(n grid.Node) []string {
	var lines []string
	if len(n.Requirements) > 0 {
		reqs := make([]string, len(n.Requirements))
		for i, r := range n.Requirements {
			reqs[i] = fmt.Sprintf("%s×%d", r.Type, r.Count)
		}
		lines = append(lines, "◆ "+strings.Join(reqs, " "))
	}
	if n.Effect != "" {
		lines = append(lines, "→ "+n.Effect)
	}
	return lines
}

func (g *generator) nodeInfo() scene.Node {
	group := scene.Group(LayerNodeInfo)
	for _, n := range g.cfg.Nodes {
		if n.IsCore() {
			continue
		}
		lines := InfoLines(n)
		if len(lines) == 0 {
			continue
		}
		p, _ := g.layout.Placement(n.ID)
		box := layout.InfoPlacement(p.Anchor, g.layout.Center, p.Size, len(lines))
		c, opacity := palette.InfoText(n.State)
		group.Add(scene.TextNode("Info-"+n.ID, box.X, box.Y, box.Width, box.Height,
			scene.Text{
				Content:    strings.Join(lines, "\n"),
				FontSize:   layout.InfoFontSize,
				LineHeight: layout.InfoLineHeight,
				Align:      string(box.Align),
			},
			style.Filled(c).WithOpacity(opacity)))
	}
	return group
}

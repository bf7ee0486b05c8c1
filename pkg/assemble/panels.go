package assemble

import (
	"strings"

	"github.com/matzehuels/spheregrid/pkg/catalog"
	"github.com/matzehuels/spheregrid/pkg/color"
	"github.com/matzehuels/spheregrid/pkg/geom"
	"github.com/matzehuels/spheregrid/pkg/grid"
	"github.com/matzehuels/spheregrid/pkg/palette"
	"github.com/matzehuels/spheregrid/pkg/scene"
	"github.com/matzehuels/spheregrid/pkg/style"
)

// Legend metrics in legend space.
const (
	LegendWidth    = 360.0
	LegendHeight   = 560.0
	LegendIconSize = 50.0

	legendCorner    = 16.0
	legendItemStep  = 75.0
	legendRowStep   = 16.0
	legendItemStart = 52.0
)

// Legend titles.
const (
	LegendTitle          = "ノード状態 / Node States"
	LegendResourcesTitle = "必要スフィア / Resources"
	LegendPathsTitle     = "接続線タイプ"
)

// PathLegend maps each path type to its legend sample line.
var PathLegend = map[grid.PathType]string{
	grid.PathMain:        "━ メイン依存",
	grid.PathOptional:    "─ オプション",
	grid.PathBlocked:     "┄ ロック越え",
	grid.PathCrossDomain: "╌ 領域横断",
}

func panelShadow(alpha, radius float64) style.Effect {
	e := style.Shadow(color.Black, alpha, radius)
	e.OffsetY = 4
	return e
}

func text(name string, x, y, w float64, t scene.Text, c color.RGB) scene.Node {
	h := t.LineHeight
	if h == 0 {
		h = t.FontSize * 1.2
	}
	if n := strings.Count(t.Content, "\n"); n > 0 {
		h *= float64(n + 1)
	}
	return scene.TextNode(name, x, y, w, h, t, style.Filled(c))
}

func (g *generator) legend() (scene.Node, error) {
	group := scene.Group(LayerLegend)
	lg := g.cfg.Legend
	if lg.Hidden {
		return group, nil
	}
	w, h := lg.Width, lg.Height
	if w == 0 {
		w = LegendWidth
	}
	if h == 0 {
		h = LegendHeight
	}
	group.Transform = &scene.Transform{X: lg.X, Y: lg.Y, Scale: 1}

	fill, stroke := palette.Panel(0.3)
	group.Add(scene.Rect("Panel", 0, 0, w, h, legendCorner, style.Style{
		Fill:         &fill,
		Stroke:       &stroke,
		StrokeWeight: 1,
		Effects:      []style.Effect{panelShadow(0.4, 20)},
	}))
	inner := w - 40
	group.Add(text("Title", 20, 20, inner, scene.Text{Content: LegendTitle, FontSize: 14, Bold: true}, palette.Base.Gold))

	y := legendItemStart
	for _, item := range lg.Items {
		tpl, err := g.catalog.Lookup(catalog.Key{State: item.State, Shape: grid.ShapeCircle})
		if err != nil {
			return scene.Node{}, err
		}
		group.Add(catalog.Instantiate(tpl, geom.Pt(20, y), LegendIconSize, "Icon-"+string(item.State), item.State.Initial(), 10))
		group.Add(text("Label-"+string(item.State), 82, y+6, w-102, scene.Text{Content: item.Label, FontSize: 13, Bold: true}, palette.Base.Surface))
		group.Add(text("LabelEn-"+string(item.State), 82, y+22, w-102, scene.Text{Content: item.LabelEn, FontSize: 10}, palette.Base.SurfaceDim))
		group.Add(text("Description-"+string(item.State), 82, y+36, w-102, scene.Text{Content: item.Description, FontSize: 10}, palette.Dim(0.6)))
		y += legendItemStep
	}

	if len(g.cfg.Resources) > 0 {
		y += 10
		group.Add(text("ResourcesTitle", 20, y, inner, scene.Text{Content: LegendResourcesTitle, FontSize: 11, Bold: true}, palette.Base.GoldDim))
		y += 20
		for _, r := range g.cfg.Resources {
			dot := style.Filled(r.Color).WithEffects(style.Shadow(r.Color, 0.5, 4))
			group.Add(scene.Circle("Resource-"+r.Type, geom.Pt(25, y+7), 10, dot))
			name := r.Label
			if name == "" {
				name = r.Type
			}
			group.Add(text("ResourceName-"+r.Type, 42, y, 36, scene.Text{Content: name, FontSize: 10, Bold: true}, r.Color))
			group.Add(text("ResourceDescription-"+r.Type, 80, y, w-100, scene.Text{Content: r.Description, FontSize: 9}, palette.Dim(0.6)))
			y += legendRowStep
		}
	}

	y += 12
	group.Add(text("PathsTitle", 20, y, inner, scene.Text{Content: LegendPathsTitle, FontSize: 11, Bold: true}, palette.Base.GoldDim))
	y += 20
	for _, t := range grid.PathTypes {
		group.Add(text("Path-"+string(t), 25, y, inner, scene.Text{Content: PathLegend[t], FontSize: 10}, palette.Dim(0.7)))
		y += legendRowStep
	}
	return group, nil
}

func (g *generator) title() (scene.Node, bool) {
	t, gates := g.cfg.Title, g.cfg.Gates
	if t.Text == "" && len(gates.Conditions) == 0 {
		return scene.Node{}, false
	}
	group := scene.Group(LayerTitle)

	if t.Text != "" {
		size := t.FontSize
		if size == 0 {
			size = 32
		}
		heading := text("Heading", t.X, t.Y, 600, scene.Text{Content: t.Text, FontSize: size, Bold: true, Spacing: 4}, palette.Base.Gold)
		heading.Style.Effects = []style.Effect{style.Shadow(palette.Base.Gold, 0.5, 20)}
		group.Add(heading)
		if t.Subtitle != "" {
			group.Add(text("Subtitle", t.X, t.Y+size+8, 600, scene.Text{Content: t.Subtitle, FontSize: 18}, palette.Dim(0.7)))
		}
	}

	if len(gates.Conditions) > 0 {
		w, h := gates.Width, gates.Height
		if w == 0 {
			w = 320
		}
		if h == 0 {
			h = 180
		}
		fill, stroke := palette.Panel(0.4)
		box := scene.Group("Gates")
		box.Transform = &scene.Transform{X: gates.X, Y: gates.Y, Scale: 1}
		box.Add(scene.Rect("Panel", 0, 0, w, h, 12, style.Style{
			Fill:         &fill,
			Stroke:       &stroke,
			StrokeWeight: 1,
			Effects:      []style.Effect{panelShadow(0.3, 16)},
		}))
		if gates.Title != "" {
			box.Add(text("Title", 16, 14, w-32, scene.Text{Content: gates.Title, FontSize: 12, Bold: true}, palette.Base.GoldDim))
		}
		box.Add(text("Conditions", 16, 36, w-32,
			scene.Text{Content: strings.Join(gates.Conditions, "\n"), FontSize: 11, LineHeight: 18},
			palette.Dim(0.75)))
		group.Add(box)
	}
	return group, true
}

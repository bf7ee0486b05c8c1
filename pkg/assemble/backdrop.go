package assemble

import (
	"math"

	"github.com/matzehuels/spheregrid/pkg/color"
	"github.com/matzehuels/spheregrid/pkg/geom"
	"github.com/matzehuels/spheregrid/pkg/palette"
	"github.com/matzehuels/spheregrid/pkg/rng"
	"github.com/matzehuels/spheregrid/pkg/scene"
	"github.com/matzehuels/spheregrid/pkg/starfield"
	"github.com/matzehuels/spheregrid/pkg/style"
)

const vignetteBlur = 180.0

func (g *generator) background() scene.Node {
	c := g.cfg.Canvas
	return scene.Group(LayerBackground,
		scene.Rect("Base", 0, 0, c.Width, c.Height, 0, style.Filled(palette.Base.Deep)),
	)
}

func (g *generator) starField(r *rng.LCG) scene.Node {
	group := scene.Group(LayerStarField)
	stars := starfield.Generate(r, g.cfg.Canvas, g.layout.Center, g.cfg.Background.StarField)
	if n := starfield.CappedCount(stars); n > 0 {
		g.warn("%d of %d stars hit the %d-attempt cap and may overlap the avoid radius",
			n, len(stars), starfield.MaxAttempts)
	}
	for _, s := range stars {
		st := style.Filled(palette.Base.StarBright).WithOpacity(s.Opacity)
		if s.Glow {
			st = st.WithEffects(style.Shadow(palette.Base.StarBlue, 0.5, s.Size*2))
		}
		group.Add(scene.Circle("Star", geom.Pt(s.X, s.Y), s.Size, st))
	}
	return group
}

func (g *generator) centerGlow() scene.Node {
	group := scene.Group(LayerCenterGlow)
	cg := g.cfg.Background.CenterGlow
	if !cg.Enabled || cg.Opacity <= 0 {
		return group
	}
	st := style.Filled(palette.Base.Glow).WithOpacity(cg.Opacity).WithEffects(style.Blur(cg.Blur))
	group.Add(scene.Circle("Glow", g.layout.Center, cg.Radius*2, st))
	return group
}

// vignette is a very wide, heavily blurred black ring whose inner edge fades
// toward the center.
func (g *generator) vignette() scene.Node {
	group := scene.Group(LayerVignette)
	v := g.cfg.Background.Vignette
	if !v.Enabled || v.Intensity <= 0 {
		return group
	}
	c := g.cfg.Canvas
	radius := math.Hypot(c.Width, c.Height) * v.RadiusRatio
	d := radius * 2.2
	st := style.Stroked(color.Black, radius*0.5).WithOpacity(v.Intensity).WithEffects(style.Blur(vignetteBlur))
	center := g.layout.Center
	group.Add(scene.Ellipse("Shade", center.X-d/2, center.Y-d/2, d, d, st))
	return group
}

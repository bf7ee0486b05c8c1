package sink

import (
	"bytes"
	"context"
	"math"

	"github.com/gogpu/gg"

	"github.com/matzehuels/spheregrid/pkg/color"
	"github.com/matzehuels/spheregrid/pkg/geom"
	"github.com/matzehuels/spheregrid/pkg/render"
	"github.com/matzehuels/spheregrid/pkg/scene"
	"github.com/matzehuels/spheregrid/pkg/style"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	svgOpts   []SVGOption
	scale     float64
	converter bool
}

// WithPNGSVGOptions passes options through to the SVG renderer used with
// [WithConverter].
func WithPNGSVGOptions(opts ...SVGOption) PNGOption {
	return func(r *pngRenderer) { r.svgOpts = opts }
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithConverter rasterizes through rsvg-convert instead of the in-process
// rasterizer. Output then includes text and exact filter effects.
func WithConverter() PNGOption {
	return func(r *pngRenderer) { r.converter = true }
}

// RenderPNG rasterizes the scene. By default it draws in-process with gg,
// which needs no external tools but skips text, approximates blurs with
// reduced alpha and drops shadows. Use [WithConverter] for full fidelity.
func RenderPNG(ctx context.Context, s *scene.Scene, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	if r.converter {
		return render.ToPNG(ctx, RenderSVG(s, r.svgOpts...), r.scale)
	}

	w := int(math.Ceil(s.Width * r.scale))
	h := int(math.Ceil(s.Height * r.scale))
	dc := gg.NewContext(w, h)
	defer dc.Close()
	dc.Scale(r.scale, r.scale)

	if err := r.draw(ctx, dc, &s.Root); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *pngRenderer) draw(ctx context.Context, dc *gg.Context, n *scene.Node) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	switch n.Kind {
	case scene.KindGroup:
		layered := n.Style.EffectiveOpacity() < 1
		if layered {
			dc.PushLayer(gg.BlendNormal, n.Style.EffectiveOpacity())
		}
		dc.Push()
		if t := n.Transform; t != nil {
			dc.Translate(t.X, t.Y)
			dc.Scale(t.Scale, t.Scale)
		}
		for i := range n.Children {
			if err := r.draw(ctx, dc, &n.Children[i]); err != nil {
				dc.Pop()
				return err
			}
		}
		dc.Pop()
		if layered {
			dc.PopLayer()
		}
		return nil

	case scene.KindText:
		// No font faces are bundled.
		return nil
	}

	if !tracePath(dc, n) {
		return nil
	}
	return paint(dc, n.Style)
}

// tracePath adds n's outline to the current path.
func tracePath(dc *gg.Context, n *scene.Node) bool {
	switch n.Kind {
	case scene.KindRect:
		roundedRect(dc, n.X, n.Y, n.W, n.H, n.Corner)
	case scene.KindCircle, scene.KindEllipse:
		c := n.Center()
		dc.DrawEllipse(c.X, c.Y, n.W/2, n.H/2)
	case scene.KindPolygon:
		for i, v := range n.Vertices() {
			if i == 0 {
				dc.MoveTo(v.X, v.Y)
			} else {
				dc.LineTo(v.X, v.Y)
			}
		}
		dc.ClosePath()
	case scene.KindPath:
		if n.Path == nil {
			return false
		}
		tracePathData(dc, *n.Path)
	default:
		return false
	}
	return true
}

// roundedRect traces the rectangle with path primitives so that it follows
// the current transform.
func roundedRect(dc *gg.Context, x, y, w, h, r float64) {
	r = math.Min(r, math.Min(w, h)/2)
	if r <= 0 {
		dc.MoveTo(x, y)
		dc.LineTo(x+w, y)
		dc.LineTo(x+w, y+h)
		dc.LineTo(x, y+h)
		dc.ClosePath()
		return
	}
	dc.MoveTo(x+r, y)
	dc.LineTo(x+w-r, y)
	dc.QuadraticTo(x+w, y, x+w, y+r)
	dc.LineTo(x+w, y+h-r)
	dc.QuadraticTo(x+w, y+h, x+w-r, y+h)
	dc.LineTo(x+r, y+h)
	dc.QuadraticTo(x, y+h, x, y+h-r)
	dc.LineTo(x, y+r)
	dc.QuadraticTo(x, y, x+r, y)
	dc.ClosePath()
}

// arcStep is the angular resolution used to flatten arcs, in degrees.
const arcStep = 2.0

func tracePathData(dc *gg.Context, p geom.Path) {
	for _, s := range p.Segments {
		switch s.Op {
		case geom.OpMove:
			dc.MoveTo(s.To.X, s.To.Y)
		case geom.OpLine:
			dc.LineTo(s.To.X, s.To.Y)
		case geom.OpQuad:
			dc.QuadraticTo(s.Ctrl.X, s.Ctrl.Y, s.To.X, s.To.Y)
		case geom.OpArc:
			a := s.Arc
			span := a.EndAngle - a.StartAngle
			steps := int(math.Ceil(math.Abs(span) / arcStep))
			for i := 1; i < steps; i++ {
				q := geom.Polar(a.Center, a.Radius, a.StartAngle+span*float64(i)/float64(steps))
				dc.LineTo(q.X, q.Y)
			}
			dc.LineTo(s.To.X, s.To.Y)
		}
	}
}

// blurFade scales the alpha of blurred primitives, which are drawn sharp.
const blurFade = 0.5

func paint(dc *gg.Context, s style.Style) error {
	alpha := s.EffectiveOpacity()
	if s.BlurRadius() > 0 {
		alpha *= blurFade
	}
	if s.Fill != nil {
		setColor(dc, *s.Fill, alpha)
		if s.Stroke != nil {
			if err := dc.FillPreserve(); err != nil {
				return err
			}
		} else {
			return dc.Fill()
		}
	}
	if s.Stroke == nil || s.StrokeWeight <= 0 {
		dc.ClearPath()
		return nil
	}
	setColor(dc, *s.Stroke, alpha)
	dc.SetLineWidth(s.StrokeWeight)
	if len(s.Dash) > 0 {
		dc.SetDash(s.Dash...)
	} else {
		dc.ClearDash()
	}
	if s.RoundCap {
		dc.SetLineCap(gg.LineCapRound)
	} else {
		dc.SetLineCap(gg.LineCapButt)
	}
	return dc.Stroke()
}

func setColor(dc *gg.Context, c color.RGB, alpha float64) {
	dc.SetRGBA(c.R, c.G, c.B, alpha)
}

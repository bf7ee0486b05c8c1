package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/spheregrid/pkg/geom"
	"github.com/matzehuels/spheregrid/pkg/scene"
	"github.com/matzehuels/spheregrid/pkg/style"
)

// DefaultFontFamily is the CSS font stack used for text.
const DefaultFontFamily = "'Noto Sans JP', 'Hiragino Sans', sans-serif"

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	fontFamily string
	ids        bool
	filters    map[string]string
	defs       bytes.Buffer
}

// WithFontFamily overrides the CSS font stack.
func WithFontFamily(f string) SVGOption { return func(r *svgRenderer) { r.fontFamily = f } }

// WithIDs emits node names as element ids.
func WithIDs() SVGOption { return func(r *svgRenderer) { r.ids = true } }

// RenderSVG writes s as a standalone SVG document. Effects become shared
// filter definitions; blur radii map to a Gaussian standard deviation of
// radius/2.
func RenderSVG(s *scene.Scene, opts ...SVGOption) []byte {
	r := &svgRenderer{fontFamily: DefaultFontFamily, filters: map[string]string{}}
	for _, opt := range opts {
		opt(r)
	}

	var body bytes.Buffer
	r.renderNode(&body, &s.Root, 1)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%.0f" height="%.0f">`+"\n",
		num(s.Width), num(s.Height), s.Width, s.Height)
	if r.defs.Len() > 0 {
		buf.WriteString("  <defs>\n")
		buf.Write(r.defs.Bytes())
		buf.WriteString("  </defs>\n")
	}
	buf.Write(body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) renderNode(buf *bytes.Buffer, n *scene.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	attrs := r.common(n)

	switch n.Kind {
	case scene.KindGroup:
		if n.Transform != nil {
			attrs = append(attrs, fmt.Sprintf(`transform="translate(%s %s) scale(%s)"`,
				num(n.Transform.X), num(n.Transform.Y), num(n.Transform.Scale)))
		}
		fmt.Fprintf(buf, "%s<g%s>\n", indent, join(attrs))
		for i := range n.Children {
			r.renderNode(buf, &n.Children[i], depth+1)
		}
		fmt.Fprintf(buf, "%s</g>\n", indent)

	case scene.KindRect:
		corner := ""
		if n.Corner > 0 {
			corner = fmt.Sprintf(` rx="%s"`, num(n.Corner))
		}
		fmt.Fprintf(buf, `%s<rect x="%s" y="%s" width="%s" height="%s"%s%s/>`+"\n",
			indent, num(n.X), num(n.Y), num(n.W), num(n.H), corner, join(attrs))

	case scene.KindCircle, scene.KindEllipse:
		c := n.Center()
		if n.W == n.H {
			fmt.Fprintf(buf, `%s<circle cx="%s" cy="%s" r="%s"%s/>`+"\n",
				indent, num(c.X), num(c.Y), num(n.W/2), join(attrs))
		} else {
			fmt.Fprintf(buf, `%s<ellipse cx="%s" cy="%s" rx="%s" ry="%s"%s/>`+"\n",
				indent, num(c.X), num(c.Y), num(n.W/2), num(n.H/2), join(attrs))
		}

	case scene.KindPolygon:
		pts := make([]string, 0, n.Sides)
		for _, v := range n.Vertices() {
			pts = append(pts, num(v.X)+","+num(v.Y))
		}
		fmt.Fprintf(buf, `%s<polygon points="%s"%s/>`+"\n", indent, strings.Join(pts, " "), join(attrs))

	case scene.KindPath:
		if n.Path == nil {
			return
		}
		fmt.Fprintf(buf, `%s<path d="%s"%s/>`+"\n", indent, PathData(*n.Path), join(attrs))

	case scene.KindText:
		r.renderText(buf, n, indent, attrs)
	}
}

func (r *svgRenderer) renderText(buf *bytes.Buffer, n *scene.Node, indent string, attrs []string) {
	t := n.Text
	if t == nil || t.Content == "" {
		return
	}
	lines := strings.Split(t.Content, "\n")
	lh := t.LineHeight
	if lh == 0 {
		lh = t.FontSize * 1.2
	}

	x, anchor := n.X, "start"
	switch t.Align {
	case "CENTER":
		x, anchor = n.X+n.W/2, "middle"
	case "RIGHT":
		x, anchor = n.X+n.W, "end"
	}
	top := n.Y
	if t.Middle {
		top = n.Y + (n.H-lh*float64(len(lines)))/2
	}
	// Baseline sits about 80% down the line box.
	baseline := top + lh*0.8

	attrs = append(attrs,
		fmt.Sprintf(`font-family="%s"`, r.fontFamily),
		fmt.Sprintf(`font-size="%s"`, num(t.FontSize)),
		fmt.Sprintf(`text-anchor="%s"`, anchor))
	if t.Bold {
		attrs = append(attrs, `font-weight="bold"`)
	}
	if t.Spacing != 0 {
		attrs = append(attrs, fmt.Sprintf(`letter-spacing="%s"`, num(t.Spacing)))
	}

	fmt.Fprintf(buf, `%s<text x="%s" y="%s"%s>`, indent, num(x), num(baseline), join(attrs))
	for i, line := range lines {
		if i == 0 {
			buf.WriteString("<tspan>")
		} else {
			fmt.Fprintf(buf, `<tspan x="%s" dy="%s">`, num(x), num(lh))
		}
		xml.EscapeText(buf, []byte(line))
		buf.WriteString("</tspan>")
	}
	buf.WriteString("</text>\n")
}

// common returns the paint attributes shared by every element kind.
func (r *svgRenderer) common(n *scene.Node) []string {
	var attrs []string
	if r.ids && n.Name != "" {
		attrs = append(attrs, fmt.Sprintf(`id="%s"`, escapeAttr(n.Name)))
	}
	s := n.Style
	if n.Kind != scene.KindGroup {
		if s.Fill != nil {
			attrs = append(attrs, fmt.Sprintf(`fill="%s"`, s.Fill.Hex()))
		} else {
			attrs = append(attrs, `fill="none"`)
		}
		if s.Stroke != nil && s.StrokeWeight > 0 {
			attrs = append(attrs,
				fmt.Sprintf(`stroke="%s"`, s.Stroke.Hex()),
				fmt.Sprintf(`stroke-width="%s"`, num(s.StrokeWeight)))
			if len(s.Dash) > 0 {
				parts := make([]string, len(s.Dash))
				for i, d := range s.Dash {
					parts[i] = num(d)
				}
				attrs = append(attrs, fmt.Sprintf(`stroke-dasharray="%s"`, strings.Join(parts, " ")))
			}
			if s.RoundCap {
				attrs = append(attrs, `stroke-linecap="round"`)
			}
		}
	}
	if o := s.EffectiveOpacity(); o < 1 {
		attrs = append(attrs, fmt.Sprintf(`opacity="%s"`, num(o)))
	}
	if id := r.filter(s); id != "" {
		attrs = append(attrs, fmt.Sprintf(`filter="url(#%s)"`, id))
	}
	return attrs
}

// filter returns the id of a filter reproducing s's effects, defining it on
// first use.
func (r *svgRenderer) filter(s style.Style) string {
	if len(s.Effects) == 0 {
		return ""
	}
	var def bytes.Buffer
	var merge []string
	for i, e := range s.Shadows() {
		fmt.Fprintf(&def, `<feGaussianBlur in="SourceAlpha" stdDeviation="%s" result="b%d"/>`, num(e.Radius/2), i)
		fmt.Fprintf(&def, `<feOffset in="b%d" dx="%s" dy="%s" result="o%d"/>`, i, num(e.OffsetX), num(e.OffsetY), i)
		fmt.Fprintf(&def, `<feFlood flood-color="%s" flood-opacity="%s" result="c%d"/>`, e.Color.Color.Hex(), num(e.Color.A), i)
		fmt.Fprintf(&def, `<feComposite in="c%d" in2="o%d" operator="in" result="s%d"/>`, i, i, i)
		merge = append(merge, fmt.Sprintf("s%d", i))
	}
	source := "SourceGraphic"
	if b := s.BlurRadius(); b > 0 {
		fmt.Fprintf(&def, `<feGaussianBlur in="SourceGraphic" stdDeviation="%s" result="g"/>`, num(b/2))
		source = "g"
	}
	if len(merge) > 0 {
		def.WriteString("<feMerge>")
		for _, m := range merge {
			fmt.Fprintf(&def, `<feMergeNode in="%s"/>`, m)
		}
		fmt.Fprintf(&def, `<feMergeNode in="%s"/>`, source)
		def.WriteString("</feMerge>")
	}

	key := def.String()
	if id, ok := r.filters[key]; ok {
		return id
	}
	id := fmt.Sprintf("fx%d", len(r.filters))
	r.filters[key] = id
	// Filter regions are sized to the viewport so strokes with an empty
	// bounding box (straight lines) still get their glow.
	fmt.Fprintf(&r.defs, `    <filter id="%s" filterUnits="userSpaceOnUse" x="-50%%" y="-50%%" width="200%%" height="200%%">%s</filter>`+"\n", id, key)
	return id
}

// PathData serializes p as SVG path data.
func PathData(p geom.Path) string {
	parts := make([]string, 0, len(p.Segments))
	for _, s := range p.Segments {
		switch s.Op {
		case geom.OpMove:
			parts = append(parts, "M "+pt(s.To))
		case geom.OpLine:
			parts = append(parts, "L "+pt(s.To))
		case geom.OpQuad:
			parts = append(parts, "Q "+pt(*s.Ctrl)+" "+pt(s.To))
		case geom.OpArc:
			a := s.Arc
			parts = append(parts, fmt.Sprintf("A %s %s 0 %d %d %s",
				num(a.Radius), num(a.Radius), flag(a.LargeArc), flag(a.Sweep), pt(s.To)))
		}
	}
	return strings.Join(parts, " ")
}

func pt(p geom.Point) string { return num(p.X) + " " + num(p.Y) }

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}

// num formats v with at most three decimals and no trailing zeros.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" {
		return "0"
	}
	return s
}

func join(attrs []string) string {
	if len(attrs) == 0 {
		return ""
	}
	return " " + strings.Join(attrs, " ")
}

func escapeAttr(s string) string {
	var b bytes.Buffer
	xml.EscapeText(&b, []byte(s))
	return b.String()
}

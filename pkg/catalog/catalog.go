// Package catalog builds the node templates, one per (state, shape) pair.
//
// A template is an immutable scene subtree drawn at the reference size in
// its own coordinate space. Placing a node is a structural copy of its
// template with a transform and a new label, so the visual recipe is
// computed once per pair instead of once per node.
package catalog

import (
	"fmt"
	"sort"

	"github.com/matzehuels/spheregrid/pkg/errors"
	"github.com/matzehuels/spheregrid/pkg/geom"
	"github.com/matzehuels/spheregrid/pkg/grid"
	"github.com/matzehuels/spheregrid/pkg/palette"
	"github.com/matzehuels/spheregrid/pkg/scene"
	"github.com/matzehuels/spheregrid/pkg/style"
)

// Template geometry, in template space.
const (
	ReferenceSize   = 92.0
	InnerRingOffset = 8.0
	GlowSpread      = 12.0
	LabelFontSize   = 10.0
	LabelLineHeight = 12.0
)

// Child names inside a template.
const (
	PartOuterGlow = "OuterGlow"
	PartSphere    = "Sphere"
	PartHighlight = "Highlight"
	PartInnerRing = "InnerRing"
	PartLabel     = "Label"
	PartLockIcon  = "LockIcon"
)

// Key identifies a template.
type Key struct {
	State grid.State
	Shape grid.Shape
}

func (k Key) String() string {
	return fmt.Sprintf("State=%s,Shape=%s", k.State, k.Shape)
}

// Keys returns every (state, shape) pair in a stable order.
func Keys() []Key {
	keys := make([]Key, 0, len(grid.States)*len(grid.Shapes))
	for _, st := range grid.States {
		for _, sh := range grid.Shapes {
			keys = append(keys, Key{State: st, Shape: sh})
		}
	}
	return keys
}

// Template is one reusable node composite.
type Template struct {
	Key  Key
	Size float64
	Root scene.Node
}

// Catalog maps keys to templates.
type Catalog struct {
	templates map[Key]*Template
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{templates: map[Key]*Template{}}
}

// Build returns the exhaustive catalog of all 16 templates.
func Build() *Catalog {
	c := New()
	for _, k := range Keys() {
		c.Add(NewTemplate(k))
	}
	return c
}

// Add registers t, replacing any template with the same key.
func (c *Catalog) Add(t *Template) {
	c.templates[t.Key] = t
}

// Remove drops the template for k.
func (c *Catalog) Remove(k Key) {
	delete(c.templates, k)
}

// Len returns the number of templates.
func (c *Catalog) Len() int { return len(c.templates) }

// Lookup returns the template for k. A missing template is a
// MISSING_TEMPLATE error; callers must not skip the node.
func (c *Catalog) Lookup(k Key) (*Template, error) {
	t, ok := c.templates[k]
	if !ok {
		return nil, errors.New(errors.ErrCodeMissingTemplate, "no template for %s", k)
	}
	return t, nil
}

// Templates returns all templates sorted by key.
func (c *Catalog) Templates() []*Template {
	out := make([]*Template, 0, len(c.templates))
	for _, t := range c.templates {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key.String() < out[j].Key.String() })
	return out
}

// NewTemplate draws the composite for k at ReferenceSize.
func NewTemplate(k Key) *Template {
	d := ReferenceSize
	p := palette.For(k.State)
	root := scene.Group(k.String())

	if k.State != grid.StateLocked {
		opacity, blur := 0.25, 16.0
		if k.State == grid.StateMastered {
			opacity, blur = 0.35, 24.0
		}
		glow := style.Filled(p.Glow).WithOpacity(opacity).WithEffects(style.Blur(blur))
		root.Add(scene.Ellipse(PartOuterGlow, -GlowSpread, -GlowSpread, d+2*GlowSpread, d+2*GlowSpread, glow))
	}

	body := style.Style{
		Fill:         &p.Fill,
		Stroke:       &p.Stroke,
		StrokeWeight: p.StrokeWeight,
		Effects:      p.Effects,
	}
	root.Add(shape(PartSphere, k.Shape, 0, d, body))

	hl := 0.2
	switch k.State {
	case grid.StateLocked:
		hl = 0.06
	case grid.StateMastered:
		hl = 0.3
	}
	root.Add(scene.Ellipse(PartHighlight, d*0.2, d*0.12, d*0.4, d*0.25,
		style.Filled(palette.Base.Surface).WithOpacity(hl).WithEffects(style.Blur(8))))

	ringOpacity := 0.6
	if k.State == grid.StateMastered {
		ringOpacity = 0.8
	}
	root.Add(shape(PartInnerRing, k.Shape, InnerRingOffset, d-2*InnerRingOffset,
		style.Stroked(p.Ring, 1).WithOpacity(ringOpacity)))

	root.Add(scene.TextNode(PartLabel, InnerRingOffset, InnerRingOffset, d-2*InnerRingOffset, d-2*InnerRingOffset,
		scene.Text{Content: "NODE", FontSize: LabelFontSize, LineHeight: LabelLineHeight, Bold: true, Align: "CENTER", Middle: true},
		style.Filled(p.Text)))

	if k.State == grid.StateLocked {
		root.Add(scene.TextNode(PartLockIcon, d-18, 4, 14, 14,
			scene.Text{Content: "🔒", FontSize: 12, Bold: true},
			style.Filled(p.Text).WithOpacity(0.5)))
	}

	return &Template{Key: k, Size: d, Root: root}
}

func shape(name string, s grid.Shape, offset, size float64, st style.Style) scene.Node {
	if sides := s.Sides(); sides > 0 {
		return scene.Polygon(name, sides, offset, offset, size, size, st)
	}
	return scene.Circle(name, geom.Pt(offset+size/2, offset+size/2), size, st)
}

// Instantiate places a copy of t with its box top-left at topLeft and the given
// diameter. The label is replaced and its font size is set so that it
// renders at fontSize regardless of the instance scale.
func Instantiate(t *Template, topLeft geom.Point, size float64, name, label string, fontSize float64) scene.Node {
	n := t.Root.Clone()
	n.Name = name
	n.Template = t.Key.String()
	scale := size / t.Size
	n.Transform = &scene.Transform{X: topLeft.X, Y: topLeft.Y, Scale: scale}
	if l := n.Find(PartLabel); l != nil && l.Text != nil {
		l.Text.Content = label
		if fontSize > 0 && scale > 0 {
			l.Text.FontSize = fontSize / scale
			l.Text.LineHeight = l.Text.FontSize * LabelLineHeight / LabelFontSize
		}
	}
	return n
}

// LabelFontSizeFor returns the label size for an importance level.
func LabelFontSizeFor(imp grid.Importance) float64 {
	switch imp {
	case grid.ImportanceMajor:
		return 11
	case grid.ImportanceMinor:
		return 9
	}
	return LabelFontSize
}

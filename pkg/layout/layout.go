// Package layout resolves where every node of a grid sits on the canvas.
//
// Placement is radial and fully config driven: a node on a tier sits at the
// tier radius along its configured angle, and a node on the CORE sentinel
// sits at the canvas center. Sizes come from a fixed importance table scaled
// by the node's size multiplier. Anchors are node centers; [TopLeft] converts
// an anchor to the top-left corner renderers position boxes with.
package layout

import (
	"github.com/matzehuels/spheregrid/pkg/errors"
	"github.com/matzehuels/spheregrid/pkg/geom"
	"github.com/matzehuels/spheregrid/pkg/grid"
)

// Base node sizes in pixels.
const (
	SizeMajor    = 110.0
	SizeStandard = 92.0
	SizeMinor    = 70.0
)

// BaseSize returns the diameter for an importance level. Unknown values
// fall back to the standard size.
func BaseSize(imp grid.Importance) float64 {
	switch imp {
	case grid.ImportanceMajor:
		return SizeMajor
	case grid.ImportanceMinor:
		return SizeMinor
	}
	return SizeStandard
}

// Size returns the rendered diameter of n.
func Size(n grid.Node) float64 {
	return BaseSize(n.EffectiveImportance()) * n.Multiplier()
}

// Position returns the anchor of n around center. Nodes on the CORE tier
// are anchored at the center and their angle is ignored. A tier id that
// does not resolve is an error; it never defaults to radius zero.
func Position(n grid.Node, tiers []grid.Tier, center geom.Point) (geom.Point, error) {
	if n.IsCore() {
		return center, nil
	}
	for _, t := range tiers {
		if t.ID == n.Tier {
			return geom.Polar(center, t.Radius, n.Angle), nil
		}
	}
	return geom.Point{}, errors.New(errors.ErrCodeUnknownTier, "node %q references unknown tier %q", n.ID, n.Tier)
}

// TopLeft returns the top-left corner of a size×size box centered on anchor.
func TopLeft(anchor geom.Point, size float64) geom.Point {
	return geom.Point{X: anchor.X - size/2, Y: anchor.Y - size/2}
}

// Placement is the resolved geometry of one node.
type Placement struct {
	ID     string     `json:"id"`
	Anchor geom.Point `json:"anchor"`
	Size   float64    `json:"size"`
}

// TopLeft returns the top-left corner of the node box.
func (p Placement) TopLeft() geom.Point { return TopLeft(p.Anchor, p.Size) }

// Layout holds every node placement of one generation pass. It is read-only
// once returned by Resolve.
type Layout struct {
	Center     geom.Point
	Placements []Placement
	index      map[string]int
}

// Resolve places every node of cfg. The center is the middle of the canvas.
func Resolve(cfg *grid.Config) (*Layout, error) {
	center := geom.Pt(cfg.Canvas.Width/2, cfg.Canvas.Height/2)
	l := &Layout{
		Center:     center,
		Placements: make([]Placement, 0, len(cfg.Nodes)),
		index:      make(map[string]int, len(cfg.Nodes)),
	}
	for _, n := range cfg.Nodes {
		anchor, err := Position(n, cfg.Tiers, center)
		if err != nil {
			return nil, err
		}
		l.index[n.ID] = len(l.Placements)
		l.Placements = append(l.Placements, Placement{ID: n.ID, Anchor: anchor, Size: Size(n)})
	}
	return l, nil
}

// Placement returns the placement of the node with the given id.
func (l *Layout) Placement(id string) (Placement, bool) {
	i, ok := l.index[id]
	if !ok {
		return Placement{}, false
	}
	return l.Placements[i], true
}

// Anchor returns the anchor of the node with the given id.
func (l *Layout) Anchor(id string) (geom.Point, bool) {
	p, ok := l.Placement(id)
	return p.Anchor, ok
}

// Size returns the diameter of the node with the given id.
func (l *Layout) Size(id string) (float64, bool) {
	p, ok := l.Placement(id)
	return p.Size, ok
}

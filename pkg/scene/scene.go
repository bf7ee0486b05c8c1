// Package scene defines the render tree produced by assembly and consumed
// by sinks.
//
// A scene is an ordered tree of primitive descriptors. Z-order is declaration
// order: a container is painted before its children and siblings are painted
// first to last. Nothing in this package draws; sinks in pkg/render walk the
// tree and translate each node for their backend.
//
// Geometry uses boxes: X and Y are the top-left corner, W and H the extent.
// Circles and ellipses are inscribed in their box, polygons are regular with
// their first vertex at the top of the box. Paths carry absolute points.
// Group transforms apply to every descendant.
package scene

import (
	"math"

	"github.com/matzehuels/spheregrid/pkg/geom"
	"github.com/matzehuels/spheregrid/pkg/style"
)

// Kind is the primitive type of a node.
type Kind string

const (
	KindGroup   Kind = "group"
	KindRect    Kind = "rect"
	KindCircle  Kind = "circle"
	KindEllipse Kind = "ellipse"
	KindPolygon Kind = "polygon"
	KindPath    Kind = "path"
	KindText    Kind = "text"
)

// Transform translates and then uniformly scales a group's children.
type Transform struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Scale float64 `json:"scale"`
}

// Apply maps a point from group space to parent space.
func (t Transform) Apply(p geom.Point) geom.Point {
	return geom.Pt(t.X+p.X*t.Scale, t.Y+p.Y*t.Scale)
}

// Text describes the content and typography of a text node.
type Text struct {
	Content    string  `json:"content"`
	FontSize   float64 `json:"fontSize"`
	LineHeight float64 `json:"lineHeight,omitempty"`
	Bold       bool    `json:"bold,omitempty"`
	Align      string  `json:"align,omitempty"`
	Middle     bool    `json:"middle,omitempty"`
	Spacing    float64 `json:"letterSpacing,omitempty"`
}

// Node is one primitive of the render tree.
type Node struct {
	Kind      Kind        `json:"kind"`
	Name      string      `json:"name,omitempty"`
	X         float64     `json:"x,omitempty"`
	Y         float64     `json:"y,omitempty"`
	W         float64     `json:"w,omitempty"`
	H         float64     `json:"h,omitempty"`
	Corner    float64     `json:"corner,omitempty"`
	Sides     int         `json:"sides,omitempty"`
	Path      *geom.Path  `json:"path,omitempty"`
	Text      *Text       `json:"text,omitempty"`
	Style     style.Style `json:"style"`
	Transform *Transform  `json:"transform,omitempty"`
	Template  string      `json:"template,omitempty"`
	Children  []Node      `json:"children,omitempty"`
}

// Group returns a named container.
func Group(name string, children ...Node) Node {
	return Node{Kind: KindGroup, Name: name, Children: children}
}

// Circle returns a circle of diameter d centered on c.
func Circle(name string, c geom.Point, d float64, s style.Style) Node {
	return Node{Kind: KindCircle, Name: name, X: c.X - d/2, Y: c.Y - d/2, W: d, H: d, Style: s}
}

// Ellipse returns an ellipse inscribed in the given box.
func Ellipse(name string, x, y, w, h float64, s style.Style) Node {
	return Node{Kind: KindEllipse, Name: name, X: x, Y: y, W: w, H: h, Style: s}
}

// Rect returns a rectangle with optional rounded corners.
func Rect(name string, x, y, w, h, corner float64, s style.Style) Node {
	return Node{Kind: KindRect, Name: name, X: x, Y: y, W: w, H: h, Corner: corner, Style: s}
}

// Polygon returns a regular polygon with the given number of sides inscribed
// in the box.
func Polygon(name string, sides int, x, y, w, h float64, s style.Style) Node {
	return Node{Kind: KindPolygon, Name: name, Sides: sides, X: x, Y: y, W: w, H: h, Style: s}
}

// PathNode returns a path primitive.
func PathNode(name string, p geom.Path, s style.Style) Node {
	return Node{Kind: KindPath, Name: name, Path: &p, Style: s}
}

// TextNode returns a text primitive laid out in the given box.
func TextNode(name string, x, y, w, h float64, t Text, s style.Style) Node {
	return Node{Kind: KindText, Name: name, X: x, Y: y, W: w, H: h, Text: &t, Style: s}
}

// Center returns the center of the node box.
func (n *Node) Center() geom.Point { return geom.Pt(n.X+n.W/2, n.Y+n.H/2) }

// Vertices returns the corner points of a polygon node, first vertex at the
// top, clockwise.
func (n *Node) Vertices() []geom.Point {
	if n.Sides < 3 {
		return nil
	}
	c := n.Center()
	rx, ry := n.W/2, n.H/2
	pts := make([]geom.Point, n.Sides)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n.Sides)
		pts[i] = geom.Pt(c.X+rx*math.Sin(a), c.Y-ry*math.Cos(a))
	}
	return pts
}

// Add appends children and returns n for chaining.
func (n *Node) Add(children ...Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Walk visits n and its descendants depth first in paint order. Returning
// false from fn skips the node's children.
func (n *Node) Walk(fn func(n *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(n *Node, depth int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for i := range n.Children {
		n.Children[i].walk(fn, depth+1)
	}
}

// Find returns the first node with the given name, or nil.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.Walk(func(c *Node, _ int) bool {
		if found != nil {
			return false
		}
		if c.Name == name {
			found = c
			return false
		}
		return true
	})
	return found
}

// Count returns how many nodes of kind are in the subtree.
func (n *Node) Count(kind Kind) int {
	count := 0
	n.Walk(func(c *Node, _ int) bool {
		if c.Kind == kind {
			count++
		}
		return true
	})
	return count
}

// Clone returns a deep copy of n.
func (n *Node) Clone() Node {
	out := *n
	out.Style = n.Style.Clone()
	if n.Path != nil {
		p := n.Path.Clone()
		out.Path = &p
	}
	if n.Text != nil {
		t := *n.Text
		out.Text = &t
	}
	if n.Transform != nil {
		t := *n.Transform
		out.Transform = &t
	}
	if n.Children != nil {
		out.Children = make([]Node, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = c.Clone()
		}
	}
	return out
}

// Scene is the complete output of one generation pass.
type Scene struct {
	ID       string   `json:"id"`
	Name     string   `json:"name,omitempty"`
	Width    float64  `json:"width"`
	Height   float64  `json:"height"`
	Seed     uint32   `json:"seed"`
	Root     Node     `json:"root"`
	Warnings []string `json:"warnings,omitempty"`
}

// Layer returns the top-level group with the given name, or nil.
func (s *Scene) Layer(name string) *Node {
	for i := range s.Root.Children {
		if s.Root.Children[i].Name == name {
			return &s.Root.Children[i]
		}
	}
	return nil
}

// LayerNames returns the names of the top-level groups in paint order.
func (s *Scene) LayerNames() []string {
	names := make([]string, len(s.Root.Children))
	for i, c := range s.Root.Children {
		names[i] = c.Name
	}
	return names
}

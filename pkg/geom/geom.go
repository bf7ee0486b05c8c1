// Package geom holds the 2D primitives shared by layout, path and sector
// computation: points and backend-neutral path descriptions.
//
// Angles are in degrees and follow screen orientation: 0° points right and
// positive angles rotate clockwise because y grows downward.
package geom

import "math"

// Point is a position in canvas coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Scale(k float64) Point { return Point{p.X * k, p.Y * k} }
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }
func (p Point) Dist(q Point) float64 { return p.Sub(q).Len() }
func (p Point) Mid(q Point) Point { return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2} }
func (p Point) Eq(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Polar returns center + r*(cos θ, sin θ) for θ in degrees.
func Polar(center Point, r, deg float64) Point {
	a := Radians(deg)
	return Point{center.X + r*math.Cos(a), center.Y + r*math.Sin(a)}
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the midpoint of r.
func (r Rect) Center() Point { return Point{r.X + r.W/2, r.Y + r.H/2} }

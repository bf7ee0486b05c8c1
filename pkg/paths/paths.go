// Package paths synthesizes connector geometry between node anchors and
// holds the per path-type stroke table.
package paths

import (
	"github.com/matzehuels/spheregrid/pkg/errors"
	"github.com/matzehuels/spheregrid/pkg/geom"
	"github.com/matzehuels/spheregrid/pkg/grid"
)

// DefaultCurveIntensity is the bezier offset ratio used when an edge does
// not override it.
const DefaultCurveIntensity = 0.15

// Straight returns a two-point path from a to b.
func Straight(a, b geom.Point) geom.Path {
	var p geom.Path
	p.MoveTo(a).LineTo(b)
	return p
}

// Bezier returns a quadratic curve from a to b. The control point is the
// midpoint pushed along the (-dy, dx) normal by |ab|*intensity. Coincident
// endpoints have no normal and yield a DEGENERATE_CURVE error.
func Bezier(a, b geom.Point, intensity float64) (geom.Path, error) {
	d := b.Sub(a)
	l := d.Len()
	if l == 0 {
		return geom.Path{}, errors.New(errors.ErrCodeDegenerateCurve, "zero-length curve at (%g, %g)", a.X, a.Y)
	}
	normal := geom.Pt(-d.Y/l, d.X/l)
	ctrl := a.Mid(b).Add(normal.Scale(l * intensity))

	var p geom.Path
	p.MoveTo(a).QuadTo(ctrl, b)
	return p, nil
}

// ControlPoint returns the bezier control point for a and b, or false for
// coincident endpoints.
func ControlPoint(a, b geom.Point, intensity float64) (geom.Point, bool) {
	p, err := Bezier(a, b, intensity)
	if err != nil {
		return geom.Point{}, false
	}
	return *p.Segments[1].Ctrl, true
}

// Edge returns the path for one connector. A bezier request with coincident
// endpoints falls back to a straight path and reports fellBack.
func Edge(a, b geom.Point, curve grid.CurveType, intensity float64) (path geom.Path, fellBack bool) {
	if curve != grid.CurveBezier {
		return Straight(a, b), false
	}
	p, err := Bezier(a, b, intensity)
	if err != nil {
		return Straight(a, b), true
	}
	return p, false
}

// Intensity returns the edge's curve intensity or the default.
func Intensity(e grid.Edge) float64 {
	if e.Intensity == nil {
		return DefaultCurveIntensity
	}
	return *e.Intensity
}

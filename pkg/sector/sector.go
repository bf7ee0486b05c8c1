// Package sector builds the arc and label anchor that mark each domain's
// angular range outside the outermost tier.
package sector

import (
	"github.com/matzehuels/spheregrid/pkg/geom"
	"github.com/matzehuels/spheregrid/pkg/grid"
)

const (
	// ArcMargin is the gap between the outermost tier and the sector arcs.
	ArcMargin = 50.0
	// LabelOffset is how far beyond the arc the domain label sits.
	LabelOffset = 30.0
)

// Sector is the resolved geometry of one domain wedge.
type Sector struct {
	Domain   grid.Domain
	Radius   float64
	Path     geom.Path
	LargeArc bool
	Sweep    bool
	Label    geom.Point
}

// Radius returns the arc radius for cfg: the outermost tier plus ArcMargin.
func Radius(cfg *grid.Config) float64 {
	return cfg.OuterRadius() + ArcMargin
}

// Arc computes the sector for d around center. The arc runs clockwise from
// StartAngle to EndAngle, so the span must be positive; grid.Validate
// rejects domains whose span is outside (0, 360]. LargeArc is set when the
// span exceeds 180°. A
// span of a full turn would collapse to a single point in arc notation, so
// it is emitted as two half arcs.
func Arc(d grid.Domain, center geom.Point, radius float64) Sector {
	start := geom.Polar(center, radius, d.StartAngle)
	end := geom.Polar(center, radius, d.EndAngle)
	span := d.EndAngle - d.StartAngle
	large := span > 180

	var p geom.Path
	p.MoveTo(start)
	if span >= 360 {
		midAngle := d.StartAngle + span/2
		mid := geom.Polar(center, radius, midAngle)
		p.ArcTo(mid, arcParams(center, radius, d.StartAngle, midAngle, false))
		p.ArcTo(end, arcParams(center, radius, midAngle, d.EndAngle, false))
	} else {
		p.ArcTo(end, arcParams(center, radius, d.StartAngle, d.EndAngle, large))
	}

	return Sector{
		Domain:   d,
		Radius:   radius,
		Path:     p,
		LargeArc: large,
		Sweep:    true,
		Label:    geom.Polar(center, radius+LabelOffset, (d.StartAngle+d.EndAngle)/2),
	}
}

func arcParams(center geom.Point, radius, from, to float64, large bool) geom.Arc {
	return geom.Arc{
		Radius:     radius,
		LargeArc:   large,
		Sweep:      true,
		Center:     center,
		StartAngle: from,
		EndAngle:   to,
	}
}

// Build returns one sector per non-core domain, in configuration order.
func Build(cfg *grid.Config, center geom.Point) []Sector {
	r := Radius(cfg)
	out := make([]Sector, 0, len(cfg.Domains))
	for _, d := range cfg.Domains {
		if d.ID == grid.CoreDomain {
			continue
		}
		out = append(out, Arc(d, center, r))
	}
	return out
}

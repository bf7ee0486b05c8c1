// Package starfield scatters decorative stars over the canvas with the
// seeded generator, keeping a disc around the center clear.
//
// Each star costs at least four draws in a fixed order (x, y, then size and
// opacity), so a seed and layer list reproduce the exact same sky.
package starfield

import (
	"github.com/matzehuels/spheregrid/pkg/geom"
	"github.com/matzehuels/spheregrid/pkg/grid"
	"github.com/matzehuels/spheregrid/pkg/rng"
)

const (
	// MaxAttempts bounds rejection sampling per star. When it is reached the
	// last sample is kept even if it falls inside the avoid radius.
	MaxAttempts = 50
	// GlowThreshold is the size above which a star gets a halo.
	GlowThreshold = 2.5
)

// Star is one placed star. X and Y are its center.
type Star struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Size    float64 `json:"size"`
	Opacity float64 `json:"opacity"`
	Layer   int     `json:"layer"`
	// Glow marks stars large enough to carry a halo.
	Glow bool `json:"glow,omitempty"`
	// Capped marks stars accepted only because MaxAttempts ran out.
	Capped bool `json:"capped,omitempty"`
}

// Generate places every star of sf over a canvas of the given size. It
// returns nil when the star field is disabled.
func Generate(r *rng.LCG, canvas grid.Canvas, center geom.Point, sf grid.StarField) []Star {
	if !sf.Enabled {
		return nil
	}
	total := 0
	for _, l := range sf.Layers {
		total += l.Count
	}
	stars := make([]Star, 0, total)

	for li, layer := range sf.Layers {
		for i := 0; i < layer.Count; i++ {
			var p geom.Point
			ok := false
			for attempt := 0; attempt < MaxAttempts; attempt++ {
				p = geom.Pt(r.Float64()*canvas.Width, r.Float64()*canvas.Height)
				if p.Dist(center) >= sf.AvoidRadius {
					ok = true
					break
				}
			}
			size := layer.Size.Lerp(r.Float64())
			opacity := layer.Opacity.Lerp(r.Float64())
			stars = append(stars, Star{
				X:       p.X,
				Y:       p.Y,
				Size:    size,
				Opacity: opacity,
				Layer:   li,
				Glow:    size > GlowThreshold,
				Capped:  !ok,
			})
		}
	}
	return stars
}

// CappedCount returns how many stars hit the attempt cap.
func CappedCount(stars []Star) int {
	n := 0
	for _, s := range stars {
		if s.Capped {
			n++
		}
	}
	return n
}

// Package palette resolves node states and decorations to colors.
//
// Every color in a scene derives from the fixed base colors in [Base] through
// [color.Mix]. [For] is total over the four node states and has no side
// effects; glow strength grows with progression: LOCKED has none, ELIGIBLE
// and UNLOCKED share the same dual-layer strength, MASTERED is strongest.
package palette

import (
	"github.com/matzehuels/spheregrid/pkg/color"
	"github.com/matzehuels/spheregrid/pkg/grid"
	"github.com/matzehuels/spheregrid/pkg/style"
)

// Base holds the fixed colors every palette is blended from.
var Base = struct {
	Deep, Mid, Glow               color.RGB
	Gold, GoldBright, GoldDim     color.RGB
	Locked, LockedDim             color.RGB
	Unlocked, UnlockedDim         color.RGB
	Mastered                      color.RGB
	Surface, SurfaceDim, Muted    color.RGB
	Ring, Connector               color.RGB
	StarBright, StarDim, StarBlue color.RGB
}{
	Deep: color.RGB{R: 0.02, G: 0.03, B: 0.08},
	Mid:  color.RGB{R: 0.04, G: 0.06, B: 0.14},
	Glow: color.RGB{R: 0.08, G: 0.14, B: 0.26},

	Gold:       color.RGB{R: 1.0, G: 0.84, B: 0.0},
	GoldBright: color.RGB{R: 1.0, G: 0.92, B: 0.5},
	GoldDim:    color.RGB{R: 0.72, G: 0.53, B: 0.04},

	Locked:      color.RGB{R: 0.25, G: 0.28, B: 0.35},
	LockedDim:   color.RGB{R: 0.15, G: 0.17, B: 0.22},
	Unlocked:    color.RGB{R: 0.2, G: 0.9, B: 0.5},
	UnlockedDim: color.RGB{R: 0.1, G: 0.6, B: 0.4},
	Mastered:    color.RGB{R: 1.0, G: 0.95, B: 0.7},

	Surface:    color.White,
	SurfaceDim: color.RGB{R: 0.7, G: 0.75, B: 0.8},
	Muted:      color.RGB{R: 0.29, G: 0.33, B: 0.41},
	Ring:       color.RGB{R: 0.29, G: 0.48, B: 0.72},
	Connector:  color.RGB{R: 0.23, G: 0.38, B: 0.56},

	StarBright: color.White,
	StarDim:    color.RGB{R: 0.6, G: 0.7, B: 0.9},
	StarBlue:   color.RGB{R: 0.5, G: 0.6, B: 1.0},
}

// Glow shadow radii for the dual-layer node glow.
const (
	GlowInner = 16.0
	GlowOuter = 32.0
)

// Palette is the complete style bundle of one node state.
type Palette struct {
	Fill         color.RGB
	Stroke       color.RGB
	Ring         color.RGB
	Text         color.RGB
	Glow         color.RGB
	StrokeWeight float64
	Effects      []style.Effect
}

// GlowEffects returns the two centered drop shadows of strength s: an inner
// one at alpha s and a wider one at alpha s/2.
func GlowEffects(c color.RGB, s float64) []style.Effect {
	return []style.Effect{
		style.Shadow(c, s, GlowInner),
		style.Shadow(c, s*0.5, GlowOuter),
	}
}

// For returns the palette of state. Unknown states resolve like MASTERED.
func For(state grid.State) Palette {
	b := Base
	switch state {
	case grid.StateLocked:
		return Palette{
			Fill:         color.Mix(b.Locked, b.Deep, 0.4),
			Stroke:       color.Mix(b.Locked, b.Deep, 0.6),
			Ring:         color.Mix(b.Muted, b.Deep, 0.4),
			Text:         color.Mix(b.Surface, b.Deep, 0.45),
			Glow:         b.Muted,
			StrokeWeight: 2,
		}
	case grid.StateEligible:
		return Palette{
			Fill:         color.Mix(b.GoldDim, b.Mid, 0.35),
			Stroke:       b.Gold,
			Ring:         color.Mix(b.Gold, b.Deep, 0.7),
			Text:         b.Surface,
			Glow:         b.Gold,
			StrokeWeight: 3,
			Effects:      GlowEffects(b.Gold, 0.6),
		}
	case grid.StateUnlocked:
		return Palette{
			Fill:         color.Mix(b.UnlockedDim, b.Mid, 0.35),
			Stroke:       b.Unlocked,
			Ring:         color.Mix(b.Unlocked, b.Deep, 0.7),
			Text:         b.Surface,
			Glow:         b.Unlocked,
			StrokeWeight: 3,
			Effects:      GlowEffects(b.Unlocked, 0.6),
		}
	default:
		return Palette{
			Fill:         color.Mix(b.Gold, b.Mid, 0.45),
			Stroke:       b.GoldBright,
			Ring:         b.Gold,
			Text:         b.Surface,
			Glow:         b.GoldBright,
			StrokeWeight: 4,
			Effects:      GlowEffects(b.Mastered, 0.9),
		}
	}
}

// GlowStrength returns the alpha of the inner glow layer, 0 without glow.
func (p Palette) GlowStrength() float64 {
	if len(p.Effects) == 0 {
		return 0
	}
	return p.Effects[0].Color.A
}

// InfoText returns the color and opacity of a node's info label.
func InfoText(state grid.State) (color.RGB, float64) {
	b := Base
	switch state {
	case grid.StateMastered:
		return b.Gold, 0.85
	case grid.StateUnlocked:
		return b.Unlocked, 0.85
	case grid.StateEligible:
		return color.Mix(b.Gold, b.Surface, 0.7), 0.85
	default:
		return color.Mix(b.Muted, b.Deep, 0.5), 0.5
	}
}

// Connector returns the main stroke color for a path type.
func Connector(t grid.PathType) color.RGB {
	c := Base.Connector
	if t == grid.PathCrossDomain {
		c = color.Mix(Base.Connector, Base.GoldDim, 0.3)
	}
	return color.Mix(c, Base.Deep, 0.6)
}

// Ring returns the ring line and label colors of t. Both brighten with the
// tier's glow intensity.
func Ring(t grid.Tier) (stroke, label color.RGB) {
	g := t.GlowIntensity
	return color.Mix(Base.Ring, Base.Deep, 0.5+0.3*g), color.Mix(Base.Surface, Base.Deep, 0.5+0.2*g)
}

// Dim returns the surface color faded toward the background by ratio.
func Dim(ratio float64) color.RGB {
	return color.Mix(Base.Surface, Base.Deep, ratio)
}

// Panel returns the fill and stroke used by the legend and gates boxes.
func Panel(strokeRatio float64) (fill, stroke color.RGB) {
	return color.Mix(Base.Mid, Base.Deep, 0.7), color.Mix(Base.Ring, Base.Deep, strokeRatio)
}

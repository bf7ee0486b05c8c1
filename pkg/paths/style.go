package paths

import "github.com/matzehuels/spheregrid/pkg/grid"

// EdgeStyle is the stroke recipe for one path type. The glow is a wider,
// blurred copy of the stroke drawn underneath it.
type EdgeStyle struct {
	StrokeWeight float64
	Opacity      float64
	GlowRadius   float64
	GlowOpacity  float64
	Dash         []float64
}

var edgeStyles = map[grid.PathType]EdgeStyle{
	grid.PathMain:        {StrokeWeight: 4, Opacity: 0.85, GlowRadius: 8, GlowOpacity: 0.3},
	grid.PathOptional:    {StrokeWeight: 2, Opacity: 0.6, GlowRadius: 4, GlowOpacity: 0.15},
	grid.PathBlocked:     {StrokeWeight: 2, Opacity: 0.35, GlowRadius: 2, GlowOpacity: 0.1, Dash: []float64{8, 4}},
	grid.PathCrossDomain: {StrokeWeight: 2.5, Opacity: 0.5, GlowRadius: 6, GlowOpacity: 0.2},
}

// StyleFor returns the stroke recipe for t. Unknown types get the OPTIONAL
// recipe.
func StyleFor(t grid.PathType) EdgeStyle {
	s, ok := edgeStyles[t]
	if !ok {
		s = edgeStyles[grid.PathOptional]
	}
	s.Dash = append([]float64(nil), s.Dash...)
	return s
}

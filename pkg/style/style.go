// Package style describes how a scene primitive is painted: fill, stroke,
// opacity, dash pattern and effects. Descriptors are plain values; sinks
// translate them to their own vocabulary.
package style

import "github.com/matzehuels/spheregrid/pkg/color"

// EffectKind enumerates the supported effects.
type EffectKind string

const (
	DropShadow EffectKind = "DROP_SHADOW"
	LayerBlur  EffectKind = "LAYER_BLUR"
)

// Effect is a drop shadow or a layer blur. Color and offsets only apply to
// drop shadows.
type Effect struct {
	Kind    EffectKind `json:"kind"`
	Color   color.RGBA `json:"color"`
	Radius  float64    `json:"radius"`
	OffsetX float64    `json:"offsetX,omitempty"`
	OffsetY float64    `json:"offsetY,omitempty"`
}

// Shadow returns a centered drop shadow.
func Shadow(c color.RGB, alpha, radius float64) Effect {
	return Effect{Kind: DropShadow, Color: c.WithAlpha(alpha), Radius: radius}
}

// Blur returns a layer blur.
func Blur(radius float64) Effect {
	return Effect{Kind: LayerBlur, Radius: radius}
}

// Style is the paint description of one primitive. Nil Fill or Stroke means
// none. Nil Opacity means fully opaque; an explicit 0 is invisible.
type Style struct {
	Fill         *color.RGB `json:"fill,omitempty"`
	Stroke       *color.RGB `json:"stroke,omitempty"`
	StrokeWeight float64    `json:"strokeWeight,omitempty"`
	Opacity      *float64   `json:"opacity,omitempty"`
	Dash         []float64  `json:"dash,omitempty"`
	RoundCap     bool       `json:"roundCap,omitempty"`
	Effects      []Effect   `json:"effects,omitempty"`
}

// Filled returns a style with only a fill.
func Filled(c color.RGB) Style {
	return Style{Fill: &c}
}

// Stroked returns a style with only a stroke.
func Stroked(c color.RGB, weight float64) Style {
	return Style{Stroke: &c, StrokeWeight: weight}
}

// WithOpacity returns s with the given opacity.
func (s Style) WithOpacity(o float64) Style {
	s.Opacity = &o
	return s
}

// WithEffects returns s with effects appended.
func (s Style) WithEffects(e ...Effect) Style {
	s.Effects = append(append([]Effect(nil), s.Effects...), e...)
	return s
}

// EffectiveOpacity returns the opacity sinks should apply.
func (s Style) EffectiveOpacity() float64 {
	if s.Opacity == nil {
		return 1
	}
	return min(max(*s.Opacity, 0), 1)
}

// BlurRadius returns the radius of the first layer blur, or 0.
func (s Style) BlurRadius() float64 {
	for _, e := range s.Effects {
		if e.Kind == LayerBlur {
			return e.Radius
		}
	}
	return 0
}

// Shadows returns the drop shadow effects in order.
func (s Style) Shadows() []Effect {
	var out []Effect
	for _, e := range s.Effects {
		if e.Kind == DropShadow {
			out = append(out, e)
		}
	}
	return out
}

// Clone returns a deep copy of s.
func (s Style) Clone() Style {
	if s.Fill != nil {
		f := *s.Fill
		s.Fill = &f
	}
	if s.Stroke != nil {
		k := *s.Stroke
		s.Stroke = &k
	}
	if s.Opacity != nil {
		o := *s.Opacity
		s.Opacity = &o
	}
	s.Dash = append([]float64(nil), s.Dash...)
	s.Effects = append([]Effect(nil), s.Effects...)
	return s
}

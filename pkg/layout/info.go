package layout

import "github.com/matzehuels/spheregrid/pkg/geom"

// Info label metrics.
const (
	InfoGap        = 8.0
	InfoPad        = 4.0
	InfoWidth      = 90.0
	InfoLineHeight = 11.0
	InfoFontSize   = 8.0
)

// Align is the horizontal text alignment of an info label.
type Align string

const (
	AlignLeft   Align = "LEFT"
	AlignCenter Align = "CENTER"
	AlignRight  Align = "RIGHT"
)

// InfoBox is the text box of a node info label.
type InfoBox struct {
	X, Y, Width, Height float64
	Align               Align
}

// InfoPlacement positions the info label of a node radially outward from the
// canvas center. The label starts size/2+InfoGap from the anchor along the
// outward direction. Nodes mostly to the right of center get left-aligned
// text to their right, nodes mostly to the left get right-aligned text to
// their left, and the rest get centered text below or above. A node sitting
// exactly on the center is treated as pointing down.
func InfoPlacement(anchor, center geom.Point, size float64, lines int) InfoBox {
	d := anchor.Sub(center)
	dir := geom.Pt(0, 1)
	if l := d.Len(); l > 0 {
		dir = d.Scale(1 / l)
	}
	offset := size/2 + InfoGap
	at := anchor.Add(dir.Scale(offset))
	h := float64(lines) * InfoLineHeight

	b := InfoBox{Width: InfoWidth, Height: h}
	switch {
	case dir.X > 0.5:
		b.X, b.Y, b.Align = at.X+InfoPad, at.Y-h/2, AlignLeft
	case dir.X < -0.5:
		b.X, b.Y, b.Align = at.X-InfoWidth-InfoPad, at.Y-h/2, AlignRight
	case dir.Y > 0:
		b.X, b.Y, b.Align = at.X-InfoWidth/2, at.Y+InfoPad, AlignCenter
	default:
		b.X, b.Y, b.Align = at.X-InfoWidth/2, at.Y-h-InfoPad, AlignCenter
	}
	return b
}

// Package color provides the normalized RGB type shared by every stage of
// scene generation, along with linear blending.
//
// Channels are float64 values nominally in [0, 1]. [Mix] never clamps, so
// ratios outside [0, 1] extrapolate; clamping only happens when a color is
// serialized with [RGB.Hex].
package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB is a color with normalized channels.
// It marshals to and from "#rrggbb" text, so configuration files in any
// format carry colors as hex strings.
type RGB struct {
	R, G, B float64
}

// RGBA is an RGB color with an alpha channel.
type RGBA struct {
	Color RGB     `json:"color"`
	A     float64 `json:"alpha"`
}

// Black and White are convenience constants.
var (
	Black = RGB{0, 0, 0}
	White = RGB{1, 1, 1}
)

// Mix blends two colors channel-wise: c1*ratio + c2*(1-ratio).
// Mix(a, b, 1) == a and Mix(a, b, 0) == b.
func Mix(c1, c2 RGB, ratio float64) RGB {
	return RGB{
		R: c1.R*ratio + c2.R*(1-ratio),
		G: c1.G*ratio + c2.G*(1-ratio),
		B: c1.B*ratio + c2.B*(1-ratio),
	}
}

// WithAlpha returns c with the given alpha.
func (c RGB) WithAlpha(a float64) RGBA {
	return RGBA{Color: c, A: a}
}

// Hex returns the #rrggbb form of c. Channels are clamped to [0, 1].
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func (c RGB) String() string { return c.Hex() }

// MarshalText implements encoding.TextMarshaler. The text form is [RGB.Hex],
// so channels are clamped to [0, 1] and quantized to 8 bits; decoding it
// back gives the nearest 8-bit color, not the original floats.
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *RGB) UnmarshalText(b []byte) error {
	v, err := ParseHex(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func channel(v float64) uint8 {
	v = math.Max(0, math.Min(1, v))
	return uint8(math.Round(v * 255))
}

// ParseHex parses "#rrggbb" or "rrggbb".
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return RGB{
		R: float64(v>>16&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
	}, nil
}

// MustHex is like ParseHex but panics on malformed input.
// It is intended for package-level color tables.
func MustHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

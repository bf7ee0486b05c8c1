package color

import (
	"math"
	"testing"
)

const eps = 1e-12

func near(a, b RGB) bool {
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps && math.Abs(a.B-b.B) < eps
}

func TestMix(t *testing.T) {
	a := RGB{1, 0.84, 0}
	b := RGB{0.02, 0.03, 0.08}

	tests := []struct {
		name  string
		ratio float64
		want  RGB
	}{
		{"full first", 1, a},
		{"full second", 0, b},
		{"half", 0.5, RGB{0.51, 0.435, 0.04}},
		{"extrapolate", 2, RGB{1.98, 1.65, -0.08}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mix(a, b, tt.ratio); !near(got, tt.want) {
				t.Errorf("Mix(%v) = %+v, want %+v", tt.ratio, got, tt.want)
			}
		})
	}
}

func TestMixSymmetry(t *testing.T) {
	a := RGB{0.25, 0.28, 0.35}
	b := RGB{0.2, 0.9, 0.5}
	for _, r := range []float64{0, 0.1, 0.35, 0.6, 0.9, 1} {
		if x, y := Mix(a, b, r), Mix(b, a, 1-r); !near(x, y) {
			t.Errorf("Mix(a,b,%v)=%+v != Mix(b,a,%v)=%+v", r, x, 1-r, y)
		}
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   RGB
		want string
	}{
		{Black, "#000000"},
		{White, "#ffffff"},
		{RGB{1, 0.84, 0}, "#ffd600"},
		{RGB{1.5, -1, 0.5}, "#ff0080"},
	}
	for _, tt := range tests {
		if got := tt.in.Hex(); got != tt.want {
			t.Errorf("%+v.Hex() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#ffd600")
	if err != nil {
		t.Fatalf("ParseHex: %v", err)
	}
	if c.Hex() != "#ffd600" {
		t.Errorf("round trip = %q", c.Hex())
	}

	for _, bad := range []string{"", "#fff", "#gggggg", "12345678"} {
		if _, err := ParseHex(bad); err == nil {
			t.Errorf("ParseHex(%q) succeeded, want error", bad)
		}
	}
}

func TestTextRoundTrip(t *testing.T) {
	var c RGB
	if err := c.UnmarshalText([]byte("#3380e6")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	b, err := c.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if string(b) != "#3380e6" {
		t.Errorf("MarshalText = %q", b)
	}
	if err := c.UnmarshalText([]byte("blue")); err == nil {
		t.Error("UnmarshalText(blue) succeeded, want error")
	}
}

func TestWithAlpha(t *testing.T) {
	c := White.WithAlpha(0.5)
	if c.Color != White || c.A != 0.5 {
		t.Errorf("WithAlpha = %+v", c)
	}
}

func TestMarshalTextQuantizes(t *testing.T) {
	c := Mix(RGB{1, 0.4, 0}, RGB{0, 0.4, 1}, 1.2)
	text, err := c.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if got := string(text); got != "#ff6600" {
		t.Fatalf("MarshalText() = %q, want #ff6600", got)
	}
	var back RGB
	if err := back.UnmarshalText(text); err != nil {
		t.Fatal(err)
	}
	if back.R != 1 || back.B != 0 {
		t.Errorf("out-of-range channels not clamped: %+v", back)
	}
	if math.Abs(back.G-c.G) > 1.0/255 {
		t.Errorf("G = %v, want within 1/255 of %v", back.G, c.G)
	}
}

package poline

import (
	"math"
	"testing"
)

func TestHSLPointRoundTrip(t *testing.T) {
	approxEqual := func(x, y float64) bool {
		return math.Abs(x-y) < 1e-9
	}

	hues := []float64{0, 10, 45, 90, 179, 180, 225, 270, 315, 359}
	sats := []float64{0, 0.25, 0.5, 1}
	// Lightness 0 (or 1 with inverted lightness) collapses the point onto
	// the disk's center, where the hue is undefined; stay off it.
	lights := []float64{0.05, 0.25, 0.5, 0.75, 0.95}

	for _, inverted := range []bool{false, true} {
		for _, h := range hues {
			for _, s := range sats {
				for _, l := range lights {
					in := HSL{H: h, S: s, L: l}
					out := PointToHSL(HSLToPoint(in, inverted), inverted)
					if !approxEqual(math.Mod(out.H, 360), math.Mod(in.H, 360)) ||
						!approxEqual(out.S, in.S) ||
						!approxEqual(out.L, in.L) {
						t.Errorf("inverted=%v: round trip of %v gave %v", inverted, in, out)
					}
				}
			}
		}
	}
}

func TestPointToHSLCenter(t *testing.T) {
	center := V3(0.5, 0.5, 1)
	if c := PointToHSL(center, false); c.L != 0 {
		t.Errorf("got lightness %v at the center, want 0", c.L)
	}
	if c := PointToHSL(center, true); c.L != 1 {
		t.Errorf("got inverted lightness %v at the center, want 1", c.L)
	}
}

func TestPointToHSLClamping(t *testing.T) {
	// Points outside the disk clamp to the rim; z clamps to [0, 1].
	c := PointToHSL(V3(5, 0.5, 2), false)
	if c.L != 1 {
		t.Errorf("got lightness %v outside the disk, want 1", c.L)
	}
	if c.S != 1 {
		t.Errorf("got saturation %v, want 1", c.S)
	}
}

func TestHSLToRGB(t *testing.T) {
	approxEqual := func(x, y float64) bool {
		return math.Abs(x-y) < 1e-9
	}
	rgbEqual := func(c RGB, r, g, b float64) bool {
		return approxEqual(c.R, r) && approxEqual(c.G, g) && approxEqual(c.B, b)
	}

	if c := HSLToRGB(HSL{H: 0, S: 1, L: 0.5}); !rgbEqual(c, 1, 0, 0) {
		t.Errorf("got %v for pure red", c)
	}
	if c := HSLToRGB(HSL{H: 180, S: 1, L: 0.5}); !rgbEqual(c, 0, 1, 1) {
		t.Errorf("got %v for pure cyan", c)
	}
	if c := HSLToRGB(HSL{H: 120, S: 1, L: 0.5}); !rgbEqual(c, 0, 1, 0) {
		t.Errorf("got %v for pure green", c)
	}
	// Achromatic shortcut.
	if c := HSLToRGB(HSL{H: 212, S: 0, L: 0.3}); !rgbEqual(c, 0.3, 0.3, 0.3) {
		t.Errorf("got %v for gray", c)
	}
	// Hue wraps modulo 360, saturation and lightness clamp.
	if a, b := HSLToRGB(HSL{H: 480, S: 1, L: 0.5}), HSLToRGB(HSL{H: 120, S: 1, L: 0.5}); a != b {
		t.Errorf("got %v and %v for the same wrapped hue", a, b)
	}
	if c := HSLToRGB(HSL{H: 0, S: 3, L: 2}); !rgbEqual(c, 1, 1, 1) {
		t.Errorf("got %v for over-range saturation/lightness", c)
	}
}

func TestRGBHex(t *testing.T) {
	if h := (RGB{R: 1, G: 0, B: 0}).Hex(); h != "#ff0000" {
		t.Errorf("got %q, want #ff0000", h)
	}
	if h := (RGB{R: 0, G: 1, B: 1}).Hex(); h != "#00ffff" {
		t.Errorf("got %q, want #00ffff", h)
	}
}

func TestColorStrings(t *testing.T) {
	if s := (HSL{H: 0, S: 1, L: 0.5}).String(); s != "hsl(0, 100%, 50%)" {
		t.Errorf("got %q", s)
	}
	if s := (RGB{R: 1, G: 0.5, B: 0}).String(); s != "rgb(255, 128, 0)" {
		t.Errorf("got %q", s)
	}
}

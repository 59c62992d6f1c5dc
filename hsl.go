package poline

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSL is a color in the HSL cylinder: hue in degrees [0, 360), saturation
// and lightness in [0, 1].
type HSL struct {
	H float64
	S float64
	L float64
}

// String returns the color as a CSS hsl() string.
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%g, %g%%, %g%%)", c.H, c.S*100, c.L*100)
}

// Vec returns the color as a vector laid out as (hue, saturation, lightness).
func (c HSL) Vec() Vec3 {
	return Vec3{X: c.H, Y: c.S, Z: c.L}
}

// RGB is a color with red, green and blue channels in [0, 1].
type RGB struct {
	R float64
	G float64
	B float64
}

// String returns the color as a CSS rgb() string with 8-bit channels.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", int(math.Round(c.R*255)), int(math.Round(c.G*255)), int(math.Round(c.B*255)))
}

// Hex returns the color as a #rrggbb hex string.
func (c RGB) Hex() string {
	return colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}.Hex()
}

// PointToHSL maps a Cartesian point back onto the HSL cylinder.
//
// The point's (x, y) coordinates live on a unit disk centered at (0.5, 0.5):
// the angle around the center is the hue, the distance from the center is the
// lightness (scaled so the rim is lightness 1), and z is the saturation.
// With invertedLightness, lightness is measured from the rim instead of the
// center.
func PointToHSL(p Vec3, invertedLightness bool) HSL {
	const cx, cy = 0.5, 0.5

	angle := math.Atan2(p.Y-cy, p.X-cx)
	h := angle * (180 / math.Pi)
	h = math.Mod(h+360, 360)

	dist := math.Hypot(p.X-cx, p.Y-cy)
	l := clamp01(dist / 0.5)
	if invertedLightness {
		l = 1 - l
	}

	return HSL{H: h, S: clamp01(p.Z), L: l}
}

// HSLToPoint maps an HSL color onto a Cartesian point on the unit disk. It is
// the inverse of [PointToHSL].
func HSLToPoint(c HSL, invertedLightness bool) Vec3 {
	const cx, cy = 0.5, 0.5

	rad := c.H * (math.Pi / 180)
	l := c.L
	if invertedLightness {
		l = 1 - l
	}
	dist := l * 0.5

	return Vec3{
		X: cx + dist*math.Cos(rad),
		Y: cy + dist*math.Sin(rad),
		Z: c.S,
	}
}

// HSLToRGB converts an HSL color to RGB. The hue is wrapped modulo 360 and
// saturation and lightness are clamped to [0, 1]; no input is rejected.
func HSLToRGB(c HSL) RGB {
	h := math.Mod(math.Mod(c.H, 360)+360, 360) / 360
	s := clamp01(c.S)
	l := clamp01(c.L)

	if s == 0 {
		// Achromatic.
		return RGB{R: l, G: l, B: l}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return RGB{
		R: hueToRGB(p, q, h+1.0/3.0),
		G: hueToRGB(p, q, h),
		B: hueToRGB(p, q, h-1.0/3.0),
	}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}

func clamp01(f float64) float64 {
	return math.Min(1, math.Max(0, f))
}

// wrapHue wraps a hue in degrees into [0, 360).
func wrapHue(h float64) float64 {
	return math.Mod(math.Mod(h, 360)+360, 360)
}

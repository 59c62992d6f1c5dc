package poline

import "fmt"

// ColorPoint is a single addressable location on the palette, representable
// both as a Cartesian point on the unit disk and as an HSL color. The two
// representations are kept consistent at all times: mutating one immediately
// recomputes the other.
//
// The invertedLightness convention is fixed at construction and governs both
// directions of the mapping for the point's entire lifetime.
type ColorPoint struct {
	pos               Vec3
	color             HSL
	invertedLightness bool
}

// ColorPointOptions configures [NewColorPoint]. At most one of XYZ and Color
// may be set; with neither, the point starts at the origin and its derived
// default color.
type ColorPointOptions struct {
	XYZ               *Vec3
	Color             *HSL
	InvertedLightness bool
}

// NewColorPoint constructs a color point from exactly one of a Cartesian
// position or an HSL color. Supplying both returns
// [ErrBothRepresentations].
func NewColorPoint(opts ColorPointOptions) (*ColorPoint, error) {
	if opts.XYZ != nil && opts.Color != nil {
		return nil, ErrBothRepresentations
	}
	cp := &ColorPoint{invertedLightness: opts.InvertedLightness}
	switch {
	case opts.XYZ != nil:
		cp.SetPosition(*opts.XYZ)
	case opts.Color != nil:
		cp.SetColor(*opts.Color)
	default:
		cp.SetPosition(Vec3{})
	}
	return cp, nil
}

// newColorPointXYZ constructs a color point directly from a Cartesian
// position; it is the fast path used by segment interpolation.
func newColorPointXYZ(pos Vec3, invertedLightness bool) *ColorPoint {
	cp := &ColorPoint{invertedLightness: invertedLightness}
	cp.SetPosition(pos)
	return cp
}

func newColorPointHSL(color HSL, invertedLightness bool) *ColorPoint {
	cp := &ColorPoint{invertedLightness: invertedLightness}
	cp.SetColor(color)
	return cp
}

// Position returns the point's Cartesian position.
func (cp *ColorPoint) Position() Vec3 {
	return cp.pos
}

// SetPosition moves the point and re-derives its color.
func (cp *ColorPoint) SetPosition(pos Vec3) {
	cp.pos = pos
	cp.color = PointToHSL(pos, cp.invertedLightness)
}

// Color returns the point's HSL color.
func (cp *ColorPoint) Color() HSL {
	return cp.color
}

// SetColor recolors the point and re-derives its position.
func (cp *ColorPoint) SetColor(color HSL) {
	cp.color = color
	cp.pos = HSLToPoint(color, cp.invertedLightness)
}

// InvertedLightness reports the lightness convention the point was
// constructed with.
func (cp *ColorPoint) InvertedLightness() bool {
	return cp.invertedLightness
}

// RGB returns the point's color converted to RGB.
func (cp *ColorPoint) RGB() RGB {
	return HSLToRGB(cp.color)
}

// Hex returns the point's color as a #rrggbb hex string.
func (cp *ColorPoint) Hex() string {
	return cp.RGB().Hex()
}

// ShiftHue rotates the point's hue by the given number of degrees, wrapping
// into [0, 360), and re-derives its position.
func (cp *ColorPoint) ShiftHue(degrees float64) {
	c := cp.color
	c.H = wrapHue(c.H + degrees)
	cp.SetColor(c)
}

func (cp *ColorPoint) String() string {
	return fmt.Sprintf("%v @ %v", cp.color, cp.pos)
}

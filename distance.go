package poline

import "math"

// Distance returns the Euclidean distance between two triples.
//
// A NaN component in either operand marks that component as absent; an
// absent axis contributes 0 to the sum of squares, so partial queries (for
// example a hue with no saturation or lightness) compare only on the axes
// that are present.
//
// With hueMode, the first components are treated as hues in degrees and
// compared on the circle, taking the shorter way around and scaling the
// difference by 1/360 so a half turn contributes 0.5.
func Distance(p1, p2 Vec3, hueMode bool) float64 {
	var dx float64
	if !math.IsNaN(p1.X) && !math.IsNaN(p2.X) {
		if hueMode {
			d := math.Abs(p1.X - p2.X)
			dx = math.Min(d, 360-d) / 360
		} else {
			dx = p2.X - p1.X
		}
	}

	var dy float64
	if !math.IsNaN(p1.Y) && !math.IsNaN(p2.Y) {
		dy = p2.Y - p1.Y
	}

	var dz float64
	if !math.IsNaN(p1.Z) && !math.IsNaN(p2.Z) {
		dz = p2.Z - p1.Z
	}

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

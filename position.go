package poline

import (
	"math"
	"slices"
)

// PositionFunc remaps a linear interpolation parameter t ∈ [0, 1] to an
// eased parameter t' ∈ [0, 1]. The reverse flag selects the mirrored variant
// of the curve; it is used to alternate easing direction between adjacent
// palette segments.
type PositionFunc func(t float64, reverse bool) float64

// LinearPosition returns t unchanged.
func LinearPosition(t float64, reverse bool) float64 {
	return t
}

// ExponentialPosition eases with t².
func ExponentialPosition(t float64, reverse bool) float64 {
	if reverse {
		return 1 - (1-t)*(1-t)
	}
	return t * t
}

// QuadraticPosition eases with t³.
func QuadraticPosition(t float64, reverse bool) float64 {
	if reverse {
		u := 1 - t
		return 1 - u*u*u
	}
	return t * t * t
}

// CubicPosition eases with t⁴.
func CubicPosition(t float64, reverse bool) float64 {
	if reverse {
		u := 1 - t
		return 1 - u*u*u*u
	}
	return t * t * t * t
}

// QuarticPosition eases with t⁵.
func QuarticPosition(t float64, reverse bool) float64 {
	if reverse {
		u := 1 - t
		return 1 - u*u*u*u*u
	}
	return t * t * t * t * t
}

// SinusoidalPosition eases with sin(tπ/2).
func SinusoidalPosition(t float64, reverse bool) float64 {
	if reverse {
		return 1 - math.Sin((1-t)*math.Pi/2)
	}
	return math.Sin(t * math.Pi / 2)
}

// AsinusoidalPosition eases with asin(t)/(π/2).
func AsinusoidalPosition(t float64, reverse bool) float64 {
	if reverse {
		return 1 - math.Asin(1-t)/(math.Pi/2)
	}
	return math.Asin(t) / (math.Pi / 2)
}

// ArcPosition eases along a circular arc.
func ArcPosition(t float64, reverse bool) float64 {
	if reverse {
		return math.Sqrt(1 - (1-t)*(1-t))
	}
	return 1 - math.Sqrt(1-t)
}

// SmoothStepPosition eases with the smoothstep polynomial t²(3−2t). The
// curve is symmetric, so the reverse flag has no effect.
func SmoothStepPosition(t float64, reverse bool) float64 {
	return t * t * (3 - 2*t)
}

// Positions is the catalog of named position functions.
var Positions = map[string]PositionFunc{
	"linear":      LinearPosition,
	"exponential": ExponentialPosition,
	"quadratic":   QuadraticPosition,
	"cubic":       CubicPosition,
	"quartic":     QuarticPosition,
	"sinusoidal":  SinusoidalPosition,
	"asinusoidal": AsinusoidalPosition,
	"arc":         ArcPosition,
	"smoothStep":  SmoothStepPosition,
}

// PositionNames returns the names of all cataloged position functions in
// sorted order.
func PositionNames() []string {
	names := make([]string, 0, len(Positions))
	for name := range Positions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

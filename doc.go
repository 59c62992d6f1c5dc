// Package poline generates smooth, perceptually structured color palettes
// by interpolating between anchor colors along configurable easing curves.
//
// # Poline
//
// This package is a manual, idiomatic Go port of the [poline] JavaScript
// library. Like the original, it models colors as points in a 3D space
// derived from HSL: the hue/lightness plane becomes a unit disk centered at
// (0.5, 0.5), where the angle around the center is the hue and the distance
// from the center is the lightness, and saturation becomes the z axis.
// Under this transform, interpolating between colors is ordinary geometry.
//
// # Model
//
// A palette is defined by an ordered list of anchor points ([ColorPoint]).
// Consecutive anchors form segments, and each segment is filled with
// interpolated points: the interpolation parameter of each axis is remapped
// by an easing curve ([PositionFunc]) before the linear blend, which is what
// gives palettes their shape. Easing direction alternates between adjacent
// segments so the palette reads as one continuous ramp. In closed-loop mode
// the last anchor additionally connects back to the first.
//
// [Poline] owns the anchors and all derived points. Every mutation (adding,
// removing or updating anchors, changing the point count, easing functions,
// loop mode or lightness convention, or shifting hues) rebuilds the derived
// points in full before returning.
//
// The package also exposes the building blocks as free functions: the
// disk mapping ([PointToHSL], [HSLToPoint]), RGB conversion ([HSLToRGB]),
// the easing catalog ([Positions]), the anchor distance metric ([Distance]),
// and random harmonious seeds ([RandomHSLPair], [RandomHSLTriple]).
//
// [poline]: https://github.com/meodai/poline
package poline

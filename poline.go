package poline

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrTooFewAnchors is returned when fewer than two anchor colors are
	// supplied.
	ErrTooFewAnchors = errors.New("poline: at least two anchor points are required")
	// ErrNumPoints is returned for a non-positive number of points per
	// segment.
	ErrNumPoints = errors.New("poline: numPoints must be at least 1")
	// ErrNoAnchorTarget is returned when an anchor operation is given no
	// point to act on.
	ErrNoAnchorTarget = errors.New("poline: no anchor point given")
	// ErrAnchorNotFound is returned when the given point is not one of the
	// palette's anchors.
	ErrAnchorNotFound = errors.New("poline: anchor point not found")
	// ErrNoAnchorValue is returned when an anchor update supplies neither a
	// position nor a color.
	ErrNoAnchorValue = errors.New("poline: update requires a position or a color")
	// ErrBothRepresentations is returned when both a position and a color
	// are supplied where only one is allowed.
	ErrBothRepresentations = errors.New("poline: position and color are mutually exclusive")
)

// DefaultNumPoints is the default number of interpolated interior points per
// segment.
const DefaultNumPoints = 4

// Options configures [New]. The zero value produces a random two-anchor
// palette with [DefaultNumPoints] points per segment and sinusoidal easing
// on all axes.
type Options struct {
	// AnchorColors seeds the palette. At least two are required; with none,
	// a random harmonious pair is generated.
	AnchorColors []HSL
	// NumPoints is the number of interpolated interior points per segment.
	// 0 means DefaultNumPoints.
	NumPoints int
	// PositionFunction applies one easing to all three axes.
	PositionFunction PositionFunc
	// PositionFunctionX, Y and Z set per-axis easing. They take precedence
	// over PositionFunction.
	PositionFunctionX PositionFunc
	PositionFunctionY PositionFunc
	PositionFunctionZ PositionFunc
	// ClosedLoop connects the last anchor back to the first.
	ClosedLoop bool
	// InvertedLightness measures lightness from the rim of the disk rather
	// than from the center.
	InvertedLightness bool
}

// Poline is an ordered list of anchor color points together with the
// interpolated points of every consecutive anchor pair.
//
// Every mutating method validates its input, applies the change and rebuilds
// all interpolated points before returning, so reads never observe stale
// derived state and a failed call leaves the palette untouched. Poline is
// not safe for concurrent mutation; callers that share one across goroutines
// must serialize access themselves.
type Poline struct {
	anchors []*ColorPoint
	// Points per segment including both endpoints, i.e. the user-facing
	// count plus 2.
	numPoints         int
	fx, fy, fz        PositionFunc
	points            [][]*ColorPoint
	closedLoop        bool
	invertedLightness bool
}

// New constructs a palette from the given options.
func New(opts Options) (*Poline, error) {
	colors := opts.AnchorColors
	if len(colors) == 0 {
		colors = RandomHSLPair()
	}
	if len(colors) < 2 {
		return nil, ErrTooFewAnchors
	}
	n := opts.NumPoints
	if n == 0 {
		n = DefaultNumPoints
	}
	if n < 1 {
		return nil, ErrNumPoints
	}

	fx, fy, fz := SinusoidalPosition, SinusoidalPosition, SinusoidalPosition
	if opts.PositionFunction != nil {
		fx, fy, fz = opts.PositionFunction, opts.PositionFunction, opts.PositionFunction
	}
	if opts.PositionFunctionX != nil {
		fx = opts.PositionFunctionX
	}
	if opts.PositionFunctionY != nil {
		fy = opts.PositionFunctionY
	}
	if opts.PositionFunctionZ != nil {
		fz = opts.PositionFunctionZ
	}

	p := &Poline{
		numPoints:         n + 2,
		fx:                fx,
		fy:                fy,
		fz:                fz,
		closedLoop:        opts.ClosedLoop,
		invertedLightness: opts.InvertedLightness,
	}
	p.anchors = make([]*ColorPoint, len(colors))
	for i, c := range colors {
		p.anchors[i] = newColorPointHSL(c, opts.InvertedLightness)
	}
	p.rebuild()
	return p, nil
}

// rebuild re-derives every segment's interpolated points from the current
// anchors and settings. Called at the end of every mutator.
func (p *Poline) rebuild() {
	numSegments := len(p.anchors)
	if !p.closedLoop {
		numSegments--
	}
	p.points = make([][]*ColorPoint, numSegments)
	for i := range p.points {
		a := p.anchors[i].Position()
		b := p.anchors[(i+1)%len(p.anchors)].Position()
		// Alternate easing direction per segment so the palette doesn't
		// visually flip at every anchor.
		p.points[i] = p.vectorsOnLine(a, b, i%2 == 1)
	}
}

// vectorsOnLine samples numPoints color points between p1 and p2, easing
// each axis with its position function.
func (p *Poline) vectorsOnLine(p1, p2 Vec3, reverse bool) []*ColorPoint {
	pts := make([]*ColorPoint, p.numPoints)
	for k := range pts {
		t := float64(k) / float64(p.numPoints-1)
		pos := Vec3{
			X: p1.X + (p2.X-p1.X)*p.fx(t, reverse),
			Y: p1.Y + (p2.Y-p1.Y)*p.fy(t, reverse),
			Z: p1.Z + (p2.Z-p1.Z)*p.fz(t, reverse),
		}
		pts[k] = newColorPointXYZ(pos, p.invertedLightness)
	}
	return pts
}

// Anchors returns the palette's anchor points in order. The points are
// shared with the palette; mutate them only through [Poline.UpdateAnchor].
func (p *Poline) Anchors() []*ColorPoint {
	return slices.Clone(p.anchors)
}

// SetAnchors replaces all anchor points and rebuilds the palette.
func (p *Poline) SetAnchors(anchors []*ColorPoint) error {
	if len(anchors) < 2 {
		return ErrTooFewAnchors
	}
	p.anchors = slices.Clone(anchors)
	p.rebuild()
	return nil
}

// NumPoints returns the number of interpolated interior points per segment.
func (p *Poline) NumPoints() int {
	return p.numPoints - 2
}

// SetNumPoints changes the number of interpolated interior points per
// segment and rebuilds the palette.
func (p *Poline) SetNumPoints(n int) error {
	if n < 1 {
		return ErrNumPoints
	}
	p.numPoints = n + 2
	p.rebuild()
	return nil
}

// PositionFunctions returns the active easing functions for the x, y and z
// axes.
func (p *Poline) PositionFunctions() [3]PositionFunc {
	return [3]PositionFunc{p.fx, p.fy, p.fz}
}

// SetPositionFunction applies one easing function to all three axes and
// rebuilds the palette. A nil function means [SinusoidalPosition].
func (p *Poline) SetPositionFunction(fn PositionFunc) {
	if fn == nil {
		fn = SinusoidalPosition
	}
	p.fx, p.fy, p.fz = fn, fn, fn
	p.rebuild()
}

// SetPositionFunctions sets per-axis easing functions and rebuilds the
// palette. A nil function leaves that axis unchanged.
func (p *Poline) SetPositionFunctions(fx, fy, fz PositionFunc) {
	if fx != nil {
		p.fx = fx
	}
	if fy != nil {
		p.fy = fy
	}
	if fz != nil {
		p.fz = fz
	}
	p.rebuild()
}

// ClosedLoop reports whether the last anchor connects back to the first.
func (p *Poline) ClosedLoop() bool {
	return p.closedLoop
}

// SetClosedLoop connects or disconnects the last anchor from the first and
// rebuilds the palette.
func (p *Poline) SetClosedLoop(closed bool) {
	p.closedLoop = closed
	p.rebuild()
}

// InvertedLightness reports the lightness convention used for newly
// interpolated points.
func (p *Poline) InvertedLightness() bool {
	return p.invertedLightness
}

// SetInvertedLightness changes the lightness convention for interpolated
// points and rebuilds the palette. Existing anchors keep the convention they
// were constructed with.
func (p *Poline) SetInvertedLightness(inverted bool) {
	p.invertedLightness = inverted
	p.rebuild()
}

// AnchorOptions configures [Poline.AddAnchor]. At most one of XYZ and Color
// may be set; with neither, the anchor starts at the origin. At controls the
// insertion index; nil appends.
type AnchorOptions struct {
	XYZ   *Vec3
	Color *HSL
	At    *int
}

// AddAnchor inserts a new anchor point and rebuilds the palette. The new
// point uses the palette's current lightness convention.
func (p *Poline) AddAnchor(opts AnchorOptions) (*ColorPoint, error) {
	cp, err := NewColorPoint(ColorPointOptions{
		XYZ:               opts.XYZ,
		Color:             opts.Color,
		InvertedLightness: p.invertedLightness,
	})
	if err != nil {
		return nil, err
	}
	if opts.At != nil {
		i := *opts.At
		if i < 0 || i > len(p.anchors) {
			return nil, fmt.Errorf("poline: insertion index %d out of range [0, %d]", i, len(p.anchors))
		}
		p.anchors = slices.Insert(p.anchors, i, cp)
	} else {
		p.anchors = append(p.anchors, cp)
	}
	p.rebuild()
	return cp, nil
}

// RemoveAnchor removes the given anchor point, identified by pointer
// identity, and rebuilds the palette.
func (p *Poline) RemoveAnchor(cp *ColorPoint) error {
	if cp == nil {
		return ErrNoAnchorTarget
	}
	i := slices.Index(p.anchors, cp)
	if i < 0 {
		return ErrAnchorNotFound
	}
	return p.RemoveAnchorAt(i)
}

// RemoveAnchorAt removes the anchor point at the given index and rebuilds
// the palette.
func (p *Poline) RemoveAnchorAt(i int) error {
	if i < 0 || i >= len(p.anchors) {
		return fmt.Errorf("poline: anchor index %d out of range [0, %d): %w", i, len(p.anchors), ErrAnchorNotFound)
	}
	p.anchors = slices.Delete(p.anchors, i, i+1)
	p.rebuild()
	return nil
}

// UpdateOptions carries the new value for an anchor update. At least one of
// XYZ and Color must be set; if both are, the color wins.
type UpdateOptions struct {
	XYZ   *Vec3
	Color *HSL
}

// UpdateAnchor mutates the given anchor point in place, identified by
// pointer identity, and rebuilds the palette.
func (p *Poline) UpdateAnchor(cp *ColorPoint, opts UpdateOptions) error {
	if cp == nil {
		return ErrNoAnchorTarget
	}
	i := slices.Index(p.anchors, cp)
	if i < 0 {
		return ErrAnchorNotFound
	}
	return p.UpdateAnchorAt(i, opts)
}

// UpdateAnchorAt mutates the anchor point at the given index in place and
// rebuilds the palette.
func (p *Poline) UpdateAnchorAt(i int, opts UpdateOptions) error {
	if i < 0 || i >= len(p.anchors) {
		return fmt.Errorf("poline: anchor index %d out of range [0, %d): %w", i, len(p.anchors), ErrAnchorNotFound)
	}
	if opts.XYZ == nil && opts.Color == nil {
		return ErrNoAnchorValue
	}
	cp := p.anchors[i]
	if opts.Color != nil {
		cp.SetColor(*opts.Color)
	} else {
		cp.SetPosition(*opts.XYZ)
	}
	p.rebuild()
	return nil
}

// ShiftHue rotates every anchor's hue by the given number of degrees and
// rebuilds the palette.
func (p *Poline) ShiftHue(degrees float64) {
	for _, cp := range p.anchors {
		cp.ShiftHue(degrees)
	}
	p.rebuild()
}

// FlattenedPoints concatenates all segments in order, dropping the
// duplicated shared endpoint between consecutive segments.
func (p *Poline) FlattenedPoints() []*ColorPoint {
	var flat []*ColorPoint
	i := 0
	for _, seg := range p.points {
		for _, cp := range seg {
			// Each segment's first point coincides with the previous
			// segment's last point; keep only one of the pair.
			if i == 0 || i%p.numPoints != 0 {
				flat = append(flat, cp)
			}
			i++
		}
	}
	return flat
}

// Colors returns the palette's colors in order. For a closed loop, the
// trailing duplicate of the first anchor is dropped.
func (p *Poline) Colors() []HSL {
	flat := p.FlattenedPoints()
	colors := make([]HSL, len(flat))
	for i, cp := range flat {
		colors[i] = cp.Color()
	}
	if p.closedLoop && len(colors) > 0 {
		colors = colors[:len(colors)-1]
	}
	return colors
}

// ColorsRGB returns the palette's colors converted to RGB.
func (p *Poline) ColorsRGB() []RGB {
	colors := p.Colors()
	rgb := make([]RGB, len(colors))
	for i, c := range colors {
		rgb[i] = HSLToRGB(c)
	}
	return rgb
}

// ColorsCSS returns the palette's colors as CSS hsl() strings.
func (p *Poline) ColorsCSS() []string {
	colors := p.Colors()
	css := make([]string, len(colors))
	for i, c := range colors {
		css[i] = c.String()
	}
	return css
}

// ColorsHex returns the palette's colors as #rrggbb hex strings.
func (p *Poline) ColorsHex() []string {
	colors := p.Colors()
	hex := make([]string, len(colors))
	for i, c := range colors {
		hex[i] = HSLToRGB(c).Hex()
	}
	return hex
}

// ClosestQuery describes a nearest-anchor query for
// [Poline.ClosestAnchor]. Exactly one of XYZ and HSL should be set; HSL
// queries compare hues on the circle. A NaN component restricts the query to
// the remaining axes. MaxDistance limits how far away a match may be; a
// non-positive value means the default of 1.
type ClosestQuery struct {
	XYZ         *Vec3
	HSL         *HSL
	MaxDistance float64
}

// ClosestAnchor returns the anchor point nearest to the query, or nil if
// none lies within the query's maximum distance or the query is empty. Ties
// resolve to the earliest anchor in insertion order.
func (p *Poline) ClosestAnchor(q ClosestQuery) *ColorPoint {
	maxDist := q.MaxDistance
	if maxDist <= 0 {
		maxDist = 1
	}

	var target Vec3
	hueMode := false
	switch {
	case q.HSL != nil:
		target = q.HSL.Vec()
		hueMode = true
	case q.XYZ != nil:
		target = *q.XYZ
	default:
		return nil
	}

	var closest *ColorPoint
	minDist := 0.0
	for _, cp := range p.anchors {
		v := cp.Position()
		if hueMode {
			v = cp.Color().Vec()
		}
		d := Distance(v, target, hueMode)
		if closest == nil || d < minDist {
			closest = cp
			minDist = d
		}
	}
	if closest == nil || minDist > maxDist {
		return nil
	}
	return closest
}

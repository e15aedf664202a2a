package helix

import "math"

// Point2 is a point of a planar cross-section.
type Point2 struct {
	X, Y float64
}

// Ribbon is one swept band: a shared centreline plus a rotation about the
// helix axis.
type Ribbon struct {
	Points    []Point
	RotationZ float64
}

// RibbonCurve samples the ribbon centreline: a helix at twice the strand
// radius spanning the strand length. Points are ordered by increasing z.
//
// With N = SamplesPerSegment·SegmentCount the result holds N+1 points, plus
// SamplesPerSegment lead-in points below the strands when LeadIn is set.
func RibbonCurve(h HelixConfig, r RibbonConfig) ([]Point, error) {
	if err := r.Validate(h); err != nil {
		return nil, err
	}

	n := r.SampleCount(h)
	start := 0
	if r.LeadIn {
		start = -r.SamplesPerSegment
	}
	radius := 2 * h.HelixRadius()
	length := h.Spacing * float64(h.SegmentCount)
	turns := math.Pi * h.Rotations()

	pts := make([]Point, 0, n-start+1)
	for i := start; i <= n; i++ {
		f := float64(i) / float64(n)
		t := f * turns
		pts = append(pts, Point{
			X: radius * math.Cos(t),
			Y: radius * math.Sin(t),
			Z: f*length - length/2,
		})
	}
	return pts, nil
}

// Ribbons pairs the centreline into two bands half a turn apart. Both share
// the same point slice.
func Ribbons(points []Point) [2]Ribbon {
	return [2]Ribbon{
		{Points: points, RotationZ: 0},
		{Points: points, RotationZ: math.Pi},
	}
}

// CrossSection returns the ribbon profile: a width×thickness rectangle
// resting on the x axis, counter-clockwise.
func CrossSection(r RibbonConfig) []Point2 {
	w := r.CrossSectionWidth / 2
	t := r.CrossSectionThickness
	return []Point2{
		{X: -w, Y: 0},
		{X: w, Y: 0},
		{X: w, Y: t},
		{X: -w, Y: t},
	}
}

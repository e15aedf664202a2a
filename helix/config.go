package helix

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig reports parameters that would produce degenerate geometry.
var ErrInvalidConfig = errors.New("helix: invalid config")

// MaxEdgeCount keeps a segment's 2*edges+2 vertices within 16-bit indices.
const MaxEdgeCount = (0xFFFF - 2) / 2

// KinkMode selects how kink jitter is applied to the two strands.
type KinkMode uint8

const (
	// KinkSymmetric adds the kink to strand A and subtracts it from strand B.
	KinkSymmetric KinkMode = iota
	// KinkSingleSided adds the kink to both strands.
	KinkSingleSided
)

func (m KinkMode) String() string {
	switch m {
	case KinkSymmetric:
		return "symmetric"
	case KinkSingleSided:
		return "single"
	default:
		return fmt.Sprintf("KinkMode(%d)", uint8(m))
	}
}

// Range is a closed interval [Min, Max].
type Range struct {
	Min, Max float64
}

// Lerp maps u in [0,1] into the range.
func (r Range) Lerp(u float64) float64 { return r.Min + u*(r.Max-r.Min) }

// Contains reports whether v lies in the range.
func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// HelixConfig describes the strands of segments.
type HelixConfig struct {
	MinorRadius  float64 // segment radius
	MajorHeight  float64 // segment length; the strand radius is half of it
	Spacing      float64 // distance between segment centres along the axis
	TwistFactor  float64 // half-turns per segment
	SegmentCount int     // segments per strand
	EdgeCount    int     // radial edges of a segment

	Kink     Range
	KinkMode KinkMode
}

// HelixRadius is the distance of segment centres from the axis.
func (c HelixConfig) HelixRadius() float64 { return c.MajorHeight / 2 }

// TotalHeight is the axial extent of one strand.
func (c HelixConfig) TotalHeight() float64 { return float64(c.SegmentCount) * c.Spacing }

// Rotations is the number of half-turns made over the whole strand.
func (c HelixConfig) Rotations() float64 { return c.TwistFactor * float64(c.SegmentCount) }

// Angle returns the strand A angle of segment i.
func (c HelixConfig) Angle(i int) float64 {
	if c.SegmentCount == 0 {
		return 0
	}
	return float64(i) / float64(c.SegmentCount) * math.Pi * c.Rotations()
}

// Validate checks the invariants required to build strands and ribbons.
func (c HelixConfig) Validate() error {
	switch {
	case c.SegmentCount < 1:
		return fmt.Errorf("%w: segment count must be >= 1, got %d", ErrInvalidConfig, c.SegmentCount)
	case !(c.Spacing > 0):
		return fmt.Errorf("%w: spacing must be > 0, got %v", ErrInvalidConfig, c.Spacing)
	case !(c.MinorRadius > 0):
		return fmt.Errorf("%w: radius must be > 0, got %v", ErrInvalidConfig, c.MinorRadius)
	case !(c.MajorHeight > 0):
		return fmt.Errorf("%w: height must be > 0, got %v", ErrInvalidConfig, c.MajorHeight)
	case c.EdgeCount < 3 || c.EdgeCount > MaxEdgeCount:
		return fmt.Errorf("%w: edge count must be in [3, %d], got %d", ErrInvalidConfig, MaxEdgeCount, c.EdgeCount)
	case c.Kink.Min < 0 || c.Kink.Min > c.Kink.Max:
		return fmt.Errorf("%w: kink range [%v, %v]", ErrInvalidConfig, c.Kink.Min, c.Kink.Max)
	case c.KinkMode > KinkSingleSided:
		return fmt.Errorf("%w: %v", ErrInvalidConfig, c.KinkMode)
	}
	return nil
}

// RibbonConfig describes the swept ribbons.
type RibbonConfig struct {
	CrossSectionWidth     float64
	CrossSectionThickness float64
	SamplesPerSegment     int

	// LeadIn prepends SamplesPerSegment samples before the first segment.
	LeadIn bool
}

// SampleCount is the number of curve intervals N over the strand length.
func (r RibbonConfig) SampleCount(h HelixConfig) int {
	return r.SamplesPerSegment * h.SegmentCount
}

// Validate checks the ribbon parameters against h.
func (r RibbonConfig) Validate(h HelixConfig) error {
	if err := h.Validate(); err != nil {
		return err
	}
	switch {
	case r.SamplesPerSegment < 1:
		return fmt.Errorf("%w: samples per segment must be >= 1, got %d", ErrInvalidConfig, r.SamplesPerSegment)
	case r.SampleCount(h) < 2:
		return fmt.Errorf("%w: ribbon needs >= 2 samples, got %d", ErrInvalidConfig, r.SampleCount(h))
	case !(r.CrossSectionWidth > 0) || !(r.CrossSectionThickness > 0):
		return fmt.Errorf("%w: cross-section %vx%v", ErrInvalidConfig, r.CrossSectionWidth, r.CrossSectionThickness)
	}
	return nil
}

package helix

import (
	"fmt"
	"math"
)

// Strand identifies one of the two helical strands.
type Strand uint8

const (
	StrandA Strand = iota
	StrandB
)

func (s Strand) String() string {
	if s == StrandA {
		return "A"
	}
	return "B"
}

// Point is a position in helix space; Z runs along the helix axis.
type Point struct {
	X, Y, Z float64
}

// SegmentPlacement is the transform of one cylindrical segment.
type SegmentPlacement struct {
	Strand   Strand
	Index    int
	Angle    float64 // angular position around the axis
	Position Point
	Rotation float64 // around the axis, kink included
	Kink     float64 // signed kink applied to Rotation
}

// PlaceStrands returns the placements of both strands, interleaved as
// A0, B0, A1, B1, ... A zero segment count yields no placements.
//
// A nil jitter kinks every segment by Kink.Min.
func PlaceStrands(cfg HelixConfig, j Jitter) ([]SegmentPlacement, error) {
	if cfg.SegmentCount == 0 {
		return nil, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if j == nil {
		j = FixedJitter(0)
	}

	n := cfg.SegmentCount
	radius := cfg.HelixRadius()
	half := cfg.TotalHeight() / 2

	out := make([]SegmentPlacement, 0, 2*n)
	for i := 0; i < n; i++ {
		z := float64(i)*cfg.Spacing - half
		angle := cfg.Angle(i)
		for _, s := range [...]Strand{StrandA, StrandB} {
			a := angle
			if s == StrandB {
				a += math.Pi
			}
			x := math.Cos(a) * radius
			y := math.Sin(a) * radius

			kink := cfg.Kink.Lerp(j.Sample(s, i))
			if s == StrandB && cfg.KinkMode == KinkSymmetric {
				kink = -kink
			}

			out = append(out, SegmentPlacement{
				Strand:   s,
				Index:    i,
				Angle:    a,
				Position: Point{X: x, Y: y, Z: z},
				Rotation: math.Atan2(y, x) + math.Pi/2 + kink,
				Kink:     kink,
			})
		}
	}
	return out, nil
}

// Strands splits interleaved placements by strand.
func Strands(ps []SegmentPlacement) (a, b []SegmentPlacement) {
	for _, p := range ps {
		if p.Strand == StrandA {
			a = append(a, p)
		} else {
			b = append(b, p)
		}
	}
	return a, b
}

func (p SegmentPlacement) String() string {
	return fmt.Sprintf("%s%d (%.3f, %.3f, %.3f) rot=%.3f", p.Strand, p.Index, p.Position.X, p.Position.Y, p.Position.Z, p.Rotation)
}

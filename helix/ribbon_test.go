package helix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRibbonCurveLength(t *testing.T) {
	h := example()

	exact := Simple.Ribbon
	pts, err := RibbonCurve(h, exact)
	require.NoError(t, err)
	require.Len(t, pts, exact.SampleCount(h)+1)

	lead := Classic.Ribbon
	pts, err = RibbonCurve(h, lead)
	require.NoError(t, err)
	require.Len(t, pts, lead.SampleCount(h)+1+lead.SamplesPerSegment)
}

func TestRibbonCurveGeometry(t *testing.T) {
	h := example()
	for _, r := range []RibbonConfig{Classic.Ribbon, Simple.Ribbon} {
		pts, err := RibbonCurve(h, r)
		require.NoError(t, err)

		for i, p := range pts {
			require.InDelta(t, 2*h.HelixRadius(), math.Hypot(p.X, p.Y), 1e-9)
			if i > 0 {
				require.GreaterOrEqual(t, p.Z, pts[i-1].Z)
			}
		}

		last := pts[len(pts)-1]
		require.InDelta(t, h.TotalHeight()/2, last.Z, 1e-9)
		end := math.Pi * h.Rotations()
		require.InDelta(t, 6*math.Cos(end), last.X, 1e-9)
		require.InDelta(t, 6*math.Sin(end), last.Y, 1e-9)
	}
}

func TestRibbonCurveLeadIn(t *testing.T) {
	h := example()
	pts, err := RibbonCurve(h, Classic.Ribbon)
	require.NoError(t, err)

	// The lead-in extends one segment spacing below the strands.
	require.InDelta(t, -h.TotalHeight()/2-h.Spacing, pts[0].Z, 1e-9)
	start := pts[Classic.Ribbon.SamplesPerSegment]
	require.InDelta(t, -h.TotalHeight()/2, start.Z, 1e-9)
	require.InDelta(t, 6, start.X, 1e-9)
}

func TestRibbonsShareCenterline(t *testing.T) {
	pts, err := RibbonCurve(example(), Classic.Ribbon)
	require.NoError(t, err)

	rs := Ribbons(pts)
	require.Equal(t, rs[0].Points, rs[1].Points)
	require.Same(t, &rs[0].Points[0], &rs[1].Points[0])
	require.Equal(t, 0.0, rs[0].RotationZ)
	require.Equal(t, math.Pi, rs[1].RotationZ)
}

func TestRibbonRejectsTooFewSamples(t *testing.T) {
	h := example()
	h.SegmentCount = 1
	r := Simple.Ribbon
	r.SamplesPerSegment = 1
	_, err := RibbonCurve(h, r)
	require.ErrorIs(t, err, ErrInvalidConfig)

	r.SamplesPerSegment = 2
	pts, err := RibbonCurve(h, r)
	require.NoError(t, err)
	require.Len(t, pts, 3)
}

func TestCrossSection(t *testing.T) {
	cs := CrossSection(Classic.Ribbon)
	require.Equal(t, []Point2{{-1, 0}, {1, 0}, {1, 0.1}, {-1, 0.1}}, cs)
}

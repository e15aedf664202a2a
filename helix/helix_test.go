package helix

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func example() HelixConfig {
	return Classic.Helix
}

func normAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

func TestWorkedExample(t *testing.T) {
	cfg := example()
	require.Equal(t, 3.0, cfg.HelixRadius())
	require.Equal(t, 40.0, cfg.TotalHeight())
	require.InDelta(t, 3.2, cfg.Rotations(), 1e-12)

	ps, err := PlaceStrands(cfg, nil)
	require.NoError(t, err)

	a0 := ps[0]
	require.Equal(t, StrandA, a0.Strand)
	require.InDelta(t, 3, a0.Position.X, 1e-12)
	require.InDelta(t, 0, a0.Position.Y, 1e-12)
	require.InDelta(t, -20, a0.Position.Z, 1e-12)

	a, _ := Strands(ps)
	require.InDelta(t, 15.0/16.0*math.Pi*3.2, a[15].Angle, 1e-12)
	require.InDelta(t, 9.42, a[15].Angle, 0.01)
}

func TestPlaceStrandsCountsAndPairs(t *testing.T) {
	for _, n := range []int{1, 2, 7, 16, 100} {
		cfg := example()
		cfg.SegmentCount = n
		ps, err := PlaceStrands(cfg, NewUniformJitter(rand.New(rand.NewSource(int64(n)))))
		require.NoError(t, err)
		require.Len(t, ps, 2*n)

		a, b := Strands(ps)
		require.Len(t, a, n)
		require.Len(t, b, n)

		for i := 0; i < n; i++ {
			require.Equal(t, i, a[i].Index)
			require.Equal(t, i, b[i].Index)
			require.Equal(t, a[i].Position.Z, b[i].Position.Z)
			require.InDelta(t, normAngle(a[i].Angle+math.Pi), normAngle(b[i].Angle), 1e-9)

			wantZ := float64(i)*cfg.Spacing - float64(n)*cfg.Spacing/2
			require.InDelta(t, wantZ, a[i].Position.Z, 1e-9)
			if i > 0 {
				require.Greater(t, a[i].Position.Z, a[i-1].Position.Z)
			}
		}
	}
}

func TestPlaceStrandsRotationAlignsWithTangent(t *testing.T) {
	ps, err := PlaceStrands(example(), FixedJitter(0))
	require.NoError(t, err)
	for _, p := range ps {
		base := math.Atan2(p.Position.Y, p.Position.X) + math.Pi/2
		require.InDelta(t, base+p.Kink, p.Rotation, 1e-12)
	}
}

func TestKinkWithinBounds(t *testing.T) {
	jitters := map[string]Jitter{
		"uniform": NewUniformJitter(rand.New(rand.NewSource(1))),
		"simplex": NewSimplexJitter(1),
		"max":     FixedJitter(1),
	}
	for _, mode := range []KinkMode{KinkSymmetric, KinkSingleSided} {
		for name, j := range jitters {
			cfg := example()
			cfg.SegmentCount = 200
			cfg.KinkMode = mode
			ps, err := PlaceStrands(cfg, j)
			require.NoError(t, err)

			for _, p := range ps {
				k := p.Kink
				if p.Strand == StrandB && mode == KinkSymmetric {
					k = -k
				}
				require.Truef(t, cfg.Kink.Contains(k), "%s/%s: %v kink %v outside %v", mode, name, p, k, cfg.Kink)
			}
		}
	}
}

func TestSimplexJitterDeterministic(t *testing.T) {
	a, b := NewSimplexJitter(7), NewSimplexJitter(7)
	for i := 0; i < 32; i++ {
		require.Equal(t, a.Sample(StrandA, i), b.Sample(StrandA, i))
	}
}

func TestZeroSegments(t *testing.T) {
	cfg := example()
	cfg.SegmentCount = 0

	ps, err := PlaceStrands(cfg, nil)
	require.NoError(t, err)
	require.Empty(t, ps)

	_, err = RibbonCurve(cfg, Classic.Ribbon)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestZeroTwistCollapses(t *testing.T) {
	cfg := example()
	cfg.TwistFactor = 0
	ps, err := PlaceStrands(cfg, nil)
	require.NoError(t, err)
	for _, p := range ps {
		wantX := 3.0
		if p.Strand == StrandB {
			wantX = -3
		}
		require.InDelta(t, wantX, p.Position.X, 1e-12)
		require.InDelta(t, 0, p.Position.Y, 1e-12)
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*HelixConfig){
		"negative segments": func(c *HelixConfig) { c.SegmentCount = -1 },
		"zero spacing":      func(c *HelixConfig) { c.Spacing = 0 },
		"negative spacing":  func(c *HelixConfig) { c.Spacing = -2 },
		"nan spacing":       func(c *HelixConfig) { c.Spacing = math.NaN() },
		"zero radius":       func(c *HelixConfig) { c.MinorRadius = 0 },
		"zero height":       func(c *HelixConfig) { c.MajorHeight = 0 },
		"two edges":         func(c *HelixConfig) { c.EdgeCount = 2 },
		"too many edges":    func(c *HelixConfig) { c.EdgeCount = MaxEdgeCount + 1 },
		"inverted kink":     func(c *HelixConfig) { c.Kink = Range{Min: 0.2, Max: 0.1} },
		"negative kink":     func(c *HelixConfig) { c.Kink = Range{Min: -0.1, Max: 0.1} },
		"unknown mode":      func(c *HelixConfig) { c.KinkMode = 9 },
	}
	require.NoError(t, example().Validate())
	for name, mutate := range cases {
		cfg := example()
		mutate(&cfg)
		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig, name)
		_, err := PlaceStrands(cfg, nil)
		require.ErrorIs(t, err, ErrInvalidConfig, name)
	}
}

func TestPresets(t *testing.T) {
	for _, p := range Presets() {
		require.NoError(t, p.Ribbon.Validate(p.Helix), p.Name)
		got, ok := LookupPreset(p.Name)
		require.True(t, ok)
		require.Equal(t, p, got)
	}
	_, ok := LookupPreset("nope")
	require.False(t, ok)
}

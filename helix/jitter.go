package helix

import (
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Jitter yields the kink fraction u in [0,1) for a segment. The kink itself
// is HelixConfig.Kink.Lerp(u).
type Jitter interface {
	Sample(s Strand, i int) float64
}

// FixedJitter returns the same fraction for every segment.
type FixedJitter float64

func (f FixedJitter) Sample(Strand, int) float64 { return clampUnit(float64(f)) }

// UniformJitter draws independent uniform fractions.
type UniformJitter struct {
	rng *rand.Rand
}

func NewUniformJitter(rng *rand.Rand) *UniformJitter {
	return &UniformJitter{rng: rng}
}

func (j *UniformJitter) Sample(Strand, int) float64 { return j.rng.Float64() }

// SimplexJitter draws fractions from smooth 2D noise, so neighbouring
// segments of a strand kink in similar directions.
type SimplexJitter struct {
	noise     opensimplex.Noise
	Frequency float64
}

func NewSimplexJitter(seed int64) *SimplexJitter {
	return &SimplexJitter{
		noise:     opensimplex.NewNormalized(seed),
		Frequency: 0.35,
	}
}

func (j *SimplexJitter) Sample(s Strand, i int) float64 {
	return clampUnit(j.noise.Eval2(float64(i)*j.Frequency, float64(s)*17))
}

func clampUnit(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 1 {
		return math.Nextafter(1, 0)
	}
	return v
}

package gamemath

import "math/rand/v2"

// Placement is the centre of a platform in world coordinates, together with
// the raw offsets sampled to reach it from the previous placement.
type Placement struct {
	X, Y             float64
	OffsetX, OffsetY float64
}

// GeneratorParams bounds the random walk that places platforms.
type GeneratorParams struct {
	ScreenWidth    float64
	MaxXOffset     float64
	MinYGap        float64
	MaxYGap        float64
	EdgeMargin     float64
	RefillDistance float64
}

// PlatformGenerator produces an unbounded, forward-only sequence of platform
// placements. Each placement is derived from the previous one:
//
//	x' = clamp(x + U(-MaxXOffset, MaxXOffset), EdgeMargin, ScreenWidth-EdgeMargin)
//	y' = y - U(MinYGap, MaxYGap)
type PlatformGenerator struct {
	params GeneratorParams
	rng    *rand.Rand
	last   Placement
	count  int
}

// NewPlatformGenerator seeds the walk at (x, y). The seed position itself is
// never returned as a placement.
func NewPlatformGenerator(params GeneratorParams, rng *rand.Rand, x, y float64) *PlatformGenerator {
	return &PlatformGenerator{
		params: params,
		rng:    rng,
		last:   Placement{X: x, Y: y},
	}
}

// NewSeededRand returns a deterministic source for seed.
func NewSeededRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// Next places one platform.
func (g *PlatformGenerator) Next() Placement {
	dx := g.uniform(-g.params.MaxXOffset, g.params.MaxXOffset)
	dy := g.uniform(g.params.MinYGap, g.params.MaxYGap)

	g.last = Placement{
		X:       Clamp(g.last.X+dx, g.params.EdgeMargin, g.params.ScreenWidth-g.params.EdgeMargin),
		Y:       g.last.Y - dy,
		OffsetX: dx,
		OffsetY: -dy,
	}
	g.count++
	return g.last
}

// Batch places n platforms in order.
func (g *PlatformGenerator) Batch(n int) []Placement {
	out := make([]Placement, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g.Next())
	}
	return out
}

// Last returns the most recent placement (the seed before the first Next).
func (g *PlatformGenerator) Last() Placement {
	return g.last
}

// Count returns how many placements have been produced.
func (g *PlatformGenerator) Count() int {
	return g.count
}

// NeedsMore reports whether the player has come within RefillDistance of the
// highest placement.
func (g *PlatformGenerator) NeedsMore(playerY float64) bool {
	return playerY-g.params.RefillDistance < g.last.Y
}

func (g *PlatformGenerator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

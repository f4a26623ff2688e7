package noise

import (
	"math"

	"github.com/knarkzel/procedural-generation/pkg/core"
)

const permSize = 256

// Perlin is a seeded permutation-table gradient noise sampler. It is a pure
// function of (x, y) after construction and safe for concurrent use.
type Perlin struct {
	// The shuffled 0..255 table is duplicated to 512 entries so corner
	// hashing never needs a wraparound branch.
	perm [2 * permSize]int
}

// NewPerlin builds a sampler whose permutation table is shuffled by the seed.
func NewPerlin(seed uint32) *Perlin {
	rng := core.NewRNG(int64(seed))
	p := &Perlin{}
	for i := 0; i < permSize; i++ {
		p.perm[i] = i
	}
	rng.Shuffle(permSize, func(i, j int) {
		p.perm[i], p.perm[j] = p.perm[j], p.perm[i]
	})
	for i := 0; i < permSize; i++ {
		p.perm[permSize+i] = p.perm[i]
	}
	return p
}

// Sample returns raw single-octave noise for (x, y) in [-1, 1].
func (p *Perlin) Sample(x, y float64) float64 {
	x0 := int(math.Floor(x)) & (permSize - 1)
	y0 := int(math.Floor(y)) & (permSize - 1)

	x -= math.Floor(x)
	y -= math.Floor(y)

	fx := fade(x)
	fy := fade(y)
	p0 := p.perm[x0] + y0
	p1 := p.perm[x0+1] + y0

	return lerp(fy,
		lerp(fx,
			grad(p.perm[p0], x, y),
			grad(p.perm[p1], x-1, y)),
		lerp(fx,
			grad(p.perm[p0+1], x, y-1),
			grad(p.perm[p1+1], x-1, y-1)))
}

// grad selects a gradient contribution from the low bit of the corner hash:
// bit 0 clear picks -x, bit 0 set picks y.
func grad(hash int, x, y float64) float64 {
	if hash&1 == 0 {
		return -x
	}
	return y
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// fade is the quintic smoothstep t^3*(t*(t*6-15)+10). Its first and second
// derivatives vanish at 0 and 1, which keeps gradient contributions seamless
// across lattice cell boundaries.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

package noise

import "github.com/aquilax/go-perlin"

// Library samples 2D noise through github.com/aquilax/go-perlin instead of
// the hand-rolled permutation table. Output geometry differs from Perlin for
// the same seed; pick one backend per map and stick with it.
type Library struct {
	p *perlin.Perlin
}

const (
	libraryAlpha = 2
	libraryBeta  = 2
	libraryN     = 3
)

// NewLibrary builds a library-backed sampler for the given seed.
func NewLibrary(seed uint32) *Library {
	return &Library{p: perlin.NewPerlin(libraryAlpha, libraryBeta, libraryN, int64(seed))}
}

// Sample returns single-octave noise for (x, y) in [-1, 1].
func (l *Library) Sample(x, y float64) float64 {
	return l.p.Noise2D(x, y)
}

package noise

import "math"

// Sampler is a raw 2D noise source returning values in [-1, 1].
type Sampler interface {
	Sample(x, y float64) float64
}

// fallout halves each octave's amplitude relative to the previous one, the
// classic fractal Brownian motion persistence of 0.5 (with lacunarity 2 from
// the frequency doubling in At).
const fallout = 0.5

// Field combines a raw sampler into normalized fractal noise. It owns the
// octave accumulation, the calibration back to [0, 1], and the redistribution
// exponent. Like its sampler it is immutable and safe for concurrent use.
type Field struct {
	src            Sampler
	octaves        int
	redistribution float64
	lo             float64
	span           float64
}

// NewField wraps src with the octave count and redistribution from opts.
// Frequency is not applied here; callers scale coordinates before sampling.
func NewField(src Sampler, opts Options) (*Field, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	lo, span := calibration(opts.Octaves)
	return &Field{
		src:            src,
		octaves:        opts.Octaves,
		redistribution: opts.Redistribution,
		lo:             lo,
		span:           span,
	}, nil
}

// calibration returns the affine remap constants that stretch the octave sum
// over [0, 1]. At four octaves (amplitude sum 0.9375) the constants are
// lo=0.35, span=0.25; both scale linearly with the amplitude sum for other
// octave counts.
func calibration(octaves int) (lo, span float64) {
	sum := 0.0
	amp := 1.0
	for i := 0; i < octaves; i++ {
		amp *= fallout
		sum += amp
	}
	const refSum = 0.9375
	return 0.35 * sum / refSum, 0.25 * sum / refSum
}

// At returns normalized fractal noise for (x, y) in [0, 1].
//
// Each octave samples at doubled frequency and halved amplitude, accumulating
// amp*((1+raw)/2). The sum is remapped through the calibration constants,
// then the redistribution exponent is applied sign-preservingly on the
// [-1, 1] domain before the final remap to [0, 1].
func (f *Field) At(x, y float64) float64 {
	amp := 1.0
	k := 1.0
	sum := 0.0
	for i := 0; i < f.octaves; i++ {
		amp *= fallout
		sum += amp * ((1 + f.src.Sample(k*x, k*y)) / 2)
		k *= 2
	}

	v := clamp01((sum - f.lo) / f.span)
	if f.redistribution != 1 {
		signed := signPow(2*v-1, f.redistribution)
		v = clamp01((signed + 1) / 2)
	}
	return v
}

// signPow raises |v| to the given exponent while keeping the sign of v, so
// fractional exponents stay defined for negative inputs.
func signPow(v, exp float64) float64 {
	if v < 0 {
		return -math.Pow(-v, exp)
	}
	return math.Pow(v, exp)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

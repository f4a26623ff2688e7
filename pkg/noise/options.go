// Package noise implements seeded 2D gradient noise and its combination into
// normalized, classifiable terrain values.
package noise

import "fmt"

// Options controls how noise is generated.
//
// See https://www.redblobgames.com/maps/terrain-from-noise/ for background on
// each knob.
type Options struct {
	// Frequency adds a zooming effect to the noise. Default is 1.0.
	Frequency float64
	// Redistribution exaggerates higher peaks and lower lows. Default is 1.0.
	Redistribution float64
	// Octaves increases variety. Default is 1.
	Octaves int
}

// DefaultOptions returns the standard noise configuration.
func DefaultOptions() Options {
	return Options{Frequency: 1.0, Redistribution: 1.0, Octaves: 1}
}

// Validate reports a descriptive error for configurations that would produce
// undefined noise.
func (o Options) Validate() error {
	if o.Frequency <= 0 {
		return fmt.Errorf("noise: frequency must be positive, got %v", o.Frequency)
	}
	if o.Redistribution <= 0 {
		return fmt.Errorf("noise: redistribution must be positive, got %v", o.Redistribution)
	}
	if o.Octaves < 1 {
		return fmt.Errorf("noise: octaves must be at least 1, got %d", o.Octaves)
	}
	return nil
}

package field

import "math/rand"

// Particle is one drifting point of the field. Only its position changes
// after creation.
type Particle struct {
	X, Y float64

	size    float64
	speedX  float64
	speedY  float64
	opacity float64
}

func (p Particle) Size() float64                { return p.size }
func (p Particle) Velocity() (float64, float64) { return p.speedX, p.speedY }
func (p Particle) Opacity() float64             { return p.opacity }

func newParticle(rng *rand.Rand, width, height float64, p Params) Particle {
	return Particle{
		X:       rng.Float64() * width,
		Y:       rng.Float64() * height,
		size:    between(rng, p.SizeMin, p.SizeMax),
		speedX:  between(rng, -p.SpeedMax, p.SpeedMax),
		speedY:  between(rng, -p.SpeedMax, p.SpeedMax),
		opacity: between(rng, p.OpacityMin, p.OpacityMax),
	}
}

// between samples [lo, hi).
func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

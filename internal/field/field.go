// Package field simulates the ambient particle field: constant drift,
// toroidal wraparound, pointer repulsion and proximity links.
package field

import (
	"math"
	"math/rand"
)

// Params are the physical constants of a field.
type Params struct {
	SizeMin, SizeMax       float64
	SpeedMax               float64
	OpacityMin, OpacityMax float64

	RepelRadius   float64
	RepelStrength float64

	LinkDistance float64
	LinkOpacity  float64
}

func DefaultParams() Params {
	return Params{
		SizeMin:       1,
		SizeMax:       3,
		SpeedMax:      0.25,
		OpacityMin:    0.2,
		OpacityMax:    0.7,
		RepelRadius:   100,
		RepelStrength: 0.5,
		LinkDistance:  120,
		LinkOpacity:   0.2,
	}
}

// Field owns a fixed set of particles inside a width x height surface.
type Field struct {
	params    Params
	width     float64
	height    float64
	particles []Particle
}

// New scatters count particles uniformly over the surface. The count never
// changes afterwards.
func New(width, height float64, count int, params Params, rng *rand.Rand) *Field {
	f := &Field{
		params:    params,
		width:     width,
		height:    height,
		particles: make([]Particle, count),
	}
	for i := range f.particles {
		f.particles[i] = newParticle(rng, width, height, params)
	}
	return f
}

func (f *Field) Params() Params { return f.params }

func (f *Field) Len() int { return len(f.particles) }

// At returns a copy of particle i.
func (f *Field) At(i int) Particle { return f.particles[i] }

func (f *Field) Size() (float64, float64) { return f.width, f.height }

// Resize changes the bounds. Particles left outside are not clamped here;
// the next Step wraps them back in.
func (f *Field) Resize(width, height float64) {
	f.width, f.height = width, height
}

// Step advances every particle by one frame against the pointer at (px, py).
func (f *Field) Step(px, py float64) {
	for i := range f.particles {
		p := &f.particles[i]
		p.X += p.speedX
		p.Y += p.speedY
		p.X = wrap(p.X, f.width)
		p.Y = wrap(p.Y, f.height)

		dx, dy := f.repel(p.X, p.Y, px, py)
		if dx == 0 && dy == 0 {
			continue
		}
		// A push can cross an edge; wrap again so positions stay in bounds.
		p.X = wrap(p.X+dx, f.width)
		p.Y = wrap(p.Y+dy, f.height)
	}
}

// Connections calls fn for every unordered pair closer than the link
// distance, with the line opacity for that pair. This is O(n^2) and only
// meant for the small capped counts the field runs with.
func (f *Field) Connections(fn func(a, b Particle, opacity float64)) int {
	drawn := 0
	for i := 0; i < len(f.particles); i++ {
		for j := i + 1; j < len(f.particles); j++ {
			a, b := f.particles[i], f.particles[j]
			d := math.Hypot(a.X-b.X, a.Y-b.Y)
			o, ok := f.linkOpacity(d)
			if !ok {
				continue
			}
			fn(a, b, o)
			drawn++
		}
	}
	return drawn
}

// Repulsion is the displacement magnitude at distance d from the pointer.
// It is zero at or beyond the radius and at d == 0, where no direction exists.
func (p Params) Repulsion(d float64) float64 {
	if d <= 0 || d >= p.RepelRadius {
		return 0
	}
	return (p.RepelRadius - d) / p.RepelRadius * p.RepelStrength
}

// repel returns the displacement pushing (x, y) away from the pointer.
func (f *Field) repel(x, y, px, py float64) (float64, float64) {
	dx := x - px
	dy := y - py
	d := math.Hypot(dx, dy)
	force := f.params.Repulsion(d)
	if force == 0 {
		return 0, 0
	}
	return dx / d * force, dy / d * force
}

// linkOpacity fades linearly from LinkOpacity at d == 0 to nothing at the
// link distance.
func (f *Field) linkOpacity(d float64) (float64, bool) {
	if d >= f.params.LinkDistance {
		return 0, false
	}
	return f.params.LinkOpacity * (1 - d/f.params.LinkDistance), true
}

// wrap maps v into [0, bound): past the far edge re-enters at 0, below 0
// re-enters just inside the far edge.
func wrap(v, bound float64) float64 {
	if bound <= 0 {
		return 0
	}
	if v >= bound {
		return 0
	}
	if v < 0 {
		return math.Nextafter(bound, 0)
	}
	return v
}

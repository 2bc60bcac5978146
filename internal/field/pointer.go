package field

// Pointer is the most recent pointer position. Input handlers write it and
// the frame update reads it; whichever write came last wins.
type Pointer struct {
	x, y  float64
	moved bool
}

func (p *Pointer) Move(x, y float64) {
	p.x, p.y = x, y
	p.moved = true
}

func (p *Pointer) Position() (float64, float64) {
	return p.x, p.y
}

// Moved reports whether any pointer event has been seen yet.
func (p *Pointer) Moved() bool {
	return p.moved
}

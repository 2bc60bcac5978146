// Package cursor implements the custom pointer overlay: a dot pinned to the
// pointer and a ring that eases toward it.
package cursor

type Cursor struct {
	smoothing float64

	X, Y           float64 // dot, exactly at the pointer
	TrailX, TrailY float64 // ring, lagging behind
}

// New returns a cursor whose trail closes the given fraction of the gap
// each frame.
func New(smoothing float64) *Cursor {
	return &Cursor{smoothing: smoothing}
}

// Update moves the dot to (x, y) and eases the trail one frame toward it.
func (c *Cursor) Update(x, y float64) {
	c.X, c.Y = x, y
	c.TrailX += (x - c.TrailX) * c.smoothing
	c.TrailY += (y - c.TrailY) * c.smoothing
}

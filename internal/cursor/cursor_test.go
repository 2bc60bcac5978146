package cursor

import (
	"math"
	"testing"
)

func TestUpdateEasesTrail(t *testing.T) {
	c := New(0.1)
	c.Update(100, 50)

	if c.X != 100 || c.Y != 50 {
		t.Errorf("dot at (%v, %v), want (100, 50)", c.X, c.Y)
	}
	if math.Abs(c.TrailX-10) > 1e-9 || math.Abs(c.TrailY-5) > 1e-9 {
		t.Errorf("trail at (%v, %v), want (10, 5)", c.TrailX, c.TrailY)
	}

	c.Update(100, 50)
	if math.Abs(c.TrailX-19) > 1e-9 || math.Abs(c.TrailY-9.5) > 1e-9 {
		t.Errorf("trail at (%v, %v), want (19, 9.5)", c.TrailX, c.TrailY)
	}
}

func TestTrailConvergesToPointer(t *testing.T) {
	c := New(0.1)
	for i := 0; i < 300; i++ {
		c.Update(640, 360)
	}
	if math.Abs(c.TrailX-640) > 1e-6 || math.Abs(c.TrailY-360) > 1e-6 {
		t.Errorf("trail at (%v, %v) did not converge", c.TrailX, c.TrailY)
	}
}

func TestFullSmoothingSnaps(t *testing.T) {
	c := New(1)
	c.Update(42, 7)
	if c.TrailX != 42 || c.TrailY != 7 {
		t.Errorf("trail at (%v, %v), want (42, 7)", c.TrailX, c.TrailY)
	}
}

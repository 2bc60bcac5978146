package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// screenSurface paints animator frames onto the ebiten screen. It only has a
// target while Draw runs; outside of that every call is a no-op.
type screenSurface struct {
	target     *ebiten.Image
	background color.NRGBA
	glow       float64
}

// Clear fills the whole screen; Layout keeps it the size of the field.
func (s *screenSurface) Clear(width, height float64) {
	if s.target == nil {
		return
	}
	s.target.Fill(brighten(s.background, s.glow))
}

func (s *screenSurface) FillCircle(x, y, r float64, clr color.Color) {
	if s.target == nil {
		return
	}
	vector.DrawFilledCircle(s.target, float32(x), float32(y), float32(r), clr, true)
}

func (s *screenSurface) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	if s.target == nil {
		return
	}
	vector.StrokeLine(s.target, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

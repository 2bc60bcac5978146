package animator

import "image/color"

// Surface is the immediate-mode 2D target a frame is drawn onto.
type Surface interface {
	Clear(width, height float64)
	FillCircle(x, y, r float64, clr color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, clr color.Color)
}

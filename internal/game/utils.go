package game

import (
	"fmt"
	"image/color"
	"time"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// brighten mixes c toward white by amount (0-1).
func brighten(c color.NRGBA, amount float64) color.NRGBA {
	amount = clamp01(amount)
	mix := func(v uint8) uint8 {
		return uint8(float64(v) + (255-float64(v))*amount)
	}
	return color.NRGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

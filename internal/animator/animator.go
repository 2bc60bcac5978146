// Package animator drives a particle field frame by frame onto a Surface.
package animator

import (
	"image/color"
	"log/slog"
	"math"

	"github.com/iburimskiy/particle-field/internal/field"
)

// Style is how particles and links are painted.
type Style struct {
	Accent    color.NRGBA
	LinkWidth float64
}

// Stats describe what the animator has drawn so far.
type Stats struct {
	Frames uint64
	Links  int // drawn in the last frame
}

type Animator struct {
	field   *field.Field
	pointer *field.Pointer
	surface Surface
	style   Style

	stats  Stats
	handle *Handle
}

func New(f *field.Field, pointer *field.Pointer, surface Surface, style Style) *Animator {
	return &Animator{
		field:   f,
		pointer: pointer,
		surface: surface,
		style:   style,
	}
}

func (a *Animator) Field() *field.Field { return a.field }

func (a *Animator) Stats() Stats { return a.stats }

// Resize follows the viewport. Particle state is kept as is.
func (a *Animator) Resize(width, height float64) {
	w, h := a.field.Size()
	if w == width && h == height {
		return
	}
	a.field.Resize(width, height)
	slog.Info("particle field resized", "width", width, "height", height)
}

// Frame clears the surface, steps and paints every particle, then paints
// the links between close pairs.
func (a *Animator) Frame() {
	w, h := a.field.Size()
	a.surface.Clear(w, h)

	px, py := a.pointer.Position()
	a.field.Step(px, py)

	a.paint()
	a.stats.Frames++
}

// Render repaints the current state without advancing it.
func (a *Animator) Render() {
	w, h := a.field.Size()
	a.surface.Clear(w, h)
	a.paint()
}

func (a *Animator) paint() {
	for i := 0; i < a.field.Len(); i++ {
		p := a.field.At(i)
		a.surface.FillCircle(p.X, p.Y, p.Size(), a.tint(p.Opacity()))
	}

	a.stats.Links = a.field.Connections(func(p, q field.Particle, opacity float64) {
		a.surface.StrokeLine(p.X, p.Y, q.X, q.Y, a.style.LinkWidth, a.tint(opacity))
	})
}

func (a *Animator) tint(opacity float64) color.NRGBA {
	c := a.style.Accent
	c.A = uint8(math.Round(clamp01(opacity) * 255))
	return c
}

// Start runs Frame on every frame the scheduler grants until the returned
// handle is stopped. Starting an already running animator returns its
// live handle.
func (a *Animator) Start(s Scheduler) *Handle {
	if a.handle != nil && a.handle.Running() {
		return a.handle
	}
	h := &Handle{animator: a, scheduler: s}
	h.id = s.RequestFrame(h.tick)
	a.handle = h
	return h
}

// Running reports whether a started handle is still live.
func (a *Animator) Running() bool {
	return a.handle != nil && a.handle.Running()
}

// Handle controls one run of the animation loop.
type Handle struct {
	animator  *Animator
	scheduler Scheduler
	id        FrameID
	stopped   bool
}

func (h *Handle) tick() {
	if h.stopped {
		return
	}
	h.animator.Frame()
	if h.stopped {
		return
	}
	h.id = h.scheduler.RequestFrame(h.tick)
}

// Stop cancels the pending frame. Calling it again does nothing.
func (h *Handle) Stop() {
	if h.stopped {
		return
	}
	h.stopped = true
	h.scheduler.CancelFrame(h.id)
}

func (h *Handle) Running() bool {
	return !h.stopped
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

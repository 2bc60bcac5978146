// Package game hosts the particle field inside an ebiten window.
package game

import (
	"fmt"
	"image/color"
	"log/slog"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/particle-field/internal/animator"
	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/cursor"
	"github.com/iburimskiy/particle-field/internal/field"
)

type Game struct {
	cfg config.Config

	// field
	pointer  *field.Pointer
	frames   *animator.FrameQueue
	surface  *screenSurface
	animator *animator.Animator
	handle   *animator.Handle
	accent   color.NRGBA

	// overlay
	cursor     *cursor.Cursor
	cursorLoop animator.FrameID
	hudFace    *text.GoXFace

	music *soundtrack

	// input edge detection
	prevKey  map[ebiten.Key]bool
	lastX    int
	lastY    int
	touchIDs []ebiten.TouchID

	// state
	width   int
	height  int
	paused  bool
	closed  bool
	showHUD bool
	lastErr error
}

// New builds the field for the configured window. The particle count is
// fixed here from the initial width and kept for the whole session.
func New(cfg config.Config) (*Game, error) {
	accent, err := config.ParseHexColor(cfg.Field.Accent)
	if err != nil {
		return nil, fmt.Errorf("accent colour: %w", err)
	}
	background, err := config.ParseHexColor(cfg.Field.Background)
	if err != nil {
		return nil, fmt.Errorf("background colour: %w", err)
	}

	seed := cfg.Field.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	width, height := cfg.Window.Width, cfg.Window.Height
	count := cfg.Field.ParticleCount(width)
	f := field.New(float64(width), float64(height), count, fieldParams(cfg.Field), rng)

	g := &Game{
		cfg:     cfg,
		pointer: &field.Pointer{},
		frames:  &animator.FrameQueue{},
		surface: &screenSurface{background: background},
		accent:  accent,
		hudFace: text.NewGoXFace(basicfont.Face7x13),
		music:   newSoundtrack(cfg.Soundtrack),
		prevKey: map[ebiten.Key]bool{},
		width:   width,
		height:  height,
		showHUD: cfg.HUD.Visible,
	}
	g.animator = animator.New(f, g.pointer, g.surface, animator.Style{
		Accent:    accent,
		LinkWidth: cfg.Field.LinkWidth,
	})
	g.handle = g.animator.Start(g.frames)

	// The custom cursor is a desktop-only effect.
	if cfg.Cursor.Enabled && !cfg.Field.Mobile(width) {
		g.cursor = cursor.New(cfg.Cursor.Smoothing)
		g.cursorLoop = g.frames.RequestFrame(g.tickCursor)
	}

	if cfg.Soundtrack.Path != "" {
		if err := g.music.load(cfg.Soundtrack.Path); err != nil {
			slog.Warn("soundtrack unavailable", "path", cfg.Soundtrack.Path, "error", err)
			g.lastErr = err
		}
	}

	slog.Info("particle field ready", "width", width, "height", height, "particles", count, "seed", seed)
	return g, nil
}

func fieldParams(c config.FieldConfig) field.Params {
	return field.Params{
		SizeMin:       c.SizeMin,
		SizeMax:       c.SizeMax,
		SpeedMax:      c.SpeedMax,
		OpacityMin:    c.OpacityMin,
		OpacityMax:    c.OpacityMax,
		RepelRadius:   c.RepelRadius,
		RepelStrength: c.RepelStrength,
		LinkDistance:  c.LinkDistance,
		LinkOpacity:   c.LinkOpacity,
	}
}

// CustomCursor reports whether the system cursor should be hidden.
func (g *Game) CustomCursor() bool {
	return g.cursor != nil
}

func (g *Game) tickCursor() {
	x, y := g.pointer.Position()
	g.cursor.Update(x, y)
	g.cursorLoop = g.frames.RequestFrame(g.tickCursor)
}

func (g *Game) Update() error {

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	g.trackPointer()

	if justPressed(ebiten.KeySpace) {
		g.togglePause()
	}
	if justPressed(ebiten.KeyO) {
		if err := g.openSoundtrack(); err != nil {
			g.lastErr = err
		}
	}
	if justPressed(ebiten.KeyM) {
		g.music.toggleMute()
	}
	if justPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if justPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		g.Close()
		return ebiten.Termination
	}

	g.music.update()
	return nil
}

// trackPointer feeds mouse and touch movement into the shared pointer.
func (g *Game) trackPointer() {
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	if len(g.touchIDs) > 0 {
		x, y := ebiten.TouchPosition(g.touchIDs[0])
		g.pointer.Move(float64(x), float64(y))
		return
	}

	x, y := ebiten.CursorPosition()
	if x == g.lastX && y == g.lastY {
		return
	}
	g.lastX, g.lastY = x, y
	g.pointer.Move(float64(x), float64(y))
}

func (g *Game) togglePause() {
	g.paused = !g.paused
	if g.paused {
		g.handle.Stop()
	} else {
		g.handle = g.animator.Start(g.frames)
	}
	g.music.setPaused(g.paused)
	slog.Debug("pause toggled", "paused", g.paused)
}

func (g *Game) openSoundtrack() error {
	path, err := g.music.chooseFile()
	if err != nil || path == "" {
		return err
	}
	return g.music.load(path)
}

// Close stops the animation loop and releases audio. Safe to call twice.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.handle.Stop()
	if g.cursor != nil {
		g.frames.CancelFrame(g.cursorLoop)
	}
	g.music.stop()
	slog.Info("particle field stopped", "frames", g.animator.Stats().Frames)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.target = screen
	g.surface.glow = g.music.level * 0.08
	defer func() { g.surface.target = nil }()

	if g.paused {
		g.animator.Render()
	}
	g.frames.Flush()

	g.drawCursor(screen)
	if g.showHUD {
		g.drawHUD(screen)
	}
}

func (g *Game) drawCursor(screen *ebiten.Image) {
	if g.cursor == nil || !g.pointer.Moved() {
		return
	}
	c := g.cursor
	ring := g.accent
	ring.A = 128
	vector.StrokeCircle(screen, float32(c.TrailX), float32(c.TrailY), float32(g.cfg.Cursor.RingRadius), 1.5, ring, true)
	vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(g.cfg.Cursor.DotRadius), g.accent, true)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	stats := g.animator.Stats()
	lines := []string{
		g.status(),
		fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()),
		fmt.Sprintf("%dx%d  particles %d  links %d", g.width, g.height, g.animator.Field().Len(), stats.Links),
	}
	if g.music.loaded() {
		lines = append(lines, fmt.Sprintf("soundtrack %s / %s  level %.2f",
			formatDuration(g.music.position()), formatDuration(g.music.duration()), g.music.level))
	}
	if g.lastErr != nil {
		lines = append(lines, "Error: "+g.lastErr.Error())
	}

	for i, l := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(12, float64(12+i*16))
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, l, g.hudFace, op)
	}
}

func (g *Game) status() string {
	switch {
	case g.paused:
		return "Paused - Space to resume"
	case g.music.muted:
		return "Running (muted) - Space to pause, O for soundtrack, M to unmute"
	default:
		return "Running - Space to pause, O for soundtrack, M to mute"
	}
}

// Layout follows the window size so the drawing surface always matches
// the viewport. A zero size (minimised window) keeps the last one.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return g.width, g.height
	}
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.animator.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return g.width, g.height
}

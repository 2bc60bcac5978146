package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	WindowWidth  = 1280
	WindowHeight = 720

	// Viewports at or below this width count as mobile.
	MobileBreakpoint = 768

	NarrowParticleCount = 30
	WideParticleCount   = 80

	AccentColor     = "#00d9ff"
	BackgroundColor = "#05070d"

	VisualRingSize = 4096
)

// Config holds everything the particle field window can be tuned with.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Field      FieldConfig      `yaml:"field"`
	Cursor     CursorConfig     `yaml:"cursor"`
	Soundtrack SoundtrackConfig `yaml:"soundtrack"`
	HUD        HUDConfig        `yaml:"hud"`
}

type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

// FieldConfig describes the ambient particle field.
type FieldConfig struct {
	// Breakpoint is the viewport width at or below which NarrowCount is used.
	Breakpoint  int `yaml:"breakpoint"`
	NarrowCount int `yaml:"narrowCount"`
	WideCount   int `yaml:"wideCount"`

	SizeMin    float64 `yaml:"sizeMin"`
	SizeMax    float64 `yaml:"sizeMax"`
	SpeedMax   float64 `yaml:"speedMax"`
	OpacityMin float64 `yaml:"opacityMin"`
	OpacityMax float64 `yaml:"opacityMax"`

	RepelRadius   float64 `yaml:"repelRadius"`
	RepelStrength float64 `yaml:"repelStrength"`

	LinkDistance float64 `yaml:"linkDistance"`
	LinkOpacity  float64 `yaml:"linkOpacity"`
	LinkWidth    float64 `yaml:"linkWidth"`

	Accent     string `yaml:"accent"`
	Background string `yaml:"background"`

	// Seed of 0 seeds from the clock.
	Seed int64 `yaml:"seed"`
}

type CursorConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Smoothing  float64 `yaml:"smoothing"`
	DotRadius  float64 `yaml:"dotRadius"`
	RingRadius float64 `yaml:"ringRadius"`
}

type SoundtrackConfig struct {
	Path   string  `yaml:"path"`
	Volume float64 `yaml:"volume"`
	Muted  bool    `yaml:"muted"`
}

type HUDConfig struct {
	Visible bool `yaml:"visible"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:     WindowWidth,
			Height:    WindowHeight,
			Title:     "Particle Field - Space: pause, O: soundtrack, H: HUD, Esc/Q: quit",
			Resizable: true,
		},
		Field: FieldConfig{
			Breakpoint:    MobileBreakpoint,
			NarrowCount:   NarrowParticleCount,
			WideCount:     WideParticleCount,
			SizeMin:       1,
			SizeMax:       3,
			SpeedMax:      0.25,
			OpacityMin:    0.2,
			OpacityMax:    0.7,
			RepelRadius:   100,
			RepelStrength: 0.5,
			LinkDistance:  120,
			LinkOpacity:   0.2,
			LinkWidth:     1,
			Accent:        AccentColor,
			Background:    BackgroundColor,
		},
		Cursor: CursorConfig{
			Enabled:    true,
			Smoothing:  0.1,
			DotRadius:  4,
			RingRadius: 16,
		},
		Soundtrack: SoundtrackConfig{
			Volume: 0,
		},
	}
}

// Load reads a YAML file over the defaults. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first setting that cannot produce a working field.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	f := c.Field
	if f.Breakpoint < 0 {
		return fmt.Errorf("breakpoint must not be negative, got %d", f.Breakpoint)
	}
	if f.NarrowCount < 0 || f.WideCount < 0 {
		return fmt.Errorf("particle counts must not be negative, got %d/%d", f.NarrowCount, f.WideCount)
	}
	if f.SizeMin <= 0 || f.SizeMin > f.SizeMax {
		return fmt.Errorf("size range invalid: min(%.2f) max(%.2f)", f.SizeMin, f.SizeMax)
	}
	if f.SpeedMax < 0 {
		return fmt.Errorf("speedMax must not be negative, got %.2f", f.SpeedMax)
	}
	if f.OpacityMin < 0 || f.OpacityMax > 1 || f.OpacityMin > f.OpacityMax {
		return fmt.Errorf("opacity range invalid: min(%.2f) max(%.2f)", f.OpacityMin, f.OpacityMax)
	}
	if f.RepelRadius <= 0 {
		return fmt.Errorf("repelRadius must be positive, got %.2f", f.RepelRadius)
	}
	if f.LinkDistance <= 0 {
		return fmt.Errorf("linkDistance must be positive, got %.2f", f.LinkDistance)
	}
	if f.LinkOpacity < 0 || f.LinkOpacity > 1 {
		return fmt.Errorf("linkOpacity must be within [0,1], got %.2f", f.LinkOpacity)
	}
	if f.LinkWidth <= 0 {
		return fmt.Errorf("linkWidth must be positive, got %.2f", f.LinkWidth)
	}
	if _, err := ParseHexColor(f.Accent); err != nil {
		return fmt.Errorf("accent: %w", err)
	}
	if _, err := ParseHexColor(f.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}

	if c.Cursor.Smoothing <= 0 || c.Cursor.Smoothing > 1 {
		return fmt.Errorf("cursor smoothing must be within (0,1], got %.2f", c.Cursor.Smoothing)
	}
	if c.Cursor.DotRadius <= 0 || c.Cursor.RingRadius <= 0 {
		return errors.New("cursor radii must be positive")
	}
	return nil
}

// ParticleCount picks the particle count for the initial viewport width.
func (f FieldConfig) ParticleCount(width int) int {
	if width <= f.Breakpoint {
		return f.NarrowCount
	}
	return f.WideCount
}

// Mobile reports whether width falls in the narrow layout.
func (f FieldConfig) Mobile(width int) bool {
	return width <= f.Breakpoint
}

// ParseHexColor parses "#rrggbb" (the leading # is optional) into an opaque colour.
func ParseHexColor(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return color.NRGBA{}, fmt.Errorf("malformed colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("malformed colour %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

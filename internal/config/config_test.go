package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "field.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg.Field.WideCount != WideParticleCount || cfg.Field.NarrowCount != NarrowParticleCount {
		t.Errorf("expected default counts %d/%d, got %d/%d",
			NarrowParticleCount, WideParticleCount, cfg.Field.NarrowCount, cfg.Field.WideCount)
	}
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 375
  height: 667
field:
  wideCount: 120
  accent: "#ff0080"
soundtrack:
  path: ambient.mp3
  muted: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Window.Width != 375 || cfg.Window.Height != 667 {
		t.Errorf("window size = %dx%d, want 375x667", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Field.WideCount != 120 {
		t.Errorf("wideCount = %d, want 120", cfg.Field.WideCount)
	}
	if cfg.Field.NarrowCount != NarrowParticleCount {
		t.Errorf("narrowCount should keep its default, got %d", cfg.Field.NarrowCount)
	}
	if cfg.Field.LinkDistance != 120 {
		t.Errorf("linkDistance should keep its default, got %.1f", cfg.Field.LinkDistance)
	}
	if cfg.Soundtrack.Path != "ambient.mp3" || !cfg.Soundtrack.Muted {
		t.Errorf("soundtrack = %+v", cfg.Soundtrack)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad yaml", "window: [", "failed to parse config"},
		{"negative size", "window:\n  width: -1\n", "window size"},
		{"size range", "field:\n  sizeMin: 4\n  sizeMax: 3\n", "size range"},
		{"opacity range", "field:\n  opacityMax: 1.5\n", "opacity range"},
		{"link distance", "field:\n  linkDistance: 0\n", "linkDistance"},
		{"accent colour", "field:\n  accent: teal\n", "accent"},
		{"smoothing", "cursor:\n  smoothing: 0\n", "smoothing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestParticleCount(t *testing.T) {
	f := Default().Field
	tests := []struct {
		width int
		want  int
	}{
		{320, 30},
		{768, 30},
		{769, 80},
		{1920, 80},
	}

	for _, tt := range tests {
		if got := f.ParticleCount(tt.width); got != tt.want {
			t.Errorf("ParticleCount(%d) = %d, want %d", tt.width, got, tt.want)
		}
		if got := f.Mobile(tt.width); got != (tt.width <= MobileBreakpoint) {
			t.Errorf("Mobile(%d) = %v", tt.width, got)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#00d9ff", color.NRGBA{R: 0, G: 217, B: 255, A: 255}, false},
		{"05070d", color.NRGBA{R: 5, G: 7, B: 13, A: 255}, false},
		{" #FFFFFF ", color.NRGBA{R: 255, G: 255, B: 255, A: 255}, false},
		{"#fff", color.NRGBA{}, true},
		{"#gggggg", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHexColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

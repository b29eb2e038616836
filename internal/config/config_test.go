package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/pixpal/internal/pixel"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DataDir != DefaultDataDir {
		t.Errorf("expected data dir %s, got %s", DefaultDataDir, cfg.DataDir)
	}
	if cfg.PNGScale <= 0 {
		t.Error("png scale should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestDefaultPaletteMatchesModel(t *testing.T) {
	p, err := DefaultConfig().GetPalette()
	if err != nil {
		t.Fatal(err)
	}
	got := p.Colors()
	for i, c := range pixel.DefaultColors {
		if got[i] != c {
			t.Errorf("slot %d: expected %s, got %s", i, c, got[i])
		}
	}
}

func TestGetPreset(t *testing.T) {
	colors := GetPreset("grayscale")
	if colors == nil {
		t.Fatal("expected preset, got nil")
	}
	if colors[9] != "#000000" {
		t.Errorf("expected last slot #000000, got %s", colors[9])
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsAreValidPalettes(t *testing.T) {
	for _, name := range ListPresets() {
		colors := GetPreset(name)
		if len(colors) != len(pixel.DefaultColors) {
			t.Errorf("preset %s: expected %d slots, got %d", name, len(pixel.DefaultColors), len(colors))
		}
		if _, err := pixel.NewPalette(colors); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

func TestPaletteOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PalettePreset = "pastel"
	cfg.Palette = []string{"#010101", "#020202"}

	p, err := cfg.GetPalette()
	if err != nil {
		t.Fatal(err)
	}
	colors := p.Colors()
	if colors[0] != "#010101" || colors[1] != "#020202" {
		t.Errorf("override not applied: %v", colors)
	}
	if colors[2] != Presets["pastel"][2] {
		t.Errorf("expected preset color in slot 2, got %s", colors[2])
	}
	if p.Brush() != "#010101" {
		t.Errorf("brush should start at slot 0, got %s", p.Brush())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero scale", func(c *Config) { c.PNGScale = 0 }},
		{"huge scale", func(c *Config) { c.PNGScale = MaxPNGScale + 1 }},
		{"bad color", func(c *Config) { c.Palette = []string{"red"} }},
		{"too many colors", func(c *Config) { c.Palette = make([]string, 11) }},
		{"unknown preset", func(c *Config) { c.PalettePreset = "neon" }},
		{"unknown theme", func(c *Config) { c.Theme = "plaid" }},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.modify(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pixpal.yaml")
	cfg := DefaultConfig()
	cfg.DefaultName = "sprite"
	cfg.PalettePreset = "sunset"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.DefaultName != "sprite" || got.PalettePreset != "sunset" {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pixpal.yaml")
	if err := os.WriteFile(path, []byte("default_name: robot\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.DefaultName != "robot" {
		t.Errorf("expected robot, got %s", cfg.DefaultName)
	}
	if cfg.PNGScale != DefaultPNGScale || cfg.DataDir != DefaultDataDir {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pixpal.yaml")
	os.WriteFile(path, []byte("png_scale: -3\n"), 0644)
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid config")
	}
}

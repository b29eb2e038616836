package config

import (
	"fmt"
	"os"

	"github.com/san-kum/pixpal/internal/pixel"
	"github.com/san-kum/pixpal/internal/viz"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDataDir   = ".pixpal"
	DefaultOutputDir = "."
	DefaultLogLevel  = "info"
	DefaultPNGScale  = 16
	MaxPNGScale      = 256
)

type Config struct {
	DataDir       string   `yaml:"data_dir"`
	OutputDir     string   `yaml:"output_dir"`
	DefaultName   string   `yaml:"default_name"`
	PalettePreset string   `yaml:"palette_preset"`
	Palette       []string `yaml:"palette"`
	TemplatesFile string   `yaml:"templates_file"`
	LogLevel      string   `yaml:"log_level"`
	LogFile       string   `yaml:"log_file"`
	PNGScale      int      `yaml:"png_scale"`
	Theme         string   `yaml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir:       DefaultDataDir,
		OutputDir:     DefaultOutputDir,
		PalettePreset: "default",
		LogLevel:      DefaultLogLevel,
		PNGScale:      DefaultPNGScale,
		Theme:         "zinc",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.PNGScale < 1 || c.PNGScale > MaxPNGScale {
		return fmt.Errorf("png_scale %d outside [1,%d]", c.PNGScale, MaxPNGScale)
	}
	if len(c.Palette) > len(pixel.DefaultColors) {
		return fmt.Errorf("palette has %d colors, at most %d allowed", len(c.Palette), len(pixel.DefaultColors))
	}
	if c.Theme != "" && !viz.HasTheme(c.Theme) {
		return fmt.Errorf("unknown theme: %s (available: %v)", c.Theme, viz.ThemeNames())
	}
	if _, err := c.GetPalette(); err != nil {
		return err
	}
	return nil
}

// GetPalette builds the starting palette: the named preset, with the
// leading slots overridden by the explicit palette list.
func (c *Config) GetPalette() (pixel.Palette, error) {
	name := c.PalettePreset
	if name == "" {
		name = "default"
	}
	base := GetPreset(name)
	if base == nil {
		return pixel.Palette{}, fmt.Errorf("unknown palette preset: %s (available: %v)", name, ListPresets())
	}
	colors := make([]string, len(base))
	copy(colors, base)
	for i, col := range c.Palette {
		if i >= len(colors) {
			break
		}
		colors[i] = col
	}
	return pixel.NewPalette(colors)
}

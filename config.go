package sapling

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPoem is the verse revealed at the end of the sequence.
var DefaultPoem = []string{
	"Nieves, amor mío,",
	"eres mi lugar seguro",
	"y el sueño al que siempre quiero volver.",
	"",
	"En ti encuentro calma,",
	"sonrisa, hogar,",
	"y un amor que no duda.",
	"",
	"Hoy y todos los días,",
	"mi corazón te elige.",
	"Feliz San Valentín.",
}

// Config is the full program configuration. Load it from YAML with
// LoadConfig; any field missing from the file keeps its DefaultConfig value.
type Config struct {
	Window     WindowConfig `yaml:"window"`
	Seed       int64        `yaml:"seed"` // 0 picks a random seed at startup
	Poem       []string     `yaml:"poem"`
	Hint       string       `yaml:"hint"`
	Background string       `yaml:"background"`
	Palette    []string     `yaml:"palette"`
	LeafCount  int          `yaml:"leaf_count"`
	Tree       TreeConfig   `yaml:"tree"`
	Timing     Timing       `yaml:"timing"`
	Audio      AudioConfig  `yaml:"audio"`
	Debug      DebugConfig  `yaml:"debug"`
}

// WindowConfig sizes the host window.
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

// AudioConfig toggles the sound cues.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0..1
}

// DebugConfig toggles diagnostics.
type DebugConfig struct {
	Enabled bool `yaml:"enabled"` // per-frame timing and tree stats on stderr
	ShowFPS bool `yaml:"show_fps"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	palette := make([]string, len(DefaultLeafPalette))
	for i, c := range DefaultLeafPalette {
		palette[i] = hexString(c)
	}
	return Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    800,
			Title:     "sapling",
			Resizable: true,
		},
		Poem:       append([]string(nil), DefaultPoem...),
		Hint:       "haz click",
		Background: "#f5f0e8",
		Palette:    palette,
		LeafCount:  DefaultLeafCount,
		Tree:       DefaultTreeConfig(),
		Timing:     DefaultTiming(),
		Audio:      AudioConfig{Enabled: true, Volume: 0.6},
	}
}

// LoadConfig reads a YAML file over DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("sapling: read config: %w", err)
	}
	if err := ParseConfig(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ParseConfig decodes YAML into cfg, keeping existing values for absent
// keys, and validates the result.
func ParseConfig(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("sapling: parse config: %w", err)
	}
	return cfg.Validate()
}

// Validate checks value ranges and that every palette entry parses.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.LeafCount < 0 {
		errs = append(errs, fmt.Errorf("leaf_count %d must not be negative", c.LeafCount))
	}
	if _, err := ParseHexColor(c.Background); err != nil {
		errs = append(errs, fmt.Errorf("background: %w", err))
	}
	if _, err := c.LeafPalette(); err != nil {
		errs = append(errs, err)
	}
	if c.Tree.InitialDepth < 0 || c.Tree.InitialDepth > 12 {
		errs = append(errs, fmt.Errorf("tree.initial_depth %d out of range [0, 12]", c.Tree.InitialDepth))
	}
	if c.Tree.ChildGate < 0 || c.Tree.ChildGate >= 1 {
		errs = append(errs, fmt.Errorf("tree.child_gate %g out of range [0, 1)", c.Tree.ChildGate))
	}
	if c.Tree.SideGate < 0 || c.Tree.SideGate >= 1 {
		errs = append(errs, fmt.Errorf("tree.side_gate %g out of range [0, 1)", c.Tree.SideGate))
	}
	if err := c.Timing.validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume %g out of range [0, 1]", c.Audio.Volume))
	}
	if len(errs) > 0 {
		return fmt.Errorf("sapling: invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// LeafPalette parses Palette. An empty list yields DefaultLeafPalette.
func (c *Config) LeafPalette() ([]Color, error) {
	if len(c.Palette) == 0 {
		return DefaultLeafPalette, nil
	}
	out := make([]Color, len(c.Palette))
	for i, s := range c.Palette {
		col, err := ParseHexColor(s)
		if err != nil {
			return nil, fmt.Errorf("palette[%d]: %w", i, err)
		}
		out[i] = col
	}
	return out, nil
}

// BackgroundColor parses Background, falling back to the stock paper tone.
func (c *Config) BackgroundColor() Color {
	col, err := ParseHexColor(c.Background)
	if err != nil {
		return RGB(0xf5f0e8)
	}
	return col
}

// ResolveSeed returns Seed, or a random seed in [42, 1042) when Seed is 0.
func (c *Config) ResolveSeed(r *rand.Rand) int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return 42 + int64(r.IntN(1000))
}

func hexString(c Color) string {
	return fmt.Sprintf("#%02x%02x%02x",
		uint8(clamp01(c.R)*255+0.5), uint8(clamp01(c.G)*255+0.5), uint8(clamp01(c.B)*255+0.5))
}

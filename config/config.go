// Package config loads the YAML settings shared by the confetti binaries.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/plus3/confetti/burst"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNotFound is returned when an explicitly named config file does not exist.
	ErrNotFound = errors.New("config file not found")
	// ErrInvalid is returned when a setting is out of range.
	ErrInvalid = errors.New("invalid config")
)

// Config is the full settings document.
type Config struct {
	Physics Physics `yaml:"physics"`
	Burst   Burst   `yaml:"burst"`
	Window  Window  `yaml:"window"`
	Audio   Audio   `yaml:"audio"`
	Debug   Debug   `yaml:"debug"`
}

// Physics holds the integration constants.
type Physics struct {
	Gravity     float64 `yaml:"gravity"`     // units/s²
	Drag        float64 `yaml:"drag"`        // per reference frame, (0, 1]
	RefreshRate float64 `yaml:"refreshRate"` // reference frames per second
	CullMargin  float64 `yaml:"cullMargin"`  // units below the viewport
}

// Burst holds the explosion shape.
type Burst struct {
	Count    int           `yaml:"count"`
	Stagger  time.Duration `yaml:"stagger"`
	SpeedMin float64       `yaml:"speedMin"`
	SpeedMax float64       `yaml:"speedMax"`
	SizeMin  float64       `yaml:"sizeMin"`
	SizeMax  float64       `yaml:"sizeMax"`
	Palette  []string      `yaml:"palette"` // "#RRGGBB"
}

// Window holds front-end settings.
type Window struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Title   string `yaml:"title"`
	Ambient bool   `yaml:"ambient"`
}

// Audio holds the explosion sound settings.
type Audio struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // 0.0 ~ 1.0
	SampleRate int     `yaml:"sampleRate"`
}

// Debug holds overlay settings.
type Debug struct {
	Overlay       bool `yaml:"overlay"`
	HistoryFrames int  `yaml:"historyFrames"`
}

// Default returns the stock settings.
func Default() *Config {
	t := burst.DefaultTuning()
	palette := make([]string, len(t.Palette))
	for i, c := range t.Palette {
		palette[i] = FormatHex(c)
	}

	return &Config{
		Physics: Physics{
			Gravity:     t.Gravity,
			Drag:        t.Drag,
			RefreshRate: t.RefreshRate,
			CullMargin:  t.CullMargin,
		},
		Burst: Burst{
			Count:    t.DefaultCount,
			Stagger:  t.Stagger,
			SpeedMin: t.SpeedMin,
			SpeedMax: t.SpeedMax,
			SizeMin:  t.SizeMin,
			SizeMax:  t.SizeMax,
			Palette:  palette,
		},
		Window: Window{
			Width:  1280,
			Height: 720,
			Title:  "Confetti",
		},
		Audio: Audio{
			Enabled:    false,
			Volume:     0.6,
			SampleRate: 48000,
		},
		Debug: Debug{
			Overlay:       false,
			HistoryFrames: 120,
		},
	}
}

// Load reads settings from path on top of the defaults. An empty path
// returns the defaults; a path that does not exist is ErrNotFound.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML document on top of the defaults and validates it.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal encodes the settings as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks every setting is usable.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	p := c.Physics
	check(p.Gravity > 0, "physics.gravity must be positive, got %v", p.Gravity)
	check(p.Drag > 0 && p.Drag <= 1, "physics.drag must be in (0, 1], got %v", p.Drag)
	check(p.RefreshRate > 0, "physics.refreshRate must be positive, got %v", p.RefreshRate)
	check(p.CullMargin >= 0, "physics.cullMargin must not be negative, got %v", p.CullMargin)

	b := c.Burst
	check(b.Count >= 0, "burst.count must not be negative, got %d", b.Count)
	check(b.Stagger >= 0, "burst.stagger must not be negative, got %v", b.Stagger)
	check(b.SpeedMin >= 0 && b.SpeedMin <= b.SpeedMax, "burst speed range [%v, %v] is invalid", b.SpeedMin, b.SpeedMax)
	check(b.SizeMin > 0 && b.SizeMin <= b.SizeMax, "burst size range [%v, %v] is invalid", b.SizeMin, b.SizeMax)
	check(len(b.Palette) > 0, "burst.palette must not be empty")
	for i, hex := range b.Palette {
		_, err := ParseHex(hex)
		check(err == nil, "burst.palette[%d]: %v", i, err)
	}

	w := c.Window
	check(w.Width > 0 && w.Height > 0, "window size %dx%d is invalid", w.Width, w.Height)

	a := c.Audio
	check(a.Volume >= 0 && a.Volume <= 1, "audio.volume must be in [0, 1], got %v", a.Volume)
	check(a.SampleRate > 0, "audio.sampleRate must be positive, got %d", a.SampleRate)

	check(c.Debug.HistoryFrames > 0, "debug.historyFrames must be positive, got %d", c.Debug.HistoryFrames)

	return errors.Join(errs...)
}

// Tuning converts the physics and burst sections into simulator tuning.
// The config must be valid.
func (c *Config) Tuning() burst.Tuning {
	palette := make([]color.NRGBA, 0, len(c.Burst.Palette))
	for _, hex := range c.Burst.Palette {
		if col, err := ParseHex(hex); err == nil {
			palette = append(palette, col)
		}
	}

	return burst.Tuning{
		Gravity:      c.Physics.Gravity,
		Drag:         c.Physics.Drag,
		RefreshRate:  c.Physics.RefreshRate,
		CullMargin:   c.Physics.CullMargin,
		SpeedMin:     c.Burst.SpeedMin,
		SpeedMax:     c.Burst.SpeedMax,
		SizeMin:      c.Burst.SizeMin,
		SizeMax:      c.Burst.SizeMax,
		Stagger:      c.Burst.Stagger,
		DefaultCount: c.Burst.Count,
		Palette:      palette,
	}
}

// ParseHex parses "#RRGGBB" or "RRGGBB" into an opaque colour.
func ParseHex(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("colour %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("colour %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}

// FormatHex renders c as "#RRGGBB".
func FormatHex(c color.NRGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

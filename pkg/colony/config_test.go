package colony

import (
	"errors"
	"math"
	"testing"
)

var nan32 = float32(math.NaN())

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"zero height", func(c *Config) { c.Height = 0 }},
		{"zero scale", func(c *Config) { c.ScaleX = 0 }},
		{"negative ants", func(c *Config) { c.AntCount = -1 }},
		{"nest outside", func(c *Config) { c.Nest = Position{c.Width, 0} }},
		{"zero clumps", func(c *Config) { c.ClumpCount = 0 }},
		{"negative food", func(c *Config) { c.FoodCount = -5 }},
		{"negative radius", func(c *Config) { c.ClumpRadius = -1 }},
		{"padding fills grid", func(c *Config) { c.Padding = c.Height / 2 }},
		{"decay of one", func(c *Config) { c.DecayFactor = 1 }},
		{"decay of zero", func(c *Config) { c.DecayFactor = 0 }},
		{"weak return trail", func(c *Config) { c.ReturnIntensity = c.DecayThreshold }},
		{"wander above one", func(c *Config) { c.WanderProbability = 1.5 }},
		{"no random attempts", func(c *Config) { c.RandomAttempts = 0 }},
		{"unknown scatter", func(c *Config) { c.Scatter = "spiral" }},
		{"flat noise", func(c *Config) { c.Scatter = ScatterNoise; c.NoiseScale = 0 }},
		{"NaN noise scale", func(c *Config) { c.Scatter = ScatterNoise; c.NoiseScale = math.NaN() }},
		{"NaN decay factor", func(c *Config) { c.DecayFactor = nan32 }},
		{"NaN decay threshold", func(c *Config) { c.DecayThreshold = nan32 }},
		{"NaN return intensity", func(c *Config) { c.ReturnIntensity = nan32 }},
		{"NaN trail threshold", func(c *Config) { c.TrailThreshold = nan32 }},
		{"NaN align threshold", func(c *Config) { c.AlignThreshold = nan32 }},
		{"align above one", func(c *Config) { c.AlignThreshold = 1.5 }},
		{"NaN wander", func(c *Config) { c.WanderProbability = nan32 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.edit(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate() = %v, want ErrInvalidConfig", err)
			}
			if _, err := New(cfg); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("New() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestPixelGeometry(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.ScaleX, cfg.ScaleY = 10, 6, 3, 2
	if cfg.PixelWidth() != 30 || cfg.PixelHeight() != 12 {
		t.Errorf("pixels = %dx%d, want 30x12", cfg.PixelWidth(), cfg.PixelHeight())
	}
	if cfg.BufferSize() != 30*12*4 {
		t.Errorf("BufferSize = %d", cfg.BufferSize())
	}
}

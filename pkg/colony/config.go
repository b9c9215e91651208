package colony

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Config.Validate and New for unusable settings.
var ErrInvalidConfig = errors.New("colony: invalid config")

// Food scatter modes.
const (
	ScatterClumps = "clumps"
	ScatterNoise  = "noise"
)

// Position is a grid cell.
type Position struct {
	X, Y int
}

// Config holds every tunable of the simulation.
type Config struct {
	// Grid
	Width  int `json:"width"`
	Height int `json:"height"`

	// Pixel output, one grid cell covers ScaleX x ScaleY pixels
	ScaleX int `json:"scale_x"`
	ScaleY int `json:"scale_y"`

	// Colony
	AntCount int      `json:"ant_count"`
	Nest     Position `json:"nest"`

	// Food
	Scatter     string `json:"scatter"`
	ClumpCount  int    `json:"clump_count"`
	FoodCount   int    `json:"food_count"`
	ClumpRadius int    `json:"clump_radius"`
	Padding     int    `json:"padding"`

	// Noise scatter
	NoiseAlpha     float64 `json:"noise_alpha"`
	NoiseBeta      float64 `json:"noise_beta"`
	NoiseOctaves   int32   `json:"noise_octaves"`
	NoiseScale     float64 `json:"noise_scale"`
	NoiseThreshold float64 `json:"noise_threshold"`

	// Pheromones
	DecayFactor     float32 `json:"decay_factor"`
	DecayThreshold  float32 `json:"decay_threshold"`
	TrailThreshold  float32 `json:"trail_threshold"`  // minimum neighbour intensity worth following
	AlignThreshold  float32 `json:"align_threshold"`  // cosine between outbound heading and trail
	ReturnIntensity float32 `json:"return_intensity"` // laid on every cell of the way home

	// Ant behaviour
	WanderProbability float32 `json:"wander_probability"`
	RandomAttempts    int     `json:"random_attempts"`

	// Seed for the injected generator, 0 picks one from the clock
	Seed int64 `json:"seed"`
}

// DefaultConfig returns the stock colony settings.
func DefaultConfig() Config {
	return Config{
		Width:  200,
		Height: 150,
		ScaleX: 4,
		ScaleY: 4,

		AntCount: 100,
		Nest:     Position{X: 100, Y: 75},

		Scatter:     ScatterClumps,
		ClumpCount:  5,
		FoodCount:   500,
		ClumpRadius: 5,
		Padding:     10,

		NoiseAlpha:     2,
		NoiseBeta:      2,
		NoiseOctaves:   3,
		NoiseScale:     0.05,
		NoiseThreshold: 0.25,

		DecayFactor:     0.995,
		DecayThreshold:  0.01,
		TrailThreshold:  0.1,
		AlignThreshold:  0.75,
		ReturnIntensity: 1.0,

		WanderProbability: 0.1,
		RandomAttempts:    10,
	}
}

// PixelWidth is the width of the rendered image.
func (c Config) PixelWidth() int { return c.Width * c.ScaleX }

// PixelHeight is the height of the rendered image.
func (c Config) PixelHeight() int { return c.Height * c.ScaleY }

// BufferSize is the RGBA8 byte length Render expects.
func (c Config) BufferSize() int { return c.PixelWidth() * c.PixelHeight() * 4 }

func (c Config) inBounds(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

// Validate reports the first setting that would make the simulation misbehave.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.ScaleX <= 0 || c.ScaleY <= 0:
		return fmt.Errorf("%w: scale must be positive, got %dx%d", ErrInvalidConfig, c.ScaleX, c.ScaleY)
	case c.AntCount < 0:
		return fmt.Errorf("%w: negative ant count %d", ErrInvalidConfig, c.AntCount)
	case !c.inBounds(c.Nest.X, c.Nest.Y):
		return fmt.Errorf("%w: nest %v outside %dx%d grid", ErrInvalidConfig, c.Nest, c.Width, c.Height)
	case c.FoodCount < 0:
		return fmt.Errorf("%w: negative food count %d", ErrInvalidConfig, c.FoodCount)
	case c.ClumpRadius < 0:
		return fmt.Errorf("%w: negative clump radius %d", ErrInvalidConfig, c.ClumpRadius)
	case c.Padding < 0 || 2*c.Padding >= c.Width || 2*c.Padding >= c.Height:
		return fmt.Errorf("%w: padding %d leaves no room in %dx%d grid", ErrInvalidConfig, c.Padding, c.Width, c.Height)
	case !(c.DecayFactor > 0 && c.DecayFactor < 1):
		return fmt.Errorf("%w: decay factor %v not in (0,1)", ErrInvalidConfig, c.DecayFactor)
	case !(c.DecayThreshold >= 0):
		return fmt.Errorf("%w: decay threshold %v must be non-negative", ErrInvalidConfig, c.DecayThreshold)
	case !(c.ReturnIntensity > c.DecayThreshold):
		return fmt.Errorf("%w: return intensity %v must exceed decay threshold %v", ErrInvalidConfig, c.ReturnIntensity, c.DecayThreshold)
	case !(c.TrailThreshold >= 0):
		return fmt.Errorf("%w: trail threshold %v must be non-negative", ErrInvalidConfig, c.TrailThreshold)
	case !(c.AlignThreshold >= -1 && c.AlignThreshold <= 1):
		return fmt.Errorf("%w: align threshold %v not in [-1,1]", ErrInvalidConfig, c.AlignThreshold)
	case !(c.WanderProbability >= 0 && c.WanderProbability <= 1):
		return fmt.Errorf("%w: wander probability %v not in [0,1]", ErrInvalidConfig, c.WanderProbability)
	case c.RandomAttempts < 1:
		return fmt.Errorf("%w: random attempts must be at least 1, got %d", ErrInvalidConfig, c.RandomAttempts)
	}

	switch c.Scatter {
	case ScatterClumps, "":
		if c.ClumpCount <= 0 {
			return fmt.Errorf("%w: clump count must be positive, got %d", ErrInvalidConfig, c.ClumpCount)
		}
	case ScatterNoise:
		if !(c.NoiseScale > 0) || c.NoiseOctaves <= 0 {
			return fmt.Errorf("%w: noise scale and octaves must be positive", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown scatter mode %q", ErrInvalidConfig, c.Scatter)
	}
	return nil
}

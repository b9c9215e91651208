package colony

import (
	"math/rand"
	"slices"

	"github.com/aquilax/go-perlin"
)

// Environment is the world every ant shares: the pheromone field, the food
// left on the ground and the nest.
type Environment struct {
	Width, Height int

	Nest      Position
	Food      []Position
	Pheromone *Field

	delivered int
}

// NewEnvironment scatters food according to cfg. cfg must already be valid.
func NewEnvironment(cfg Config, rng *rand.Rand) *Environment {
	env := &Environment{
		Width:     cfg.Width,
		Height:    cfg.Height,
		Nest:      cfg.Nest,
		Pheromone: NewField(cfg.Width, cfg.Height, cfg.DecayFactor, cfg.DecayThreshold),
	}
	switch cfg.Scatter {
	case ScatterNoise:
		env.Food = scatterNoise(cfg, rng)
	default:
		env.Food = scatterClumps(cfg, rng)
	}
	return env
}

// scatterClumps drops FoodCount/ClumpCount items around each of ClumpCount
// random centres inside the padded area.
func scatterClumps(cfg Config, rng *rand.Rand) []Position {
	perClump := cfg.FoodCount / cfg.ClumpCount
	food := make([]Position, 0, perClump*cfg.ClumpCount)
	minX, maxX := cfg.Padding, cfg.Width-cfg.Padding-1
	minY, maxY := cfg.Padding, cfg.Height-cfg.Padding-1
	span := 2*cfg.ClumpRadius + 1

	for c := 0; c < cfg.ClumpCount; c++ {
		cx := minX + rng.Intn(maxX-minX+1)
		cy := minY + rng.Intn(maxY-minY+1)
		for i := 0; i < perClump; i++ {
			dx := rng.Intn(span) - cfg.ClumpRadius
			dy := rng.Intn(span) - cfg.ClumpRadius
			food = append(food, Position{
				X: clamp(cx+dx, minX, maxX),
				Y: clamp(cy+dy, minY, maxY),
			})
		}
	}
	return food
}

// scatterNoise samples random cells inside the padded area and keeps the ones
// where perlin noise rises above NoiseThreshold, giving organic patches.
func scatterNoise(cfg Config, rng *rand.Rand) []Position {
	p := perlin.NewPerlin(cfg.NoiseAlpha, cfg.NoiseBeta, cfg.NoiseOctaves, rng.Int63())
	minX, maxX := cfg.Padding, cfg.Width-cfg.Padding-1
	minY, maxY := cfg.Padding, cfg.Height-cfg.Padding-1

	food := make([]Position, 0, cfg.FoodCount)
	maxTries := cfg.FoodCount * 50
	for try := 0; try < maxTries && len(food) < cfg.FoodCount; try++ {
		x := minX + rng.Intn(maxX-minX+1)
		y := minY + rng.Intn(maxY-minY+1)
		if p.Noise2D(float64(x)*cfg.NoiseScale, float64(y)*cfg.NoiseScale) > cfg.NoiseThreshold {
			food = append(food, Position{X: x, Y: y})
		}
	}
	return food
}

// FindFood returns the index of the first food item exactly at (x, y).
func (e *Environment) FindFood(x, y int) (int, bool) {
	i := slices.Index(e.Food, Position{X: x, Y: y})
	return i, i >= 0
}

// RemoveFood drops the item at index i, keeping the order of the rest.
func (e *Environment) RemoveFood(i int) {
	if i < 0 || i >= len(e.Food) {
		return
	}
	e.Food = slices.Delete(e.Food, i, i+1)
}

// AddFoodToNest records one delivered item.
func (e *Environment) AddFoodToNest() {
	e.delivered++
}

// Delivered is the number of items brought back to the nest so far.
func (e *Environment) Delivered() int { return e.delivered }

// AtNest reports whether p is the nest cell.
func (e *Environment) AtNest(p Position) bool { return p == e.Nest }

// AddPheromone lays scent at (x, y), replacing what was there.
func (e *Environment) AddPheromone(x, y int, dir Vec, intensity float32) {
	e.Pheromone.Deposit(x, y, dir, intensity)
}

// HasSignificantPheromone reports whether (x, y) holds scent above the decay threshold.
func (e *Environment) HasSignificantPheromone(x, y int) bool {
	return e.Pheromone.HasSignificant(x, y)
}

// PheromoneDirection returns the trail direction at (x, y), if any.
func (e *Environment) PheromoneDirection(x, y int) (Vec, bool) {
	return e.Pheromone.DirectionAt(x, y)
}

// DecayPheromones fades the whole field by one tick.
func (e *Environment) DecayPheromones() {
	e.Pheromone.Decay()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package colony

import (
	"fmt"
	"math/rand"
	"time"
)

// Simulation owns the environment and the ants and advances them in lock step.
// It is not safe for concurrent use: ticks and renders must not overlap.
type Simulation struct {
	Config Config
	Env    *Environment
	Ants   []*Ant

	tick int
	rng  *rand.Rand
}

// New validates cfg and builds a simulation seeded from cfg.Seed, or from the
// clock when the seed is zero.
func New(cfg Config) (*Simulation, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return NewWithRand(cfg, rand.New(rand.NewSource(cfg.Seed)))
}

// NewWithRand is New with an explicit generator.
func NewWithRand(cfg Config, rng *rand.Rand) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Scatter == "" {
		cfg.Scatter = ScatterClumps
	}
	s := &Simulation{Config: cfg, rng: rng}
	s.populate()
	return s, nil
}

func (s *Simulation) populate() {
	s.tick = 0
	s.Env = NewEnvironment(s.Config, s.rng)
	s.Ants = make([]*Ant, s.Config.AntCount)
	for i := range s.Ants {
		s.Ants[i] = NewAnt(s.Config.Nest, &s.Config)
	}
}

// Reset rebuilds the world from the same config with a fresh seed.
func (s *Simulation) Reset(seed int64) {
	s.Config.Seed = seed
	s.rng = rand.New(rand.NewSource(seed))
	s.populate()
}

// Update advances exactly one tick: every ant in order, then one decay.
func (s *Simulation) Update() {
	for _, a := range s.Ants {
		a.Step(s.Env, s.rng)
	}
	s.Env.DecayPheromones()
	s.tick++
}

// Run advances n ticks.
func (s *Simulation) Run(n int) {
	for i := 0; i < n; i++ {
		s.Update()
	}
}

// Tick is the number of completed updates.
func (s *Simulation) Tick() int { return s.tick }

// Stats is a snapshot of the colony between ticks.
type Stats struct {
	Tick           int `json:"tick"`
	Ants           int `json:"ants"`
	Carrying       int `json:"carrying"`
	FoodLeft       int `json:"food_left"`
	Delivered      int `json:"delivered"`
	PheromoneCells int `json:"pheromone_cells"`
}

// Stats returns a snapshot of the current state.
func (s *Simulation) Stats() Stats {
	st := Stats{
		Tick:           s.tick,
		Ants:           len(s.Ants),
		FoodLeft:       len(s.Env.Food),
		Delivered:      s.Env.Delivered(),
		PheromoneCells: s.Env.Pheromone.Len(),
	}
	for _, a := range s.Ants {
		if a.CarryingFood() {
			st.Carrying++
		}
	}
	return st
}

func (st Stats) String() string {
	return fmt.Sprintf("tick %d  ants %d (%d carrying)  food %d  delivered %d  trail %d",
		st.Tick, st.Ants, st.Carrying, st.FoodLeft, st.Delivered, st.PheromoneCells)
}

package colony

import (
	"math"
	"math/rand"
)

// State is what an ant is currently doing.
type State int

const (
	Foraging State = iota
	Returning
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Foraging:
		return "foraging"
	case Returning:
		return "returning"
	default:
		return "unknown"
	}
}

// Ant is a single forager.
type Ant struct {
	Position
	State  State
	Config *Config

	memory memory
}

// NewAnt creates a foraging ant at p that remembers only its spawn cell.
func NewAnt(p Position, cfg *Config) *Ant {
	return &Ant{
		Position: p,
		State:    Foraging,
		Config:   cfg,
		memory:   newMemory(p),
	}
}

// CarryingFood reports whether the ant holds a food item.
func (a *Ant) CarryingFood() bool { return a.State == Returning }

// Memory lists the last visited cells, oldest first.
func (a *Ant) Memory() []Position { return a.memory.positions() }

// Step runs one tick of the ant against env. Effects on env are visible to
// whichever ant steps next.
func (a *Ant) Step(env *Environment, rng *rand.Rand) {
	switch a.State {
	case Returning:
		a.returnToNest(env)
	case Foraging:
		if i, ok := env.FindFood(a.X, a.Y); ok {
			env.RemoveFood(i)
			a.State = Returning
			// picked up on the nest itself: the trip home is empty
			if env.AtNest(a.Position) {
				a.deliver(env)
			}
			return
		}
		switch {
		case env.HasSignificantPheromone(a.X, a.Y):
			a.moveTowardFood(env, rng)
		case rng.Float32() < a.Config.WanderProbability:
			a.moveRandomly(rng)
		}
	}
}

func (a *Ant) deliver(env *Environment) {
	a.State = Foraging
	env.AddFoodToNest()
}

// returnToNest walks all the way home in one go, laying a trail that points
// from the nest to where the food was found.
func (a *Ant) returnToNest(env *Environment) {
	dir := a.directionFromNest(env)
	for !env.AtNest(a.Position) {
		next := a.Position
		next.X += sign(env.Nest.X - a.X)
		next.Y += sign(env.Nest.Y - a.Y)
		a.moveTo(next)
		env.AddPheromone(a.X, a.Y, dir, a.Config.ReturnIntensity)
	}
	a.deliver(env)
}

// moveTowardFood climbs to the strongest neighbouring trail that leads away
// from the nest in roughly the same direction the ant is already heading.
func (a *Ant) moveTowardFood(env *Environment, rng *rand.Rand) {
	heading := a.directionFromNest(env)
	lastX, lastY := env.Width-1, env.Height-1
	var (
		best  Position
		bestI float32
		found bool
	)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := Position{X: clamp(a.X+dx, 0, lastX), Y: clamp(a.Y+dy, 0, lastY)}
			p, ok := env.Pheromone.At(n.X, n.Y)
			if !ok || p.Intensity <= a.Config.TrailThreshold || a.memory.contains(n) {
				continue
			}
			if alignment(heading, p.Direction) <= a.Config.AlignThreshold {
				continue
			}
			if !found || p.Intensity > bestI {
				best, bestI, found = n, p.Intensity, true
			}
		}
	}
	if !found {
		a.moveRandomly(rng)
		return
	}
	a.moveTo(best)
}

// moveRandomly tries a few random neighbours (staying put is one of them) and
// takes the first one not in memory.
func (a *Ant) moveRandomly(rng *rand.Rand) {
	lastX, lastY := a.Config.Width-1, a.Config.Height-1
	for i := 0; i < a.Config.RandomAttempts; i++ {
		n := Position{
			X: clamp(a.X+rng.Intn(3)-1, 0, lastX),
			Y: clamp(a.Y+rng.Intn(3)-1, 0, lastY),
		}
		if !a.memory.contains(n) {
			a.moveTo(n)
			return
		}
	}
}

func (a *Ant) moveTo(p Position) {
	a.Position = p
	a.memory.push(p)
}

func (a *Ant) directionFromNest(env *Environment) Vec {
	return Vec{X: float32(a.X - env.Nest.X), Y: float32(a.Y - env.Nest.Y)}
}

// alignment is the cosine of the angle between u and v, or -1 when either is zero.
func alignment(u, v Vec) float32 {
	lu := float32(math.Hypot(float64(u.X), float64(u.Y)))
	lv := float32(math.Hypot(float64(v.X), float64(v.Y)))
	if lu == 0 || lv == 0 {
		return -1
	}
	return (u.X*v.X + u.Y*v.Y) / (lu * lv)
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

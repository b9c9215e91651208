// Command ant-colony simulates foraging ants that lay pheromone trails
// between food and their nest.
//
// Usage:
//
//	ant-colony [flags]
//
// Settings come from the built-in defaults, then the -config file if it
// exists, then any flags given on the command line.
package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/ant-colony-go/pkg/colony"
)

var (
	configPath    = flag.String("config", "colony.json", "Settings file, loaded if present and written by the S key.")
	seed          = flag.Int64("seed", 0, "Random seed, 0 picks one from the clock.")
	ants          = flag.Int("ants", 0, "Number of ants, 0 keeps the configured count.")
	scatter       = flag.String("scatter", "", "Food scatter mode: clumps or noise.")
	ticksPerFrame = flag.Int("ticks-per-frame", 5, "Simulation ticks per rendered frame.")
	headless      = flag.Bool("headless", false, "Run without a window and log a summary.")
	ticks         = flag.Int("ticks", 5000, "Ticks to run in headless mode.")
	reportEvery   = flag.Int("report-every", 1000, "Headless progress report interval in ticks, 0 disables.")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		cfg = colony.DefaultConfig()
	case err != nil:
		log.Fatal(err)
	default:
		slog.Info("settings loaded", "path", *configPath)
	}
	applyFlags(&cfg)

	sim, err := colony.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if *headless {
		runHeadless(sim, *ticks, *reportEvery)
		return
	}

	ebiten.SetWindowSize(cfg.PixelWidth(), cfg.PixelHeight())
	ebiten.SetWindowTitle("Ant Colony Simulation")
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(NewGame(sim, max(*ticksPerFrame, 1), *configPath)); err != nil {
		log.Fatal(err)
	}
}

// applyFlags overrides cfg with the flags actually set on the command line.
func applyFlags(cfg *colony.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "ants":
			cfg.AntCount = *ants
		case "scatter":
			cfg.Scatter = *scatter
		}
	})
}

func runHeadless(sim *colony.Simulation, n, every int) {
	slog.Info("headless run", "ticks", n, "ants", len(sim.Ants), "food", len(sim.Env.Food), "seed", sim.Config.Seed)
	for i := 0; i < n; i++ {
		sim.Update()
		if every > 0 && sim.Tick()%every == 0 {
			logStats("progress", sim.Stats())
		}
	}
	logStats("done", sim.Stats())
}

func logStats(msg string, st colony.Stats) {
	slog.Info(msg,
		"tick", st.Tick,
		"carrying", st.Carrying,
		"food_left", st.FoodLeft,
		"delivered", st.Delivered,
		"pheromone_cells", st.PheromoneCells,
	)
}

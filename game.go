package main

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/olivierh59500/ant-colony-go/pkg/colony"
)

const maxTicksPerFrame = 200

// Game adapts a colony.Simulation to ebiten: Update advances the colony,
// Draw presents its pixel buffer.
type Game struct {
	sim           *colony.Simulation
	frame         *ebiten.Image
	pixels        []byte
	ticksPerFrame int
	paused        bool
	showHUD       bool
	settingsPath  string
	err           error
}

// NewGame wraps sim for ebiten, running ticksPerFrame ticks per Update.
func NewGame(sim *colony.Simulation, ticksPerFrame int, settingsPath string) *Game {
	g := &Game{
		ticksPerFrame: ticksPerFrame,
		showHUD:       true,
		settingsPath:  settingsPath,
	}
	g.setSimulation(sim)
	return g
}

func (g *Game) setSimulation(sim *colony.Simulation) {
	g.sim = sim
	w, h := sim.Config.PixelWidth(), sim.Config.PixelHeight()
	if g.frame == nil || g.frame.Bounds().Dx() != w || g.frame.Bounds().Dy() != h {
		g.frame = ebiten.NewImage(w, h)
		g.pixels = make([]byte, sim.Config.BufferSize())
	}
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleInput()

	if g.paused {
		return nil
	}
	g.sim.Run(g.ticksPerFrame)
	return nil
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	if err := g.sim.Render(g.pixels); err != nil {
		g.err = err
		return
	}
	g.frame.WritePixels(g.pixels)
	screen.DrawImage(g.frame, nil)

	if g.showHUD {
		drawHUD(screen, g.sim.Stats(), g.ticksPerFrame, g.paused)
	}
}

// Layout returns the screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.sim.Config.PixelWidth(), g.sim.Config.PixelHeight()
}

// handleInput processes keyboard input
func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		seed := time.Now().UnixNano()
		g.sim.Reset(seed)
		slog.Info("colony reset", "seed", seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.ticksPerFrame = min(g.ticksPerFrame*2, maxTicksPerFrame)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.ticksPerFrame = max(g.ticksPerFrame/2, 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := saveConfig(g.settingsPath, g.sim.Config); err != nil {
			slog.Error("save settings", "err", err)
		} else {
			slog.Info("settings saved", "path", g.settingsPath)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.reload()
	}
}

// reload rebuilds the colony from the settings file. A bad file leaves the
// running colony untouched.
func (g *Game) reload() {
	cfg, err := loadConfig(g.settingsPath)
	if err != nil {
		slog.Error("load settings", "err", err)
		return
	}
	sim, err := colony.New(cfg)
	if err != nil {
		slog.Error("load settings", "err", err)
		return
	}
	g.setSimulation(sim)
	slog.Info("settings loaded", "path", g.settingsPath)
}

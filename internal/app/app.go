//go:build ebiten

package app

import (
	"image/color"
	"time"

	"ofc-quake/internal/core"
	"ofc-quake/internal/render"
	"ofc-quake/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 240

type errReporter interface {
	Err() error
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	palette []color.RGBA
	clock   *core.FixedStep

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	palette := render.BinaryPalette(color.White, color.Black)
	if p, ok := sim.(core.PaletteProvider); ok {
		palette = p.Palette()
	}
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(sim, hudWidth),
		palette: palette,
		clock:   core.NewFixedStep(cfg.Rate),
		scale:   cfg.Scale,
		seed:    cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation by however many
// ticks are due at the configured rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.clock.SetTPS(g.clock.TPS() * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) && g.clock.TPS() > 1 {
		g.clock.SetTPS(g.clock.TPS() / 2)
	}

	due := g.clock.Due(time.Now())
	switch {
	case g.tickOnce:
		g.sim.Step()
		g.tickOnce = false
	case !g.paused:
		for i := 0; i < due; i++ {
			g.sim.Step()
		}
	}

	if r, ok := g.sim.(errReporter); ok && r.Err() != nil {
		g.paused = true
	}
	g.hud.Update(g.clock.TPS(), g.paused)
	return nil
}

// Draw renders the current simulation state and the HUD panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	g.hud.Draw(screen, g.sim.Size().W*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	h := s.H * g.scale
	if h < ui.MinHeight {
		h = ui.MinHeight
	}
	return s.W*g.scale + hudWidth, h
}

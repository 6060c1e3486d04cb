//go:build ebiten

package app

import (
	"image/color"
	"time"

	"lifeloop/internal/core"
	"lifeloop/internal/render"
	"lifeloop/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// paletteProvider lets multi-state sims supply their own display colors.
// Sims without one draw through the binary on/off path.
type paletteProvider interface {
	Palette() []color.RGBA
}

// Game adapts a core simulation to the ebiten.Game interface. Each Update
// call from ebiten is one host frame; the simulation is stepped from there
// and never concurrently.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	pace    *core.FixedStep

	onColor  color.Color
	offColor color.Color
	palette  []color.RGBA

	scale      int
	paused     bool
	tickOnce   bool
	seed       int64
	generation uint64
}

// New constructs a Game for the provided simulation. tps sets the
// simulation rate independently of the display refresh rate.
func New(sim core.Sim, scale int, seed int64, tps int) *Game {
	gp := render.NewGridPainter(sim.Size().W, sim.Size().H)
	g := &Game{
		sim:      sim,
		painter:  gp,
		overlay:  ui.NewOverlay(),
		pace:     core.NewFixedStep(tps),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		seed:     seed,
	}
	if pp, ok := sim.(paletteProvider); ok {
		g.palette = pp.Palette()
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.generation = 0
	g.tickOnce = false
	g.pace.Reset()
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
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

	if g.overlay != nil {
		g.overlay.Update()
	}

	due := g.pace.ShouldStep()
	if (due && !g.paused) || g.tickOnce {
		if err := g.sim.Step(); err != nil {
			// An engine failure halts the loop: ebiten stops calling
			// Update once an error is returned.
			return err
		}
		g.generation++
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.palette != nil {
		g.painter.BlitPalette(screen, g.sim.Cells(), g.palette, g.scale)
	} else {
		g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	}
	if g.overlay != nil {
		g.overlay.Draw(screen, g.generation, g.paused)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}

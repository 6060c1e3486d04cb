//go:build ebiten

package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws a small status line over the simulation view.
type Overlay struct {
	visible bool
}

// NewOverlay constructs an Overlay, visible by default.
func NewOverlay() *Overlay { return &Overlay{visible: true} }

// Update toggles visibility with the H key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
}

// Draw prints the generation counter and pause state when visible.
func (o *Overlay) Draw(screen *ebiten.Image, generation uint64, paused bool) {
	if !o.visible {
		return
	}
	status := fmt.Sprintf("gen %d", generation)
	if paused {
		status += " [paused]"
	}
	ebitenutil.DebugPrint(screen, status)
}

//go:build ebiten

package ui

import (
	"image/color"

	"ofc-quake/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding   = 12
	headerBaseline = 14
	lineSpacing    = 16
)

var (
	panelColor  = color.RGBA{R: 18, G: 18, B: 24, A: 255}
	headerColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	bodyColor   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
)

// HUD renders a text panel to the right of the simulation view.
type HUD struct {
	sim   core.Sim
	width int
	panel *ebiten.Image
	lines []string
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width}
}

// Update rebuilds the panel text from the simulation.
func (h *HUD) Update(rate int, paused bool) {
	if h == nil {
		return
	}
	h.lines = Lines(h.sim, rate, paused)
}

// Draw renders the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width == 0 {
		return
	}
	height := screen.Bounds().Dy()
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	for i, line := range h.lines {
		clr := bodyColor
		if i == 0 {
			clr = headerColor
		}
		text.Draw(h.panel, line, face, panelPadding, y, clr)
		y += lineSpacing
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

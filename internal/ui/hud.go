//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"lifewatch/internal/status"
)

var keyHelp = []string{
	"Space  start / stop",
	"N      step",
	"R      reset",
	"C      clear",
	"Up/Dn  period",
	"S / L  save / load",
	"G      cell borders",
	"Click  toggle cell",
}

// HUD renders the status panel to the right of the board.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   status.Snapshot
}

// NewHUD constructs a HUD with the given panel width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width}
}

// Update replaces the displayed snapshot.
func (h *HUD) Update(s status.Snapshot) {
	if h == nil {
		return
	}
	h.snapshot = s
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	for _, g := range h.snapshot.Groups {
		text.Draw(h.panel, g.Name, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
		y += lineHeight
		for _, f := range g.Fields {
			text.Draw(h.panel, f.Label, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
			text.Draw(h.panel, f.Value, face, panelPadding+valueColumn, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
			y += lineHeight
		}
		y += lineHeight / 2
	}
	if h.snapshot.Message != "" {
		text.Draw(h.panel, h.snapshot.Message, face, panelPadding, y, color.RGBA{R: 240, G: 200, B: 90, A: 255})
		y += 3 * lineHeight
	}
	for _, line := range keyHelp {
		if y > height-panelPadding {
			break
		}
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 120, G: 120, B: 130, A: 255})
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

const (
	panelPadding   = 12
	lineHeight     = 16
	headerBaseline = 12
	valueColumn    = 84
)

//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// minLineScale is the smallest cell size that still gets cell borders.
const minLineScale = 4

// Overlay draws cell borders over an idle board. Borders are hidden while a
// run is in progress and can be toggled with G.
type Overlay struct {
	show    bool
	running bool
	pixel   *ebiten.Image
	line    color.RGBA
}

// NewOverlay constructs an overlay with borders enabled.
func NewOverlay() *Overlay {
	o := &Overlay{show: true, line: color.RGBA{R: 48, G: 48, B: 56, A: 255}}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the toggle key and records whether a run is active.
func (o *Overlay) Update(running bool) {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.show = !o.show
	}
	o.running = running
}

// Draw paints one-pixel borders between cells of a columns by rows board.
func (o *Overlay) Draw(screen *ebiten.Image, columns, rows, scale int) {
	if !o.show || o.running || scale < minLineScale {
		return
	}
	width := float64(columns * scale)
	height := float64(rows * scale)
	for x := 0; x <= columns; x++ {
		o.rect(screen, float64(x*scale), 0, 1, height)
	}
	for y := 0; y <= rows; y++ {
		o.rect(screen, 0, float64(y*scale), width, 1)
	}
}

func (o *Overlay) rect(screen *ebiten.Image, x, y, w, h float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(o.line)
	screen.DrawImage(o.pixel, op)
}

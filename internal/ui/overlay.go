//go:build ebiten

package ui

import (
	"image/color"

	"mad-life/internal/core"
	"mad-life/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	gridLineColor = color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff}
	hoverColor    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x40}
)

// Overlay draws cell borders and highlights the cell under the cursor.
type Overlay struct {
	size      core.Size
	scale     int
	showLines bool
}

// NewOverlay constructs an overlay for a grid of the given size.
func NewOverlay(size core.Size, scale int) *Overlay {
	return &Overlay{size: size, scale: scale, showLines: true}
}

// Update toggles the grid lines with L.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		o.showLines = !o.showLines
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	width := float32(o.size.W * scale)
	height := float32(o.size.H * scale)
	if o.showLines && scale >= 3 {
		for x := 0; x <= o.size.W; x++ {
			fx := float32(x*scale) + 0.5
			vector.StrokeLine(screen, fx, 0, fx, height, 1, gridLineColor, false)
		}
		for y := 0; y <= o.size.H; y++ {
			fy := float32(y*scale) + 0.5
			vector.StrokeLine(screen, 0, fy, width, fy, 1, gridLineColor, false)
		}
	}

	mx, my := ebiten.CursorPosition()
	row, col, ok := render.CellAt(mx, my, scale, o.size.W, o.size.H)
	if !ok {
		return
	}
	vector.DrawFilledRect(screen, float32(col*scale), float32(row*scale), float32(scale), float32(scale), hoverColor, false)
}

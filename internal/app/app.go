//go:build ebiten

package app

import (
	"image/color"

	"mad-life/internal/core"
	"mad-life/internal/render"
	"mad-life/internal/ui"
	"mad-life/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width of the control panel right of the grid.
const HUDWidth = 240

// Game adapts a session to the ebiten.Game interface. Stepping is driven by
// the session's own scheduler; Update only forwards input.
type Game struct {
	ctl     core.Controller
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	onColor  color.Color
	offColor color.Color

	scale int
}

// New constructs a Game for the provided controller.
func New(ctl core.Controller, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := ctl.Size()
	return &Game{
		ctl:      ctl,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(size, scale),
		hud:      ui.NewHUD(ctl, HUDWidth),
		onColor:  render.AliveColor,
		offColor: render.DeadColor,
		scale:    scale,
	}
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if !g.ctl.Stop() {
			g.ctl.Start()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctl.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.ctl.Clear()
	}
	for key, pattern := range map[ebiten.Key]string{
		ebiten.KeyR: "random",
		ebiten.KeyG: "glider",
		ebiten.KeyP: "pulsar",
	} {
		if inpututil.IsKeyJustPressed(key) {
			_ = g.ctl.Load(pattern)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.ctl.SetSpeed(g.ctl.Speed() + life.SpeedStepMS)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.ctl.SetSpeed(g.ctl.Speed() - life.SpeedStepMS)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		size := g.ctl.Size()
		if row, col, ok := render.CellAt(mx, my, g.scale, size.W, size.H); ok {
			g.ctl.ToggleCell(row, col)
		}
	}

	g.overlay.Update()
	g.hud.Update(g.gridWidth())
	return nil
}

// Draw renders the current board, overlay and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.ctl.Cells(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.gridWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.gridWidth() + HUDWidth, g.ctl.Size().H * g.scale
}

func (g *Game) gridWidth() int { return g.ctl.Size().W * g.scale }

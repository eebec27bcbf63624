// Package term renders a Life session in a terminal with tcell. Each cell is
// two columns wide; the first two rows hold status and key help.
package term

import (
	"context"
	"fmt"
	"time"

	"mad-life/internal/core"
	"mad-life/pkg/sims/life"

	"github.com/gdamore/tcell/v2"
)

// headerRows is the number of screen rows above the grid.
const headerRows = 2

// FrameInterval is how often the screen is redrawn.
const FrameInterval = 33 * time.Millisecond

var (
	aliveStyle  = tcell.StyleDefault.Background(tcell.NewRGBColor(0x00, 0xff, 0x00))
	deadStyle   = tcell.StyleDefault.Background(tcell.NewRGBColor(0x22, 0x22, 0x22))
	headerStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	helpStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

const help = "space start/stop  n step  c clear  r random  g glider  p pulsar  +/- speed  q quit"

// View binds a controller to a screen.
type View struct {
	screen tcell.Screen
	ctl    core.Controller

	lastButtons tcell.ButtonMask
}

// NewView returns a view drawing ctl on screen. The screen must already be
// initialised.
func NewView(screen tcell.Screen, ctl core.Controller) *View {
	return &View{screen: screen, ctl: ctl}
}

// Run redraws the screen every FrameInterval and dispatches input until the
// user quits or ctx is cancelled.
func (v *View) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go v.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if v.HandleEvent(ev) {
				return nil
			}
			v.Draw()
		case <-ticker.C:
			v.Draw()
		}
	}
}

// HandleEvent applies a single input event and reports whether the user asked
// to quit.
func (v *View) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ev)
	case *tcell.EventMouse:
		v.handleMouse(ev)
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return false
}

func (v *View) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}
	switch ev.Rune() {
	case 'q':
		return true
	case ' ':
		if !v.ctl.Stop() {
			v.ctl.Start()
		}
	case 'n':
		v.ctl.Step()
	case 'c':
		v.ctl.Clear()
	case 'r':
		_ = v.ctl.Load("random")
	case 'g':
		_ = v.ctl.Load("glider")
	case 'p':
		_ = v.ctl.Load("pulsar")
	case '+', '=':
		v.ctl.SetSpeed(v.ctl.Speed() + life.SpeedStepMS)
	case '-', '_':
		v.ctl.SetSpeed(v.ctl.Speed() - life.SpeedStepMS)
	}
	return false
}

// handleMouse toggles a cell on the press edge of the primary button.
func (v *View) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && v.lastButtons&tcell.Button1 == 0
	v.lastButtons = buttons
	if !pressed {
		return
	}
	x, y := ev.Position()
	if row, col, ok := CellAt(x, y); ok {
		v.ctl.ToggleCell(row, col)
	}
}

// CellAt maps a screen position to grid coordinates. Bounds are checked by the
// controller.
func CellAt(x, y int) (row, col int, ok bool) {
	if x < 0 || y < headerRows {
		return 0, 0, false
	}
	return y - headerRows, x / 2, true
}

// Draw paints the status line, help line and grid.
func (v *View) Draw() {
	v.screen.Clear()
	status := "stopped"
	if v.ctl.Running() {
		status = "running"
	}
	header := fmt.Sprintf("Generation: %d  Speed: %dms  [%s]", v.ctl.Generation(), v.ctl.Speed(), status)
	drawText(v.screen, 0, 0, headerStyle, header)
	drawText(v.screen, 0, 1, helpStyle, help)

	size := v.ctl.Size()
	cells := v.ctl.Cells()
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			style := deadStyle
			if cells[row*size.W+col] != 0 {
				style = aliveStyle
			}
			x, y := col*2, row+headerRows
			v.screen.SetContent(x, y, ' ', nil, style)
			v.screen.SetContent(x+1, y, ' ', nil, style)
		}
	}
	v.screen.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for i, r := range []rune(str) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"mad-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// infoKeys are the read-only values listed under the title.
var infoKeys = []string{"generation", "population", "status"}

// HUD renders the control panel to the right of the grid: read-only stats,
// -/+ controls for tunables and a block of action buttons.
type HUD struct {
	ctl          core.Controller
	width        int
	panel        *ebiten.Image
	lastHeight   int
	snapshot     core.ParameterSnapshot
	panelOffsetX int

	controls    []hudControlState
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
	actions     core.ActionProvider
	buttons     []hudButton
}

// NewHUD constructs a HUD for the provided controller and panel width.
func NewHUD(ctl core.Controller, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{ctl: ctl, width: width}
	if provider, ok := ctl.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = hudControlState{control: ctrl, value: "--"}
		}
	}
	if setter, ok := ctl.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := ctl.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	if provider, ok := ctl.(core.ActionProvider); ok {
		h.actions = provider
	}
	h.layout()
	return h
}

// Update refreshes the cached snapshot and handles clicks inside the panel.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	if provider, ok := h.ctl.(core.ParameterProvider); ok {
		h.snapshot = provider.Parameters()
	}
	h.refreshControlValues()
	h.refreshButtons()
	h.handleInput()
}

// Draw paints the HUD panel anchored to the right edge of the grid.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.ctl.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 255})
	h.drawInfo()
	h.drawControls()
	h.drawButtons()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				state.hasValue = false
				state.value = "--"
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = strconv.Itoa(parsed)
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				state.hasValue = false
				state.value = "--"
				continue
			}
			state.floatValue = parsed
			state.value = strconv.FormatFloat(parsed, 'f', 2, 64)
			state.hasValue = true
		default:
			state.hasValue = false
			state.value = "--"
		}
	}
}

func (h *HUD) refreshButtons() {
	if h.actions == nil {
		return
	}
	actions := h.actions.Actions()
	if len(actions) != len(h.buttons) {
		h.buttons = make([]hudButton, len(actions))
		h.layoutButtons()
	}
	for i, a := range actions {
		h.buttons[i].action = a
	}
}

func (h *HUD) handleInput() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.applyAdjustment(state, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			h.applyAdjustment(state, 1)
			return
		}
	}
	for _, b := range h.buttons {
		if pointInRect(px, my, b.rect) {
			h.actions.InvokeAction(b.action.Key)
			return
		}
	}
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	target, ok := adjustTarget(state, direction)
	if !ok {
		return
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		if h.intSetter != nil {
			h.intSetter.SetIntParameter(state.control.Key, int(math.Round(target)))
		}
	case core.ParamTypeFloat:
		if h.floatSetter != nil {
			h.floatSetter.SetFloatParameter(state.control.Key, target)
		}
	}
}

// adjustTarget steps a control in direction and clamps to its bounds. ok is
// false when the value would not change.
func adjustTarget(state *hudControlState, direction int) (float64, bool) {
	step := state.control.Step
	if step <= 0 {
		step = 1
	}
	target := state.floatValue + float64(direction)*step
	if state.control.HasMin && target < state.control.Min {
		target = state.control.Min
	}
	if state.control.HasMax && target > state.control.Max {
		target = state.control.Max
	}
	if math.Abs(target-state.floatValue) < 1e-9 {
		return target, false
	}
	return target, true
}

func (h *HUD) drawInfo() {
	face := basicfont.Face7x13
	text.Draw(h.panel, "Conway's Game of Life", face, panelPadding, panelPadding+headerBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for i, key := range infoKeys {
		param, ok := h.snapshot.Lookup(key)
		if !ok {
			continue
		}
		y := infoTop + i*infoSpacing
		text.Draw(h.panel, param.Label+": "+param.Value, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !state.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		_, minusEnabled := adjustTarget(state, -1)
		_, plusEnabled := adjustTarget(state, 1)
		h.drawButton(state.minusRect, "-", state.hasValue && minusEnabled)
		h.drawButton(state.plusRect, "+", state.hasValue && plusEnabled)
	}
}

func (h *HUD) drawButtons() {
	for _, b := range h.buttons {
		h.drawButton(b.rect, b.action.Label, true)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	vector.DrawFilledRect(h.panel, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layout() {
	if h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func (h *HUD) layoutButtons() {
	top := controlsTop + len(h.controls)*lineHeight + buttonGap
	colWidth := (h.width - 2*panelPadding - buttonGap) / 2
	for i := range h.buttons {
		x := panelPadding + (i%2)*(colWidth+buttonGap)
		y := top + (i/2)*(actionHeight+buttonGap)
		h.buttons[i].rect = image.Rect(x, y, x+colWidth, y+actionHeight)
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

type hudButton struct {
	action core.Action
	rect   image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	actionHeight   = 28
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 18
	infoTop        = panelPadding + headerBaseline + 24
	controlsTop    = infoTop + 3*infoSpacing
)

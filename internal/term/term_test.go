package term

import (
	"context"
	"strings"
	"testing"
	"time"

	"mad-life/internal/core"
	"mad-life/internal/session"
	"mad-life/pkg/sims/life"

	"github.com/gdamore/tcell/v2"
)

func newTestView(t *testing.T) (*View, *session.Session, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(life.Cols*2, life.Rows+headerRows)

	cfg := life.DefaultConfig()
	cfg.Seed = 1
	s, err := session.New(cfg, &core.ManualClock{})
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	return NewView(screen, s), s, screen
}

func cellBackground(t *testing.T, screen tcell.SimulationScreen, x, y int) tcell.Color {
	t.Helper()
	cells, w, _ := screen.GetContents()
	_, bg, _ := cells[y*w+x].Style.Decompose()
	return bg
}

func rowText(screen tcell.SimulationScreen, y int) string {
	cells, w, _ := screen.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		runes := cells[y*w+x].Runes
		if len(runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(runes[0])
	}
	return b.String()
}

func TestDrawShowsGridAndStatus(t *testing.T) {
	v, s, screen := newTestView(t)
	s.SeedGlider()
	v.Draw()

	alive := tcell.NewRGBColor(0x00, 0xff, 0x00)
	dead := tcell.NewRGBColor(0x22, 0x22, 0x22)
	// Glider cell (1,2) occupies columns 4 and 5 on screen row 3.
	if got := cellBackground(t, screen, 4, 1+headerRows); got != alive {
		t.Fatalf("live cell drawn with %v", got)
	}
	if got := cellBackground(t, screen, 5, 1+headerRows); got != alive {
		t.Fatalf("second column of live cell drawn with %v", got)
	}
	if got := cellBackground(t, screen, 0, headerRows); got != dead {
		t.Fatalf("dead cell drawn with %v", got)
	}
	if header := rowText(screen, 0); !strings.HasPrefix(header, "Generation: 0  Speed: 100ms  [stopped]") {
		t.Fatalf("unexpected header %q", header)
	}
}

func TestKeysDriveSession(t *testing.T) {
	v, s, _ := newTestView(t)
	key := func(r rune) bool {
		return v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}

	key('g')
	if !s.Grid().Equal(life.Glider()) {
		t.Fatal("g did not load the glider")
	}
	key('n')
	if s.Generation() != 1 {
		t.Fatalf("n stepped to generation %d", s.Generation())
	}
	key(' ')
	if !s.Running() || s.Generation() != 2 {
		t.Fatalf("space should start and step once, running=%v gen=%d", s.Running(), s.Generation())
	}
	key(' ')
	if s.Running() {
		t.Fatal("second space should stop")
	}
	key('+')
	if s.Speed() != 150 {
		t.Fatalf("+ set speed %d", s.Speed())
	}
	key('-')
	key('-')
	if s.Speed() != 50 {
		t.Fatalf("- set speed %d", s.Speed())
	}
	key('p')
	if !s.Grid().Equal(life.Pulsar()) || s.Generation() != 0 {
		t.Fatal("p did not load the pulsar")
	}
	key('c')
	if s.Grid().Alive() != 0 {
		t.Fatal("c did not clear")
	}
	if !key('q') {
		t.Fatal("q should quit")
	}
	if !v.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape should quit")
	}
}

func TestMouseTogglesOnPress(t *testing.T) {
	v, s, _ := newTestView(t)
	v.HandleEvent(tcell.NewEventMouse(7, 5, tcell.Button1, tcell.ModNone))
	// Held button reports again while dragging; only the press edge toggles.
	v.HandleEvent(tcell.NewEventMouse(7, 5, tcell.Button1, tcell.ModNone))
	v.HandleEvent(tcell.NewEventMouse(7, 5, tcell.ButtonNone, tcell.ModNone))

	if s.Grid().At(5-headerRows, 3) != life.Alive || s.Grid().Alive() != 1 {
		t.Fatal("mouse press did not toggle exactly one cell")
	}

	v.HandleEvent(tcell.NewEventMouse(3, 0, tcell.Button1, tcell.ModNone))
	if s.Grid().Alive() != 1 {
		t.Fatal("click on the header toggled a cell")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	v, _, _ := newTestView(t)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := v.Run(ctx); err != context.DeadlineExceeded {
		t.Fatalf("Run returned %v, want deadline exceeded", err)
	}
}

func TestCellAt(t *testing.T) {
	if _, _, ok := CellAt(4, 1); ok {
		t.Fatal("help row mapped to a cell")
	}
	row, col, ok := CellAt(9, 2)
	if !ok || row != 0 || col != 4 {
		t.Fatalf("CellAt(9,2) = (%d,%d,%v)", row, col, ok)
	}
}

package session

import (
	"math"
	"slices"
	"testing"
	"time"

	"mad-life/internal/core"
	"mad-life/pkg/sims/life"
)

func newTestSession(t *testing.T) (*Session, *core.ManualClock) {
	t.Helper()
	cfg := life.DefaultConfig()
	cfg.Seed = 99
	clock := &core.ManualClock{}
	s, err := New(cfg, clock)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, clock
}

func TestNewStartsEmptyAndIdle(t *testing.T) {
	s, _ := newTestSession(t)
	st := s.State()
	if !st.Grid.Equal(life.Empty()) || st.Generation != 0 || st.Running || st.SpeedMS != 100 {
		t.Fatalf("unexpected initial state: gen=%d running=%v speed=%d alive=%d",
			st.Generation, st.Running, st.SpeedMS, st.Grid.Alive())
	}
	if sz := s.Size(); sz.W != life.Cols || sz.H != life.Rows {
		t.Fatalf("Size() = %+v", sz)
	}
}

func TestNewLoadsConfiguredPattern(t *testing.T) {
	cfg := life.DefaultConfig()
	cfg.Pattern = "pulsar"
	s, err := New(cfg, &core.ManualClock{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !s.Grid().Equal(life.Pulsar()) {
		t.Fatal("configured pattern not loaded")
	}

	cfg.Pattern = "gosper"
	if _, err := New(cfg, &core.ManualClock{}); err == nil {
		t.Fatal("expected error for unknown pattern")
	}
}

func TestStartStepsAndCounts(t *testing.T) {
	s, clock := newTestSession(t)
	s.SeedGlider()

	if !s.Start() {
		t.Fatal("Start should report true from idle")
	}
	if s.Generation() != 1 {
		t.Fatalf("generation after Start = %d, want 1", s.Generation())
	}
	for i := 0; i < 3; i++ {
		clock.Fire()
	}
	if s.Generation() != 4 {
		t.Fatalf("generation = %d, want 4", s.Generation())
	}
	want := life.Glider()
	for i := 0; i < 4; i++ {
		want = life.Step(want)
	}
	if !s.Grid().Equal(want) {
		t.Fatal("session grid diverged from repeated Step")
	}
}

func TestStopWithPendingTick(t *testing.T) {
	s, clock := newTestSession(t)
	s.SeedPulsar()
	s.Start()
	before := s.State()

	s.Stop()
	if clock.Pending() != 1 {
		t.Fatalf("expected the pending wake to survive Stop, pending=%d", clock.Pending())
	}
	clock.Fire()

	after := s.State()
	if after.Generation != before.Generation || !after.Grid.Equal(before.Grid) {
		t.Fatal("state changed after Stop")
	}
	if clock.Pending() != 0 {
		t.Fatal("stopped session re-armed its timer")
	}
}

func TestClearResetsEverything(t *testing.T) {
	s, clock := newTestSession(t)
	s.SeedRandom()
	s.Start()
	clock.Fire()

	s.Clear()
	st := s.State()
	if !st.Grid.Equal(life.Empty()) || st.Generation != 0 || st.Running {
		t.Fatalf("Clear left gen=%d running=%v alive=%d", st.Generation, st.Running, st.Grid.Alive())
	}
	clock.Fire()
	if s.Generation() != 0 {
		t.Fatal("pending wake stepped after Clear")
	}
}

func TestSeedsResetGeneration(t *testing.T) {
	s, _ := newTestSession(t)
	seeds := map[string]func(){
		"random": s.SeedRandom,
		"glider": s.SeedGlider,
		"pulsar": s.SeedPulsar,
	}
	for name, seed := range seeds {
		s.Step()
		s.Step()
		if s.Generation() != 2 {
			t.Fatalf("%s: manual steps not counted", name)
		}
		seed()
		if s.Generation() != 0 {
			t.Fatalf("%s: generation not reset", name)
		}
	}
}

func TestSeedRandomDensity(t *testing.T) {
	s, _ := newTestSession(t)
	const trials = 20
	total := 0
	for i := 0; i < trials; i++ {
		s.SeedRandom()
		total += s.Grid().Alive()
	}
	density := float64(total) / float64(trials*life.Rows*life.Cols)
	if math.Abs(density-0.3) > 0.02 {
		t.Fatalf("density %.3f, want about 0.3", density)
	}
}

func TestSetSpeedAppliesToNextWake(t *testing.T) {
	s, clock := newTestSession(t)
	s.Start()
	if got := s.SetSpeed(420); got != 400 {
		t.Fatalf("SetSpeed(420) kept %d, want 400", got)
	}
	if got := clock.Delays(); !slices.Equal(got, []time.Duration{100 * time.Millisecond}) {
		t.Fatalf("pending delay changed: %v", got)
	}
	clock.Fire()
	if got := clock.Delays(); !slices.Equal(got, []time.Duration{400 * time.Millisecond}) {
		t.Fatalf("next delay = %v, want 400ms", got)
	}
	if s.SetSpeed(10) != 50 || s.SetSpeed(5000) != 1000 {
		t.Fatal("speed not clamped to [50,1000]")
	}
}

func TestToggleCell(t *testing.T) {
	s, _ := newTestSession(t)
	if !s.ToggleCell(3, 4) {
		t.Fatal("in-range toggle rejected")
	}
	if s.Grid().At(3, 4) != life.Alive {
		t.Fatal("toggle did not set the cell")
	}
	if s.ToggleCell(life.Rows, 0) || s.ToggleCell(0, -1) {
		t.Fatal("out-of-range toggle accepted")
	}
	if s.Grid().Alive() != 1 {
		t.Fatal("out-of-range toggle changed the board")
	}
}

func TestStepIgnoredWhileRunning(t *testing.T) {
	s, _ := newTestSession(t)
	s.Start()
	s.Step()
	if s.Generation() != 1 {
		t.Fatalf("manual step while running changed generation to %d", s.Generation())
	}
}

func TestLoad(t *testing.T) {
	s, _ := newTestSession(t)
	if err := s.Load("glider"); err != nil {
		t.Fatalf("Load(glider): %v", err)
	}
	if !s.Grid().Equal(life.Glider()) {
		t.Fatal("glider not installed")
	}
	s.Start()
	if err := s.Load("empty"); err != nil {
		t.Fatalf("Load(empty): %v", err)
	}
	if s.Running() || s.Grid().Alive() != 0 {
		t.Fatal("Load(empty) should clear and stop")
	}
	if err := s.Load("nope"); err == nil {
		t.Fatal("expected error for unknown pattern")
	}
}

func TestParameterSetters(t *testing.T) {
	s, _ := newTestSession(t)
	if !s.SetIntParameter("speed", 250) || s.Speed() != 250 {
		t.Fatalf("speed setter failed, speed=%d", s.Speed())
	}
	if s.SetIntParameter("generation", 5) {
		t.Fatal("generation must not be settable")
	}
	if !s.SetFloatParameter("threshold", 0.5) || s.Threshold() != 0.5 {
		t.Fatal("threshold setter failed")
	}
	if s.SetFloatParameter("threshold", 1.5) {
		t.Fatal("threshold above 1 accepted")
	}

	snap := s.Parameters()
	if p, ok := snap.Lookup("speed"); !ok || p.Value != "250" {
		t.Fatalf("speed parameter = %+v", p)
	}
	if p, ok := snap.Lookup("status"); !ok || p.Value != "stopped" {
		t.Fatalf("status parameter = %+v", p)
	}
	if p, ok := snap.Lookup("seed"); !ok || p.Value != "99" {
		t.Fatalf("seed parameter = %+v", p)
	}
}

func TestActions(t *testing.T) {
	s, _ := newTestSession(t)
	if got := s.Actions()[0].Label; got != "Start" {
		t.Fatalf("run label while idle = %q", got)
	}
	if !s.InvokeAction("glider") || !s.Grid().Equal(life.Glider()) {
		t.Fatal("glider action failed")
	}
	s.InvokeAction("run")
	if !s.Running() || s.Actions()[0].Label != "Stop" {
		t.Fatal("run action did not start the session")
	}
	s.InvokeAction("run")
	if s.Running() {
		t.Fatal("run action did not stop the session")
	}
	if s.InvokeAction("explode") {
		t.Fatal("unknown action accepted")
	}
}

package session

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"mad-life/internal/core"
	pcore "mad-life/pkg/core"
	"mad-life/pkg/sims/life"
)

// Session owns the current board, the generation counter and the scheduler
// that advances them. All methods are safe for concurrent use.
type Session struct {
	mu         sync.Mutex
	grid       life.Grid
	generation int
	threshold  float64
	seed       int64
	rng        *pcore.RNG

	sched *core.Scheduler
}

// State is a consistent view of the session at one instant.
type State struct {
	Grid       life.Grid
	Generation int
	Running    bool
	SpeedMS    int
}

// New creates an idle session with an empty board. A zero cfg.Seed picks a
// time-based seed. When cfg.Pattern names a registered pattern other than
// "empty" it is loaded immediately.
func New(cfg life.Config, clock core.Clock) (*Session, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	threshold := cfg.Threshold
	if threshold < 0 || threshold > 1 {
		threshold = life.DefaultThreshold
	}
	s := &Session{
		grid:      life.Empty(),
		threshold: threshold,
		seed:      seed,
		rng:       pcore.NewRNG(seed),
	}
	speed := life.ClampSpeed(cfg.SpeedMS)
	s.sched = core.NewScheduler(clock, time.Duration(speed)*time.Millisecond, s.advance)
	if cfg.Pattern != "" && cfg.Pattern != "empty" {
		if err := s.Load(cfg.Pattern); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Name identifies the simulation.
func (s *Session) Name() string { return "life" }

// Size returns the board dimensions.
func (s *Session) Size() core.Size { return core.Size{W: life.Cols, H: life.Rows} }

// advance is the scheduler's tick: replace the board with its successor and
// count the generation.
func (s *Session) advance() {
	s.mu.Lock()
	s.grid = life.Step(s.grid)
	s.generation++
	s.mu.Unlock()
}

// install swaps in a freshly seeded board and resets the generation counter.
func (s *Session) install(g life.Grid) {
	s.mu.Lock()
	s.grid = g
	s.generation = 0
	s.mu.Unlock()
}

// Grid returns the current snapshot.
func (s *Session) Grid() life.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid
}

// Cells returns the current board as row-major 0/1 bytes.
func (s *Session) Cells() []uint8 {
	return s.Grid().Cells()
}

// Generation returns the number of steps applied since the last reseed.
func (s *Session) Generation() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Running reports whether the scheduler is stepping.
func (s *Session) Running() bool { return s.sched.Running() }

// Speed returns the step cadence in milliseconds.
func (s *Session) Speed() int { return int(s.sched.Speed() / time.Millisecond) }

// Threshold returns the cut-off used by random seeding.
func (s *Session) Threshold() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.threshold
}

// State returns grid, generation, running flag and speed together.
func (s *Session) State() State {
	running := s.sched.Running()
	speed := s.Speed()
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{Grid: s.grid, Generation: s.generation, Running: running, SpeedMS: speed}
}

// ToggleCell flips the cell at (row, col). Out-of-range coordinates are
// ignored and reported as false.
func (s *Session) ToggleCell(row, col int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, ok := life.Toggle(s.grid, row, col)
	if ok {
		s.grid = next
	}
	return ok
}

// Start begins stepping; the first step happens before Start returns.
func (s *Session) Start() bool { return s.sched.Start() }

// Stop halts stepping. No generation is applied after Stop returns.
func (s *Session) Stop() bool { return s.sched.Stop() }

// Toggle starts an idle session or stops a running one and reports the new
// running state.
func (s *Session) Toggle() bool {
	if s.sched.Stop() {
		return false
	}
	s.sched.Start()
	return true
}

// Step applies a single generation while idle. It does nothing when running.
func (s *Session) Step() {
	if s.sched.Running() {
		return
	}
	s.advance()
}

// SetSpeed stores a new cadence, clamped to the supported range, and returns
// the value kept. It applies from the next scheduled step.
func (s *Session) SetSpeed(ms int) int {
	ms = life.ClampSpeed(ms)
	s.sched.SetSpeed(time.Duration(ms) * time.Millisecond)
	return ms
}

// SetThreshold changes the cut-off for subsequent random seeding.
func (s *Session) SetThreshold(t float64) bool {
	if t < 0 || t > 1 {
		return false
	}
	s.mu.Lock()
	s.threshold = t
	s.mu.Unlock()
	return true
}

// Clear stops the session and installs an empty board at generation 0.
func (s *Session) Clear() {
	s.sched.Stop()
	s.install(life.Empty())
}

// SeedRandom installs a random board and resets the generation counter.
func (s *Session) SeedRandom() {
	s.mu.Lock()
	g := life.Random(s.threshold, s.rng)
	s.grid = g
	s.generation = 0
	s.mu.Unlock()
}

// SeedGlider installs the glider and resets the generation counter.
func (s *Session) SeedGlider() { s.install(life.Glider()) }

// SeedPulsar installs the pulsar and resets the generation counter.
func (s *Session) SeedPulsar() { s.install(life.Pulsar()) }

// Load seeds the board from a registered pattern name. "empty" behaves like
// Clear.
func (s *Session) Load(pattern string) error {
	switch pattern {
	case "empty":
		s.Clear()
		return nil
	case "random":
		s.SeedRandom()
		return nil
	}
	gen, ok := life.Lookup(pattern)
	if !ok {
		return fmt.Errorf("unknown pattern %q", pattern)
	}
	s.install(gen(life.SeedOptions{Threshold: s.Threshold()}))
	return nil
}

// Parameters implements core.ParameterProvider.
func (s *Session) Parameters() core.ParameterSnapshot {
	st := s.State()
	status := "stopped"
	if st.Running {
		status = "running"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Simulation",
			Params: []core.Parameter{
				{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.Itoa(st.Generation)},
				{Key: "population", Label: "Population", Type: core.ParamTypeInt, Value: strconv.Itoa(st.Grid.Alive())},
				{Key: "status", Label: "Status", Type: core.ParamTypeText, Value: status},
				{Key: "speed", Label: "Speed (ms)", Type: core.ParamTypeInt, Value: strconv.Itoa(st.SpeedMS)},
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				{Key: "threshold", Label: "Random threshold", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(s.Threshold(), 'f', -1, 64)},
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(s.seed, 10)},
			},
		},
	}}
}

// ParameterControls implements core.ParameterControlsProvider.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key:    "speed",
			Label:  "Speed (ms)",
			Type:   core.ParamTypeInt,
			Step:   life.SpeedStepMS,
			Min:    life.MinSpeedMS,
			Max:    life.MaxSpeedMS,
			HasMin: true,
			HasMax: true,
		},
		{
			Key:    "threshold",
			Label:  "Random threshold",
			Type:   core.ParamTypeFloat,
			Step:   0.05,
			Min:    0,
			Max:    1,
			HasMin: true,
			HasMax: true,
		},
	}
}

// SetIntParameter implements core.IntParameterSetter.
func (s *Session) SetIntParameter(key string, value int) bool {
	if key != "speed" {
		return false
	}
	s.SetSpeed(value)
	return true
}

// SetFloatParameter implements core.FloatParameterSetter.
func (s *Session) SetFloatParameter(key string, value float64) bool {
	if key != "threshold" {
		return false
	}
	return s.SetThreshold(value)
}

// Actions implements core.ActionProvider.
func (s *Session) Actions() []core.Action {
	run := core.Action{Key: "run", Label: "Start"}
	if s.Running() {
		run.Label = "Stop"
	}
	return []core.Action{
		run,
		{Key: "step", Label: "Step"},
		{Key: "clear", Label: "Clear"},
		{Key: "random", Label: "Random"},
		{Key: "glider", Label: "Glider"},
		{Key: "pulsar", Label: "Pulsar"},
	}
}

// InvokeAction implements core.ActionProvider.
func (s *Session) InvokeAction(key string) bool {
	switch key {
	case "run":
		s.Toggle()
	case "step":
		s.Step()
	case "clear":
		s.Clear()
	case "random":
		s.SeedRandom()
	case "glider":
		s.SeedGlider()
	case "pulsar":
		s.SeedPulsar()
	default:
		return false
	}
	return true
}

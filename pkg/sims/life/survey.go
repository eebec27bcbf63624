package life

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"mad-life/pkg/core"
)

// SurveyConfig describes a batch of random-seed runs.
type SurveyConfig struct {
	Trials      int
	Generations int
	Threshold   float64
	Seed        int64
	Workers     int
}

// DefaultSurveyConfig returns a small batch using the default density.
func DefaultSurveyConfig() SurveyConfig {
	return SurveyConfig{
		Trials:      32,
		Generations: 500,
		Threshold:   DefaultThreshold,
		Seed:        1,
		Workers:     runtime.NumCPU(),
	}
}

// TrialResult summarises a single random-seed run.
type TrialResult struct {
	Seed         int64
	InitialAlive int
	FinalAlive   int
	PeakAlive    int

	// StableAt is the first generation whose successor equals itself or its
	// predecessor (still life or period 2), or -1 when none was seen.
	StableAt int
}

// InitialDensity returns the live fraction of the seeded board.
func (r TrialResult) InitialDensity() float64 {
	return float64(r.InitialAlive) / float64(Rows*Cols)
}

// RunTrial seeds a board from seed and advances it up to generations steps.
func RunTrial(seed int64, threshold float64, generations int) TrialResult {
	g := Random(threshold, core.NewRNG(seed))
	res := TrialResult{Seed: seed, InitialAlive: g.Alive(), StableAt: -1}
	res.PeakAlive = res.InitialAlive
	prev := g
	for gen := 0; gen < generations; gen++ {
		next := Step(g)
		if next.Equal(g) || (gen > 0 && next.Equal(prev)) {
			res.StableAt = gen
			break
		}
		prev, g = g, next
		if alive := g.Alive(); alive > res.PeakAlive {
			res.PeakAlive = alive
		}
	}
	res.FinalAlive = g.Alive()
	return res
}

// Survey runs cfg.Trials independent trials in parallel. Trial i uses seed
// cfg.Seed+i, so results are reproducible regardless of worker count.
func Survey(cfg SurveyConfig) []TrialResult {
	if cfg.Trials <= 0 {
		return nil
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]TrialResult, cfg.Trials)
	var eg errgroup.Group
	eg.SetLimit(workers)
	for i := range results {
		eg.Go(func() error {
			results[i] = RunTrial(cfg.Seed+int64(i), cfg.Threshold, cfg.Generations)
			return nil
		})
	}
	_ = eg.Wait()
	return results
}

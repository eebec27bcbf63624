package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"mad-life/pkg/sims/life"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	trials := flag.Int("trials", 64, "number of random boards to simulate")
	generations := flag.Int("generations", 1000, "maximum generations per board")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel trial evaluations")
	var overrides kvList
	flag.Var(&overrides, "set", "session override in key=value form, e.g. threshold=0.8 or seed=7 (repeatable)")
	flag.Parse()

	kv := map[string]string{}
	for _, o := range overrides {
		parts := strings.SplitN(o, "=", 2)
		if len(parts) != 2 {
			log.Fatalf("malformed override %q", o)
		}
		kv[parts[0]] = parts[1]
	}
	lc := life.FromMap(kv)
	if _, ok := kv["seed"]; !ok {
		lc.Seed = 1
	}

	cfg := life.SurveyConfig{
		Trials:      *trials,
		Generations: *generations,
		Threshold:   lc.Threshold,
		Seed:        lc.Seed,
		Workers:     *workers,
	}
	results := life.Survey(cfg)
	if len(results) == 0 {
		log.Fatal("no trials requested")
	}

	var density, final float64
	stable := 0
	var stableAt []int
	for _, r := range results {
		density += r.InitialDensity()
		final += float64(r.FinalAlive)
		if r.StableAt >= 0 {
			stable++
			stableAt = append(stableAt, r.StableAt)
		}
	}
	n := float64(len(results))
	fmt.Printf("Trials: %d on %dx%d, threshold %s, seeds %d..%d\n",
		len(results), life.Rows, life.Cols, strconv.FormatFloat(cfg.Threshold, 'f', -1, 64), cfg.Seed, cfg.Seed+int64(len(results))-1)
	fmt.Printf("Mean initial density: %.4f\n", density/n)
	fmt.Printf("Mean final population: %.1f\n", final/n)
	fmt.Printf("Settled within %d generations: %d/%d\n", cfg.Generations, stable, len(results))
	if len(stableAt) > 0 {
		sort.Ints(stableAt)
		fmt.Printf("Settling generation: min %d, median %d, max %d\n", stableAt[0], stableAt[len(stableAt)/2], stableAt[len(stableAt)-1])
	}
}

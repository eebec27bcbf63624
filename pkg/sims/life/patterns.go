package life

import (
	"sort"

	"mad-life/pkg/core"
)

// SeedOptions carries the inputs a Generator may consult.
type SeedOptions struct {
	Threshold float64
	RNG       *core.RNG
}

// Generator produces a full seed grid.
type Generator func(opts SeedOptions) Grid

var patterns = map[string]Generator{}

// Register adds a pattern generator under the provided name.
func Register(name string, g Generator) {
	if name == "" || g == nil {
		return
	}
	patterns[name] = g
}

// Lookup returns the generator registered under name.
func Lookup(name string) (Generator, bool) {
	g, ok := patterns[name]
	return g, ok
}

// Patterns returns the registered pattern names in sorted order.
func Patterns() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Random marks each cell alive when an independent uniform draw exceeds
// threshold, so roughly 1-threshold of the board starts alive.
func Random(threshold float64, rng *core.RNG) Grid {
	g := newGrid()
	buf := make([]uint8, len(g.cells))
	core.FillThreshold(rng.Source(), buf, threshold)
	for i, v := range buf {
		g.cells[i] = Cell(v)
	}
	return g
}

var gliderCells = [][2]int{{1, 2}, {2, 3}, {3, 1}, {3, 2}, {3, 3}}

// Glider places a south-east travelling glider near the top-left corner.
func Glider() Grid {
	return place(gliderCells, 0, 0)
}

var pulsarOffsets = [][2]int{
	{-6, -4}, {-6, -3}, {-6, -2}, {-6, 2}, {-6, 3}, {-6, 4},
	{-4, -6}, {-4, -1}, {-4, 1}, {-4, 6},
	{-3, -6}, {-3, -1}, {-3, 1}, {-3, 6},
	{-2, -6}, {-2, -1}, {-2, 1}, {-2, 6},
	{-1, -4}, {-1, -3}, {-1, -2}, {-1, 2}, {-1, 3}, {-1, 4},
	{1, -4}, {1, -3}, {1, -2}, {1, 2}, {1, 3}, {1, 4},
	{2, -6}, {2, -1}, {2, 1}, {2, 6},
	{3, -6}, {3, -1}, {3, 1}, {3, 6},
	{4, -6}, {4, -1}, {4, 1}, {4, 6},
	{6, -4}, {6, -3}, {6, -2}, {6, 2}, {6, 3}, {6, 4},
}

// Pulsar places the period-3 pulsar centred on the board.
func Pulsar() Grid {
	return place(pulsarOffsets, Rows/2, Cols/2)
}

// place sets the given offsets relative to (row, col); cells that would land
// off the board are dropped.
func place(offsets [][2]int, row, col int) Grid {
	g := newGrid()
	for _, o := range offsets {
		r, c := row+o[0], col+o[1]
		if !g.InBounds(r, c) {
			continue
		}
		g.cells[g.index(r, c)] = Alive
	}
	return g
}

func init() {
	Register("empty", func(SeedOptions) Grid { return Empty() })
	Register("random", func(opts SeedOptions) Grid {
		rng := opts.RNG
		if rng == nil {
			rng = core.NewRNG(0)
		}
		return Random(opts.Threshold, rng)
	})
	Register("glider", func(SeedOptions) Grid { return Glider() })
	Register("pulsar", func(SeedOptions) Grid { return Pulsar() })
}

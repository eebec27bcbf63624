package life

// moore lists the (drow, dcol) offsets of the eight neighbours.
var moore = [8][2]int{
	{0, 1}, {0, -1},
	{1, -1}, {-1, 1},
	{1, 1}, {-1, -1},
	{1, 0}, {-1, 0},
}

// Neighbors counts live cells around (row, col). Offsets that leave the board
// are skipped; there is no wraparound.
func (g Grid) Neighbors(row, col int) int {
	n := 0
	for _, d := range moore {
		r, c := row+d[0], col+d[1]
		if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
			continue
		}
		n += int(g.cells[r*g.cols+c])
	}
	return n
}

// Rule applies B3/S23 to a single cell given its live neighbour count.
func Rule(cur Cell, neighbors int) Cell {
	switch {
	case neighbors < 2 || neighbors > 3:
		return Dead
	case cur == Dead && neighbors == 3:
		return Alive
	default:
		return cur
	}
}

// Step computes the next generation. The input is never written to; all
// neighbour counts come from g and the result is a freshly allocated grid.
func Step(g Grid) Grid {
	next := Grid{rows: g.rows, cols: g.cols, cells: make([]Cell, len(g.cells))}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			idx := r*g.cols + c
			next.cells[idx] = Rule(g.cells[idx], g.Neighbors(r, c))
		}
	}
	return next
}

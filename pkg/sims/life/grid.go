package life

// Fixed board dimensions.
const (
	Rows = 40
	Cols = 60
)

// Cell is the state of a single grid position.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// Grid is an immutable Rows x Cols snapshot stored in row-major order. Every
// mutation returns a new Grid; the zero value is not a valid board.
type Grid struct {
	rows, cols int
	cells      []Cell
}

// Empty returns a board with every cell dead.
func Empty() Grid {
	return newGrid()
}

func newGrid() Grid {
	return Grid{rows: Rows, cols: Cols, cells: make([]Cell, Rows*Cols)}
}

// Size returns the board dimensions as (rows, cols).
func (g Grid) Size() (int, int) { return g.rows, g.cols }

// InBounds reports whether (row, col) addresses a cell on the board.
func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g Grid) index(row, col int) int { return row*g.cols + col }

// At returns the cell at (row, col). Out-of-range coordinates read as Dead.
func (g Grid) At(row, col int) Cell {
	if !g.InBounds(row, col) {
		return Dead
	}
	return g.cells[g.index(row, col)]
}

// Toggle returns a copy of g with the cell at (row, col) flipped. The second
// result is false and g is returned untouched when the coordinates are out of
// range.
func Toggle(g Grid, row, col int) (Grid, bool) {
	if !g.InBounds(row, col) {
		return g, false
	}
	next := g.clone()
	idx := next.index(row, col)
	if next.cells[idx] == Alive {
		next.cells[idx] = Dead
	} else {
		next.cells[idx] = Alive
	}
	return next, true
}

func (g Grid) clone() Grid {
	return Grid{rows: g.rows, cols: g.cols, cells: append([]Cell(nil), g.cells...)}
}

// Alive counts the live cells.
func (g Grid) Alive() int {
	n := 0
	for _, c := range g.cells {
		if c == Alive {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same dimensions and contents.
func (g Grid) Equal(o Grid) bool {
	if g.rows != o.rows || g.cols != o.cols || len(g.cells) != len(o.cells) {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Cells returns a row-major copy of the board as 0/1 bytes for renderers.
func (g Grid) Cells() []uint8 {
	out := make([]uint8, len(g.cells))
	for i, c := range g.cells {
		out[i] = uint8(c)
	}
	return out
}

// LiveCells lists the coordinates of every live cell as (row, col) pairs in
// row-major order.
func (g Grid) LiveCells() [][2]int {
	var out [][2]int
	for i, c := range g.cells {
		if c == Alive {
			out = append(out, [2]int{i / g.cols, i % g.cols})
		}
	}
	return out
}

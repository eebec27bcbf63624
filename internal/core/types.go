package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Controller is the command/query surface front-ends drive. Rows map to H and
// columns to W.
type Controller interface {
	Name() string
	Size() Size

	// Cells returns a row-major 0/1 snapshot of the current board.
	Cells() []uint8
	Generation() int
	Running() bool
	// Speed reports the step cadence in milliseconds.
	Speed() int

	ToggleCell(row, col int) bool
	Start() bool
	Stop() bool
	Step()
	SetSpeed(ms int) int
	Clear()
	Load(pattern string) error
}

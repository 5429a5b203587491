package cave

import "fmt"

// MinDimension is the smallest width or height a grid can have while still
// containing an interior cell.
const MinDimension = 3

// Coord is a grid position. Coords have value equality, so they work as set
// members for visited tracking.
type Coord struct {
	X, Y int
}

// Grid is a rectangular cave map. Cells are stored in [y][x] order. The
// outermost ring is always CellWall for the lifetime of the grid; interior
// algorithms rely on the border absorbing neighbor lookups, so no stage may
// ever open a border cell.
type Grid struct {
	Width  int
	Height int
	Cells  [][]Cell
}

// NewGrid creates a grid of the given dimensions with every cell set to
// CellWall. Dimensions below MinDimension are rejected.
func NewGrid(width, height int) (*Grid, error) {
	if width < MinDimension || height < MinDimension {
		return nil, fmt.Errorf("%w: dimensions %dx%d, need at least %dx%d",
			ErrInvalidConfig, width, height, MinDimension, MinDimension)
	}
	return newGrid(width, height), nil
}

// newGrid is NewGrid without the dimension check, for callers that already
// hold a valid grid of the same size.
func newGrid(width, height int) *Grid {
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
		for x := range cells[y] {
			cells[y][x] = CellWall
		}
	}
	return &Grid{Width: width, Height: height, Cells: cells}
}

// At returns the cell at the given position. Out-of-range lookups return
// CellWall.
func (g *Grid) At(x, y int) Cell {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return CellWall
	}
	return g.Cells[y][x]
}

// Set overwrites the cell at the given position. Out-of-range positions are
// ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return
	}
	g.Cells[y][x] = c
}

// InInterior reports whether (x, y) lies strictly inside the border ring.
func (g *Grid) InInterior(x, y int) bool {
	return x > 0 && x < g.Width-1 && y > 0 && y < g.Height-1
}

// wallNeighbors counts wall cells in the Moore neighborhood of (x, y). Only
// valid for interior cells; the border invariant keeps every lookup in
// bounds.
func (g *Grid) wallNeighbors(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.Cells[y+dy][x+dx] == CellWall {
				count++
			}
		}
	}
	return count
}

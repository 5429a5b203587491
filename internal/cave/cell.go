// Package cave generates navigable cave maps: stochastic fill, cellular
// automaton smoothing, connectivity repair, noise cluster removal and
// endpoint placement.
package cave

// Cell represents a single map cell.
type Cell rune

const (
	// CellWall represents an impassable wall cell.
	CellWall Cell = '#'
	// CellPath represents an open, walkable cell.
	CellPath Cell = '.'
	// CellStart marks the map's entry point. Assigned once, at the end of
	// the pipeline.
	CellStart Cell = 'S'
	// CellEnd marks the map's exit point. Assigned once, at the end of the
	// pipeline.
	CellEnd Cell = 'E'
)

// IsOpen returns true if the cell can be walked on.
func (c Cell) IsOpen() bool {
	return c != CellWall
}

// Rune returns the cell's display character.
func (c Cell) Rune() rune {
	return rune(c)
}

// CellFromRune maps a display character back to a cell. The second return
// is false for characters that are not cells.
func CellFromRune(r rune) (Cell, bool) {
	switch Cell(r) {
	case CellWall, CellPath, CellStart, CellEnd:
		return Cell(r), true
	}
	return 0, false
}

package cave

import "fmt"

// Smoothing thresholds. A cell with smoothWallMin or more wall neighbors
// becomes wall, one with smoothPathMax or fewer becomes path, and exactly
// four leaves the cell unchanged. This variant produces blob-like caverns
// rather than checkerboard noise; the values are part of the output
// contract and must not change.
const (
	smoothWallMin = 5
	smoothPathMax = 3
)

// Initialize allocates a grid with a solid border and stochastically fills
// the interior: one Float64 draw per interior cell in row-major order
// (y outer, x inner), a draw below fillProbability producing a wall.
// Exactly (width-2)*(height-2) draws are consumed; the traversal order is
// part of the reproducibility contract.
func Initialize(width, height int, fillProbability float64, rng Rand) (*Grid, error) {
	if fillProbability < 0 || fillProbability > 1 {
		return nil, fmt.Errorf("%w: fill probability %v outside [0, 1]", ErrInvalidConfig, fillProbability)
	}
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			if rng.Float64() < fillProbability {
				g.Cells[y][x] = CellWall
			} else {
				g.Cells[y][x] = CellPath
			}
		}
	}
	return g, nil
}

// Smooth applies the majority-rule automaton for the given number of
// iterations and returns the final grid. Each iteration reads the previous
// grid and writes a fresh one, so a sweep never observes its own writes.
// Two buffers are ping-ponged after the first iteration; the caller's grid
// is never written to.
func Smooth(g *Grid, iterations int) *Grid {
	cur := g
	var spare *Grid
	for i := 0; i < iterations; i++ {
		out := spare
		if out == nil {
			out = newGrid(g.Width, g.Height)
		}
		smoothStep(cur, out)
		if cur != g {
			spare = cur
		}
		cur = out
	}
	return cur
}

// smoothStep writes one automaton sweep of src into dst. dst's border is
// already wall, and the border invariant keeps every neighbor lookup in
// bounds without explicit branching.
func smoothStep(src, dst *Grid) {
	for y := 1; y < src.Height-1; y++ {
		for x := 1; x < src.Width-1; x++ {
			walls := src.wallNeighbors(x, y)
			switch {
			case walls >= smoothWallMin:
				dst.Cells[y][x] = CellWall
			case walls <= smoothPathMax:
				dst.Cells[y][x] = CellPath
			default:
				dst.Cells[y][x] = src.Cells[y][x]
			}
		}
	}
}

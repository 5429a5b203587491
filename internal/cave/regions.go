package cave

import "github.com/zyedidia/generic/mapset"

// Neighbor offsets. Open regions connect through cardinal neighbors only;
// wall clusters also connect diagonally.
var (
	cardinalOffsets = [4]Coord{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}
	mooreOffsets    = [8]Coord{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
)

// Region is a maximal 4-connected set of open cells, described by the first
// coordinate the scan found and the cell count. Regions are recomputed on
// demand, never cached; the grid mutates between passes.
type Region struct {
	Seed Coord
	Size int
}

// FindRegions scans the interior in row-major order and returns every open
// region in discovery order. A full scan costs O(width*height).
func FindRegions(g *Grid) []Region {
	visited := mapset.New[Coord]()
	var regions []Region
	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			seed := Coord{X: x, Y: y}
			if !g.Cells[y][x].IsOpen() || visited.Has(seed) {
				continue
			}
			cells := floodFill(g, seed, visited)
			regions = append(regions, Region{Seed: seed, Size: len(cells)})
		}
	}
	return regions
}

// floodFill walks the 4-connected open cells reachable from seed, strictly
// inside the border, and returns them in BFS visitation order. Visits are
// marked in the caller's set so repeated calls never re-walk explored
// territory. The seed must be an open interior cell.
func floodFill(g *Grid, seed Coord, visited mapset.Set[Coord]) []Coord {
	queue := []Coord{seed}
	visited.Put(seed)
	var cells []Coord
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		cells = append(cells, cur)
		for _, d := range cardinalOffsets {
			next := Coord{X: cur.X + d.X, Y: cur.Y + d.Y}
			if !g.InInterior(next.X, next.Y) || !g.Cells[next.Y][next.X].IsOpen() || visited.Has(next) {
				continue
			}
			visited.Put(next)
			queue = append(queue, next)
		}
	}
	return cells
}

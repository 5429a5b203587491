package cave

import "github.com/zyedidia/generic/mapset"

// RemoveClusters rewrites interior wall clusters smaller than maxSize to
// open cells, eliminating the single-cell specks left behind by smoothing
// and repair. Clusters connect through all eight neighbors, unlike open
// regions. Border cells are never scanned or rewritten, so the border
// invariant holds. This pass runs after connectivity repair and before
// endpoint placement; removed specks may slightly alter which open region
// is largest. Returns the number of clusters removed.
func RemoveClusters(g *Grid, maxSize int) int {
	visited := mapset.New[Coord]()
	removed := 0
	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			seed := Coord{X: x, Y: y}
			if g.Cells[y][x] != CellWall || visited.Has(seed) {
				continue
			}
			cluster := wallCluster(g, seed, visited)
			if len(cluster) < maxSize {
				for _, c := range cluster {
					g.Cells[c.Y][c.X] = CellPath
				}
				removed++
			}
		}
	}
	return removed
}

// wallCluster collects the 8-connected interior wall cells reachable from
// seed, marking visits in the caller's set.
func wallCluster(g *Grid, seed Coord, visited mapset.Set[Coord]) []Coord {
	queue := []Coord{seed}
	visited.Put(seed)
	var cells []Coord
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		cells = append(cells, cur)
		for _, d := range mooreOffsets {
			next := Coord{X: cur.X + d.X, Y: cur.Y + d.Y}
			if !g.InInterior(next.X, next.Y) || g.Cells[next.Y][next.X] != CellWall || visited.Has(next) {
				continue
			}
			visited.Put(next)
			queue = append(queue, next)
		}
	}
	return cells
}

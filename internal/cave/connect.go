package cave

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Supplementary corridor tuning: one corridor per corridorArea cells of
// map, each between corridorMinLen and corridorMaxLen-1 cells long.
const (
	corridorArea   = 5000
	corridorMinLen = 5
	corridorMaxLen = 20
)

// RepairStats summarizes a connectivity pass. The counters are advisory
// telemetry and carry no control semantics.
type RepairStats struct {
	Regions        int
	FilledRooms    int
	ConnectedRooms int
	ExtraCorridors int
}

// ResolveConnectivity repairs the grid so the open cells form a single
// 4-connected region. The largest region is retained as the main region;
// every other region, visited in descending size order, is filled back to
// wall when smaller than minRoomSize or joined to the main region with an
// L-shaped corridor otherwise. Afterwards a handful of supplementary
// corridors are carved at random positions for variety; they can only add
// connectivity and are not verified.
func ResolveConnectivity(g *Grid, minRoomSize int, rng Rand) RepairStats {
	regions := FindRegions(g)
	stats := RepairStats{Regions: len(regions)}
	if len(regions) > 1 {
		// Stable sort keeps scan order as the tie-break: the first-found of
		// two equal-sized regions is the one retained as main.
		sort.SliceStable(regions, func(i, j int) bool {
			return regions[i].Size > regions[j].Size
		})
		main := regions[0]
		for _, r := range regions[1:] {
			if r.Size < minRoomSize {
				fillRegion(g, r.Seed)
				stats.FilledRooms++
				continue
			}
			carveCorridor(g, main.Seed, r.Seed)
			stats.ConnectedRooms++
		}
	}
	stats.ExtraCorridors = carveSupplementary(g, rng)
	return stats
}

// fillRegion rewrites the whole open region reachable from seed back to
// wall.
func fillRegion(g *Grid, seed Coord) {
	for _, c := range floodFill(g, seed, mapset.New[Coord]()) {
		g.Cells[c.Y][c.X] = CellWall
	}
}

// carveCorridor joins two region seeds with an L-shaped corridor: a
// horizontal segment along the main seed's row, then a vertical segment
// along the secondary seed's column. The segments overwrite whatever they
// cross; straight lines keep the connection O(1) per region at the cost of
// occasionally blunt corridors. Both seeds are interior, so the carved
// cells never touch the border.
func carveCorridor(g *Grid, main, secondary Coord) {
	x1, x2 := main.X, secondary.X
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		g.Cells[main.Y][x] = CellPath
	}

	y1, y2 := main.Y, secondary.Y
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		g.Cells[y][secondary.X] = CellPath
	}
}

// carveSupplementary adds width*height/corridorArea random corridors purely
// for variety. Connectivity is guaranteed solely by the room-merge step.
// Draw order per corridor is x, y, orientation, length; corridors are
// clamped at the border ring.
func carveSupplementary(g *Grid, rng Rand) int {
	count := g.Width * g.Height / corridorArea
	for i := 0; i < count; i++ {
		x := rng.IntRange(1, g.Width-1)
		y := rng.IntRange(1, g.Height-1)
		horizontal := rng.IntRange(0, 2) == 0
		length := rng.IntRange(corridorMinLen, corridorMaxLen)

		for j := 0; j < length; j++ {
			if horizontal {
				if x+j >= g.Width-1 {
					break
				}
				g.Cells[y][x+j] = CellPath
			} else {
				if y+j >= g.Height-1 {
					break
				}
				g.Cells[y+j][x] = CellPath
			}
		}
	}
	return count
}

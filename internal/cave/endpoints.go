package cave

import (
	"errors"
	"math"

	"github.com/zyedidia/generic/mapset"
)

// Endpoint placement failure modes. Both leave the grid without start and
// end markers; the caller decides whether to regenerate.
var (
	// ErrNoRooms indicates the grid has no open regions at all.
	ErrNoRooms = errors.New("cave: no open regions found")
	// ErrTooFewCells indicates the main region holds fewer than two
	// reachable cells.
	ErrTooFewCells = errors.New("cave: fewer than two accessible cells in main region")
)

// endpointAttempts bounds the redraw loop when a candidate pair falls short
// of the requested minimum distance.
const endpointAttempts = 20

// PlaceEndpoints picks two far-apart open cells in the largest region and
// marks them CellStart and CellEnd. The initial candidates come from
// opposite quarters of the region's BFS visitation order; the quarters are
// positional in that list, not spatial, so the separation is a heuristic.
// When the pair is closer than minDistance, both indices are redrawn over
// the whole list up to 20 times and the widest pair seen wins. The minimum
// distance is a soft quality target: the best pair is accepted even if it
// never clears the threshold.
func PlaceEndpoints(g *Grid, minDistance float64, rng Rand) (start, end Coord, err error) {
	regions := FindRegions(g)
	if len(regions) == 0 {
		return Coord{}, Coord{}, ErrNoRooms
	}

	// Largest region wins; the strict comparison keeps the first-found of
	// equal-sized regions.
	main := regions[0]
	for _, r := range regions[1:] {
		if r.Size > main.Size {
			main = r
		}
	}

	accessible := floodFill(g, main.Seed, mapset.New[Coord]())
	n := len(accessible)
	if n < 2 {
		return Coord{}, Coord{}, ErrTooFewCells
	}

	// Degenerate quarters (n < 4) are clamped so both windows stay
	// non-empty and disjoint.
	quarter := n / 4
	if quarter < 1 {
		quarter = 1
	}
	endLo := 3 * n / 4
	if endLo >= n {
		endLo = n - 1
	}

	start = accessible[rng.IntRange(0, quarter)]
	end = accessible[rng.IntRange(endLo, n)]
	bestDist := distance(start, end)

	for attempt := 0; attempt < endpointAttempts && bestDist < minDistance; attempt++ {
		a := accessible[rng.IntRange(0, n)]
		b := accessible[rng.IntRange(0, n)]
		if a == b {
			continue
		}
		if d := distance(a, b); d > bestDist {
			start, end, bestDist = a, b, d
		}
	}

	g.Cells[start.Y][start.X] = CellStart
	g.Cells[end.Y][end.X] = CellEnd
	return start, end, nil
}

func distance(a, b Coord) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

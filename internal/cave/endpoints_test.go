package cave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// markersOf collects the start and end marker positions.
func markersOf(g *Grid) (starts, ends []Coord) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			switch g.Cells[y][x] {
			case CellStart:
				starts = append(starts, Coord{X: x, Y: y})
			case CellEnd:
				ends = append(ends, Coord{X: x, Y: y})
			}
		}
	}
	return starts, ends
}

func TestPlaceEndpointsNoRooms(t *testing.T) {
	g, err := NewGrid(10, 10)
	require.NoError(t, err)
	_, _, err = PlaceEndpoints(g, 30, &stubRand{})
	assert.ErrorIs(t, err, ErrNoRooms)
	starts, ends := markersOf(g)
	assert.Empty(t, starts)
	assert.Empty(t, ends)
}

func TestPlaceEndpointsTooFewCells(t *testing.T) {
	g := gridFrom(t,
		"###",
		"#.#",
		"###",
	)
	_, _, err := PlaceEndpoints(g, 0, &stubRand{})
	assert.ErrorIs(t, err, ErrTooFewCells)
}

func TestPlaceEndpointsTwoCells(t *testing.T) {
	g := gridFrom(t,
		"####",
		"#..#",
		"####",
	)
	start, end, err := PlaceEndpoints(g, 0, &stubRand{})
	require.NoError(t, err)
	assert.NotEqual(t, start, end)
	assert.Equal(t, CellStart, g.Cells[start.Y][start.X])
	assert.Equal(t, CellEnd, g.Cells[end.Y][end.X])

	starts, ends := markersOf(g)
	assert.Len(t, starts, 1)
	assert.Len(t, ends, 1)
}

func TestPlaceEndpointsBestEffortBelowThreshold(t *testing.T) {
	g := gridFrom(t,
		"#####",
		"#...#",
		"#...#",
		"#...#",
		"#####",
	)
	// nine accessible cells can never be 100 apart; the widest pair seen
	// is still accepted
	start, end, err := PlaceEndpoints(g, 100, &stubRand{})
	require.NoError(t, err)
	assert.NotEqual(t, start, end)
	assert.Less(t, distance(start, end), 100.0)
}

func TestPlaceEndpointsConsumesBoundedDraws(t *testing.T) {
	g := gridFrom(t,
		"#####",
		"#...#",
		"#...#",
		"#...#",
		"#####",
	)
	rng := &stubRand{}
	_, _, err := PlaceEndpoints(g, 100, rng)
	require.NoError(t, err)
	// two quartile draws plus two per retry attempt
	assert.Equal(t, 2+2*endpointAttempts, rng.intCalls)
}

func TestPlaceEndpointsPicksLargestRegion(t *testing.T) {
	g := gridFrom(t,
		"########",
		"#.#....#",
		"#.#....#",
		"########",
	)
	start, end, err := PlaceEndpoints(g, 0, NewRand(7))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, start.X, 3, "start must land in the larger region")
	assert.GreaterOrEqual(t, end.X, 3, "end must land in the larger region")
}

func TestPlaceEndpointsScanOrderTieBreak(t *testing.T) {
	// equal-sized regions: the first found in scan order hosts the markers
	g := gridFrom(t,
		"#########",
		"#...#...#",
		"#########",
	)
	start, end, err := PlaceEndpoints(g, 0, NewRand(3))
	require.NoError(t, err)
	assert.LessOrEqual(t, start.X, 3)
	assert.LessOrEqual(t, end.X, 3)
}

func TestPlaceEndpointsAcceptsDistantPairImmediately(t *testing.T) {
	g := gridFrom(t,
		"############",
		"#..........#",
		"############",
	)
	rng := &stubRand{}
	start, end, err := PlaceEndpoints(g, 2, rng)
	require.NoError(t, err)
	// quartile candidates are 0 and 7 in visitation order, distance 7:
	// already past the threshold, so no retry draws happen
	assert.Equal(t, 2, rng.intCalls)
	assert.Equal(t, Coord{X: 1, Y: 1}, start)
	assert.Equal(t, Coord{X: 8, Y: 1}, end)
}

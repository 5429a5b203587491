package cave

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveClustersErasesSpeck(t *testing.T) {
	g := gridFrom(t,
		"#####",
		"#...#",
		"#.#.#",
		"#...#",
		"#####",
	)
	removed := RemoveClusters(g, 2)
	assert.Equal(t, 1, removed)
	assert.Equal(t, CellPath, g.Cells[2][2])
	assert.Equal(t, 9, countOpen(g))
}

func TestRemoveClustersKeepsClustersAtThreshold(t *testing.T) {
	g := gridFrom(t,
		"#####",
		"#...#",
		"#.#.#",
		"#...#",
		"#####",
	)
	// size 1 is not strictly below maxSize 1
	removed := RemoveClusters(g, 1)
	assert.Equal(t, 0, removed)
	assert.Equal(t, CellWall, g.Cells[2][2])
}

func TestRemoveClustersConnectsDiagonally(t *testing.T) {
	// the two wall cells touch only at a corner yet form one cluster
	g := gridFrom(t,
		"######",
		"#.#..#",
		"#..#.#",
		"######",
	)
	removed := RemoveClusters(g, 3)
	assert.Equal(t, 1, removed)
	assert.Equal(t, CellPath, g.Cells[1][2])
	assert.Equal(t, CellPath, g.Cells[2][3])
}

func TestRemoveClustersIgnoresBorder(t *testing.T) {
	g := gridFrom(t,
		"#####",
		"##..#",
		"#...#",
		"#...#",
		"#####",
	)
	// the interior wall at (1,1) touches the border but is its own
	// cluster; the border itself is never scanned or rewritten
	removed := RemoveClusters(g, 5)
	assert.Equal(t, 1, removed)
	assert.Equal(t, CellPath, g.Cells[1][1])
	for x := 0; x < 5; x++ {
		assert.Equal(t, CellWall, g.Cells[0][x])
		assert.Equal(t, CellWall, g.Cells[4][x])
	}
	for y := 0; y < 5; y++ {
		assert.Equal(t, CellWall, g.Cells[y][0])
		assert.Equal(t, CellWall, g.Cells[y][4])
	}
}

func TestRemoveClustersSolidInteriorSurvives(t *testing.T) {
	g := gridFrom(t,
		"######",
		"#....#",
		"#.##.#",
		"#.##.#",
		"#....#",
		"######",
	)
	// the 2x2 block is size 4, at the threshold it stays
	removed := RemoveClusters(g, 4)
	assert.Equal(t, 0, removed)
	assert.Equal(t, CellWall, g.Cells[2][2])

	// one step higher it goes
	removed = RemoveClusters(g, 5)
	assert.Equal(t, 1, removed)
	assert.Equal(t, CellPath, g.Cells[2][2])
	assert.Equal(t, CellPath, g.Cells[3][3])
}

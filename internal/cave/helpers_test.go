package cave

import "testing"

// gridFrom builds a grid from glyph rows, one string per row.
func gridFrom(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g, err := NewGrid(len([]rune(rows[0])), len(rows))
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	for y, row := range rows {
		for x, r := range []rune(row) {
			cell, ok := CellFromRune(r)
			if !ok {
				t.Fatalf("bad glyph %q at (%d,%d)", r, x, y)
			}
			g.Cells[y][x] = cell
		}
	}
	return g
}

// rowsOf renders a grid back to glyph rows for comparisons.
func rowsOf(g *Grid) []string {
	rows := make([]string, g.Height)
	for y := 0; y < g.Height; y++ {
		row := make([]rune, g.Width)
		for x := 0; x < g.Width; x++ {
			row[x] = g.Cells[y][x].Rune()
		}
		rows[y] = string(row)
	}
	return rows
}

// stubRand replays scripted draws. Float64 returns floats in order (cycling,
// 0 when empty); IntRange returns ints in order clamped to [lo, hi), or lo
// when the script is empty. Both count their calls.
type stubRand struct {
	floats     []float64
	ints       []int
	floatCalls int
	intCalls   int
}

func (s *stubRand) Float64() float64 {
	v := 0.0
	if len(s.floats) > 0 {
		v = s.floats[s.floatCalls%len(s.floats)]
	}
	s.floatCalls++
	return v
}

func (s *stubRand) IntRange(lo, hi int) int {
	v := lo
	if len(s.ints) > 0 {
		v = s.ints[s.intCalls%len(s.ints)]
	}
	s.intCalls++
	if v < lo {
		v = lo
	}
	if v >= hi {
		v = hi - 1
	}
	return v
}

// countOpen tallies the open cells of the whole grid.
func countOpen(g *Grid) int {
	n := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Cells[y][x].IsOpen() {
				n++
			}
		}
	}
	return n
}

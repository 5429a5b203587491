// Package mapfile persists finished cave maps as plain text, one line of
// cell glyphs per row. Lines beginning with ';' are comments.
package mapfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samdwyer/caveforge/internal/cave"
)

// Decoding failure modes.
var (
	// ErrNoRows indicates the input held no map rows at all.
	ErrNoRows = errors.New("mapfile: no map rows found")
	// ErrRaggedRows indicates rows of differing lengths.
	ErrRaggedRows = errors.New("mapfile: rows have differing lengths")
	// ErrUnknownGlyph indicates a character that maps to no cell.
	ErrUnknownGlyph = errors.New("mapfile: unknown cell glyph")
	// ErrOpenBorder indicates a map whose outermost ring is not all wall.
	ErrOpenBorder = errors.New("mapfile: border cell is not a wall")
)

// Encode writes the map to w: an identifying comment line, then one line of
// glyphs per grid row.
func Encode(w io.Writer, c *cave.Cave) error {
	if _, err := fmt.Fprintf(w, "; caveforge map %s\n", c.ID); err != nil {
		return err
	}
	return EncodeGrid(w, c.Grid)
}

// EncodeGrid writes just the grid rows, without a header.
func EncodeGrid(w io.Writer, g *cave.Grid) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			bw.WriteRune(g.Cells[y][x].Rune())
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Decode reads a grid back from r, skipping comment and blank lines. The
// rows must be rectangular, at least 3x3, built solely from known glyphs,
// and walled along the whole border.
func Decode(r io.Reader) (*cave.Grid, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	width := len([]rune(rows[0]))
	g, err := cave.NewGrid(width, len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRows, y, len(runes), width)
		}
		for x, r := range runes {
			cell, ok := cave.CellFromRune(r)
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownGlyph, r, x, y)
			}
			onBorder := x == 0 || x == width-1 || y == 0 || y == len(rows)-1
			if onBorder && cell != cave.CellWall {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrOpenBorder, r, x, y)
			}
			g.Cells[y][x] = cell
		}
	}
	return g, nil
}

// Save writes the map to a file, creating or truncating it.
func Save(path string, c *cave.Cave) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads a grid from a file written by Save.
func Load(path string) (*cave.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

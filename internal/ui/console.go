package ui

import (
	"fmt"
	"strings"

	"github.com/gookit/color"

	"github.com/samdwyer/caveforge/internal/cave"
)

var (
	consoleWall  = color.Style{color.FgGray}
	consolePath  = color.Style{color.FgWhite}
	consoleStart = color.Style{color.FgGreen, color.OpBold}
	consoleEnd   = color.Style{color.FgRed, color.OpBold}
)

// PrintCave writes a colored rendition of the map to stdout, for quick
// inspection without entering the full-screen preview. gookit/color
// downgrades to plain text when stdout is not a color terminal.
func PrintCave(c *cave.Cave) {
	for y := 0; y < c.Grid.Height; y++ {
		var b strings.Builder
		for x := 0; x < c.Grid.Width; x++ {
			cell := c.Grid.At(x, y)
			b.WriteString(consoleStyle(cell).Sprint(string(cell.Rune())))
		}
		fmt.Println(b.String())
	}
}

func consoleStyle(c cave.Cell) color.Style {
	switch c {
	case cave.CellWall:
		return consoleWall
	case cave.CellStart:
		return consoleStart
	case cave.CellEnd:
		return consoleEnd
	default:
		return consolePath
	}
}

package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/caveforge/internal/cave"
)

// Preview opens a full-screen rendition of the map and blocks until the
// user presses Escape, 'q' or Ctrl-C. Resize events trigger a redraw.
func Preview(c *cave.Cave) error {
	screen, err := NewScreen()
	if err != nil {
		return err
	}
	defer screen.Close()

	for {
		draw(screen, c)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
				return nil
			case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
				return nil
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

// draw paints the grid and a one-line status bar underneath it.
func draw(screen *Screen, c *cave.Cave) {
	screen.Clear()

	for y := 0; y < c.Grid.Height; y++ {
		for x := 0; x < c.Grid.Width; x++ {
			cell := c.Grid.At(x, y)
			screen.SetContent(x, y, cell.Rune(), cellStyle(cell))
		}
	}

	status := fmt.Sprintf("map %s  %dx%d  q to quit", c.ID, c.Grid.Width, c.Grid.Height)
	if c.HasEndpoints {
		status = fmt.Sprintf("map %s  %dx%d  S(%d,%d) E(%d,%d)  q to quit",
			c.ID, c.Grid.Width, c.Grid.Height, c.Start.X, c.Start.Y, c.End.X, c.End.Y)
	}
	barStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range status {
		screen.SetContent(i, c.Grid.Height, ch, barStyle)
	}

	screen.Show()
}

// cellStyle returns the style for a cell type.
func cellStyle(c cave.Cell) tcell.Style {
	switch c {
	case cave.CellWall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case cave.CellPath:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	case cave.CellStart:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	case cave.CellEnd:
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	default:
		return tcell.StyleDefault
	}
}

package render

import "github.com/gdamore/tcell/v2"

// TcellToRGB converts tcell.Color to RGB
// Treats ColorDefault as black
func TcellToRGB(c tcell.Color) RGB {
	if c == tcell.ColorDefault {
		return RGBBlack
	}
	r, g, b := c.RGB()
	return RGB{uint8(r), uint8(g), uint8(b)}
}

// RGBToTcell converts RGB to tcell.Color
func RGBToTcell(rgb RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// StyleForCell builds the tcell style of a composed cell
func StyleForCell(c Cell) tcell.Style {
	return tcell.StyleDefault.Foreground(RGBToTcell(c.Fg)).Background(RGBToTcell(c.Bg))
}

// Flush copies the composed frame to the screen, Show is left to the caller
// Cells beyond the screen size are clipped by tcell
func (b *CellBuffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, cell := range row {
			r := cell.Rune
			if r == 0 {
				r = GlyphEmpty
			}
			screen.SetContent(x, y, r, nil, StyleForCell(cell))
		}
	}
}

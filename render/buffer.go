package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"quizdeck/terminal"
)

// Cell is one screen position in the frame buffer
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Buffer is the off-screen frame composed by renderers each frame and
// flushed to the terminal once complete
type Buffer struct {
	width  int
	height int
	cells  []Cell
}

// NewBuffer creates a buffer with the given dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Size returns buffer dimensions
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Resize reallocates the buffer
func (b *Buffer) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	b.width = width
	b.height = height
	b.cells = make([]Cell, width*height)
	b.Clear()
}

// Clear resets every cell to a blank with default style
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Cell{Rune: ' ', Style: tcell.StyleDefault}
	}
}

// Set writes a single cell, clipping out-of-bounds writes
func (b *Buffer) Set(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// Get returns the cell at a position, zero Cell when out of bounds
func (b *Buffer) Get(x, y int) Cell {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// SetString writes a string starting at x,y, advancing by rune display
// width so wide glyphs (CJK, emoji) occupy their full footprint.
// Returns the x position after the last written rune.
func (b *Buffer) SetString(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		b.Set(x, y, r, style)
		// Blank the shadowed cell under a wide rune
		for i := 1; i < w; i++ {
			b.Set(x+i, y, ' ', style)
		}
		x += w
	}
	return x
}

// Fill paints a rectangle with one rune and style
func (b *Buffer) Fill(x, y, w, h int, r rune, style tcell.Style) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			b.Set(x+dx, y+dy, r, style)
		}
	}
}

// FlushToTerminal pushes the frame to the terminal and shows it
func (b *Buffer) FlushToTerminal(term terminal.Terminal) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			term.SetContent(x, y, c.Rune, c.Style)
		}
	}
	term.Show()
}

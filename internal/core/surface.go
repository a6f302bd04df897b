package core

import (
	"strings"
)

// Cell is a single character cell on a Surface.
type Cell struct {
	Rune  rune
	Color Color
}

// Surface is a 2D cell buffer that states draw onto each tick.
// It decouples drawing from the terminal: states work with simple rune
// operations while the platform layer handles actual presentation.
type Surface struct {
	width  int
	height int
	cells  [][]Cell
}

// NewSurface creates a surface with the given dimensions, cleared to spaces.
func NewSurface(width, height int) *Surface {
	s := &Surface{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Surface) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the surface width in characters.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the surface height in characters.
func (s *Surface) Height() int {
	return s.height
}

// Resize changes the surface dimensions, preserving content where possible.
func (s *Surface) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	// Copy old content
	copyW := Min(oldW, width)
	copyH := Min(oldH, height)
	for y := 0; y < copyH; y++ {
		for x := 0; x < copyW; x++ {
			s.cells[y][x] = oldCells[y][x]
		}
	}
}

// Clear fills the entire surface with default-colored spaces.
func (s *Surface) Clear() {
	s.Fill(' ', ColorDefault)
}

// Fill fills the entire surface with the given rune and color.
// Filling with a space and the background color is how a frame starts.
func (s *Surface) Fill(r rune, c Color) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: r, Color: c}
		}
	}
}

// Set places a rune with the default color at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Surface) Set(x, y int, r rune) {
	s.SetCell(x, y, Cell{Rune: r, Color: ColorDefault})
}

// SetCell places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Surface) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Surface) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
// Returns a default-colored space for out-of-bounds coordinates.
func (s *Surface) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' ', Color: ColorDefault}
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond surface bounds are clipped.
func (s *Surface) DrawText(x, y int, text string, c Color) {
	for i, r := range []rune(text) {
		s.SetCell(x+i, y, Cell{Rune: r, Color: c})
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Surface) DrawTextCentered(y int, text string, c Color) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text, c)
}

// DrawRect fills a rectangular area with the given rune and color.
func (s *Surface) DrawRect(r Rect, fill rune, c Color) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			s.SetCell(x, y, Cell{Rune: fill, Color: c})
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Surface) DrawBox(r Rect, c Color) {
	// Corners
	s.SetCell(r.X, r.Y, Cell{Rune: '┌', Color: c})
	s.SetCell(r.Right()-1, r.Y, Cell{Rune: '┐', Color: c})
	s.SetCell(r.X, r.Bottom()-1, Cell{Rune: '└', Color: c})
	s.SetCell(r.Right()-1, r.Bottom()-1, Cell{Rune: '┘', Color: c})

	// Horizontal edges
	for x := r.X + 1; x < r.Right()-1; x++ {
		s.SetCell(x, r.Y, Cell{Rune: '─', Color: c})
		s.SetCell(x, r.Bottom()-1, Cell{Rune: '─', Color: c})
	}

	// Vertical edges
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.SetCell(r.X, y, Cell{Rune: '│', Color: c})
		s.SetCell(r.Right()-1, y, Cell{Rune: '│', Color: c})
	}
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Surface) DrawHLine(x, y, length int, r rune, c Color) {
	for i := 0; i < length; i++ {
		s.SetCell(x+i, y, Cell{Rune: r, Color: c})
	}
}

// DrawVLine draws a vertical line from (x, y) with the given length.
func (s *Surface) DrawVLine(x, y, length int, r rune, c Color) {
	for i := 0; i < length; i++ {
		s.SetCell(x, y+i, Cell{Rune: r, Color: c})
	}
}

// String converts the surface to a plain string, ignoring colors.
// Each row is joined with newlines. Mainly useful in tests.
func (s *Surface) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns a copy of the specified row as a plain string.
func (s *Surface) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x := 0; x < s.width; x++ {
		runes[x] = s.cells[y][x].Rune
	}
	return string(runes)
}

package sprite

import (
	"fmt"
	"strings"

	"github.com/Starman12976/termarcade/internal/core"
)

// Frame is a single sprite image: a fixed-size rune grid where spaces
// are transparent.
type Frame struct {
	w    int
	h    int
	rows [][]rune
}

// NewFrame builds a frame from text rows. All rows must be equal width.
func NewFrame(data string) (*Frame, error) {
	rows, err := gridRows(data)
	if err != nil {
		return nil, err
	}
	return &Frame{w: len(rows[0]), h: len(rows), rows: rows}, nil
}

// Width returns the frame width in characters.
func (f *Frame) Width() int {
	return f.w
}

// Height returns the frame height in characters.
func (f *Frame) Height() int {
	return f.h
}

// Bounds returns the frame's rectangle positioned at (x, y).
func (f *Frame) Bounds(x, y int) core.Rect {
	return core.NewRect(x, y, f.w, f.h)
}

// At returns the rune at (x, y), or space when out of bounds.
func (f *Frame) At(x, y int) rune {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return ' '
	}
	return f.rows[y][x]
}

// Opaque reports whether the cell at (x, y) is part of the sprite.
func (f *Frame) Opaque(x, y int) bool {
	return f.At(x, y) != ' '
}

// Scale returns a new frame enlarged by integer factors sx and sy.
// Factors below one are rejected: a sprite scaled to zero size can
// never collide or draw, which is always a caller bug.
func (f *Frame) Scale(sx, sy int) (*Frame, error) {
	if sx < 1 || sy < 1 {
		return nil, fmt.Errorf("sprite: scale factors must be at least 1, got %dx%d", sx, sy)
	}
	if sx == 1 && sy == 1 {
		return f.clone(), nil
	}

	rows := make([][]rune, f.h*sy)
	for y := range rows {
		rows[y] = make([]rune, f.w*sx)
		for x := range rows[y] {
			rows[y][x] = f.rows[y/sy][x/sx]
		}
	}
	return &Frame{w: f.w * sx, h: f.h * sy, rows: rows}, nil
}

// Draw blits the frame onto the surface at (x, y) in the given color.
// Transparent cells leave the surface untouched; opaque cells that fall
// outside the surface are clipped.
func (f *Frame) Draw(dst *core.Surface, x, y int, c core.Color) {
	for fy := 0; fy < f.h; fy++ {
		for fx := 0; fx < f.w; fx++ {
			r := f.rows[fy][fx]
			if r == ' ' {
				continue
			}
			dst.SetCell(x+fx, y+fy, core.Cell{Rune: r, Color: c})
		}
	}
}

// Mask returns the frame's collision mask: one bit per opaque cell.
func (f *Frame) Mask() *Mask {
	bits := make([][]bool, f.h)
	for y := range bits {
		bits[y] = make([]bool, f.w)
		for x := range bits[y] {
			bits[y][x] = f.rows[y][x] != ' '
		}
	}
	return &Mask{w: f.w, h: f.h, bits: bits}
}

// String renders the frame as plain text, mainly for tests and logs.
func (f *Frame) String() string {
	var sb strings.Builder
	for y, row := range f.rows {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(string(row))
	}
	return sb.String()
}

func (f *Frame) clone() *Frame {
	rows := make([][]rune, f.h)
	for y := range rows {
		rows[y] = make([]rune, f.w)
		copy(rows[y], f.rows[y])
	}
	return &Frame{w: f.w, h: f.h, rows: rows}
}

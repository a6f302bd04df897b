package sprite

import (
	"github.com/Starman12976/termarcade/internal/core"
)

// Mask is a per-cell collision bitmap derived from a frame. Two sprites
// collide only where opaque cells actually meet, so irregular shapes
// don't collide on their empty corners.
type Mask struct {
	w    int
	h    int
	bits [][]bool
}

// Width returns the mask width in cells.
func (m *Mask) Width() int {
	return m.w
}

// Height returns the mask height in cells.
func (m *Mask) Height() int {
	return m.h
}

// At reports whether the cell at (x, y) is set. Out of bounds is unset.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return false
	}
	return m.bits[y][x]
}

// Count returns the number of set cells.
func (m *Mask) Count() int {
	n := 0
	for _, row := range m.bits {
		for _, b := range row {
			if b {
				n++
			}
		}
	}
	return n
}

// Overlap reports whether any set cell of m coincides with a set cell
// of other when other is offset by (dx, dy) relative to m.
func (m *Mask) Overlap(other *Mask, dx, dy int) bool {
	_, _, ok := m.OverlapPoint(other, dx, dy)
	return ok
}

// OverlapPoint returns the first overlapping cell in m's coordinates,
// scanning row-major. The third return value is false when the masks
// do not overlap.
func (m *Mask) OverlapPoint(other *Mask, dx, dy int) (int, int, bool) {
	mine := core.NewRect(0, 0, m.w, m.h)
	theirs := core.NewRect(dx, dy, other.w, other.h)

	region, ok := mine.Intersection(theirs)
	if !ok {
		return 0, 0, false
	}

	for y := region.Y; y < region.Bottom(); y++ {
		for x := region.X; x < region.Right(); x++ {
			if m.bits[y][x] && other.bits[y-dy][x-dx] {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

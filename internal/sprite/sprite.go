// Package sprite provides text sprite sheets for states to draw with.
// Sheets are plain rune grids sliced into fixed-size named frames, the
// terminal equivalent of an image atlas. Space cells are transparent.
package sprite

import (
	"fmt"
	"strings"
)

// Sheet is a parsed sprite sheet: a collection of equally sized frames
// addressed by name.
type Sheet struct {
	frameW int
	frameH int
	frames map[string]*Frame
	order  []string
}

// ParseSheet slices a rune grid into frameW x frameH frames, row-major,
// and assigns them the given names in order.
//
// The grid dimensions must divide evenly by the frame size, the name
// count must match the frame count, and names must be unique.
func ParseSheet(data string, frameW, frameH int, names []string) (*Sheet, error) {
	if frameW <= 0 || frameH <= 0 {
		return nil, fmt.Errorf("sprite: frame size must be positive, got %dx%d", frameW, frameH)
	}

	rows, err := gridRows(data)
	if err != nil {
		return nil, err
	}

	sheetH := len(rows)
	sheetW := len(rows[0])
	if sheetW%frameW != 0 {
		return nil, fmt.Errorf("sprite: sheet width %d not divisible by frame width %d", sheetW, frameW)
	}
	if sheetH%frameH != 0 {
		return nil, fmt.Errorf("sprite: sheet height %d not divisible by frame height %d", sheetH, frameH)
	}

	cols := sheetW / frameW
	count := cols * (sheetH / frameH)
	if len(names) != count {
		return nil, fmt.Errorf("sprite: sheet holds %d frames but %d names given", count, len(names))
	}

	s := &Sheet{
		frameW: frameW,
		frameH: frameH,
		frames: make(map[string]*Frame, count),
		order:  make([]string, 0, count),
	}

	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("sprite: frame %d has an empty name", i)
		}
		if _, dup := s.frames[name]; dup {
			return nil, fmt.Errorf("sprite: duplicate frame name %q", name)
		}

		fx := (i % cols) * frameW
		fy := (i / cols) * frameH
		s.frames[name] = sliceFrame(rows, fx, fy, frameW, frameH)
		s.order = append(s.order, name)
	}

	return s, nil
}

// gridRows normalizes raw sheet text into a rectangular rune grid.
func gridRows(data string) ([][]rune, error) {
	trimmed := strings.Trim(data, "\n")
	if trimmed == "" {
		return nil, fmt.Errorf("sprite: empty sheet")
	}

	lines := strings.Split(trimmed, "\n")
	rows := make([][]rune, len(lines))
	width := -1
	for i, line := range lines {
		rows[i] = []rune(line)
		if width == -1 {
			width = len(rows[i])
		} else if len(rows[i]) != width {
			return nil, fmt.Errorf("sprite: ragged sheet, row %d is %d wide but row 0 is %d", i, len(rows[i]), width)
		}
	}
	if width == 0 {
		return nil, fmt.Errorf("sprite: empty sheet")
	}
	return rows, nil
}

// sliceFrame copies a frameW x frameH region out of the sheet grid.
func sliceFrame(rows [][]rune, fx, fy, frameW, frameH int) *Frame {
	cells := make([][]rune, frameH)
	for y := 0; y < frameH; y++ {
		cells[y] = make([]rune, frameW)
		copy(cells[y], rows[fy+y][fx:fx+frameW])
	}
	return &Frame{w: frameW, h: frameH, rows: cells}
}

// Frame returns the named frame.
func (s *Sheet) Frame(name string) (*Frame, bool) {
	f, ok := s.frames[name]
	return f, ok
}

// Names returns the frame names in declaration order.
func (s *Sheet) Names() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// FrameSize returns the width and height every frame shares.
func (s *Sheet) FrameSize() (int, int) {
	return s.frameW, s.frameH
}

// Len returns the number of frames in the sheet.
func (s *Sheet) Len() int {
	return len(s.frames)
}

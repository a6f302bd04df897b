package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/Starman12976/termarcade/internal/core"
)

func TestRenderSurfacePlain(t *testing.T) {
	s := core.NewSurface(5, 2)
	s.DrawText(0, 0, "hello", core.ColorDefault)
	s.DrawText(0, 1, "there", core.ColorDefault)

	got := RenderSurface(s)
	want := "hello\nthere"
	if got != want {
		t.Errorf("RenderSurface() = %q, want %q", got, want)
	}
}

func TestRenderSurfaceColoredKeepsShape(t *testing.T) {
	s := core.NewSurface(8, 3)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd", core.ColorGreen)
	s.DrawText(0, 2, "tail", core.ColorBrightYellow)

	lines := strings.Split(RenderSurface(s), "\n")
	if len(lines) != 3 {
		t.Fatalf("line count = %d, want 3", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 8 {
			t.Errorf("line %d visible width = %d, want 8", i, w)
		}
	}
}

func TestRenderSurfaceUnknownColorFallsBack(t *testing.T) {
	s := core.NewSurface(3, 1)
	s.SetCell(0, 0, core.Cell{Rune: 'x', Color: core.Color(99)})
	s.SetCell(1, 0, core.Cell{Rune: 'y', Color: core.Color(99)})
	s.SetCell(2, 0, core.Cell{Rune: 'z', Color: core.ColorDefault})

	got := RenderSurface(s)
	if lipgloss.Width(got) != 3 {
		t.Errorf("visible width = %d, want 3", lipgloss.Width(got))
	}
	if !strings.Contains(got, "xy") {
		t.Errorf("RenderSurface() = %q, want the unknown-color run rendered", got)
	}
}

package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-dots/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "Squares 1/4")
	s.DrawTextColored(2, 1, "●─●", core.ColorBrightYellow)
	s.SetColored(11, 2, '░', core.ColorGray)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, expected 3", len(lines))
	}

	// Styles may add escape codes, the visible text must stay the same.
	want := []string{"Squares 1/4 ", "  ●─●       ", "           ░"}
	for i, line := range lines {
		if got := ansi.Strip(line); got != want[i] {
			t.Errorf("line %d = %q, expected %q", i, got, want[i])
		}
	}
}

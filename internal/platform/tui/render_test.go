package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestRenderScreenPlainMatchesString(t *testing.T) {
	s := core.NewScreen(6, 3)
	s.DrawText(1, 1, "jump")

	if got := RenderScreen(s); got != s.String() {
		t.Errorf("RenderScreen() = %q, expected %q", got, s.String())
	}
}

func TestRenderScreenKeepsColoredText(t *testing.T) {
	s := core.NewScreen(10, 2)
	var d core.DrawList
	d.Text(0, 2, "HI", core.ColorGreen)
	d.Text(1, 0, "~~~", core.ColorRed)
	s.Apply(d)

	out := RenderScreen(s)
	if !strings.Contains(out, "HI") || !strings.Contains(out, "~~~") {
		t.Errorf("coloured runs lost:\n%s", out)
	}
	if n := strings.Count(out, "\n"); n != 1 {
		t.Errorf("expected 2 lines, got %d newlines", n)
	}
}

package platformer

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestDumpLevel(t *testing.T) {
	lvl := BuildLevel(1, 24, 80, testRNG())

	dump, err := DumpLevel(lvl)
	if err != nil {
		t.Fatalf("DumpLevel: %v", err)
	}

	for _, want := range []string{
		"level: 1",
		"surface: 80x24",
		"player: {x: 5, y: 19, w: 3, h: 2}",
		"- {x: 0, y: 22, w: 80, h: 1}",
		"- {type: basic, x: 12, y: 17, vx: 0.5, min_x: 10, max_x: 25}",
	} {
		if !strings.Contains(dump, want) {
			t.Errorf("dump missing %q:\n%s", want, dump)
		}
	}
	if strings.Contains(dump, "lava:") {
		t.Errorf("empty hazard lists should be omitted:\n%s", dump)
	}
}

func TestDrawPreviewClipsToSurface(t *testing.T) {
	lvl := BuildLevel(4, 24, 80, testRNG())
	const w, h = 20, 6

	d := DrawPreview(lvl, w, h)
	scr := core.NewScreen(w, h)
	scr.Apply(d)

	for _, g := range d {
		if g.Row == h-1 {
			continue
		}
		if g.Row >= h-2 {
			t.Fatalf("dump glyph on row %d, want rows below %d", g.Row, h-2)
		}
		if g.Col >= w {
			t.Fatalf("dump glyph at col %d, want below %d", g.Col, w)
		}
	}

	if got := scr.Row(0); !strings.HasPrefix(got, "level: 4") {
		t.Errorf("first row = %q", got)
	}
	if got := scr.Row(h - 1); got != PreviewFooter[:w] {
		t.Errorf("footer row = %q", got)
	}
}

package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(20, 5)

	if s.Width() != 20 || s.Height() != 5 {
		t.Fatalf("size = %dx%d, expected 20x5", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenOutOfBoundsIsDropped(t *testing.T) {
	s := NewScreen(10, 4)

	s.Set(-1, 0, 'A')
	s.Set(10, 0, 'A')
	s.SetColored(0, -1, 'A', ColorRed)
	s.SetColored(0, 4, 'A', ColorRed)

	if strings.ContainsRune(s.String(), 'A') {
		t.Error("out-of-bounds writes should be dropped")
	}
	if s.Get(-5, -5) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 2)
	s.SetColored(3, 1, '~', ColorRed)

	c := s.GetCell(3, 1)
	if c.Rune != '~' || c.Color != ColorRed {
		t.Errorf("GetCell = %+v, expected red ~", c)
	}

	s.Clear()
	if s.GetCell(3, 1) != blankCell {
		t.Error("Clear should reset colour and rune")
	}
}

func TestScreenDrawTextUnicode(t *testing.T) {
	s := NewScreen(12, 1)
	s.DrawText(0, 0, "Lives: ♡ ♥")

	if s.Get(7, 0) != '♡' || s.Get(9, 0) != '♥' {
		t.Errorf("row = %q, hearts misplaced", s.Row(0))
	}
}

func TestScreenApplyDrawList(t *testing.T) {
	s := NewScreen(6, 3)

	var list DrawList
	list.Run(2, 0, 10, '█', ColorDefault)
	list.Put(0, 1, 'P', ColorYellow)
	list.Put(5, 5, 'X', ColorDefault)

	s.Apply(list)

	if s.Row(2) != "██████" {
		t.Errorf("row 2 = %q, expected platform clipped to width", s.Row(2))
	}
	if c := s.GetCell(1, 0); c.Rune != 'P' || c.Color != ColorYellow {
		t.Errorf("cell (1,0) = %+v, expected yellow P", c)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "de")

	if got := s.String(); got != "abc\nde " {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(4, 2)
	if s.Row(0) != "Hell" {
		t.Errorf("row 0 after shrink = %q", s.Row(0))
	}

	s.Resize(8, 3)
	if !strings.HasPrefix(s.Row(0), "Hell") {
		t.Errorf("row 0 after grow = %q", s.Row(0))
	}
	if s.Row(-1) != strings.Repeat(" ", 8) {
		t.Error("out-of-range row should be blank")
	}
}

package core

import "testing"

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	f.Set(ActionNone)
	f.Set(ActionResume)
	f.Set(ActionPause)

	want := []Action{ActionPause, ActionResume, ActionPause}
	if len(f.Actions) != len(want) {
		t.Fatalf("len = %d, expected %d", len(f.Actions), len(want))
	}
	for i, a := range want {
		if f.Actions[i] != a {
			t.Errorf("Actions[%d] = %s, expected %s", i, f.Actions[i], a)
		}
	}
}

func TestInputFrameHasAndAny(t *testing.T) {
	f := NewInputFrame()
	if f.Any() {
		t.Error("empty frame should report no keys")
	}

	f.Set(ActionJump)
	if !f.Has(ActionJump) || f.Has(ActionLeft) {
		t.Error("Has should only report received actions")
	}
	if !f.Any() {
		t.Error("frame with a key should report Any")
	}

	f.Clear()
	if f.Any() {
		t.Error("Clear should empty the frame")
	}
}

func TestActionString(t *testing.T) {
	if ActionReload.String() != "Reload" {
		t.Errorf("ActionReload.String() = %q", ActionReload.String())
	}
	if Action(999).String() != "Unknown" {
		t.Error("unknown action should stringify as Unknown")
	}
}

func TestDrawListAt(t *testing.T) {
	var d DrawList
	d.Fill(NewRect(1, 1, 2, 2), 'H', ColorYellow)
	d.Put(1, 1, 'P', ColorDefault)

	g, ok := d.At(1, 1)
	if !ok || g.Rune != 'P' {
		t.Errorf("At(1,1) = %+v, %v; expected later glyph P", g, ok)
	}
	if _, ok := d.At(0, 0); ok {
		t.Error("At on an empty cell should report false")
	}
	if len(d) != 5 {
		t.Errorf("len = %d, expected 5", len(d))
	}
}

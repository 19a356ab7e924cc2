package tui

import (
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapActions(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"ctrl+a", tea.KeyMsg{Type: tea.KeyCtrlA}, core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"ctrl+d", tea.KeyMsg{Type: tea.KeyCtrlD}, core.ActionRight},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"ctrl+w", tea.KeyMsg{Type: tea.KeyCtrlW}, core.ActionJump},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionPause},
		{"ctrl+z", tea.KeyMsg{Type: tea.KeyCtrlZ}, core.ActionResume},
		{"ctrl+p", tea.KeyMsg{Type: tea.KeyCtrlP}, core.ActionReload},
		{"ctrl+b", tea.KeyMsg{Type: tea.KeyCtrlB}, core.ActionReset},
		{"ctrl+r", tea.KeyMsg{Type: tea.KeyCtrlR}, core.ActionRun},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"q", runeKey('q'), core.ActionQuit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := keys.Actions(tc.msg)
			if !slices.Contains(got, tc.expected) {
				t.Errorf("Actions(%s) = %v, missing %v", tc.name, got, tc.expected)
			}
			if got[len(got)-1] != core.ActionAnyKey {
				t.Errorf("Actions(%s) should end with AnyKey, got %v", tc.name, got)
			}
		})
	}
}

func TestKeyMapUnboundKeyIsAnyKey(t *testing.T) {
	got := DefaultKeyMap().Actions(runeKey('x'))
	if len(got) != 1 || got[0] != core.ActionAnyKey {
		t.Errorf("Actions(x) = %v, expected only AnyKey", got)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{runeKey('q'), MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, MenuActionQuit},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEscape}, MenuActionBack},
		{runeKey('x'), MenuActionNone},
	}

	for _, tc := range tests {
		if got := MapKeyToMenuAction(tc.msg); got != tc.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %d, expected %d", tc.msg.String(), got, tc.expected)
		}
	}
}

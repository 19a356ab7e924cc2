package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// KeyMap binds terminal keys to game actions. Control chords and plain
// letters are both accepted, since some terminals swallow certain chords.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Jump       key.Binding
	Up         key.Binding
	Down       key.Binding
	Pause      key.Binding
	Resume     key.Binding
	Reload     key.Binding
	Reset      key.Binding
	Run        key.Binding
	Confirm    key.Binding
	Forfeit    key.Binding
	Back       key.Binding
	Screenshot key.Binding
	Exit       key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("ctrl+a", "a", "left"),
			key.WithHelp("ctrl+a/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("ctrl+d", "d", "right"),
			key.WithHelp("ctrl+d/→", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys("ctrl+w", "w", " "),
			key.WithHelp("ctrl+w/space", "jump"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Pause: key.NewBinding(
			key.WithKeys("ctrl+s", "p"),
			key.WithHelp("ctrl+s", "pause"),
		),
		Resume: key.NewBinding(
			key.WithKeys("ctrl+z", "c"),
			key.WithHelp("ctrl+z", "continue"),
		),
		Reload: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "reload level"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "reset game"),
		),
		Run: key.NewBinding(
			key.WithKeys("ctrl+r", "r"),
			key.WithHelp("ctrl+r", "run level"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "collect"),
		),
		Forfeit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit duel"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "screenshot"),
		),
		Exit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Pause, k.Resume, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.Pause, k.Resume, k.Reload, k.Reset, k.Run},
		{k.Up, k.Down, k.Confirm, k.Forfeit},
		{k.Screenshot, k.Back, k.Exit},
	}
}

// Actions decodes a key press. Every key also yields ActionAnyKey, which
// dismisses the acknowledgment screens.
func (k KeyMap) Actions(msg tea.KeyMsg) []core.Action {
	bindings := []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Jump, core.ActionJump},
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Pause, core.ActionPause},
		{k.Resume, core.ActionResume},
		{k.Reload, core.ActionReload},
		{k.Reset, core.ActionReset},
		{k.Run, core.ActionRun},
		{k.Confirm, core.ActionConfirm},
		{k.Forfeit, core.ActionQuit},
		{k.Back, core.ActionBack},
	}

	var actions []core.Action
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			actions = append(actions, b.action)
		}
	}
	return append(actions, core.ActionAnyKey)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}

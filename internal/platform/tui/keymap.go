package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cplxtris/internal/core"
)

// GameKeyMap defines the key bindings used while a game is running.
type GameKeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Down     key.Binding
	Rotate   key.Binding
	HardDrop key.Binding
	Slot1    key.Binding
	Slot2    key.Binding
	Slot3    key.Binding
	Slot4    key.Binding
	Pause    key.Binding
	Restart  key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Rotate, k.HardDrop, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Down, k.Rotate, k.HardDrop},
		{k.Slot1, k.Slot2, k.Slot3, k.Slot4},
		{k.Pause, k.Restart, k.Back, k.Quit},
	}
}

// DefaultGameKeyMap returns the default game bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "soft drop"),
		),
		Rotate: key.NewBinding(
			key.WithKeys("up", "w", " ", "space"),
			key.WithHelp("↑/space", "rotate"),
		),
		HardDrop: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "hard drop"),
		),
		Slot1: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "i·z")),
		Slot2: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "z²")),
		Slot3: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "eᶻ")),
		Slot4: key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "1/z")),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct {
	keys     GameKeyMap
	bindings []actionBinding
}

type actionBinding struct {
	binding key.Binding
	action  core.Action
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return NewKeyMapperWith(DefaultGameKeyMap())
}

// NewKeyMapperWith creates a key mapper for custom bindings.
func NewKeyMapperWith(k GameKeyMap) *KeyMapper {
	return &KeyMapper{
		keys: k,
		bindings: []actionBinding{
			{k.Quit, core.ActionQuit},
			{k.Back, core.ActionBack},
			{k.Left, core.ActionLeft},
			{k.Right, core.ActionRight},
			{k.Down, core.ActionDown},
			{k.Rotate, core.ActionRotate},
			{k.HardDrop, core.ActionHardDrop},
			{k.Slot1, core.ActionSlot1},
			{k.Slot2, core.ActionSlot2},
			{k.Slot3, core.ActionSlot3},
			{k.Slot4, core.ActionSlot4},
			{k.Pause, core.ActionPause},
			{k.Restart, core.ActionRestart},
		},
	}
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for _, b := range km.bindings {
		if key.Matches(msg, b.binding) {
			return b.action, b.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame appends the action for msg to frame.
// Quit and back are reported instead of queued.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) (quit, back bool) {
	action, isQuit := km.MapKey(msg)
	switch action {
	case core.ActionNone:
	case core.ActionBack:
		back = true
	case core.ActionQuit:
	default:
		frame.Set(action)
	}
	return isQuit, back
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionScoreboard
	MenuActionVisualizer
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ", "space":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "v":
		return MenuActionVisualizer
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}

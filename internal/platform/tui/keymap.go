package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/presents/internal/core"
)

// DefaultHoldFrames is how long a movement key stays held after its last
// key event. Terminals report presses and auto-repeats but never releases,
// so the window must outlast the initial auto-repeat delay (~500ms).
const DefaultHoldFrames = 30

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Jump    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.Pause, k.Restart},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w", "k"),
			key.WithHelp("space/↑", "jump"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "play again"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Left):
		return core.ActionLeft, false
	case key.Matches(msg, k.Right):
		return core.ActionRight, false
	case key.Matches(msg, k.Jump):
		return core.ActionJump, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// HeldInput turns discrete key events into per-tick held state.
// Movement and jump stay active for a window of ticks after their last key
// event; pause and restart fire on exactly one tick.
type HeldInput struct {
	hold    int
	tick    int
	last    map[core.Action]int // Tick of the last key event per held action
	pending core.InputFrame     // One-shot actions for the next tick
}

// NewHeldInput creates a tracker with the given hold window in ticks.
func NewHeldInput(holdFrames int) *HeldInput {
	if holdFrames <= 0 {
		holdFrames = DefaultHoldFrames
	}
	return &HeldInput{
		hold:    holdFrames,
		last:    make(map[core.Action]int),
		pending: core.NewInputFrame(),
	}
}

// Press records a key event for action.
func (h *HeldInput) Press(a core.Action) {
	switch a {
	case core.ActionNone, core.ActionQuit:
		return
	case core.ActionLeft:
		// Reversing direction releases the other key immediately
		delete(h.last, core.ActionRight)
		h.last[a] = h.tick
	case core.ActionRight:
		delete(h.last, core.ActionLeft)
		h.last[a] = h.tick
	case core.ActionJump:
		h.last[a] = h.tick
	default:
		h.pending.Set(a)
	}
}

// Next returns the input for the current tick and advances to the next one.
func (h *HeldInput) Next() core.InputFrame {
	frame := h.pending.Clone()
	h.pending.Clear()

	for a, t := range h.last {
		if h.tick-t < h.hold {
			frame.Set(a)
		} else {
			delete(h.last, a)
		}
	}

	h.tick++
	return frame
}

// Release drops every held action, e.g. when the game is paused.
func (h *HeldInput) Release() {
	clear(h.last)
}

// Poll adapts HeldInput to an input source driven by the caller's clock.
func (h *HeldInput) Poll() (core.InputFrame, bool) {
	return h.Next(), false
}

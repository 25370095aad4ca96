package core

import "fmt"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Move left (dodger player, horizontal pong paddles)
	ActionRight        // Move right
	ActionUp           // Move up (vertical pong paddles)
	ActionDown         // Move down
	ActionFlap         // Flappy launch
	ActionQuit         // Escape, window close - ends the loop
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionFlap:
		return "Flap"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PlayerID identifies a local player sharing the keyboard.
type PlayerID int

const (
	Player1 PlayerID = iota + 1
	Player2
	Player3
	Player4
)

// String returns "P1".."P4".
func (p PlayerID) String() string {
	return fmt.Sprintf("P%d", int(p))
}

// Binding maps a named physical key to a player action.
// Key names follow Bubble Tea's key strings ("left", "up", " ", "esc", "w");
// the windowed frontend translates them to its own key codes.
type Binding struct {
	Key    string
	Player PlayerID
	Action Action
}

// KeyEscape is the key name bound to ActionQuit in every game.
const KeyEscape = "esc"

// QuitBinding is the escape-to-quit binding shared by all games.
var QuitBinding = Binding{Key: KeyEscape, Player: Player1, Action: ActionQuit}

// InputFrame is the set of actions held by one player during a tick.
// Held actions repeat every tick until released.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// MultiInputFrame contains the held-key snapshot of all local players for a tick.
type MultiInputFrame struct {
	// ByPlayer maps player IDs to their input frames.
	ByPlayer map[PlayerID]InputFrame
}

// NewMultiInputFrame creates an empty multi-input frame.
func NewMultiInputFrame() MultiInputFrame {
	return MultiInputFrame{
		ByPlayer: make(map[PlayerID]InputFrame),
	}
}

// Player returns the input frame for a specific player.
// Returns an empty frame if player has no input.
func (m MultiInputFrame) Player(id PlayerID) InputFrame {
	if m.ByPlayer == nil {
		return NewInputFrame()
	}
	if frame, ok := m.ByPlayer[id]; ok {
		return frame
	}
	return NewInputFrame()
}

// Press marks action as held for player id.
func (m *MultiInputFrame) Press(id PlayerID, a Action) {
	if m.ByPlayer == nil {
		m.ByPlayer = make(map[PlayerID]InputFrame)
	}
	frame := m.ByPlayer[id]
	frame.Set(a)
	m.ByPlayer[id] = frame
}

// Player1 returns the input frame for Player 1 (convenience method).
func (m MultiInputFrame) Player1() InputFrame {
	return m.Player(Player1)
}

// Quit reports whether any player requested quit.
func (m MultiInputFrame) Quit() bool {
	for _, frame := range m.ByPlayer {
		if frame.Has(ActionQuit) {
			return true
		}
	}
	return false
}

// FrameFromKeys builds a multi-input frame from the set of held key names.
func FrameFromKeys(bindings []Binding, held func(key string) bool) MultiInputFrame {
	frame := NewMultiInputFrame()
	for _, b := range bindings {
		if held(b.Key) {
			frame.Press(b.Player, b.Action)
		}
	}
	return frame
}

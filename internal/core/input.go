package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the engine driver to work with intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // Left arrow, A - move piece left
	ActionRight             // Right arrow, D - move piece right
	ActionDown              // Down arrow, S - soft drop one row
	ActionRotate            // Up arrow, W, Space - rotate clockwise
	ActionPause             // P - pause/unpause game
	ActionRestart           // R - start a new game
	ActionScoreboard        // Tab - open the scoreboard
	ActionConfirm           // Enter - confirm input
	ActionBack              // Esc - dismiss dialog or leave scoreboard
	ActionQuit              // Q, Ctrl+C - exit
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
	case ActionDown:
		return "Down"
	case ActionRotate:
		return "Rotate"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionScoreboard:
		return "Scoreboard"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

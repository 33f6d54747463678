package core

// Intent represents a semantic game intent, abstracted from physical key
// presses. The platform layer translates raw input into intents so the game
// core never sees key codes.
type Intent int

const (
	IntentNone       Intent = iota
	IntentMoveNorth         // W, Up arrow
	IntentMoveSouth         // S, Down arrow
	IntentMoveWest          // A, Left arrow
	IntentMoveEast          // D, Right arrow
	IntentToggleView        // V - switch between player-centered and free view
	IntentQuit              // Q, Ctrl+C
)

// String returns a human-readable name for the intent.
func (in Intent) String() string {
	switch in {
	case IntentNone:
		return "None"
	case IntentMoveNorth:
		return "MoveNorth"
	case IntentMoveSouth:
		return "MoveSouth"
	case IntentMoveWest:
		return "MoveWest"
	case IntentMoveEast:
		return "MoveEast"
	case IntentToggleView:
		return "ToggleView"
	case IntentQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Delta returns the (lat, lng) movement step for a movement intent, scaled by
// step. Non-movement intents return (0, 0).
func (in Intent) Delta(step float64) (dLat, dLng float64) {
	switch in {
	case IntentMoveNorth:
		return -step, 0
	case IntentMoveSouth:
		return step, 0
	case IntentMoveWest:
		return 0, -step
	case IntentMoveEast:
		return 0, step
	}
	return 0, 0
}

// IsMovement reports whether the intent is one of the four direction moves.
func (in Intent) IsMovement() bool {
	switch in {
	case IntentMoveNorth, IntentMoveSouth, IntentMoveWest, IntentMoveEast:
		return true
	}
	return false
}

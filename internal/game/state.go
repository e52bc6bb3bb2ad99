// Package game provides the main game loop and state management.
package game

// State represents the current game state.
type State int

const (
	// StateExplore is the normal mode: the player moves and fights.
	StateExplore State = iota
	// StateDead is entered when the player's health runs out. Only quitting
	// is possible.
	StateDead
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

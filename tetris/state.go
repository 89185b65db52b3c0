package tetris

// State is the game state machine's position.
type State uint8

const (
	// Spawning is instantaneous: the catalog produces the next piece and the
	// validator decides between Falling and GameOver.
	Spawning State = iota
	// Falling is the resting state while an active piece is under control.
	Falling
	// LineClearing follows every lock and returns to Spawning.
	LineClearing
	// GameOver is terminal until Restart.
	GameOver
)

var stateNames = [...]string{"spawning", "falling", "line-clearing", "game-over"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

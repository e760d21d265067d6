package farm

// State is the active game state. Exactly one is active at a time.
type State int

const (
	StatePlay State = iota
	StatePause
	StateDialogue
	StateTrade
	StateInventory
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StatePlay:
		return "play"
	case StatePause:
		return "pause"
	case StateDialogue:
		return "dialogue"
	case StateTrade:
		return "trade"
	case StateInventory:
		return "inventory"
	default:
		return "unknown"
	}
}

// Conversational reports whether Escape leaves the state.
func (s State) Conversational() bool {
	return s == StateDialogue || s == StateTrade || s == StateInventory
}

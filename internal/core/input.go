package core

// Key is a logical game key, abstracted from the physical binding.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyInteract  // E - talk, plant, harvest
	KeyInventory // I - toggle inventory overlay
	KeyPause     // P - pause/resume
	KeyEscape    // Esc - leave dialogue/trade/inventory
	KeyEnter     // Enter - confirm
	KeyAction    // T - secondary action
	keyCount
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyInteract:
		return "Interact"
	case KeyInventory:
		return "Inventory"
	case KeyPause:
		return "Pause"
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	case KeyAction:
		return "Action"
	default:
		return "Unknown"
	}
}

// IsMovement reports whether the key is one of the four direction keys.
func (k Key) IsMovement() bool {
	return k >= KeyUp && k <= KeyRight
}

// Input is the per-frame input snapshot.
//
// Movement keys are level-triggered: held from press to release. Interact,
// Inventory and Escape are set on press and cleared on release or when the
// game consumes them. Pause, Enter and Action stay latched until consumed.
// A single writer (the platform) fills it and a single reader (the game)
// consumes it once per tick.
type Input struct {
	down  [keyCount]bool
	held  int
	click bool
}

// NewInput creates an empty input snapshot.
func NewInput() *Input {
	return &Input{}
}

// Press records a key-down event. Movement keys only count the
// released->pressed transition, so auto-repeat does not inflate HeldCount.
func (in *Input) Press(k Key) {
	if k <= KeyNone || k >= keyCount {
		return
	}
	if k.IsMovement() {
		if in.down[k] {
			return
		}
		in.held++
	}
	in.down[k] = true
}

// Release records a key-up event. Each movement key decrements the held
// counter once per matching press.
func (in *Input) Release(k Key) {
	if k <= KeyNone || k >= keyCount {
		return
	}
	switch {
	case k.IsMovement():
		if !in.down[k] {
			return
		}
		in.down[k] = false
		in.held--
	case k == KeyInteract, k == KeyInventory, k == KeyEscape:
		in.down[k] = false
	}
}

// Pressed reports whether the key is currently down or latched.
func (in *Input) Pressed(k Key) bool {
	if k <= KeyNone || k >= keyCount {
		return false
	}
	return in.down[k]
}

// Consume returns whether the key was set and clears it.
// Movement keys are never consumed; use Release for those.
func (in *Input) Consume(k Key) bool {
	if k <= KeyNone || k >= keyCount || k.IsMovement() {
		return false
	}
	was := in.down[k]
	in.down[k] = false
	return was
}

// HeldCount returns the number of movement keys held at once.
func (in *Input) HeldCount() int {
	return in.held
}

// Click latches a confirmed mouse press.
func (in *Input) Click() {
	in.click = true
}

// ConsumeClick returns whether a click was latched and clears it.
func (in *Input) ConsumeClick() bool {
	was := in.click
	in.click = false
	return was
}

// Reset releases every key and drops any latched click.
func (in *Input) Reset() {
	*in = Input{}
}

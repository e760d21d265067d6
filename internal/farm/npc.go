package farm

import (
	"time"

	"github.com/vovakirdan/tui-farm/internal/core"
)

// NPCKind identifies a trader.
type NPCKind int

const (
	Merchant NPCKind = iota
	Farmer
)

// String returns the NPC's name.
func (k NPCKind) String() string {
	if k == Farmer {
		return "Farmer"
	}
	return "Merchant"
}

var dialogues = map[NPCKind][3]string{
	Merchant: {
		"Hello! I'm a merchant.",
		"I sell various seeds for your farm!",
		"Would you like to buy something?",
	},
	Farmer: {
		"Hello! I'm a farmer.",
		"I'll buy your crops and sell you upgrades!",
		"Take a look at my stock",
	},
}

// NPC is a stationary trader that animates and talks.
type NPC struct {
	kind      NPCKind
	pos       core.Point
	zone      core.Zone
	offers    []Offer
	lines     [3]string
	cursor    int
	frame     int
	near      bool
	interval  time.Duration
	lastFlip  time.Time
	flipStart bool
}

// NewNPC creates a trader at a tile position.
func NewNPC(kind NPCKind, tile int, zone core.Zone, interval time.Duration) *NPC {
	n := &NPC{
		kind:     kind,
		zone:     zone,
		lines:    dialogues[kind],
		frame:    1,
		interval: interval,
	}
	switch kind {
	case Merchant:
		n.pos = core.Point{X: 1 * tile, Y: 1 * tile}
		n.offers = MerchantOffers
	case Farmer:
		n.pos = core.Point{X: 11 * tile, Y: 2 * tile}
		n.offers = FarmerOffers
	}
	return n
}

// Tick toggles the animation frame on the wall clock and tracks whether
// the player stands beside the NPC.
func (n *NPC) Tick(t *tickCtx) {
	n.near = n.zone.Contains(t.player.Position())
	if !n.flipStart {
		n.lastFlip = t.now
		n.flipStart = true
		return
	}
	if t.now.Sub(n.lastFlip) >= n.interval {
		if n.frame == 1 {
			n.frame = 2
		} else {
			n.frame = 1
		}
		n.lastFlip = t.now
	}
}

// Speak restarts the conversation at the first line.
func (n *NPC) Speak() {
	n.cursor = 0
}

// Advance moves to the next dialogue line, wrapping after the last.
func (n *NPC) Advance() {
	n.cursor = (n.cursor + 1) % len(n.lines)
}

// Line returns the current dialogue line.
func (n *NPC) Line() string { return n.lines[n.cursor] }

// Cursor returns the index of the current dialogue line.
func (n *NPC) Cursor() int { return n.cursor }

// Kind returns which trader this is.
func (n *NPC) Kind() NPCKind { return n.kind }

// Offers returns the trader's price table.
func (n *NPC) Offers() []Offer { return n.offers }

// Near reports whether the player was inside the NPC's zone last tick.
func (n *NPC) Near() bool { return n.near }

// Frame returns the animation frame, 1 or 2.
func (n *NPC) Frame() int { return n.frame }

// Position returns the NPC's top-left corner in pixels.
func (n *NPC) Position() core.Point { return n.pos }

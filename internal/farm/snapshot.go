package farm

import "time"

// Snapshot captures the observable game state for tests and diagnostics.
type Snapshot struct {
	Tick          uint64
	State         State
	PlayerX       int
	PlayerY       int
	Facing        Direction
	Moving        bool
	Speed         int
	Crop          CropKind
	Stage         Stage
	CropLabel     string
	StageDuration time.Duration
	Inventory     Inventory
	ActiveNPC     string
	DialogueLine  string
	Clicks        int
	Prompts       int
	Won           bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:          g.ticks,
		State:         g.state,
		PlayerX:       g.player.pos.X,
		PlayerY:       g.player.pos.Y,
		Facing:        g.player.facing,
		Moving:        g.player.moving,
		Speed:         g.player.speed,
		Crop:          g.plot.kind,
		Stage:         g.plot.stage,
		CropLabel:     g.plot.Label(),
		StageDuration: g.plot.duration,
		Inventory:     g.inv,
		Clicks:        g.clicks,
		Prompts:       len(g.prompts),
		Won:           g.won,
	}
	if g.active != nil {
		s.ActiveNPC = g.active.Kind().String()
		s.DialogueLine = g.active.Line()
	}
	return s
}

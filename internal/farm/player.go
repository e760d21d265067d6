package farm

import (
	"github.com/vovakirdan/tui-farm/internal/config"
	"github.com/vovakirdan/tui-farm/internal/core"
)

// Direction is the way the player faces.
type Direction int

const (
	DirDown Direction = iota
	DirUp
	DirLeft
	DirRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "down"
	}
}

// Player is the farmer character controlled by the user.
type Player struct {
	pos       core.Point
	facing    Direction
	moving    bool
	baseSpeed int
	speed     int
	frame     int // Walk frame, 1 or 2
	counter   int
	animTicks int
	maxX      int
	maxY      int
}

// NewPlayer places the player at the centre of the field, facing down.
func NewPlayer(cfg config.FarmConfig) *Player {
	tile := cfg.Tile()
	return &Player{
		pos:       core.Point{X: cfg.FieldWidth() / 2, Y: cfg.FieldHeight() / 2},
		facing:    DirDown,
		baseSpeed: cfg.Player.Speed,
		speed:     cfg.Player.Speed,
		frame:     1,
		animTicks: cfg.Player.AnimTicks,
		maxX:      cfg.FieldWidth() - tile,
		maxY:      cfg.FieldHeight() - tile,
	}
}

var moveOrder = [...]struct {
	key    core.Key
	dir    Direction
	dx, dy int
}{
	{core.KeyUp, DirUp, 0, -1},
	{core.KeyDown, DirDown, 0, 1},
	{core.KeyLeft, DirLeft, -1, 0},
	{core.KeyRight, DirRight, 1, 0},
}

// Tick moves the player for one tick.
// Holding three direction keys at once freezes the player in place.
func (p *Player) Tick(t *tickCtx) {
	in := t.input
	p.speed = p.baseSpeed
	if in.HeldCount() == 3 {
		p.speed = 0
	}

	p.moving = false
	for _, m := range moveOrder {
		if !in.Pressed(m.key) {
			continue
		}
		p.facing = m.dir
		p.pos.X = core.Clamp(p.pos.X+m.dx*p.speed, 0, p.maxX)
		p.pos.Y = core.Clamp(p.pos.Y+m.dy*p.speed, 0, p.maxY)
		if p.speed > 0 {
			p.moving = true
		}
	}

	p.counter++
	if p.counter > p.animTicks {
		if p.frame == 1 {
			p.frame = 2
		} else {
			p.frame = 1
		}
		p.counter = 0
	}
}

// Position returns the player's top-left corner in pixels.
func (p *Player) Position() core.Point { return p.pos }

// Facing returns the direction the player faces.
func (p *Player) Facing() Direction { return p.facing }

// Moving reports whether the player moved during the last tick.
func (p *Player) Moving() bool { return p.moving }

// Speed returns the speed applied during the last tick.
func (p *Player) Speed() int { return p.speed }

// Frame returns the walk frame to draw. Idle players show frame 1.
func (p *Player) Frame() int {
	if !p.moving {
		return 1
	}
	return p.frame
}

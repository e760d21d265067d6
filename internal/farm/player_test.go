package farm

import (
	"testing"

	"github.com/vovakirdan/tui-farm/internal/config"
	"github.com/vovakirdan/tui-farm/internal/core"
)

func tickPlayer(p *Player, in *core.Input) {
	p.Tick(&tickCtx{now: epoch, input: in, player: p})
}

func TestPlayerStartsCentred(t *testing.T) {
	p := NewPlayer(config.DefaultFarmConfig())
	if pos := p.Position(); pos.X != 384 || pos.Y != 288 {
		t.Errorf("start = %+v, expected 384,288", pos)
	}
	if p.Facing() != DirDown || p.Frame() != 1 {
		t.Errorf("facing=%s frame=%d", p.Facing(), p.Frame())
	}
}

func TestPlayerMoves(t *testing.T) {
	tests := []struct {
		key    core.Key
		dx, dy int
		facing Direction
	}{
		{core.KeyUp, 0, -4, DirUp},
		{core.KeyDown, 0, 4, DirDown},
		{core.KeyLeft, -4, 0, DirLeft},
		{core.KeyRight, 4, 0, DirRight},
	}
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			p := NewPlayer(config.DefaultFarmConfig())
			in := core.NewInput()
			in.Press(tt.key)
			tickPlayer(p, in)
			pos := p.Position()
			if pos.X != 384+tt.dx || pos.Y != 288+tt.dy {
				t.Errorf("position = %+v", pos)
			}
			if p.Facing() != tt.facing || !p.Moving() {
				t.Errorf("facing=%s moving=%v", p.Facing(), p.Moving())
			}
		})
	}
}

func TestThreeKeysFreeze(t *testing.T) {
	p := NewPlayer(config.DefaultFarmConfig())
	in := core.NewInput()
	in.Press(core.KeyUp)
	in.Press(core.KeyLeft)
	in.Press(core.KeyRight)
	tickPlayer(p, in)

	if p.Speed() != 0 {
		t.Errorf("Speed() = %d, expected 0", p.Speed())
	}
	if pos := p.Position(); pos.X != 384 || pos.Y != 288 {
		t.Errorf("position changed to %+v", pos)
	}
	if p.Moving() {
		t.Error("frozen player should be idle")
	}
	if p.Facing() != DirRight {
		t.Errorf("facing = %s, expected the last held direction", p.Facing())
	}

	// Releasing one key restores speed.
	in.Release(core.KeyRight)
	tickPlayer(p, in)
	if p.Speed() != 4 {
		t.Errorf("Speed() = %d after release, expected 4", p.Speed())
	}
}

func TestPlayerClampsToField(t *testing.T) {
	cfg := config.DefaultFarmConfig()
	p := NewPlayer(cfg)
	in := core.NewInput()

	p.pos = core.Point{X: 2, Y: 2}
	in.Press(core.KeyLeft)
	in.Press(core.KeyUp)
	tickPlayer(p, in)
	if pos := p.Position(); pos.X != 0 || pos.Y != 0 {
		t.Errorf("position = %+v, expected 0,0", pos)
	}

	in.Reset()
	maxX := cfg.FieldWidth() - cfg.Tile()
	maxY := cfg.FieldHeight() - cfg.Tile()
	p.pos = core.Point{X: maxX - 1, Y: maxY - 1}
	in.Press(core.KeyRight)
	in.Press(core.KeyDown)
	tickPlayer(p, in)
	if pos := p.Position(); pos.X != maxX || pos.Y != maxY {
		t.Errorf("position = %+v, expected %d,%d", pos, maxX, maxY)
	}
}

func TestIdleKeepsFacing(t *testing.T) {
	p := NewPlayer(config.DefaultFarmConfig())
	in := core.NewInput()
	in.Press(core.KeyLeft)
	tickPlayer(p, in)
	in.Release(core.KeyLeft)
	tickPlayer(p, in)
	if p.Moving() || p.Facing() != DirLeft {
		t.Errorf("moving=%v facing=%s", p.Moving(), p.Facing())
	}
	if p.Frame() != 1 {
		t.Errorf("idle frame = %d, expected 1", p.Frame())
	}
}

func TestWalkAnimation(t *testing.T) {
	p := NewPlayer(config.DefaultFarmConfig())
	in := core.NewInput()
	in.Press(core.KeyDown)
	for range 10 {
		tickPlayer(p, in)
	}
	if p.Frame() != 1 {
		t.Fatalf("frame = %d after 10 ticks, expected 1", p.Frame())
	}
	tickPlayer(p, in)
	if p.Frame() != 2 {
		t.Errorf("frame = %d after 11 ticks, expected 2", p.Frame())
	}
}

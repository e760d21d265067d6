package farm

import (
	"time"

	"github.com/vovakirdan/tui-farm/internal/core"
)

// tickCtx is the per-tick context handed to entities.
type tickCtx struct {
	now    time.Time
	input  *core.Input
	player *Player
}

// Entity is anything that ticks once per Play tick and draws itself.
type Entity interface {
	Tick(t *tickCtx)
	Draw(dst *core.Screen, v view)
}

package farm

import "github.com/vovakirdan/tui-farm/internal/core"

// Zones are the interaction areas, tested against the player's top-left
// corner. Every edge is exclusive.
type Zones struct {
	Merchant core.Zone
	Farmer   core.Zone
	Plot     core.Zone
}

// NewZones lays the zones out for a tile size in pixels.
func NewZones(tile int) Zones {
	t := float64(tile)
	return Zones{
		Merchant: core.Zone{MinX: 0, MinY: 0, MaxX: 2 * t, MaxY: 2 * t},
		Farmer:   core.Zone{MinX: 10 * t, MinY: 1 * t, MaxX: 13 * t, MaxY: 3 * t},
		Plot:     core.Zone{MinX: 0.5 * t, MinY: 5 * t, MaxX: 6.5 * t, MaxY: 10 * t},
	}
}

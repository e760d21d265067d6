package farm

import "time"

// CropKind is the crop planted in the plot.
type CropKind int

const (
	CropNone CropKind = iota
	CropWheat
	CropCarrot
	CropPotato
)

// String returns the display name of the crop.
func (k CropKind) String() string {
	switch k {
	case CropWheat:
		return "Wheat"
	case CropCarrot:
		return "Carrot"
	case CropPotato:
		return "Potato"
	default:
		return "None"
	}
}

// Seed returns the seed item consumed when planting this crop.
func (k CropKind) Seed() Item {
	switch k {
	case CropCarrot:
		return CarrotSeeds
	case CropPotato:
		return PotatoSeeds
	default:
		return WheatSeeds
	}
}

// Produce returns the item harvested from this crop.
func (k CropKind) Produce() Item {
	switch k {
	case CropCarrot:
		return Carrots
	case CropPotato:
		return Potatoes
	default:
		return Wheat
	}
}

// Stage is a crop growth stage.
type Stage int

const (
	StageEmpty Stage = iota
	StageBaby
	StageGrowing
	StageGrown
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageBaby:
		return "baby"
	case StageGrowing:
		return "growing"
	case StageGrown:
		return "grown"
	default:
		return "empty"
	}
}

// CropPlot is the single growing plot.
//
// A planted crop moves Baby -> Growing -> Grown, one stage each time more
// than the stage duration has passed since the previous transition.
type CropPlot struct {
	kind       CropKind
	stage      Stage
	planted    bool
	fullyGrown bool
	duration   time.Duration
	stageStart time.Time
	yield      int
}

// NewCropPlot creates an empty plot with the given stage duration and yield.
func NewCropPlot(duration time.Duration, yield int) *CropPlot {
	return &CropPlot{duration: duration, yield: yield}
}

// Plant starts a crop. It is only legal on an empty plot.
func (c *CropPlot) Plant(kind CropKind, now time.Time) error {
	if c.planted {
		return ErrNotEmpty
	}
	if kind == CropNone || kind > CropPotato {
		return ErrInvalidCrop
	}
	c.kind = kind
	c.stage = StageBaby
	c.planted = true
	c.fullyGrown = false
	c.stageStart = now
	return nil
}

// Update advances at most one stage and reports whether it did.
func (c *CropPlot) Update(now time.Time) bool {
	if !c.planted || c.fullyGrown {
		return false
	}
	if now.Sub(c.stageStart) <= c.duration {
		return false
	}
	switch c.stage {
	case StageBaby:
		c.stage = StageGrowing
	case StageGrowing:
		c.stage = StageGrown
		c.fullyGrown = true
	default:
		return false
	}
	c.stageStart = now
	return true
}

// Harvest collects a fully grown crop and empties the plot.
func (c *CropPlot) Harvest() (Item, int, error) {
	if !c.fullyGrown {
		return 0, 0, ErrNotGrown
	}
	item := c.kind.Produce()
	c.kind = CropNone
	c.stage = StageEmpty
	c.planted = false
	c.fullyGrown = false
	return item, c.yield, nil
}

// Boost shortens the stage duration. A boost that would take the duration
// below floor is rejected and nothing changes.
func (c *CropPlot) Boost(dec, floor time.Duration) error {
	if c.duration-dec < floor {
		return ErrBoostFloor
	}
	c.duration -= dec
	return nil
}

// Kind returns the planted crop.
func (c *CropPlot) Kind() CropKind { return c.kind }

// Stage returns the current growth stage.
func (c *CropPlot) Stage() Stage { return c.stage }

// Planted reports whether a crop occupies the plot.
func (c *CropPlot) Planted() bool { return c.planted }

// FullyGrown reports whether the crop can be harvested.
func (c *CropPlot) FullyGrown() bool { return c.fullyGrown }

// Duration returns the current stage duration.
func (c *CropPlot) Duration() time.Duration { return c.duration }

// Label names the crop image for the current state, e.g. "wheat_baby".
func (c *CropPlot) Label() string {
	if !c.planted {
		return "empty"
	}
	var prefix string
	switch c.kind {
	case CropWheat:
		prefix = "wheat"
	case CropCarrot:
		prefix = "carrot"
	case CropPotato:
		prefix = "potato"
	default:
		return "empty"
	}
	switch c.stage {
	case StageBaby:
		return prefix + "_baby"
	case StageGrowing:
		return prefix + "_plant"
	case StageGrown:
		return prefix + "_grown"
	}
	return "empty"
}

// Tick grows the crop on the wall clock.
func (c *CropPlot) Tick(t *tickCtx) {
	c.Update(t.now)
}

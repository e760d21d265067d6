package config

import "fmt"

// Pace is a named crop growth speed.
type Pace string

const (
	PaceRelaxed Pace = "relaxed"
	PaceNormal  Pace = "normal"
	PaceFast    Pace = "fast"
)

// Paces lists the presets in display order.
var Paces = []Pace{PaceRelaxed, PaceNormal, PaceFast}

// ParsePace validates a preset name. An empty name is the normal pace.
func ParsePace(s string) (Pace, error) {
	switch Pace(s) {
	case "", PaceNormal:
		return PaceNormal, nil
	case PaceRelaxed:
		return PaceRelaxed, nil
	case PaceFast:
		return PaceFast, nil
	default:
		return PaceNormal, fmt.Errorf("config: unknown pace %q (want relaxed, normal or fast)", s)
	}
}

// stageFactor returns the stage duration multiplier for a preset.
func stageFactor(p Pace) float64 {
	switch p {
	case PaceRelaxed:
		return 1.5
	case PaceFast:
		return 0.5
	default:
		return 1.0
	}
}

// ApplyPace scales the crop stage duration for a preset. The result never
// drops below the boost floor.
func ApplyPace(cfg *FarmConfig, p Pace) {
	scaled := int(float64(cfg.Crops.StageDurationMS) * stageFactor(p))
	if scaled < cfg.Crops.MinStageDurationMS {
		scaled = cfg.Crops.MinStageDurationMS
	}
	cfg.Crops.StageDurationMS = scaled
}

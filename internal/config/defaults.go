package config

import (
	_ "embed"
)

//go:embed defaults/farm.yaml
var defaultFarmYAML []byte

// DefaultFarmConfig returns the hard-coded farm configuration.
func DefaultFarmConfig() FarmConfig {
	return FarmConfig{
		Screen: ScreenConfig{
			TileSize: 16,
			Scale:    3,
			Cols:     16,
			Rows:     12,
		},
		Loop: LoopConfig{
			FPS:             60,
			FlushIntervalMS: 1000,
		},
		Player: PlayerConfig{
			Speed:     4,
			AnimTicks: 10,
		},
		NPC: NPCConfig{
			AnimIntervalMS:  500,
			DialogueDelayMS: 100,
		},
		Crops: CropConfig{
			StageDurationMS:    10000,
			BoostMS:            500,
			MinStageDurationMS: 1000,
			Yield:              20,
		},
		Save: SaveConfig{
			Path:    "~/.farm/inventory.txt",
			Journal: "~/.farm/journal.db",
			Log:     "~/.farm/farm.log",
		},
		Input: InputConfig{
			InitialHoldMS: 400,
			RepeatHoldMS:  120,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFarmYAML
}

// Package config provides YAML-based configuration loading and pace
// presets for the farm.
package config

import (
	"errors"
	"fmt"
	"time"
)

// FarmConfig contains all tunables for the farm game.
type FarmConfig struct {
	Screen ScreenConfig `yaml:"screen"`
	Loop   LoopConfig   `yaml:"loop"`
	Player PlayerConfig `yaml:"player"`
	NPC    NPCConfig    `yaml:"npc"`
	Crops  CropConfig   `yaml:"crops"`
	Save   SaveConfig   `yaml:"save"`
	Input  InputConfig  `yaml:"input"`
}

// ScreenConfig defines the play field geometry in pixel space.
type ScreenConfig struct {
	TileSize int `yaml:"tile_size"` // Source tile size before scaling
	Scale    int `yaml:"scale"`
	Cols     int `yaml:"cols"`
	Rows     int `yaml:"rows"`
}

// LoopConfig defines the fixed-timestep cadence.
type LoopConfig struct {
	FPS             int `yaml:"fps"`
	FlushIntervalMS int `yaml:"flush_interval_ms"` // Save + report timer
}

// PlayerConfig defines player motion.
type PlayerConfig struct {
	Speed     int `yaml:"speed"`      // Pixels per tick
	AnimTicks int `yaml:"anim_ticks"` // Ticks between walk frames
}

// NPCConfig defines NPC animation and dialogue pacing.
type NPCConfig struct {
	AnimIntervalMS  int `yaml:"anim_interval_ms"`
	DialogueDelayMS int `yaml:"dialogue_delay_ms"` // Minimum gap between dialogue clicks
}

// CropConfig defines crop growth.
type CropConfig struct {
	StageDurationMS    int `yaml:"stage_duration_ms"`
	BoostMS            int `yaml:"boost_ms"`              // Soil Nutrients reduction
	MinStageDurationMS int `yaml:"min_stage_duration_ms"` // Boost floor
	Yield              int `yaml:"yield"`
}

// SaveConfig defines where state is persisted.
type SaveConfig struct {
	Path    string `yaml:"path"`    // Inventory save file
	Journal string `yaml:"journal"` // SQLite event journal
	Log     string `yaml:"log"`     // Log file for interactive play
}

// InputConfig defines synthesised key-release windows.
type InputConfig struct {
	InitialHoldMS int `yaml:"initial_hold_ms"` // Before the terminal starts auto-repeat
	RepeatHoldMS  int `yaml:"repeat_hold_ms"`  // Between auto-repeats
}

// Tile returns the on-screen tile size in pixels.
func (c FarmConfig) Tile() int {
	return c.Screen.TileSize * c.Screen.Scale
}

// FieldWidth returns the play field width in pixels.
func (c FarmConfig) FieldWidth() int {
	return c.Tile() * c.Screen.Cols
}

// FieldHeight returns the play field height in pixels.
func (c FarmConfig) FieldHeight() int {
	return c.Tile() * c.Screen.Rows
}

// FlushInterval returns the save/report interval.
func (c FarmConfig) FlushInterval() time.Duration {
	return ms(c.Loop.FlushIntervalMS)
}

// NPCAnimInterval returns the NPC frame toggle interval.
func (c FarmConfig) NPCAnimInterval() time.Duration {
	return ms(c.NPC.AnimIntervalMS)
}

// DialogueDelay returns the minimum gap between dialogue advances.
func (c FarmConfig) DialogueDelay() time.Duration {
	return ms(c.NPC.DialogueDelayMS)
}

// StageDuration returns the initial crop stage duration.
func (c FarmConfig) StageDuration() time.Duration {
	return ms(c.Crops.StageDurationMS)
}

// Boost returns the stage duration reduction bought with Soil Nutrients.
func (c FarmConfig) Boost() time.Duration {
	return ms(c.Crops.BoostMS)
}

// MinStageDuration returns the floor below which boosts are rejected.
func (c FarmConfig) MinStageDuration() time.Duration {
	return ms(c.Crops.MinStageDurationMS)
}

// InitialHold returns the release window before auto-repeat begins.
func (c FarmConfig) InitialHold() time.Duration {
	return ms(c.Input.InitialHoldMS)
}

// RepeatHold returns the release window between auto-repeats.
func (c FarmConfig) RepeatHold() time.Duration {
	return ms(c.Input.RepeatHoldMS)
}

// Validate checks that every numeric setting is usable.
func (c FarmConfig) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}
	positive("screen.tile_size", c.Screen.TileSize)
	positive("screen.scale", c.Screen.Scale)
	positive("screen.cols", c.Screen.Cols)
	positive("screen.rows", c.Screen.Rows)
	positive("loop.fps", c.Loop.FPS)
	positive("loop.flush_interval_ms", c.Loop.FlushIntervalMS)
	positive("player.anim_ticks", c.Player.AnimTicks)
	positive("npc.anim_interval_ms", c.NPC.AnimIntervalMS)
	positive("crops.stage_duration_ms", c.Crops.StageDurationMS)
	positive("crops.yield", c.Crops.Yield)
	positive("input.initial_hold_ms", c.Input.InitialHoldMS)
	positive("input.repeat_hold_ms", c.Input.RepeatHoldMS)
	if c.Player.Speed < 0 {
		errs = append(errs, fmt.Errorf("player.speed must not be negative, got %d", c.Player.Speed))
	}
	if c.Crops.BoostMS < 0 || c.Crops.MinStageDurationMS < 0 {
		errs = append(errs, errors.New("crops.boost_ms and crops.min_stage_duration_ms must not be negative"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

package farm

import (
	"errors"
	"testing"
	"time"
)

var epoch = time.Date(2025, 1, 16, 12, 0, 0, 0, time.UTC)

func newPlot() *CropPlot {
	return NewCropPlot(10*time.Second, 20)
}

func TestCropStageBoundary(t *testing.T) {
	c := newPlot()
	if err := c.Plant(CropWheat, epoch); err != nil {
		t.Fatal(err)
	}
	if c.Stage() != StageBaby || c.Label() != "wheat_baby" {
		t.Fatalf("after planting: stage=%s label=%s", c.Stage(), c.Label())
	}

	c.Update(epoch.Add(9999 * time.Millisecond))
	if c.Stage() != StageBaby {
		t.Errorf("after 9999ms stage = %s, expected baby", c.Stage())
	}
	c.Update(epoch.Add(10000 * time.Millisecond))
	if c.Stage() != StageBaby {
		t.Errorf("exactly one duration should not advance, stage = %s", c.Stage())
	}
	c.Update(epoch.Add(10001 * time.Millisecond))
	if c.Stage() != StageGrowing {
		t.Errorf("after 10001ms stage = %s, expected growing", c.Stage())
	}
}

func TestCropGrowsOneStagePerUpdate(t *testing.T) {
	c := newPlot()
	_ = c.Plant(CropCarrot, epoch)

	// A long gap still advances only one stage.
	if !c.Update(epoch.Add(time.Hour)) {
		t.Fatal("expected an advance")
	}
	if c.Stage() != StageGrowing || c.FullyGrown() {
		t.Fatalf("stage = %s fullyGrown=%v, expected growing", c.Stage(), c.FullyGrown())
	}

	// The stage clock restarted: another full duration is needed.
	if c.Update(epoch.Add(time.Hour + 10*time.Second)) {
		t.Error("advanced before a full duration in the new stage")
	}
	c.Update(epoch.Add(time.Hour + 10*time.Second + time.Millisecond))
	if c.Stage() != StageGrown || !c.FullyGrown() {
		t.Fatalf("stage = %s, expected grown", c.Stage())
	}
	if c.Label() != "carrot_grown" {
		t.Errorf("Label() = %q", c.Label())
	}

	if c.Update(epoch.Add(48 * time.Hour)) {
		t.Error("grown crop should not advance")
	}
}

func TestCropGrownNeedsTwoDurations(t *testing.T) {
	c := newPlot()
	_ = c.Plant(CropPotato, epoch)
	now := epoch
	for now.Sub(epoch) <= 20*time.Second {
		c.Update(now)
		if c.FullyGrown() {
			t.Fatalf("grown after only %v", now.Sub(epoch))
		}
		now = now.Add(500 * time.Millisecond)
	}
	c.Update(now.Add(10 * time.Second))
	if !c.FullyGrown() {
		t.Error("expected grown after more than two durations")
	}
}

func TestHarvest(t *testing.T) {
	c := newPlot()
	if _, _, err := c.Harvest(); !errors.Is(err, ErrNotGrown) {
		t.Errorf("harvest on empty plot: %v", err)
	}

	_ = c.Plant(CropWheat, epoch)
	if _, _, err := c.Harvest(); !errors.Is(err, ErrNotGrown) {
		t.Errorf("harvest on baby crop: %v", err)
	}
	if c.Stage() != StageBaby || !c.Planted() {
		t.Error("failed harvest must not change the plot")
	}

	c.Update(epoch.Add(11 * time.Second))
	c.Update(epoch.Add(22 * time.Second))
	item, n, err := c.Harvest()
	if err != nil {
		t.Fatal(err)
	}
	if item != Wheat || n != 20 {
		t.Errorf("harvest = %d %s, expected 20 Wheat", n, item)
	}
	if c.Planted() || c.FullyGrown() || c.Stage() != StageEmpty || c.Label() != "empty" {
		t.Error("harvest should empty the plot")
	}
}

func TestPlantOnlyWhenEmpty(t *testing.T) {
	c := newPlot()
	_ = c.Plant(CropWheat, epoch)
	if err := c.Plant(CropPotato, epoch); !errors.Is(err, ErrNotEmpty) {
		t.Errorf("second plant: %v", err)
	}
	if c.Kind() != CropWheat {
		t.Errorf("Kind() = %s, expected Wheat", c.Kind())
	}
	if err := newPlot().Plant(CropNone, epoch); !errors.Is(err, ErrInvalidCrop) {
		t.Errorf("planting nothing: %v", err)
	}
}

func TestBoost(t *testing.T) {
	c := NewCropPlot(2*time.Second, 20)
	floor := time.Second
	if err := c.Boost(500*time.Millisecond, floor); err != nil {
		t.Fatal(err)
	}
	if err := c.Boost(500*time.Millisecond, floor); err != nil {
		t.Fatal(err)
	}
	if c.Duration() != time.Second {
		t.Fatalf("Duration() = %v, expected 1s", c.Duration())
	}
	if err := c.Boost(500*time.Millisecond, floor); !errors.Is(err, ErrBoostFloor) {
		t.Errorf("boost below floor: %v", err)
	}
	if c.Duration() != time.Second {
		t.Errorf("rejected boost changed duration to %v", c.Duration())
	}
}

func TestLabels(t *testing.T) {
	tests := []struct {
		kind  CropKind
		stage Stage
		label string
	}{
		{CropWheat, StageBaby, "wheat_baby"},
		{CropWheat, StageGrowing, "wheat_plant"},
		{CropWheat, StageGrown, "wheat_grown"},
		{CropCarrot, StageBaby, "carrot_baby"},
		{CropCarrot, StageGrowing, "carrot_plant"},
		{CropPotato, StageGrowing, "potato_plant"},
		{CropPotato, StageGrown, "potato_grown"},
	}
	for _, tt := range tests {
		c := &CropPlot{kind: tt.kind, stage: tt.stage, planted: true}
		if got := c.Label(); got != tt.label {
			t.Errorf("%s/%s: Label() = %q, expected %q", tt.kind, tt.stage, got, tt.label)
		}
	}
}

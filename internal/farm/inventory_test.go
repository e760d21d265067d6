package farm

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-farm/internal/config"
)

func TestDefaultInventory(t *testing.T) {
	inv := DefaultInventory()
	if inv.Count(Gold) != 20 {
		t.Errorf("Gold = %d, expected 20", inv.Count(Gold))
	}
	for _, i := range Items()[1:] {
		if inv.Count(i) != 0 {
			t.Errorf("%s = %d, expected 0", i, inv.Count(i))
		}
	}
}

func TestExchange(t *testing.T) {
	tests := []struct {
		name     string
		start    Inventory
		cost     []Stack
		gain     []Stack
		expected Inventory
		short    Item
		wantErr  bool
	}{
		{
			name:     "buy seed",
			start:    Inventory{20},
			cost:     []Stack{{Gold, 10}},
			gain:     []Stack{{WheatSeeds, 1}},
			expected: Inventory{10, 0, 0, 0, 1, 0, 0},
		},
		{
			name:     "exact funds",
			start:    Inventory{10},
			cost:     []Stack{{Gold, 10}},
			gain:     []Stack{{WheatSeeds, 1}},
			expected: Inventory{0, 0, 0, 0, 1, 0, 0},
		},
		{
			name:     "zero gold",
			start:    Inventory{0},
			cost:     []Stack{{Gold, 10}},
			gain:     []Stack{{WheatSeeds, 1}},
			expected: Inventory{0},
			short:    Gold,
			wantErr:  true,
		},
		{
			name:     "sell crops",
			start:    Inventory{0, 25},
			cost:     []Stack{{Wheat, 20}},
			gain:     []Stack{{Gold, 20}},
			expected: Inventory{20, 5},
		},
		{
			name:     "second cost short leaves first untouched",
			start:    Inventory{100, 5},
			cost:     []Stack{{Gold, 10}, {Wheat, 6}},
			expected: Inventory{100, 5},
			short:    Wheat,
			wantErr:  true,
		},
		{
			name:     "repeated item summed",
			start:    Inventory{15},
			cost:     []Stack{{Gold, 10}, {Gold, 10}},
			expected: Inventory{15},
			short:    Gold,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := tt.start
			err := inv.Exchange(tt.cost, tt.gain)
			if tt.wantErr {
				if !errors.Is(err, ErrInsufficient) {
					t.Fatalf("expected ErrInsufficient, got %v", err)
				}
				var short *InsufficientError
				if !errors.As(err, &short) || short.Item != tt.short {
					t.Errorf("expected shortage of %s, got %v", tt.short, err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if inv != tt.expected {
				t.Errorf("inventory = %v, expected %v", inv, tt.expected)
			}
			if !inv.Valid() {
				t.Errorf("inventory went negative: %v", inv)
			}
		})
	}
}

func TestRemoveNeverNegative(t *testing.T) {
	inv := Inventory{}
	if err := inv.Remove(WheatSeeds, 1); err == nil {
		t.Fatal("removing from an empty slot should fail")
	}
	if inv.Count(WheatSeeds) != 0 {
		t.Errorf("WheatSeeds = %d, expected 0", inv.Count(WheatSeeds))
	}
}

func TestAddIgnoresNonPositive(t *testing.T) {
	inv := Inventory{5}
	inv.Add(Gold, -3)
	inv.Add(Gold, 0)
	if inv.Count(Gold) != 5 {
		t.Errorf("Gold = %d, expected 5", inv.Count(Gold))
	}
}

func TestItemNames(t *testing.T) {
	if WheatSeeds.String() != "Wheat Seeds" {
		t.Errorf("WheatSeeds.String() = %q", WheatSeeds.String())
	}
	if Item(42).String() != "Unknown" {
		t.Errorf("Item(42).String() = %q", Item(42).String())
	}
}

func TestCountOnReturnedValue(t *testing.T) {
	g := New(config.DefaultFarmConfig(), DefaultInventory(), nil)
	if got := g.Inventory().Count(Gold); got != 20 {
		t.Errorf("Inventory().Count(Gold) = %d, expected 20", got)
	}
	if !g.Inventory().Valid() {
		t.Error("default inventory should be valid")
	}
}

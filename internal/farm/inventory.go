package farm

import (
	"errors"
	"fmt"
)

// Item identifies one inventory slot. The order is also the save file order.
type Item int

const (
	Gold Item = iota
	Wheat
	Carrots
	Potatoes
	WheatSeeds
	CarrotSeeds
	PotatoSeeds
)

// ItemCount is the number of inventory slots.
const ItemCount = 7

var itemNames = [ItemCount]string{
	"Gold", "Wheat", "Carrots", "Potatoes", "Wheat Seeds", "Carrot Seeds", "Potato Seeds",
}

// String returns the display name of the item.
func (i Item) String() string {
	if i < 0 || int(i) >= ItemCount {
		return "Unknown"
	}
	return itemNames[i]
}

// Items lists every item in slot order.
func Items() []Item {
	return []Item{Gold, Wheat, Carrots, Potatoes, WheatSeeds, CarrotSeeds, PotatoSeeds}
}

// Errors returned by farm operations.
var (
	ErrNotEmpty     = errors.New("farm: plot already planted")
	ErrNotGrown     = errors.New("farm: crop is not fully grown")
	ErrInsufficient = errors.New("farm: insufficient items")
	ErrBoostFloor   = errors.New("farm: stage duration already at minimum")
	ErrInvalidCrop  = errors.New("farm: invalid crop kind")
)

// InsufficientError reports the first item a transaction was short of.
// It matches ErrInsufficient with errors.Is.
type InsufficientError struct {
	Item Item
	Have int
	Need int
}

func (e *InsufficientError) Error() string {
	return fmt.Sprintf("farm: not enough %s (have %d, need %d)", e.Item, e.Have, e.Need)
}

// Is makes InsufficientError match ErrInsufficient.
func (e *InsufficientError) Is(target error) bool {
	return target == ErrInsufficient
}

// Stack is an amount of one item.
type Stack struct {
	Item  Item
	Count int
}

// Inventory maps each item to a non-negative count.
type Inventory [ItemCount]int

// DefaultInventory returns the starting inventory: 20 gold, nothing else.
func DefaultInventory() Inventory {
	return Inventory{20, 0, 0, 0, 0, 0, 0}
}

// Count returns the amount of an item held.
func (inv Inventory) Count(i Item) int {
	if i < 0 || int(i) >= ItemCount {
		return 0
	}
	return inv[i]
}

// Add increases an item's count. Non-positive amounts are ignored.
func (inv *Inventory) Add(i Item, n int) {
	if i < 0 || int(i) >= ItemCount || n <= 0 {
		return
	}
	inv[i] += n
}

// Remove decreases an item's count, failing without change when short.
func (inv *Inventory) Remove(i Item, n int) error {
	return inv.Exchange([]Stack{{i, n}}, nil)
}

// Exchange removes every cost stack and adds every gain stack as a single
// step. If any cost cannot be paid nothing is changed.
func (inv *Inventory) Exchange(cost, gain []Stack) error {
	need := Inventory{}
	for _, s := range cost {
		if s.Item < 0 || int(s.Item) >= ItemCount {
			return fmt.Errorf("farm: unknown item %d", s.Item)
		}
		if s.Count > 0 {
			need[s.Item] += s.Count
		}
	}
	for _, i := range Items() {
		if need[i] > inv[i] {
			return &InsufficientError{Item: i, Have: inv[i], Need: need[i]}
		}
	}
	for _, i := range Items() {
		inv[i] -= need[i]
	}
	for _, s := range gain {
		inv.Add(s.Item, s.Count)
	}
	return nil
}

// Valid reports whether every count is non-negative.
func (inv Inventory) Valid() bool {
	for _, n := range inv {
		if n < 0 {
			return false
		}
	}
	return true
}

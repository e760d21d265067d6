// Package save reads and writes the inventory save file: one line of seven
// comma-separated counts in inventory order.
package save

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-farm/internal/farm"
)

const separator = ", "

// ErrMalformed is wrapped by every decode failure.
var ErrMalformed = errors.New("save: malformed inventory")

// Encode formats an inventory as a save line. There is no trailing newline.
func Encode(inv farm.Inventory) string {
	parts := make([]string, farm.ItemCount)
	for i, n := range inv {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, separator)
}

// Decode parses a save line. Missing trailing counts keep their defaults;
// extra tokens, non-integers and negative counts are errors.
func Decode(s string) (farm.Inventory, error) {
	inv := farm.DefaultInventory()
	s = strings.TrimSpace(s)
	if s == "" {
		return inv, fmt.Errorf("%w: empty file", ErrMalformed)
	}

	tokens := strings.Split(s, separator)
	if len(tokens) > farm.ItemCount {
		return farm.DefaultInventory(), fmt.Errorf("%w: %d values, expected %d", ErrMalformed, len(tokens), farm.ItemCount)
	}
	for i, tok := range tokens {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return farm.DefaultInventory(), fmt.Errorf("%w: value %d: %q is not a number", ErrMalformed, i+1, tok)
		}
		if n < 0 {
			return farm.DefaultInventory(), fmt.Errorf("%w: value %d is negative", ErrMalformed, i+1)
		}
		inv[i] = n
	}
	return inv, nil
}

// Load reads the save file. A missing or malformed file yields the default
// inventory together with the error, so callers can keep playing.
func Load(path string) (farm.Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return farm.DefaultInventory(), fmt.Errorf("save: read %s: %w", path, err)
	}
	inv, err := Decode(string(data))
	if err != nil {
		return farm.DefaultInventory(), fmt.Errorf("save: %s: %w", path, err)
	}
	return inv, nil
}

// Store writes the save file, creating its directory if needed. The file
// is replaced atomically.
func Store(path string, inv farm.Inventory) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("save: cannot create directory %s: %w", dir, err)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".inventory-*")
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(Encode(inv)); err != nil {
		tmp.Close()
		return fmt.Errorf("save: write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save: write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("save: write %s: %w", path, err)
	}
	return nil
}

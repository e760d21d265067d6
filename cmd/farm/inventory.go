package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-farm/internal/config"
	"github.com/vovakirdan/tui-farm/internal/farm"
	"github.com/vovakirdan/tui-farm/internal/save"
)

var flagForce bool

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Print the saved inventory",
	Long: `Print the inventory stored in the save file.

Examples:
  farm inventory
  farm inventory --save ./test-farm.txt`,
	Args: cobra.NoArgs,
	Run:  runInventory,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the saved inventory",
	Long: `Overwrite the save file with the starting inventory (20 Gold).
The journal is kept.

Examples:
  farm reset --force`,
	Args: cobra.NoArgs,
	Run:  runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagForce, "force", false, "Confirm overwriting the save file")
}

func runInventory(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	path := config.ExpandHome(cfg.Save.Path)

	inv, err := save.Load(path)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		fmt.Printf("No save file at %s yet.\n", path)
		fmt.Println("A new farm starts with:")
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Inventory - %s\n", path)
	fmt.Println()
	for _, item := range farm.Items() {
		fmt.Printf("  %-14s %6d\n", item.String()+":", inv.Count(item))
	}
}

func runReset(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	path := config.ExpandHome(cfg.Save.Path)

	if !flagForce {
		fmt.Fprintf(os.Stderr, "Error: this overwrites %s; run again with --force\n", path)
		os.Exit(1)
	}

	if err := save.Store(path, farm.DefaultInventory()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Reset %s to the starting inventory.\n", path)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-farm/internal/platform/tui"
	"github.com/vovakirdan/tui-farm/internal/storage"
)

var (
	flagPlayer string
	flagAll    bool
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Browse the farm journal",
	Long: `Open an interactive table of recorded plants, harvests, trades and
trophy purchases. Tab switches between recent events and trophies.

Examples:
  farm journal
  farm journal --all
  farm journal --player alice`,
	Args: cobra.NoArgs,
	Run:  runJournal,
}

var winsCmd = &cobra.Command{
	Use:   "wins",
	Short: "List trophy purchases",
	Long: `Print every silver trophy purchase recorded in the journal.

Examples:
  farm wins
  farm wins --all`,
	Args: cobra.NoArgs,
	Run:  runWins,
}

func init() {
	for _, c := range []*cobra.Command{journalCmd, winsCmd} {
		c.Flags().StringVar(&flagPlayer, "player", "", "Player to show (default: current user)")
		c.Flags().BoolVar(&flagAll, "all", false, "Show every player")
	}
}

// journalPlayer resolves the player filter; empty means everyone.
func journalPlayer() string {
	if flagAll {
		return ""
	}
	if flagPlayer != "" {
		return flagPlayer
	}
	return playerName()
}

func openJournal() *storage.Store {
	cfg := loadConfig()
	store, err := storage.Open(cfg.Save.Journal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening journal database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runJournal(_ *cobra.Command, _ []string) {
	store := openJournal()
	defer store.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunJournal(store, journalPlayer(), width, height); err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runWins(_ *cobra.Command, _ []string) {
	store := openJournal()
	defer store.Close()

	player := journalPlayer()
	wins, err := store.Wins(player)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving wins: %v\n", err)
		os.Exit(1)
	}

	if player == "" {
		fmt.Println("Silver Trophies - all players")
	} else {
		fmt.Printf("Silver Trophies - %s\n", player)
	}
	fmt.Println()

	if len(wins) == 0 {
		fmt.Println("No trophies yet.")
		fmt.Println()
		fmt.Println("Save up 1000 Gold and buy one from the farmer!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %s\n", "#", "Player", "Date")
	fmt.Printf("  %-4s  %-12s  %s\n", "-", "------", "----")

	for i, w := range wins {
		fmt.Printf("  %-4d  %-12s  %s\n", i+1, w.Player, w.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	if player != "" {
		if stats, err := store.Stats(player); err == nil {
			fmt.Println()
			fmt.Printf("Sessions: %d  Harvests: %d  Gold earned: %d\n", stats.Sessions, stats.Harvests, stats.GoldEarned)
		}
	}
}

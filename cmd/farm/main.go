// farm is a small farming game for the terminal: walk the field, buy seeds
// from the merchant, grow and harvest crops, and trade with the farmer
// until you can afford the silver trophy.
//
// Usage:
//
//	farm [play]        - Play the farm (default)
//	farm inventory     - Print the saved inventory
//	farm reset         - Reset the saved inventory to the starting 20 Gold
//	farm journal       - Browse recorded plants, harvests and trades
//	farm wins          - List trophy purchases
//	farm serve         - Start SSH server for remote play
//	farm sim           - Run the simulation headless and report frame rate
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: from config, 60)
//	--config <path>     - Custom farm config YAML
//	--pace <preset>     - Crop growth pace: relaxed, normal, fast
//	--save <path>       - Inventory save file (default: ~/.farm/inventory.txt)
//	--db <path>         - Journal database (default: ~/.farm/journal.db)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-farm/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagPace     string
	flagSavePath string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "farm",
	Short: "TUI Farm - Grow crops in your terminal",
	Long: `TUI Farm is a small farming game played in the terminal.

Buy seeds from the merchant, plant them on the plot, harvest the crops and
sell them to the farmer. Save up 1000 Gold to buy the silver trophy.

Available commands:
  play       - Play the farm (default)
  inventory  - Print the saved inventory
  reset      - Reset the saved inventory
  journal    - Browse the farm journal
  wins       - List trophy purchases
  serve      - Start SSH server for remote play
  sim        - Run the simulation headless

Examples:
  farm
  farm play --pace fast
  farm journal
  farm serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom farm config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPace, "pace", "", "Crop growth pace: relaxed, normal, fast")
	rootCmd.PersistentFlags().StringVar(&flagSavePath, "save", "", "Path to inventory save file (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to journal database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(inventoryCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(winsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}

// loadConfig resolves the farm config and applies the global flags.
// An unreadable --config file is fatal.
func loadConfig() config.FarmConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	pace, err := config.ParsePace(flagPace)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyPace(&cfg, pace)

	if flagFPS > 0 {
		cfg.Loop.FPS = flagFPS
	}
	if flagSavePath != "" {
		cfg.Save.Path = flagSavePath
	}
	if flagDBPath != "" {
		cfg.Save.Journal = flagDBPath
	}
	return cfg
}

// logLevel parses --log-level, falling back to info.
func logLevel() log.Level {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: unknown log level %q, using info\n", flagLogLevel)
		return log.InfoLevel
	}
	return level
}

// newLogger creates a logger writing to w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           logLevel(),
	})
}

// openLogFile opens the game log for appending. The interactive game cannot
// log to the terminal it draws on.
func openLogFile(path string) (*os.File, error) {
	path = config.ExpandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// playerName returns the local player's name for the journal.
func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-farm/internal/platform/tui"
	"github.com/vovakirdan/tui-farm/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the farm",
	Long: `Start the farm in the terminal.

Controls:
  W/A/S/D, arrows   - Walk
  E                 - Talk to a trader, plant or harvest on the plot
  I                 - Inventory
  P                 - Pause
  Enter/Space/click - Continue the dialogue
  Esc               - Leave a dialogue, trade or the inventory
  T                 - Save now
  ?                 - Help
  Q/Ctrl+C          - Save and quit

Pace options:
  relaxed - Crops take 15 seconds per stage
  normal  - Crops take 10 seconds per stage
  fast    - Crops take 5 seconds per stage

Examples:
  farm play
  farm play --pace fast
  farm play --save ./test-farm.txt
  farm play --config ./my-farm.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	width, height := 0, 0 // Zero lets the model use the game's preferred size
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	var logOut io.Writer = io.Discard
	if f, err := openLogFile(cfg.Save.Log); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
	} else {
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, "farm")

	// Open the journal
	store, err := storage.Open(cfg.Save.Journal)
	if err != nil {
		logger.Warn("could not open journal database", "error", err)
		// Continue without the journal - the game still works
		store = nil
	}

	rt := tui.NewRuntime(tui.RuntimeOptions{
		SavePath: cfg.Save.Path,
		Store:    store,
		Player:   playerName(),
		Logger:   logger,
	})
	logger.Info("starting farm", "save", rt.SavePath(), "fps", cfg.Loop.FPS, "stage_ms", cfg.Crops.StageDurationMS)

	runErr := tui.Run(tui.ModelOptions{
		Config:  cfg,
		Runtime: rt,
		Width:   width,
		Height:  height,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

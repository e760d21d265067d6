package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-farm/internal/core"
	"github.com/vovakirdan/tui-farm/internal/farm"
	"github.com/vovakirdan/tui-farm/internal/loop"
)

var (
	flagDuration  time.Duration
	flagShowFrame bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the farm headless",
	Long: `Run the simulation without a terminal UI and report the frame rate at
every flush. The player paces left and right across the field. Nothing is
saved.

Examples:
  farm sim
  farm sim --duration 10s --fps 30
  farm sim --frame`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().DurationVar(&flagDuration, "duration", 3*time.Second, "How long to run")
	simCmd.Flags().BoolVar(&flagShowFrame, "frame", false, "Print the last rendered frame")
}

// simHandler drives a game with scripted input.
type simHandler struct {
	game   *farm.Game
	input  *core.Input
	screen *core.Screen
	logger *log.Logger
	walk   core.Key
	last   core.Point
}

func newSimHandler(g *farm.Game, logger *log.Logger) *simHandler {
	w, h := g.ScreenSize()
	in := core.NewInput()
	in.Press(core.KeyRight)
	return &simHandler{
		game:   g,
		input:  in,
		screen: core.NewScreen(w, h),
		logger: logger,
		walk:   core.KeyRight,
		last:   g.Player().Position(),
	}
}

// Update turns the player around whenever it stops at a field edge.
func (h *simHandler) Update() {
	h.game.Update(h.input)
	pos := h.game.Player().Position()
	if pos == h.last {
		h.input.Release(h.walk)
		if h.walk == core.KeyRight {
			h.walk = core.KeyLeft
		} else {
			h.walk = core.KeyRight
		}
		h.input.Press(h.walk)
	}
	h.last = pos
}

func (h *simHandler) Render() {
	h.game.Render(h.screen)
}

func (h *simHandler) Flush(fps int) {
	s := h.game.Snapshot()
	h.logger.Info("flush", "fps", fps, "tick", s.Tick, "x", s.PlayerX, "facing", s.Facing)
}

func runSim(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger := newLogger(os.Stderr, "farm-sim")

	g := farm.New(cfg, farm.DefaultInventory(), loop.SystemClock{})
	h := newSimHandler(g, logger)
	driver := loop.NewDriver(cfg.Loop.FPS, cfg.FlushInterval())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, flagDuration)
	defer cancel()

	start := time.Now()
	err := driver.Run(ctx, loop.SystemClock{}, h)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	elapsed := time.Since(start)
	ticks := g.Ticks()
	fmt.Printf("Ran %d ticks in %s (%.1f per second, target %d)\n",
		ticks, elapsed.Round(time.Millisecond), float64(ticks)/elapsed.Seconds(), cfg.Loop.FPS)

	if flagShowFrame {
		fmt.Println(h.screen.String())
	}
}

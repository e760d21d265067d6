// Package tui runs the farm in a terminal with Bubble Tea: it turns key
// and mouse events into the game's input snapshot, drives the fixed-step
// loop from timer ticks, presents prompts and persists progress.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to poll the loop driver.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// pollInterval is how often the loop driver is polled. Polling at twice the
// frame rate lets the driver catch up one frame per poll after a stall.
func pollInterval(frame time.Duration) time.Duration {
	if frame <= time.Millisecond {
		return time.Millisecond
	}
	return frame / 2
}

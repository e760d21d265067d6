package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-farm/internal/config"
	"github.com/vovakirdan/tui-farm/internal/core"
	"github.com/vovakirdan/tui-farm/internal/farm"
	"github.com/vovakirdan/tui-farm/internal/loop"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model that runs one farm.
type Model struct {
	game    *farm.Game
	runtime *Runtime
	driver  *loop.Driver
	clock   loop.Clock
	input   *core.Input
	holds   *HoldTracker
	screen  *core.Screen
	prompt  *PromptView
	keys    KeyMap
	help    help.Model

	width    int
	height   int
	fps      int
	quitting bool
}

// ModelOptions configures NewModel.
type ModelOptions struct {
	Config  config.FarmConfig
	Runtime *Runtime
	Clock   loop.Clock // Defaults to the system clock
	Width   int        // Initial terminal size, the game's preferred size when zero
	Height  int
}

// NewModel loads the farm through the runtime and wraps it in a model.
func NewModel(opts ModelOptions) Model {
	clk := opts.Clock
	if clk == nil {
		clk = loop.SystemClock{}
	}
	rt := opts.Runtime
	if rt == nil {
		rt = NewRuntime(RuntimeOptions{SavePath: opts.Config.Save.Path})
	}

	game := rt.NewGame(opts.Config, clk)
	w, h := opts.Width, opts.Height
	if w <= 0 || h <= 0 {
		w, h = game.ScreenSize()
		h++
	}

	m := Model{
		game:    game,
		runtime: rt,
		driver:  loop.NewDriver(opts.Config.Loop.FPS, opts.Config.FlushInterval()),
		clock:   clk,
		input:   core.NewInput(),
		holds:   NewHoldTracker(opts.Config.InitialHold(), opts.Config.RepeatHold()),
		screen:  core.NewScreen(w, h-1),
		prompt:  &PromptView{},
		keys:    DefaultKeyMap(),
		help:    help.New(),
		width:   w,
		height:  h,
	}
	m.help.Width = w
	return m
}

// Game returns the running farm.
func (m Model) Game() *farm.Game {
	return m.game
}

// FPS returns the update count of the last flush window.
func (m Model) FPS() int {
	return m.fps
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(pollInterval(m.driver.Interval()))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		//nolint:errcheck // Failures are logged by the runtime
		m.runtime.Close(m.game, m.clock.Now())
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.width, core.Max(m.height-m.helpRows(), 0))
		return m, nil
	}

	if p, ok := m.game.Prompt(); ok {
		m.handlePromptKey(p, msg)
		return m, nil
	}

	if key.Matches(msg, m.keys.Click) {
		m.input.Click()
		return m, nil
	}

	k := m.keys.MapKey(msg)
	switch k {
	case core.KeyNone:
		return m, nil
	case core.KeyAction:
		m.saveNow()
		return m, nil
	}

	// Movement repeats only refresh the hold; other keys act on every event.
	fresh := m.holds.Touch(k, m.clock.Now())
	if fresh || !k.IsMovement() {
		m.input.Press(k)
	}
	return m, nil
}

// handlePromptKey answers or navigates the pending prompt.
func (m Model) handlePromptKey(p farm.Prompt, msg tea.KeyMsg) {
	// Escape inside a conversation abandons it; the game handles that on
	// its next frozen tick.
	if key.Matches(msg, m.keys.Escape) && m.game.State().Conversational() {
		m.input.Press(core.KeyEscape)
		m.holds.Touch(core.KeyEscape, m.clock.Now())
		m.prompt.Reset()
		return
	}

	action := m.keys.MapPromptKey(msg)
	if resp, done := m.prompt.Handle(p, action); done {
		m.game.Answer(resp)
		m.prompt.Reset()
	}
}

// handleMouse turns a left press into a dialogue click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if p, ok := m.game.Prompt(); ok {
		if p.Kind == farm.PromptNotice {
			m.game.Answer(farm.Response{})
			m.prompt.Reset()
		}
		return m, nil
	}
	m.input.Click()
	return m, nil
}

// handleResize processes window resize events. The bottom rows are kept
// for the help bar.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-m.helpRows(), 0))
	m.help.Width = msg.Width
	return m, nil
}

// helpRows returns the number of rows the help bar needs.
func (m Model) helpRows() int {
	if !m.help.ShowAll {
		return 1
	}
	rows := 1
	for _, col := range m.keys.FullHelp() {
		rows = core.Max(rows, len(col))
	}
	return rows
}

// handleTick releases expired holds and runs whatever the driver says is due.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	now := m.clock.Now()
	for _, k := range m.holds.Expired(now) {
		m.input.Release(k)
	}

	st := m.driver.Step(now)
	if st.Update {
		m.game.Update(m.input)
	}
	if st.Flush {
		m.fps = st.FPS
		//nolint:errcheck // Failures are logged by the runtime
		m.runtime.Flush(m.game, st.FPS)
	}

	return m, tickCmd(pollInterval(m.driver.Interval()))
}

// saveNow flushes immediately and confirms with a notice.
func (m Model) saveNow() {
	if err := m.runtime.Flush(m.game, m.fps); err != nil {
		m.game.Notify("Save failed", err.Error())
		return
	}
	m.game.Notify("Saved", "Game saved.")
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if p, ok := m.game.Prompt(); ok {
		m.prompt.Draw(m.screen, p)
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	if !m.help.ShowAll && m.fps > 0 {
		b.WriteString(helpStyle.Render(fmt.Sprintf("  %d fps", m.fps)))
	}
	return b.String()
}

// Run starts the Bubble Tea program for a local farm.
func Run(opts ModelOptions) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok && !m.quitting {
		//nolint:errcheck // Failures are logged by the runtime
		m.runtime.Close(m.game, m.clock.Now())
	}
	return err
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-farm/internal/storage"
)

// Journal layout constants
const (
	journalMinWidth = 60  // Below this the detail column shrinks
	maxJournal      = 200 // Max events to load
)

// JournalView selects which events the journal lists.
type JournalView int

const (
	JournalRecent JournalView = iota
	JournalWins
)

// String returns the view title.
func (v JournalView) String() string {
	if v == JournalWins {
		return "Trophies"
	}
	return "Recent events"
}

// JournalKeyMap defines the key bindings for the journal.
type JournalKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k JournalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k JournalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Next, k.Quit},
	}
}

// DefaultJournalKeyMap returns default key bindings.
func DefaultJournalKeyMap() JournalKeyMap {
	return JournalKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "left", "right"),
			key.WithHelp("tab", "events/trophies"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// JournalModel is the Bubble Tea model for browsing the farm journal.
type JournalModel struct {
	store    *storage.Store
	player   string // Empty lists every player
	view     JournalView
	entries  []storage.EventEntry
	stats    *storage.PlayerStats
	err      error
	table    table.Model
	help     help.Model
	keys     JournalKeyMap
	width    int
	height   int
	quitting bool
}

// NewJournalModel creates a journal model for player.
func NewJournalModel(store *storage.Store, player string, width, height int) JournalModel {
	m := JournalModel{
		store:  store,
		player: player,
		keys:   DefaultJournalKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *JournalModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 13},
		{Title: "Player", Width: 10},
		{Title: "Event", Width: 9},
		{Title: "Detail", Width: 30},
		{Title: "Gold", Width: 6},
	}

	// Give the detail column whatever space is left
	fixed := 13 + 10 + 9 + 6 + 12
	if m.width >= journalMinWidth {
		columns[3].Width = clampWidth(m.width-4-fixed, 16, 60)
	} else {
		columns[3].Width = 16
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// clampWidth clamps v to [lo, hi].
func clampWidth(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// load reads the current view from the store.
func (m *JournalModel) load() {
	m.entries, m.err = nil, nil
	if m.store == nil {
		m.updateTableRows()
		return
	}

	switch m.view {
	case JournalWins:
		m.entries, m.err = m.store.Wins(m.player)
	default:
		m.entries, m.err = m.store.RecentEvents(m.player, maxJournal)
	}
	if m.player != "" && m.stats == nil {
		if stats, err := m.store.Stats(m.player); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded entries.
func (m *JournalModel) updateTableRows() {
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		gold := ""
		if e.GoldDelta != 0 {
			gold = fmt.Sprintf("%+d", e.GoldDelta)
		}
		rows[i] = table.Row{
			e.CreatedAt.Local().Format("Jan 02 15:04"),
			e.Player,
			string(e.Kind),
			e.Detail,
			gold,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the journal model.
func (m JournalModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the journal.
func (m JournalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			if m.view == JournalRecent {
				m.view = JournalWins
			} else {
				m.view = JournalRecent
			}
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the journal.
func (m JournalModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "FARM JOURNAL - " + m.view.String()
	if m.player != "" {
		title += " - " + m.player
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")

	if m.stats != nil {
		summary := fmt.Sprintf("%d sessions  %d planted  %d harvested  %d trades  %d trophies  +%d/-%d gold",
			m.stats.Sessions, m.stats.Plants, m.stats.Harvests, m.stats.Trades,
			m.stats.Wins, m.stats.GoldEarned, m.stats.GoldSpent)
		b.WriteString(helpStyle.Render(centerText(summary, m.width)))
	}
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m JournalModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("The journal database is not available.")
	case m.err != nil:
		return emptyStyle.Render("Could not read the journal:\n" + m.err.Error())
	case len(m.entries) == 0 && m.view == JournalWins:
		return emptyStyle.Render("No trophies yet.\nSave up 1000 Gold and visit the farmer!")
	case len(m.entries) == 0:
		return emptyStyle.Render("Nothing recorded yet.\nPlant something!")
	}
	return m.table.View()
}

// Entries returns the loaded journal rows.
func (m JournalModel) Entries() []storage.EventEntry {
	return m.entries
}

// CurrentView returns the active journal view.
func (m JournalModel) CurrentView() JournalView {
	return m.view
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunJournal runs the journal screen.
func RunJournal(store *storage.Store, player string, width, height int) error {
	model := NewJournalModel(store, player, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

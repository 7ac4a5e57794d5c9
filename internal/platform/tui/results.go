package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/monster-battle/internal/storage"
)

// Results layout constants
const (
	maxRounds       = 100 // Max rounds to load
	tableChromeRows = 8   // Title, stats, help and margins
)

// ResultsSource provides recorded rounds.
type ResultsSource interface {
	RecentRounds(limit int) ([]storage.Round, error)
	Stats() (*storage.Stats, error)
	ClearRounds() error
}

// ResultsKeyMap defines the key bindings for the results viewer.
type ResultsKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Clear key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ResultsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Clear, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ResultsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Clear, k.Quit}}
}

// DefaultResultsKeyMap returns default key bindings.
func DefaultResultsKeyMap() ResultsKeyMap {
	return ResultsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Clear: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "clear all"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// ResultsModel is the Bubble Tea model for the results screen.
type ResultsModel struct {
	source   ResultsSource
	rounds   []storage.Round
	stats    *storage.Stats
	err      error
	table    table.Model
	help     help.Model
	keys     ResultsKeyMap
	width    int
	height   int
	quitting bool
}

// NewResultsModel creates a results viewer and loads the rounds.
func NewResultsModel(source ResultsSource, width, height int) ResultsModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := ResultsModel{
		source: source,
		keys:   DefaultResultsKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized to the terminal.
func (m *ResultsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Outcome", Width: 9},
		{Title: "Time", Width: 8},
		{Title: "Health", Width: 7},
		{Title: "Hits", Width: 5},
		{Title: "Date", Width: 14},
		{Title: "Round", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-tableChromeRows, 1)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads rounds and stats from the source.
func (m *ResultsModel) load() {
	m.rounds, m.stats, m.err = nil, nil, nil
	if m.source == nil {
		m.updateTableRows()
		return
	}

	rounds, err := m.source.RecentRounds(maxRounds)
	if err != nil {
		m.err = err
	} else {
		m.rounds = rounds
	}
	if stats, err := m.source.Stats(); err == nil {
		m.stats = stats
	} else if m.err == nil {
		m.err = err
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current rounds.
func (m *ResultsModel) updateTableRows() {
	m.table.SetRows(ResultRows(m.rounds))
	m.table.GotoTop()
}

// ResultRows formats rounds as table rows, newest first.
func ResultRows(rounds []storage.Round) []table.Row {
	rows := make([]table.Row, len(rounds))
	for i, r := range rounds {
		id := r.RoundID
		if len(id) > 8 {
			id = id[:8]
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			strings.ToUpper(r.Outcome),
			fmt.Sprintf("%.1fs", r.Duration),
			fmt.Sprintf("%d", r.PlayerHealth),
			fmt.Sprintf("%d", r.Hits),
			r.CreatedAt.Format("Jan 02 15:04"),
			id,
		}
	}
	return rows
}

// StatsLine summarizes the stats in one line.
func StatsLine(s *storage.Stats) string {
	if s == nil || s.Rounds == 0 {
		return "No rounds recorded yet."
	}
	line := fmt.Sprintf("Rounds: %d  Wins: %d  Losses: %d", s.Rounds, s.Wins, s.Losses)
	if s.Wins > 0 {
		line += fmt.Sprintf("  Best victory: %.1fs", s.BestVictory)
	}
	return line
}

// Init initializes the results model.
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the results viewer.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Clear):
			if m.source != nil {
				if err := m.source.ClearRounds(); err != nil {
					m.err = err
					return m, nil
				}
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

// View renders the results.
func (m ResultsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("MONSTER BATTLE RESULTS", m.width)))
	b.WriteString("\n\n")

	b.WriteString(StatsLine(m.stats))
	b.WriteString("\n\n")

	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
		b.WriteString(errStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n\n")
	}

	b.WriteString(m.table.View())

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// centerText pads text to center it in the given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunResults starts the results viewer.
func RunResults(source ResultsSource, width, height int) error {
	p := tea.NewProgram(
		NewResultsModel(source, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/monster-battle/internal/core"
	"github.com/vovakirdan/monster-battle/internal/session"
)

// helpHeight is the number of rows reserved below the arena.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for the battle.
type Model struct {
	session  *session.Session
	screen   *core.Screen
	renderer *ScreenRenderer
	keys     KeyMap
	help     help.Model
	holds    *holdTracker
	clock    *frameClock
	fps      int
	now      func() time.Time
	quitting bool
}

// NewModel creates a model drawing into the terminal described by rc.
func NewModel(sess *session.Session, rc core.RuntimeConfig) Model {
	screen := core.NewScreen(rc.ScreenW, arenaRows(rc.ScreenH))
	h := help.New()
	h.Width = rc.ScreenW

	return Model{
		session:  sess,
		screen:   screen,
		renderer: NewScreenRenderer(screen, sess.Game().Config()),
		keys:     DefaultKeyMap(),
		help:     h,
		holds:    newHoldTracker(),
		clock:    &frameClock{},
		fps:      rc.TickRate,
		now:      time.Now,
	}
}

func arenaRows(height int) int {
	return core.Max(height-helpHeight, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.holds.Report(m.keys.Action(msg), m.now())
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, arenaRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleTick runs one frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.clock.Tick(now)
	in := m.holds.Frame(now)

	if m.session.Frame(in, dt) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.fps)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Draw(m.renderer)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the session.
func Run(sess *session.Session, rc core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(sess, rc),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

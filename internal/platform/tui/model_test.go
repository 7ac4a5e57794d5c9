package tui

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/monster-battle/internal/audio"
	"github.com/vovakirdan/monster-battle/internal/battle"
	"github.com/vovakirdan/monster-battle/internal/config"
	"github.com/vovakirdan/monster-battle/internal/core"
	"github.com/vovakirdan/monster-battle/internal/session"
	"github.com/vovakirdan/monster-battle/internal/storage"
)

func newTestModel(t *testing.T) (Model, *time.Time) {
	t.Helper()
	sess := session.New(battle.New(config.DefaultBattleConfig()), &audio.Nop{}, nil, log.New(io.Discard))
	m := NewModel(sess, core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60})

	now := time.Unix(1000, 0)
	m.now = func() time.Time { return now }
	return m, &now
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func TestModelConfirmStartsRound(t *testing.T) {
	m, now := newTestModel(t)

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := step(t, m, TickMsg(*now))

	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if got := m.session.Game().Mode(); got != battle.ModeGame {
		t.Errorf("mode = %v, want game", got)
	}
}

func TestModelHeldMovement(t *testing.T) {
	m, now := newTestModel(t)
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = step(t, m, TickMsg(*now))
	start := m.session.Game().Player().Pos

	// One right press, then frames without further key reports
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyRight})
	for i := 1; i <= 2; i++ {
		m, _ = step(t, m, TickMsg(now.Add(time.Duration(i)*125*time.Millisecond)))
	}

	// 0.25s at 300 units/s
	if got := m.session.Game().Player().Pos.X; got != start.X+75 {
		t.Errorf("x = %v, want %v", got, start.X+75)
	}
}

func TestModelQuit(t *testing.T) {
	m, now := newTestModel(t)

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m, cmd := step(t, m, TickMsg(*now))

	if !m.quitting {
		t.Error("model should be quitting")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelResize(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.screen.Width() != 120 || m.screen.Height() != 40-helpHeight {
		t.Errorf("screen = %dx%d, want 120x%d", m.screen.Width(), m.screen.Height(), 40-helpHeight)
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()

	if !strings.Contains(view, battle.TitleText) {
		t.Error("view missing title")
	}
	if !strings.Contains(view, "attack") {
		t.Error("view missing help line")
	}
}

type fakeSource struct {
	rounds  []storage.Round
	stats   *storage.Stats
	err     error
	cleared bool
}

func (s *fakeSource) RecentRounds(limit int) ([]storage.Round, error) {
	if s.err != nil {
		return nil, s.err
	}
	if len(s.rounds) > limit {
		return s.rounds[:limit], nil
	}
	return s.rounds, nil
}

func (s *fakeSource) Stats() (*storage.Stats, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.stats, nil
}

func (s *fakeSource) ClearRounds() error {
	s.cleared = true
	s.rounds = nil
	s.stats = &storage.Stats{}
	return nil
}

func TestResultRows(t *testing.T) {
	created := time.Date(2026, 3, 14, 15, 9, 0, 0, time.UTC)
	rows := ResultRows([]storage.Round{
		{RoundID: "0123456789abcdef", Outcome: storage.OutcomeVictory, Duration: 12.34, PlayerHealth: 55, Hits: 5, CreatedAt: created},
	})

	if len(rows) != 1 {
		t.Fatalf("got %d rows", len(rows))
	}
	want := []string{"1", "VICTORY", "12.3s", "55", "5", "Mar 14 15:09", "01234567"}
	for i, cell := range rows[0] {
		if cell != want[i] {
			t.Errorf("column %d = %q, want %q", i, cell, want[i])
		}
	}
}

func TestStatsLine(t *testing.T) {
	tests := []struct {
		name  string
		stats *storage.Stats
		want  string
	}{
		{"nil", nil, "No rounds recorded yet."},
		{"empty", &storage.Stats{}, "No rounds recorded yet."},
		{"losses only", &storage.Stats{Rounds: 2, Losses: 2}, "Rounds: 2  Wins: 0  Losses: 2"},
		{"with wins", &storage.Stats{Rounds: 3, Wins: 1, Losses: 2, BestVictory: 9.87}, "Rounds: 3  Wins: 1  Losses: 2  Best victory: 9.9s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatsLine(tt.stats); got != tt.want {
				t.Errorf("StatsLine = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResultsModel(t *testing.T) {
	src := &fakeSource{
		rounds: []storage.Round{{Outcome: storage.OutcomeDefeat}, {Outcome: storage.OutcomeVictory}},
		stats:  &storage.Stats{Rounds: 2, Wins: 1, Losses: 1, BestVictory: 20},
	}
	m := NewResultsModel(src, 100, 30)

	if got := len(m.table.Rows()); got != 2 {
		t.Errorf("table has %d rows, want 2", got)
	}
	if view := m.View(); !strings.Contains(view, "Wins: 1") {
		t.Errorf("view missing stats: %q", view)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'X'}})
	m = next.(ResultsModel)
	if !src.cleared || len(m.table.Rows()) != 0 {
		t.Error("clear key did not clear rounds")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = next.(ResultsModel)
	if !m.quitting || cmd == nil {
		t.Error("esc should quit")
	}
}

func TestResultsModelError(t *testing.T) {
	m := NewResultsModel(&fakeSource{err: errors.New("locked")}, 100, 30)

	if view := m.View(); !strings.Contains(view, "locked") {
		t.Errorf("view missing error: %q", view)
	}
}

// Package session connects a platform loop to the battle: it forwards input,
// triggers sounds, and records finished rounds.
package session

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/monster-battle/internal/battle"
	"github.com/vovakirdan/monster-battle/internal/core"
	"github.com/vovakirdan/monster-battle/internal/storage"
)

// Audio is the sound output used by a session.
type Audio interface {
	PlayAttack()
	UpdateMusic()
	ToggleMute() bool
}

// Recorder stores finished rounds.
type Recorder interface {
	SaveRound(r storage.Round) (int64, error)
}

// Session drives one game for the lifetime of the process.
type Session struct {
	game    *battle.Game
	audio   Audio
	rec     Recorder
	logger  *log.Logger
	roundID string
	last    battle.StepResult
}

// New creates a session. rec may be nil to disable recording.
func New(game *battle.Game, audio Audio, rec Recorder, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	return &Session{
		game:   game,
		audio:  audio,
		rec:    rec,
		logger: logger.With("game", game.ID()),
		last:   battle.StepResult{State: game.State()},
	}
}

// Game returns the underlying game.
func (s *Session) Game() *battle.Game {
	return s.game
}

// Last returns the result of the most recent step.
func (s *Session) Last() battle.StepResult {
	return s.last
}

// Frame runs one iteration of the loop. It returns true when the user asked
// to quit; the game is not stepped on that frame.
func (s *Session) Frame(in core.InputFrame, dt float64) bool {
	if in.Pressed(core.ActionQuit) {
		s.logger.Debug("quit requested", "mode", s.game.Mode())
		return true
	}

	s.audio.UpdateMusic()
	if in.Pressed(core.ActionMute) {
		muted := s.audio.ToggleMute()
		s.logger.Debug("audio toggled", "muted", muted)
	}

	s.last = s.game.Step(in, dt)
	for _, e := range s.last.Events {
		s.handle(e)
	}
	return false
}

// Draw renders the current frame.
func (s *Session) Draw(r battle.Renderer) {
	s.game.Render(r)
}

func (s *Session) handle(e battle.Event) {
	st := s.last.State
	switch e.Kind {
	case battle.EventRoundStart:
		s.roundID = uuid.NewString()
		s.logger.Info("round started", "round", s.roundID)

	case battle.EventAttackHit:
		s.audio.PlayAttack()
		s.logger.Debug("attack hit", "monster_health", st.MonsterHealth)

	case battle.EventVictory:
		s.finish(storage.OutcomeVictory, st)

	case battle.EventDefeat:
		s.finish(storage.OutcomeDefeat, st)

	case battle.EventReset:
		s.logger.Debug("back to menu")
	}
}

func (s *Session) finish(outcome string, st battle.State) {
	s.logger.Info("round finished",
		"round", s.roundID,
		"outcome", outcome,
		"time", st.RoundTime,
		"health", st.PlayerHealth,
		"hits", st.Hits,
	)

	if s.rec == nil {
		return
	}
	_, err := s.rec.SaveRound(storage.Round{
		RoundID:      s.roundID,
		Outcome:      outcome,
		Duration:     st.RoundTime,
		PlayerHealth: st.PlayerHealth,
		Hits:         st.Hits,
	})
	if err != nil {
		s.logger.Error("cannot record round", "round", s.roundID, "err", err)
	}
}

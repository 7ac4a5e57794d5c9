// Package battle implements Monster Battle: the player moves around an arena
// and fights a single monster that chases them. The package holds the round
// state machine, movement, pursuit and combat resolution. It has no platform
// dependencies; input arrives as core.InputFrame values and drawing goes
// through the Renderer interface.
package battle

import (
	"math"

	"github.com/vovakirdan/monster-battle/internal/config"
	"github.com/vovakirdan/monster-battle/internal/core"
)

// Game is the simulation context. Exactly one player and one monster exist
// for its lifetime; they are reset in place between rounds.
type Game struct {
	cfg     config.BattleConfig
	player  Player
	monster Monster
	mode    Mode
	victory bool

	// Round statistics
	roundTime float64
	hits      int
}

// New creates a game in ModeMenu with entities at their initial values.
// The config is expected to have passed Validate.
func New(cfg config.BattleConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset()
	return g
}

// ID returns the identifier used for result records and logs.
func (g *Game) ID() string {
	return "monster-battle"
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.cfg.Arena.Title
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.BattleConfig {
	return g.cfg
}

// Reset returns the game to the menu with fresh entities.
func (g *Game) Reset() {
	g.resetRound()
	g.mode = ModeMenu
	g.victory = false
}

// resetRound restores both entities and the round statistics.
func (g *Game) resetRound() {
	pc := g.cfg.Player
	g.player = Player{
		Pos:    core.Vec2{X: pc.StartX, Y: pc.StartY},
		Health: pc.Health,
		Speed:  pc.Speed,
		Width:  pc.Width,
		Height: pc.Height,
	}

	mc := g.cfg.Monster
	g.monster = Monster{
		Pos:    core.Vec2{X: mc.StartX, Y: mc.StartY},
		Health: mc.Health,
		Speed:  mc.Speed,
		Alive:  true,
		Width:  mc.Width,
		Height: mc.Height,
	}

	g.roundTime = 0
	g.hits = 0
}

// Step advances the battle by one frame of dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) StepResult {
	dt = g.frameTime(dt)

	var events []Event
	switch g.mode {
	case ModeMenu:
		if in.Pressed(core.ActionConfirm) {
			g.mode = ModeGame
			events = append(events, Event{Kind: EventRoundStart})
		}

	case ModeGame:
		events = g.updateRound(in, dt, events)

	case ModeGameOver:
		if in.Pressed(core.ActionConfirm) {
			g.resetRound()
			g.mode = ModeMenu
			events = append(events, Event{Kind: EventReset})
		}
	}

	return StepResult{State: g.State(), Events: events}
}

// frameTime sanitizes the elapsed time. Negative, NaN and infinite values
// become zero; when a maximum is configured larger values are capped to it.
func (g *Game) frameTime(dt float64) float64 {
	if !(dt > 0) || math.IsInf(dt, 0) {
		return 0
	}
	if limit := g.cfg.Timing.MaxFrameTime; limit > 0 && dt > limit {
		return limit
	}
	return dt
}

// updateRound runs one frame of the round in a fixed order: move, clamp,
// pursue, cool down, attack, contact damage.
func (g *Game) updateRound(in core.InputFrame, dt float64, events []Event) []Event {
	g.roundTime += dt
	p := &g.player
	m := &g.monster

	// Player movement, per axis and not normalized
	step := p.Speed * dt
	if in.Held(core.ActionRight) {
		p.Pos.X += step
	}
	if in.Held(core.ActionLeft) {
		p.Pos.X -= step
	}
	if in.Held(core.ActionUp) {
		p.Pos.Y -= step
	}
	if in.Held(core.ActionDown) {
		p.Pos.Y += step
	}

	// Keep the whole footprint inside the arena
	p.Pos.X = core.ClampF(p.Pos.X, 0, float64(g.cfg.Arena.Width)-p.Width)
	p.Pos.Y = core.ClampF(p.Pos.Y, 0, float64(g.cfg.Arena.Height)-p.Height)

	if m.Alive {
		m.seek(p.Pos, dt)
	}

	if p.AttackCooldown > 0 {
		p.AttackCooldown -= dt
	}

	if in.Pressed(core.ActionAttack) && p.CanAttack() && m.Alive && p.Box().Overlaps(m.Box()) {
		m.Health -= g.cfg.Player.AttackDamage
		p.AttackCooldown = g.cfg.Player.AttackCooldown
		g.hits++
		events = append(events, Event{Kind: EventAttackHit})

		if m.Health <= 0 {
			m.Alive = false
			g.finish(true)
			events = append(events, Event{Kind: EventVictory})
		}
	}

	if m.Alive && p.Box().Overlaps(m.Box()) {
		p.takeDamage(g.cfg.Monster.ContactDPS * dt)
		if p.Health <= 0 {
			g.finish(false)
			events = append(events, Event{Kind: EventDefeat})
		}
	}

	return events
}

// finish ends the round with the given outcome.
func (g *Game) finish(victory bool) {
	if g.player.Health < 0 {
		g.player.Health = 0
	}
	g.victory = victory
	g.mode = ModeGameOver
}

// Mode returns the current round state.
func (g *Game) Mode() Mode {
	return g.mode
}

// Player returns a copy of the player.
func (g *Game) Player() Player {
	return g.player
}

// Monster returns a copy of the monster.
func (g *Game) Monster() Monster {
	return g.monster
}

// State returns a snapshot of the battle.
func (g *Game) State() State {
	return State{
		Mode:          g.mode,
		Victory:       g.victory,
		PlayerHealth:  g.player.Health,
		MonsterHealth: g.monster.Health,
		MonsterAlive:  g.monster.Alive,
		Cooldown:      g.player.AttackCooldown,
		RoundTime:     g.roundTime,
		Hits:          g.hits,
	}
}

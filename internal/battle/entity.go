package battle

import (
	"math"

	"github.com/vovakirdan/monster-battle/internal/core"
)

// Player is the character controlled by the user.
type Player struct {
	Pos            core.Vec2
	Health         int
	Speed          float64 // Units per second
	AttackCooldown float64 // Seconds until the next attack is allowed; only the sign matters
	Width, Height  float64 // Footprint

	// pendingDamage holds contact damage below one health point that has
	// not been taken yet, so damage accumulates continuously across frames.
	pendingDamage float64
}

// Box returns the player's collision footprint.
func (p *Player) Box() core.Box {
	return core.NewBox(p.Pos, p.Width, p.Height)
}

// CanAttack reports whether the attack cooldown has elapsed.
func (p *Player) CanAttack() bool {
	return p.AttackCooldown <= 0
}

// takeDamage applies a fractional amount of damage. Whole points are
// subtracted from Health, the remainder is carried to the next call.
// Health is floored at zero.
func (p *Player) takeDamage(amount float64) {
	p.pendingDamage += amount
	whole := math.Floor(p.pendingDamage)
	p.pendingDamage -= whole

	if whole >= float64(p.Health) {
		p.Health = 0
		return
	}
	p.Health -= int(whole)
}

// Monster is the single enemy pursuing the player.
type Monster struct {
	Pos           core.Vec2
	Health        int
	Speed         float64
	Alive         bool
	Width, Height float64
}

// Box returns the monster's collision footprint.
func (m *Monster) Box() core.Box {
	return core.NewBox(m.Pos, m.Width, m.Height)
}

// seek moves the monster straight toward target by Speed*dt.
// A monster already on the target does not move.
func (m *Monster) seek(target core.Vec2, dt float64) {
	dir := target.Sub(m.Pos)
	if dir.Len() == 0 {
		return
	}
	m.Pos = m.Pos.Add(dir.Normalize().Scale(m.Speed * dt))
}

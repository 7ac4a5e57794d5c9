package battle

import (
	"fmt"

	"github.com/vovakirdan/monster-battle/internal/core"
)

// Sprite identifies an entity image for the renderer.
type Sprite int

const (
	SpritePlayer Sprite = iota
	SpriteMonster
)

// Renderer is the drawing side of the presentation layer.
// All positions are in logical arena units; the renderer scales them to its
// surface. Draw calls are issued only between BeginFrame and EndFrame.
type Renderer interface {
	BeginFrame()
	DrawBackground()
	DrawSprite(s Sprite, pos core.Vec2)
	DrawText(text string, pos core.Vec2, size int, c core.Color)
	// MeasureText returns the width of text at the given size in arena units.
	MeasureText(text string, size int) float64
	EndFrame()
}

// Text layout, in arena units
const (
	titleY       = 200
	subtitleY    = 300
	titleSize    = 40
	outcomeSize  = 50
	subtitleSize = 20
	hudX         = 20
	hudY         = 20
	hudSize      = 20
)

// Screen texts
const (
	TitleText    = "MONSTER BATTLE"
	StartText    = "Press [ENTER] to start"
	VictoryText  = "VICTORY!"
	DefeatText   = "DEFEAT!"
	ContinueText = "Press [ENTER] to return to menu"
)

// Render draws the current frame.
func (g *Game) Render(r Renderer) {
	r.BeginFrame()
	r.DrawBackground()

	switch g.mode {
	case ModeMenu:
		g.drawCentered(r, TitleText, titleY, titleSize, core.ColorDarkBlue)
		g.drawCentered(r, StartText, subtitleY, subtitleSize, core.ColorDarkGray)

	case ModeGame:
		r.DrawSprite(SpritePlayer, g.player.Pos)
		if g.monster.Alive {
			r.DrawSprite(SpriteMonster, g.monster.Pos)
		}
		hud := fmt.Sprintf("Player Health: %d", g.player.Health)
		r.DrawText(hud, core.Vec2{X: hudX, Y: hudY}, hudSize, core.ColorRed)

	case ModeGameOver:
		if g.victory {
			g.drawCentered(r, VictoryText, titleY, outcomeSize, core.ColorGreen)
		} else {
			g.drawCentered(r, DefeatText, titleY, outcomeSize, core.ColorRed)
		}
		g.drawCentered(r, ContinueText, subtitleY, subtitleSize, core.ColorDarkGray)
	}

	r.EndFrame()
}

// drawCentered draws text centered horizontally on the arena.
func (g *Game) drawCentered(r Renderer, text string, y float64, size int, c core.Color) {
	x := float64(g.cfg.Arena.Width)/2 - r.MeasureText(text, size)/2
	r.DrawText(text, core.Vec2{X: x, Y: y}, size, c)
}

package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/monster-battle/internal/battle"
	"github.com/vovakirdan/monster-battle/internal/config"
	"github.com/vovakirdan/monster-battle/internal/core"
)

// floorTile is the checkerboard tile size used without a background image.
const floorTile = 80

var _ battle.Renderer = (*Renderer)(nil)

// Renderer draws the battle onto an ebiten image.
type Renderer struct {
	target *ebiten.Image
	assets *Assets
	fonts  *fontCache
	arenaW float32
	arenaH float32
}

// newRenderer creates a renderer for an arena of the configured size.
func newRenderer(assets *Assets, fonts *fontCache, cfg config.BattleConfig) *Renderer {
	return &Renderer{
		assets: assets,
		fonts:  fonts,
		arenaW: float32(cfg.Arena.Width),
		arenaH: float32(cfg.Arena.Height),
	}
}

// SetTarget sets the image the next frame is drawn on.
func (r *Renderer) SetTarget(img *ebiten.Image) {
	r.target = img
}

func (r *Renderer) BeginFrame() {
	r.target.Fill(clearColor)
}

// DrawBackground stretches the background image over the arena, or draws a
// checkerboard floor when none was loaded.
func (r *Renderer) DrawBackground() {
	if bg := r.assets.background; bg != nil {
		size := bg.Bounds().Size()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(r.arenaW)/float64(size.X), float64(r.arenaH)/float64(size.Y))
		r.target.DrawImage(bg, op)
		return
	}

	for y := float32(0); y < r.arenaH; y += floorTile {
		for x := float32(0); x < r.arenaW; x += floorTile {
			if int(x/floorTile+y/floorTile)%2 == 0 {
				vector.DrawFilledRect(r.target, x, y, floorTile, floorTile, floorColor, false)
			}
		}
	}
}

func (r *Renderer) DrawSprite(s battle.Sprite, pos core.Vec2) {
	img := r.assets.Sprite(s)
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	r.target.DrawImage(img, op)
}

// DrawText draws text with its top-left corner at pos.
func (r *Renderer) DrawText(s string, pos core.Vec2, size int, c core.Color) {
	baseline := int(pos.Y) + r.fonts.ascent(size)
	text.Draw(r.target, s, r.fonts.face(size), int(pos.X), baseline, rgba(c))
}

func (r *Renderer) MeasureText(s string, size int) float64 {
	return r.fonts.measure(s, size)
}

func (r *Renderer) EndFrame() {}

package window

import (
	"image"
	"image/color"
	_ "image/png" // sprite decoding
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/monster-battle/internal/battle"
	"github.com/vovakirdan/monster-battle/internal/config"
)

var placeholderColors = map[battle.Sprite]color.RGBA{
	battle.SpritePlayer:  {0, 121, 241, 255},
	battle.SpriteMonster: {190, 33, 55, 255},
}

// Assets holds the textures used by the renderer.
type Assets struct {
	sprites    map[battle.Sprite]*ebiten.Image
	sizes      map[battle.Sprite]image.Point // Only sprites loaded from disk
	background *ebiten.Image
}

// LoadAssets loads sprites from disk. Missing or unreadable files are logged
// and replaced by flat placeholders sized to the configured footprint.
func LoadAssets(cfg config.BattleConfig, logger *log.Logger) *Assets {
	a := &Assets{
		sprites: make(map[battle.Sprite]*ebiten.Image),
		sizes:   make(map[battle.Sprite]image.Point),
	}

	files := map[battle.Sprite]string{
		battle.SpritePlayer:  cfg.Assets.Player,
		battle.SpriteMonster: cfg.Assets.Monster,
	}
	footprints := map[battle.Sprite][2]float64{
		battle.SpritePlayer:  {cfg.Player.Width, cfg.Player.Height},
		battle.SpriteMonster: {cfg.Monster.Width, cfg.Monster.Height},
	}

	for s, name := range files {
		if img, ok := loadImage(cfg.Assets.Dir, name, logger); ok {
			a.sprites[s] = img
			a.sizes[s] = img.Bounds().Size()
			continue
		}
		fp := footprints[s]
		img := ebiten.NewImage(max(int(fp[0]), 1), max(int(fp[1]), 1))
		img.Fill(placeholderColors[s])
		a.sprites[s] = img
	}

	if img, ok := loadImage(cfg.Assets.Dir, cfg.Assets.Background, logger); ok {
		a.background = img
	}
	return a
}

func loadImage(dir, name string, logger *log.Logger) (*ebiten.Image, bool) {
	if name == "" {
		return nil, false
	}
	path := filepath.Join(dir, name)
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		logger.Warn("image unavailable, using placeholder", "path", path, "err", err)
		return nil, false
	}
	logger.Debug("image loaded", "path", path, "size", img.Bounds().Size())
	return img, true
}

// Sprite returns the texture for s.
func (a *Assets) Sprite(s battle.Sprite) *ebiten.Image {
	return a.sprites[s]
}

// ApplyFootprints returns cfg with entity footprints replaced by the
// dimensions of the sprites loaded from disk.
func (a *Assets) ApplyFootprints(cfg config.BattleConfig) config.BattleConfig {
	return applyFootprints(cfg, a.sizes)
}

func applyFootprints(cfg config.BattleConfig, sizes map[battle.Sprite]image.Point) config.BattleConfig {
	if p, ok := sizes[battle.SpritePlayer]; ok && p.X > 0 && p.Y > 0 {
		cfg.Player.Width = float64(p.X)
		cfg.Player.Height = float64(p.Y)
	}
	if p, ok := sizes[battle.SpriteMonster]; ok && p.X > 0 && p.Y > 0 {
		cfg.Monster.Width = float64(p.X)
		cfg.Monster.Height = float64(p.Y)
	}
	return cfg
}

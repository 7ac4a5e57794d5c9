// Package window runs the battle in a desktop window using Ebitengine.
package window

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/monster-battle/internal/session"
)

// App adapts a session to ebiten.Game.
type App struct {
	session        *session.Session
	renderer       *Renderer
	keys           keyState
	lastUpdateTime time.Time
	width, height  int
}

// NewApp creates the window app for sess.
func NewApp(sess *session.Session, renderer *Renderer) *App {
	cfg := sess.Game().Config()
	return &App{
		session:  sess,
		renderer: renderer,
		keys:     ebitenKeys{},
		width:    cfg.Arena.Width,
		height:   cfg.Arena.Height,
	}
}

// Update advances one frame by the wall-clock time since the previous one.
func (a *App) Update() error {
	now := time.Now()
	var dt float64
	if !a.lastUpdateTime.IsZero() {
		dt = now.Sub(a.lastUpdateTime).Seconds()
	}
	a.lastUpdateTime = now

	if a.session.Frame(readInput(a.keys, ebiten.IsWindowBeingClosed()), dt) {
		return ebiten.Termination
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.SetTarget(screen)
	a.session.Draw(a.renderer)
}

// Layout keeps the logical arena size regardless of the window size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// Run opens the window and blocks until the player quits.
func Run(sess *session.Session, assets *Assets, logger *log.Logger) error {
	cfg := sess.Game().Config()

	fonts, err := newFontCache()
	if err != nil {
		return err
	}
	defer fonts.Close()

	ebiten.SetWindowSize(cfg.Arena.Width, cfg.Arena.Height)
	ebiten.SetWindowTitle(sess.Game().Title())
	ebiten.SetTPS(cfg.Timing.FPS)
	ebiten.SetWindowClosingHandled(true)

	logger.Info("window opened", "width", cfg.Arena.Width, "height", cfg.Arena.Height, "tps", cfg.Timing.FPS)
	if err := ebiten.RunGame(NewApp(sess, newRenderer(assets, fonts, cfg))); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

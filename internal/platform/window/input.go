package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/monster-battle/internal/core"
)

type keyBinding struct {
	key    ebiten.Key
	action core.Action
}

// bindings maps physical keys to actions. Several keys may share an action.
var bindings = []keyBinding{
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyW, core.ActionUp},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyS, core.ActionDown},
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeySpace, core.ActionAttack},
	{ebiten.KeyEnter, core.ActionConfirm},
	{ebiten.KeyNumpadEnter, core.ActionConfirm},
	{ebiten.KeyM, core.ActionMute},
	{ebiten.KeyEscape, core.ActionQuit},
}

// keyState reports keyboard state for the current tick.
type keyState interface {
	JustPressed(k ebiten.Key) bool
	Pressed(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }
func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }

// readInput builds the frame input. A window close request counts as a
// quit press.
func readInput(keys keyState, closing bool) core.InputFrame {
	in := core.NewInputFrame()
	for _, b := range bindings {
		if keys.JustPressed(b.key) {
			in.Press(b.action)
		}
		if keys.Pressed(b.key) {
			in.Hold(b.action)
		}
	}
	if closing {
		in.Press(core.ActionQuit)
	}
	return in
}

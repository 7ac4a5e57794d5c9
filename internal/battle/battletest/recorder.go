// Package battletest provides a recording battle.Renderer for tests.
package battletest

import (
	"github.com/vovakirdan/monster-battle/internal/battle"
	"github.com/vovakirdan/monster-battle/internal/core"
)

// Op names a recorded renderer call.
type Op string

const (
	OpBegin      Op = "begin"
	OpBackground Op = "background"
	OpSprite     Op = "sprite"
	OpText       Op = "text"
	OpEnd        Op = "end"
)

// Command is one recorded renderer call.
type Command struct {
	Op     Op
	Sprite battle.Sprite
	Text   string
	Pos    core.Vec2
	Size   int
	Color  core.Color
}

// Recorder implements battle.Renderer by recording every call.
// Text is measured as half the font size per rune.
type Recorder struct {
	Commands []Command
}

var _ battle.Renderer = (*Recorder)(nil)

// BeginFrame discards the previous frame and records the bracket.
func (r *Recorder) BeginFrame() {
	r.Commands = r.Commands[:0]
	r.Commands = append(r.Commands, Command{Op: OpBegin})
}

func (r *Recorder) DrawBackground() {
	r.Commands = append(r.Commands, Command{Op: OpBackground})
}

func (r *Recorder) DrawSprite(s battle.Sprite, pos core.Vec2) {
	r.Commands = append(r.Commands, Command{Op: OpSprite, Sprite: s, Pos: pos})
}

func (r *Recorder) DrawText(text string, pos core.Vec2, size int, c core.Color) {
	r.Commands = append(r.Commands, Command{Op: OpText, Text: text, Pos: pos, Size: size, Color: c})
}

func (r *Recorder) MeasureText(text string, size int) float64 {
	return float64(len([]rune(text)) * size / 2)
}

func (r *Recorder) EndFrame() {
	r.Commands = append(r.Commands, Command{Op: OpEnd})
}

// Sprites returns the sprites drawn in the last frame, in order.
func (r *Recorder) Sprites() []battle.Sprite {
	var out []battle.Sprite
	for _, c := range r.Commands {
		if c.Op == OpSprite {
			out = append(out, c.Sprite)
		}
	}
	return out
}

// Texts returns the text commands of the last frame, in order.
func (r *Recorder) Texts() []Command {
	var out []Command
	for _, c := range r.Commands {
		if c.Op == OpText {
			out = append(out, c)
		}
	}
	return out
}

package battle_test

import (
	"testing"

	"github.com/vovakirdan/monster-battle/internal/battle"
	"github.com/vovakirdan/monster-battle/internal/battle/battletest"
	"github.com/vovakirdan/monster-battle/internal/config"
	"github.com/vovakirdan/monster-battle/internal/core"
)

func confirm() core.InputFrame {
	in := core.NewInputFrame()
	in.Press(core.ActionConfirm)
	in.Hold(core.ActionConfirm)
	return in
}

func attack() core.InputFrame {
	in := core.NewInputFrame()
	in.Press(core.ActionAttack)
	in.Hold(core.ActionAttack)
	return in
}

// stackedConfig starts the monster on top of the player.
func stackedConfig() config.BattleConfig {
	cfg := config.DefaultBattleConfig()
	cfg.Monster.StartX = cfg.Player.StartX
	cfg.Monster.StartY = cfg.Player.StartY
	return cfg
}

func TestRenderFrameBrackets(t *testing.T) {
	g := battle.New(config.DefaultBattleConfig())
	var rec battletest.Recorder

	for _, in := range []core.InputFrame{core.NewInputFrame(), confirm()} {
		g.Step(in, 0)
		g.Render(&rec)

		n := len(rec.Commands)
		if n < 3 {
			t.Fatalf("mode %v: only %d commands", g.Mode(), n)
		}
		if rec.Commands[0].Op != battletest.OpBegin || rec.Commands[n-1].Op != battletest.OpEnd {
			t.Errorf("mode %v: frame not bracketed: %v", g.Mode(), rec.Commands)
		}
		if rec.Commands[1].Op != battletest.OpBackground {
			t.Errorf("mode %v: background not drawn first", g.Mode())
		}
	}
}

func TestRenderMenu(t *testing.T) {
	g := battle.New(config.DefaultBattleConfig())
	var rec battletest.Recorder

	g.Render(&rec)

	if len(rec.Sprites()) != 0 {
		t.Errorf("menu drew sprites: %v", rec.Sprites())
	}
	texts := rec.Texts()
	if len(texts) != 2 {
		t.Fatalf("got %d texts, want 2", len(texts))
	}

	title := texts[0]
	if title.Text != battle.TitleText || title.Size != 40 || title.Color != core.ColorDarkBlue {
		t.Errorf("title = %+v", title)
	}
	// 14 runes at 20 units each, centred on 640
	if title.Pos != (core.Vec2{X: 500, Y: 200}) {
		t.Errorf("title pos = %+v, want (500,200)", title.Pos)
	}

	prompt := texts[1]
	if prompt.Text != battle.StartText || prompt.Size != 20 || prompt.Color != core.ColorDarkGray || prompt.Pos.Y != 300 {
		t.Errorf("prompt = %+v", prompt)
	}
}

func TestRenderGame(t *testing.T) {
	g := battle.New(config.DefaultBattleConfig())
	var rec battletest.Recorder
	g.Step(confirm(), 0)

	g.Render(&rec)

	sprites := rec.Sprites()
	if len(sprites) != 2 || sprites[0] != battle.SpritePlayer || sprites[1] != battle.SpriteMonster {
		t.Errorf("sprites = %v, want player then monster", sprites)
	}
	texts := rec.Texts()
	if len(texts) != 1 {
		t.Fatalf("got %d texts, want HUD only", len(texts))
	}
	hud := texts[0]
	if hud.Text != "Player Health: 100" || hud.Pos != (core.Vec2{X: 20, Y: 20}) || hud.Size != 20 || hud.Color != core.ColorRed {
		t.Errorf("hud = %+v", hud)
	}
}

func TestRenderSpritePositions(t *testing.T) {
	g := battle.New(config.DefaultBattleConfig())
	var rec battletest.Recorder
	g.Step(confirm(), 0)

	g.Render(&rec)

	for _, c := range rec.Commands {
		if c.Op != battletest.OpSprite {
			continue
		}
		switch c.Sprite {
		case battle.SpritePlayer:
			if c.Pos != g.Player().Pos {
				t.Errorf("player drawn at %+v, want %+v", c.Pos, g.Player().Pos)
			}
		case battle.SpriteMonster:
			if c.Pos != g.Monster().Pos {
				t.Errorf("monster drawn at %+v, want %+v", c.Pos, g.Monster().Pos)
			}
		}
	}
}

func TestRenderHUDTracksHealth(t *testing.T) {
	g := battle.New(stackedConfig())
	var rec battletest.Recorder
	g.Step(confirm(), 0)
	g.Step(core.NewInputFrame(), 1.0)

	g.Render(&rec)

	texts := rec.Texts()
	if len(texts) != 1 || texts[0].Text != "Player Health: 70" {
		t.Errorf("texts = %+v, want HUD with 70", texts)
	}
}

func TestRenderVictory(t *testing.T) {
	cfg := stackedConfig()
	cfg.Monster.Health = 20
	g := battle.New(cfg)
	var rec battletest.Recorder
	g.Step(confirm(), 0)
	res := g.Step(attack(), 0)
	if !res.Has(battle.EventVictory) {
		t.Fatalf("expected victory, got %v", res.Events)
	}

	g.Render(&rec)

	if len(rec.Sprites()) != 0 {
		t.Errorf("game over drew sprites: %v", rec.Sprites())
	}
	texts := rec.Texts()
	if len(texts) != 2 {
		t.Fatalf("got %d texts, want 2", len(texts))
	}
	if texts[0].Text != battle.VictoryText || texts[0].Color != core.ColorGreen || texts[0].Size != 50 {
		t.Errorf("outcome = %+v", texts[0])
	}
	if texts[1].Text != battle.ContinueText || texts[1].Pos.Y != 300 {
		t.Errorf("prompt = %+v", texts[1])
	}
}

func TestRenderDefeat(t *testing.T) {
	g := battle.New(stackedConfig())
	var rec battletest.Recorder
	g.Step(confirm(), 0)
	for i := 0; i < 4 && g.Mode() == battle.ModeGame; i++ {
		g.Step(core.NewInputFrame(), 1.0)
	}
	if g.Mode() != battle.ModeGameOver {
		t.Fatalf("mode = %v, want game over", g.Mode())
	}

	g.Render(&rec)

	texts := rec.Texts()
	if len(texts) != 2 || texts[0].Text != battle.DefeatText || texts[0].Color != core.ColorRed {
		t.Errorf("texts = %+v, want defeat", texts)
	}
}

func TestRenderAfterReset(t *testing.T) {
	cfg := stackedConfig()
	cfg.Monster.Health = 20
	g := battle.New(cfg)
	var rec battletest.Recorder

	g.Step(confirm(), 0)
	g.Step(attack(), 0)
	g.Step(confirm(), 0)
	g.Step(confirm(), 0)
	g.Render(&rec)

	sprites := rec.Sprites()
	if len(sprites) != 2 {
		t.Errorf("sprites after reset = %v, want player and monster", sprites)
	}
}

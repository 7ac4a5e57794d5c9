package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/monster-battle/internal/battle"
	"github.com/vovakirdan/monster-battle/internal/config"
	"github.com/vovakirdan/monster-battle/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorRed:       lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:      lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorDarkBlue:  lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true),
	core.ColorMagenta:   lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:      lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:     lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorGray:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorDarkGray:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorDarkGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	core.ColorOrange:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
}

// Cell appearance of the battle elements
const (
	floorRune   = '·'
	floorStepX  = 8
	floorStepY  = 4
	playerRune  = '█'
	monsterRune = '▓'
)

// ScreenRenderer draws the battle into a character grid. Arena units are
// scaled to cells independently on each axis.
type ScreenRenderer struct {
	screen    *core.Screen
	arenaW    float64
	arenaH    float64
	footprint map[battle.Sprite]core.Vec2
}

var _ battle.Renderer = (*ScreenRenderer)(nil)

// NewScreenRenderer creates a renderer for the given screen.
func NewScreenRenderer(screen *core.Screen, cfg config.BattleConfig) *ScreenRenderer {
	return &ScreenRenderer{
		screen: screen,
		arenaW: float64(cfg.Arena.Width),
		arenaH: float64(cfg.Arena.Height),
		footprint: map[battle.Sprite]core.Vec2{
			battle.SpritePlayer:  {X: cfg.Player.Width, Y: cfg.Player.Height},
			battle.SpriteMonster: {X: cfg.Monster.Width, Y: cfg.Monster.Height},
		},
	}
}

// Screen returns the target grid.
func (r *ScreenRenderer) Screen() *core.Screen {
	return r.screen
}

func (r *ScreenRenderer) scaleX() float64 {
	return float64(r.screen.Width()) / r.arenaW
}

func (r *ScreenRenderer) scaleY() float64 {
	return float64(r.screen.Height()) / r.arenaH
}

// Cell returns the cell containing an arena position.
func (r *ScreenRenderer) Cell(pos core.Vec2) (x, y int) {
	return int(math.Floor(pos.X * r.scaleX())), int(math.Floor(pos.Y * r.scaleY()))
}

// CellRect returns the cells covered by an arena box. Any box covers at
// least one cell.
func (r *ScreenRenderer) CellRect(b core.Box) core.Rect {
	x0, y0 := r.Cell(core.Vec2{X: b.X, Y: b.Y})
	x1 := int(math.Ceil(b.Right() * r.scaleX()))
	y1 := int(math.Ceil(b.Bottom() * r.scaleY()))
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

func (r *ScreenRenderer) BeginFrame() {
	r.screen.Clear()
}

// DrawBackground draws a sparse dotted floor.
func (r *ScreenRenderer) DrawBackground() {
	for y := 0; y < r.screen.Height(); y += floorStepY {
		for x := (y / floorStepY % 2) * floorStepX / 2; x < r.screen.Width(); x += floorStepX {
			r.screen.Set(x, y, floorRune, core.ColorDarkGray)
		}
	}
}

func (r *ScreenRenderer) DrawSprite(s battle.Sprite, pos core.Vec2) {
	size := r.footprint[s]
	rect := r.CellRect(core.NewBox(pos, size.X, size.Y))

	switch s {
	case battle.SpritePlayer:
		r.screen.DrawRect(rect, playerRune, core.ColorCyan)
	case battle.SpriteMonster:
		r.screen.DrawRect(rect, monsterRune, core.ColorRed)
	}
}

// DrawText writes text at the cell of pos. The terminal has a single font
// size, so size is ignored.
func (r *ScreenRenderer) DrawText(text string, pos core.Vec2, size int, c core.Color) {
	x, y := r.Cell(pos)
	r.screen.DrawText(x, y, text, c)
}

// MeasureText returns the width of text in arena units: one cell per rune.
func (r *ScreenRenderer) MeasureText(text string, size int) float64 {
	if r.screen.Width() == 0 {
		return 0
	}
	return float64(len([]rune(text))) / r.scaleX()
}

func (r *ScreenRenderer) EndFrame() {}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

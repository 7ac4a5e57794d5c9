package window

import (
	"image/color"

	"github.com/vovakirdan/monster-battle/internal/core"
)

var (
	clearColor = color.RGBA{245, 245, 245, 255}
	floorColor = color.RGBA{232, 232, 226, 255}
)

var palette = map[core.Color]color.RGBA{
	core.ColorRed:       {230, 41, 55, 255},
	core.ColorGreen:     {0, 228, 48, 255},
	core.ColorYellow:    {253, 249, 0, 255},
	core.ColorBlue:      {0, 121, 241, 255},
	core.ColorDarkBlue:  {0, 82, 172, 255},
	core.ColorMagenta:   {255, 0, 255, 255},
	core.ColorCyan:      {0, 200, 220, 255},
	core.ColorWhite:     {255, 255, 255, 255},
	core.ColorGray:      {130, 130, 130, 255},
	core.ColorDarkGray:  {80, 80, 80, 255},
	core.ColorDarkGreen: {0, 117, 44, 255},
	core.ColorOrange:    {255, 161, 0, 255},
}

// rgba maps a palette entry to RGBA. ColorDefault and unknown entries are black.
func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return color.RGBA{0, 0, 0, 255}
}

package window

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// fontCache holds one face per pixel size.
type fontCache struct {
	font  *opentype.Font
	faces map[int]font.Face
}

func newFontCache() (*fontCache, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("window: failed to parse font: %w", err)
	}
	return &fontCache{font: f, faces: make(map[int]font.Face)}, nil
}

// face returns the face for size, falling back to a fixed bitmap face if
// the size cannot be rasterized.
func (c *fontCache) face(size int) font.Face {
	if f, ok := c.faces[size]; ok {
		return f
	}

	f, err := opentype.NewFace(c.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	c.faces[size] = f
	return f
}

func (c *fontCache) measure(text string, size int) float64 {
	return float64(font.MeasureString(c.face(size), text).Ceil())
}

// ascent is the distance from the top of a line to its baseline.
func (c *fontCache) ascent(size int) int {
	return c.face(size).Metrics().Ascent.Ceil()
}

func (c *fontCache) Close() {
	for size, f := range c.faces {
		f.Close()
		delete(c.faces, size)
	}
}

package gfx

import (
	"image/color"

	"sparkcal/hal"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA colour with components in [0,1].
type Color struct {
	colorful.Color
	A float64
}

// NewColor returns the colour (r, g, b, a); components are clamped to [0,1].
func NewColor(r, g, b, a float64) Color {
	return Color{
		Color: colorful.Color{R: r, G: g, B: b}.Clamped(),
		A:     clamp01(a),
	}
}

// Gray returns an opaque grey of intensity v.
func Gray(v float64) Color { return NewColor(v, v, v, 1) }

var (
	White = Gray(1)
	Black = Gray(0)
)

// Over composites c onto bg and returns an opaque colour.
func (c Color) Over(bg Color) Color {
	if c.A >= 1 {
		return Color{Color: c.Color, A: 1}
	}
	return Color{Color: bg.Color.BlendRgb(c.Color, c.A), A: 1}
}

// RGBA8 returns the 8-bit representation of c.
func (c Color) RGBA8() color.RGBA {
	r, g, b := c.Color.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: uint8(c.A*255 + 0.5)}
}

// RGB565 returns the framebuffer pixel value for c, ignoring alpha.
func (c Color) RGB565() uint16 {
	r, g, b := c.Color.RGB255()
	return hal.RGB565(r, g, b)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

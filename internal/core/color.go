package core

import (
	"fmt"
	"image/color"
)

// Color is an 8-bit RGBA color used by game entities.
// Frontends convert it into their own color types.
type Color struct {
	R, G, B, A uint8
}

// Predefined colors for game elements.
var (
	ColorWhite     = Color{R: 255, G: 255, B: 255, A: 255}
	ColorBlack     = Color{A: 255}
	ColorSeparator = Color{R: 255, G: 255, B: 255, A: 26} // white at 10% alpha
	ColorGray      = Color{R: 138, G: 138, B: 138, A: 255}
	ColorHighlight = Color{R: 255, G: 255, B: 135, A: 255}
)

// NewColorF builds a color from float components in [0, 1].
func NewColorF(r, g, b, a float64) Color {
	return Color{
		R: uint8(ClampF(r, 0, 1)*255 + 0.5),
		G: uint8(ClampF(g, 0, 1)*255 + 0.5),
		B: uint8(ClampF(b, 0, 1)*255 + 0.5),
		A: uint8(ClampF(a, 0, 1)*255 + 0.5),
	}
}

// Hex returns the color as a #rrggbb string, ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// NRGBA converts to the standard library's non-premultiplied color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Blend mixes the color over a background according to its alpha.
// Used by frontends that have no alpha channel (terminals).
func (c Color) Blend(bg Color) Color {
	a := float64(c.A) / 255
	mix := func(fg, bg uint8) uint8 {
		return uint8(float64(fg)*a + float64(bg)*(1-a) + 0.5)
	}
	return Color{R: mix(c.R, bg.R), G: mix(c.G, bg.G), B: mix(c.B, bg.B), A: 255}
}

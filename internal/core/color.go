package core

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Color is a straight (non-premultiplied) alpha color used by the draw list.
// Both frontends accept it: ebiten as a color.Color, the terminal by blending
// it over the cell background.
type Color = color.NRGBA

// Named palette shared by the games.
var (
	ColorBlack     = named(colornames.Black)
	ColorWhite     = named(colornames.White)
	ColorRed       = named(colornames.Red)
	ColorLime      = named(colornames.Lime)
	ColorYellow    = named(colornames.Yellow)
	ColorLightBlue = named(colornames.Lightblue)
)

func named(c color.RGBA) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// WithAlpha returns c with its alpha replaced by a (clamped to [0, 255]).
func WithAlpha(c Color, a float64) Color {
	c.A = uint8(ClampF(a, 0, 255))
	return c
}

package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// HUD origin and spacing in screen pixels
const (
	HUDX          = 10
	HUDY          = 10
	HUDLineHeight = 18
)

var hudColor = color.Black

// DrawHUD prints one line of text per entry, top left, in black.
func DrawHUD(screen *ebiten.Image, lines ...string) {
	face := text.NewGoXFace(bitmapfont.Face)
	for i, line := range lines {
		drawTextAt(screen, line, HUDX, HUDY+float64(i*HUDLineHeight), face)
	}
}

// drawTextAt draws text with its top-left corner at x, y
func drawTextAt(screen *ebiten.Image, str string, x, y float64, face text.Face) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(hudColor)
	text.Draw(screen, str, face, op)
}

package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// The bitmap font is 16px tall at scale 1
const glyphHeight = 16.0

var face = text.NewGoXFace(bitmapfont.Face)

// Align picks which point of the text sits at x
type Align int

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

// DrawText draws str with its vertical center at y, scaled from the 16px font
func DrawText(screen *ebiten.Image, str string, x, y, scale float64, align Align, clr color.Color) {
	width := text.Advance(str, face) * scale

	switch align {
	case AlignCenter:
		x -= width / 2
	case AlignRight:
		x -= width
	}

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y-glyphHeight*scale/2)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// TextWidth returns the drawn width of str at scale
func TextWidth(str string, scale float64) float64 {
	return text.Advance(str, face) * scale
}

// drawPanel draws a bordered box for overlays
func drawPanel(screen *ebiten.Image, x, y, width, height float64, bg, border color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), bg, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 2, border, false)
}

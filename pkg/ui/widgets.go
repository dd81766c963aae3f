package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Shared palette
var (
	colorBackground  = color.RGBA{20, 20, 30, 255}
	colorTitle       = color.RGBA{255, 200, 50, 255}
	colorText        = color.RGBA{220, 220, 230, 255}
	colorDim         = color.RGBA{150, 150, 150, 255}
	colorButton      = color.RGBA{40, 40, 60, 255}
	colorButtonHot   = color.RGBA{60, 100, 140, 255}
	colorButtonText  = color.RGBA{255, 255, 255, 255}
	colorButtonHotTx = color.RGBA{200, 240, 255, 255}
	colorBorder      = color.RGBA{80, 80, 100, 255}
	colorGood        = color.RGBA{100, 220, 100, 255}
	colorBad         = color.RGBA{220, 60, 60, 255}
)

var (
	face  = text.NewGoXFace(bitmapfont.Face)
	pixel *ebiten.Image
)

func whitePixel() *ebiten.Image {
	if pixel == nil {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	}
	return pixel
}

// FillRect draws a solid rectangle.
func FillRect(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(whitePixel(), op)
}

// FillRotatedRect draws a w by h rectangle centred on (cx, cy) and rotated
// clockwise by angle radians.
func FillRotatedRect(dst *ebiten.Image, cx, cy, w, h, angle float64, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(whitePixel(), op)
}

// StrokeRect draws a rectangle outline of the given thickness.
func StrokeRect(dst *ebiten.Image, x, y, w, h, thickness float64, clr color.Color) {
	FillRect(dst, x, y, w, thickness, clr)
	FillRect(dst, x, y+h-thickness, w, thickness, clr)
	FillRect(dst, x, y, thickness, h, clr)
	FillRect(dst, x+w-thickness, y, thickness, h, clr)
}

// drawButton draws a bordered button with its label centred.
func drawButton(screen *ebiten.Image, label string, x, y, width, height float64, bgColor, textColor color.Color) {
	FillRect(screen, x, y, width, height, bgColor)
	StrokeRect(screen, x, y, width, height, 2, colorBorder)
	DrawText(screen, label, x+width/2, y+height/2, 16, textColor)
}

// DrawText draws str centred on (centerX, centerY). The bitmap font is 16px
// tall, so size is scaled against that.
func DrawText(screen *ebiten.Image, str string, centerX, centerY float64, size float64, clr color.Color) {
	scale := size / 16.0
	width := text.Advance(str, face) * scale
	DrawTextAt(screen, str, centerX-width/2, centerY-8*scale, size, clr)
}

// DrawTextAt draws str with its top-left corner at (x, y).
func DrawTextAt(screen *ebiten.Image, str string, x, y float64, size float64, clr color.Color) {
	scale := size / 16.0
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// DrawGauge draws a horizontal bar filled to ratio (clamped to [0,1]).
func DrawGauge(screen *ebiten.Image, x, y, width, height, ratio float64) {
	drawBar(screen, x, y, width, height, ratio, GaugeColor(ratio))
}

// DrawLevelGauge draws a bar for something that runs out, like fuel.
func DrawLevelGauge(screen *ebiten.Image, x, y, width, height, ratio float64) {
	drawBar(screen, x, y, width, height, ratio, LevelColor(ratio))
}

func drawBar(screen *ebiten.Image, x, y, width, height, ratio float64, fill color.RGBA) {
	FillRect(screen, x, y, width, height, color.RGBA{40, 40, 40, 255})
	FillRect(screen, x, y, width*clamp01(ratio), height, fill)
	StrokeRect(screen, x, y, width, height, 1, color.RGBA{150, 150, 150, 255})
}

// GaugeColor fades from green through yellow to red as ratio goes 0 to 1.
func GaugeColor(ratio float64) color.RGBA {
	r := clamp01(ratio)
	if r < 0.5 {
		t := r / 0.5
		return color.RGBA{uint8(100 + t*155), 255, 100, 255}
	}
	t := (r - 0.5) / 0.5
	return color.RGBA{255, uint8(255 - t*155), uint8(100 - t*100), 255}
}

// LevelColor is green when full and red when empty.
func LevelColor(ratio float64) color.RGBA {
	return GaugeColor(1 - clamp01(ratio))
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

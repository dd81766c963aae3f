// Package background paints the scenery beside the course.
package background

import (
	"image"
	"image/color"
	"math"
	"math/rand"
)

// Generator paints seeded roadside tiles. The same seed always yields the
// same tile, so the scenery does not flicker between runs.
type Generator struct {
	Width  int
	Height int
}

// NewGenerator creates a generator for tiles of the given size in pixels
func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
	}
}

// Grass is the base colour under the scenery.
var Grass = color.RGBA{30, 100, 30, 255}

// Roadside paints a grass tile scattered with trees and bushes. The tile
// wraps vertically so it can scroll along the course.
func (g *Generator) Roadside(seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	rng := rand.New(rand.NewSource(seed))

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			img.SetRGBA(x, y, Grass)
		}
	}
	for i := 0; i < g.Width*g.Height/10; i++ {
		shade := uint8(80 + rng.Intn(60))
		img.SetRGBA(rng.Intn(g.Width), rng.Intn(g.Height), color.RGBA{30, shade, 30, 255})
	}

	for y := 0; y < g.Height; y += 10 {
		density := 0.5 + 0.3*math.Sin(float64(y)*0.01)
		for x := 0; x < g.Width; x += 5 + rng.Intn(15) {
			if rng.Float64() > density {
				continue
			}
			px := x + rng.Intn(10) - 5
			py := y + rng.Intn(10) - 5
			if rng.Float64() < 0.3 {
				g.tree(img, px, py, rng)
			} else {
				g.bush(img, px, py, rng)
			}
		}
	}
	return img
}

// set plots a pixel, clipping x and wrapping y.
func (g *Generator) set(img *image.RGBA, x, y int, c color.RGBA) {
	if x < 0 || x >= g.Width {
		return
	}
	img.SetRGBA(x, ((y%g.Height)+g.Height)%g.Height, c)
}

func (g *Generator) tree(img *image.RGBA, x, y int, rng *rand.Rand) {
	height := 40 + rng.Intn(30)
	width := 20 + rng.Intn(15)

	trunk := color.RGBA{60, 40, 20, 255}
	trunkW := 4 + rng.Intn(4)
	for ty := 0; ty < height/3; ty++ {
		for tx := -trunkW / 2; tx < trunkW/2; tx++ {
			g.set(img, x+tx, y-ty, trunk)
		}
	}

	leaves := color.RGBA{
		uint8(20 + rng.Intn(30)),
		uint8(80 + rng.Intn(60)),
		uint8(20 + rng.Intn(30)),
		255,
	}
	third := height / 3
	for l := 0; l < 3; l++ {
		layerY := y - third - l*height/4
		layerW := max(width-l*5, 5)
		for ly := 0; ly < third; ly++ {
			rowW := layerW * (third - ly) / third
			for lx := -rowW / 2; lx < rowW/2; lx++ {
				g.set(img, x+lx, layerY-ly, leaves)
			}
		}
	}
}

func (g *Generator) bush(img *image.RGBA, x, y int, rng *rand.Rand) {
	radius := 5 + rng.Intn(10)
	c := color.RGBA{
		uint8(40 + rng.Intn(40)),
		uint8(100 + rng.Intn(50)),
		uint8(40 + rng.Intn(40)),
		255,
	}
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				g.set(img, x+dx, y+dy, c)
			}
		}
	}
}

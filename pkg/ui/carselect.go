package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/overclock/pkg/models/car"
)

// CarSelectScreen lists the catalog cars
type CarSelectScreen struct {
	catalog       *car.Catalog
	selectedIndex int
	onCarSelected func(car.Profile)
	onBack        func()
}

// NewCarSelectScreen creates a car selection screen with the car at
// selected highlighted.
func NewCarSelectScreen(catalog *car.Catalog, selected int, onCarSelected func(car.Profile), onBack func()) *CarSelectScreen {
	return &CarSelectScreen{
		catalog:       catalog,
		selectedIndex: selected,
		onCarSelected: onCarSelected,
		onBack:        onBack,
	}
}

// Selected returns the highlighted car.
func (cs *CarSelectScreen) Selected() car.Profile {
	return cs.catalog.At(cs.selectedIndex)
}

// Move shifts the highlight by delta, wrapping at both ends.
func (cs *CarSelectScreen) Move(delta int) {
	n := cs.catalog.Len()
	cs.selectedIndex = ((cs.selectedIndex+delta)%n + n) % n
}

// Update handles input for the car selection screen
func (cs *CarSelectScreen) Update() error {
	if cs.catalog == nil || cs.catalog.Len() == 0 {
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		cs.Move(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		cs.Move(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && cs.onBack != nil {
		cs.onBack()
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if cs.onCarSelected != nil {
			cs.onCarSelected(cs.Selected())
		}
	}
	return nil
}

// Draw renders the car selection screen
func (cs *CarSelectScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(colorBackground)

	centerX := float64(width) / 2
	DrawText(screen, "SELECT CAR", centerX, 70, 64, colorTitle)

	if cs.catalog == nil || cs.catalog.Len() == 0 {
		DrawText(screen, "No cars available", centerX, float64(height)/2, 24, colorText)
		return
	}

	const (
		startY       = 150.0
		spacing      = 80.0
		buttonWidth  = 700.0
		buttonHeight = 60.0
	)
	buttonX := centerX - buttonWidth/2

	for i, p := range cs.catalog.Profiles() {
		bg, fg := colorButton, colorButtonText
		if i == cs.selectedIndex {
			bg, fg = colorButtonHot, colorButtonHotTx
		}
		drawButton(screen, FormatProfile(p), buttonX, startY+float64(i)*spacing, buttonWidth, buttonHeight, bg, fg)
	}

	DrawText(screen, "Arrow Keys: Navigate | Enter: Select | Esc: Back", centerX, float64(height)-50, 20, colorDim)
}

// FormatProfile describes how a car reacts to each hardware metric.
func FormatProfile(p car.Profile) string {
	return fmt.Sprintf("%s - CPU %.0f | GPU %.0f | RAM %.0f | TEMP %.0f | SSD %.0f",
		p.Name, p.CPUImpact, p.GPUImpact, p.RAMImpact, p.TempImpact, p.SSDImpact)
}

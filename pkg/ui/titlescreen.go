package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// TitleScreen is the first screen shown
type TitleScreen struct {
	startTime      time.Time
	sensorLine     string
	onStartPressed func()
}

// NewTitleScreen creates a title screen. machine describes the detected
// hardware and may be empty.
func NewTitleScreen(machine string, onStartPressed func()) *TitleScreen {
	return &TitleScreen{
		startTime:      time.Now(),
		sensorLine:     machine,
		onStartPressed: onStartPressed,
	}
}

// Update handles input for the title screen
func (ts *TitleScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if ts.onStartPressed != nil {
			ts.onStartPressed()
		}
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{15, 20, 35, 255})

	elapsed := time.Since(ts.startTime).Seconds()
	centerX := float64(width) / 2
	centerY := float64(height) / 3

	// title pulses between 1.0x and 1.1x
	pulse := 1.0 + 0.1*math.Sin(elapsed*2.0)
	brightness := math.Min(1.0, 1.0+0.2*math.Sin(elapsed*1.5))
	DrawText(screen, "OVERCLOCK", centerX, centerY, 16*7*pulse, color.RGBA{
		uint8(255 * brightness),
		uint8(120 * brightness),
		uint8(40 * brightness),
		255,
	})

	DrawText(screen, "Your PC is the engine", centerX, centerY+90, 28, color.RGBA{180, 180, 200, 255})
	if ts.sensorLine != "" {
		DrawText(screen, ts.sensorLine, centerX, centerY+130, 16, colorDim)
	}

	// blink every 0.5 seconds
	if int(elapsed*2)%2 == 0 {
		DrawText(screen, "Press ENTER or SPACE to Start", centerX, float64(height)-100, 24, color.RGBA{150, 200, 255, 255})
	}

	lineColor := color.RGBA{50, 60, 80, 100}
	FillRect(screen, 0, float64(height)/6, float64(width), 2, lineColor)
	FillRect(screen, 0, float64(height)*5/6, float64(width), 2, lineColor)
}

// MachineLine summarises the detected hardware for the title screen.
func MachineLine(cpuName, gpuName string, cores int) string {
	switch {
	case cpuName == "" && gpuName == "":
		return ""
	case gpuName == "":
		return fmt.Sprintf("%s (%d cores)", cpuName, cores)
	case cpuName == "":
		return gpuName
	}
	return fmt.Sprintf("%s (%d cores) + %s", cpuName, cores, gpuName)
}

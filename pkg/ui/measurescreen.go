package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/overclock/pkg/hardware"
	"github.com/golangdaddy/overclock/pkg/models/car"
)

// MeasureScreen reads the hardware once and shows the car it produces
type MeasureScreen struct {
	profile car.Profile
	sampler *hardware.Sampler

	measured bool
	sample   hardware.Sample
	status   car.Status

	onRace func(car.Profile)
	onBack func()
}

// NewMeasureScreen creates a measurement screen for the chosen car
func NewMeasureScreen(profile car.Profile, sampler *hardware.Sampler, onRace func(car.Profile), onBack func()) *MeasureScreen {
	return &MeasureScreen{
		profile: profile,
		sampler: sampler,
		onRace:  onRace,
		onBack:  onBack,
	}
}

// Measure samples the hardware and derives the starting car status.
func (ms *MeasureScreen) Measure() {
	ms.sample = ms.sampler.Measure()
	capacity := car.FuelCapacity(ms.sample, ms.profile)
	ms.status = car.Compute(ms.sample, ms.profile, car.Inputs{
		FuelCapacity: capacity,
		CurrentFuel:  capacity,
		Gear:         car.MinGear,
	})
	ms.measured = true
}

// Update handles input for the measurement screen
func (ms *MeasureScreen) Update() error {
	if !ms.measured {
		ms.Measure()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		ms.Measure()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && ms.onBack != nil {
		ms.onBack()
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if ms.onRace != nil {
			ms.onRace(ms.profile)
		}
	}
	return nil
}

// Draw renders the measurement screen
func (ms *MeasureScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(colorBackground)

	centerX := float64(width) / 2
	DrawText(screen, "MEASURING "+ms.profile.Name, centerX, 50, 32, colorTitle)

	if !ms.measured {
		DrawText(screen, "Reading sensors...", centerX, float64(height)/2, 24, colorText)
		return
	}

	y := 100.0
	for _, line := range SampleLines(ms.sample) {
		DrawTextAt(screen, line, 60, y, 16, colorText)
		y += 24
	}
	if !ms.sample.SensorOK {
		DrawTextAt(screen, "Temperature sensors not detected, running at 0C", 60, y, 16, colorBad)
	}

	y = 100.0
	for _, line := range StatusLines(ms.status) {
		DrawTextAt(screen, line, centerX+40, y, 16, colorGood)
		y += 24
	}

	DrawText(screen, "Enter: Race | R: Measure again | Esc: Back", centerX, float64(height)-50, 20, colorDim)
}

// SampleLines formats the hardware readings for display.
func SampleLines(s hardware.Sample) []string {
	lines := []string{}
	if s.CPUName != "" {
		lines = append(lines, fmt.Sprintf("CPU:  %s (%d cores)", s.CPUName, s.CPUCores))
	}
	lines = append(lines,
		fmt.Sprintf("CPU clock: %.0f MHz  usage: %.1f%%", s.CPUClockMHz, s.CPUUsagePct),
		fmt.Sprintf("CPU temp:  %.1f C", s.CPUTempC),
	)
	if s.GPUName != "" {
		lines = append(lines, fmt.Sprintf("GPU:  %s", s.GPUName))
	}
	lines = append(lines,
		fmt.Sprintf("GPU clock: %.0f MHz  usage: %.1f%%", s.GPUClockMHz, s.GPUUsagePct),
		fmt.Sprintf("GPU temp:  %.1f C", s.GPUTempC),
		fmt.Sprintf("RAM: %.1f / %.1f GiB", gib(s.RAMUsedBytes), gib(s.RAMTotalBytes)),
		fmt.Sprintf("Disk free: %.1f GiB", gib(s.DiskAvailableBytes)),
	)
	return lines
}

// StatusLines formats the derived car attributes for display.
func StatusLines(st car.Status) []string {
	return []string{
		fmt.Sprintf("Max speed:    %.1f km/h", st.MaxSpeed),
		fmt.Sprintf("DRS speed:    %.1f km/h", st.DRSMaxSpeed),
		fmt.Sprintf("Acceleration: %.2f", st.Acceleration),
		fmt.Sprintf("Braking:      %.2f", st.Braking),
		fmt.Sprintf("Handling:     %.3f", st.Handling),
		fmt.Sprintf("Grip:         %.2f", st.Grip),
		fmt.Sprintf("Weight:       %.0f kg", st.Weight),
		fmt.Sprintf("Fuel tank:    %.1f", st.FuelCapacity),
		fmt.Sprintf("Fuel use:     %.3f", st.FuelConsumption),
	}
}

func gib(b uint64) float64 {
	return float64(b) / (1 << 30)
}

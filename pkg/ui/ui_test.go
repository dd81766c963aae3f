package ui

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/overclock/pkg/hardware"
	"github.com/golangdaddy/overclock/pkg/models"
	"github.com/golangdaddy/overclock/pkg/models/car"
)

func TestResultMessage(t *testing.T) {
	s := models.Session{Cause: models.CauseGoalReached, PlayTime: 83.456}
	assert.Equal(t, "Goal! Time: 83.46s", ResultMessage(s))

	s.Cause = models.CauseFuelEmpty
	assert.Equal(t, "Game Over: Out of Fuel", ResultMessage(s))
	s.Cause = models.CauseCrash
	assert.Equal(t, "Game Over: Crashed (Course Out)", ResultMessage(s))
	s.Cause = models.CauseOverheat
	assert.Equal(t, "Game Over: Engine Meltdown", ResultMessage(s))
}

func TestMachineLine(t *testing.T) {
	assert.Equal(t, "", MachineLine("", "", 0))
	assert.Equal(t, "Ryzen (8 cores)", MachineLine("Ryzen", "", 8))
	assert.Equal(t, "RTX", MachineLine("", "RTX", 0))
	assert.Equal(t, "Ryzen (8 cores) + RTX", MachineLine("Ryzen", "RTX", 8))
}

func TestFormatProfile(t *testing.T) {
	p := car.Presets()[1]
	assert.Equal(t, "CPU Tuned - CPU 50 | GPU 10 | RAM 10 | TEMP 15 | SSD 15", FormatProfile(p))
}

func TestSampleLines(t *testing.T) {
	lines := SampleLines(hardware.ReferenceSample())

	assert.Equal(t, "CPU:  Reference CPU (8 cores)", lines[0])
	assert.Contains(t, lines, "RAM: 8.0 / 16.0 GiB")
	assert.Contains(t, lines, "Disk free: 200.0 GiB")

	bare := SampleLines(hardware.Sample{})
	assert.Equal(t, "CPU clock: 0 MHz  usage: 0.0%", bare[0])
}

func TestStatusLines(t *testing.T) {
	lines := StatusLines(car.Status{MaxSpeed: 318, Weight: 2000})
	assert.Equal(t, "Max speed:    318.0 km/h", lines[0])
	assert.Contains(t, lines, "Weight:       2000 kg")
}

func TestGaugeColor(t *testing.T) {
	assert.Equal(t, color.RGBA{100, 255, 100, 255}, GaugeColor(0))
	assert.Equal(t, color.RGBA{255, 255, 100, 255}, GaugeColor(0.5))
	assert.Equal(t, color.RGBA{255, 100, 0, 255}, GaugeColor(1))
	assert.Equal(t, GaugeColor(1), GaugeColor(3))
}

func TestLevelColor(t *testing.T) {
	assert.Equal(t, GaugeColor(0), LevelColor(1))
	assert.Equal(t, GaugeColor(1), LevelColor(0))
	assert.Equal(t, LevelColor(1), LevelColor(2))
}

func TestCarSelectScreen_MoveWraps(t *testing.T) {
	catalog, err := car.NewCatalog(car.Presets()...)
	require.NoError(t, err)
	cs := NewCarSelectScreen(catalog, 0, nil, nil)

	cs.Move(-1)
	assert.Equal(t, "gpu", cs.Selected().ID)
	cs.Move(1)
	assert.Equal(t, "balanced", cs.Selected().ID)
	cs.Move(4)
	assert.Equal(t, "cpu", cs.Selected().ID)
}

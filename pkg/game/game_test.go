package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/overclock/pkg/hardware"
	"github.com/golangdaddy/overclock/pkg/input"
	"github.com/golangdaddy/overclock/pkg/models/car"
	"github.com/golangdaddy/overclock/pkg/sim"
	"github.com/golangdaddy/overclock/pkg/ui"
)

type recordingObserver struct {
	snaps []sim.Snapshot
}

func (r *recordingObserver) Observe(s sim.Snapshot) {
	r.snaps = append(r.snaps, s)
}

func testConfig() Config {
	return Config{
		Width:        1024,
		Height:       600,
		TickRate:     60,
		CourseLength: 5000,
		PaceSpeedKmh: 180,
		DefaultCar:   "gpu",
	}
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	catalog, err := car.NewCatalog(car.Presets()...)
	require.NoError(t, err)
	sampler := hardware.NewSampler(hardware.NewStaticProbe(hardware.ReferenceSample()), time.Second, 0)
	return NewGame(testConfig(), catalog, sampler, &recordingObserver{})
}

func TestNewGame_StartsAtTitle(t *testing.T) {
	g := newTestGame(t)

	_, ok := g.CurrentScreen().(*ui.TitleScreen)
	assert.True(t, ok)
	assert.Equal(t, 2, g.selected)

	w, h := g.Layout(0, 0)
	assert.Equal(t, 1024, w)
	assert.Equal(t, 600, h)
}

func TestStartRace_SwitchesToRace(t *testing.T) {
	g := newTestGame(t)

	g.startRace(car.DefaultProfile())

	_, ok := g.CurrentScreen().(*RaceScreen)
	assert.True(t, ok)
}

func TestStartRace_InvalidProfileReturnsToCarSelect(t *testing.T) {
	g := newTestGame(t)
	p := car.DefaultProfile()
	p.BaseGrip = -1

	g.startRace(p)

	_, ok := g.CurrentScreen().(*ui.CarSelectScreen)
	assert.True(t, ok)
}

func TestHUDLines(t *testing.T) {
	sampler := hardware.NewSampler(hardware.NewStaticProbe(hardware.Sample{}), time.Second, 0)
	s, err := sim.New(car.DefaultProfile(), sampler)
	require.NoError(t, err)
	s.Tick(1.0/60, input.Frame{GearUp: true, DRSOn: true})

	lines := HUDLines(s.Snapshot())

	assert.Contains(t, lines[0], "GEAR  2")
	assert.Equal(t, "DRS   ON", lines[1])
	assert.Contains(t, lines, "SENSORS OFFLINE")
}

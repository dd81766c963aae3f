package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/overclock/pkg/background"
	"github.com/golangdaddy/overclock/pkg/input"
	"github.com/golangdaddy/overclock/pkg/models"
	"github.com/golangdaddy/overclock/pkg/models/car"
	"github.com/golangdaddy/overclock/pkg/physics"
	"github.com/golangdaddy/overclock/pkg/sim"
	"github.com/golangdaddy/overclock/pkg/ui"
)

// PixelsPerMeter is the zoom of the top-down race view.
const PixelsPerMeter = 8.0

// finishDelay is how many ticks the final frame stays up before the result.
const finishDelay = 60

// Observer receives a snapshot after every tick.
type Observer interface {
	Observe(sim.Snapshot)
}

// RaceScreen drives the simulation from the keyboard and draws it
type RaceScreen struct {
	sim      *sim.Simulation
	keyboard *input.Keyboard
	dt       float64
	observer Observer
	onFinish func(models.Session)

	overTicks int
	scenery   *ebiten.Image
}

// NewRaceScreen creates a race screen ticking sim at tickRate per second
func NewRaceScreen(s *sim.Simulation, tickRate int, observer Observer, onFinish func(models.Session)) *RaceScreen {
	if tickRate <= 0 {
		tickRate = ebiten.DefaultTPS
	}
	return &RaceScreen{
		sim:      s,
		keyboard: input.NewKeyboard(),
		dt:       1.0 / float64(tickRate),
		observer: observer,
		onFinish: onFinish,
	}
}

// Update advances the race by one tick
func (rs *RaceScreen) Update() error {
	rs.sim.Tick(rs.dt, rs.keyboard.Read())

	snap := rs.sim.Snapshot()
	if rs.observer != nil {
		rs.observer.Observe(snap)
	}

	if snap.Session.IsGameOver {
		rs.overTicks++
		if rs.overTicks >= finishDelay && rs.onFinish != nil {
			rs.onFinish(snap.Session)
		}
	}
	return nil
}

// Draw renders the course around the player and the HUD
func (rs *RaceScreen) Draw(screen *ebiten.Image) {
	snap := rs.sim.Snapshot()
	rs.drawCourse(screen, snap)
	rs.drawHUD(screen, snap)
}

// view maps course coordinates to the screen with the player fixed near the
// bottom centre.
type view struct {
	centerX, anchorY float64
	playerZ          float64
}

func (v view) project(x, z float64) (float64, float64) {
	return v.centerX + x*PixelsPerMeter, v.anchorY + (z-v.playerZ)*PixelsPerMeter
}

func (rs *RaceScreen) drawCourse(screen *ebiten.Image, snap sim.Snapshot) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	v := view{
		centerX: float64(width) / 2,
		anchorY: float64(height) * 0.75,
		playerZ: snap.Player.Position.Z(),
	}
	h := float64(height)

	rs.drawScenery(screen, v)

	// run-off area up to the crash limit, then the road itself
	left, _ := v.project(-physics.CrashLimit, 0)
	ui.FillRect(screen, left, 0, 2*physics.CrashLimit*PixelsPerMeter, h, color.RGBA{60, 90, 50, 255})
	left, _ = v.project(-physics.RoadLimit, 0)
	ui.FillRect(screen, left, 0, 2*physics.RoadLimit*PixelsPerMeter, h, color.RGBA{70, 70, 75, 255})

	// distance marks every 25 m
	const markEvery = 25.0
	first := math.Floor((v.playerZ-v.anchorY/PixelsPerMeter)/markEvery) * markEvery
	for z := first; z < v.playerZ+h/PixelsPerMeter; z += markEvery {
		_, y := v.project(0, z)
		ui.FillRect(screen, v.centerX-2, y, 4, markEvery*PixelsPerMeter/2, color.RGBA{220, 220, 220, 255})
	}

	_, finishY := v.project(0, -snap.Session.CourseLength)
	if finishY > -8 && finishY < h {
		ui.FillRect(screen, left, finishY-4, 2*physics.RoadLimit*PixelsPerMeter, 8, color.White)
	}

	drawCar(screen, v, snap.Opponent, color.RGBA{120, 120, 255, 255})
	drawCar(screen, v, snap.Player, color.RGBA{255, 80, 40, 255})
}

// Roadside tile size in pixels.
const (
	sceneryWidth  = 256
	sceneryHeight = 512
	scenerySeed   = 1
)

// drawScenery tiles the roadside texture outside the crash limits, scrolling
// with the player.
func (rs *RaceScreen) drawScenery(screen *ebiten.Image, v view) {
	if rs.scenery == nil {
		rs.scenery = ebiten.NewImageFromImage(background.NewGenerator(sceneryWidth, sceneryHeight).Roadside(scenerySeed))
	}
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	screen.Fill(background.Grass)

	leftEdge, _ := v.project(-physics.CrashLimit, 0)
	rightEdge, _ := v.project(physics.CrashLimit, 0)
	offset := math.Mod(-v.playerZ*PixelsPerMeter, sceneryHeight)

	for y := offset - sceneryHeight; y < height; y += sceneryHeight {
		for x := leftEdge - sceneryWidth; x > -sceneryWidth; x -= sceneryWidth {
			drawTile(screen, rs.scenery, x, y)
		}
		for x := rightEdge; x < width; x += sceneryWidth {
			drawTile(screen, rs.scenery, x, y)
		}
	}
}

func drawTile(screen, tile *ebiten.Image, x, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	screen.DrawImage(tile, op)
}

func drawCar(screen *ebiten.Image, v view, b physics.Body, clr color.Color) {
	const carWidth, carLength = 2.0, 4.0
	x, y := v.project(b.Position.X(), b.Position.Z())
	ui.FillRotatedRect(screen, x, y, carWidth*PixelsPerMeter, carLength*PixelsPerMeter, -b.Yaw, clr)
}

func (rs *RaceScreen) drawHUD(screen *ebiten.Image, snap sim.Snapshot) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	// speedometer
	const boxX, boxY, boxW, boxH = 20.0, 20.0, 200.0, 120.0
	ui.FillRect(screen, boxX, boxY, boxW, boxH, color.RGBA{20, 20, 30, 200})
	ui.StrokeRect(screen, boxX, boxY, boxW, boxH, 2, color.RGBA{100, 100, 120, 255})
	speedCap := car.SpeedCap(snap.Status, snap.Session.CurrentGear, snap.Session.DRSEnabled)
	ratio := 0.0
	if speedCap > 0 {
		ratio = snap.Session.CurrentSpeedKmh / speedCap
	}
	ui.DrawText(screen, fmt.Sprintf("%.0f", snap.Session.CurrentSpeedKmh), boxX+boxW/2, boxY+45, 48, ui.GaugeColor(ratio))
	ui.DrawText(screen, "KM/H", boxX+boxW/2, boxY+85, 20, color.RGBA{200, 200, 200, 255})
	ui.DrawGauge(screen, boxX+10, boxY+boxH-22, boxW-20, 12, ratio)

	// fuel
	ui.DrawTextAt(screen, "FUEL", boxX, boxY+boxH+12, 16, color.White)
	ui.DrawLevelGauge(screen, boxX+50, boxY+boxH+14, boxW-50, 12, snap.FuelRatio())
	ui.DrawTextAt(screen, rs.sim.Profile().Name, boxX, boxY+boxH+36, 16, color.RGBA{200, 200, 200, 255})

	y := 20.0
	for _, line := range HUDLines(snap) {
		ui.DrawTextAt(screen, line, float64(width)-300, y, 16, color.White)
		y += 22
	}

	if snap.Session.IsGameOver {
		ui.DrawText(screen, ui.ResultMessage(snap.Session), float64(width)/2, float64(height)/2, 40, color.RGBA{255, 220, 80, 255})
	}
}

// HUDLines formats the race state shown beside the course.
func HUDLines(snap sim.Snapshot) []string {
	s := snap.Session
	drs := "OFF"
	if s.DRSEnabled {
		drs = "ON"
	}
	lines := []string{
		fmt.Sprintf("GEAR  %d (ideal %d)", s.CurrentGear, snap.Status.IdealGear),
		fmt.Sprintf("DRS   %s", drs),
		fmt.Sprintf("TEMP  %.0f C", s.CurrentTemp),
		fmt.Sprintf("TIME  %.2f s (+%.2f)", s.PlayTime, s.PenaltyTime),
		fmt.Sprintf("DIST  %.0f / %.0f m", s.DistanceTraveled, s.CourseLength),
		fmt.Sprintf("PACE  %+.0f m", snap.Gap()),
	}
	if !snap.Sample.SensorOK {
		lines = append(lines, "SENSORS OFFLINE")
	}
	return lines
}

package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"

	"github.com/golangdaddy/overclock/pkg/hardware"
	"github.com/golangdaddy/overclock/pkg/models"
	"github.com/golangdaddy/overclock/pkg/models/car"
	"github.com/golangdaddy/overclock/pkg/sim"
	"github.com/golangdaddy/overclock/pkg/ui"
)

// Config holds the settings the front end needs
type Config struct {
	Width        int
	Height       int
	TickRate     int
	CourseLength float64
	PaceSpeedKmh float64
	DefaultCar   string
}

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Game implements the ebiten.Game interface and manages the screen flow:
// title, car select, measure, race, result.
type Game struct {
	cfg      Config
	catalog  *car.Catalog
	sampler  *hardware.Sampler
	observer Observer

	selected      int
	currentScreen Screen
}

// NewGame creates a new game instance starting at the title screen
func NewGame(cfg Config, catalog *car.Catalog, sampler *hardware.Sampler, observer Observer) *Game {
	g := &Game{
		cfg:      cfg,
		catalog:  catalog,
		sampler:  sampler,
		observer: observer,
	}
	if i := catalog.IndexOf(cfg.DefaultCar); i >= 0 {
		g.selected = i
	}
	g.showTitle()
	return g
}

// Update handles game logic updates
func (g *Game) Update() error {
	if _, ok := g.currentScreen.(*ui.TitleScreen); ok && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout returns the game's screen dimensions
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.cfg.Width, g.cfg.Height
}

// CurrentScreen returns the active screen.
func (g *Game) CurrentScreen() Screen {
	return g.currentScreen
}

func (g *Game) showTitle() {
	s := g.sampler.Current()
	g.currentScreen = ui.NewTitleScreen(ui.MachineLine(s.CPUName, s.GPUName, s.CPUCores), g.showCarSelect)
}

func (g *Game) showCarSelect() {
	g.currentScreen = ui.NewCarSelectScreen(g.catalog, g.selected, func(p car.Profile) {
		g.selected = g.catalog.IndexOf(p.ID)
		g.showMeasure(p)
	}, g.showTitle)
}

func (g *Game) showMeasure(p car.Profile) {
	g.currentScreen = ui.NewMeasureScreen(p, g.sampler, g.startRace, g.showCarSelect)
}

// startRace builds a simulation for the chosen car and switches to the race
func (g *Game) startRace(p car.Profile) {
	s, err := sim.New(p, g.sampler,
		sim.WithCourseLength(g.cfg.CourseLength),
		sim.WithPaceSpeed(g.cfg.PaceSpeedKmh),
	)
	if err != nil {
		log.Error().Err(err).Str("car", p.ID).Msg("cannot start race")
		g.showCarSelect()
		return
	}

	g.currentScreen = NewRaceScreen(s, g.cfg.TickRate, g.observer, func(session models.Session) {
		g.currentScreen = ui.NewResultScreen(session,
			func() { g.startRace(p) },
			g.showTitle,
		)
	})
}

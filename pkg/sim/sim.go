// Package sim runs the per-tick pipeline: sample the hardware, apply
// input, derive the car status, integrate the body and check the rules.
package sim

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog/log"

	"github.com/golangdaddy/overclock/pkg/hardware"
	"github.com/golangdaddy/overclock/pkg/input"
	"github.com/golangdaddy/overclock/pkg/logging"
	"github.com/golangdaddy/overclock/pkg/models"
	"github.com/golangdaddy/overclock/pkg/models/car"
	"github.com/golangdaddy/overclock/pkg/physics"
	"github.com/golangdaddy/overclock/pkg/rules"
)

// DefaultPaceSpeedKmh is the pace car's speed when none is configured.
const DefaultPaceSpeedKmh = 180.0

// Simulation owns one run of one car.
type Simulation struct {
	profile    car.Profile
	sampler    *hardware.Sampler
	integrator *physics.Integrator
	checker    *rules.Checker

	courseLength float64
	paceSpeedKmh float64
	fuelCapacity float64

	session  *models.Session
	status   car.Status
	player   *Entity
	opponent *Entity
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithCourseLength sets the distance to the finish line in meters.
func WithCourseLength(meters float64) Option {
	return func(s *Simulation) { s.courseLength = meters }
}

// WithPaceSpeed sets the pace car speed in km/h. Zero leaves the pace car parked.
func WithPaceSpeed(kmh float64) Option {
	return func(s *Simulation) { s.paceSpeedKmh = kmh }
}

// WithTerrain replaces the course elevation.
func WithTerrain(t physics.Terrain) Option {
	return func(s *Simulation) { s.integrator.Terrain = t }
}

// WithChecker replaces the rule checker.
func WithChecker(c *rules.Checker) Option {
	return func(s *Simulation) { s.checker = c }
}

// New validates profile, measures the tank size from the sampler's current
// reading and starts a run.
func New(profile car.Profile, sampler *hardware.Sampler, opts ...Option) (*Simulation, error) {
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create simulation: %w", err)
	}
	if sampler == nil {
		return nil, errors.New("failed to create simulation: no hardware sampler")
	}

	s := &Simulation{
		profile:      profile,
		sampler:      sampler,
		integrator:   physics.NewIntegrator(),
		checker:      rules.NewChecker(),
		courseLength: models.DefaultCourseLength,
		paceSpeedKmh: DefaultPaceSpeedKmh,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.fuelCapacity = car.FuelCapacity(sampler.Current(), profile)
	s.Reset()

	log.Info().
		Str("car", profile.ID).
		Float64("fuelCapacity", s.fuelCapacity).
		Float64("courseLength", s.courseLength).
		Msg("simulation ready")
	return s, nil
}

// Reset starts a new run with a full tank in first gear at the start line.
// The tank size measured by New is kept.
func (s *Simulation) Reset() {
	if s.session == nil {
		s.session = &models.Session{}
	}
	s.session.Reset(s.fuelCapacity, s.courseLength)

	start := mgl64.Vec3{0, s.integrator.GroundHeight(mgl64.Vec3{}) + physics.RideHeight, 0}
	s.player = Spawn(KindPlayer, start)
	s.opponent = Spawn(KindOpponent, start)

	s.status = car.Compute(s.sampler.Current(), s.profile, s.session.CarInputs(s.fuelCapacity))
}

// Tick advances the run by dt seconds with the given input. It returns the
// run's cause, CauseNone while still racing. Once the run is over Tick
// changes nothing.
func (s *Simulation) Tick(dt float64, frame input.Frame) models.GameOverCause {
	if s.session.IsGameOver {
		return s.session.Cause
	}

	if s.sampler.Advance(dt) {
		s.session.CurrentTemp = s.sampler.Current().TotalTempC()
	}

	input.Apply(s.session, frame)

	s.status = car.Compute(s.sampler.Current(), s.profile, s.session.CarInputs(s.fuelCapacity))

	// a run that is already lost must not move the car
	if cause := s.checker.Check(s.session, s.player.Body.LateralOffset()); cause != models.CauseNone {
		s.finished(cause)
		return cause
	}

	s.integrator.Step(s.player.Body, s.session, s.status, frame.Controls(), dt)
	if s.session.IsGameOver {
		s.finished(s.session.Cause)
		return s.session.Cause
	}
	if s.paceSpeedKmh > 0 {
		advancePace(s.opponent, s.integrator, s.paceSpeedKmh/3.6, dt)
	}
	s.session.PlayTime += dt

	cause := s.checker.Check(s.session, s.player.Body.LateralOffset())
	if cause != models.CauseNone {
		s.finished(cause)
	}

	logging.Sampled().Debug().
		Float64("speedKmh", s.session.CurrentSpeedKmh).
		Int("gear", s.session.CurrentGear).
		Float64("fuel", s.session.CurrentFuel).
		Float64("distance", s.session.DistanceTraveled).
		Msg("tick")
	return cause
}

func (s *Simulation) finished(cause models.GameOverCause) {
	log.Info().
		Str("cause", cause.String()).
		Float64("playTime", s.session.PlayTime).
		Float64("penaltyTime", s.session.PenaltyTime).
		Float64("distance", s.session.DistanceTraveled).
		Float64("topSpeedKmh", s.session.TopSpeedKmh).
		Msg("run finished")
}

// FuelCapacity returns the tank size measured for this car.
func (s *Simulation) FuelCapacity() float64 {
	return s.fuelCapacity
}

// Profile returns the car being driven.
func (s *Simulation) Profile() car.Profile {
	return s.profile
}

// Snapshot is a copy of the simulation state for display and export.
type Snapshot struct {
	Session  models.Session
	Status   car.Status
	Sample   hardware.Sample
	Player   physics.Body
	Opponent physics.Body
	CarID    string
}

// Gap returns how far the player is ahead of the pace car, in meters.
// Negative means behind.
func (sn Snapshot) Gap() float64 {
	return sn.Player.CourseDistance() - sn.Opponent.CourseDistance()
}

// FuelRatio returns the share of the tank left, in [0,1].
func (sn Snapshot) FuelRatio() float64 {
	return car.Inputs{FuelCapacity: sn.Status.FuelCapacity, CurrentFuel: sn.Session.CurrentFuel}.FuelRatio()
}

// Snapshot returns a copy of the current state.
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Session:  *s.session,
		Status:   s.status,
		Sample:   s.sampler.Current(),
		Player:   *s.player.Body,
		Opponent: *s.opponent.Body,
		CarID:    s.profile.ID,
	}
}

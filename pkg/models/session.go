package models

import "github.com/golangdaddy/overclock/pkg/models/car"

// Session defaults.
const (
	DefaultCourseLength = 5000.0 // meters
	DefaultStartTemp    = 60.0   // Celsius, until the first sample arrives
)

// GameOverCause is how a run ended.
type GameOverCause int

const (
	CauseNone GameOverCause = iota
	CauseGoalReached
	CauseFuelEmpty
	CauseCrash
	CauseOverheat
)

// String returns a short name for the cause.
func (c GameOverCause) String() string {
	switch c {
	case CauseGoalReached:
		return "goal_reached"
	case CauseFuelEmpty:
		return "fuel_empty"
	case CauseCrash:
		return "crash"
	case CauseOverheat:
		return "overheat"
	default:
		return "none"
	}
}

// Victory reports whether the cause is a win.
func (c GameOverCause) Victory() bool {
	return c == CauseGoalReached
}

// Session is the state of one time-attack run. It is reset at run start,
// mutated every tick and frozen once IsGameOver is set.
type Session struct {
	PlayTime         float64 `json:"play_time"` // seconds, including penalties
	PenaltyTime      float64 `json:"penalty_time"`
	CurrentSpeedKmh  float64 `json:"current_speed_kmh"`
	CurrentFuel      float64 `json:"current_fuel"`
	CurrentGear      int     `json:"current_gear"`
	CurrentTemp      float64 `json:"current_temp"` // CPU + GPU Celsius
	DRSEnabled       bool    `json:"drs_enabled"`
	DistanceTraveled float64 `json:"distance_traveled"` // meters
	CourseLength     float64 `json:"course_length"`     // meters
	TopSpeedKmh      float64 `json:"top_speed_kmh"`

	IsGameOver bool          `json:"is_game_over"`
	Cause      GameOverCause `json:"cause"`
}

// NewSession creates a session with a full tank of the given capacity.
func NewSession(fuelCapacity, courseLength float64) *Session {
	s := &Session{}
	s.Reset(fuelCapacity, courseLength)
	return s
}

// Reset starts a new run.
func (s *Session) Reset(fuelCapacity, courseLength float64) {
	if courseLength <= 0 {
		courseLength = DefaultCourseLength
	}
	*s = Session{
		CurrentFuel:  fuelCapacity,
		CurrentGear:  car.MinGear,
		CurrentTemp:  DefaultStartTemp,
		CourseLength: courseLength,
	}
}

// End finishes the run with the given cause. Only the first call has any
// effect; it reports whether this call ended the run.
func (s *Session) End(cause GameOverCause) bool {
	if s.IsGameOver || cause == CauseNone {
		return false
	}
	s.IsGameOver = true
	s.Cause = cause
	return true
}

// ShiftUp moves one gear up, staying at the top gear.
func (s *Session) ShiftUp() {
	if s.IsGameOver {
		return
	}
	s.CurrentGear = car.ClampGear(s.CurrentGear + 1)
}

// ShiftDown moves one gear down, staying at first gear.
func (s *Session) ShiftDown() {
	if s.IsGameOver {
		return
	}
	s.CurrentGear = car.ClampGear(s.CurrentGear - 1)
}

// SetDRS opens or closes the drag reduction system.
func (s *Session) SetDRS(enabled bool) {
	if s.IsGameOver {
		return
	}
	s.DRSEnabled = enabled
}

// RecordSpeed stores the current speed and tracks the run's top speed.
func (s *Session) RecordSpeed(kmh float64) {
	s.CurrentSpeedKmh = kmh
	if kmh > s.TopSpeedKmh {
		s.TopSpeedKmh = kmh
	}
}

// AddPenalty adds off-course time to the clock.
func (s *Session) AddPenalty(seconds float64) {
	s.PlayTime += seconds
	s.PenaltyTime += seconds
}

// Progress returns the share of the course covered, in [0,1].
func (s *Session) Progress() float64 {
	if s.CourseLength <= 0 {
		return 0
	}
	p := s.DistanceTraveled / s.CourseLength
	if p > 1 {
		return 1
	}
	return p
}

// CarInputs returns the session values the performance model reads.
func (s *Session) CarInputs(fuelCapacity float64) car.Inputs {
	return car.Inputs{
		FuelCapacity:    fuelCapacity,
		CurrentFuel:     s.CurrentFuel,
		CurrentSpeedKmh: s.CurrentSpeedKmh,
		Gear:            s.CurrentGear,
	}
}

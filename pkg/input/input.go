// Package input turns player key presses into gear, DRS and driving controls.
package input

import (
	"github.com/golangdaddy/overclock/pkg/models"
	"github.com/golangdaddy/overclock/pkg/physics"
)

// Frame is the player input gathered for one tick. The gear and DRS fields
// are edge events; the driving fields are held keys.
type Frame struct {
	GearUp   bool
	GearDown bool
	DRSOn    bool
	DRSOff   bool

	Throttle   bool
	Brake      bool
	SteerLeft  bool
	SteerRight bool
}

// Apply applies the frame's gear and DRS events to the session. Gears stay
// within the gearbox range and the car's status is left untouched. When DRS
// is both opened and closed in one frame it ends up open.
func Apply(session *models.Session, f Frame) {
	if session.IsGameOver {
		return
	}
	if f.GearUp {
		session.ShiftUp()
	}
	if f.GearDown {
		session.ShiftDown()
	}
	if f.DRSOff {
		session.SetDRS(false)
	}
	if f.DRSOn {
		session.SetDRS(true)
	}
}

// Controls returns the continuous controls for the integrator. Holding both
// steering keys cancels out.
func (f Frame) Controls() physics.Controls {
	c := physics.Controls{
		Throttle: f.Throttle,
		Brake:    f.Brake,
	}
	if f.SteerLeft {
		c.Steer++
	}
	if f.SteerRight {
		c.Steer--
	}
	return c
}

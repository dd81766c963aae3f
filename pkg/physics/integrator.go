package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/golangdaddy/overclock/pkg/models"
	"github.com/golangdaddy/overclock/pkg/models/car"
)

// Tuning constants. They keep the handling arcade-like rather than realistic.
const (
	EngineForceScale    = 500.0
	DragScale           = 0.4
	SteeringSensitivity = 1.2
	GravityScale        = 3.0
	FuelBurnMultiplier  = 0.5
	GroundFriction      = 2.0
	CoursePenaltyRate   = 2.0
	RoadLimit           = 20.0 // lateral meters before time penalties
	CrashLimit          = 35.0 // lateral meters before a crash
	RideHeight          = 0.5
	Gravity             = 9.81
)

// Controls are the continuous driver inputs for one tick.
type Controls struct {
	Throttle bool
	Brake    bool
	Steer    float64 // > 0 turns left, < 0 right
}

// Integrator advances a Body using the current car status.
type Integrator struct {
	Terrain Terrain
}

// NewIntegrator returns an integrator on the stock course.
func NewIntegrator() *Integrator {
	return &Integrator{Terrain: SineHills}
}

// Step advances body and session by dt seconds. It does nothing once the
// session is over, and ends it with a crash when the car leaves the course.
func (in *Integrator) Step(body *Body, session *models.Session, status car.Status, controls Controls, dt float64) {
	if session.IsGameOver || dt <= 0 {
		return
	}

	speed := body.Speed()
	session.RecordSpeed(speed * 3.6)

	weight := status.Weight
	force := mgl64.Vec3{0, -Gravity, 0}.Mul(GravityScale * weight / 100)

	forward := body.Forward()
	switch {
	case controls.Throttle:
		accel := status.Acceleration
		if session.DRSEnabled {
			accel = status.DRSAcceleration
		}
		force = force.Add(forward.Mul(accel * EngineForceScale))
		session.CurrentFuel = math.Max(0, session.CurrentFuel-status.FuelConsumption*FuelBurnMultiplier*dt)
	case controls.Brake:
		if speed > StopSpeed {
			force = force.Sub(forward.Mul(status.Braking))
		} else {
			body.Velocity = mgl64.Vec3{}
		}
	}

	drag := status.Aerodynamics
	if session.DRSEnabled {
		drag *= DragScale
	}
	force = force.Sub(body.Velocity.Mul(drag * DragScale))
	force = force.Sub(body.Velocity.Mul(GroundFriction))

	body.Velocity = body.Velocity.Add(force.Mul(dt / weight))

	limit := car.SpeedCap(status, session.CurrentGear, session.DRSEnabled) / 3.6
	if v := body.Velocity.Len(); v > limit && v > 0 {
		body.Velocity = body.Velocity.Mul(limit / v)
	}

	body.Position = body.Position.Add(body.Velocity.Mul(dt))
	session.DistanceTraveled += body.Velocity.Len() * dt

	if controls.Steer != 0 {
		turn := status.Handling * SteeringSensitivity * dt
		if controls.Steer < 0 {
			turn = -turn
		}
		body.Yaw += turn
	}
	if v := body.Velocity.Len(); v > StopSpeed {
		body.Velocity = body.Forward().Mul(v)
	}

	in.clampToGround(body)

	offset := math.Abs(body.LateralOffset())
	if offset > RoadLimit {
		session.AddPenalty(dt * CoursePenaltyRate)
	}
	if offset > CrashLimit {
		session.End(models.CauseCrash)
	}
}

// GroundHeight returns the terrain height under a position.
func (in *Integrator) GroundHeight(pos mgl64.Vec3) float64 {
	terrain := in.Terrain
	if terrain == nil {
		terrain = SineHills
	}
	return terrain(-pos.Z())
}

func (in *Integrator) clampToGround(body *Body) {
	floor := in.GroundHeight(body.Position) + RideHeight
	if body.Position.Y() < floor {
		body.Position[1] = floor
		if body.Velocity.Y() < 0 {
			body.Velocity[1] = 0
		}
	}
}

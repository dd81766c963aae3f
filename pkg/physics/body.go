package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// StopSpeed is the speed in m/s below which the car counts as stopped.
const StopSpeed = 0.1

var (
	up          = mgl64.Vec3{0, 1, 0}
	forwardAxis = mgl64.Vec3{0, 0, -1}
)

// Body is the car's rigid body state. The course runs along -Z, X is the
// lateral offset from the centre line and Y is height.
type Body struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Yaw      float64 // radians, 0 faces down the course
}

// NewBody places a body at rest at the given position facing down the course.
func NewBody(position mgl64.Vec3) *Body {
	return &Body{Position: position}
}

// Orientation returns the body rotation as a quaternion about the Y axis.
func (b *Body) Orientation() mgl64.Quat {
	return mgl64.QuatRotate(b.Yaw, up)
}

// Forward returns the flat unit vector the car is facing.
func (b *Body) Forward() mgl64.Vec3 {
	return b.Orientation().Rotate(forwardAxis)
}

// Speed returns the magnitude of the velocity in m/s.
func (b *Body) Speed() float64 {
	return b.Velocity.Len()
}

// SpeedKmh returns the speed in km/h.
func (b *Body) SpeedKmh() float64 {
	return b.Speed() * 3.6
}

// LateralOffset returns the signed distance from the course centre line.
func (b *Body) LateralOffset() float64 {
	return b.Position.X()
}

// CourseDistance returns how far down the course the body is.
func (b *Body) CourseDistance() float64 {
	return math.Max(0, -b.Position.Z())
}

package sim

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/golangdaddy/overclock/pkg/physics"
)

// EntityKind tells the player car from computer-driven cars.
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindOpponent
)

func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindOpponent:
		return "opponent"
	default:
		return "unknown"
	}
}

// Entity is a car on the course.
type Entity struct {
	Kind EntityKind
	Body *physics.Body
}

// Spawn places a new entity of the given kind at position.
func Spawn(kind EntityKind, position mgl64.Vec3) *Entity {
	switch kind {
	case KindOpponent:
		// opponents run one lane to the right of the centre line
		return &Entity{Kind: kind, Body: physics.NewBody(position.Add(mgl64.Vec3{PaceLaneOffset, 0, 0}))}
	default:
		return &Entity{Kind: KindPlayer, Body: physics.NewBody(position)}
	}
}

// PaceLaneOffset is the pace car's lateral distance from the centre line.
const PaceLaneOffset = 4.0

// advancePace moves a pace car straight down the course at speed m/s,
// riding on the terrain.
func advancePace(e *Entity, integrator *physics.Integrator, speed, dt float64) {
	b := e.Body
	b.Velocity = b.Forward().Mul(speed)
	b.Position = b.Position.Add(b.Velocity.Mul(dt))
	b.Position[1] = integrator.GroundHeight(b.Position) + physics.RideHeight
}

// Package rules decides when a run is over.
package rules

import (
	"math"

	"github.com/golangdaddy/overclock/pkg/models"
	"github.com/golangdaddy/overclock/pkg/physics"
)

// DefaultOverheatThreshold is the combined CPU+GPU temperature, in Celsius,
// at which the car overheats.
const DefaultOverheatThreshold = 255.0

// Checker evaluates the end-of-run conditions in priority order: goal,
// fuel, overheat, crash.
type Checker struct {
	OverheatThreshold float64
	CrashLimit        float64
}

// NewChecker returns a checker with the stock thresholds.
func NewChecker() *Checker {
	return &Checker{
		OverheatThreshold: DefaultOverheatThreshold,
		CrashLimit:        physics.CrashLimit,
	}
}

// Check ends the session on the first condition that holds and returns the
// cause. It returns the existing cause when the session is already over and
// CauseNone when the run continues.
func (c *Checker) Check(session *models.Session, lateralOffset float64) models.GameOverCause {
	if session.IsGameOver {
		return session.Cause
	}

	cause := c.evaluate(session, lateralOffset)
	session.End(cause)
	return cause
}

func (c *Checker) evaluate(session *models.Session, lateralOffset float64) models.GameOverCause {
	switch {
	case session.DistanceTraveled >= session.CourseLength:
		return models.CauseGoalReached
	case session.CurrentFuel <= 0:
		return models.CauseFuelEmpty
	case session.CurrentTemp >= c.OverheatThreshold:
		return models.CauseOverheat
	case math.Abs(lateralOffset) > c.CrashLimit:
		return models.CauseCrash
	}
	return models.CauseNone
}

package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/golangdaddy/overclock/pkg/models"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(s *models.Session)
		offset  float64
		want    models.GameOverCause
		wantEnd bool
	}{
		{
			name:  "running",
			setup: func(s *models.Session) {},
			want:  models.CauseNone,
		},
		{
			name:    "goal reached",
			setup:   func(s *models.Session) { s.DistanceTraveled = 5000 },
			want:    models.CauseGoalReached,
			wantEnd: true,
		},
		{
			name:    "fuel empty",
			setup:   func(s *models.Session) { s.CurrentFuel = 0 },
			want:    models.CauseFuelEmpty,
			wantEnd: true,
		},
		{
			name:    "overheat at threshold",
			setup:   func(s *models.Session) { s.CurrentTemp = 255 },
			want:    models.CauseOverheat,
			wantEnd: true,
		},
		{
			name:  "just below overheat",
			setup: func(s *models.Session) { s.CurrentTemp = 254.9 },
			want:  models.CauseNone,
		},
		{
			name:    "crash right",
			setup:   func(s *models.Session) {},
			offset:  36,
			want:    models.CauseCrash,
			wantEnd: true,
		},
		{
			name:    "crash left",
			setup:   func(s *models.Session) {},
			offset:  -35.5,
			want:    models.CauseCrash,
			wantEnd: true,
		},
		{
			name:   "on the crash limit",
			setup:  func(s *models.Session) {},
			offset: 35,
			want:   models.CauseNone,
		},
		{
			name: "goal beats fuel",
			setup: func(s *models.Session) {
				s.DistanceTraveled = 6000
				s.CurrentFuel = 0
			},
			want:    models.CauseGoalReached,
			wantEnd: true,
		},
		{
			name: "fuel beats overheat",
			setup: func(s *models.Session) {
				s.CurrentFuel = -1
				s.CurrentTemp = 300
			},
			offset:  40,
			want:    models.CauseFuelEmpty,
			wantEnd: true,
		},
		{
			name:    "overheat beats crash",
			setup:   func(s *models.Session) { s.CurrentTemp = 300 },
			offset:  40,
			want:    models.CauseOverheat,
			wantEnd: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := models.NewSession(60, 5000)
			tt.setup(s)

			got := NewChecker().Check(s, tt.offset)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantEnd, s.IsGameOver)
			assert.Equal(t, tt.want, s.Cause)
		})
	}
}

func TestCheck_TerminalIsIdempotent(t *testing.T) {
	c := NewChecker()
	s := models.NewSession(60, 5000)
	s.CurrentFuel = 0

	assert.Equal(t, models.CauseFuelEmpty, c.Check(s, 0))

	s.DistanceTraveled = 10000
	assert.Equal(t, models.CauseFuelEmpty, c.Check(s, 100))
	assert.Equal(t, models.CauseFuelEmpty, s.Cause)
}

func TestCheck_CustomThresholds(t *testing.T) {
	c := &Checker{OverheatThreshold: 100, CrashLimit: 10}
	s := models.NewSession(60, 5000)
	s.CurrentTemp = 120

	assert.Equal(t, models.CauseOverheat, c.Check(s, 0))

	s = models.NewSession(60, 5000)
	assert.Equal(t, models.CauseCrash, c.Check(s, 11))
}

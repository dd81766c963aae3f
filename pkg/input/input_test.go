package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/golangdaddy/overclock/pkg/models"
)

type fakeKeys struct {
	just map[ebiten.Key]bool
	held map[ebiten.Key]bool
}

func (f fakeKeys) JustPressed(key ebiten.Key) bool { return f.just[key] }
func (f fakeKeys) Pressed(key ebiten.Key) bool     { return f.held[key] }

func TestApply_GearUpClampsAtSix(t *testing.T) {
	s := models.NewSession(60, 5000)
	s.CurrentGear = 6

	Apply(s, Frame{GearUp: true})
	Apply(s, Frame{GearUp: true})
	assert.Equal(t, 6, s.CurrentGear)
}

func TestApply_GearDownClampsAtOne(t *testing.T) {
	s := models.NewSession(60, 5000)

	Apply(s, Frame{GearDown: true})
	assert.Equal(t, 1, s.CurrentGear)
}

func TestApply_Shifts(t *testing.T) {
	s := models.NewSession(60, 5000)

	Apply(s, Frame{GearUp: true})
	Apply(s, Frame{GearUp: true})
	assert.Equal(t, 3, s.CurrentGear)
	Apply(s, Frame{GearDown: true})
	assert.Equal(t, 2, s.CurrentGear)
	Apply(s, Frame{GearUp: true, GearDown: true})
	assert.Equal(t, 2, s.CurrentGear)
}

func TestApply_DRS(t *testing.T) {
	s := models.NewSession(60, 5000)

	Apply(s, Frame{DRSOn: true})
	assert.True(t, s.DRSEnabled)
	Apply(s, Frame{DRSOff: true})
	assert.False(t, s.DRSEnabled)
	Apply(s, Frame{DRSOn: true, DRSOff: true})
	assert.True(t, s.DRSEnabled)
}

func TestApply_IgnoredAfterGameOver(t *testing.T) {
	s := models.NewSession(60, 5000)
	s.End(models.CauseCrash)

	Apply(s, Frame{GearUp: true, DRSOn: true})
	assert.Equal(t, 1, s.CurrentGear)
	assert.False(t, s.DRSEnabled)
}

func TestFrame_Controls(t *testing.T) {
	assert.Equal(t, 1.0, Frame{SteerLeft: true}.Controls().Steer)
	assert.Equal(t, -1.0, Frame{SteerRight: true}.Controls().Steer)
	assert.Equal(t, 0.0, Frame{SteerLeft: true, SteerRight: true}.Controls().Steer)

	c := Frame{Throttle: true}.Controls()
	assert.True(t, c.Throttle)
	assert.False(t, c.Brake)
}

func TestKeyboard_Read(t *testing.T) {
	kb := NewKeyboardFrom(fakeKeys{
		just: map[ebiten.Key]bool{ebiten.KeyArrowRight: true, ebiten.KeyE: true},
		held: map[ebiten.Key]bool{ebiten.KeyW: true, ebiten.KeyA: true},
	})

	assert.Equal(t, Frame{
		GearUp:    true,
		DRSOn:     true,
		Throttle:  true,
		SteerLeft: true,
	}, kb.Read())
}

func TestKeyboard_ReadAlternateKeys(t *testing.T) {
	kb := NewKeyboardFrom(fakeKeys{
		just: map[ebiten.Key]bool{ebiten.KeyArrowLeft: true, ebiten.KeyQ: true},
		held: map[ebiten.Key]bool{ebiten.KeyS: true, ebiten.KeyD: true},
	})

	assert.Equal(t, Frame{
		GearDown:   true,
		DRSOff:     true,
		Brake:      true,
		SteerRight: true,
	}, kb.Read())
}

package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/overclock/pkg/models"
)

// ResultScreen shows how the run ended
type ResultScreen struct {
	session models.Session
	onRetry func()
	onHome  func()
}

// NewResultScreen creates a result screen for a finished session
func NewResultScreen(session models.Session, onRetry, onHome func()) *ResultScreen {
	return &ResultScreen{
		session: session,
		onRetry: onRetry,
		onHome:  onHome,
	}
}

// Update handles input for the result screen
func (rs *ResultScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && rs.onRetry != nil {
		rs.onRetry()
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if rs.onHome != nil {
			rs.onHome()
		}
	}
	return nil
}

// Draw renders the result screen
func (rs *ResultScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(colorBackground)

	centerX := float64(width) / 2
	clr := colorBad
	if rs.session.Cause.Victory() {
		clr = colorGood
	}
	DrawText(screen, ResultMessage(rs.session), centerX, float64(height)/3, 40, clr)

	y := float64(height)/3 + 70
	for _, line := range []string{
		fmt.Sprintf("Distance:  %.0f / %.0f m", rs.session.DistanceTraveled, rs.session.CourseLength),
		fmt.Sprintf("Penalty:   %.2f s", rs.session.PenaltyTime),
		fmt.Sprintf("Top speed: %.1f km/h", rs.session.TopSpeedKmh),
	} {
		DrawText(screen, line, centerX, y, 20, colorText)
		y += 30
	}

	DrawText(screen, "Enter: Back to Home | R: Retry", centerX, float64(height)-50, 20, colorDim)
}

// ResultMessage is the headline for a finished session.
func ResultMessage(s models.Session) string {
	switch s.Cause {
	case models.CauseGoalReached:
		return fmt.Sprintf("Goal! Time: %.2fs", s.PlayTime)
	case models.CauseFuelEmpty:
		return "Game Over: Out of Fuel"
	case models.CauseCrash:
		return "Game Over: Crashed (Course Out)"
	case models.CauseOverheat:
		return "Game Over: Engine Meltdown"
	default:
		return "Game Over"
	}
}

package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyState reports key presses. It lets the keyboard mapping run without a
// window.
type KeyState interface {
	JustPressed(key ebiten.Key) bool
	Pressed(key ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) JustPressed(key ebiten.Key) bool { return inpututil.IsKeyJustPressed(key) }
func (ebitenKeys) Pressed(key ebiten.Key) bool     { return ebiten.IsKeyPressed(key) }

// Keyboard maps keys to input frames.
type Keyboard struct {
	keys KeyState
}

// NewKeyboard reads the real keyboard through ebiten.
func NewKeyboard() *Keyboard {
	return &Keyboard{keys: ebitenKeys{}}
}

// NewKeyboardFrom reads keys from the given state.
func NewKeyboardFrom(keys KeyState) *Keyboard {
	return &Keyboard{keys: keys}
}

// Read returns this tick's frame.
//
//	Right / Left   shift up / down
//	Up or E        DRS on
//	Down or Q      DRS off
//	W / S          throttle / brake
//	A / D          steer left / right
func (k *Keyboard) Read() Frame {
	return Frame{
		GearUp:     k.keys.JustPressed(ebiten.KeyArrowRight),
		GearDown:   k.keys.JustPressed(ebiten.KeyArrowLeft),
		DRSOn:      k.keys.JustPressed(ebiten.KeyArrowUp) || k.keys.JustPressed(ebiten.KeyE),
		DRSOff:     k.keys.JustPressed(ebiten.KeyArrowDown) || k.keys.JustPressed(ebiten.KeyQ),
		Throttle:   k.keys.Pressed(ebiten.KeyW),
		Brake:      k.keys.Pressed(ebiten.KeyS),
		SteerLeft:  k.keys.Pressed(ebiten.KeyA),
		SteerRight: k.keys.Pressed(ebiten.KeyD),
	}
}

package frontend

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/nesgo/nesemu/console"
)

// keymap is the host-key-to-pad-button table for controller 0, in the
// same order as the real pad's shift register: A, B, Select, Start,
// Up, Down, Left, Right.
var keymap = []struct {
	key ebiten.Key
	btn console.Button
}{
	{ebiten.KeyA, console.ButtonA},
	{ebiten.KeyB, console.ButtonB},
	{ebiten.KeySpace, console.ButtonSelect},
	{ebiten.KeyEnter, console.ButtonStart},
	{ebiten.KeyUp, console.ButtonUp},
	{ebiten.KeyDown, console.ButtonDown},
	{ebiten.KeyLeft, console.ButtonLeft},
	{ebiten.KeyRight, console.ButtonRight},
}

// InputPoller translates host keyboard state into the console's
// button-state setter. It is the only place that knows about ebiten
// key codes; the controller itself is a pure shift register with no
// notion of a keyboard, keeping host-input sampling separate from
// button-state storage.
type InputPoller struct{}

// NewInputPoller returns a poller that drives controller 0 from the
// keyboard. There is no second physical input device wired up, so
// controller 1 is left untouched; games that poll it see an idle pad.
func NewInputPoller() *InputPoller {
	return &InputPoller{}
}

// Poll samples every mapped key once and pushes the result into
// controller 0's button-state byte.
func (p *InputPoller) Poll(c *console.Console) {
	for _, m := range keymap {
		c.SetButton(0, m.btn, ebiten.IsKeyPressed(m.key))
	}
}

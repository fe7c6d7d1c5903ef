// Package frontend implements the ebiten.Game adapter that drives the
// console from real wall-clock time: Update produces one emulated frame
// per tick, and Draw blits the most recently produced frame buffer into
// the window.
package frontend

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/nesgo/nesemu/console"
	"github.com/nesgo/nesemu/ppu"
)

// Game wraps a *console.Console in the shape ebiten.RunGame expects.
// It owns nothing the core doesn't already own; all emulation state
// lives in Console, and Game only sequences when the core is stepped
// and when host input is sampled.
type Game struct {
	console *console.Console
	poller  *InputPoller
	frame   []uint8
}

// New builds a Game around an already-reset Console, sized to the
// NES's native 256x240 resolution scaled by scale.
func New(c *console.Console, scale int) *Game {
	ebiten.SetWindowSize(ppu.NES_RES_WIDTH*scale, ppu.NES_RES_HEIGHT*scale)
	ebiten.SetWindowTitle("nesemu")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return &Game{console: c, poller: NewInputPoller()}
}

// Update is ebiten's ~60Hz tick, which makes it the console's clock
// driver. Host input is sampled once per tick and pushed into the
// console's controller 0 before the frame is produced.
func (g *Game) Update() error {
	g.poller.Poll(g.console)
	g.frame = g.console.NextFrame()
	return nil
}

// Draw blits the frame buffer produced by the most recent Update into
// the ebiten screen image, row-major top-left origin per the core's
// frame buffer contract.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		return
	}

	pix := make([]byte, ppu.NES_RES_WIDTH*ppu.NES_RES_HEIGHT*4)
	for i, j := 0, 0; i < len(g.frame); i, j = i+3, j+4 {
		pix[j] = g.frame[i]
		pix[j+1] = g.frame[i+1]
		pix[j+2] = g.frame[i+2]
		pix[j+3] = 0xFF
	}
	screen.WritePixels(pix)
}

// Layout returns the constant NES resolution regardless of window
// size, so ebiten handles the scaling rather than the core.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ppu.NES_RES_WIDTH, ppu.NES_RES_HEIGHT
}

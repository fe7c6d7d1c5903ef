// Command nesemu runs an NES cartridge image to completion, driven by
// ebiten's windowing and timing.
package main

import (
	"context"
	"flag"

	"github.com/golang/glog"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/nesgo/nesemu/console"
	"github.com/nesgo/nesemu/frontend"
	"github.com/nesgo/nesemu/mappers"
	"github.com/nesgo/nesemu/nesrom"
)

var (
	romFile = flag.String("nes_rom", "", "Path to NES ROM to run.")
	scale   = flag.Int("scale", 2, "Integer window scale factor over the native 256x240 resolution.")
	repl    = flag.Bool("repl", false, "Drive the console from the interactive debug REPL instead of the ebiten window.")
)

func main() {
	flag.Parse()
	defer glog.Flush()

	rom, err := nesrom.New(*romFile)
	if err != nil {
		glog.Exitf("invalid ROM: %v", err)
	}

	m, err := mappers.Get(rom)
	if err != nil {
		glog.Exitf("couldn't Get() mapper: %v", err)
	}

	c := console.New(m)

	if *repl {
		c.Repl(context.Background())
		return
	}

	g := frontend.New(c, *scale)
	if err := ebiten.RunGame(g); err != nil {
		glog.Exitf("ebiten.RunGame: %v", err)
	}
}

package console

import (
	"github.com/nesgo/nesemu/mappers"
	"github.com/nesgo/nesemu/nesrom"
)

// VRAM implements the PPU's 14-bit address space: pattern tables are
// forwarded to the cartridge mapper, nametables are mirrored down to the
// console's 2KB of CIRAM according to the cartridge's wiring, and palette
// RAM aliases the sprite palettes' entry-0 slots ($10/$14/$18/$1C) onto the
// matching background entries ($00/$04/$08/$0C).
type VRAM struct {
	ram     []uint8
	palette [paletteSize]uint8
	mapper  mappers.Mapper
}

func NewVRAM(m mappers.Mapper) *VRAM {
	return &VRAM{ram: make([]uint8, 0x800), mapper: m}
}

// State is a save/restore snapshot of the console's own nametable RAM and
// palette RAM (the pattern-table half of PPU address space lives on the
// cartridge and is the mapper's concern, not VRAM's).
type State struct {
	Nametables [0x800]uint8
	Palette    [paletteSize]uint8
}

func (v *VRAM) SaveState() State {
	var s State
	copy(s.Nametables[:], v.ram)
	s.Palette = v.palette
	return s
}

func (v *VRAM) LoadState(s State) {
	copy(v.ram, s.Nametables[:])
	v.palette = s.Palette
}

const (
	patternTableEnd = 0x2000
	nametableEnd    = 0x3F00
	paletteEnd      = 0x3F20
	paletteSize     = 0x20
)

// nametableAddr maps a 0x2000-0x2FFF PPU address down to an offset into the
// console's 2KB of nametable RAM, following the cartridge's mirroring mode.
// https://www.nesdev.org/wiki/Mirroring#Nametable_Mirroring
func nametableAddr(addr uint16, mm uint8) uint16 {
	a := (addr - 0x2000) % 0x1000

	switch mm {
	case nesrom.MIRROR_HORIZONTAL:
		if a >= 0x800 {
			return 0x0400 + (a-0x800)%0x400
		}
		return a % 0x0400
	case nesrom.MIRROR_VERTICAL:
		return a % 0x0800
	case nesrom.MIRROR_ONE_SCREEN_LOWER:
		return a % 0x0400
	case nesrom.MIRROR_ONE_SCREEN_UPPER:
		return 0x0400 + a%0x0400
	case nesrom.MIRROR_FOUR_SCREEN:
		panic("four-screen mirroring requires on-cartridge VRAM, which no mapper here provides")
	}

	panic("unknown mirroring mode")
}

// paletteAddr resolves the 32-entry palette RAM mirror at 0x3F00-0x3FFF,
// aliasing the sprite backdrop slots onto their background counterparts.
func paletteAddr(addr uint16) uint16 {
	a := (addr - nametableEnd) % paletteSize
	if a&0x13 == 0x10 {
		a &^= 0x10
	}
	return a
}

func mirrorDown(addr uint16) uint16 {
	if addr >= 0x4000 {
		return addr % 0x4000
	}
	return addr
}

func (v *VRAM) Read(addr uint16) uint8 {
	a := mirrorDown(addr)

	switch {
	case a < patternTableEnd:
		return v.mapper.ChrRead(a)
	case a < nametableEnd:
		return v.ram[nametableAddr(a, v.mapper.MirroringMode())]
	default:
		return v.palette[paletteAddr(a)]
	}
}

func (v *VRAM) Write(addr uint16, val uint8) {
	a := mirrorDown(addr)

	switch {
	case a < patternTableEnd:
		v.mapper.ChrWrite(a, val)
	case a < nametableEnd:
		v.ram[nametableAddr(a, v.mapper.MirroringMode())] = val
	default:
		v.palette[paletteAddr(a)] = val
	}
}

package mappers

import (
	"github.com/golang/glog"

	"github.com/nesgo/nesemu/nesrom"
)

// Nrom implements mapper 0: no bank switching. 16KB PRG carts mirror their
// single bank across both halves of $8000-$FFFF; 32KB carts fill the whole
// window. CHR is either a fixed 8KB ROM bank or, if the cartridge has none,
// 8KB of CHR RAM the PPU can write through.
type Nrom struct {
	baseMapper
	mirrored bool
	chrRAM   []uint8
}

func init() {
	registerMapper(0, func() Mapper { return &Nrom{baseMapper: newBaseMapper(0, "NROM")} })
}

func (m *Nrom) Init(r *nesrom.ROM) {
	m.baseMapper.Init(r)
	m.mirrored = r.NumPrgBlocks() <= 1
	if r.NumChrBlocks() == 0 {
		m.chrRAM = make([]uint8, 0x2000)
	}
}

func (m *Nrom) PrgRead(addr uint16) uint8 {
	if addr < 0x8000 {
		glog.V(2).Infof("nrom: read from unmapped address 0x%04x", addr)
		return 0
	}
	off := uint32(addr - 0x8000)
	if m.mirrored {
		off &= 0x3FFF
	} else {
		off &= 0x7FFF
	}
	return m.rom.PrgRead(off)
}

func (m *Nrom) PrgWrite(addr uint16, val uint8) {
	// NROM PRG is read-only; writes through $8000-$FFFF are discarded.
}

func (m *Nrom) ChrRead(addr uint16) uint8 {
	if m.chrRAM != nil {
		return m.chrRAM[addr]
	}
	return m.rom.ChrRead(uint32(addr))
}

func (m *Nrom) ChrWrite(addr uint16, val uint8) {
	if m.chrRAM != nil {
		m.chrRAM[addr] = val
	}
}

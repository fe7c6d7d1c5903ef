package mappers

import (
	"github.com/golang/glog"

	"github.com/nesgo/nesemu/nesrom"
)

// Uxrom implements mapper 2: a single 3-bit bank register switches the
// 16KB window at $8000-$BFFF; $C000-$FFFF is hard-wired to the last 16KB
// bank. CHR is always RAM (UxROM carts have no CHR ROM).
type Uxrom struct {
	baseMapper
	bankSelect uint8
	chrRAM     []uint8
}

func init() {
	registerMapper(2, func() Mapper { return &Uxrom{baseMapper: newBaseMapper(2, "UxROM")} })
}

func (m *Uxrom) Init(r *nesrom.ROM) {
	m.baseMapper.Init(r)
	m.chrRAM = make([]uint8, 0x2000)
}

func (m *Uxrom) PrgRead(addr uint16) uint8 {
	const bankSize = 0x4000
	if addr < 0x8000 {
		glog.V(2).Infof("uxrom: read from unmapped address 0x%04x", addr)
		return 0
	}
	if addr < 0xC000 {
		return m.rom.PrgRead(uint32(m.bankSelect)*bankSize + uint32(addr-0x8000))
	}
	lastBank := uint32(m.rom.NumPrgBlocks()-1) * bankSize
	return m.rom.PrgRead(lastBank + uint32(addr-0xC000))
}

func (m *Uxrom) PrgWrite(addr uint16, val uint8) {
	if addr >= 0x8000 {
		m.bankSelect = val & 0x07
	}
}

func (m *Uxrom) ChrRead(addr uint16) uint8 {
	return m.chrRAM[addr]
}

func (m *Uxrom) ChrWrite(addr uint16, val uint8) {
	m.chrRAM[addr] = val
}

package mappers

import (
	"github.com/golang/glog"

	"github.com/nesgo/nesemu/nesrom"
)

// Cnrom implements mapper 3: PRG is fixed (16KB mirrored or 32KB flat, same
// as NROM); an 8KB CHR bank is selected by the low 2 bits of any write to
// $8000-$FFFF.
type Cnrom struct {
	baseMapper
	mirrored     bool
	chrBankBytes uint32
}

func init() {
	registerMapper(3, func() Mapper { return &Cnrom{baseMapper: newBaseMapper(3, "CNROM")} })
}

func (m *Cnrom) Init(r *nesrom.ROM) {
	m.baseMapper.Init(r)
	m.mirrored = r.NumPrgBlocks() <= 1
}

func (m *Cnrom) PrgRead(addr uint16) uint8 {
	if addr < 0x8000 {
		glog.V(2).Infof("cnrom: read from unmapped address 0x%04x", addr)
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

func (m *Cnrom) PrgWrite(addr uint16, val uint8) {
	if addr >= 0x8000 {
		m.chrBankBytes = uint32(val&0x03) * 0x2000
	}
}

func (m *Cnrom) ChrRead(addr uint16) uint8 {
	return m.rom.ChrRead(m.chrBankBytes + uint32(addr))
}

func (m *Cnrom) ChrWrite(addr uint16, val uint8) {
	// CNROM CHR is ROM; writes through the pattern tables are discarded.
}

package mappers

import (
	"github.com/golang/glog"

	"github.com/nesgo/nesemu/nesrom"
)

// Axrom implements mapper 7: a single write to $8000-$FFFF selects one of
// up to eight 32KB PRG banks (low 3 bits) and one of two single-screen
// nametables (bit 4). CHR is always RAM.
type Axrom struct {
	baseMapper
	bankSelect   uint8
	singleScreen uint8
	chrRAM       []uint8
}

func init() {
	registerMapper(7, func() Mapper { return &Axrom{baseMapper: newBaseMapper(7, "AxROM")} })
}

func (m *Axrom) Init(r *nesrom.ROM) {
	m.baseMapper.Init(r)
	m.chrRAM = make([]uint8, 0x2000)
}

func (m *Axrom) PrgRead(addr uint16) uint8 {
	const bankSize = 0x8000
	if addr < 0x8000 {
		glog.V(2).Infof("axrom: read from unmapped address 0x%04x", addr)
		return 0
	}
	return m.rom.PrgRead(uint32(m.bankSelect)*bankSize + uint32(addr-0x8000))
}

func (m *Axrom) PrgWrite(addr uint16, val uint8) {
	if addr >= 0x8000 {
		m.bankSelect = val & 0x07
		m.singleScreen = (val >> 4) & 1
	}
}

func (m *Axrom) ChrRead(addr uint16) uint8 {
	return m.chrRAM[addr]
}

func (m *Axrom) ChrWrite(addr uint16, val uint8) {
	m.chrRAM[addr] = val
}

// MirroringMode overrides baseMapper's header-derived value: AxROM ignores
// the cartridge header and switches between two single-screen nametables
// under software control.
func (m *Axrom) MirroringMode() uint8 {
	if m.singleScreen == 0 {
		return nesrom.MIRROR_ONE_SCREEN_LOWER
	}
	return nesrom.MIRROR_ONE_SCREEN_UPPER
}

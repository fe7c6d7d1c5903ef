package mappers

import (
	"github.com/golang/glog"

	"github.com/nesgo/nesemu/nesrom"
)

// Sxrom implements mapper 1 (MMC1). The CPU loads its 5-bit shift register
// one bit per write (LSB first); on the fifth write the accumulated value
// is latched into whichever internal register the written address selects.
// Writing with bit 7 set resets the shift register and forces PRG mode 3
// without touching the other registers.
type Sxrom struct {
	baseMapper

	shiftVal   uint8
	shiftIndex uint8

	ctrl         uint8
	chrBank0Off  uint32
	chrBank1Off  uint32
	prgBankOff   uint32
	prgRAMEnable bool

	chrRAM []uint8
	prgRAM [0x2000]uint8

	lastPageStart uint32
	chrBankMask   uint8
}

func init() {
	registerMapper(1, func() Mapper { return &Sxrom{baseMapper: newBaseMapper(1, "SxROM (MMC1)")} })
}

func (m *Sxrom) Init(r *nesrom.ROM) {
	m.baseMapper.Init(r)
	numChrBanks4k := uint8(2)
	if r.NumChrBlocks() == 0 {
		m.chrRAM = make([]uint8, 0x2000)
	} else {
		numChrBanks4k = r.NumChrBlocks() * 2
	}
	m.chrBankMask = numChrBanks4k - 1
	m.lastPageStart = uint32(r.NumPrgBlocks()-1) * 0x4000
	m.resetShift()
	m.ctrl = 0x0C
	m.prgRAMEnable = true
}

func (m *Sxrom) resetShift() {
	m.shiftVal = 0
	m.shiftIndex = 0
}

// pushShift returns the latched 5-bit value and true once the fifth bit has
// arrived, resetting the shift register in the same step.
func (m *Sxrom) pushShift(val uint8) (uint8, bool) {
	m.shiftVal |= (val & 1) << m.shiftIndex
	if m.shiftIndex == 4 {
		out := m.shiftVal
		m.resetShift()
		return out, true
	}
	m.shiftIndex++
	return 0, false
}

func (m *Sxrom) PrgRead(addr uint16) uint8 {
	switch {
	case addr >= 0x6000 && addr < 0x8000:
		return m.prgRAM[addr-0x6000]
	case addr >= 0x8000:
		return m.rom.PrgRead(m.prgIndex(addr))
	default:
		glog.V(2).Infof("sxrom: read from unmapped address 0x%04x", addr)
		return 0
	}
}

func (m *Sxrom) prgIndex(addr uint16) uint32 {
	switch (m.ctrl >> 2) & 0x03 {
	case 0, 1:
		// 32 KiB mode: bit 0 of the bank number is ignored, so clear the
		// 16 KiB granularity bit (0x4000) to land on an even bank pair.
		return (m.prgBankOff &^ 0x4000) + uint32(addr-0x8000)
	case 2:
		if addr < 0xC000 {
			return uint32(addr - 0x8000)
		}
		return m.prgBankOff + uint32(addr-0xC000)
	default: // 3
		if addr < 0xC000 {
			return m.prgBankOff + uint32(addr-0x8000)
		}
		return m.lastPageStart + uint32(addr-0xC000)
	}
}

func (m *Sxrom) PrgWrite(addr uint16, val uint8) {
	switch {
	case addr < 0x6000:
		return
	case addr < 0x8000:
		m.prgRAM[addr-0x6000] = val
	default:
		if val&0x80 != 0 {
			m.resetShift()
			m.ctrl |= 0x0C
			return
		}
		latched, ready := m.pushShift(val)
		if !ready {
			return
		}
		switch {
		case addr < 0xA000:
			m.ctrl = latched
		case addr < 0xC000:
			m.chrBank0Off = uint32(latched&m.chrBankMask) << 12
		case addr < 0xE000:
			m.chrBank1Off = uint32(latched&m.chrBankMask) << 12
		default:
			m.prgBankOff = uint32(latched&0x0F) << 14
			m.prgRAMEnable = latched&0x10 == 0
		}
	}
}

func (m *Sxrom) ChrRead(addr uint16) uint8 {
	idx := m.chrIndex(addr)
	if m.chrRAM != nil {
		return m.chrRAM[idx]
	}
	return m.rom.ChrRead(idx)
}

func (m *Sxrom) ChrWrite(addr uint16, val uint8) {
	if m.chrRAM != nil {
		m.chrRAM[m.chrIndex(addr)] = val
	}
}

func (m *Sxrom) chrIndex(addr uint16) uint32 {
	if m.ctrl&0x10 == 0 {
		return (m.chrBank0Off &^ 0x1000) + uint32(addr)
	}
	if addr < 0x1000 {
		return m.chrBank0Off + uint32(addr)
	}
	return m.chrBank1Off + uint32(addr-0x1000)
}

// MirroringMode overrides the header value: MMC1 selects its own
// nametable arrangement via the low 2 bits of the control register.
func (m *Sxrom) MirroringMode() uint8 {
	switch m.ctrl & 0x03 {
	case 0:
		return nesrom.MIRROR_ONE_SCREEN_LOWER
	case 1:
		return nesrom.MIRROR_ONE_SCREEN_UPPER
	case 2:
		return nesrom.MIRROR_VERTICAL
	default: // 3
		return nesrom.MIRROR_HORIZONTAL
	}
}

package mappers

import (
	"github.com/golang/glog"

	"github.com/nesgo/nesemu/nesrom"
)

// Txrom implements mapper 4 (MMC3) far enough to load ROMs and run code out
// of the fixed last bank, but deliberately does not implement bank
// switching or the scanline IRQ counter: no test ROM in this project's
// conformance set exercises them, and the bank-select state machine is
// involved enough to warrant its own follow-up. Writes to the bank-select
// registers are logged and ignored rather than silently corrupting state.
type Txrom struct {
	baseMapper
	lastPageStart uint32
	mirroring     uint8
}

func init() {
	registerMapper(4, func() Mapper { return &Txrom{baseMapper: newBaseMapper(4, "TxROM (MMC3)")} })
}

func (m *Txrom) Init(r *nesrom.ROM) {
	m.baseMapper.Init(r)
	m.lastPageStart = uint32(r.NumPrgBlocks())*0x4000 - 0x2000
	m.mirroring = nesrom.MIRROR_HORIZONTAL
}

func (m *Txrom) PrgRead(addr uint16) uint8 {
	if addr < 0xE000 {
		glog.V(1).Infof("txrom: read from unimplemented bank window 0x%04x", addr)
		return 0
	}
	return m.rom.PrgRead(m.lastPageStart + uint32(addr-0xE000))
}

func (m *Txrom) PrgWrite(addr uint16, val uint8) {
	switch {
	case addr < 0x8000:
		return
	case addr < 0xA000:
		// TODO: implement the $8000/$8001 bank-select/bank-data pair and
		// the $C000-$E001 scanline IRQ counter.
		glog.Warningf("txrom: bank-select write 0x%04x=0x%02x ignored (unimplemented)", addr, val)
	case addr < 0xC000:
		if addr&1 == 0 {
			if val&1 == 0 {
				m.mirroring = nesrom.MIRROR_VERTICAL
			} else {
				m.mirroring = nesrom.MIRROR_HORIZONTAL
			}
		}
	default:
		glog.V(1).Infof("txrom: IRQ-latch/enable write 0x%04x=0x%02x ignored (unimplemented)", addr, val)
	}
}

func (m *Txrom) ChrRead(addr uint16) uint8 {
	return 0
}

func (m *Txrom) ChrWrite(addr uint16, val uint8) {
}

func (m *Txrom) MirroringMode() uint8 {
	return m.mirroring
}

package console

import (
	"github.com/golang/glog"
	"github.com/nesgo/nesemu/mappers"
	"github.com/nesgo/nesemu/ppu"
)

const (
	wramEnd     = 0x1FFF
	ppuRegStart = 0x2000
	ppuRegEnd   = 0x3FFF
	oamDMAReg   = 0x4014
	apuStatus   = 0x4015
	ctrl0Reg    = 0x4016
	ctrl1Reg    = 0x4017
	apuEnd      = 0x4017
	ioEnd       = 0x401F
	romStart    = 0x4020
)

// MMU is the CPU-side memory arbiter: 2KB of work RAM mirrored across
// 0x0000-0x1FFF, PPU registers mirrored every 8 bytes across
// 0x2000-0x3FFF, the controller ports, an APU stub that absorbs writes and
// answers reads with the open-bus byte, OAM DMA triggering, and everything
// from 0x4020 up forwarded to the cartridge mapper.
type MMU struct {
	ram        [0x800]uint8
	ppu        *ppu.PPU
	mapper     mappers.Mapper
	ctrl0      controller
	ctrl1      controller
	openBus    uint8
	pendingDMA bool
	dmaPage    uint8
}

func NewMMU(p *ppu.PPU, m mappers.Mapper) *MMU {
	return &MMU{ppu: p, mapper: m}
}

// RAM returns a copy of the 2KB work-RAM backing array, for save-state
// snapshotting.
func (m *MMU) RAM() [0x800]uint8 {
	return m.ram
}

// LoadRAM restores a work-RAM image previously returned by RAM.
func (m *MMU) LoadRAM(ram [0x800]uint8) {
	m.ram = ram
}

func (m *MMU) SetButton(player int, b Button, pressed bool) {
	switch player {
	case 0:
		m.ctrl0.setButton(b, pressed)
	case 1:
		m.ctrl1.setButton(b, pressed)
	}
}

// TakeDMA reports and clears a pending OAM DMA request left by a write to
// $4014, for the console's step loop to service between instructions.
func (m *MMU) TakeDMA() (page uint8, pending bool) {
	if !m.pendingDMA {
		return 0, false
	}
	m.pendingDMA = false
	return m.dmaPage, true
}

func (m *MMU) Read(addr uint16) uint8 {
	switch {
	case addr <= wramEnd:
		return m.ram[addr&0x7FF]
	case addr <= ppuRegEnd:
		return m.readPPU(addr & 7)
	case addr == apuStatus:
		return m.openBus
	case addr == ctrl0Reg:
		m.openBus = m.ctrl0.read()
		return m.openBus
	case addr == ctrl1Reg:
		m.openBus = m.ctrl1.read()
		return m.openBus
	case addr <= ioEnd:
		glog.V(2).Infof("read from unmapped IO register %#04x", addr)
		return m.openBus
	default:
		return m.mapper.PrgRead(addr)
	}
}

func (m *MMU) readPPU(reg uint16) uint8 {
	switch reg {
	case 2:
		status := m.ppu.ReadReg(uint8(reg))
		m.openBus = (status & 0xE0) | (m.openBus & 0x1F)
		return m.openBus
	case 4:
		val := m.ppu.ReadReg(uint8(reg))
		m.openBus = val
		return val & 0xE3
	case 7:
		val := m.ppu.ReadReg(uint8(reg))
		if m.ppu.LastReadWasPalette() {
			return (val & 0x3F) | (m.openBus & 0xC0)
		}
		m.openBus = val
		return val
	default:
		return m.openBus
	}
}

func (m *MMU) Write(addr uint16, val uint8) {
	switch {
	case addr <= wramEnd:
		m.ram[addr&0x7FF] = val
	case addr <= ppuRegEnd:
		m.openBus = val
		m.ppu.WriteReg(uint8(addr&7), val)
	case addr == oamDMAReg:
		m.pendingDMA = true
		m.dmaPage = val
	case addr == ctrl0Reg:
		m.ctrl0.write(val)
		m.ctrl1.write(val)
	case addr <= apuEnd:
		// APU registers are a stub: absorb the write, nothing plays.
	case addr <= ioEnd:
		glog.V(2).Infof("write to unmapped IO register %#04x = %#02x", addr, val)
	default:
		m.mapper.PrgWrite(addr, val)
	}
}

package console

import (
	"testing"

	"github.com/nesgo/nesemu/nesrom"
)

// fakeMapper is a minimal Mapper fake: flat PRG/CHR RAM, fixed horizontal
// mirroring, no bank switching. Good enough to drive a Console end to end
// without needing a real iNES file on disk.
type fakeMapper struct {
	prg [0x10000]uint8
	chr [0x2000]uint8
}

func (m *fakeMapper) ID() uint16                     { return 0 }
func (m *fakeMapper) Init(r *nesrom.ROM)             {}
func (m *fakeMapper) Name() string                   { return "fake" }
func (m *fakeMapper) PrgRead(addr uint16) uint8      { return m.prg[addr] }
func (m *fakeMapper) PrgWrite(addr uint16, val uint8) { m.prg[addr] = val }
func (m *fakeMapper) ChrRead(addr uint16) uint8      { return m.chr[addr] }
func (m *fakeMapper) ChrWrite(addr uint16, val uint8) { m.chr[addr] = val }
func (m *fakeMapper) MirroringMode() uint8           { return nesrom.MIRROR_HORIZONTAL }
func (m *fakeMapper) HasSaveRAM() bool               { return false }

func newTestConsole() *Console {
	m := &fakeMapper{}
	// Reset vector -> 0x8000, a tight loop of NOPs so Step always advances PC.
	m.prg[0xFFFC] = 0x00
	m.prg[0xFFFD] = 0x80
	for i := uint32(0x8000); i < 0x8100; i++ {
		m.prg[i] = 0xEA // NOP
	}
	return New(m)
}

func TestStepAdvancesPC(t *testing.T) {
	c := newTestConsole()
	pc := c.CPU.PC
	c.Step()
	if c.CPU.PC != pc+1 {
		t.Fatalf("PC after one NOP step = %#04x, want %#04x", c.CPU.PC, pc+1)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	c := newTestConsole()
	for i := 0; i < 10; i++ {
		c.Step()
	}
	c.MMU.Write(0x0010, 0x42)
	c.VRAM.Write(0x2005, 0x99)

	snap := c.SaveSnapshot()

	// Mutate state after the snapshot so restoring it is observable.
	c.Step()
	c.MMU.Write(0x0010, 0x00)
	c.VRAM.Write(0x2005, 0x00)

	c.LoadSnapshot(snap)

	if c.CPU.PC != snap.CPU.PC {
		t.Errorf("PC after restore = %#04x, want %#04x", c.CPU.PC, snap.CPU.PC)
	}
	if got := c.MMU.Read(0x0010); got != 0x42 {
		t.Errorf("RAM[0x10] after restore = %#02x, want 0x42", got)
	}
	if got := c.VRAM.Read(0x2005); got != 0x99 {
		t.Errorf("VRAM nametable byte after restore = %#02x, want 0x99", got)
	}
}

func TestSetButtonRoutesToCorrectController(t *testing.T) {
	c := newTestConsole()
	c.SetButton(0, ButtonA, true) // only controller 0 has a button held

	c.MMU.Write(0x4016, 1)
	c.MMU.Write(0x4016, 0)
	p0 := c.MMU.Read(0x4016) & 1
	p1 := c.MMU.Read(0x4017) & 1

	if p0 != 1 {
		t.Errorf("controller 0 first read bit = %d, want 1 (ButtonA pressed)", p0)
	}
	if p1 != 0 {
		t.Errorf("controller 1 first read bit = %d, want 0 (nothing pressed)", p1)
	}
}

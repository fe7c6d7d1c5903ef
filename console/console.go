package console

import (
	"github.com/nesgo/nesemu/cpu6502"
	"github.com/nesgo/nesemu/mappers"
	"github.com/nesgo/nesemu/ppu"
)

// Console wires the CPU, PPU, MMU, and cartridge mapper together and
// drives them in lockstep: three PPU dots per CPU cycle, NMI serviced
// between instructions, and OAM DMA stealing CPU cycles the moment a
// write to $4014 is observed.
type Console struct {
	CPU    *cpu6502.CPU
	PPU    *ppu.PPU
	MMU    *MMU
	VRAM   *VRAM
	mapper mappers.Mapper
}

func New(m mappers.Mapper) *Console {
	vram := NewVRAM(m)
	p := ppu.New(vram)
	mmu := NewMMU(p, m)
	c := cpu6502.New()

	console := &Console{CPU: c, PPU: p, MMU: mmu, VRAM: vram, mapper: m}
	console.Reset()
	return console
}

func (c *Console) Reset() {
	c.CPU.Reset(c.MMU)
	c.PPU.Reset()
}

// SetButton updates one button on one of the two controller ports. player
// is 0 or 1.
func (c *Console) SetButton(player int, b Button, pressed bool) {
	c.MMU.SetButton(player, b, pressed)
}

// Snapshot bundles the CPU, PPU, and console-owned memory state needed to
// resume a session exactly where it left off. The byte encoding of a
// Snapshot (for writing it to disk) is deliberately unspecified here;
// mapper bank-select state is the one piece left out, since capturing it
// generically would require every Mapper implementation to expose its own
// save/restore surface for a feature whose wire format is already out of
// scope.
type Snapshot struct {
	CPU  cpu6502.Registers
	PPU  ppu.State
	VRAM State
	RAM  [0x800]uint8
}

func (c *Console) SaveSnapshot() Snapshot {
	return Snapshot{
		CPU:  c.CPU.SaveRegisters(),
		PPU:  c.PPU.SaveState(),
		VRAM: c.VRAM.SaveState(),
		RAM:  c.MMU.RAM(),
	}
}

func (c *Console) LoadSnapshot(s Snapshot) {
	c.CPU.LoadRegisters(s.CPU)
	c.PPU.LoadState(s.PPU)
	c.VRAM.LoadState(s.VRAM)
	c.MMU.LoadRAM(s.RAM)
}

// Step executes one CPU instruction, advances the PPU the matching number
// of dots, services a pending NMI, and services OAM DMA if the instruction
// just executed wrote to $4014. It returns true if a new frame completed
// during this step.
func (c *Console) Step() bool {
	cycles := c.CPU.Step(c.MMU)
	frame, nmi := c.PPU.EmulateCycles(cycles)

	if page, pending := c.MMU.TakeDMA(); pending {
		dmaCycles := c.CPU.ServiceDMA(c.MMU, page, c.CPU.TotalCycles%2 == 1)
		f, n := c.PPU.EmulateCycles(dmaCycles)
		frame = frame || f
		nmi = nmi || n
	}

	if nmi {
		c.CPU.ServiceNMI(c.MMU)
		f, _ := c.PPU.EmulateCycles(c.CPU.DeltaCycles)
		frame = frame || f
	}

	return frame
}

// NextFrame runs Step in a loop until a full frame has been produced and
// returns the PPU's frame buffer.
func (c *Console) NextFrame() []uint8 {
	for !c.Step() {
	}
	return c.PPU.FrameBuffer()
}

// Package ppu implements the NES 2C02 Picture Processing Unit: a
// per-dot state machine driving background and sprite pixel generation,
// scroll/nametable addressing, and the vblank/NMI timing the CPU relies on.
package ppu

import "fmt"

const (
	OAM_SIZE     = 256
	PALETTE_SIZE = 32
)

// Display constants
const (
	NES_RES_WIDTH  = 256
	NES_RES_HEIGHT = 240
)

const preRenderLine = 261
const spritesPerScanline = 8

// Register indices as addressed via WriteReg/ReadReg: the CPU side maps
// $2000-$2007 (mirrored every 8 bytes through $3FFF) onto these.
const (
	RegCtrl = iota
	RegMask
	RegStatus
	RegOAMAddr
	RegOAMData
	RegScroll
	RegAddr
	RegData
)

// PPUCTRL bit flags
// 7  bit  0
// ---- ----
// VPHB SINN
// |||| ||||
// |||| ||++- Base nametable address
// |||| ||    (0 = $2000; 1 = $2400; 2 = $2800; 3 = $2C00)
// |||| |+--- VRAM address increment per CPU read/write of PPUDATA
// |||| |     (0: add 1, going across; 1: add 32, going down)
// |||| +---- Sprite pattern table address for 8x8 sprites
// ||||       (0: $0000; 1: $1000; ignored in 8x16 mode)
// |||+------ Background pattern table address (0: $0000; 1: $1000)
// ||+------- Sprite size (0: 8x8 pixels; 1: 8x16 pixels)
// |+-------- PPU master/slave select
// +--------- Generate an NMI at the start of vertical blank
const (
	ctrlNametableMask  = 0x03
	ctrlVramIncr       = 1 << 2
	ctrlSpritePT       = 1 << 3
	ctrlBgPT           = 1 << 4
	ctrlSpriteSizeBit  = 1 << 5
	ctrlGenerateNMIBit = 1 << 7
)

// 7  bit  0
// ---- ----
// VSO. ....
// |||| ||||
// |||+-++++- PPU open bus. Returns stale PPU bus contents.
// ||+------- Sprite overflow.
// |+-------- Sprite 0 Hit.
// +--------- Vertical blank has started.
const (
	statusSpriteOverflow = 1 << 5
	statusSprite0Hit     = 1 << 6
	statusVBlank         = 1 << 7
)

const (
	maskGreyscale    = 1 << 0
	maskLeft8Bg      = 1 << 1
	maskLeft8Sprite  = 1 << 2
	maskShowBg       = 1 << 3
	maskShowSprites  = 1 << 4
	maskEmphasizeR   = 1 << 5
	maskEmphasizeG   = 1 << 6
	maskEmphasizeB   = 1 << 7
)

// Bus is the PPU's view of its own 14-bit address space: pattern tables
// (routed to the cartridge mapper), nametables (mirrored per the cartridge's
// mirroring mode) and palette RAM, all folded into one flat address space
// the way real PPU address decoding does.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, val uint8)
}

// Event reports a side effect produced by a single Step call.
type Event uint8

const (
	EventNone Event = iota
	EventNMI
	EventFrame
)

// PPU renders one NTSC frame of 262 scanlines x 341 dots, mirroring the
// real 2C02's background-fetch and sprite-evaluation pipelines closely
// enough to reproduce sprite-0 hit and mid-frame raster-effect timing.
type PPU struct {
	bus Bus

	ctrl   uint8
	mask   uint8
	status uint8

	oamAddr uint8
	oam     [OAM_SIZE]uint8

	// v/t are the loopy scroll/address registers; fineX is the 3-bit
	// sub-tile X scroll that doesn't fit in either.
	v, t  loopy
	fineX uint8

	writeLatch      bool
	bufferData      uint8
	lastReadPalette bool

	cc       uint16 // dot within the scanline, 0-340
	scanline uint16 // 0-239 visible, 240 post-render, 241-260 vblank, 261 pre-render
	oddFrame bool

	// tripNMI forces an NMI on the same dot CTRL's NMI-enable bit turns
	// on while STATUS still reports vblank (the well known CTRL-write
	// race). vblankOff suppresses vblank-start/NMI for the rest of the
	// current dot when STATUS was just read (the read/set race at
	// scanline 241, dot 1).
	tripNMI   bool
	vblankOff bool

	atEntry uint8
	regs    internalRegs

	secondaryOAM []oam
	sprites      []oam

	screen []uint8 // 256*240*3 RGB, row-major
}

func New(bus Bus) *PPU {
	return &PPU{
		bus:          bus,
		scanline:     preRenderLine,
		secondaryOAM: make([]oam, 0, spritesPerScanline),
		sprites:      make([]oam, 0, spritesPerScanline),
		screen:       make([]uint8, NES_RES_WIDTH*NES_RES_HEIGHT*3),
	}
}

func (p *PPU) Reset() {
	p.ctrl, p.mask, p.status = 0, 0, 0
	p.oamAddr = 0
	p.oam = [OAM_SIZE]uint8{}
	p.v, p.t = loopy{}, loopy{}
	p.fineX = 0
	p.writeLatch = false
	p.bufferData = 0
	p.cc, p.scanline = 0, preRenderLine
	p.oddFrame = false
	p.tripNMI, p.vblankOff = false, false
	p.atEntry = 0
	p.regs = internalRegs{}
	p.secondaryOAM = p.secondaryOAM[:0]
	p.sprites = p.sprites[:0]
	for i := range p.screen {
		p.screen[i] = 0
	}
}

// FrameBuffer returns the 256x240 RGB pixel buffer for the most recently
// completed frame (row-major, 3 bytes per pixel).
func (p *PPU) FrameBuffer() []uint8 {
	return p.screen
}

// State is a save/restore snapshot of everything the PPU's own pipeline
// needs to resume mid-frame: register file, scroll/address registers, OAM,
// and the dot/scanline counters. It does not capture the frame buffer,
// which is regenerated by the time the next EventFrame fires.
type State struct {
	Ctrl, Mask, Status uint8
	OAMAddr            uint8
	OAM                [OAM_SIZE]uint8
	V, T               uint16
	FineX              uint8
	WriteLatch         bool
	BufferData         uint8
	LastReadPalette    bool
	Dot                uint16
	Scanline           uint16
	OddFrame           bool
	TripNMI, VBlankOff bool
}

func (p *PPU) SaveState() State {
	return State{
		Ctrl: p.ctrl, Mask: p.mask, Status: p.status,
		OAMAddr: p.oamAddr, OAM: p.oam,
		V: p.v.data, T: p.t.data, FineX: p.fineX,
		WriteLatch: p.writeLatch, BufferData: p.bufferData, LastReadPalette: p.lastReadPalette,
		Dot: p.cc, Scanline: p.scanline, OddFrame: p.oddFrame,
		TripNMI: p.tripNMI, VBlankOff: p.vblankOff,
	}
}

// LoadState restores a snapshot taken by SaveState. The background/sprite
// shift pipeline and the current scanline's secondary OAM selection are
// transient mid-scanline state, not part of the snapshot; they repopulate
// within one scanline of resuming, the same way they do after Reset.
func (p *PPU) LoadState(s State) {
	p.ctrl, p.mask, p.status = s.Ctrl, s.Mask, s.Status
	p.oamAddr = s.OAMAddr
	p.oam = s.OAM
	p.v, p.t = loopy{s.V}, loopy{s.T}
	p.fineX = s.FineX
	p.writeLatch = s.WriteLatch
	p.bufferData = s.BufferData
	p.lastReadPalette = s.LastReadPalette
	p.cc, p.scanline = s.Dot, s.Scanline
	p.oddFrame = s.OddFrame
	p.tripNMI, p.vblankOff = s.TripNMI, s.VBlankOff
	p.regs = internalRegs{}
	p.secondaryOAM = p.secondaryOAM[:0]
	p.sprites = p.sprites[:0]
}

// String renders the register file for the debug REPL.
func (p *PPU) String() string {
	return fmt.Sprintf("ctrl=%02x mask=%02x status=%02x oamAddr=%02x v=%04x t=%04x scanline=%d dot=%d",
		p.ctrl, p.mask, p.status, p.oamAddr, p.v.address(), p.t.address(), p.scanline, p.cc)
}

func (p *PPU) ctrlNametable() uint16 { return uint16(p.ctrl & ctrlNametableMask) }

func (p *PPU) ctrlVramIncrement() uint8 {
	if p.ctrl&ctrlVramIncr != 0 {
		return 32
	}
	return 1
}
func (p *PPU) ctrlSpritePatternTable() uint16 {
	if p.ctrl&ctrlSpritePT != 0 {
		return 0x1000
	}
	return 0
}
func (p *PPU) ctrlBgPatternTable() uint16 {
	if p.ctrl&ctrlBgPT != 0 {
		return 0x1000
	}
	return 0
}
func (p *PPU) ctrlSpriteSize() uint16 {
	if p.ctrl&ctrlSpriteSizeBit != 0 {
		return 16
	}
	return 8
}
func (p *PPU) ctrlNMIOn() bool { return p.ctrl&ctrlGenerateNMIBit != 0 }

func (p *PPU) maskShowBg() bool      { return p.mask&maskShowBg != 0 }
func (p *PPU) maskShowSprites() bool { return p.mask&maskShowSprites != 0 }
func (p *PPU) maskLeft8Bg() bool     { return p.mask&maskLeft8Bg != 0 }
func (p *PPU) maskLeft8Sprite() bool { return p.mask&maskLeft8Sprite != 0 }

// ReadReg implements a CPU read of one of the eight memory-mapped PPU
// registers (already demapped to 0-7 by the caller).
func (p *PPU) ReadReg(r uint8) uint8 {
	switch r {
	case RegStatus:
		return p.readStatus()
	case RegOAMData:
		return p.oam[p.oamAddr]
	case RegData:
		return p.readData()
	default:
		return 0
	}
}

func (p *PPU) readStatus() uint8 {
	p.writeLatch = false
	val := p.status
	p.status &^= statusVBlank
	p.vblankOff = true
	return val
}

func (p *PPU) readData() uint8 {
	addr := p.v.address()
	p.lastReadPalette = addr >= 0x3F00
	var val uint8
	if p.lastReadPalette {
		val = p.bus.Read(addr)
		p.bufferData = p.bus.Read(addr - 0x1000)
	} else {
		val = p.bufferData
		p.bufferData = p.bus.Read(addr)
	}
	p.v.addOffset(p.ctrlVramIncrement())
	return val
}

// LastReadWasPalette reports whether the most recent PPUDATA read landed in
// palette space, where the buffered-read delay doesn't apply. The MMU uses
// this to decide how to merge the open-bus latch into the returned byte.
func (p *PPU) LastReadWasPalette() bool {
	return p.lastReadPalette
}

// WriteReg implements a CPU write to one of the eight memory-mapped PPU
// registers.
func (p *PPU) WriteReg(r uint8, val uint8) {
	switch r {
	case RegCtrl:
		p.writeCtrl(val)
	case RegMask:
		p.mask = val
	case RegOAMAddr:
		p.oamAddr = val
	case RegOAMData:
		p.oam[p.oamAddr] = val
		p.oamAddr++
	case RegScroll:
		p.writeScroll(val)
	case RegAddr:
		p.writeAddr(val)
	case RegData:
		p.writeData(val)
	}
}

func (p *PPU) writeCtrl(val uint8) {
	wasOn := p.ctrlNMIOn()
	p.ctrl = val
	if !wasOn && p.ctrlNMIOn() {
		p.tripNMI = true
	}
	p.t.setNametable(p.ctrlNametable())
}

func (p *PPU) writeScroll(val uint8) {
	if p.writeLatch {
		p.t.setFineY(uint16(val & 0x07))
		p.t.setCoarseY(uint16(val >> 3))
	} else {
		p.fineX = val & 0x07
		p.t.setCoarseX(uint16(val >> 3))
	}
	p.writeLatch = !p.writeLatch
}

func (p *PPU) writeAddr(val uint8) {
	if p.writeLatch {
		p.t.setLowByte(val)
		p.v = p.t
	} else {
		p.t.setHighByteClearBit(val)
	}
	p.writeLatch = !p.writeLatch
}

func (p *PPU) writeData(val uint8) {
	p.bus.Write(p.v.address(), val)
	p.v.addOffset(p.ctrlVramIncrement())
}

// OAMDMAWrite implements a single byte transferred into primary OAM by an
// in-progress $4014 OAM DMA.
func (p *PPU) OAMDMAWrite(val uint8) {
	p.oam[p.oamAddr] = val
	p.oamAddr++
}

func (p *PPU) isPrerender() bool { return p.scanline == preRenderLine }

// EmulateCycles advances the PPU by the three dots each of n CPU cycles
// spans, reporting whether a frame completed and whether an NMI fired
// anywhere in the run.
func (p *PPU) EmulateCycles(n int) (frame, nmi bool) {
	for i := 0; i < 3*n; i++ {
		switch p.Step() {
		case EventFrame:
			frame = true
		case EventNMI:
			nmi = true
		}
	}
	return frame, nmi
}

// Step advances the PPU by one dot and reports any NMI/frame-ready event
// produced on this dot.
func (p *PPU) Step() Event {
	var ev Event

	switch {
	case p.scanline <= 239:
		p.stepSprites()
		p.renderPixel()
		p.stepBgRegs()
	case p.scanline == 240:
		if p.cc == 0 {
			ev = EventFrame
		}
	case p.scanline == 241:
		if p.cc == 1 && !p.vblankOff {
			p.status |= statusVBlank
			if p.ctrlNMIOn() {
				ev = EventNMI
			}
		}
	case p.scanline >= 242 && p.scanline <= 260:
		// nothing to do
	case p.isPrerender():
		if p.cc == 1 {
			p.status &^= statusVBlank | statusSprite0Hit | statusSpriteOverflow
		}
		p.stepSprites()
		p.renderPixel()
		p.stepBgRegs()
	}

	if p.tripNMI && p.status&statusVBlank != 0 && !p.vblankOff {
		ev = EventNMI
	}
	p.tripNMI = false
	p.vblankOff = false

	p.stepCC()
	return ev
}

func (p *PPU) stepCC() {
	p.cc++
	if p.oddFrame && p.maskShowBg() && p.isPrerender() && p.cc == 340 {
		p.scanline = 0
		p.cc = 0
		p.oddFrame = !p.oddFrame
		return
	}
	if p.cc > 340 {
		p.cc = 0
		p.scanline++
		if p.scanline > preRenderLine {
			if p.maskShowBg() {
				p.oddFrame = !p.oddFrame
			}
			p.scanline = 0
		}
	}
}

// stepSprites implements secondary-OAM evaluation (dot 257), OAMADDR reset
// during dots 257-320, and the dot-321 pattern-byte prefetch for the
// sprites that will render on the NEXT scanline.
func (p *PPU) stepSprites() {
	switch {
	case p.cc == 1:
		p.secondaryOAM = p.secondaryOAM[:0]
		if p.isPrerender() {
			p.status &^= statusSpriteOverflow | statusSprite0Hit
		}
	case p.cc == 257:
		p.evaluateSprites()
		p.oamAddr = 0
	case p.cc >= 258 && p.cc <= 320:
		p.oamAddr = 0
	case p.cc == 321:
		p.sprites = append(p.sprites[:0], p.secondaryOAM...)
		for i := range p.sprites {
			s := &p.sprites[i]
			addr := s.patternAddr(p.ctrlSpritePatternTable(), p.ctrlSpriteSize(), p.scanline)
			s.lowByte = p.bus.Read(addr)
			s.highByte = p.bus.Read(addr + 8)
		}
	}
}

func (p *PPU) evaluateSprites() {
	p.secondaryOAM = p.secondaryOAM[:0]
	size := p.ctrlSpriteSize()
	for i := 0; i < OAM_SIZE/4; i++ {
		y := uint16(p.oam[i*4])
		if y > p.scanline || y+size <= p.scanline {
			continue
		}
		// The ninth in-range sprite sets the overflow flag and ends the
		// scan; only the first eight render.
		if len(p.secondaryOAM) == spritesPerScanline {
			p.status |= statusSpriteOverflow
			return
		}
		p.secondaryOAM = append(p.secondaryOAM, spriteAt(uint8(i), p.oam))
	}
}

// spritePixel returns the palette index and priority of the first opaque
// sprite pixel at column x, flagging sprite-0 hit along the way.
func (p *PPU) spritePixel(x uint8, bgOpaque bool) (uint8, priority, bool) {
	for i := range p.sprites {
		s := &p.sprites[i]
		if !p.maskShowSprites() || (s.x < 8 && !p.maskLeft8Sprite()) || !s.inBoundingBox(x) {
			continue
		}

		var xOff uint8
		if s.flipH {
			xOff = 7 - (x - s.x)
		} else {
			xOff = x - s.x
		}

		lBit := b2u8((s.lowByte<<xOff)&0x80 != 0)
		rBit := b2u8((s.highByte<<xOff)&0x80 != 0)
		tileColor := rBit<<1 | lBit
		if tileColor == 0 {
			continue
		}

		if s.index == 0 && bgOpaque && x != 255 {
			p.status |= statusSprite0Hit
		}

		color := (s.palette+4)<<2 | tileColor
		return color, s.renderP, true
	}
	return 0, FRONT, false
}

// stepBgRegs implements the background fetch pipeline: nametable byte,
// attribute byte, and pattern low/high bytes, one every 8 dots, plus the
// coarse-X/Y scroll increments and the scroll-register copies at dots
// 257 and 280-304.
func (p *PPU) stepBgRegs() {
	switch {
	case (p.cc >= 2 && p.cc <= 256) || (p.cc >= 322 && p.cc <= 337):
		switch p.cc % 8 {
		case 1:
			p.regs.reload(p.atEntry)
		case 0:
			ntEntry := p.bus.Read(p.v.ntAddr())
			p.atEntry = p.bus.Read(p.v.atAddr())
			if p.v.coarseY()%4 >= 2 {
				p.atEntry >>= 4
			}
			if p.v.coarseX()%4 >= 2 {
				p.atEntry >>= 2
			}
			ptIndex := p.ctrlBgPatternTable() + uint16(ntEntry)*16 + p.v.fineY()
			p.regs.bgLatch.fill(p.bus.Read(ptIndex), p.bus.Read(ptIndex+8))

			if p.maskShowBg() {
				if p.cc == 256 {
					p.v.scrollY()
				} else {
					p.v.scrollX()
				}
			}
		}
	case p.cc == 257:
		p.regs.reload(p.atEntry)
		if p.maskShowBg() {
			p.v.copyX(p.t)
		}
	case p.cc >= 280 && p.cc <= 304:
		if p.isPrerender() && p.maskShowBg() {
			p.v.copyY(p.t)
		}
	}
}

func (p *PPU) bgPixel(x uint8) uint8 {
	if (x <= 8 && !p.maskLeft8Bg()) || !p.maskShowBg() {
		return 0
	}
	bgOff := 15 - p.fineX
	atOff := 7 - p.fineX
	c := p.regs.bgShift.color(bgOff)
	if c == 0 {
		return 0
	}
	return p.regs.atShift.color(c, atOff)
}

// renderPixel mixes background and sprite pixels for the dot about to be
// drawn (dots 2-257 and the prefetch window output nothing visible past
// x=255) and advances every shift register.
func (p *PPU) renderPixel() {
	switch {
	case (p.cc >= 2 && p.cc <= 257) || (p.cc >= 322 && p.cc <= 337):
		x := p.cc - 2
		if x < 256 && !p.isPrerender() {
			bgColor := p.bgPixel(uint8(x))
			sprColor, prio, sprOpaque := p.spritePixel(uint8(x), bgColor != 0)

			var color uint8
			switch {
			case bgColor == 0 && !sprOpaque:
				color = 0
			case !sprOpaque:
				color = bgColor
			case bgColor == 0:
				color = sprColor
			case prio == FRONT:
				color = sprColor
			default:
				color = bgColor
			}

			p.putPixel(int(x), int(p.scanline), color)
		}
		p.regs.shift()
	}
}

func (p *PPU) putPixel(x, y int, paletteIndex uint8) {
	rgb := p.paletteColor(paletteIndex)
	off := (y*NES_RES_WIDTH + x) * 3
	p.screen[off], p.screen[off+1], p.screen[off+2] = rgb[0], rgb[1], rgb[2]
}

func (p *PPU) paletteColor(index uint8) [3]uint8 {
	idx := p.bus.Read(0x3F00+uint16(index)) & 0x3F
	return systemPalette[idx]
}
